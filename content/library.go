// Package content serves the page copy behind each navigation destination.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed pages.yaml
var builtinPages []byte

// ErrUnknownPage is returned for an id with no page
var ErrUnknownPage = errors.New("unknown page")

type document struct {
	Pages []Page `yaml:"pages"`
}

// Library is an immutable set of pages in document order
type Library struct {
	pages map[string]Page
	order []string
}

// Load parses the embedded page copy
func Load() (*Library, error) {
	return Parse(builtinPages)
}

// MustLoad is Load for binaries where missing built-in copy is a build defect
func MustLoad() *Library {
	lib, err := Load()
	if err != nil {
		panic(err)
	}
	return lib
}

// Parse builds a library from YAML. Every page needs an id and a title; ids are unique.
func Parse(data []byte) (*Library, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}

	lib := &Library{pages: make(map[string]Page, len(doc.Pages))}
	for i, p := range doc.Pages {
		if p.ID == "" || p.Title == "" {
			return nil, fmt.Errorf("page %d: id and title are required", i)
		}
		if _, dup := lib.pages[p.ID]; dup {
			return nil, fmt.Errorf("page %q: duplicate id", p.ID)
		}
		lib.pages[p.ID] = clean(p)
		lib.order = append(lib.order, p.ID)
	}
	log.Printf("content: loaded %d pages", len(lib.order))
	return lib, nil
}

// Page returns the page for id
func (l *Library) Page(id string) (Page, error) {
	p, ok := l.pages[id]
	if !ok {
		return Page{}, fmt.Errorf("page %q: %w", id, ErrUnknownPage)
	}
	return p, nil
}

// IDs returns the page ids in document order
func (l *Library) IDs() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// clean sanitizes every displayed string so terminal output cannot be hijacked by escapes
func clean(p Page) Page {
	p.Title = sanitizeLine(p.Title)
	p.Subtitle = sanitizeLine(p.Subtitle)
	p.Footer = sanitizeLine(p.Footer)

	sections := make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		s.Heading = sanitizeLine(s.Heading)
		s.Body = sanitizeLine(s.Body)
		s.Items = sanitizeAll(s.Items)
		sections[i] = s
	}
	p.Sections = sections

	projects := make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Title = sanitizeLine(pr.Title)
		pr.Category = sanitizeLine(pr.Category)
		pr.Description = sanitizeLine(pr.Description)
		pr.LongDescription = sanitizeLine(pr.LongDescription)
		pr.TechStack = sanitizeAll(pr.TechStack)
		projects[i] = pr
	}
	p.Projects = projects

	links := make([]Link, len(p.Links))
	for i, ln := range p.Links {
		ln.Name = sanitizeLine(ln.Name)
		ln.Description = sanitizeLine(ln.Description)
		links[i] = ln
	}
	p.Links = links
	return p
}

func sanitizeAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = sanitizeLine(s)
	}
	return out
}
