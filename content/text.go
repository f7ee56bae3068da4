package content

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// sanitizeLine strips ANSI escape sequences and control characters; tabs and newlines become spaces
func sanitizeLine(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '\x1b':
			// CSI: ESC [ params final-byte
			if i+1 < len(rs) && rs[i+1] == '[' {
				i += 2
				for i < len(rs) && (rs[i] < 0x40 || rs[i] > 0x7e) {
					i++
				}
			}
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// hasControlCharacters reports escapes or control characters other than tab and newline
func hasControlCharacters(s string) bool {
	for _, r := range s {
		if r == '\t' || r == '\n' {
			continue
		}
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Wrap breaks text into lines no wider than width display columns.
// Words wider than width are split; East Asian wide runes count as two columns.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if lineW > 0 && lineW+1+ww > width {
			flush()
		}
		for ww > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the line
				head = string([]rune(word)[:1])
			}
			if lineW > 0 {
				flush()
			}
			line.WriteString(head)
			flush()
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(word)
		lineW += ww
	}
	if lineW > 0 {
		flush()
	}
	return lines
}

// Lines renders a page as plain text wrapped to width columns
func (p Page) Lines(width int) []string {
	var out []string
	add := func(s string) { out = append(out, Wrap(s, width)...) }
	blank := func() { out = append(out, "") }

	add(p.Title)
	if p.Subtitle != "" {
		add(p.Subtitle)
	}

	for _, s := range p.Sections {
		blank()
		add(strings.ToUpper(s.Heading))
		if s.Body != "" {
			add(s.Body)
		}
		for _, it := range s.Items {
			add("- " + it)
		}
	}

	for _, pr := range p.Projects {
		blank()
		add(pr.Title + " [" + pr.Category + "]")
		add(pr.Description)
		if len(pr.TechStack) > 0 {
			add("Stack: " + strings.Join(pr.TechStack, ", "))
		}
		if pr.GithubURL != "" {
			add("Code: " + pr.GithubURL)
		}
		if pr.LiveURL != "" {
			add("Play: " + pr.LiveURL)
		}
	}

	if len(p.Links) > 0 {
		blank()
		for _, ln := range p.Links {
			add(ln.Name + ": " + ln.URL)
		}
	}

	if p.Footer != "" {
		blank()
		add(p.Footer)
	}
	return out
}
