package asset

import (
	"log"
	"sync"
)

// Supplier provides drawables by name
type Supplier interface {
	Lookup(name string) (*Drawable, bool)
}

// SupplierFunc adapts a function to Supplier
type SupplierFunc func(name string) (*Drawable, bool)

func (f SupplierFunc) Lookup(name string) (*Drawable, bool) { return f(name) }

// Registry is the scene's name to drawable table, populated once at setup.
// Lookups of missing names are logged once per name and never fail loudly.
type Registry struct {
	mu       sync.RWMutex
	items    map[string]*Drawable
	reported map[string]bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		items:    make(map[string]*Drawable),
		reported: make(map[string]bool),
	}
}

// Load copies the named drawables from the supplier and returns how many were missing
func (r *Registry) Load(s Supplier, names ...string) int {
	missing := 0
	for _, name := range names {
		var d *Drawable
		var ok bool
		if s != nil {
			d, ok = s.Lookup(name)
		}
		if !ok || d == nil || d.Width <= 0 || d.Height <= 0 {
			log.Printf("asset: supplier has no usable sprite %q", name)
			missing++
			continue
		}
		r.Put(name, d)
	}
	return missing
}

// Put registers a drawable under name
func (r *Registry) Put(name string, d *Drawable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[name] = d
	delete(r.reported, name)
}

// Get returns the drawable registered under name
func (r *Registry) Get(name string) (*Drawable, bool) {
	r.mu.RLock()
	d, ok := r.items[name]
	r.mu.RUnlock()
	if ok {
		return d, true
	}

	r.mu.Lock()
	if !r.reported[name] {
		r.reported[name] = true
		log.Printf("asset: sprite %q not registered, drawing nothing", name)
	}
	r.mu.Unlock()
	return nil, false
}

// Size returns the native size of a sprite, or the fallback when it is missing
func (r *Registry) Size(name string, fallbackW, fallbackH float64) (w, h float64) {
	if d, ok := r.Get(name); ok {
		return d.Width, d.Height
	}
	return fallbackW, fallbackH
}

// Len returns the number of registered drawables
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
