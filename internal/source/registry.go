// Package source resolves named timeline data sources and caches their entries.
package source

// Descriptor names one data source.
type Descriptor struct {
	ID          string
	DisplayName string
	// Location is resolved against the page location.
	Location string
}

// DefaultID is the source shown when the page URL does not name a registered one.
const DefaultID = "qh_api"

// Registry is a fixed, ordered set of descriptors. Order is display order.
type Registry struct {
	descriptors []Descriptor
	index       map[string]int
	defaultID   string
}

// NewRegistry builds a registry from descriptors. Later duplicates of an id are
// ignored. The first descriptor is the default unless defaultID names another.
func NewRegistry(defaultID string, descriptors ...Descriptor) *Registry {
	r := &Registry{index: make(map[string]int, len(descriptors))}
	for _, d := range descriptors {
		if _, dup := r.index[d.ID]; dup {
			continue
		}
		r.index[d.ID] = len(r.descriptors)
		r.descriptors = append(r.descriptors, d)
	}
	if _, ok := r.index[defaultID]; ok {
		r.defaultID = defaultID
	} else if len(r.descriptors) > 0 {
		r.defaultID = r.descriptors[0].ID
	}
	return r
}

// DefaultRegistry is the registry shipped with the changelog page.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultID,
		Descriptor{ID: "qh_api", DisplayName: "启航 AI 系统", Location: "data/qh_api.json"},
		Descriptor{ID: "easy_ai", DisplayName: "Easy AI APP", Location: "data/easy_ai.json"},
	)
}

func (r *Registry) Lookup(id string) (Descriptor, bool) {
	i, ok := r.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// All returns the descriptors in display order.
func (r *Registry) All() []Descriptor {
	return append([]Descriptor(nil), r.descriptors...)
}

func (r *Registry) Default() string {
	return r.defaultID
}
