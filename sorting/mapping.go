package sorting

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Mapping maps a public sort field to an internal ordering key. Reverse
// flips the requested direction, e.g. sorting by age through a birth date.
type Mapping struct {
	SortField  string
	TargetPath string
	Reverse    bool
}

// Definition is the set of sort mappings declared by one resource.
type Definition struct {
	Name     string
	mappings []Mapping
	byField  map[string]int
}

// NewDefinition builds a definition. SortField values must be unique,
// compared case-insensitively.
func NewDefinition(name string, mappings ...Mapping) (*Definition, error) {
	d := &Definition{Name: name, byField: make(map[string]int, len(mappings))}
	for _, m := range mappings {
		key := strings.ToLower(strings.TrimSpace(m.SortField))
		if key == "" {
			return nil, fmt.Errorf("sorting: %s: empty sort field", name)
		}
		if _, dup := d.byField[key]; dup {
			return nil, fmt.Errorf("sorting: %s: duplicate sort field %q", name, m.SortField)
		}
		d.byField[key] = len(d.mappings)
		d.mappings = append(d.mappings, m)
	}
	return d, nil
}

// MustDefinition is like NewDefinition but panics on error. It is meant for
// package level declarations.
func MustDefinition(name string, mappings ...Mapping) *Definition {
	d, err := NewDefinition(name, mappings...)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup finds the mapping for a public field name.
func (d *Definition) Lookup(field string) (Mapping, bool) {
	if d == nil {
		return Mapping{}, false
	}
	i, ok := d.byField[strings.ToLower(strings.TrimSpace(field))]
	if !ok {
		return Mapping{}, false
	}
	return d.mappings[i], true
}

type pairKey struct {
	source, destination reflect.Type
}

// Registry holds definitions keyed by their (source, destination) type pair,
// e.g. (HabitDTO, Habit).
type Registry struct {
	mu          sync.RWMutex
	definitions map[pairKey]*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{definitions: map[pairKey]*Definition{}}
}

// Register stores def for the pair (S, D), replacing any previous entry.
func Register[S, D any](r *Registry, def *Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[pairKey{reflect.TypeFor[S](), reflect.TypeFor[D]()}] = def
}

// Get returns the definition registered for (S, D).
func Get[S, D any](r *Registry) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, d := reflect.TypeFor[S](), reflect.TypeFor[D]()
	def, ok := r.definitions[pairKey{s, d}]
	if !ok {
		return nil, fmt.Errorf("sorting: no mapping registered from %s to %s", s, d)
	}
	return def, nil
}
