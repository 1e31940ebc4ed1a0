package refcheck

// Registry maps each entity type to its ordered finder list. It is built
// once at startup, in the order the dependent relationships are declared in
// the schema, and injected wherever deletes are resolved. Finder order is
// the tie-break for message grouping, so it must not be resorted.
type Registry struct {
	finders map[string][]Finder
}

// NewRegistry copies the given map so later mutation of the caller's slices
// cannot reorder registered finders.
func NewRegistry(finders map[string][]Finder) *Registry {
	copied := make(map[string][]Finder, len(finders))
	for entity, list := range finders {
		copied[entity] = append([]Finder(nil), list...)
	}
	return &Registry{finders: copied}
}

// FindersFor returns the ordered finders registered for the entity type.
// Entities with no dependents (or whose reference check lives in the store
// layer) simply get an empty list.
func (r *Registry) FindersFor(entity string) []Finder {
	return r.finders[entity]
}
