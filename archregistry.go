package ecs

// archetypeRegistry maps a component composition to its owning archetype.
// Archetypes are stored in a slice so their addresses never move once
// created (entityLocation holds a raw *archetype), with a map from
// composition key to slice index for lookup. Grounded in
// original_source/archetype.hpp's archetype_registry and the teacher's
// archetypeRegistry/maskToArcIndex in world.go.
type archetypeRegistry struct {
	byKey      map[componentSetKey]int
	archetypes []*archetype
}

func newArchetypeRegistry() *archetypeRegistry {
	return &archetypeRegistry{
		byKey: make(map[componentSetKey]int, 16),
	}
}

// ensure returns the archetype for components, creating it if this exact
// composition has not been seen before.
func (r *archetypeRegistry) ensure(components *componentMetaSet) (*archetype, error) {
	key := components.key()
	if idx, ok := r.byKey[key]; ok {
		return r.archetypes[idx], nil
	}
	a, err := newArchetype(components)
	if err != nil {
		return nil, err
	}
	r.byKey[key] = len(r.archetypes)
	r.archetypes = append(r.archetypes, a)
	return a, nil
}

func (r *archetypeRegistry) count() int {
	return len(r.archetypes)
}

// matching calls fn for every archetype whose composition is a superset of
// required — the set view/Each iteration filters over.
func (r *archetypeRegistry) matching(required *ComponentSet, fn func(*archetype)) {
	for _, a := range r.archetypes {
		if a.components.ids.Superset(required) {
			fn(a)
		}
	}
}
