package ecs

import "reflect"

// Registry is the façade spec.md §4 describes: entity lifecycle plus
// component storage and lookup, single-threaded and unsynchronized — callers
// owning concurrent access must serialize it themselves. Grounded in
// original_source/registry.hpp's registry and the teacher's World.
type Registry struct {
	pool       entityPool
	archetypes *archetypeRegistry
	locations  []entityLocation // indexed by Entity.ID; zero value until created
}

// NewRegistry returns an empty Registry ready to create entities.
func NewRegistry() *Registry {
	return &Registry{
		archetypes: newArchetypeRegistry(),
	}
}

// Create allocates a new entity with the given component values and returns
// its handle. Each element of components must be a distinct struct type
// (registered, or registered lazily here on first use); a repeated type is
// ErrDuplicateComponent.
func (r *Registry) Create(components ...any) (Entity, error) {
	metas := make([]*componentMeta, 0, len(components))
	seen := &ComponentSet{}
	for _, c := range components {
		m := metaOfValue(c)
		if seen.Contains(m.id) {
			return InvalidEntity, wrapDuplicateComponent(m.name)
		}
		seen.Insert(m.id)
		metas = append(metas, m)
	}

	set := newComponentMetaSet(metas...)
	arch, err := r.archetypes.ensure(set)
	if err != nil {
		return InvalidEntity, err
	}

	e := r.pool.create()
	loc := arch.emplaceBack(e)
	r.setLocation(e, loc)

	// arch may predate this call (a cache hit in r.archetypes.ensure) and so
	// can order its columns differently than set.metas does here; resolve
	// each value's column against arch.components, never against set.
	block := arch.blocks[loc.block]
	for i, m := range metas {
		col := arch.components.indexOf(m.id)
		ptr := block.componentPtr(col, loc.slot, m.size)
		reflect.NewAt(m.typ, ptr).Elem().Set(reflect.ValueOf(components[i]))
	}

	return e, nil
}

func metaOfValue(c any) *componentMeta {
	t := reflect.TypeOf(c)
	if id, ok := globalTypes.byType[t]; ok {
		return globalTypes.metas[id]
	}
	return metaOfType(t)
}

// setLocation records loc for e, growing the location slice as needed.
func (r *Registry) setLocation(e Entity, loc entityLocation) {
	for int(e.ID) >= len(r.locations) {
		r.locations = append(r.locations, entityLocation{})
	}
	r.locations[e.ID] = loc
}

// Alive reports whether e is a currently-live handle in r. Plain value
// method: Go has no const-correctness to route around, so there is no
// separate non-const ensureAlive as in the original (DESIGN.md, Open
// Question 3).
func (r *Registry) Alive(e Entity) bool {
	return r.pool.alive(e)
}

// Destroy removes e from r, swap-erasing its slot from its archetype and
// patching the location of whatever entity was moved into the vacated slot.
// Destroying an already-dead handle is a no-op returning ErrEntityNotFound.
func (r *Registry) Destroy(e Entity) error {
	if !r.pool.alive(e) {
		return wrapEntityNotFound(e)
	}
	loc := r.locations[e.ID]
	moved, ok := loc.archetype.swapErase(loc)
	if ok {
		// Only patch the moved entity's location if a move actually
		// happened (DESIGN.md, Open Question Decision 1).
		r.locations[moved.ID] = loc
	}
	r.pool.recycle(e)
	return nil
}

// Has reports whether e currently carries a component of type T.
func Has[T any](r *Registry, e Entity) bool {
	if !r.pool.alive(e) {
		return false
	}
	id := ComponentIDFor[T]()
	return r.locations[e.ID].archetype.contains(id)
}

// Get returns a pointer to e's component of type T, valid until the next
// mutation of e's archetype. Returns ErrEntityNotFound or
// ErrComponentNotFound as appropriate.
func Get[T any](r *Registry, e Entity) (*T, error) {
	if !r.pool.alive(e) {
		return nil, wrapEntityNotFound(e)
	}
	id := ComponentIDFor[T]()
	loc := r.locations[e.ID]
	idx := loc.archetype.components.indexOf(id)
	if idx < 0 {
		return nil, wrapComponentNotFound(e, reflect.TypeOf((*T)(nil)).Elem().String())
	}
	block := loc.archetype.blocks[loc.block]
	meta := loc.archetype.components.metas[idx]
	ptr := block.componentPtr(idx, loc.slot, meta.size)
	return (*T)(ptr), nil
}

// ArchetypeCount returns how many distinct archetypes r currently holds.
func (r *Registry) ArchetypeCount() int {
	return r.archetypes.count()
}

// Reset discards every entity and archetype, returning r to its initial
// empty state. It does not affect the global component type registry.
func (r *Registry) Reset() {
	r.pool = entityPool{}
	r.archetypes = newArchetypeRegistry()
	r.locations = nil
}
