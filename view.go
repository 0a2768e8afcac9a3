package ecs

// View1 iterates every entity carrying a component of type A, grounded in
// the teacher's Query[T] (query.go). Construct with NewView1, then call Each
// per iteration; Views are cheap to build and not meant to be retained
// across mutating calls to the Registry.
type View1[A any] struct {
	r      *Registry
	idA    ComponentID
	filter ComponentSet
}

// NewView1 builds a View1 over r for component type A.
func NewView1[A any](r *Registry) View1[A] {
	idA := ComponentIDFor[A]()
	v := View1[A]{r: r, idA: idA}
	v.filter.Insert(idA)
	return v
}

// Each calls fn for every matching entity's component A, in archetype then
// block then slot order. fn may not create or destroy entities in r.
func (v View1[A]) Each(fn func(Entity, *A)) {
	idxA := -1
	v.r.archetypes.matching(&v.filter, func(a *archetype) {
		idxA = a.components.indexOf(v.idA)
		metaA := a.components.metas[idxA]
		for _, b := range a.blocks {
			for slot := 0; slot < b.size; slot++ {
				fn(b.entities[slot], (*A)(b.componentPtr(idxA, slot, metaA.size)))
			}
		}
	})
}

// Size returns the number of entities View1 would currently iterate.
func (v View1[A]) Size() int {
	n := 0
	v.r.archetypes.matching(&v.filter, func(a *archetype) { n += a.size() })
	return n
}

// View2 iterates every entity carrying components of types A and B.
type View2[A, B any] struct {
	r      *Registry
	idA    ComponentID
	idB    ComponentID
	filter ComponentSet
}

func NewView2[A, B any](r *Registry) View2[A, B] {
	idA, idB := ComponentIDFor[A](), ComponentIDFor[B]()
	v := View2[A, B]{r: r, idA: idA, idB: idB}
	v.filter.Insert(idA)
	v.filter.Insert(idB)
	return v
}

func (v View2[A, B]) Each(fn func(Entity, *A, *B)) {
	v.r.archetypes.matching(&v.filter, func(a *archetype) {
		idxA := a.components.indexOf(v.idA)
		idxB := a.components.indexOf(v.idB)
		metaA := a.components.metas[idxA]
		metaB := a.components.metas[idxB]
		for _, b := range a.blocks {
			for slot := 0; slot < b.size; slot++ {
				fn(b.entities[slot],
					(*A)(b.componentPtr(idxA, slot, metaA.size)),
					(*B)(b.componentPtr(idxB, slot, metaB.size)))
			}
		}
	})
}

func (v View2[A, B]) Size() int {
	n := 0
	v.r.archetypes.matching(&v.filter, func(a *archetype) { n += a.size() })
	return n
}

// View3 iterates every entity carrying components of types A, B and C.
type View3[A, B, C any] struct {
	r            *Registry
	idA, idB, idC ComponentID
	filter       ComponentSet
}

func NewView3[A, B, C any](r *Registry) View3[A, B, C] {
	idA, idB, idC := ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C]()
	v := View3[A, B, C]{r: r, idA: idA, idB: idB, idC: idC}
	v.filter.Insert(idA)
	v.filter.Insert(idB)
	v.filter.Insert(idC)
	return v
}

func (v View3[A, B, C]) Each(fn func(Entity, *A, *B, *C)) {
	v.r.archetypes.matching(&v.filter, func(a *archetype) {
		idxA := a.components.indexOf(v.idA)
		idxB := a.components.indexOf(v.idB)
		idxC := a.components.indexOf(v.idC)
		metaA := a.components.metas[idxA]
		metaB := a.components.metas[idxB]
		metaC := a.components.metas[idxC]
		for _, b := range a.blocks {
			for slot := 0; slot < b.size; slot++ {
				fn(b.entities[slot],
					(*A)(b.componentPtr(idxA, slot, metaA.size)),
					(*B)(b.componentPtr(idxB, slot, metaB.size)),
					(*C)(b.componentPtr(idxC, slot, metaC.size)))
			}
		}
	})
}

func (v View3[A, B, C]) Size() int {
	n := 0
	v.r.archetypes.matching(&v.filter, func(a *archetype) { n += a.size() })
	return n
}

// View4 iterates every entity carrying components of types A, B, C and D.
type View4[A, B, C, D any] struct {
	r                 *Registry
	idA, idB, idC, idD ComponentID
	filter            ComponentSet
}

func NewView4[A, B, C, D any](r *Registry) View4[A, B, C, D] {
	idA, idB, idC, idD := ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D]()
	v := View4[A, B, C, D]{r: r, idA: idA, idB: idB, idC: idC, idD: idD}
	v.filter.Insert(idA)
	v.filter.Insert(idB)
	v.filter.Insert(idC)
	v.filter.Insert(idD)
	return v
}

func (v View4[A, B, C, D]) Each(fn func(Entity, *A, *B, *C, *D)) {
	v.r.archetypes.matching(&v.filter, func(a *archetype) {
		idxA := a.components.indexOf(v.idA)
		idxB := a.components.indexOf(v.idB)
		idxC := a.components.indexOf(v.idC)
		idxD := a.components.indexOf(v.idD)
		metaA := a.components.metas[idxA]
		metaB := a.components.metas[idxB]
		metaC := a.components.metas[idxC]
		metaD := a.components.metas[idxD]
		for _, b := range a.blocks {
			for slot := 0; slot < b.size; slot++ {
				fn(b.entities[slot],
					(*A)(b.componentPtr(idxA, slot, metaA.size)),
					(*B)(b.componentPtr(idxB, slot, metaB.size)),
					(*C)(b.componentPtr(idxC, slot, metaC.size)),
					(*D)(b.componentPtr(idxD, slot, metaD.size)))
			}
		}
	})
}

func (v View4[A, B, C, D]) Size() int {
	n := 0
	v.r.archetypes.matching(&v.filter, func(a *archetype) { n += a.size() })
	return n
}
