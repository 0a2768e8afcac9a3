package ecs

import "reflect"

var entityType = reflect.TypeOf((*Entity)(nil)).Elem()

// Each calls fn once per entity matching fn's parameter tuple, decomposing
// an arbitrary callback at run time via reflect since Go has no variadic
// generics to express "a View over however many component types fn names."
// fn must be a func(Entity, *A, *B, ...) for some number of distinct struct
// pointer types; Each panics if fn's shape doesn't match that pattern.
//
// This is the general escape hatch behind View1..View4: prefer the typed
// Views when the arity is known at the call site, since they avoid the
// reflect.Call overhead this function pays per entity.
func Each(r *Registry, fn any) {
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func || ft.NumIn() < 1 || ft.In(0) != entityType {
		panic("ecs: Each requires a func(Entity, *A, *B, ...) callback")
	}

	n := ft.NumIn() - 1
	ids := make([]ComponentID, n)
	filter := &ComponentSet{}
	for i := 0; i < n; i++ {
		pt := ft.In(i + 1)
		if pt.Kind() != reflect.Ptr || pt.Elem().Kind() != reflect.Struct {
			panic("ecs: Each component parameters must be pointers to struct component types")
		}
		m := metaOfType(pt.Elem())
		ids[i] = m.id
		filter.Insert(m.id)
	}

	args := make([]reflect.Value, n+1)
	r.archetypes.matching(filter, func(a *archetype) {
		idx := make([]int, n)
		metas := make([]*componentMeta, n)
		for i, id := range ids {
			idx[i] = a.components.indexOf(id)
			metas[i] = a.components.metas[idx[i]]
		}
		for _, b := range a.blocks {
			for slot := 0; slot < b.size; slot++ {
				args[0] = reflect.ValueOf(b.entities[slot])
				for i := range ids {
					ptr := b.componentPtr(idx[i], slot, metas[i].size)
					args[i+1] = reflect.NewAt(metas[i].typ, ptr)
				}
				fv.Call(args)
			}
		}
	})
}
