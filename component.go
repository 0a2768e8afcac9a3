package ecs

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ComponentID is a stable, process-lifetime numeric identifier assigned to a
// component type the first time it is observed (by RegisterComponent,
// ComponentIDFor, Registry.Create or Each).
type ComponentID uint32

// MaxComponentTypes bounds how many distinct component types one process may
// register; registerType panics once the limit is reached. ComponentSet does
// not depend on it: its word slice grows to the largest ID inserted.
const MaxComponentTypes = 4096

// componentMeta is the per-type vtable the block/archetype layer dispatches
// through: size and alignment drive layout, destroy clears a dead slot so it
// doesn't pin large values behind a stale live count (see DESIGN.md, Open
// Question 2).
type componentMeta struct {
	id      ComponentID
	typ     reflect.Type
	name    string
	size    uintptr
	align   uintptr
	destroy func(unsafe.Pointer)
}

// typeRegistry assigns and looks up ComponentIDs by reflect.Type. It is a
// process-global singleton, mirroring the original's static
// type_registry<component_id_t> and the teacher's package-level
// typeToID/idToType maps: component identity is a property of the running
// process, not of any one Registry.
type typeRegistry struct {
	byType map[reflect.Type]ComponentID
	metas  []*componentMeta
}

var globalTypes = &typeRegistry{
	byType: make(map[reflect.Type]ComponentID, 64),
}

func metaOf[T any]() *componentMeta {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := globalTypes.byType[t]; ok {
		return globalTypes.metas[id]
	}
	m := registerType(t, destroyerFor[T]())
	return m
}

// metaOfType registers (or looks up) a component by its reflect.Type,
// zeroing the slot via reflect on destroy rather than a generic closure.
// Used by Registry.Create, which only has run-time component values, not
// compile-time type parameters, to work with.
func metaOfType(t reflect.Type) *componentMeta {
	if id, ok := globalTypes.byType[t]; ok {
		return globalTypes.metas[id]
	}
	destroy := func(ptr unsafe.Pointer) {
		reflect.NewAt(t, ptr).Elem().Set(reflect.Zero(t))
	}
	return registerType(t, destroy)
}

func registerType(t reflect.Type, destroy func(unsafe.Pointer)) *componentMeta {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("ecs: component type %s must be a struct, not %s", t, t.Kind()))
	}
	if len(globalTypes.metas) >= MaxComponentTypes {
		panic(fmt.Sprintf("ecs: too many component types registered (max %d)", MaxComponentTypes))
	}
	id := ComponentID(len(globalTypes.metas))
	m := &componentMeta{
		id:      id,
		typ:     t,
		name:    t.String(),
		size:    t.Size(),
		align:   uintptr(t.Align()),
		destroy: destroy,
	}
	globalTypes.byType[t] = id
	globalTypes.metas = append(globalTypes.metas, m)
	return m
}

// destroyerFor returns a function that resets a slot of type T to its zero
// value in place. It stands in for the original's meta_t::destruct — in a
// GC'd language there is no destructor to run, but zeroing the slot drops any
// references the value held so they don't keep unreachable data alive.
func destroyerFor[T any]() func(unsafe.Pointer) {
	return func(ptr unsafe.Pointer) {
		*(*T)(ptr) = *new(T)
	}
}

// RegisterComponent assigns (or returns the existing) ComponentID for T. It
// is idempotent: calling it more than once for the same T is a no-op after
// the first call. Registering is optional — ComponentIDFor registers lazily
// — but calling it up front lets an application reserve IDs in a
// deterministic order.
func RegisterComponent[T any]() ComponentID {
	return metaOf[T]().id
}

// ComponentIDFor returns T's ComponentID, registering it on first use.
func ComponentIDFor[T any]() ComponentID {
	return metaOf[T]().id
}
