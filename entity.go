package ecs

import "math"

// Entity is a handle to an object stored in a Registry: a recyclable ID
// paired with a generation counter that invalidates stale handles once
// their ID has been reused.
type Entity struct {
	ID         uint32
	Generation uint32
}

// InvalidEntity is never alive. Registry.Create returns it only together with
// a non-nil error.
var InvalidEntity = Entity{ID: math.MaxUint32, Generation: math.MaxUint32}

// Valid reports whether e differs from InvalidEntity. It does not check
// whether e is alive in any particular Registry; use Registry.Alive for that.
func (e Entity) Valid() bool {
	return e != InvalidEntity
}

// entityPool allocates and recycles entity IDs with generation counters.
// Aliveness is defined entirely by generations[id] == the handle's generation.
type entityPool struct {
	generations []uint32
	freeIDs     []uint32
}

// create returns a fresh or recycled handle. Recycled IDs are popped LIFO
// from freeIDs, maximizing cache locality for alternating create/destroy
// workloads.
func (p *entityPool) create() Entity {
	if n := len(p.freeIDs); n > 0 {
		id := p.freeIDs[n-1]
		p.freeIDs = p.freeIDs[:n-1]
		return Entity{ID: id, Generation: p.generations[id]}
	}
	id := uint32(len(p.generations))
	p.generations = append(p.generations, 0)
	return Entity{ID: id, Generation: 0}
}

// alive reports whether e's generation matches the pool's current
// generation for e.ID.
func (p *entityPool) alive(e Entity) bool {
	return int(e.ID) < len(p.generations) && p.generations[e.ID] == e.Generation
}

// recycle bumps e.ID's generation and pushes it onto the free list. It is a
// no-op if e is not currently alive.
func (p *entityPool) recycle(e Entity) {
	if !p.alive(e) {
		return
	}
	p.generations[e.ID]++
	p.freeIDs = append(p.freeIDs, e.ID)
}

// entityLocation records where a live entity's components are stored: a
// non-owning reference to the owning archetype plus its position within
// that archetype's blocks. Stable only until the next mutation affecting
// that archetype.
type entityLocation struct {
	archetype *archetype
	block     int
	slot      int
}
