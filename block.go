package ecs

import (
	"reflect"
	"unsafe"
)

// memoryBlock is the fixed-capacity SoA storage unit backing an archetype,
// grounded in original_source/mem_block.hpp's mem_block and the teacher's
// chunk type in world.go. Unlike mem_block.hpp's single malloc'd buffer
// sliced by hand-computed byte offsets, each component column here is its
// own properly-typed Go slice (via reflect.MakeSlice, mirroring the
// teacher's own newChunk): Go's garbage collector cannot trace pointers
// hidden inside an untyped byte buffer, so one typed slice per component is
// the idiomatic substitute for the original's single aligned arena.
type memoryBlock struct {
	entities []Entity
	columns  []unsafe.Pointer // compPointers, indexed by componentMetaSet column index
	size     int
	capacity int
}

// newMemoryBlock allocates a block with room for capacity entities across
// the components named by meta.
func newMemoryBlock(meta *componentMetaSet, capacity int) *memoryBlock {
	b := &memoryBlock{
		entities: make([]Entity, capacity),
		columns:  make([]unsafe.Pointer, meta.len()),
		capacity: capacity,
	}
	for i, m := range meta.metas {
		slice := reflect.MakeSlice(reflect.SliceOf(m.typ), capacity, capacity)
		b.columns[i] = slice.UnsafePointer()
	}
	return b
}

func (b *memoryBlock) full() bool {
	return b.size >= b.capacity
}

func (b *memoryBlock) empty() bool {
	return b.size == 0
}

// componentPtr returns a pointer to the slot-th value of the component
// stored in column col, sized size bytes.
func (b *memoryBlock) componentPtr(col int, slot int, size uintptr) unsafe.Pointer {
	return unsafe.Pointer(uintptr(b.columns[col]) + uintptr(slot)*size)
}

// emplaceBack appends e to the block, returning its slot index. Callers
// must check !full() first; emplaceBack does not grow the block.
func (b *memoryBlock) emplaceBack(e Entity) int {
	slot := b.size
	b.entities[slot] = e
	b.size++
	return slot
}

// destroySlot runs each component's destroy function over slot, as called
// out in DESIGN.md's Open Question Decision 2: this is the Go stand-in for
// mem_block.hpp's commented-out destructor call, zeroing a dead slot's
// backing memory so it cannot pin otherwise-unreachable data.
func (b *memoryBlock) destroySlot(meta *componentMetaSet, slot int) {
	for i, m := range meta.metas {
		m.destroy(b.componentPtr(i, slot, m.size))
	}
}

// swapErase removes the entity at slot by moving the block's last live
// entity into its place (erase_and_fill in the original), then destroys and
// shrinks the vacated last slot. It reports the moved entity and whether a
// move actually happened (false when slot was already the last live slot).
func (b *memoryBlock) swapErase(meta *componentMetaSet, slot int) (moved Entity, didMove bool) {
	last := b.size - 1
	if slot != last {
		b.entities[slot] = b.entities[last]
		for i, m := range meta.metas {
			src := b.componentPtr(i, last, m.size)
			dst := b.componentPtr(i, slot, m.size)
			memcopy(dst, src, m.size)
		}
		moved, didMove = b.entities[slot], true
	}
	b.destroySlot(meta, last)
	b.size--
	return moved, didMove
}

// memcopy copies n bytes from src to dst, matching the teacher's memCopy
// helper used for in-block component moves.
func memcopy(dst, src unsafe.Pointer, n uintptr) {
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}
