package ecs

import "github.com/pkg/errors"

// Sentinel errors forming the taxonomy spec.md §7 requires. Wrap with
// errors.Wrapf (adding entity/component context) rather than returning these
// bare, so callers can still match with errors.Is while getting a useful
// message.
var (
	ErrEntityNotFound     = errors.New("ecs: entity not found")
	ErrComponentNotFound  = errors.New("ecs: component not found on entity")
	ErrDuplicateComponent = errors.New("ecs: duplicate component type in composition")
	ErrCapacityExceeded   = errors.New("ecs: archetype capacity exceeded")
)

func wrapEntityNotFound(e Entity) error {
	return errors.Wrapf(ErrEntityNotFound, "entity %d (generation %d)", e.ID, e.Generation)
}

func wrapComponentNotFound(e Entity, name string) error {
	return errors.Wrapf(ErrComponentNotFound, "entity %d: component %s", e.ID, name)
}

func wrapDuplicateComponent(name string) error {
	return errors.Wrapf(ErrDuplicateComponent, "component %s", name)
}

func wrapCapacityExceeded(needed, blockSize uintptr) error {
	return errors.Wrapf(ErrCapacityExceeded, "needs %d bytes per entity, memory block holds %d", needed, blockSize)
}
