package ecs_test

import (
	"testing"

	"github.com/ilumary/ecs"
)

type regPosition struct{ X, Y float64 }
type regVelocity struct{ DX, DY float64 }
type regTag struct{ Label string }

func TestCreateAndGet(t *testing.T) {
	r := ecs.NewRegistry()
	e, err := r.Create(regPosition{X: 1, Y: 2}, regVelocity{DX: 3, DY: 4})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	pos, err := ecs.Get[regPosition](r, e)
	if err != nil {
		t.Fatalf("Get position: %v", err)
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("got position %+v, want {1 2}", *pos)
	}

	vel, err := ecs.Get[regVelocity](r, e)
	if err != nil {
		t.Fatalf("Get velocity: %v", err)
	}
	if vel.DX != 3 || vel.DY != 4 {
		t.Errorf("got velocity %+v, want {3 4}", *vel)
	}
}

func TestGetMutatesInPlace(t *testing.T) {
	r := ecs.NewRegistry()
	e, _ := r.Create(regPosition{X: 1, Y: 1})

	pos, err := ecs.Get[regPosition](r, e)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	pos.X = 42

	again, _ := ecs.Get[regPosition](r, e)
	if again.X != 42 {
		t.Errorf("expected mutation through the returned pointer to stick, got X=%v", again.X)
	}
}

func TestGetMissingComponentIsError(t *testing.T) {
	r := ecs.NewRegistry()
	e, _ := r.Create(regPosition{})

	if _, err := ecs.Get[regVelocity](r, e); err == nil {
		t.Fatal("expected an error getting a component the entity was never given")
	}
}

func TestHas(t *testing.T) {
	r := ecs.NewRegistry()
	e, _ := r.Create(regPosition{})

	if !ecs.Has[regPosition](r, e) {
		t.Error("expected Has[regPosition] to be true")
	}
	if ecs.Has[regVelocity](r, e) {
		t.Error("did not expect Has[regVelocity] to be true")
	}
}

func TestCreateDuplicateComponentIsError(t *testing.T) {
	r := ecs.NewRegistry()
	if _, err := r.Create(regPosition{}, regPosition{}); err == nil {
		t.Fatal("expected an error creating an entity with a duplicate component type")
	}
}

func TestDestroySwapErasePreservesOtherEntities(t *testing.T) {
	r := ecs.NewRegistry()
	a, _ := r.Create(regTag{Label: "a"})
	b, _ := r.Create(regTag{Label: "b"})
	c, _ := r.Create(regTag{Label: "c"})

	if err := r.Destroy(b); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	tagA, err := ecs.Get[regTag](r, a)
	if err != nil || tagA.Label != "a" {
		t.Errorf("expected a's component to survive b's destruction, got %+v, err %v", tagA, err)
	}
	tagC, err := ecs.Get[regTag](r, c)
	if err != nil || tagC.Label != "c" {
		t.Errorf("expected c's component to survive (and possibly move slots), got %+v, err %v", tagC, err)
	}
}

func TestDistinctCompositionsGetDistinctArchetypes(t *testing.T) {
	r := ecs.NewRegistry()
	r.Create(regPosition{})
	r.Create(regPosition{}, regVelocity{})
	r.Create(regPosition{})

	if got := r.ArchetypeCount(); got != 2 {
		t.Errorf("expected 2 archetypes, got %d", got)
	}
}

func TestReset(t *testing.T) {
	r := ecs.NewRegistry()
	e, _ := r.Create(regPosition{})
	r.Reset()

	if r.Alive(e) {
		t.Fatal("expected no entities to be alive after Reset")
	}
	if got := r.ArchetypeCount(); got != 0 {
		t.Errorf("expected 0 archetypes after Reset, got %d", got)
	}
}
