package ecs_test

import (
	"testing"

	"github.com/ilumary/ecs"
)

type viewPosition struct{ X, Y float64 }
type viewVelocity struct{ DX, DY float64 }
type viewTag struct{}

func TestView1IteratesOnlyMatchingArchetypes(t *testing.T) {
	r := ecs.NewRegistry()
	r.Create(viewPosition{X: 1})
	r.Create(viewPosition{X: 2}, viewVelocity{})
	r.Create(viewTag{})

	view := ecs.NewView1[viewPosition](r)
	sum := 0.0
	count := 0
	view.Each(func(_ ecs.Entity, p *viewPosition) {
		sum += p.X
		count++
	})

	if count != 2 {
		t.Fatalf("expected 2 matching entities, got %d", count)
	}
	if sum != 3 {
		t.Errorf("expected sum 3, got %v", sum)
	}
}

func TestView2MutatesComponentsInPlace(t *testing.T) {
	r := ecs.NewRegistry()
	r.Create(viewPosition{X: 1, Y: 1}, viewVelocity{DX: 2, DY: 3})
	r.Create(viewPosition{X: 10, Y: 10}, viewVelocity{DX: 1, DY: 1})

	view := ecs.NewView2[viewPosition, viewVelocity](r)
	view.Each(func(_ ecs.Entity, p *viewPosition, v *viewVelocity) {
		p.X += v.DX
		p.Y += v.DY
	})

	var got []float64
	view.Each(func(_ ecs.Entity, p *viewPosition, _ *viewVelocity) {
		got = append(got, p.X)
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0] != 3 || got[1] != 11 {
		t.Errorf("expected X values [3 11] after the mutating pass, got %v", got)
	}
}

func TestView1Size(t *testing.T) {
	r := ecs.NewRegistry()
	r.Create(viewPosition{})
	r.Create(viewPosition{})
	r.Create(viewTag{})

	view := ecs.NewView1[viewPosition](r)
	if got := view.Size(); got != 2 {
		t.Errorf("expected Size 2, got %d", got)
	}
}

func TestEachDecomposesArbitraryCallback(t *testing.T) {
	r := ecs.NewRegistry()
	r.Create(viewPosition{X: 5}, viewVelocity{DX: 1})

	count := 0
	ecs.Each(r, func(_ ecs.Entity, p *viewPosition, v *viewVelocity) {
		p.X += v.DX
		count++
	})

	if count != 1 {
		t.Fatalf("expected Each to visit 1 entity, got %d", count)
	}

	pos, err := ecs.Get[viewPosition](r, mustSingle(t, r))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if pos.X != 6 {
		t.Errorf("expected Each's mutation to stick, got X=%v", pos.X)
	}
}

func mustSingle(t *testing.T, r *ecs.Registry) ecs.Entity {
	t.Helper()
	var found ecs.Entity
	n := 0
	ecs.Each(r, func(e ecs.Entity, _ *viewPosition) {
		found = e
		n++
	})
	if n != 1 {
		t.Fatalf("expected exactly 1 entity with viewPosition, got %d", n)
	}
	return found
}
