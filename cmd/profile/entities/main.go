// Profiling:
// go build ./cmd/profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/ilumary/ecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		r := ecs.NewRegistry()
		view := ecs.NewView2[comp1, comp2](r)

		for j := 0; j < iters; j++ {
			created := make([]ecs.Entity, 0, numEntities)
			for k := 0; k < numEntities; k++ {
				e, _ := r.Create(comp1{}, comp2{V: 1, W: 1})
				created = append(created, e)
			}
			view.Each(func(_ ecs.Entity, c1 *comp1, c2 *comp2) {
				c1.V += c2.V
				c1.W += c2.W
			})
			for _, e := range created {
				_ = r.Destroy(e)
			}
		}
	}
}
