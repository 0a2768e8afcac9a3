// Profiling:
// go build ./cmd/profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/ilumary/ecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		r := ecs.NewRegistry()
		for j := 0; j < numEntities; j++ {
			_, _ = r.Create(comp1{}, comp2{V: 1, W: 1}, comp3{}, comp4{})
		}
		view := ecs.NewView4[comp1, comp2, comp3, comp4](r)

		for k := 0; k < iters; k++ {
			view.Each(func(_ ecs.Entity, c1 *comp1, c2 *comp2, _ *comp3, _ *comp4) {
				c1.V += c2.V
				c1.W += c2.W
			})
		}
	}
}
