// Command ecsdemo runs the registry through three scenarios (create, delete,
// get) against a scratch Registry, logging pass/fail for each. Scenario entity counts come from config.toml,
// adapted from original_source/main.cpp's test_create/test_delete/test_get.
package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ilumary/ecs"
	"go.uber.org/zap"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

type tag struct {
	Label string
}

type config struct {
	Scenarios struct {
		CreateCount int `toml:"create_count"`
		DeleteCount int `toml:"delete_count"`
	} `toml:"scenarios"`
}

func loadConfig(path string) config {
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		cfg.Scenarios.CreateCount = 10
		cfg.Scenarios.DeleteCount = 5
	}
	return cfg
}

type scenario struct {
	name string
	run  func(log *zap.Logger, r *ecs.Registry, cfg config) bool
}

func scenarioCreate(log *zap.Logger, r *ecs.Registry, cfg config) bool {
	ok := true
	for i := 0; i < cfg.Scenarios.CreateCount; i++ {
		e, err := r.Create(position{X: float64(i)}, tag{Label: "created"})
		if err != nil {
			log.Error("create failed", zap.Error(err))
			ok = false
			continue
		}
		if !r.Alive(e) {
			ok = false
		}
	}
	return ok
}

func scenarioDelete(log *zap.Logger, r *ecs.Registry, cfg config) bool {
	entities := make([]ecs.Entity, 0, cfg.Scenarios.DeleteCount)
	for i := 0; i < cfg.Scenarios.DeleteCount; i++ {
		e, err := r.Create(position{}, velocity{DX: 1})
		if err != nil {
			log.Error("create failed", zap.Error(err))
			return false
		}
		entities = append(entities, e)
	}
	for _, e := range entities {
		if err := r.Destroy(e); err != nil {
			log.Error("destroy failed", zap.Error(err))
			return false
		}
		if r.Alive(e) {
			return false
		}
	}
	return true
}

func scenarioGet(log *zap.Logger, r *ecs.Registry, cfg config) bool {
	a, err := r.Create(position{X: 1, Y: 2}, tag{Label: "a"})
	if err != nil {
		log.Error("create failed", zap.Error(err))
		return false
	}
	tagA, err := ecs.Get[tag](r, a)
	if err != nil {
		log.Error("get failed", zap.Error(err))
		return false
	}

	b, err := r.Create(position{X: 3, Y: 4}, tag{Label: "b"})
	if err != nil {
		log.Error("create failed", zap.Error(err))
		return false
	}
	posB, err := ecs.Get[position](r, b)
	if err != nil {
		log.Error("get failed", zap.Error(err))
		return false
	}

	return tagA.Label == "a" && posB.X == 3
}

func main() {
	log, _ := zap.NewDevelopment()
	defer log.Sync()

	cfg := loadConfig("config.toml")
	r := ecs.NewRegistry()

	scenarios := []scenario{
		{"create", scenarioCreate},
		{"delete", scenarioDelete},
		{"get", scenarioGet},
	}

	passed := 0
	for _, s := range scenarios {
		if s.run(log, r, cfg) {
			passed++
			log.Info("scenario passed", zap.String("scenario", s.name))
		} else {
			log.Warn("scenario failed", zap.String("scenario", s.name))
		}
	}

	log.Info("scenarios complete",
		zap.Int("passed", passed),
		zap.Int("total", len(scenarios)),
		zap.Int("archetypes", r.ArchetypeCount()))

	if passed != len(scenarios) {
		os.Exit(1)
	}
}
