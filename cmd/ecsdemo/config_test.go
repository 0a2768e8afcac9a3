package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFallsBackOnMissingFile(t *testing.T) {
	cfg := loadConfig("does-not-exist.toml")
	assert.Equal(t, 10, cfg.Scenarios.CreateCount)
	assert.Equal(t, 5, cfg.Scenarios.DeleteCount)
}

func TestLoadConfigReadsValues(t *testing.T) {
	cfg := loadConfig("config.toml")
	assert.Equal(t, 25, cfg.Scenarios.CreateCount)
	assert.Equal(t, 10, cfg.Scenarios.DeleteCount)
}
