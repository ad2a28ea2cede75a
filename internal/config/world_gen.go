package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig is the on-disk shape of a world's settings file. Unlike
// LightingDefaults, this is loaded once per world rather than mutated at
// runtime, so it carries no mutex.
type WorldConfig struct {
	Seed          int64 `yaml:"seed"`
	SurfaceHeight int   `yaml:"surfaceHeight"`
	MaxLightLevel uint8 `yaml:"maxLightLevel"`
	MaxHeight     int   `yaml:"maxHeight"`
	ChunkSize     int   `yaml:"chunkSize"`
}

// DefaultWorldConfig mirrors the current LightingDefaults values, with a
// surface height of 32.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Seed:          0,
		SurfaceHeight: 32,
		MaxLightLevel: GetMaxLightLevel(),
		MaxHeight:     GetMaxHeight(),
		ChunkSize:     GetChunkSize(),
	}
}

// LoadWorldConfig reads and parses a YAML world config file, filling any
// omitted fields from DefaultWorldConfig.
func LoadWorldConfig(path string) (WorldConfig, error) {
	cfg := DefaultWorldConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.MaxLightLevel > 15 {
		cfg.MaxLightLevel = 15
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = 1
	}
	if cfg.MaxHeight < 1 {
		cfg.MaxHeight = 1
	}
	return cfg, nil
}

// Apply pushes a WorldConfig's values into the global LightingDefaults,
// where GetMaxLightLevel, GetMaxHeight and GetChunkSize read them.
func (c WorldConfig) Apply() {
	SetMaxLightLevel(c.MaxLightLevel)
	SetMaxHeight(c.MaxHeight)
	SetChunkSize(c.ChunkSize)
}
