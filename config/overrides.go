package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile lists the sections a YAML overrides file may contain. Keys that
// are absent keep their current value.
type tuningFile struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Barrel   BarrelConfig   `yaml:"barrel"`
	Fireball FireballConfig `yaml:"fireball"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Spawner  SpawnerConfig  `yaml:"spawner"`
}

// LoadOverrides reads a YAML file and applies it on top of the current
// tuning. Nothing changes if the file cannot be read or parsed.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides applies YAML tuning overrides held in memory.
func ApplyOverrides(data []byte) error {
	f := tuningFile{
		Physics:  Physics,
		Player:   Player,
		Barrel:   Barrel,
		Fireball: Fireball,
		Scoring:  Scoring,
		Spawner:  Spawner,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal overrides: %w", err)
	}
	if f.Physics.RestTolerance < f.Physics.MaxFallSpeed {
		return fmt.Errorf("rest_tolerance %.1f must be at least max_fall_speed %.1f",
			f.Physics.RestTolerance, f.Physics.MaxFallSpeed)
	}

	Physics = f.Physics
	Player = f.Player
	Barrel = f.Barrel
	Fireball = f.Fireball
	Scoring = f.Scoring
	Spawner = f.Spawner
	return nil
}
