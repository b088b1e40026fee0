// Package config provides YAML-based configuration loading for the game
// tuning and the application settings, plus difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// LanesConfig contains all configuration for the Lane Racer game.
type LanesConfig struct {
	Lanes  LanesLayout `yaml:"lanes"`
	Timing LanesTiming `yaml:"timing"`
	Speed  LanesSpeed  `yaml:"speed"`
	Spawn  LanesSpawn  `yaml:"spawn"`
	Field  LanesField  `yaml:"field"`
	Entity LanesEntity `yaml:"entity"`
}

// LanesLayout defines how many lanes and obstacles a run has.
type LanesLayout struct {
	Count         int `yaml:"count"`
	ObstacleCount int `yaml:"obstacle_count"`
}

// LanesTiming defines the tick cadence.
type LanesTiming struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// LanesSpeed defines obstacle speed in units per tick.
type LanesSpeed struct {
	Base     float64 `yaml:"base"`
	PerPoint float64 `yaml:"per_point"` // Added per score point, never capped
}

// LanesSpawn defines the vertical range new obstacles are placed in.
// Negative values are above the visible field.
type LanesSpawn struct {
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// LanesField defines the simulated screen.
type LanesField struct {
	Height       float64 `yaml:"height"`
	PlayerOffset float64 `yaml:"player_offset"`
}

// LanesEntity defines car sprite size, shared by sprites and collision.
type LanesEntity struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TickInterval returns the tick cadence as a duration.
func (c LanesConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// DespawnY returns the position past which an obstacle is recycled.
func (c LanesConfig) DespawnY() float64 {
	return c.Field.Height + c.Entity.Height
}

// PlayerY returns the fixed vertical center of the player car.
func (c LanesConfig) PlayerY() float64 {
	return c.Field.Height - c.Entity.Height - c.Field.PlayerOffset
}

// HalfHeight returns the collision half extent of every car.
func (c LanesConfig) HalfHeight() float64 {
	return c.Entity.Height / 2
}

// CenterLane returns the lane a run starts in.
func (c LanesConfig) CenterLane() int {
	return c.Lanes.Count / 2
}

// Validate reports the first setting that would break the game loop.
func (c LanesConfig) Validate() error {
	switch {
	case c.Lanes.Count <= 0:
		return errors.New("config: lanes.count must be positive")
	case c.Lanes.ObstacleCount <= 0:
		return errors.New("config: lanes.obstacle_count must be positive")
	case c.Timing.TickIntervalMS <= 0:
		return errors.New("config: timing.tick_interval_ms must be positive")
	case c.Spawn.MinY > c.Spawn.MaxY:
		return fmt.Errorf("config: spawn range [%g, %g] is empty", c.Spawn.MinY, c.Spawn.MaxY)
	case c.Field.Height <= 0 || c.Entity.Height <= 0 || c.Entity.Width <= 0:
		return errors.New("config: field and entity sizes must be positive")
	}
	return nil
}

// AppConfig contains the application settings outside the game.
type AppConfig struct {
	Appearance    AppearanceConfig    `yaml:"appearance"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Slideshow     SlideshowConfig     `yaml:"slideshow"`
	Sound         SoundConfig         `yaml:"sound"`
}

// AppearanceConfig holds display settings.
type AppearanceConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

// NotificationsConfig holds the initial notification toggles.
type NotificationsConfig struct {
	Push  bool `yaml:"push"`
	Email bool `yaml:"email"`
}

// SlideshowConfig holds the profile slideshow settings.
type SlideshowConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

// Interval returns the slide duration, never less than one second.
func (s SlideshowConfig) Interval() time.Duration {
	if s.IntervalSeconds < 1 {
		return time.Second
	}
	return time.Duration(s.IntervalSeconds) * time.Second
}

// SoundConfig holds the engine sound settings.
type SoundConfig struct {
	File   string  `yaml:"file"`   // Optional mp3; empty uses the generated engine loop
	Volume float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a CLI value to a preset.
// Empty input yields an empty preset, meaning "use the config as is".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyLanesPreset modifies the speed settings based on a difficulty preset.
func ApplyLanesPreset(cfg *LanesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 4
		cfg.Speed.PerPoint = 0.2
	case DifficultyNormal:
		cfg.Speed.Base = 6
		cfg.Speed.PerPoint = 0.3
	case DifficultyHard:
		cfg.Speed.Base = 8
		cfg.Speed.PerPoint = 0.45
	case DifficultyFixed:
		cfg.Speed.PerPoint = 0
	}
}
