// Package config provides YAML-based game configuration loading and
// difficulty management for Alien Invasion.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) by Validate for nonsensical settings.
var ErrInvalid = errors.New("config: invalid setting")

// InvadersConfig is the immutable configuration snapshot for one process.
// Components receive it by pointer at construction and never modify it.
type InvadersConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Fleet      FleetConfig      `yaml:"fleet"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Button     ButtonConfig     `yaml:"button"`
}

// ScreenConfig defines the world size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Base pixels per frame
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Speed    float64 `yaml:"speed"`    // Base pixels per frame, upward
	Capacity int     `yaml:"capacity"` // Max projectiles in flight
}

// FleetConfig defines enemy unit size and fleet motion.
type FleetConfig struct {
	UnitWidth  int     `yaml:"unit_width"`
	UnitHeight int     `yaml:"unit_height"`
	Speed      float64 `yaml:"speed"`      // Base horizontal pixels per frame
	DropSpeed  float64 `yaml:"drop_speed"` // Pixels dropped on each edge hit
	Direction  int     `yaml:"direction"`  // Initial direction, 1 (right) or -1 (left)
}

// GameplayConfig defines lives, scoring and pacing.
type GameplayConfig struct {
	StartingShips int `yaml:"starting_ships"`
	UnitPoints    int `yaml:"unit_points"`
	PauseFrames   int `yaml:"pause_frames"` // Frames frozen after a life is lost
}

// DifficultyConfig defines per-level scaling.
type DifficultyConfig struct {
	Scale       float64 `yaml:"scale"`         // Speed multiplier per level (> 1)
	UnitShrink  int     `yaml:"unit_shrink"`   // Pixels removed from unit size per level
	MinUnitSize int     `yaml:"min_unit_size"` // Unit size floor
}

// ButtonConfig defines the start button size in pixels.
type ButtonConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate checks the configuration for values that cannot produce a
// playable game. It reports the first problem found.
//
// An invalid configuration is still usable: geometry guards spawn zero units
// instead of failing, so callers typically log the error and continue.
func (c *InvadersConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Fleet.UnitWidth <= 0 || c.Fleet.UnitHeight <= 0:
		return fmt.Errorf("%w: unit size %dx%d", ErrInvalid, c.Fleet.UnitWidth, c.Fleet.UnitHeight)
	case c.Ship.Width <= 0 || c.Ship.Height <= 0 || c.Ship.Width > c.Screen.Width:
		return fmt.Errorf("%w: ship size %dx%d", ErrInvalid, c.Ship.Width, c.Ship.Height)
	case c.Projectile.Capacity < 0:
		return fmt.Errorf("%w: projectile capacity %d", ErrInvalid, c.Projectile.Capacity)
	case c.Fleet.Direction != 1 && c.Fleet.Direction != -1:
		return fmt.Errorf("%w: fleet direction %d", ErrInvalid, c.Fleet.Direction)
	case c.Gameplay.StartingShips <= 0:
		return fmt.Errorf("%w: starting ships %d", ErrInvalid, c.Gameplay.StartingShips)
	case c.Difficulty.Scale < 1:
		return fmt.Errorf("%w: difficulty scale %.2f", ErrInvalid, c.Difficulty.Scale)
	}
	return nil
}

// Preset represents a named difficulty preset.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI value to a Preset. Unknown values yield "".
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the loaded values untouched.
func ApplyPreset(cfg *InvadersConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Gameplay.StartingShips = 5
		cfg.Difficulty.Scale = 1.03
		cfg.Fleet.Speed *= 0.75
	case PresetHard:
		cfg.Gameplay.StartingShips = 2
		cfg.Difficulty.Scale = 1.1
		cfg.Projectile.Capacity = max(1, cfg.Projectile.Capacity-2)
	}
}
