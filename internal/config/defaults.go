package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hardcoded default configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file
// cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 800,
		},
		Ship: ShipConfig{
			Width:  64,
			Height: 64,
			Speed:  5,
		},
		Projectile: ProjectileConfig{
			Width:    24,
			Height:   24,
			Speed:    7,
			Capacity: 5,
		},
		Fleet: FleetConfig{
			UnitWidth:  56,
			UnitHeight: 56,
			Speed:      2,
			DropSpeed:  36,
			Direction:  1,
		},
		Gameplay: GameplayConfig{
			StartingShips: 3,
			UnitPoints:    50,
			PauseFrames:   30, // 0.5s at 60fps
		},
		Difficulty: DifficultyConfig{
			Scale:       1.05,
			UnitShrink:  2,
			MinUnitSize: 32,
		},
		Button: ButtonConfig{
			Width:  200,
			Height: 50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
