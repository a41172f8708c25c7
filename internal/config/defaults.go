package config

import (
	_ "embed"
)

//go:embed defaults/level.yaml
var defaultLevelYAML []byte

// DefaultCharacterConfig returns the stock character tunables.
func DefaultCharacterConfig() CharacterConfig {
	return CharacterConfig{
		AnimationName:         "Player",
		Speed:                 500,
		Accel:                 100,
		AirAccel:              10,
		AccelScale:            200,
		Slowdown:              10,
		FloorDistance:         1,
		GroundProbeOffset:     15,
		GroundMask:            0b00001010,
		JumpPower:             100,
		EnhancedJumpScale:     1.9,
		JumpVelocityThreshold: 0.5,
		LeniencyFrames:        8,
		TotalDashes:           5,
		FootstepInterval:      0.1,
		MovementVolume:        0.7,
		JumpHighDistance:      100,
		JumpLowDistance:       50,
	}
}

// DefaultLevelConfig returns a bare level with only a floor, used when the
// embedded YAML cannot be parsed.
func DefaultLevelConfig() LevelConfig {
	floor := [2]float32{800, 20}
	return LevelConfig{
		Name:    "fallback",
		Gravity: 120,
		Bounds:  Bounds{MinY: -200},
		Entities: []EntityConfig{
			{
				Name:     "Player",
				Position: [2]float32{0, 40},
				Collider: &[2]float32{10, 30},
				Body:     &BodyConfig{Mass: 1, Dynamic: true, GravityScale: 1},
				Glyph:    "@",
				Color:    "player",
				Behaviors: []BehaviorConfig{
					{Kind: "player"},
					{Kind: "character"},
				},
			},
			{
				Name:     "Ground",
				Position: [2]float32{0, -10},
				Layer:    1,
				Collider: &floor,
				Glyph:    "=",
				Color:    "platform",
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config file name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "level", "level.yaml":
		return defaultLevelYAML
	default:
		return nil
	}
}
