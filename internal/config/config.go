// Package config provides YAML-based level and character configuration
// loading for the platformer.
package config

import "gopkg.in/yaml.v3"

// CharacterConfig holds the character controller tunables.
type CharacterConfig struct {
	AnimationName string `yaml:"animation_name"` // Prefix for <name>_Walk, <name>_Idle ...

	// Movement
	Speed      float32 `yaml:"speed"`       // Max horizontal speed
	Accel      float32 `yaml:"accel"`       // Ground acceleration
	AirAccel   float32 `yaml:"air_accel"`   // Air acceleration
	AccelScale float32 `yaml:"accel_scale"` // Multiplier applied to either acceleration
	Slowdown   float32 `yaml:"slowdown"`    // Decay factor with no input

	// Grounding
	FloorDistance     float32 `yaml:"floor_distance"`      // Slack below the feet still counted as ground
	GroundProbeOffset float32 `yaml:"ground_probe_offset"` // Distance from the pivot to the feet
	GroundMask        uint32  `yaml:"ground_mask"`         // Layers the ground probe can hit

	// Jumping
	JumpPower             float32 `yaml:"jump_power"`
	EnhancedJumpScale     float32 `yaml:"enhanced_jump_scale"`
	JumpVelocityThreshold float32 `yaml:"jump_velocity_threshold"` // Max upward speed that still allows a jump
	LeniencyFrames        int     `yaml:"leniency_frames"`

	// Dashing
	TotalDashes int `yaml:"total_dashes"`

	// Audio
	FootstepInterval float32 `yaml:"footstep_interval"`
	MovementVolume   float32 `yaml:"movement_volume"`

	// Animation
	JumpHighDistance float32 `yaml:"jump_high_distance"`
	JumpLowDistance  float32 `yaml:"jump_low_distance"`
}

// LevelConfig describes a playable scene.
type LevelConfig struct {
	Name     string         `yaml:"name"`
	Gravity  float32        `yaml:"gravity"`
	Bounds   Bounds         `yaml:"bounds"`
	Entities []EntityConfig `yaml:"entities"`
}

// Bounds is the region the player may occupy before being respawned.
type Bounds struct {
	MinY float32 `yaml:"min_y"`
}

// EntityConfig describes one entity in a level.
// Parents must appear before their children.
type EntityConfig struct {
	Name     string      `yaml:"name"`
	Parent   string      `yaml:"parent,omitempty"`
	Position [2]float32  `yaml:"position"`
	Scale    [2]float32  `yaml:"scale,omitempty"`
	Rotation float32     `yaml:"rotation,omitempty"`
	Depth    float32     `yaml:"depth,omitempty"`
	Layer    int         `yaml:"layer,omitempty"`
	Collider *[2]float32 `yaml:"collider,omitempty"`
	Body     *BodyConfig `yaml:"body,omitempty"`

	Glyph string `yaml:"glyph,omitempty"` // Rune drawn by the terminal renderer
	Color string `yaml:"color,omitempty"` // Palette entry name

	Behaviors []BehaviorConfig `yaml:"behaviors,omitempty"`
}

// BodyConfig describes a physics body.
type BodyConfig struct {
	Mass         float32 `yaml:"mass"`
	Friction     float32 `yaml:"friction"`
	Dynamic      bool    `yaml:"dynamic"`
	GravityScale float32 `yaml:"gravity_scale"`
}

// BehaviorConfig attaches a registered behavior kind to an entity.
// Props are decoded by the kind's factory.
type BehaviorConfig struct {
	Kind  string    `yaml:"kind"`
	Props yaml.Node `yaml:"props,omitempty"`
}

// RawProps returns the props node, or nil when none were given.
func (b BehaviorConfig) RawProps() *yaml.Node {
	if b.Props.Kind == 0 {
		return nil
	}
	return &b.Props
}
