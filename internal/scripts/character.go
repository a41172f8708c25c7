// Package scripts contains the gameplay behaviors: the platformer character
// controller and the small behaviors that aim, flip and animate it.
package scripts

import (
	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// Sound names emitted by the character.
const (
	SoundJump         = "GJ" // Grouped
	SoundJumpEnhanced = "JumpEnhanced"
	SoundDash         = "Dash"
	SoundFootstep     = "DR" // Grouped
)

// Animation suffixes appended to the character's animation name.
const (
	AnimWalk     = "_Walk"
	AnimIdle     = "_Idle"
	AnimJumpHigh = "_Jump_High"
	AnimJumpLow  = "_Jump_Low"
)

// CharacterState is a snapshot of the controller's working set.
type CharacterState struct {
	HorizontalMovement float32
	JumpHeld           bool
	Grounded           bool
	GroundDistance     float32
	LeniencyFrames     int
	ChargingDash       bool
	CanChargeDash      bool
	RemainingDashes    int
	FootstepTimer      float32
	AimDirection       core.Vec2
}

// Character moves a physics body from a horizontal axis and a jump flag.
// Whoever drives it (a player, an AI) writes the input with SetInput before
// the controller's update runs.
type Character struct {
	behavior.Base
	cfg config.CharacterConfig

	horizontal float32
	jumpHeld   bool

	grounded       bool
	groundDistance float32
	leniency       int

	chargingDash    bool
	canChargeDash   bool
	remainingDashes int

	footstepTimer float32
	aimDirection  core.Vec2

	anim   *CharacterAnim
	arm    *Pivot
	sounds host.Sounds
}

// NewCharacter creates a controller with the given tunables.
func NewCharacter(cfg config.CharacterConfig) *Character {
	return &Character{cfg: cfg}
}

// Config returns the controller tunables.
func (c *Character) Config() config.CharacterConfig {
	return c.cfg
}

// Bind implements behavior.Behavior.
func (c *Character) Bind(ctx *behavior.Context) {
	c.Base.Bind(ctx)
	c.sounds = host.Sounds{Audio: ctx.Host}
}

// OnStart resolves the animation driver and aim pivot among the entity's
// children. Either may be missing.
func (c *Character) OnStart() {
	id := c.Entity().ID()
	c.anim, _ = behavior.GetInChildren[*CharacterAnim](c.Ctx.Runtime, id)
	c.arm, _ = behavior.GetInChildren[*Pivot](c.Ctx.Runtime, id)
	c.Logger().Debug("character started",
		"entity", id, "anim", c.anim != nil, "arm", c.arm != nil)
}

// SetInput sets the horizontal axis and jump flag for the next update.
func (c *Character) SetInput(horizontal float32, jumpHeld bool) {
	c.horizontal = horizontal
	c.jumpHeld = jumpHeld
}

// State returns a copy of the controller state.
func (c *Character) State() CharacterState {
	return CharacterState{
		HorizontalMovement: c.horizontal,
		JumpHeld:           c.jumpHeld,
		Grounded:           c.grounded,
		GroundDistance:     c.groundDistance,
		LeniencyFrames:     c.leniency,
		ChargingDash:       c.chargingDash,
		CanChargeDash:      c.canChargeDash,
		RemainingDashes:    c.remainingDashes,
		FootstepTimer:      c.footstepTimer,
		AimDirection:       c.aimDirection,
	}
}

// OnUpdate runs one controller step. Nothing happens while paused.
func (c *Character) OnUpdate(dt float32) {
	h := c.Host()
	if h.Paused() {
		return
	}

	c.leniency--
	c.horizontal = core.Clamp(c.horizontal, -1, 1)

	c.probeGround()

	if c.jumpHeld {
		if c.grounded || c.leniency >= 0 {
			if c.Entity().Velocity().Y() <= c.cfg.JumpVelocityThreshold {
				c.Jump()
				c.sounds.Grouped(c.cfg.MovementVolume, SoundJump)
			}
		} else if c.canChargeDash && c.remainingDashes > 0 {
			c.chargingDash = true
		}
	}

	if c.jumpHeld && c.chargingDash && c.remainingDashes > 0 {
		c.remainingDashes--
		c.Dash()
		c.sounds.Single(c.cfg.MovementVolume, SoundDash)
	}

	c.stepFootsteps(dt)

	if c.grounded {
		c.canChargeDash = false
		c.chargingDash = false
		c.remainingDashes = c.cfg.TotalDashes
	} else if !c.jumpHeld {
		c.canChargeDash = true
	}

	c.integrateHorizontal(dt)
	c.animate()
}

// probeGround casts down from the entity. A miss leaves groundDistance at
// the hit record's zero value; the hit flag, not the distance, decides
// grounding.
func (c *Character) probeGround() {
	hit := c.Host().Raycast(c.Entity().Position(), core.V2(0, -1), host.LayerMask(c.cfg.GroundMask))
	c.groundDistance = hit.Distance
	c.grounded = false
	if hit.Hit() && hit.Distance < c.cfg.GroundProbeOffset+c.cfg.FloorDistance {
		c.grounded = true
		c.leniency = c.cfg.LeniencyFrames
	}
}

func (c *Character) stepFootsteps(dt float32) {
	if c.grounded && c.horizontal != 0 {
		c.footstepTimer += dt
	}
	if c.horizontal == 0 {
		c.footstepTimer = 0
	}
	if c.footstepTimer >= c.cfg.FootstepInterval {
		c.footstepTimer = 0
		c.sounds.Grouped(c.cfg.MovementVolume, SoundFootstep)
	}
}

func (c *Character) integrateHorizontal(dt float32) {
	e := c.Entity()
	v := e.Velocity()
	if c.horizontal == 0 {
		scale := float32(1)
		if !c.grounded {
			scale = c.cfg.AirAccel / c.cfg.Accel
		}
		v[0] -= dt * v.X() * c.cfg.Slowdown * scale
	} else {
		accel := c.cfg.AirAccel
		if c.grounded {
			accel = c.cfg.Accel
		}
		v[0] += dt * c.cfg.AccelScale * accel * c.horizontal
		v[0] = core.Clamp(v.X(), -c.cfg.Speed, c.cfg.Speed)
	}
	e.SetVelocity(v)
}

func (c *Character) animate() {
	if c.anim == nil {
		return
	}
	name := c.cfg.AnimationName
	switch {
	case c.grounded && c.horizontal != 0:
		c.anim.SetAnimation(name+AnimWalk, true)
	case c.grounded:
		c.anim.SetAnimation(name+AnimIdle, true)
	case c.groundDistance > c.cfg.JumpHighDistance:
		c.anim.SetAnimation(name+AnimJumpHigh, true)
	case c.groundDistance > c.cfg.JumpLowDistance:
		c.anim.SetAnimation(name+AnimJumpLow, true)
	}
}

// Jump sets the vertical velocity to the jump power, scaled up while the
// host's enhanced jump is on.
func (c *Character) Jump() {
	e := c.Entity()
	v := e.Velocity()
	if c.Host().JumpEnhanced() {
		v[1] = c.cfg.JumpPower * c.cfg.EnhancedJumpScale
		e.SetVelocity(v)
		c.sounds.Single(c.cfg.MovementVolume, SoundJumpEnhanced)
		return
	}
	v[1] = c.cfg.JumpPower
	e.SetVelocity(v)
}

// Dash raises the vertical velocity to the jump power. It never lowers it.
func (c *Character) Dash() {
	e := c.Entity()
	v := e.Velocity()
	if v.Y() < c.cfg.JumpPower {
		v[1] = c.cfg.JumpPower
		e.SetVelocity(v)
	}
}

// AimAt points the character, and its arm when it has one, at target.
func (c *Character) AimAt(target core.Vec2) {
	c.aimDirection = core.Normalize(target.Sub(c.Entity().Position()))
	if c.arm != nil {
		c.arm.RotateTowards(target)
	}
}
