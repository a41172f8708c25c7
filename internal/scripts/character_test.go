package scripts

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestHorizontalInputClamped(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-2, -1},
		{0, 0},
		{1.5, 1},
		{-0.25, -0.25},
	}
	for _, tt := range tests {
		r := newRig(t, rigOptions{})
		s := r.step(frame, tt.in, false)
		if s.HorizontalMovement != tt.want {
			t.Errorf("input %v: HorizontalMovement = %v, want %v", tt.in, s.HorizontalMovement, tt.want)
		}
	}
}

func TestGroundedIffHitWithinReach(t *testing.T) {
	tests := []struct {
		name     string
		opts     rigOptions
		y        float32
		want     bool
		wantDist float32
	}{
		{"resting", rigOptions{}, 15, true, 15},
		{"just inside reach", rigOptions{}, 15.9, true, 15.9},
		{"exactly at reach", rigOptions{}, 16, false, 16},
		{"high above", rigOptions{}, 120, false, 120},
		{"no floor", rigOptions{noFloor: true}, 15, false, 0},
		{"floor on unmasked layer", rigOptions{floorLayer: 2}, 15, false, 0},
		{"floor on layer 3", rigOptions{floorLayer: 3}, 15, true, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, tt.opts)
			r.at(tt.y)
			s := r.step(frame, 0, false)
			if s.Grounded != tt.want {
				t.Errorf("Grounded = %v, want %v", s.Grounded, tt.want)
			}
			if !approx(s.GroundDistance, tt.wantDist) {
				t.Errorf("GroundDistance = %v, want %v", s.GroundDistance, tt.wantDist)
			}
			if tt.want && s.LeniencyFrames != r.ch.Config().LeniencyFrames {
				t.Errorf("LeniencyFrames = %d, want reset to %d", s.LeniencyFrames, r.ch.Config().LeniencyFrames)
			}
		})
	}
}

func TestLeniencyCountsDown(t *testing.T) {
	r := newRig(t, rigOptions{})
	r.step(frame, 0, false)
	r.at(300)
	for i := 1; i <= 3; i++ {
		s := r.step(frame, 0, false)
		if want := 8 - i; s.LeniencyFrames != want {
			t.Errorf("frame %d: LeniencyFrames = %d, want %d", i, s.LeniencyFrames, want)
		}
	}
}

func TestJumpImpulse(t *testing.T) {
	tests := []struct {
		name      string
		enhanced  bool
		vy        float32
		wantVy    float32
		wantJump  bool
		wantBoost bool
	}{
		{"grounded", false, 0, 100, true, false},
		{"enhanced", true, 0, 190, true, true},
		{"at threshold", false, 0.5, 100, true, false},
		{"rising too fast", false, 0.6, 0.6, false, false},
		{"falling", false, -40, 100, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, rigOptions{})
			r.w.SetJumpEnhanced(tt.enhanced)
			r.setVelocity(0, tt.vy)
			r.step(frame, 0, true)

			if got := r.velocity().Y(); !approx(got, tt.wantVy) {
				t.Errorf("vy = %v, want %v", got, tt.wantVy)
			}
			if got := r.w.CountSounds(SoundJump) == 1; got != tt.wantJump {
				t.Errorf("jump sound = %v, want %v", got, tt.wantJump)
			}
			if got := r.w.CountSounds(SoundJumpEnhanced) == 1; got != tt.wantBoost {
				t.Errorf("enhanced sound = %v, want %v", got, tt.wantBoost)
			}
		})
	}
}

func TestJumpDuringLeniency(t *testing.T) {
	r := newRig(t, rigOptions{})
	r.step(frame, 0, false)
	r.at(300)
	r.step(frame, 0, false)
	r.step(frame, 0, false)

	r.step(frame, 0, true)
	if got := r.velocity().Y(); got != 100 {
		t.Errorf("coyote jump vy = %v, want 100", got)
	}
	if s := r.ch.State(); s.ChargingDash {
		t.Error("coyote jump should not start a dash charge")
	}
}

func TestJumpSoundVolume(t *testing.T) {
	r := newRig(t, rigOptions{})
	r.step(frame, 0, true)
	sounds := r.w.Sounds()
	if len(sounds) != 1 {
		t.Fatalf("sounds = %+v", sounds)
	}
	if s := sounds[0]; s.Name != SoundJump || !s.Grouped || !approx(s.Volume, 0.7) {
		t.Errorf("jump sound = %+v", s)
	}
}

func TestDashesRefillOnGround(t *testing.T) {
	r := newRig(t, rigOptions{})
	total := r.ch.Config().TotalDashes

	if s := r.ch.State(); s.RemainingDashes != 0 {
		t.Fatalf("initial dashes = %d", s.RemainingDashes)
	}
	if s := r.step(frame, 0, false); s.RemainingDashes != total {
		t.Fatalf("grounded dashes = %d, want %d", s.RemainingDashes, total)
	}

	r.airborne(t)
	if s := r.ch.State(); !s.CanChargeDash || s.RemainingDashes != total {
		t.Fatalf("airborne state = %+v", s)
	}

	s := r.step(frame, 0, true)
	if !s.ChargingDash || s.RemainingDashes != total-1 {
		t.Fatalf("after first dash = %+v", s)
	}
	if got := r.velocity().Y(); got != 100 {
		t.Errorf("dash vy = %v, want 100", got)
	}

	// Releasing jump never spends a charge.
	for i := 0; i < 3; i++ {
		s = r.step(frame, 0, false)
	}
	if s.RemainingDashes != total-1 {
		t.Errorf("dashes after release = %d, want %d", s.RemainingDashes, total-1)
	}

	for i := 0; i < total+2; i++ {
		s = r.step(frame, 0, true)
	}
	if s.RemainingDashes != 0 {
		t.Errorf("dashes after spamming = %d, want 0", s.RemainingDashes)
	}
	if got := r.w.CountSounds(SoundDash); got != total {
		t.Errorf("dash sounds = %d, want %d", got, total)
	}

	r.at(15)
	s = r.step(frame, 0, false)
	if s.RemainingDashes != total || s.ChargingDash || s.CanChargeDash {
		t.Errorf("landing state = %+v", s)
	}
}

func TestHoldingJumpAirborneDoesNotArmDash(t *testing.T) {
	r := newRig(t, rigOptions{})
	r.step(frame, 0, false)
	r.at(300)
	for i := 0; i < 12; i++ {
		r.step(frame, 0, true)
	}
	// Jump stayed held since takeoff, so charging was never allowed.
	if s := r.ch.State(); s.CanChargeDash || s.ChargingDash || s.RemainingDashes != 5 {
		t.Errorf("state = %+v", s)
	}
}

func TestDashNeverLowersVerticalVelocity(t *testing.T) {
	tests := []struct {
		vy, want float32
	}{
		{150, 150},
		{100, 100},
		{20, 100},
		{-80, 100},
	}
	for _, tt := range tests {
		r := newRig(t, rigOptions{})
		r.rt.Frame(frame)
		r.setVelocity(3, tt.vy)
		r.ch.Dash()
		v := r.velocity()
		if v.Y() != tt.want {
			t.Errorf("vy %v: after dash %v, want %v", tt.vy, v.Y(), tt.want)
		}
		if v.X() != 3 {
			t.Errorf("dash changed vx to %v", v.X())
		}
	}
}

func TestFootstepFiresOncePerInterval(t *testing.T) {
	r := newRig(t, rigOptions{})

	var fired []int
	for i := 1; i <= 3; i++ {
		before := r.w.CountSounds(SoundFootstep)
		r.step(0.05, 1, false)
		if r.w.CountSounds(SoundFootstep) > before {
			fired = append(fired, i)
		}
	}
	if len(fired) != 1 || fired[0] != 2 {
		t.Errorf("footsteps fired on frames %v, want [2]", fired)
	}
	if s := r.ch.State(); !approx(s.FootstepTimer, 0.05) {
		t.Errorf("FootstepTimer = %v, want 0.05", s.FootstepTimer)
	}
}

func TestFootstepTimerResets(t *testing.T) {
	r := newRig(t, rigOptions{})
	r.step(0.05, 1, false)
	if s := r.step(0.05, 0, false); s.FootstepTimer != 0 {
		t.Errorf("timer after stopping = %v, want 0", s.FootstepTimer)
	}

	// Airborne movement neither advances nor clears the timer.
	r.step(0.05, 1, false)
	r.at(300)
	if s := r.step(0.05, 1, false); !approx(s.FootstepTimer, 0.05) {
		t.Errorf("airborne timer = %v, want 0.05", s.FootstepTimer)
	}
	if got := r.w.CountSounds(SoundFootstep); got != 0 {
		t.Errorf("footsteps = %d, want 0", got)
	}
}

func TestHorizontalVelocityClamped(t *testing.T) {
	tests := []struct {
		name  string
		y     float32
		input float32
		dt    float32
		start float32
	}{
		{"ground right huge dt", 15, 1, 10, 0},
		{"ground left huge dt", 15, -1, 10, 0},
		{"air right", 300, 1, 5, 490},
		{"already over speed", 15, 1, frame, 900},
		{"clamped input", 15, 7, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, rigOptions{})
			r.at(tt.y)
			r.setVelocity(tt.start, 0)
			r.step(tt.dt, tt.input, false)
			vx := r.velocity().X()
			if vx > 500 || vx < -500 {
				t.Errorf("vx = %v exceeds speed", vx)
			}
		})
	}
}

func TestHorizontalAcceleration(t *testing.T) {
	tests := []struct {
		name  string
		y     float32
		input float32
		start float32
		want  float32
	}{
		{"ground accel", 15, 1, 0, 0.01 * 200 * 100},
		{"air accel", 300, -1, 0, -0.01 * 200 * 10},
		{"ground decay", 15, 0, 100, 100 - 0.01*100*10},
		{"air decay", 300, 0, 100, 100 - 0.01*100*10*0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, rigOptions{})
			r.at(tt.y)
			r.setVelocity(tt.start, 0)
			r.step(0.01, tt.input, false)
			if got := r.velocity().X(); !approx(got, tt.want) {
				t.Errorf("vx = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnimationSelection(t *testing.T) {
	tests := []struct {
		name  string
		y     float32
		input float32
		want  string
	}{
		{"walk", 15, 1, "Player_Walk"},
		{"idle", 15, 0, "Player_Idle"},
		{"high", 120, 0, "Player_Jump_High"},
		{"low", 70, 0, "Player_Jump_Low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, rigOptions{})
			r.at(tt.y)
			r.step(frame, tt.input, false)
			got := r.w.Animation(r.sprite)
			if got.Name != tt.want || !got.Looping {
				t.Errorf("animation = %+v, want %q looping", got, tt.want)
			}
		})
	}
}

func TestAnimationRetainedInBetween(t *testing.T) {
	r := newRig(t, rigOptions{})
	r.at(120)
	r.step(frame, 0, false)

	r.at(30)
	r.step(frame, 0, false)
	if got := r.w.Animation(r.sprite); got.Name != "Player_Jump_High" || got.Changes != 1 {
		t.Errorf("animation = %+v, want Player_Jump_High untouched", got)
	}
}

func TestNoHitKeepsZeroGroundDistance(t *testing.T) {
	r := newRig(t, rigOptions{noFloor: true})
	r.at(500)
	s := r.step(frame, 0, false)
	if s.Grounded || s.GroundDistance != 0 {
		t.Errorf("state = %+v", s)
	}
	// A zero distance reads as "near the ground", so no jump animation plays.
	if got := r.w.Animation(r.sprite); got.Changes != 0 {
		t.Errorf("animation changed to %+v", got)
	}
}

func TestMissingSubBehaviors(t *testing.T) {
	r := newRig(t, rigOptions{noAnim: true, noArm: true})
	r.step(frame, 1, true)
	r.ch.AimAt(r.w.WorldPosition(r.player).Add(r.w.WorldPosition(r.player)))
	if r.velocity().Y() != 100 {
		t.Errorf("controller did not run without sub-behaviors")
	}
}

func TestPausedSkipsUpdate(t *testing.T) {
	r := newRig(t, rigOptions{})
	r.step(frame, 0, false)
	before := r.ch.State()

	r.w.SetPaused(true)
	r.setVelocity(50, 0)
	s := r.step(frame, 1, true)

	if s.LeniencyFrames != before.LeniencyFrames {
		t.Errorf("leniency moved while paused: %d -> %d", before.LeniencyFrames, s.LeniencyFrames)
	}
	if v := r.velocity(); v.X() != 50 || v.Y() != 0 {
		t.Errorf("velocity changed while paused: %v", v)
	}
	if len(r.w.Sounds()) != 0 {
		t.Errorf("sounds while paused: %+v", r.w.Sounds())
	}
}

func TestAimAtNormalizesAndRotatesArm(t *testing.T) {
	r := newRig(t, rigOptions{})
	r.rt.Frame(frame)

	arm := r.w.WorldPosition(r.arm)
	r.ch.AimAt(arm.Add(core.V2(0, 50)))

	if got := r.w.WorldRotation(r.arm); !approx(got, 90) {
		t.Errorf("arm rotation = %v, want 90", got)
	}
	dir := r.ch.State().AimDirection
	if !approx(dir.Len(), 1) {
		t.Errorf("AimDirection %v is not unit length", dir)
	}
	if dir.Y() <= 0 {
		t.Errorf("AimDirection %v should point up", dir)
	}
}
