package scripts

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

const frame = float32(1.0 / 60)

// rig is a character on a floor whose top edge sits at y = 0. Physics is
// never stepped, so positions and velocities only change when a test or a
// behavior writes them.
type rig struct {
	w      *sim.World
	rt     *behavior.Runtime
	logs   *bytes.Buffer
	player host.EntityID
	arm    host.EntityID
	sprite host.EntityID
	ch     *Character
}

type rigOptions struct {
	noFloor    bool
	noAnim     bool
	noArm      bool
	floorLayer int
}

func newRig(t *testing.T, opts rigOptions) *rig {
	t.Helper()
	logs := &bytes.Buffer{}
	w := sim.NewWorld(sim.WithGravity(0))
	r := &rig{
		w:    w,
		rt:   behavior.NewRuntime(w, behavior.WithLogger(log.New(logs))),
		logs: logs,
	}

	if !opts.noFloor {
		layer := 1
		if opts.floorLayer != 0 {
			layer = opts.floorLayer
		}
		size := core.V2(1000, 20)
		w.Spawn(sim.EntitySpec{Name: "Floor", Position: core.V2(0, -10), Collider: &size, Layer: layer})
	}

	body := core.V2(10, 30)
	r.player = w.Spawn(sim.EntitySpec{
		Name:     "Player",
		Position: core.V2(0, 15),
		Body:     &sim.BodySpec{Mass: 1, Dynamic: true, GravityScale: 1},
		Collider: &body,
	})
	r.ch = NewCharacter(config.DefaultCharacterConfig())
	r.attach(t, r.player, r.ch)

	if !opts.noArm {
		r.arm = w.Spawn(sim.EntitySpec{Name: "Arm", Parent: r.player, Position: core.V2(4, 4)})
		r.attach(t, r.arm, &Pivot{})
	}
	if !opts.noAnim {
		r.sprite = w.Spawn(sim.EntitySpec{Name: "Sprite", Parent: r.player})
		r.attach(t, r.sprite, &CharacterAnim{})
	}
	return r
}

func (r *rig) attach(t *testing.T, id host.EntityID, b behavior.Behavior) {
	t.Helper()
	if err := r.rt.Attach(id, b); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
}

// at places the character with its pivot y units above the floor.
func (r *rig) at(y float32) {
	r.w.SetWorldPosition(r.player, core.V2(0, y))
}

func (r *rig) velocity() core.Vec2 {
	return r.w.Velocity(r.player)
}

func (r *rig) setVelocity(x, y float32) {
	r.w.SetVelocity(r.player, core.V2(x, y))
}

// step feeds input and runs one behavior frame.
func (r *rig) step(dt, horizontal float32, jump bool) CharacterState {
	r.ch.SetInput(horizontal, jump)
	r.rt.Frame(dt)
	return r.ch.State()
}

// airborne lifts the character and burns its leniency window.
func (r *rig) airborne(t *testing.T) {
	t.Helper()
	r.at(300)
	r.setVelocity(0, 0)
	for i := 0; i <= r.ch.Config().LeniencyFrames+1; i++ {
		r.step(frame, 0, false)
	}
	if s := r.ch.State(); s.Grounded || s.LeniencyFrames >= 0 {
		t.Fatalf("rig not airborne: %+v", s)
	}
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}
