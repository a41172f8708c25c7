package level

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

const dt = float32(1.0 / 60)

func buildDefault(t *testing.T) *Level {
	t.Helper()
	cfg, err := config.ParseLevel(config.GetDefaultYAML("level"))
	if err != nil {
		t.Fatalf("ParseLevel() error: %v", err)
	}
	l, err := Build(cfg, WithLogger(log.New(&bytes.Buffer{})))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return l
}

// settle runs frames until the player has landed.
func settle(t *testing.T, l *Level) {
	t.Helper()
	for i := 0; i < 120; i++ {
		l.Step(dt)
	}
	ch, ok := l.Character()
	if !ok {
		t.Fatal("no character on player")
	}
	if !ch.State().Grounded {
		t.Fatalf("player never landed: %+v at %v", ch.State(), l.World.WorldPosition(l.Player()))
	}
}

func TestBuildDefaultLevel(t *testing.T) {
	l := buildDefault(t)

	for _, name := range []string{"Player", "Arm", "Sprite", "Reticle", "Main Camera", "Ground"} {
		if l.Entity(name) == host.None {
			t.Errorf("entity %q missing", name)
		}
	}
	if l.Runtime.Len() != 7 {
		t.Errorf("behaviors attached = %d, want 7", l.Runtime.Len())
	}

	kids := l.World.Children(l.Player())
	if len(kids) != 2 {
		t.Errorf("player children = %v, want arm and sprite", kids)
	}

	var solids, glyphs int
	for _, s := range l.Sprites() {
		if s.Solid {
			solids++
		}
		if s.Name == "Player" && (s.Glyph != '@' || s.Color != core.ColorPlayer || s.Solid) {
			t.Errorf("player sprite = %+v", s)
		}
		glyphs++
	}
	if solids != 6 {
		t.Errorf("solid sprites = %d, want 6", solids)
	}
	if glyphs != 9 {
		t.Errorf("sprites = %d, want 9", glyphs)
	}
}

func TestFirstFrameWiring(t *testing.T) {
	l := buildDefault(t)
	l.World.SetPointer(core.V2(120, 60))
	l.Step(dt)

	if got := l.World.Zoom(); got != 2 {
		t.Errorf("zoom = %v, want 2", got)
	}
	if got := l.World.WorldPosition(l.Entity("Reticle")); got != core.V2(120, 60) {
		t.Errorf("reticle at %v", got)
	}
	if target, ok := l.Aim.AimTarget(); !ok || target != core.V2(120, 60) {
		t.Errorf("aim slot = %v, %v", target, ok)
	}
}

func TestPlayerLandsAndWalks(t *testing.T) {
	l := buildDefault(t)
	settle(t, l)

	if y := l.World.WorldPosition(l.Player()).Y(); y < 14.9 || y > 15.1 {
		t.Errorf("resting y = %v, want 15", y)
	}
	if got := l.World.Animation(l.Entity("Sprite")).Name; got != "Player_Idle" {
		t.Errorf("idle animation = %q", got)
	}

	start := l.World.WorldPosition(l.Player()).X()
	l.World.PressKey(host.KeyD)
	for i := 0; i < 30; i++ {
		l.Step(dt)
	}
	if x := l.World.WorldPosition(l.Player()).X(); x <= start {
		t.Errorf("player did not move right: %v -> %v", start, x)
	}
	if got := l.World.Animation(l.Entity("Sprite")).Name; got != "Player_Walk" {
		t.Errorf("walk animation = %q", got)
	}
	if s := l.Stats(); s.Footsteps == 0 || s.Distance <= 0 {
		t.Errorf("stats = %+v", s)
	}
}

func TestPlayerJumps(t *testing.T) {
	l := buildDefault(t)
	settle(t, l)
	rest := l.World.WorldPosition(l.Player()).Y()
	if h := l.Stats().MaxHeight; h != 0 {
		t.Errorf("max height after the spawn drop = %v, want 0", h)
	}

	l.World.TapKey(host.KeySpace)
	l.Step(dt)
	if got := l.Stats().Jumps; got != 1 {
		t.Fatalf("jumps = %d, want 1", got)
	}

	peak := rest
	for i := 0; i < 60; i++ {
		l.Step(dt)
		if y := l.World.WorldPosition(l.Player()).Y(); y > peak {
			peak = y
		}
	}
	if peak-rest < 30 {
		t.Errorf("jump peak %v above rest, want at least 30", peak-rest)
	}
	if got := l.Stats().MaxHeight; core.Abs(got-(peak-rest)) > 1e-3 {
		t.Errorf("max height = %v, want %v measured from the landing height", got, peak-rest)
	}
}

func TestDestroyedPlayerStopsActing(t *testing.T) {
	l := buildDefault(t)
	settle(t, l)
	before := l.Stats()

	l.World.DestroyEntity(l.Player())
	l.World.PressKey(host.KeyD)
	for i := 0; i < 30; i++ {
		l.Step(dt)
	}
	l.World.TapKey(host.KeySpace)
	for i := 0; i < 10; i++ {
		l.Step(dt)
	}

	if _, ok := l.Character(); ok {
		t.Error("character still attached to a destroyed player")
	}
	for _, id := range []host.EntityID{l.Player(), l.Entity("Arm"), l.Entity("Sprite")} {
		if n := len(l.Runtime.Behaviors(id)); n != 0 {
			t.Errorf("entity %d keeps %d behaviors", id, n)
		}
	}
	st := l.Stats()
	if st.Footsteps != before.Footsteps || st.Jumps != before.Jumps {
		t.Errorf("destroyed player made sounds: before %+v, after %+v", before, st)
	}
	if st.Frames != before.Frames+40 {
		t.Errorf("frames = %d, want %d", st.Frames, before.Frames+40)
	}
}

func TestRespawnBelowBounds(t *testing.T) {
	l := buildDefault(t)
	l.World.SetWorldPosition(l.Player(), core.V2(0, -500))
	l.Step(dt)

	if got := l.Stats().Respawns; got != 1 {
		t.Errorf("respawns = %d, want 1", got)
	}
	if got := l.World.WorldPosition(l.Player()); got != core.V2(0, 40) {
		t.Errorf("respawned at %v, want (0,40)", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown kind", "entities:\n  - name: A\n    behaviors:\n      - kind: teleporter\n", "unknown kind"},
		{"bad props", "entities:\n  - name: A\n    behaviors:\n      - kind: camera_zoom\n        props: {zoom: [1, 2]}\n", "camera_zoom"},
		{"no entities", "name: empty\n", "no entities"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config.LevelConfig
			if err := yaml.Unmarshal([]byte(tt.yaml), &cfg); err != nil {
				t.Fatal(err)
			}
			_, err := Build(cfg, WithLogger(log.New(&bytes.Buffer{})))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Build() error = %v, want %q", err, tt.want)
			}
		})
	}
}
