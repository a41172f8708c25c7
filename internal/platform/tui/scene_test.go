package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

func buildLevel(t *testing.T) *level.Level {
	t.Helper()
	cfg, err := config.ParseLevel(config.GetDefaultYAML("level"))
	if err != nil {
		t.Fatalf("ParseLevel() error: %v", err)
	}
	l, err := level.Build(cfg, level.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return l
}

func TestCameraWorldToCell(t *testing.T) {
	cam := Camera{Zoom: 2, Width: 80, Height: 20}

	tests := []struct {
		name string
		p    core.Vec2
		x, y int
	}{
		{"center", core.V2(0, 0), 40, 10},
		{"right", core.V2(100, 0), 50, 10},
		{"up", core.V2(0, 40), 40, 8},
		{"down left", core.V2(-50, -60), 35, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cam.WorldToCell(tt.p)
			if x != tt.x || y != tt.y {
				t.Errorf("WorldToCell(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cams := []Camera{
		{Zoom: 2, Width: 80, Height: 20},
		{Center: core.V2(130, -25), Zoom: 1, Width: 61, Height: 17},
		{Center: core.V2(-7, 3), Zoom: 0, Width: 40, Height: 10}, // zoom falls back to 1
	}
	for _, cam := range cams {
		for _, c := range [][2]int{{0, 0}, {cam.Width - 1, cam.Height - 1}, {cam.Width / 2, cam.Height / 2}, {13, 7}} {
			x, y := cam.WorldToCell(cam.CellToWorld(c[0], c[1]))
			if x != c[0] || y != c[1] {
				t.Errorf("%+v: cell %v round-tripped to (%d, %d)", cam, c, x, y)
			}
		}
	}
}

func TestArmGlyph(t *testing.T) {
	tests := []struct {
		deg  float32
		want rune
	}{
		{0, '-'},
		{45, '/'},
		{90, '|'},
		{135, '\\'},
		{180, '-'},
		{-45, '\\'},
		{-90, '|'},
		{20, '-'},
		{25, '/'},
	}

	for _, tt := range tests {
		if got := armGlyph(tt.deg); got != tt.want {
			t.Errorf("armGlyph(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}

func TestDrawScene(t *testing.T) {
	l := buildLevel(t)
	s := core.NewScreen(80, 20)
	cam := Camera{Center: core.V2(0, 40), Zoom: 2, Width: 80, Height: 20}

	DrawScene(s, l, cam)

	checks := []struct {
		name string
		x, y int
		want rune
	}{
		{"player", 40, 10, '@'},
		{"arm points right", 41, 9, '-'},
		{"reticle", 44, 10, '+'},
		{"ground left edge", 0, 12, '='},
		{"ground right edge", 79, 12, '='},
		{"below ground", 40, 13, ' '},
	}
	for _, c := range checks {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("%s: cell (%d, %d) = %q, want %q\n%s", c.name, c.x, c.y, got, c.want, s.String())
		}
	}

	if got := s.GetCell(40, 10).Color; got != core.ColorPlayer {
		t.Errorf("player color = %v, want %v", got, core.ColorPlayer)
	}
}

func TestDrawSceneMirroredArm(t *testing.T) {
	l := buildLevel(t)
	l.World.SetLocalScale(l.Player(), core.V2(-1, 1))

	s := core.NewScreen(80, 20)
	DrawScene(s, l, Camera{Center: core.V2(0, 40), Zoom: 2, Width: 80, Height: 20})

	// The arm's offset mirrors to x=-4 and it points left.
	if got := s.Get(38, 9); got != '-' {
		t.Errorf("mirrored arm cell = %q, want '-'\n%s", got, s.String())
	}
}
