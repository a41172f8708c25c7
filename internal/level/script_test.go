package level

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/host"
)

func TestParseScript(t *testing.T) {
	sc, err := ParseScript("D:30, Space ,-:20,a+space:2")
	if err != nil {
		t.Fatalf("ParseScript() error: %v", err)
	}

	want := Script{
		{Keys: []host.KeyCode{host.KeyD}, Frames: 30},
		{Keys: []host.KeyCode{host.KeySpace}, Frames: 1},
		{Frames: 20},
		{Keys: []host.KeyCode{host.KeyA, host.KeySpace}, Frames: 2},
	}
	if len(sc) != len(want) {
		t.Fatalf("steps = %d, want %d", len(sc), len(want))
	}
	for i := range want {
		if sc[i].Frames != want[i].Frames || len(sc[i].Keys) != len(want[i].Keys) {
			t.Errorf("step %d = %+v, want %+v", i, sc[i], want[i])
			continue
		}
		for j := range want[i].Keys {
			if sc[i].Keys[j] != want[i].Keys[j] {
				t.Errorf("step %d key %d = %v, want %v", i, j, sc[i].Keys[j], want[i].Keys[j])
			}
		}
	}
	if got := sc.Frames(); got != 53 {
		t.Errorf("Frames() = %d, want 53", got)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"unknown key", "X:3"},
		{"zero frames", "D:0"},
		{"negative frames", "D:-2"},
		{"not a number", "D:lots"},
		{"empty key", "D+:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript(tt.script); !errors.Is(err, ErrBadScript) {
				t.Errorf("ParseScript(%q) error = %v, want ErrBadScript", tt.script, err)
			}
		})
	}
}

func TestParseScriptEmpty(t *testing.T) {
	sc, err := ParseScript("  ")
	if err != nil || len(sc) != 0 {
		t.Errorf("ParseScript(blank) = %v, %v", sc, err)
	}
}

func TestPlayWalksRight(t *testing.T) {
	l := buildDefault(t)
	settle(t, l)
	start := l.World.WorldPosition(l.Player())

	sc, _ := ParseScript("D:60")
	l.Play(sc, 0, dt, nil)

	if got := l.World.WorldPosition(l.Player()); got.X() <= start.X()+10 {
		t.Errorf("player x = %v, want well right of %v", got.X(), start.X())
	}
	if l.World.KeyHeld(host.KeyD) {
		t.Error("D still held after the script")
	}
	if l.Stats().Footsteps == 0 {
		t.Error("walking produced no footsteps")
	}
}

func TestPlayObservesEveryFrame(t *testing.T) {
	l := buildDefault(t)
	sc, _ := ParseScript("D:5")

	var seen []int
	l.Play(sc, 12, dt, func(f int) { seen = append(seen, f) })

	if len(seen) != 12 || seen[0] != 1 || seen[11] != 12 {
		t.Errorf("observed frames = %v, want 1..12", seen)
	}
	if got := l.Stats().Frames; got != 12 {
		t.Errorf("stats frames = %d, want 12", got)
	}
}

func TestPlayJumpAndDash(t *testing.T) {
	tests := []struct {
		name   string
		script string
		jumps  int
		dashes int
	}{
		{"single jump", "Space,-:60", 1, 0},
		{"held across steps is one press", "Space,Space,-:60", 1, 0},
		{"second press in the air dashes", "Space,-:30,Space,-:60", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := buildDefault(t)
			settle(t, l)
			before := l.Stats()

			sc, err := ParseScript(tt.script)
			if err != nil {
				t.Fatal(err)
			}
			l.Play(sc, 0, dt, nil)

			st := l.Stats()
			if got := st.Jumps - before.Jumps; got != tt.jumps {
				t.Errorf("jumps = %d, want %d", got, tt.jumps)
			}
			if got := st.Dashes - before.Dashes; got != tt.dashes {
				t.Errorf("dashes = %d, want %d", got, tt.dashes)
			}
		})
	}
}
