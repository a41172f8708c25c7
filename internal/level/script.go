package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/host"
)

// ErrBadScript is returned for input scripts that cannot be parsed.
var ErrBadScript = errors.New("level: bad input script")

// ScriptStep holds keys down for a number of frames.
type ScriptStep struct {
	Keys   []host.KeyCode // Empty for an idle step
	Frames int
}

// Script is a sequence of input steps, parsed from text such as
// "D:30,Space,-:20,A+Space:2". Each comma-separated step names keys joined
// by '+' ("-" for none) and an optional frame count, default 1. A key held
// across two consecutive steps stays down without a new press.
type Script []ScriptStep

// ParseScript parses the textual script form.
func ParseScript(s string) (Script, error) {
	var sc Script
	s = strings.TrimSpace(s)
	if s == "" {
		return sc, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		keysPart, countPart, hasCount := strings.Cut(part, ":")

		step := ScriptStep{Frames: 1}
		if hasCount {
			n, err := strconv.Atoi(strings.TrimSpace(countPart))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: step %q: frame count must be a positive integer", ErrBadScript, part)
			}
			step.Frames = n
		}

		keysPart = strings.TrimSpace(keysPart)
		if keysPart != "-" {
			for _, name := range strings.Split(keysPart, "+") {
				k, ok := parseKeyName(strings.TrimSpace(name))
				if !ok {
					return nil, fmt.Errorf("%w: step %q: unknown key %q", ErrBadScript, part, name)
				}
				step.Keys = append(step.Keys, k)
			}
		}
		sc = append(sc, step)
	}
	return sc, nil
}

// parseKeyName accepts key names in any case.
func parseKeyName(name string) (host.KeyCode, bool) {
	if name == "" {
		return 0, false
	}
	lower := strings.ToLower(name)
	return host.ParseKey(strings.ToUpper(lower[:1]) + lower[1:])
}

// Frames returns the script's total length.
func (sc Script) Frames() int {
	n := 0
	for _, st := range sc {
		n += st.Frames
	}
	return n
}

// Play drives the level with sc for frames frames of dt seconds, idling once
// the script runs out. A non-positive frames plays the script's length.
// observe, when set, is called after every frame with its 1-based number.
func (l *Level) Play(sc Script, frames int, dt float32, observe func(frame int)) {
	if frames <= 0 {
		frames = sc.Frames()
	}

	var held []host.KeyCode
	release := func() {
		for _, k := range held {
			l.World.ReleaseKey(k)
		}
		held = nil
	}

	step, left := -1, 0
	for f := 1; f <= frames; f++ {
		if left == 0 {
			release()
			if step+1 < len(sc) {
				step++
				left = sc[step].Frames
				held = sc[step].Keys
				for _, k := range held {
					l.World.PressKey(k)
				}
			}
		}

		l.Step(dt)
		if left > 0 {
			left--
		}
		if observe != nil {
			observe(f)
		}
	}
	release()
}
