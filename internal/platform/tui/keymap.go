package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/host"
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	AimUp      key.Binding
	AimDown    key.Binding
	AimLeft    key.Binding
	AimRight   key.Binding
	Pause      key.Binding
	Enhance    key.Binding
	Respawn    key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.AimUp, k.AimDown, k.AimLeft, k.AimRight},
		{k.Pause, k.Enhance, k.Respawn, k.Mute},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "w", "up"),
			key.WithHelp("space", "jump/dash"),
		),
		AimUp: key.NewBinding(
			key.WithKeys("i", "shift+up"),
			key.WithHelp("i", "aim up"),
		),
		AimDown: key.NewBinding(
			key.WithKeys("k", "shift+down"),
			key.WithHelp("k", "aim down"),
		),
		AimLeft: key.NewBinding(
			key.WithKeys("j", "shift+left"),
			key.WithHelp("j", "aim left"),
		),
		AimRight: key.NewBinding(
			key.WithKeys("l", "shift+right"),
			key.WithHelp("l", "aim right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Enhance: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "enhanced jump"),
		),
		Respawn: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "respawn"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// heldKey maps a key message to the host key it holds down.
func (k KeyMap) heldKey(msg tea.KeyMsg) (host.KeyCode, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return host.KeyA, true
	case key.Matches(msg, k.Right):
		return host.KeyD, true
	case key.Matches(msg, k.Jump):
		return host.KeySpace, true
	}
	return 0, false
}

// Hold windows. Terminals send no key-up events, so a key counts as held
// until its window runs out without an auto-repeat arriving. The first
// window covers the typical auto-repeat delay.
const (
	moveInitialHold = 500 * time.Millisecond
	jumpInitialHold = 250 * time.Millisecond
	repeatHold      = 120 * time.Millisecond
)

type hold struct {
	until   time.Time
	repeats int
}

// holdTracker emulates key-up for terminal input.
type holdTracker struct {
	keys map[host.KeyCode]*hold
}

func newHoldTracker() *holdTracker {
	return &holdTracker{keys: make(map[host.KeyCode]*hold)}
}

// press records a key event at now. It reports whether the key went down,
// as opposed to an auto-repeat of a key already held.
func (t *holdTracker) press(k host.KeyCode, now time.Time) bool {
	if h, ok := t.keys[k]; ok {
		h.repeats++
		h.until = now.Add(repeatHold)
		return false
	}
	initial := moveInitialHold
	if k == host.KeySpace {
		initial = jumpInitialHold
	}
	t.keys[k] = &hold{until: now.Add(initial)}
	return true
}

// release drops k immediately. It reports whether k was held.
func (t *holdTracker) release(k host.KeyCode) bool {
	if _, ok := t.keys[k]; !ok {
		return false
	}
	delete(t.keys, k)
	return true
}

// expire drops keys whose window has run out and returns them.
func (t *holdTracker) expire(now time.Time) []host.KeyCode {
	var out []host.KeyCode
	for k, h := range t.keys {
		if now.After(h.until) {
			out = append(out, k)
			delete(t.keys, k)
		}
	}
	return out
}

func (t *holdTracker) held(k host.KeyCode) bool {
	_, ok := t.keys[k]
	return ok
}
