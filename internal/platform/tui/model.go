package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/scripts"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const hudHeight = 1

// Reticle nudge per key press, in cells.
const (
	aimStepX = 2
	aimStepY = 1
)

// Muter silences an audio sink.
type Muter interface {
	SetMuted(bool)
}

// Session identifies who is playing, for the run log.
type Session struct {
	Source string // "local" or "ssh"
	Player string
}

// Model is the Bubble Tea model for playing a level.
type Model struct {
	level   *level.Level
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	session Session
	keys    KeyMap
	help    help.Model
	holds   *holdTracker
	audio   Muter
	logger  *log.Logger

	now        time.Time
	pointerX   int
	pointerY   int
	pointerSet bool
	muted      bool
	quitting   bool
	saved      bool
	runID      string
}

// Option configures a Model.
type Option func(*Model)

// WithStore saves the run to store when the player quits.
func WithStore(store *storage.Store) Option {
	return func(m *Model) { m.store = store }
}

// WithSession tags the saved run.
func WithSession(s Session) Option {
	return func(m *Model) { m.session = s }
}

// WithAudio enables the mute key for a.
func WithAudio(a Muter) Option {
	return func(m *Model) { m.audio = a }
}

// WithLogger sets the model's logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l.WithPrefix("tui") }
}

// NewModel creates a new Bubble Tea model playing lvl.
func NewModel(lvl *level.Level, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	h := help.New()
	h.ShowAll = false

	m := Model{
		level:   lvl,
		screen:  core.NewScreen(cfg.ScreenW, viewportHeight(cfg.ScreenH, 1)),
		config:  cfg,
		session: Session{Source: "local"},
		keys:    DefaultKeyMap(),
		help:    h,
		holds:   newHoldTracker(),
		logger:  log.Default().WithPrefix("tui"),
		now:     time.Now(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	return m
}

func viewportHeight(screenH, helpLines int) int {
	return core.MaxInt(screenH-hudHeight-helpLines, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointerX, m.pointerY = msg.X, msg.Y-hudHeight
		m.pointerSet = true
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.pointerSet = false
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.level.World

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Pause):
		w.SetPaused(!w.Paused())

	case key.Matches(msg, m.keys.Enhance):
		w.SetJumpEnhanced(!w.JumpEnhanced())

	case key.Matches(msg, m.keys.Respawn):
		m.level.Respawn()

	case key.Matches(msg, m.keys.Mute):
		if m.audio != nil {
			m.muted = !m.muted
			m.audio.SetMuted(m.muted)
		}

	case key.Matches(msg, m.keys.AimUp):
		m.nudgePointer(0, -aimStepY)
	case key.Matches(msg, m.keys.AimDown):
		m.nudgePointer(0, aimStepY)
	case key.Matches(msg, m.keys.AimLeft):
		m.nudgePointer(-aimStepX, 0)
	case key.Matches(msg, m.keys.AimRight):
		m.nudgePointer(aimStepX, 0)

	default:
		if k, ok := m.keys.heldKey(msg); ok {
			m.hold(k)
		}
	}
	return m, nil
}

// hold presses k, releasing the opposite direction at once.
func (m *Model) hold(k host.KeyCode) {
	w := m.level.World
	switch k {
	case host.KeyA:
		if m.holds.release(host.KeyD) {
			w.ReleaseKey(host.KeyD)
		}
	case host.KeyD:
		if m.holds.release(host.KeyA) {
			w.ReleaseKey(host.KeyA)
		}
	}
	if m.holds.press(k, m.now) {
		w.PressKey(k)
	}
}

func (m *Model) nudgePointer(dx, dy int) {
	m.ensurePointer()
	m.pointerX = core.ClampInt(m.pointerX+dx, 0, m.screen.Width()-1)
	m.pointerY = core.ClampInt(m.pointerY+dy, 0, m.screen.Height()-1)
}

// ensurePointer places the pointer ahead of the player until the mouse or
// the aim keys move it.
func (m *Model) ensurePointer() {
	if m.pointerSet {
		return
	}
	m.pointerX = m.screen.Width()/2 + 8
	m.pointerY = m.screen.Height()/2 - 2
	m.pointerSet = true
}

// camera follows the player at the world's zoom.
func (m Model) camera() Camera {
	w := m.level.World
	return Camera{
		Center: w.WorldPosition(m.level.Player()),
		Zoom:   w.Zoom(),
		Width:  m.screen.Width(),
		Height: m.screen.Height(),
	}
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	w := m.level.World
	m.now = now

	for _, k := range m.holds.expire(now) {
		w.ReleaseKey(k)
	}

	m.resize()
	m.ensurePointer()
	w.SetPointer(m.camera().CellToWorld(m.pointerX, m.pointerY))

	dt := m.config.FrameDelta()
	if w.Paused() {
		dt = 0
	}
	m.level.Step(dt)

	return m, tickCmd(m.config.TickRate)
}

// resize fits the scene viewport between the HUD and the help view.
func (m *Model) resize() {
	h := viewportHeight(m.config.ScreenH, lipgloss.Height(m.help.View(m.keys)))
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != h {
		m.screen.Resize(m.config.ScreenW, h)
	}
}

// saveRun records the run once. Failures are logged; the game quits anyway.
func (m *Model) saveRun() {
	if m.store == nil || m.saved {
		return
	}
	st := m.level.Stats()
	if st.Frames == 0 {
		return
	}
	id, err := m.store.SaveRun(RunRecord(m.level.Name, m.session, st))
	if err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.saved = true
	m.runID = id
	m.logger.Info("run saved", "id", id, "frames", st.Frames, "max_height", st.MaxHeight)
}

// RunRecord converts level stats into a run log entry.
func RunRecord(levelName string, s Session, st level.Stats) storage.Run {
	return storage.Run{
		Level:     levelName,
		Source:    s.Source,
		Player:    s.Player,
		Frames:    st.Frames,
		Duration:  st.Elapsed,
		Jumps:     st.Jumps,
		Dashes:    st.Dashes,
		Footsteps: st.Footsteps,
		Respawns:  st.Respawns,
		MaxHeight: float64(st.MaxHeight),
		Distance:  float64(st.Distance),
	}
}

// RunID returns the ID of the saved run, or "" if none was saved.
func (m Model) RunID() string {
	return m.runID
}

// hud renders the status line.
func (m Model) hud() string {
	l := m.level
	st := l.Stats()

	parts := []string{l.Name}
	if c, ok := l.Character(); ok {
		cs := c.State()
		ground := "air"
		if cs.Grounded {
			ground = "ground"
		}
		parts = append(parts,
			ground,
			fmt.Sprintf("dashes %d/%d", cs.RemainingDashes, c.Config().TotalDashes),
		)
	}
	if a, ok := behavior.GetInChildren[*scripts.CharacterAnim](l.Runtime, l.Player()); ok && a.Current() != "" {
		parts = append(parts, a.Current())
	}
	parts = append(parts,
		fmt.Sprintf("height %.0f", st.MaxHeight),
		fmt.Sprintf("jumps %d", st.Jumps),
		st.Elapsed.Truncate(time.Second).String(),
	)

	hudStyle := colorStyles[core.ColorHUD]
	line := hudStyle.Render(strings.Join(parts, "  "))

	var flags []string
	if l.World.Paused() {
		flags = append(flags, "PAUSED")
	}
	if l.World.JumpEnhanced() {
		flags = append(flags, "ENHANCED")
	}
	if m.muted {
		flags = append(flags, "MUTED")
	}
	if len(flags) > 0 {
		line += "  " + colorStyles[core.ColorWarning].Render(strings.Join(flags, " "))
	}
	return line
}

// saveScreenshot writes the current scene as plain text.
func (m *Model) saveScreenshot() {
	DrawScene(m.screen, m.level, m.camera())

	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.level.Name, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawScene(m.screen, m.level, m.camera())

	helpStyle := colorStyles[core.ColorDim]
	return m.hud() + "\n" + RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for lvl and returns the final model.
func Run(lvl *level.Level, cfg core.RuntimeConfig, opts ...Option) (Model, error) {
	model := NewModel(lvl, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
