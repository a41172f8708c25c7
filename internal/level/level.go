// Package level assembles a playable scene from a level configuration and
// advances it frame by frame.
package level

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
	"github.com/vovakirdan/tui-platformer/internal/scripts"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// PlayerName is the entity the level tracks for respawns and stats.
const PlayerName = "Player"

// Sprite is a drawable entity.
type Sprite struct {
	ID    host.EntityID
	Name  string
	Glyph rune
	Color core.Color
	Solid bool // Drawn as its collider box
}

// Level is a built scene.
type Level struct {
	Name    string
	World   *sim.World
	Runtime *behavior.Runtime
	Aim     *scripts.AimSlot

	cfg     config.LevelConfig
	ids     map[string]host.EntityID
	sprites []Sprite
	player  host.EntityID
	spawn   core.Vec2
	stats   Stats
	rest    float32 // Player height at its first landing
	landed  bool
	logger  *log.Logger
}

// Option configures Build.
type Option func(*options)

type options struct {
	logger *log.Logger
	sink   sim.SoundSink
}

// WithLogger sets the logger for the level, its world and its behaviors.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSoundSink routes the world's audio requests to sink.
func WithSoundSink(sink sim.SoundSink) Option {
	return func(o *options) { o.sink = sink }
}

var colorNames = map[string]core.Color{
	"":         core.ColorDefault,
	"default":  core.ColorDefault,
	"platform": core.ColorPlatform,
	"player":   core.ColorPlayer,
	"arm":      core.ColorArm,
	"reticle":  core.ColorReticle,
	"hud":      core.ColorHUD,
	"warning":  core.ColorWarning,
	"dim":      core.ColorDim,
}

// Build spawns every entity of cfg and attaches its behaviors.
// Behaviors that take an aim slot share the level's.
func Build(cfg config.LevelConfig, opts ...Option) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	worldOpts := []sim.Option{sim.WithLogger(o.logger.WithPrefix("sim"))}
	if cfg.Gravity != 0 {
		worldOpts = append(worldOpts, sim.WithGravity(cfg.Gravity))
	}
	if o.sink != nil {
		worldOpts = append(worldOpts, sim.WithSoundSink(o.sink))
	}
	w := sim.NewWorld(worldOpts...)

	l := &Level{
		Name:    cfg.Name,
		World:   w,
		Runtime: behavior.NewRuntime(w, behavior.WithLogger(o.logger)),
		Aim:     &scripts.AimSlot{},
		cfg:     cfg,
		ids:     make(map[string]host.EntityID, len(cfg.Entities)),
		logger:  o.logger.WithPrefix("level"),
	}

	for _, ec := range cfg.Entities {
		id := w.Spawn(entitySpec(ec, l.ids[ec.Parent]))
		if _, dup := l.ids[ec.Name]; !dup {
			l.ids[ec.Name] = id
		}
		if s, ok := sprite(id, ec); ok {
			l.sprites = append(l.sprites, s)
		}
		for _, bc := range ec.Behaviors {
			if err := l.attach(id, bc); err != nil {
				return nil, fmt.Errorf("level: entity %q: %w", ec.Name, err)
			}
		}
	}

	l.player = l.ids[PlayerName]
	l.spawn = w.WorldPosition(l.player)
	l.logger.Info("level built", "name", cfg.Name, "entities", len(cfg.Entities), "behaviors", l.Runtime.Len())
	return l, nil
}

func (l *Level) attach(id host.EntityID, bc config.BehaviorConfig) error {
	b, err := behavior.Create(bc.Kind, behavior.NewProps(bc.RawProps()))
	if err != nil {
		return err
	}
	if u, ok := b.(scripts.AimUser); ok {
		u.UseAim(l.Aim)
	}
	return l.Runtime.Attach(id, b)
}

func entitySpec(ec config.EntityConfig, parent host.EntityID) sim.EntitySpec {
	spec := sim.EntitySpec{
		Name:     ec.Name,
		Parent:   parent,
		Position: core.V2(ec.Position[0], ec.Position[1]),
		Scale:    core.V2(ec.Scale[0], ec.Scale[1]),
		Rotation: ec.Rotation,
		Depth:    ec.Depth,
		Layer:    ec.Layer,
	}
	if ec.Collider != nil {
		size := core.V2(ec.Collider[0], ec.Collider[1])
		spec.Collider = &size
	}
	if ec.Body != nil {
		spec.Body = &sim.BodySpec{
			Mass:         ec.Body.Mass,
			Friction:     ec.Body.Friction,
			Dynamic:      ec.Body.Dynamic,
			GravityScale: ec.Body.GravityScale,
		}
	}
	return spec
}

func sprite(id host.EntityID, ec config.EntityConfig) (Sprite, bool) {
	if ec.Glyph == "" {
		return Sprite{}, false
	}
	r, _ := utf8.DecodeRuneInString(ec.Glyph)
	return Sprite{
		ID:    id,
		Name:  ec.Name,
		Glyph: r,
		Color: colorNames[ec.Color],
		Solid: ec.Collider != nil && (ec.Body == nil || !ec.Body.Dynamic),
	}, true
}

// Step runs one frame: behaviors first, then physics.
func (l *Level) Step(dt float32) {
	l.Runtime.Frame(dt)
	l.World.Step(dt)
	l.track(dt)
}

// Entity returns the first entity declared with name, or host.None.
func (l *Level) Entity(name string) host.EntityID {
	return l.ids[name]
}

// Player returns the player entity, or host.None when the level has none.
func (l *Level) Player() host.EntityID {
	return l.player
}

// Character returns the player's controller.
func (l *Level) Character() (*scripts.Character, bool) {
	return behavior.Get[*scripts.Character](l.Runtime, l.player)
}

// Sprites returns the drawable entities in declaration order.
func (l *Level) Sprites() []Sprite {
	return l.sprites
}

// Respawn puts the player back at its starting point, at rest.
func (l *Level) Respawn() {
	if l.player == host.None {
		return
	}
	l.World.SetWorldPosition(l.player, l.spawn)
	l.World.SetVelocity(l.player, core.Vec2{})
	l.stats.Respawns++
	l.logger.Debug("player respawned", "frame", l.stats.Frames)
}
