// Package behavior runs per-entity gameplay logic against a host.
//
// A behavior declares what it needs by implementing any of the lifecycle
// capability interfaces. The runtime resolves them once, when the behavior
// is attached, and never looks them up again.
package behavior

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/entity"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// ErrNoEntity is returned when attaching to the none handle or to an entity
// the host does not hold.
var ErrNoEntity = errors.New("behavior: no such entity")

// Behavior is a unit of per-entity logic.
// Bind is called exactly once, before any lifecycle callback.
type Behavior interface {
	Bind(ctx *Context)
}

// Creator runs immediately on attach.
type Creator interface {
	OnCreate()
}

// Starter runs once, at the start of the first frame after attach.
type Starter interface {
	OnStart()
}

// Updater runs every frame.
type Updater interface {
	OnUpdate(dt float32)
}

// LateUpdater runs every frame after all Updaters.
type LateUpdater interface {
	LateUpdate(dt float32)
}

// Context is what a behavior receives when bound.
type Context struct {
	Entity  entity.Handle
	Host    host.Host
	Logger  *log.Logger
	Runtime *Runtime
}

// Base stores the Context for embedding behaviors.
type Base struct {
	Ctx *Context
}

// Bind implements Behavior.
func (b *Base) Bind(ctx *Context) {
	b.Ctx = ctx
}

// Entity returns the owning entity.
func (b *Base) Entity() entity.Handle {
	return b.Ctx.Entity
}

// Host returns the host the behavior runs against.
func (b *Base) Host() host.Host {
	return b.Ctx.Host
}

// Logger returns the behavior's logger.
func (b *Base) Logger() *log.Logger {
	return b.Ctx.Logger
}
