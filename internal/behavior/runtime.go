package behavior

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/entity"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// slot is one attached behavior with its capabilities resolved.
type slot struct {
	id      host.EntityID
	b       Behavior
	started bool
	dead    bool

	start  Starter
	update Updater
	late   LateUpdater
}

// Runtime owns the attached behaviors of one scene and drives their
// lifecycle. It is not safe for concurrent use; the caller drives it from
// a single goroutine.
type Runtime struct {
	host   host.Host
	logger *log.Logger
	slots  []*slot
	frame  uint64
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithLogger sets the parent logger handed to behaviors.
func WithLogger(l *log.Logger) RuntimeOption {
	return func(rt *Runtime) { rt.logger = l }
}

// NewRuntime creates a runtime bound to h.
func NewRuntime(h host.Host, opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		host:   h,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Host returns the host behaviors run against.
func (rt *Runtime) Host() host.Host {
	return rt.host
}

// Frames returns how many frames have run.
func (rt *Runtime) Frames() uint64 {
	return rt.frame
}

// Attach binds b to the entity id and calls OnCreate if b has one.
// OnStart is deferred to the next Frame.
func (rt *Runtime) Attach(id host.EntityID, b Behavior) error {
	if id == host.None || !rt.host.Exists(id) {
		return ErrNoEntity
	}
	if b == nil {
		return fmt.Errorf("behavior: attach nil behavior to entity %d", id)
	}

	s := &slot{id: id, b: b}
	s.start, _ = b.(Starter)
	s.update, _ = b.(Updater)
	s.late, _ = b.(LateUpdater)

	b.Bind(&Context{
		Entity:  entity.New(rt.host, id),
		Host:    rt.host,
		Logger:  rt.logger.WithPrefix(fmt.Sprintf("%T", b)),
		Runtime: rt,
	})
	rt.slots = append(rt.slots, s)

	if c, ok := b.(Creator); ok {
		c.OnCreate()
	}
	return nil
}

// Detach drops every behavior attached to id. Behaviors detached during a
// frame receive no further callbacks in it.
func (rt *Runtime) Detach(id host.EntityID) int {
	kept := rt.slots[:0]
	removed := 0
	for _, s := range rt.slots {
		if s.id == id {
			s.dead = true
			removed++
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(rt.slots); i++ {
		rt.slots[i] = nil
	}
	rt.slots = kept
	return removed
}

// Frame advances every behavior by dt: pending OnStart calls in attach
// order, then OnUpdate, then LateUpdate. Behaviors attached during a frame
// start on the next one. Behaviors whose entity the host has destroyed are
// dropped, including entities destroyed earlier in the same frame.
func (rt *Runtime) Frame(dt float32) {
	rt.frame++
	rt.dropDestroyed()
	slots := make([]*slot, len(rt.slots))
	copy(slots, rt.slots)

	for _, s := range slots {
		if s.started || !rt.alive(s) {
			continue
		}
		s.started = true
		if s.start != nil {
			s.start.OnStart()
		}
	}
	for _, s := range slots {
		if s.update != nil && rt.alive(s) {
			s.update.OnUpdate(dt)
		}
	}
	for _, s := range slots {
		if s.late != nil && rt.alive(s) {
			s.late.LateUpdate(dt)
		}
	}
	rt.dropDestroyed()
}

func (rt *Runtime) alive(s *slot) bool {
	return !s.dead && rt.host.Exists(s.id)
}

// dropDestroyed detaches every behavior whose entity is gone.
func (rt *Runtime) dropDestroyed() {
	kept := rt.slots[:0]
	for _, s := range rt.slots {
		if !rt.host.Exists(s.id) {
			rt.logger.Debug("dropping behavior of destroyed entity", "entity", s.id, "behavior", fmt.Sprintf("%T", s.b))
			s.dead = true
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(rt.slots); i++ {
		rt.slots[i] = nil
	}
	rt.slots = kept
}

// Behaviors returns the behaviors attached to id in attach order.
func (rt *Runtime) Behaviors(id host.EntityID) []Behavior {
	var out []Behavior
	for _, s := range rt.slots {
		if s.id == id {
			out = append(out, s.b)
		}
	}
	return out
}

// Len returns the number of attached behaviors.
func (rt *Runtime) Len() int {
	return len(rt.slots)
}

// Get returns the first behavior of type T attached to id.
func Get[T any](rt *Runtime, id host.EntityID) (T, bool) {
	for _, s := range rt.slots {
		if s.id != id {
			continue
		}
		if t, ok := s.b.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// GetInChildren searches id, then its descendants depth-first, for a
// behavior of type T.
func GetInChildren[T any](rt *Runtime, id host.EntityID) (T, bool) {
	if t, ok := Get[T](rt, id); ok {
		return t, true
	}
	for _, c := range rt.host.Children(id) {
		if t, ok := GetInChildren[T](rt, c); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
