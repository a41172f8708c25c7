// Package sim is an in-memory reference implementation of the host boundary.
// It owns entities, a small rigid body integrator over a resolv space,
// raycasts, polled input, and records of animation and audio requests, so
// behaviors can run without the native engine.
package sim

import (
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// EntitySpec describes an entity to spawn.
type EntitySpec struct {
	Name     string
	Parent   host.EntityID
	Position core.Vec2 // Local to Parent
	Scale    core.Vec2 // Zero means (1, 1)
	Rotation float32
	Depth    float32

	Body     *BodySpec
	Collider *core.Vec2 // Box size centered on the entity
	Layer    int        // Collision layer (0-31)
}

// BodySpec describes a physics body. Static bodies only collide.
type BodySpec struct {
	Mass         float32
	Friction     float32
	Dynamic      bool
	GravityScale float32
}

type record struct {
	id       host.EntityID
	name     string
	parent   host.EntityID
	children []host.EntityID

	localPos   core.Vec2
	localScale core.Vec2
	localRot   float32
	depth      float32

	body     *host.PhysicsBody
	dynamic  bool
	gravity  float32
	collider *core.Vec2
	layer    int
	grounded bool
	obj      *resolv.Object

	anim AnimState
}

// World is the reference host. All methods are safe for concurrent use;
// behaviors must not be invoked while a World lock is held.
type World struct {
	mu      sync.RWMutex
	nextID  host.EntityID
	records map[host.EntityID]*record
	prefabs map[string]EntitySpec

	gravity float32
	space   *resolv.Space
	probe   *resolv.Object

	input inputState
	state struct {
		paused       bool
		jumpEnhanced bool
		zoom         float32
	}
	audio audioState

	logger *log.Logger
}

// Option configures a World.
type Option func(*World)

// WithGravity sets the downward acceleration applied to dynamic bodies.
func WithGravity(g float32) Option {
	return func(w *World) { w.gravity = g }
}

// WithLogger sets the logger used for boundary diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithSoundSink forwards every audio request to sink.
func WithSoundSink(sink SoundSink) Option {
	return func(w *World) { w.audio.sink = sink }
}

// DefaultGravity is the downward acceleration in world units per second squared.
const DefaultGravity float32 = 300

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		nextID:  1,
		records: make(map[host.EntityID]*record),
		prefabs: make(map[string]EntitySpec),
		gravity: DefaultGravity,
		logger:  log.Default().WithPrefix("sim"),
	}
	w.state.zoom = 1
	w.space, w.probe = newSpace()
	w.input = newInputState()
	w.audio = newAudioState(w.audio.sink)
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ host.Host = (*World)(nil)

// Spawn creates an entity and returns its handle.
// A Parent the world does not know is ignored.
func (w *World) Spawn(spec EntitySpec) host.EntityID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.spawnLocked(spec)
}

func (w *World) spawnLocked(spec EntitySpec) host.EntityID {
	r := &record{
		id:         w.nextID,
		name:       spec.Name,
		localPos:   spec.Position,
		localScale: spec.Scale,
		localRot:   spec.Rotation,
		depth:      spec.Depth,
		layer:      spec.Layer,
	}
	w.nextID++
	if r.localScale == (core.Vec2{}) {
		r.localScale = core.V2(1, 1)
	}
	if spec.Body != nil {
		r.body = &host.PhysicsBody{Mass: spec.Body.Mass, Friction: spec.Body.Friction}
		r.dynamic = spec.Body.Dynamic
		r.gravity = spec.Body.GravityScale
	}
	if spec.Collider != nil {
		size := *spec.Collider
		r.collider = &size
	}
	if p, ok := w.records[spec.Parent]; ok {
		r.parent = p.id
		p.children = append(p.children, r.id)
	}
	w.records[r.id] = r
	w.addColliderLocked(r)
	return r.id
}

// RegisterPrefab makes spec available to InstantiatePrefab under name.
func (w *World) RegisterPrefab(name string, spec EntitySpec) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.prefabs[name] = spec
}

// Entities returns every live entity id in ascending order.
func (w *World) Entities() []host.EntityID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := make([]host.EntityID, 0, len(w.records))
	for id := range w.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Name returns the entity's name, or "" for unknown handles.
func (w *World) Name(id host.EntityID) string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.records[id]; ok {
		return r.name
	}
	return ""
}

// Exists reports whether the world holds id.
func (w *World) Exists(id host.EntityID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.records[id]
	return ok
}

// lookup returns the record for id, logging unknown handles.
// Caller holds the lock.
func (w *World) lookup(id host.EntityID, call string) (*record, bool) {
	r, ok := w.records[id]
	if !ok {
		w.logger.Debug("unknown entity handle", "call", call, "entity", id)
	}
	return r, ok
}

// FindEntity returns the lowest-numbered entity with the given name.
func (w *World) FindEntity(name string) host.EntityID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	found := host.None
	for id, r := range w.records {
		if r.name == name && (found == host.None || id < found) {
			found = id
		}
	}
	return found
}

// Children returns the direct children of id in spawn order.
func (w *World) Children(id host.EntityID) []host.EntityID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	r, ok := w.lookup(id, "Children")
	if !ok {
		return nil
	}
	out := make([]host.EntityID, len(r.children))
	copy(out, r.children)
	return out
}

// DestroyEntity removes id and its descendants.
func (w *World) DestroyEntity(id host.EntityID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	r, ok := w.lookup(id, "DestroyEntity")
	if !ok {
		return
	}
	if p, ok := w.records[r.parent]; ok {
		for i, c := range p.children {
			if c == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	w.destroyLocked(r)
}

func (w *World) destroyLocked(r *record) {
	for _, c := range r.children {
		if child, ok := w.records[c]; ok {
			w.destroyLocked(child)
		}
	}
	w.removeColliderLocked(r)
	delete(w.records, r.id)
}

// Instantiate deep-copies original (with children) under parent.
// Passing host.None as parent keeps the copy at the root.
func (w *World) Instantiate(original, parent host.EntityID) host.EntityID {
	w.mu.Lock()
	defer w.mu.Unlock()
	r, ok := w.lookup(original, "Instantiate")
	if !ok {
		return host.None
	}
	return w.cloneLocked(r, parent)
}

func (w *World) cloneLocked(src *record, parent host.EntityID) host.EntityID {
	dst := *src
	dst.id = w.nextID
	w.nextID++
	dst.children = nil
	dst.parent = host.None
	dst.obj = nil
	if src.body != nil {
		b := *src.body
		dst.body = &b
	}
	if src.collider != nil {
		c := *src.collider
		dst.collider = &c
	}
	if p, ok := w.records[parent]; ok {
		dst.parent = p.id
		p.children = append(p.children, dst.id)
	}
	w.records[dst.id] = &dst
	w.addColliderLocked(&dst)
	for _, c := range src.children {
		if child, ok := w.records[c]; ok {
			w.cloneLocked(child, dst.id)
		}
	}
	return dst.id
}

// InstantiatePrefab spawns a registered prefab under parent.
// Unknown prefab names return host.None.
func (w *World) InstantiatePrefab(prefab string, parent host.EntityID) host.EntityID {
	w.mu.Lock()
	defer w.mu.Unlock()
	spec, ok := w.prefabs[prefab]
	if !ok {
		w.logger.Warn("unknown prefab", "prefab", prefab)
		return host.None
	}
	spec.Parent = parent
	return w.spawnLocked(spec)
}
