// Package entity wraps host entity identifiers in a handle whose accessors
// read through to, and write through to, the host on every call.
package entity

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// Handle is a weak reference to a host entity.
// It holds no state of its own; validity is decided by the host.
type Handle struct {
	id host.EntityID
	h  host.Host
}

// New creates a handle for id on h.
func New(h host.Host, id host.EntityID) Handle {
	return Handle{id: id, h: h}
}

// Find looks an entity up by name. The returned handle is invalid when the
// host reports no match.
func Find(h host.Host, name string) Handle {
	return Handle{id: h.FindEntity(name), h: h}
}

// ID returns the raw host identifier.
func (e Handle) ID() host.EntityID {
	return e.id
}

// Valid reports whether the handle names an entity at all.
// It does not check that the host still holds it.
func (e Handle) Valid() bool {
	return e.id != host.None && e.h != nil
}

// Alive reports whether the host still holds the entity.
func (e Handle) Alive() bool {
	return e.Valid() && e.h.Exists(e.id)
}

// Host returns the host the handle resolves against.
func (e Handle) Host() host.Host {
	return e.h
}

// Transform returns a snapshot of the whole transform.
func (e Handle) Transform() host.Transform {
	return e.h.Transform(e.id)
}

// Position returns the world position.
func (e Handle) Position() core.Vec2 {
	return e.h.WorldPosition(e.id)
}

// SetPosition writes the world position.
func (e Handle) SetPosition(p core.Vec2) {
	e.h.SetWorldPosition(e.id, p)
}

// LocalPosition returns the position relative to the parent.
func (e Handle) LocalPosition() core.Vec2 {
	return e.h.LocalPosition(e.id)
}

// SetLocalPosition writes the position relative to the parent.
func (e Handle) SetLocalPosition(p core.Vec2) {
	e.h.SetLocalPosition(e.id, p)
}

// Scale returns the world scale.
func (e Handle) Scale() core.Vec2 {
	return e.h.WorldScale(e.id)
}

// SetScale writes the world scale.
func (e Handle) SetScale(s core.Vec2) {
	e.h.SetWorldScale(e.id, s)
}

// LocalScale returns the scale relative to the parent.
func (e Handle) LocalScale() core.Vec2 {
	return e.h.LocalScale(e.id)
}

// SetLocalScale writes the scale relative to the parent.
func (e Handle) SetLocalScale(s core.Vec2) {
	e.h.SetLocalScale(e.id, s)
}

// Rotation returns the world rotation in degrees.
func (e Handle) Rotation() float32 {
	return e.h.WorldRotation(e.id)
}

// SetRotation writes the world rotation in degrees.
func (e Handle) SetRotation(deg float32) {
	e.h.SetWorldRotation(e.id, deg)
}

// LocalRotation returns the rotation relative to the parent in degrees.
func (e Handle) LocalRotation() float32 {
	return e.h.LocalRotation(e.id)
}

// SetLocalRotation writes the rotation relative to the parent in degrees.
func (e Handle) SetLocalRotation(deg float32) {
	e.h.SetLocalRotation(e.id, deg)
}

// Depth returns the draw-order coordinate.
func (e Handle) Depth() float32 {
	return e.h.Depth(e.id)
}

// SetDepth writes the draw-order coordinate.
func (e Handle) SetDepth(z float32) {
	e.h.SetDepth(e.id, z)
}

// Body returns a snapshot of the physics body.
func (e Handle) Body() host.PhysicsBody {
	return e.h.Body(e.id)
}

// Velocity returns the linear velocity.
func (e Handle) Velocity() core.Vec2 {
	return e.h.Velocity(e.id)
}

// SetVelocity writes the linear velocity.
func (e Handle) SetVelocity(v core.Vec2) {
	e.h.SetVelocity(e.id, v)
}

// AngularVelocity returns the angular velocity.
func (e Handle) AngularVelocity() float32 {
	return e.h.AngularVelocity(e.id)
}

// SetAngularVelocity writes the angular velocity.
func (e Handle) SetAngularVelocity(w float32) {
	e.h.SetAngularVelocity(e.id, w)
}

// Mass returns the body mass.
func (e Handle) Mass() float32 {
	return e.h.Mass(e.id)
}

// Friction returns the body friction.
func (e Handle) Friction() float32 {
	return e.h.Friction(e.id)
}

// Children returns handles for the direct children of the entity.
func (e Handle) Children() []Handle {
	ids := e.h.Children(e.id)
	out := make([]Handle, 0, len(ids))
	for _, id := range ids {
		out = append(out, Handle{id: id, h: e.h})
	}
	return out
}

// Destroy asks the host to remove the entity.
func (e Handle) Destroy() {
	e.h.DestroyEntity(e.id)
}

// Instantiate copies the entity, optionally attaching the copy to parent.
// Pass an invalid handle for no parent.
func (e Handle) Instantiate(parent Handle) Handle {
	return Handle{id: e.h.Instantiate(e.id, parent.id), h: e.h}
}

// InstantiatePrefab spawns a named prefab under the optional parent.
func InstantiatePrefab(h host.Host, prefab string, parent Handle) Handle {
	return Handle{id: h.InstantiatePrefab(prefab, parent.id), h: h}
}
