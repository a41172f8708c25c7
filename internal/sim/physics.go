package sim

import (
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

func (w *World) Body(id host.EntityID) host.PhysicsBody {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.lookup(id, "Body"); ok && r.body != nil {
		return *r.body
	}
	return host.PhysicsBody{}
}

func (w *World) Mass(id host.EntityID) float32 {
	return w.Body(id).Mass
}

func (w *World) Friction(id host.EntityID) float32 {
	return w.Body(id).Friction
}

func (w *World) Velocity(id host.EntityID) core.Vec2 {
	return w.Body(id).Velocity
}

func (w *World) SetVelocity(id host.EntityID, v core.Vec2) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetVelocity"); ok && r.body != nil {
		r.body.Velocity = v
	}
}

func (w *World) AngularVelocity(id host.EntityID) float32 {
	return w.Body(id).AngularVelocity
}

func (w *World) SetAngularVelocity(id host.EntityID, av float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetAngularVelocity"); ok && r.body != nil {
		r.body.AngularVelocity = av
	}
}

// Grounded reports whether the body ended the last Step resting on a collider.
func (w *World) Grounded(id host.EntityID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.records[id]; ok {
		return r.grounded
	}
	return false
}

// Collider returns the world-space box of an entity's collider.
func (w *World) Collider(id host.EntityID) (core.Rect, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	r, ok := w.records[id]
	if !ok || r.collider == nil {
		return core.Rect{}, false
	}
	return core.RectAround(w.worldPosLocked(r), r.collider.X(), r.collider.Y()), true
}

// Raycast returns the closest collider on a layer in mask along dir.
// A zero direction never hits. Ties go to the lowest entity id.
func (w *World) Raycast(origin, dir core.Vec2, mask host.LayerMask) host.RaycastHit {
	w.mu.Lock()
	defer w.mu.Unlock()

	d := core.Normalize(dir)
	if d == (core.Vec2{}) || mask == 0 {
		return host.RaycastHit{}
	}
	span, ok := rayBox(origin, d)
	if !ok {
		return host.RaycastHit{}
	}
	w.syncCollidersLocked()

	var best host.RaycastHit
	for _, r := range w.queryLocked(span, maskTags(mask)...) {
		dist, ok := w.boxLocked(r).RayDistance(origin, d)
		if !ok {
			continue
		}
		if best.Entity == host.None || dist < best.Distance {
			best = host.RaycastHit{
				Entity:   r.id,
				Distance: dist,
				Point:    origin.Add(d.Mul(dist)),
			}
		}
	}
	return best
}

func (w *World) sortedIDsLocked() []host.EntityID {
	ids := make([]host.EntityID, 0, len(w.records))
	for id := range w.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Step integrates dynamic bodies by dt seconds, resolves collisions against
// static colliders one axis at a time, then rolls input edges over.
func (w *World) Step(dt float32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.syncCollidersLocked()
	for _, id := range w.sortedIDsLocked() {
		r := w.records[id]
		if r.body == nil || !r.dynamic {
			continue
		}

		v := r.body.Velocity
		v[1] -= w.gravity * r.gravity * dt
		pos := w.worldPosLocked(r)

		dx := v.X() * dt
		pos[0] += dx
		if r.obj != nil && v.X() != 0 {
			dest := core.RectAround(pos, r.collider.X(), r.collider.Y())
			for _, s := range w.solidsLocked(r, dest, dx, 0) {
				if v.X() > 0 {
					pos[0] = s.X - r.collider.X()/2
				} else {
					pos[0] = s.Right() + r.collider.X()/2
				}
				v[0] = 0
			}
			w.moveColliderLocked(r, core.RectAround(pos, r.collider.X(), r.collider.Y()))
		}

		r.grounded = false
		dy := v.Y() * dt
		pos[1] += dy
		if r.obj != nil && v.Y() != 0 {
			dest := core.RectAround(pos, r.collider.X(), r.collider.Y())
			for _, s := range w.solidsLocked(r, dest, 0, dy) {
				if v.Y() < 0 {
					pos[1] = s.Top() + r.collider.Y()/2
					r.grounded = true
				} else {
					pos[1] = s.Y - r.collider.Y()/2
				}
				v[1] = 0
			}
		}

		r.body.Velocity = v
		r.localRot += r.body.AngularVelocity * dt
		w.setWorldPosLocked(r, pos)
		if r.obj != nil {
			w.moveColliderLocked(r, w.boxLocked(r))
		}
	}

	w.input.advance()
}
