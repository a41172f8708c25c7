package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// World transforms compose parent then child: scale multiplies, rotation
// adds, and the child's local offset is scaled by the parent's world scale.
// Offsets are not rotated by the parent.

func (w *World) worldPosLocked(r *record) core.Vec2 {
	p, ok := w.records[r.parent]
	if !ok {
		return r.localPos
	}
	ps := w.worldScaleLocked(p)
	off := core.V2(r.localPos.X()*ps.X(), r.localPos.Y()*ps.Y())
	return w.worldPosLocked(p).Add(off)
}

func (w *World) worldScaleLocked(r *record) core.Vec2 {
	p, ok := w.records[r.parent]
	if !ok {
		return r.localScale
	}
	ps := w.worldScaleLocked(p)
	return core.V2(r.localScale.X()*ps.X(), r.localScale.Y()*ps.Y())
}

func (w *World) worldRotLocked(r *record) float32 {
	p, ok := w.records[r.parent]
	if !ok {
		return r.localRot
	}
	return w.worldRotLocked(p) + r.localRot
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return a
	}
	return a / b
}

func (w *World) setWorldPosLocked(r *record, pos core.Vec2) {
	p, ok := w.records[r.parent]
	if !ok {
		r.localPos = pos
		return
	}
	d := pos.Sub(w.worldPosLocked(p))
	ps := w.worldScaleLocked(p)
	r.localPos = core.V2(safeDiv(d.X(), ps.X()), safeDiv(d.Y(), ps.Y()))
}

// Transform returns a full transform snapshot.
func (w *World) Transform(id host.EntityID) host.Transform {
	w.mu.RLock()
	defer w.mu.RUnlock()
	r, ok := w.lookup(id, "Transform")
	if !ok {
		return host.Transform{}
	}
	return host.Transform{
		WorldPosition: w.worldPosLocked(r),
		LocalPosition: r.localPos,
		WorldScale:    w.worldScaleLocked(r),
		LocalScale:    r.localScale,
		WorldRotation: w.worldRotLocked(r),
		LocalRotation: r.localRot,
		Depth:         r.depth,
	}
}

func (w *World) WorldPosition(id host.EntityID) core.Vec2 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	r, ok := w.lookup(id, "WorldPosition")
	if !ok {
		return core.Vec2{}
	}
	return w.worldPosLocked(r)
}

func (w *World) SetWorldPosition(id host.EntityID, pos core.Vec2) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetWorldPosition"); ok {
		w.setWorldPosLocked(r, pos)
	}
}

func (w *World) LocalPosition(id host.EntityID) core.Vec2 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.lookup(id, "LocalPosition"); ok {
		return r.localPos
	}
	return core.Vec2{}
}

func (w *World) SetLocalPosition(id host.EntityID, pos core.Vec2) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetLocalPosition"); ok {
		r.localPos = pos
	}
}

func (w *World) WorldScale(id host.EntityID) core.Vec2 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.lookup(id, "WorldScale"); ok {
		return w.worldScaleLocked(r)
	}
	return core.Vec2{}
}

func (w *World) SetWorldScale(id host.EntityID, scale core.Vec2) {
	w.mu.Lock()
	defer w.mu.Unlock()
	r, ok := w.lookup(id, "SetWorldScale")
	if !ok {
		return
	}
	if p, ok := w.records[r.parent]; ok {
		ps := w.worldScaleLocked(p)
		r.localScale = core.V2(safeDiv(scale.X(), ps.X()), safeDiv(scale.Y(), ps.Y()))
		return
	}
	r.localScale = scale
}

func (w *World) LocalScale(id host.EntityID) core.Vec2 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.lookup(id, "LocalScale"); ok {
		return r.localScale
	}
	return core.Vec2{}
}

func (w *World) SetLocalScale(id host.EntityID, scale core.Vec2) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetLocalScale"); ok {
		r.localScale = scale
	}
}

func (w *World) WorldRotation(id host.EntityID) float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.lookup(id, "WorldRotation"); ok {
		return w.worldRotLocked(r)
	}
	return 0
}

func (w *World) SetWorldRotation(id host.EntityID, deg float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	r, ok := w.lookup(id, "SetWorldRotation")
	if !ok {
		return
	}
	if p, ok := w.records[r.parent]; ok {
		r.localRot = deg - w.worldRotLocked(p)
		return
	}
	r.localRot = deg
}

func (w *World) LocalRotation(id host.EntityID) float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.lookup(id, "LocalRotation"); ok {
		return r.localRot
	}
	return 0
}

func (w *World) SetLocalRotation(id host.EntityID, deg float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetLocalRotation"); ok {
		r.localRot = deg
	}
}

func (w *World) Depth(id host.EntityID) float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.lookup(id, "Depth"); ok {
		return r.depth
	}
	return 0
}

func (w *World) SetDepth(id host.EntityID, z float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetDepth"); ok {
		r.depth = z
	}
}
