package sim

import (
	"sort"
	"strconv"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// Colliders live in a resolv space covering a square of world units around
// the origin. Boxes outside it never collide and are never hit by rays.
const (
	spaceOrigin = -2048
	spaceSize   = 4096
	spaceCell   = 32
)

// solidTag marks colliders that stop dynamic bodies.
const solidTag = "solid"

func newSpace() (*resolv.Space, *resolv.Object) {
	space := resolv.NewSpace(spaceSize, spaceSize, spaceCell, spaceCell)
	// The probe carries no tags, so tag-filtered checks never return it.
	probe := resolv.NewObject(0, 0, 1, 1)
	space.Add(probe)
	return space, probe
}

func layerTag(layer int) string {
	return "layer" + strconv.Itoa(layer)
}

// maskTags lists the layer tags selected by mask.
func maskTags(mask host.LayerMask) []string {
	var tags []string
	for layer := 0; layer < 32; layer++ {
		if mask.Has(layer) {
			tags = append(tags, layerTag(layer))
		}
	}
	return tags
}

// toSpace converts a world box into space coordinates, padded by one unit
// on each side so cell lookups cover the box's far edges.
func toSpace(b core.Rect) (x, y, w, h float64) {
	return float64(b.X) - spaceOrigin - 1, float64(b.Y) - spaceOrigin - 1,
		float64(b.W) + 2, float64(b.H) + 2
}

func spaceBounds() core.Rect {
	return core.NewRect(spaceOrigin, spaceOrigin, spaceSize, spaceSize)
}

func (w *World) boxLocked(r *record) core.Rect {
	return core.RectAround(w.worldPosLocked(r), r.collider.X(), r.collider.Y())
}

// addColliderLocked registers r's collider in the space.
// r must already be in w.records.
func (w *World) addColliderLocked(r *record) {
	if r.collider == nil {
		return
	}
	x, y, bw, bh := toSpace(w.boxLocked(r))
	obj := resolv.NewObject(x, y, bw, bh, layerTag(r.layer))
	if r.body == nil || !r.dynamic {
		obj.AddTags(solidTag)
	}
	obj.Data = r.id
	obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	w.space.Add(obj)
	r.obj = obj
}

func (w *World) removeColliderLocked(r *record) {
	if r.obj == nil {
		return
	}
	w.space.Remove(r.obj)
	r.obj = nil
}

// moveColliderLocked places r's object over box.
func (w *World) moveColliderLocked(r *record, box core.Rect) {
	x, y, _, _ := toSpace(box)
	if r.obj.X == x && r.obj.Y == y {
		return
	}
	r.obj.X, r.obj.Y = x, y
	r.obj.Update()
}

// syncCollidersLocked moves every object to its entity's current box.
// Transform setters leave the space stale until the next query.
func (w *World) syncCollidersLocked() {
	for _, r := range w.records {
		if r.obj != nil {
			w.moveColliderLocked(r, w.boxLocked(r))
		}
	}
}

// recordsOf maps a collision's objects back to records in id order.
func (w *World) recordsOf(col *resolv.Collision) []*record {
	if col == nil {
		return nil
	}
	out := make([]*record, 0, len(col.Objects))
	for _, o := range col.Objects {
		id, ok := o.Data.(host.EntityID)
		if !ok {
			continue
		}
		if r, ok := w.records[id]; ok {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// queryLocked returns records whose cells overlap box and that carry any of
// tags. The result is a broad phase: callers still test exact overlap.
func (w *World) queryLocked(box core.Rect, tags ...string) []*record {
	if len(tags) == 0 {
		return nil
	}
	w.probe.X, w.probe.Y, w.probe.W, w.probe.H = toSpace(box)
	w.probe.Update()
	return w.recordsOf(w.probe.Check(0, 0, tags...))
}

// solidsLocked returns the static colliders r overlaps after moving its box
// by (dx, dy). r's object must sit at the box before the move.
func (w *World) solidsLocked(r *record, dest core.Rect, dx, dy float32) []core.Rect {
	var out []core.Rect
	for _, s := range w.recordsOf(r.obj.Check(float64(dx), float64(dy), solidTag)) {
		if s == r || w.isDescendantLocked(s, r) {
			continue
		}
		sb := w.boxLocked(s)
		if dest.Intersects(sb) {
			out = append(out, sb)
		}
	}
	return out
}

func (w *World) isDescendantLocked(r, ancestor *record) bool {
	for p, ok := w.records[r.parent]; ok; p, ok = w.records[p.parent] {
		if p == ancestor {
			return true
		}
	}
	return false
}

// rayBox returns the box spanned by the ray from origin along the unit
// direction d until it leaves the space.
func rayBox(origin, d core.Vec2) (core.Rect, bool) {
	bounds := spaceBounds()
	reach, ok := exitDistance(bounds, origin, d)
	if !ok {
		return core.Rect{}, false
	}
	end := origin.Add(d.Mul(reach))
	lo := core.V2(min(origin.X(), end.X()), min(origin.Y(), end.Y()))
	hi := core.V2(max(origin.X(), end.X()), max(origin.Y(), end.Y()))
	lo = core.V2(max(lo.X(), bounds.X), max(lo.Y(), bounds.Y))
	hi = core.V2(min(hi.X(), bounds.Right()), min(hi.Y(), bounds.Top()))
	if hi.X() < lo.X() || hi.Y() < lo.Y() {
		return core.Rect{}, false
	}
	return core.NewRect(lo.X(), lo.Y(), hi.X()-lo.X(), hi.Y()-lo.Y()), true
}

// exitDistance returns how far along d the ray travels before leaving b.
func exitDistance(b core.Rect, origin, d core.Vec2) (float32, bool) {
	if _, ok := b.RayDistance(origin, d); !ok {
		return 0, false
	}
	// Reversing the ray from a point beyond b finds the far edge.
	diag := b.W + b.H
	far := origin.Add(d.Mul(2 * diag))
	back, ok := b.RayDistance(far, d.Mul(-1))
	if !ok {
		return 0, false
	}
	return 2*diag - back, true
}
