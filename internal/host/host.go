// Package host defines the call boundary between gameplay behaviors and the
// engine that owns entities, physics, rendering, audio and input.
//
// Every call is synchronous and immediate: getters read the host's current
// truth, setters commit without buffering. Handles the host does not know
// are treated as no-ops that return zero values.
package host

import "github.com/vovakirdan/tui-platformer/internal/core"

// EntityID is an opaque host-owned entity identifier.
type EntityID uint64

// None is the canonical "not found / no entity" handle.
const None EntityID = 0

// Transform mirrors the host transform component.
type Transform struct {
	WorldPosition core.Vec2
	LocalPosition core.Vec2
	WorldScale    core.Vec2
	LocalScale    core.Vec2
	WorldRotation float32 // Degrees
	LocalRotation float32 // Degrees
	Depth         float32
}

// PhysicsBody mirrors the host physics component.
type PhysicsBody struct {
	Mass            float32
	Friction        float32
	Velocity        core.Vec2
	AngularVelocity float32
}

// RaycastHit is the result of a raycast query.
// Distance and Point are only meaningful when Hit reports true.
type RaycastHit struct {
	Entity   EntityID
	Distance float32
	Point    core.Vec2
}

// Hit reports whether the ray struck an entity.
func (h RaycastHit) Hit() bool {
	return h.Entity != None
}

// LayerMask selects collision layers, one bit per layer.
type LayerMask uint32

// AllLayers is used by the unmasked raycast variant.
const AllLayers LayerMask = ^LayerMask(0)

// Has reports whether layer (0-31) is part of the mask.
func (m LayerMask) Has(layer int) bool {
	if layer < 0 || layer > 31 {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

// SoundRequest describes a fire-and-forget audio trigger.
type SoundRequest struct {
	Name     string
	Volume   float32
	Loop     bool
	Grouped  bool       // Pick a random sound from the named group
	Position *core.Vec2 // Spatialized when set
}

// Transforms reads and writes entity transforms.
type Transforms interface {
	Transform(id EntityID) Transform
	WorldPosition(id EntityID) core.Vec2
	SetWorldPosition(id EntityID, pos core.Vec2)
	LocalPosition(id EntityID) core.Vec2
	SetLocalPosition(id EntityID, pos core.Vec2)
	WorldScale(id EntityID) core.Vec2
	SetWorldScale(id EntityID, scale core.Vec2)
	LocalScale(id EntityID) core.Vec2
	SetLocalScale(id EntityID, scale core.Vec2)
	WorldRotation(id EntityID) float32
	SetWorldRotation(id EntityID, deg float32)
	LocalRotation(id EntityID) float32
	SetLocalRotation(id EntityID, deg float32)
	Depth(id EntityID) float32
	SetDepth(id EntityID, z float32)
}

// Physics reads and writes rigid body state.
type Physics interface {
	Body(id EntityID) PhysicsBody
	Mass(id EntityID) float32
	Friction(id EntityID) float32
	Velocity(id EntityID) core.Vec2
	SetVelocity(id EntityID, v core.Vec2)
	AngularVelocity(id EntityID) float32
	SetAngularVelocity(id EntityID, w float32)
}

// Raycaster answers ray queries against host colliders.
type Raycaster interface {
	Raycast(origin, dir core.Vec2, mask LayerMask) RaycastHit
}

// Input is polled once per call; nothing is pushed.
type Input interface {
	KeyHeld(k KeyCode) bool
	KeyPressed(k KeyCode) bool
	KeyReleased(k KeyCode) bool
	PointerWorldPosition() core.Vec2
}

// Animation drives an entity's animator. No acknowledgment is returned.
type Animation interface {
	SetAnimation(id EntityID, name string)
	SetAnimationSpeed(id EntityID, speed float32)
	SetAnimationLooping(id EntityID, looping bool)
}

// Audio triggers and controls sounds.
type Audio interface {
	PlaySound(req SoundRequest)
	StopSound(name string)
	StopAllSounds()
	SetChannelGroup(sound, group string)
	SetGroupVolume(group string, volume float32)
}

// Scene manages entity lifetime and lookup.
type Scene interface {
	Exists(id EntityID) bool
	FindEntity(name string) EntityID
	Children(id EntityID) []EntityID
	DestroyEntity(id EntityID)
	Instantiate(original, parent EntityID) EntityID
	InstantiatePrefab(prefab string, parent EntityID) EntityID
}

// State exposes host-owned global flags.
type State interface {
	Paused() bool
	JumpEnhanced() bool
}

// Camera controls the active camera.
type Camera interface {
	Zoom() float32
	SetZoom(zoom float32)
}

// Host is the full call surface available to behaviors.
type Host interface {
	Transforms
	Physics
	Raycaster
	Input
	Animation
	Audio
	Scene
	State
	Camera
}
