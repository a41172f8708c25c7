package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/host"
)

// AnimState is the last animation request recorded for an entity.
type AnimState struct {
	Name    string
	Speed   float32
	Looping bool
	Changes int // Number of SetAnimation calls
}

// SoundSink receives audio requests as they are issued.
type SoundSink interface {
	Play(req host.SoundRequest, groupVolume float32)
	Stop(name string)
	StopAll()
}

type audioState struct {
	sink    SoundSink
	log     []host.SoundRequest
	groups  map[string]string
	volumes map[string]float32
}

func newAudioState(sink SoundSink) audioState {
	return audioState{
		sink:    sink,
		groups:  make(map[string]string),
		volumes: make(map[string]float32),
	}
}

func (w *World) SetAnimation(id host.EntityID, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetAnimation"); ok {
		r.anim.Name = name
		r.anim.Changes++
	}
}

func (w *World) SetAnimationSpeed(id host.EntityID, speed float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetAnimationSpeed"); ok {
		r.anim.Speed = speed
	}
}

func (w *World) SetAnimationLooping(id host.EntityID, looping bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r, ok := w.lookup(id, "SetAnimationLooping"); ok {
		r.anim.Looping = looping
	}
}

// Animation returns the recorded animation state of id.
func (w *World) Animation(id host.EntityID) AnimState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if r, ok := w.records[id]; ok {
		return r.anim
	}
	return AnimState{}
}

func (w *World) PlaySound(req host.SoundRequest) {
	w.mu.Lock()
	w.audio.log = append(w.audio.log, req)
	sink := w.audio.sink
	vol := w.groupVolumeLocked(req.Name)
	w.mu.Unlock()

	if sink != nil {
		sink.Play(req, vol)
	}
}

// groupVolumeLocked returns the volume of the group a sound is routed to.
func (w *World) groupVolumeLocked(sound string) float32 {
	g, ok := w.audio.groups[sound]
	if !ok {
		return 1
	}
	if v, ok := w.audio.volumes[g]; ok {
		return v
	}
	return 1
}

func (w *World) StopSound(name string) {
	w.mu.RLock()
	sink := w.audio.sink
	w.mu.RUnlock()
	if sink != nil {
		sink.Stop(name)
	}
}

func (w *World) StopAllSounds() {
	w.mu.RLock()
	sink := w.audio.sink
	w.mu.RUnlock()
	if sink != nil {
		sink.StopAll()
	}
}

func (w *World) SetChannelGroup(sound, group string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.audio.groups[sound] = group
}

func (w *World) SetGroupVolume(group string, volume float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.audio.volumes[group] = volume
}

// Sounds returns a copy of every audio request issued so far.
func (w *World) Sounds() []host.SoundRequest {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]host.SoundRequest, len(w.audio.log))
	copy(out, w.audio.log)
	return out
}

// DrainSounds returns and clears the audio request log.
func (w *World) DrainSounds() []host.SoundRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.audio.log
	w.audio.log = nil
	return out
}

// CountSounds returns how many requests named name were issued.
func (w *World) CountSounds(name string) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n := 0
	for _, s := range w.audio.log {
		if s.Name == name {
			n++
		}
	}
	return n
}

func (w *World) Paused() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.paused
}

// SetPaused sets the global pause flag.
func (w *World) SetPaused(p bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.paused = p
}

func (w *World) JumpEnhanced() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.jumpEnhanced
}

// SetJumpEnhanced toggles the enhanced jump cheat.
func (w *World) SetJumpEnhanced(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.jumpEnhanced = on
}

func (w *World) Zoom() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.zoom
}

func (w *World) SetZoom(zoom float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.zoom = zoom
}
