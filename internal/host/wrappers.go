package host

import "github.com/vovakirdan/tui-platformer/internal/core"

// Sounds shapes audio calls the way gameplay code issues them.
type Sounds struct {
	Audio Audio
}

// Single plays one named sound once.
func (s Sounds) Single(volume float32, name string) {
	s.Audio.PlaySound(SoundRequest{Name: name, Volume: volume})
}

// Grouped plays a random sound from the named group once.
func (s Sounds) Grouped(volume float32, name string) {
	s.Audio.PlaySound(SoundRequest{Name: name, Volume: volume, Grouped: true})
}

// SingleAt plays a named sound spatialized at pos.
func (s Sounds) SingleAt(volume float32, name string, loop bool, pos core.Vec2) {
	s.Audio.PlaySound(SoundRequest{Name: name, Volume: volume, Loop: loop, Position: &pos})
}

// GroupedAt plays a grouped sound spatialized at pos.
func (s Sounds) GroupedAt(volume float32, name string, loop bool, pos core.Vec2) {
	s.Audio.PlaySound(SoundRequest{Name: name, Volume: volume, Loop: loop, Grouped: true, Position: &pos})
}

// Loop starts a looping named sound.
func (s Sounds) Loop(volume float32, name string) {
	s.Audio.PlaySound(SoundRequest{Name: name, Volume: volume, Loop: true})
}

// Stop stops every instance of the named sound.
func (s Sounds) Stop(name string) {
	s.Audio.StopSound(name)
}

// StopAll silences everything.
func (s Sounds) StopAll() {
	s.Audio.StopAllSounds()
}

// AssignGroup routes a sound through a channel group.
func (s Sounds) AssignGroup(sound, group string) {
	s.Audio.SetChannelGroup(sound, group)
}

// GroupVolume sets the volume of a channel group.
func (s Sounds) GroupVolume(volume float32, group string) {
	s.Audio.SetGroupVolume(group, volume)
}

// Animator drives one entity's animation state.
type Animator struct {
	Animation Animation
	Entity    EntityID
}

// Play switches to the named animation with the given looping mode.
func (a Animator) Play(name string, looping bool) {
	a.Animation.SetAnimationLooping(a.Entity, looping)
	a.Animation.SetAnimation(a.Entity, name)
}

// Speed sets the playback speed multiplier.
func (a Animator) Speed(speed float32) {
	a.Animation.SetAnimationSpeed(a.Entity, speed)
}
