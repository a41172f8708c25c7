package core

// RuntimeConfig contains configuration passed to the front end at start.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDelta returns the fixed frame time in seconds.
// Non-positive tick rates fall back to 60 fps.
func (c RuntimeConfig) FrameDelta() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1 / float32(c.TickRate)
}
