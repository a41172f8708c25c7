package scripts

import "github.com/vovakirdan/tui-platformer/internal/behavior"

// DefaultZoom is the camera zoom pushed when none is configured.
const DefaultZoom float32 = 2

// CameraZoom sets the host camera zoom once, when the scene starts.
type CameraZoom struct {
	behavior.Base
	Zoom float32 `yaml:"zoom"`
}

func (c *CameraZoom) OnStart() {
	c.Host().SetZoom(c.Zoom)
}
