package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the scene renderer.
const (
	ColorDefault Color = iota
	ColorPlatform
	ColorPlayer
	ColorArm
	ColorReticle
	ColorHUD
	ColorWarning
	ColorDim
)
