package scripts

import (
	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Behavior kinds, as named in level files.
const (
	KindCharacter     = "character"
	KindCharacterAnim = "character_anim"
	KindPlayer        = "player"
	KindPivot         = "pivot"
	KindReticle       = "reticle"
	KindFlipper       = "flipper"
	KindCameraZoom    = "camera_zoom"
)

func init() {
	behavior.Register(KindCharacter, "platformer movement, jumping and dashing", func(p behavior.Props) (behavior.Behavior, error) {
		cfg := config.DefaultCharacterConfig()
		if err := p.Decode(&cfg); err != nil {
			return nil, err
		}
		return NewCharacter(cfg), nil
	})
	behavior.Register(KindCharacterAnim, "animation driver for a character sprite", func(behavior.Props) (behavior.Behavior, error) {
		return &CharacterAnim{}, nil
	})
	behavior.Register(KindPlayer, "keyboard input for the character on the same entity", func(behavior.Props) (behavior.Behavior, error) {
		return &Player{}, nil
	})
	behavior.Register(KindPivot, "rotates toward an aim point", func(behavior.Props) (behavior.Behavior, error) {
		return &Pivot{}, nil
	})
	behavior.Register(KindReticle, "follows the pointer, also while paused", func(behavior.Props) (behavior.Behavior, error) {
		return &Reticle{}, nil
	})
	behavior.Register(KindFlipper, "mirrors the entity toward the pointer", func(behavior.Props) (behavior.Behavior, error) {
		return &Flipper{}, nil
	})
	behavior.Register(KindCameraZoom, "sets the camera zoom on start", func(p behavior.Props) (behavior.Behavior, error) {
		c := &CameraZoom{Zoom: DefaultZoom}
		if err := p.Decode(c); err != nil {
			return nil, err
		}
		return c, nil
	})
}
