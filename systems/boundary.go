package systems

import (
	"math"

	"ebiten-pingpong/config"
	"ebiten-pingpong/ecs"
)

// MoveUp moves an entity one step towards the top edge, keeping it on screen
func MoveUp(e *ecs.Entity, settings config.Settings) {
	y := e.Position.Y()
	switch settings.Clamp {
	case config.ClampLegacy:
		// Bound is checked before stepping, so y may go negative for one tick.
		if y > 0 {
			y -= settings.PaddleSpeed
		} else {
			y = 0
		}
	default:
		y = math.Max(0, y-settings.PaddleSpeed)
	}
	e.Position[1] = y
}

// MoveDown moves an entity one step towards the bottom edge, keeping it on screen
func MoveDown(e *ecs.Entity, settings config.Settings) {
	y := e.Position.Y()
	switch settings.Clamp {
	case config.ClampLegacy:
		halfExtent := e.Width() / 2
		if y+halfExtent < settings.WindowHeight {
			y += settings.PaddleSpeed
		} else {
			y = settings.WindowHeight - halfExtent
		}
	default:
		y = math.Min(settings.WindowHeight-e.Height(), y+settings.PaddleSpeed)
	}
	e.Position[1] = y
}
