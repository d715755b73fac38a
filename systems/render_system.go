package systems

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"ebiten-pingpong/ecs"
)

// Renderer is the host's drawing surface for one frame
type Renderer interface {
	Clear(clr color.Color)
	Draw(asset ecs.Asset, position mgl64.Vec2)
}

// RenderSystem handles drawing entities to the screen
type RenderSystem struct {
	background color.Color
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(background color.Color) *RenderSystem {
	return &RenderSystem{
		background: background,
	}
}

// Draw clears the frame and draws the entities in the given order
func (s *RenderSystem) Draw(renderer Renderer, entities ...*ecs.Entity) {
	renderer.Clear(s.background)

	for _, e := range entities {
		renderer.Draw(e.Asset, e.Position)
	}
}
