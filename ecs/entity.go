package ecs

import (
	"image"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Asset is a decoded image the host knows how to draw.
// *ebiten.Image satisfies it.
type Asset interface {
	Bounds() image.Rectangle
}

// Entity is a drawable game object: an asset placed at a screen position.
// Position is in pixels with the origin at the top-left corner.
type Entity struct {
	ID       EntityID
	Tag      string
	Asset    Asset
	Position mgl64.Vec2
}

// NewEntity creates a new entity
func NewEntity(tag string, asset Asset, position mgl64.Vec2) *Entity {
	return &Entity{
		ID:       NewEntityID(),
		Tag:      tag,
		Asset:    asset,
		Position: position,
	}
}

// Width returns the asset width in pixels
func (e *Entity) Width() float64 {
	return float64(e.Asset.Bounds().Dx())
}

// Height returns the asset height in pixels
func (e *Entity) Height() float64 {
	return float64(e.Asset.Bounds().Dy())
}
