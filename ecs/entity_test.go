package ecs

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewEntity(t *testing.T) {
	asset := image.NewRGBA(image.Rect(0, 0, 32, 128))
	e := NewEntity("player1", asset, mgl64.Vec2{16, 176})

	if e.Tag != "player1" {
		t.Errorf("Expected tag player1, got %q", e.Tag)
	}
	if e.Position.X() != 16 || e.Position.Y() != 176 {
		t.Errorf("Expected position (16, 176), got %v", e.Position)
	}
	if e.Width() != 32 {
		t.Errorf("Expected width 32, got %v", e.Width())
	}
	if e.Height() != 128 {
		t.Errorf("Expected height 128, got %v", e.Height())
	}
}

func TestEntityIDsAreUnique(t *testing.T) {
	asset := image.NewRGBA(image.Rect(0, 0, 1, 1))
	seen := make(map[EntityID]bool)
	for i := 0; i < 100; i++ {
		e := NewEntity("ball", asset, mgl64.Vec2{})
		if seen[e.ID] {
			t.Fatalf("Duplicate entity ID %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestOffsetBoundsUseExtent(t *testing.T) {
	asset := image.NewRGBA(image.Rect(10, 20, 34, 44))
	e := NewEntity("ball", asset, mgl64.Vec2{})
	if e.Width() != 24 || e.Height() != 24 {
		t.Errorf("Expected 24x24 extent, got %vx%v", e.Width(), e.Height())
	}
}
