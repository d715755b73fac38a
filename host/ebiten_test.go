package host

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pingpong/systems"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want systems.Key
	}{
		{ebiten.KeyW, systems.KeyW},
		{ebiten.KeyS, systems.KeyS},
		{ebiten.KeyArrowUp, systems.KeyArrowUp},
		{ebiten.KeyArrowDown, systems.KeyArrowDown},
		{ebiten.KeyEscape, systems.KeyEscape},
		{ebiten.KeyA, systems.Key(ebiten.KeyA.String())},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := KeyName(tt.key); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestKeyNamesMatchEbiten(t *testing.T) {
	// Bindings made with ebiten's key names must agree with the fixed table.
	for key, name := range keyNames {
		if got := systems.Key(key.String()); got != name {
			t.Errorf("Expected ebiten to name %v %q, got %q", key, name, got)
		}
	}
}

func TestDrawRejectsForeignAsset(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected Draw to panic on a non-ebiten asset")
		}
	}()

	NewRenderer().Draw(image.NewRGBA(image.Rect(0, 0, 4, 4)), mgl64.Vec2{})
}
