// Package host adapts ebiten's window, input and images to the game's
// Renderer, InputSource and AssetLoader capabilities.
package host

import (
	"image/color"
	_ "image/png"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-pingpong/ecs"
	"ebiten-pingpong/systems"
)

// ImageLoader loads PNG files into ebiten images
type ImageLoader struct{}

// Load decodes the image at path
func (ImageLoader) Load(path string) (ecs.Asset, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Renderer draws onto the screen image ebiten hands to Draw
type Renderer struct {
	screen *ebiten.Image
}

// NewRenderer creates a renderer with no target; call SetScreen each frame
func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetScreen sets the frame the next draw calls go to
func (r *Renderer) SetScreen(screen *ebiten.Image) {
	r.screen = screen
}

// Clear fills the whole frame
func (r *Renderer) Clear(clr color.Color) {
	r.screen.Fill(clr)
}

// Draw draws an asset with its top-left corner at position.
// Assets must come from ImageLoader; anything else panics.
func (r *Renderer) Draw(asset ecs.Asset, position mgl64.Vec2) {
	img := asset.(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(position.X(), position.Y())
	r.screen.DrawImage(img, op)
}

// keyNames maps the keys the game binds by default to their host-independent names
var keyNames = map[ebiten.Key]systems.Key{
	ebiten.KeyW:         systems.KeyW,
	ebiten.KeyS:         systems.KeyS,
	ebiten.KeyArrowUp:   systems.KeyArrowUp,
	ebiten.KeyArrowDown: systems.KeyArrowDown,
	ebiten.KeyEscape:    systems.KeyEscape,
}

// KeyName returns the systems.Key for an ebiten key.
// Keys outside keyNames fall back to ebiten's own name.
func KeyName(key ebiten.Key) systems.Key {
	if name, ok := keyNames[key]; ok {
		return name
	}
	return systems.Key(key.String())
}

// Keyboard reports held keys using ebiten's key polling
type Keyboard struct {
	keys []ebiten.Key
}

// DownKeys returns the keys currently pressed, named as systems.Key
func (k *Keyboard) DownKeys() []systems.Key {
	k.keys = ebiten.AppendPressedKeys(k.keys[:0])

	down := make([]systems.Key, 0, len(k.keys))
	for _, key := range k.keys {
		down = append(down, KeyName(key))
	}
	return down
}
