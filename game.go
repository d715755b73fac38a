package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-pingpong/config"
	"ebiten-pingpong/game"
	"ebiten-pingpong/host"
)

// Game implements ebiten.Game interface.
type Game struct {
	settings config.Settings
	state    *game.State
	renderer *host.Renderer
	keyboard *host.Keyboard
}

// NewGame loads the assets and creates a new game instance
func NewGame(settings config.Settings) (*Game, error) {
	state, err := game.New(settings, host.ImageLoader{})
	if err != nil {
		return nil, err
	}

	return &Game{
		settings: settings,
		state:    state,
		renderer: host.NewRenderer(),
		keyboard: &host.Keyboard{},
	}, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	// Quit on escape
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.state.Update(g.keyboard)
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScreen(screen)
	g.state.Draw(g.renderer)
}

// Layout implements ebiten.Game's Layout.
// The logical screen is always the configured window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.settings.WindowWidth), int(g.settings.WindowHeight)
}
