package game

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"ebiten-pingpong/config"
	"ebiten-pingpong/ecs"
	"ebiten-pingpong/systems"
)

// ErrAssetLoad is wrapped by every error returned when an asset cannot be loaded
var ErrAssetLoad = errors.New("failed to load asset")

// AssetLoader decodes an image file into a drawable asset
type AssetLoader interface {
	Load(path string) (ecs.Asset, error)
}

// State owns the two paddles and the ball
type State struct {
	settings       config.Settings
	player1        *ecs.Entity
	player2        *ecs.Entity
	ball           *ecs.Entity
	paddles        map[systems.Slot]*ecs.Entity
	movementSystem *systems.MovementSystem
	renderSystem   *systems.RenderSystem
}

// New loads the assets and places the entities at their starting positions.
// Paddles are vertically centred and inset from their edge, the ball is centred.
func New(settings config.Settings, loader AssetLoader) (*State, error) {
	player1Asset, err := loadAsset(loader, settings.Player1Asset)
	if err != nil {
		return nil, err
	}
	player2Asset, err := loadAsset(loader, settings.Player2Asset)
	if err != nil {
		return nil, err
	}
	ballAsset, err := loadAsset(loader, settings.BallAsset)
	if err != nil {
		return nil, err
	}

	w, h := settings.WindowWidth, settings.WindowHeight
	p1 := player1Asset.Bounds().Size()
	p2 := player2Asset.Bounds().Size()
	b := ballAsset.Bounds().Size()

	player1 := ecs.NewEntity("player1", player1Asset, mgl64.Vec2{
		settings.PaddleInset,
		(h - float64(p1.Y)) / 2,
	})
	player2 := ecs.NewEntity("player2", player2Asset, mgl64.Vec2{
		w - float64(p2.X) - settings.PaddleInset,
		(h - float64(p2.Y)) / 2,
	})
	ball := ecs.NewEntity("ball", ballAsset, mgl64.Vec2{
		(w - float64(b.X)) / 2,
		(h - float64(b.Y)) / 2,
	})

	paddles := map[systems.Slot]*ecs.Entity{
		systems.Player1: player1,
		systems.Player2: player2,
	}

	return &State{
		settings:       settings,
		player1:        player1,
		player2:        player2,
		ball:           ball,
		paddles:        paddles,
		movementSystem: systems.NewMovementSystem(settings),
		renderSystem:   systems.NewRenderSystem(settings.Background),
	}, nil
}

func loadAsset(loader AssetLoader, path string) (ecs.Asset, error) {
	asset, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrAssetLoad, path, err)
	}
	return asset, nil
}

// Update moves the paddles for the keys held this tick
func (s *State) Update(input systems.InputSource) {
	s.movementSystem.Apply(input.DownKeys(), s.paddles)
}

// Draw renders player1, player2 and the ball, in that order
func (s *State) Draw(renderer systems.Renderer) {
	s.renderSystem.Draw(renderer, s.Entities()...)
}

// Entities returns the entities in draw order
func (s *State) Entities() []*ecs.Entity {
	return []*ecs.Entity{s.player1, s.player2, s.ball}
}

// Player1 returns the left paddle
func (s *State) Player1() *ecs.Entity {
	return s.player1
}

// Player2 returns the right paddle
func (s *State) Player2() *ecs.Entity {
	return s.player2
}

// Ball returns the ball
func (s *State) Ball() *ecs.Entity {
	return s.ball
}

// MovementSystem exposes the key bindings
func (s *State) MovementSystem() *systems.MovementSystem {
	return s.movementSystem
}

// Settings returns the settings the state was built with
func (s *State) Settings() config.Settings {
	return s.settings
}
