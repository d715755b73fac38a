package config

import "image/color"

// Screen and gameplay configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 640
	WindowHeight = 480

	WindowTitle = "PingPong"

	// Paddle movement per tick in pixels
	PaddleSpeed = 8

	// Horizontal gap between a paddle and its window edge
	PaddleInset = 16
)

// Asset locations, relative to the working directory
const (
	Player1Asset = "./resources/player1.png"
	Player2Asset = "./resources/player2.png"
	BallAsset    = "./resources/ballBlue.png"
)

// BackgroundColor is the frame clear colour (cornflower blue, RGB 0.392 0.584 0.929)
var BackgroundColor = color.RGBA{100, 149, 237, 255}

// ClampPolicy selects how paddle movement is kept inside the window
type ClampPolicy int

const (
	// ClampPredictive clamps the moved position against the asset height.
	ClampPredictive ClampPolicy = iota
	// ClampLegacy checks the bound before moving and measures the lower
	// bound with half the asset width. A paddle may sit up to one step
	// above the top edge for a single tick.
	ClampLegacy
)

func (p ClampPolicy) String() string {
	switch p {
	case ClampPredictive:
		return "predictive"
	case ClampLegacy:
		return "legacy"
	}
	return "unknown"
}

// Settings bundles the values the game state is built from
type Settings struct {
	WindowWidth  float64
	WindowHeight float64
	PaddleSpeed  float64
	PaddleInset  float64
	Background   color.Color
	Clamp        ClampPolicy

	Player1Asset string
	Player2Asset string
	BallAsset    string
}

// DefaultSettings returns the settings the game ships with
func DefaultSettings() Settings {
	return Settings{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		PaddleSpeed:  PaddleSpeed,
		PaddleInset:  PaddleInset,
		Background:   BackgroundColor,
		Clamp:        ClampPredictive,
		Player1Asset: Player1Asset,
		Player2Asset: Player2Asset,
		BallAsset:    BallAsset,
	}
}

// GetWindowSize returns the window size in pixels
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
