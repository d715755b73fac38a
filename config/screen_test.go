package config

import (
	"image/color"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.WindowWidth != 640 || s.WindowHeight != 480 {
		t.Errorf("Expected 640x480 window, got %vx%v", s.WindowWidth, s.WindowHeight)
	}
	if s.PaddleSpeed != 8 {
		t.Errorf("Expected paddle speed 8, got %v", s.PaddleSpeed)
	}
	if s.PaddleInset != 16 {
		t.Errorf("Expected paddle inset 16, got %v", s.PaddleInset)
	}
	if s.Clamp != ClampPredictive {
		t.Errorf("Expected predictive clamping by default, got %v", s.Clamp)
	}
	if s.Background != (color.RGBA{100, 149, 237, 255}) {
		t.Errorf("Expected cornflower blue background, got %v", s.Background)
	}
}

func TestGetWindowSize(t *testing.T) {
	w, h := GetWindowSize()
	if w != WindowWidth || h != WindowHeight {
		t.Errorf("Expected %dx%d, got %dx%d", WindowWidth, WindowHeight, w, h)
	}
}

func TestClampPolicyString(t *testing.T) {
	tests := []struct {
		policy ClampPolicy
		want   string
	}{
		{ClampPredictive, "predictive"},
		{ClampLegacy, "legacy"},
		{ClampPolicy(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
