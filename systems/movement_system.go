package systems

import (
	"ebiten-pingpong/config"
	"ebiten-pingpong/ecs"
)

// Direction constants for movement
const (
	DirNone = iota
	DirUp
	DirDown
)

// Slot identifies which paddle a key binding drives
type Slot int

const (
	Player1 Slot = iota
	Player2
)

// Binding pairs a paddle with the direction a key moves it
type Binding struct {
	Slot      Slot
	Direction int
}

// MovementSystem maps held keys to paddle movement
type MovementSystem struct {
	settings config.Settings
	// Map of keys to paddle movement
	movementKeys map[Key]Binding
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(settings config.Settings) *MovementSystem {
	system := &MovementSystem{
		settings:     settings,
		movementKeys: make(map[Key]Binding),
	}

	// Left paddle
	system.Bind(KeyW, Player1, DirUp)
	system.Bind(KeyS, Player1, DirDown)

	// Right paddle
	system.Bind(KeyArrowUp, Player2, DirUp)
	system.Bind(KeyArrowDown, Player2, DirDown)

	return system
}

// Bind assigns a key to move a paddle. DirNone removes the binding.
func (s *MovementSystem) Bind(key Key, slot Slot, dir int) {
	if dir == DirNone {
		delete(s.movementKeys, key)
		return
	}
	s.movementKeys[key] = Binding{Slot: slot, Direction: dir}
}

// Lookup returns the binding for a key, if any
func (s *MovementSystem) Lookup(key Key) (Binding, bool) {
	b, ok := s.movementKeys[key]
	return b, ok
}

// Apply moves paddles for each held key in the order given.
// Unbound keys and slots without an entity are ignored.
func (s *MovementSystem) Apply(keys []Key, paddles map[Slot]*ecs.Entity) {
	for _, key := range keys {
		binding, ok := s.movementKeys[key]
		if !ok {
			continue
		}

		entity := paddles[binding.Slot]
		if entity == nil {
			continue
		}

		switch binding.Direction {
		case DirUp:
			MoveUp(entity, s.settings)
		case DirDown:
			MoveDown(entity, s.settings)
		}
	}
}
