package systems

// Key names a keyboard key independently of the host.
// Names follow ebiten's key naming ("W", "ArrowUp", ...).
type Key string

const (
	KeyW         Key = "W"
	KeyS         Key = "S"
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
	KeyEscape    Key = "Escape"
)

// InputSource reports the keys held down during the current tick,
// in the order the host lists them
type InputSource interface {
	DownKeys() []Key
}
