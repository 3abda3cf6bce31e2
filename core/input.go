package core

// KeyAction is the state transition reported with a key or button event.
type KeyAction int

const (
	Release KeyAction = iota
	Press
	Repeat
)

// Key and button codes use the GLFW numbering so window events can be
// forwarded without translation.
const (
	KeySpace      = 32
	KeyA          = 65
	KeyD          = 68
	KeyS          = 83
	KeyW          = 87
	KeyEscape     = 256
	KeyDown       = 264
	KeyUp         = 265
	KeyLeftShift  = 340
	KeyRightShift = 344

	MouseButtonLeft = 0
)
