package input

import "warp-scene/core"

// Bindings maps physical keys to movement controls and color-cycle steps.
type Bindings struct {
	Controls map[int]Control
	Cycle    map[int]int
}

func DefaultBindings() Bindings {
	return Bindings{
		Controls: map[int]Control{
			core.KeyW:          Forward,
			core.KeyS:          Back,
			core.KeyA:          Left,
			core.KeyD:          Right,
			core.KeySpace:      Ascend,
			core.KeyLeftShift:  Descend,
			core.KeyRightShift: Descend,
		},
		Cycle: map[int]int{
			core.KeyUp:   +1,
			core.KeyDown: -1,
		},
	}
}

// Control returns the movement control bound to key.
func (b Bindings) Control(key int) (Control, bool) {
	c, ok := b.Controls[key]
	return c, ok
}

// CycleStep returns the palette step bound to key.
func (b Bindings) CycleStep(key int) (int, bool) {
	d, ok := b.Cycle[key]
	return d, ok
}
