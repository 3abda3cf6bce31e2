package palette

import (
	"errors"

	"warp-scene/core"
)

// Step is a palette direction.
type Step int

const (
	Prev Step = -1
	Next Step = 1
)

// Default is the model color palette, starting at green.
var Default = []core.Color{
	core.ColorFromHex(0x00ff00),
	core.ColorFromHex(0xff0000),
	core.ColorFromHex(0x0000ff),
	core.ColorFromHex(0xffff00),
	core.ColorFromHex(0xff00ff),
}

// ApplyFunc receives the color selected by an Advance.
type ApplyFunc func(core.Color)

// Cycler steps through an ordered palette. Advances are dropped until a
// target is bound.
type Cycler struct {
	colors []core.Color
	index  int
	apply  ApplyFunc
}

func NewCycler(colors []core.Color) (*Cycler, error) {
	if len(colors) == 0 {
		return nil, errors.New("palette: at least one color is required")
	}
	c := make([]core.Color, len(colors))
	copy(c, colors)
	return &Cycler{colors: c}, nil
}

// Bind sets the target that receives colors on Advance.
func (c *Cycler) Bind(apply ApplyFunc) {
	c.apply = apply
}

func (c *Cycler) Unbind() {
	c.apply = nil
}

// Advance moves the index one step with wraparound and hands the new color
// to the bound target. It reports whether anything changed.
func (c *Cycler) Advance(step Step) bool {
	if c.apply == nil {
		return false
	}
	n := len(c.colors)
	c.index = ((c.index+int(step))%n + n) % n
	c.apply(c.colors[c.index])
	return true
}

func (c *Cycler) Index() int {
	return c.index
}

func (c *Cycler) Current() core.Color {
	return c.colors[c.index]
}

func (c *Cycler) Len() int {
	return len(c.colors)
}
