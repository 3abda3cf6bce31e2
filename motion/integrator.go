package motion

import (
	"fmt"

	"warp-scene/input"
	"warp-scene/math"
)

// Params are the per-step integration constants. Steps are per frame, not
// per second.
type Params struct {
	Acceleration float32 `yaml:"acceleration"`
	Damping      float32 `yaml:"damping"`
	MaxSpeed     float32 `yaml:"max_speed"`
}

func DefaultParams() Params {
	return Params{
		Acceleration: 0.1,
		Damping:      0.95,
		MaxSpeed:     0.3,
	}
}

func (p Params) Validate() error {
	if p.Acceleration < 0 {
		return fmt.Errorf("acceleration must be >= 0, got %v", p.Acceleration)
	}
	if p.Damping <= 0 || p.Damping >= 1 {
		return fmt.Errorf("damping must be in (0, 1), got %v", p.Damping)
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("max speed must be > 0, got %v", p.MaxSpeed)
	}
	return nil
}

// Direction is the unit steering vector for the pressed controls, or zero
// when opposing controls cancel or nothing is pressed.
func Direction(in *input.State) math.Vec3 {
	dir := math.Vec3{
		X: in.Axis(input.Right, input.Left),
		Y: in.Axis(input.Ascend, input.Descend),
		Z: in.Axis(input.Back, input.Forward),
	}
	return dir.Normalize()
}

// State is the position and velocity of the controlled model.
type State struct {
	Position math.Vec3
	Velocity math.Vec3

	params Params
}

func NewState(params Params, position math.Vec3) *State {
	return &State{Position: position, params: params}
}

func (s *State) Params() Params {
	return s.params
}

// Step advances one frame: accelerate, damp, cap speed, then move.
func (s *State) Step(in *input.State) {
	dir := Direction(in)
	s.Velocity = s.Velocity.Add(dir.Mul(s.params.Acceleration))
	s.Velocity = s.Velocity.Mul(s.params.Damping)
	s.Velocity = s.Velocity.ClampLength(s.params.MaxSpeed)
	s.Position = s.Position.Add(s.Velocity)
}
