package input

// Control names a logical movement control.
type Control string

const (
	Forward Control = "forward"
	Back    Control = "back"
	Left    Control = "left"
	Right   Control = "right"
	Ascend  Control = "ascend"
	Descend Control = "descend"
)

// Controls lists every logical control in a stable order.
var Controls = []Control{Forward, Back, Left, Right, Ascend, Descend}

// State is the pressed/released state of the movement controls.
// The zero value is not usable; call NewState.
type State struct {
	pressed map[Control]bool
}

func NewState() *State {
	s := &State{pressed: make(map[Control]bool, len(Controls))}
	for _, c := range Controls {
		s.pressed[c] = false
	}
	return s
}

// SetControl records the latest state of a control. Unknown names are ignored.
func (s *State) SetControl(name Control, pressed bool) {
	if _, ok := s.pressed[name]; !ok {
		return
	}
	s.pressed[name] = pressed
}

func (s *State) Pressed(name Control) bool {
	return s.pressed[name]
}

// Snapshot returns a copy of the control map.
func (s *State) Snapshot() map[Control]bool {
	out := make(map[Control]bool, len(s.pressed))
	for k, v := range s.pressed {
		out[k] = v
	}
	return out
}

// Reset releases every control.
func (s *State) Reset() {
	for k := range s.pressed {
		s.pressed[k] = false
	}
}

// Axis returns +1, 0 or -1 for a pair of opposing controls.
func (s *State) Axis(positive, negative Control) float32 {
	var v float32
	if s.pressed[positive] {
		v++
	}
	if s.pressed[negative] {
		v--
	}
	return v
}
