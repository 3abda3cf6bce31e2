package input

import "math"

// DefaultSensitivity is the look rotation in radians per pixel of mouse travel.
const DefaultSensitivity float32 = 0.002

const maxPitch = float32(math.Pi / 2)

// Look accumulates yaw and pitch from mouse motion while engaged.
type Look struct {
	Yaw   float32
	Pitch float32

	sensitivity float32
	engaged     bool
}

func NewLook(sensitivity float32) *Look {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Look{sensitivity: sensitivity}
}

func (l *Look) Engage() { l.engaged = true }
func (l *Look) Disengage() { l.engaged = false }
func (l *Look) Engaged() bool { return l.engaged }
func (l *Look) Sensitivity() float32 { return l.sensitivity }

// OnMouseDelta rotates by a cursor delta in pixels. Pitch stays within
// [-π/2, π/2]; yaw is left unbounded.
func (l *Look) OnMouseDelta(dx, dy float32) {
	if !l.engaged {
		return
	}
	l.Yaw -= dx * l.sensitivity
	l.Pitch -= dy * l.sensitivity
	if l.Pitch > maxPitch {
		l.Pitch = maxPitch
	}
	if l.Pitch < -maxPitch {
		l.Pitch = -maxPitch
	}
}
