package core

import (
	"testing"

	"warp-scene/math"
)

func TestColorFromHex(t *testing.T) {
	c := ColorFromHex(0xff8000)
	if c.R != 1 || c.B != 0 || c.A != 1 {
		t.Errorf("ColorFromHex: expected (1,~0.5,0,1), got %v", c)
	}
	if c.G < 0.5 || c.G > 0.51 {
		t.Errorf("ColorFromHex: expected G ~0.502, got %v", c.G)
	}
}

func TestParseHexColor(t *testing.T) {
	for _, s := range []string{"#00ff00", "0x00ff00", "00FF00", " #00ff00 "} {
		c, err := ParseHexColor(s)
		if err != nil {
			t.Errorf("ParseHexColor(%q): unexpected error %v", s, err)
			continue
		}
		if c != (Color{0, 1, 0, 1}) {
			t.Errorf("ParseHexColor(%q): expected green, got %v", s, c)
		}
	}

	for _, s := range []string{"", "#fff", "#gggggg", "#1234567"} {
		if _, err := ParseHexColor(s); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", s)
		}
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	tr.Position = math.NewVec3(10, 0, 0)
	tr.Scale = math.NewVec3(2, 2, 2)

	got := tr.GetMatrix().TransformPoint(math.NewVec3(1, 0, 0))
	if got != math.NewVec3(12, 0, 0) {
		t.Errorf("GetMatrix: expected scale before translation (12,0,0), got %v", got)
	}
}
