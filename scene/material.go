package scene

import (
	"sort"

	"warp-scene/core"
)

// Side selects which triangle faces a material renders.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

type UniformKind int

const (
	UniformFloat UniformKind = iota
	UniformColor
)

// Uniform is one named shader input. Only the field matching Kind is meaningful.
type Uniform struct {
	Kind  UniformKind
	Float float32
	Color core.Color
}

// Material pairs a GLSL program with the uniform values it is drawn with.
//
// The renderer supplies projectionMatrix, modelViewMatrix and viewportHeight
// itself; everything in Uniforms is uploaded by name on every draw.
type Material struct {
	Name           string
	VertexShader   string
	FragmentShader string
	Uniforms       map[string]*Uniform
	Side           Side
	DepthWrite     bool
}

// NewShaderMaterial creates a front-side, depth-writing material with no uniforms.
func NewShaderMaterial(name, vertexShader, fragmentShader string) *Material {
	return &Material{
		Name:           name,
		VertexShader:   vertexShader,
		FragmentShader: fragmentShader,
		Uniforms:       make(map[string]*Uniform),
		Side:           FrontSide,
		DepthWrite:     true,
	}
}

func (m *Material) SetFloat(name string, v float32) {
	m.Uniforms[name] = &Uniform{Kind: UniformFloat, Float: v}
}

func (m *Material) SetColor(name string, c core.Color) {
	m.Uniforms[name] = &Uniform{Kind: UniformColor, Color: c}
}

func (m *Material) Float(name string) (float32, bool) {
	u, ok := m.Uniforms[name]
	if !ok || u.Kind != UniformFloat {
		return 0, false
	}
	return u.Float, true
}

func (m *Material) Color(name string) (core.Color, bool) {
	u, ok := m.Uniforms[name]
	if !ok || u.Kind != UniformColor {
		return core.Color{}, false
	}
	return u.Color, true
}

// UniformNames lists uniform names in a stable order.
func (m *Material) UniformNames() []string {
	names := make([]string, 0, len(m.Uniforms))
	for name := range m.Uniforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
