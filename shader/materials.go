package shader

import (
	"warp-scene/core"
	"warp-scene/scene"
)

// Uniform names shared by the scene materials.
const (
	TimeUniform   = "uTime"
	ColorUniform  = "uColor"
	Color1Uniform = "uColor1"
	Color2Uniform = "uColor2"
	SizeUniform   = "uSize"
)

var (
	WarpInnerColor = core.ColorFromHex(0x00aaff)
	WarpOuterColor = core.ColorFromHex(0xffffff)
	ModelColor     = core.ColorFromHex(0x00ff00)
)

// NewWarpMaterial builds the tunnel material. It renders the inside of its
// sphere and leaves the depth buffer untouched.
func NewWarpMaterial(inner, outer core.Color) *scene.Material {
	m := scene.NewShaderMaterial("warp", warpVertexSrc, warpFragmentSrc)
	m.SetFloat(TimeUniform, 0)
	m.SetColor(Color1Uniform, inner)
	m.SetColor(Color2Uniform, outer)
	m.Side = scene.BackSide
	m.DepthWrite = false
	return m
}

// NewModelMaterial builds the animated surface material shared by every
// mesh of the loaded model.
func NewModelMaterial(color core.Color) *scene.Material {
	m := scene.NewShaderMaterial("model", modelVertexSrc, modelFragmentSrc)
	m.SetFloat(TimeUniform, 0)
	m.SetColor(ColorUniform, color)
	return m
}

// NewStarMaterial builds a flat point material; size is in world units.
func NewStarMaterial(color core.Color, size float32) *scene.Material {
	m := scene.NewShaderMaterial("stars", starVertexSrc, starFragmentSrc)
	m.SetColor(ColorUniform, color)
	m.SetFloat(SizeUniform, size)
	return m
}
