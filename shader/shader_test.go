package shader

import (
	"strings"
	"testing"

	"warp-scene/core"
	"warp-scene/scene"
)

func TestWarpMaterial(t *testing.T) {
	m := NewWarpMaterial(WarpInnerColor, WarpOuterColor)
	if m.Side != scene.BackSide {
		t.Error("warp material should render back faces")
	}
	if m.DepthWrite {
		t.Error("warp material must not write depth")
	}
	if c, ok := m.Color(Color1Uniform); !ok || c != core.ColorFromHex(0x00aaff) {
		t.Errorf("uColor1: expected 0x00aaff, got %v (ok=%v)", c, ok)
	}
	if _, ok := m.Float(TimeUniform); !ok {
		t.Error("warp material should declare uTime")
	}
}

func TestShaderSourcesDeclareUniforms(t *testing.T) {
	materials := []*scene.Material{
		NewWarpMaterial(WarpInnerColor, WarpOuterColor),
		NewModelMaterial(ModelColor),
		NewStarMaterial(core.ColorWhite, 0.1),
	}
	for _, m := range materials {
		src := m.VertexShader + m.FragmentShader
		if !strings.Contains(m.VertexShader, "#version 410 core") {
			t.Errorf("%s: vertex shader missing version directive", m.Name)
		}
		for _, name := range m.UniformNames() {
			if !strings.Contains(src, "uniform float "+name) && !strings.Contains(src, "uniform vec3 "+name) {
				t.Errorf("%s: uniform %s not declared in shader source", m.Name, name)
			}
		}
	}
}

func modelWithMeshes(n int) *scene.Node {
	root := scene.NewNode("model")
	parent := root
	for i := 0; i < n; i++ {
		child := scene.NewNode("part")
		child.Mesh = scene.CreateMeshFromData("part", []core.Vertex{{}, {}, {}}, nil)
		child.Mesh.Material = scene.NewShaderMaterial("imported", "", "")
		parent.AddChild(child)
		parent = child
	}
	return root
}

func TestUpdaterTick(t *testing.T) {
	warp := NewWarpMaterial(WarpInnerColor, WarpOuterColor)
	model := NewModelMaterial(ModelColor)
	u := NewUpdater(warp, model)

	u.Tick(2.5)

	if v, _ := warp.Float(TimeUniform); v != 2.5 {
		t.Errorf("warp uTime: expected 2.5, got %v", v)
	}
	if v, _ := model.Float(TimeUniform); v != 2.5 {
		t.Errorf("model uTime: expected 2.5, got %v", v)
	}
}

func TestUpdaterAdoptAndColor(t *testing.T) {
	model := NewModelMaterial(ModelColor)
	u := NewUpdater(NewWarpMaterial(WarpInnerColor, WarpOuterColor), model)
	root := modelWithMeshes(3)

	if n := u.Adopt(root); n != 3 {
		t.Fatalf("Adopt: expected 3 meshes, got %d", n)
	}
	for _, mesh := range root.Meshes() {
		if mesh.Material != model {
			t.Errorf("mesh %s kept its imported material", mesh.Name)
		}
	}

	red := core.ColorFromHex(0xff0000)
	u.ApplyColor(root, red)
	if c, _ := model.Color(ColorUniform); c != red {
		t.Errorf("uColor: expected red, got %v", c)
	}
}

func TestApplyColorReachesEveryMesh(t *testing.T) {
	u := NewUpdater(NewWarpMaterial(WarpInnerColor, WarpOuterColor), NewModelMaterial(ModelColor))
	root := modelWithMeshes(4)
	blue := core.ColorFromHex(0x0000ff)

	u.ApplyColor(root, blue)

	for _, mesh := range root.Meshes() {
		if c, ok := mesh.Material.Color(ColorUniform); !ok || c != blue {
			t.Errorf("mesh %s: expected blue, got %v", mesh.Name, c)
		}
	}
}
