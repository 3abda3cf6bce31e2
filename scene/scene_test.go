package scene

import (
	stdmath "math"
	"math/rand"
	"testing"

	"warp-scene/core"
	"warp-scene/math"
)

func TestNodeWorldMatrixFollowsParent(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	parent.SetPosition(math.NewVec3(10, 0, 0))
	child.SetPosition(math.NewVec3(0, 1, 0))

	got := child.GetWorldMatrix().TransformPoint(math.Vec3Zero)
	if got != math.NewVec3(10, 1, 0) {
		t.Errorf("world position: expected (10,1,0), got %v", got)
	}

	// Moving the parent must invalidate the cached child matrix.
	parent.SetPosition(math.NewVec3(-5, 0, 0))
	got = child.GetWorldMatrix().TransformPoint(math.Vec3Zero)
	if got != math.NewVec3(-5, 1, 0) {
		t.Errorf("world position after move: expected (-5,1,0), got %v", got)
	}
}

func TestNodeRotateAroundY(t *testing.T) {
	n := NewNode("spinner")
	n.Rotate(math.Vec3Up, float32(stdmath.Pi/2))

	got := n.GetWorldMatrix().TransformPoint(math.Vec3Right)
	if stdmath.Abs(float64(got.Z+1)) > 1e-4 || stdmath.Abs(float64(got.X)) > 1e-4 {
		t.Errorf("Rotate: expected (0,0,-1), got %v", got)
	}
}

func TestNodeMeshesAndFind(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	a.Mesh = &Mesh{Name: "ma"}
	b.Mesh = &Mesh{Name: "mb"}
	root.AddChild(a)
	a.AddChild(b)

	if got := len(root.Meshes()); got != 2 {
		t.Errorf("Meshes: expected 2, got %d", got)
	}
	if root.Find("b") != b {
		t.Error("Find: expected to locate nested node b")
	}
	if root.Find("missing") != nil {
		t.Error("Find: expected nil for unknown name")
	}

	// Re-parenting detaches from the previous parent.
	root.AddChild(b)
	if len(a.Children) != 0 || b.Parent != root {
		t.Errorf("AddChild: expected b moved to root, a has %d children", len(a.Children))
	}
}

func TestSceneVisibleNodesSkipsHiddenSubtrees(t *testing.T) {
	s := NewScene()
	shown := NewNode("shown")
	shown.Mesh = &Mesh{}
	hidden := NewNode("hidden")
	hidden.Visible = false
	under := NewNode("under")
	under.Mesh = &Mesh{}
	hidden.AddChild(under)
	s.AddNode(shown)
	s.AddNode(hidden)

	visible := s.GetVisibleNodes()
	if len(visible) != 1 || visible[0] != shown {
		t.Errorf("GetVisibleNodes: expected only 'shown', got %d nodes", len(visible))
	}
}

func TestMaterialUniforms(t *testing.T) {
	m := NewShaderMaterial("test", "v", "f")
	if !m.DepthWrite || m.Side != FrontSide {
		t.Error("NewShaderMaterial: expected front side with depth writes")
	}

	m.SetFloat("uTime", 1.5)
	m.SetColor("uColor", core.ColorWhite)

	if v, ok := m.Float("uTime"); !ok || v != 1.5 {
		t.Errorf("Float: expected 1.5, got %v (%v)", v, ok)
	}
	if c, ok := m.Color("uColor"); !ok || c != core.ColorWhite {
		t.Errorf("Color: expected white, got %v (%v)", c, ok)
	}
	if _, ok := m.Float("uColor"); ok {
		t.Error("Float: expected kind mismatch to report false")
	}
	if _, ok := m.Color("missing"); ok {
		t.Error("Color: expected missing uniform to report false")
	}

	names := m.UniformNames()
	if len(names) != 2 || names[0] != "uColor" || names[1] != "uTime" {
		t.Errorf("UniformNames: expected sorted [uColor uTime], got %v", names)
	}
}

func TestCreateStarfield(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := CreateStarfield(5000, 200, rng)

	if len(m.Vertices) != 5000 {
		t.Fatalf("expected 5000 stars, got %d", len(m.Vertices))
	}
	if m.DrawMode != DrawPoints {
		t.Error("expected starfield to draw as points")
	}
	for i, v := range m.Vertices {
		p := v.Position
		if p.X < -100 || p.X > 100 || p.Y < -100 || p.Y > 100 || p.Z < -100 || p.Z > 100 {
			t.Fatalf("star %d outside the 200-unit cube: %v", i, p)
		}
	}

	if got := len(CreateStarfield(-1, 200, rng).Vertices); got != 0 {
		t.Errorf("negative count: expected 0 stars, got %d", got)
	}
}

func TestCreateSphere(t *testing.T) {
	m := CreateSphere(50, 64, 64)

	if want := 65 * 65; len(m.Vertices) != want {
		t.Errorf("vertices: expected %d, got %d", want, len(m.Vertices))
	}
	if want := 64 * 64 * 6; len(m.Indices) != want {
		t.Errorf("indices: expected %d, got %d", want, len(m.Indices))
	}
	for _, v := range m.Vertices {
		if d := v.Position.Length(); stdmath.Abs(float64(d-50)) > 1e-3 {
			t.Fatalf("vertex off the sphere surface: |p| = %v", d)
		}
	}

	// Triangles wind counter-clockwise seen from outside: the face normal
	// points away from the centre.
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Position
		b := m.Vertices[m.Indices[i+1]].Position
		c := m.Vertices[m.Indices[i+2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		if n.LengthSqr() < 1e-6 {
			continue // degenerate triangle at a pole
		}
		centroid := a.Add(b).Add(c)
		if n.Dot(centroid) < 0 {
			t.Fatalf("triangle %d faces inward", i/3)
		}
	}
}

func TestFrustumCulling(t *testing.T) {
	cam := NewCamera(float32(stdmath.Pi/4), 1, 0.1, 100)
	cam.SetPosition(math.NewVec3(0, 0, 10))
	cam.LookAt(math.Vec3Zero, math.Vec3Up)
	f := FrustumFromVP(cam.GetViewProjectionMatrix())

	inFront := AABB{Min: math.NewVec3(-1, -1, -1), Max: math.NewVec3(1, 1, 1)}
	if !inFront.IntersectsFrustum(&f) {
		t.Error("expected box at the target to be visible")
	}

	behind := AABB{Min: math.NewVec3(-1, -1, 20), Max: math.NewVec3(1, 1, 22)}
	if behind.IntersectsFrustum(&f) {
		t.Error("expected box behind the camera to be culled")
	}

	moved := inFront.Transform(math.Mat4Translation(math.NewVec3(0, 0, 15)))
	if moved.Min.Z != 14 || moved.Max.Z != 16 {
		t.Errorf("Transform: expected z range [14,16], got [%v,%v]", moved.Min.Z, moved.Max.Z)
	}
}
