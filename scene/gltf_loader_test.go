package scene

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeGLTF writes a glTF document whose single buffer holds one triangle's
// positions, with the given node and mesh arrays, and returns its path.
func writeGLTF(t *testing.T, nodes, meshes string) string {
	t.Helper()

	var buf bytes.Buffer
	for _, f := range []float32{0, 0, 0, 1, 0, 0, 0, 1, 0} {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			t.Fatal(err)
		}
	}
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": %s,
  "meshes": %s,
  "buffers": [{"byteLength": %d, "uri": %q}],
  "bufferViews": [{"buffer": 0, "byteLength": %d}],
  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3",
                 "min": [0, 0, 0], "max": [1, 1, 0]}]
}`, nodes, meshes, buf.Len(), uri, buf.Len())

	path := filepath.Join(t.TempDir(), "model.gltf")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const triangleMesh = `[{"name":"tri","primitives":[{"attributes":{"POSITION":0}}]}]`

// writeTriangleGLTF writes a one-triangle glTF with an embedded buffer and
// returns its path.
func writeTriangleGLTF(t *testing.T, withMesh bool) string {
	t.Helper()
	if !withMesh {
		return writeGLTF(t, `[{"name":"empty"}]`, `[]`)
	}
	return writeGLTF(t, `[{"name":"ship","mesh":0,"translation":[1,2,3]}]`, triangleMesh)
}

func TestLoadGLTF(t *testing.T) {
	root, err := LoadGLTF(writeTriangleGLTF(t, true))
	if err != nil {
		t.Fatalf("LoadGLTF: %v", err)
	}

	if root.Name != "model" {
		t.Errorf("root name: expected %q, got %q", "model", root.Name)
	}
	ship := root.Find("ship")
	if ship == nil {
		t.Fatal("expected node 'ship' under the root")
	}
	if ship.Transform.Position.X != 1 || ship.Transform.Position.Y != 2 || ship.Transform.Position.Z != 3 {
		t.Errorf("translation: expected (1,2,3), got %v", ship.Transform.Position)
	}

	meshes := root.Meshes()
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	m := meshes[0]
	if len(m.Vertices) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(m.Vertices))
	}
	if m.Vertices[1].Position.X != 1 || m.Vertices[2].Position.Y != 1 {
		t.Errorf("unexpected positions: %v", m.Vertices)
	}
	if m.Material != nil {
		t.Error("expected loader to leave Material unset")
	}
}

func TestLoadGLTFErrors(t *testing.T) {
	if _, err := LoadGLTF(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("expected error for nonexistent file")
	}
	if _, err := LoadGLTF(writeTriangleGLTF(t, false)); err == nil {
		t.Error("expected error for a document without meshes")
	}
}

func TestLoadGLTFMalformed(t *testing.T) {
	tests := []struct {
		name   string
		nodes  string
		meshes string
	}{
		{
			name:   "position accessor out of range",
			nodes:  `[{"mesh":0}]`,
			meshes: `[{"primitives":[{"attributes":{"POSITION":7}}]}]`,
		},
		{
			name:   "normal accessor out of range",
			nodes:  `[{"mesh":0}]`,
			meshes: `[{"primitives":[{"attributes":{"POSITION":0,"NORMAL":3}}]}]`,
		},
		{
			name:   "texcoord accessor out of range",
			nodes:  `[{"mesh":0}]`,
			meshes: `[{"primitives":[{"attributes":{"POSITION":0,"TEXCOORD_0":2}}]}]`,
		},
		{
			name:   "index accessor out of range",
			nodes:  `[{"mesh":0}]`,
			meshes: `[{"primitives":[{"attributes":{"POSITION":0},"indices":5}]}]`,
		},
		{
			name:   "node is its own child",
			nodes:  `[{"mesh":0,"children":[0]}]`,
			meshes: triangleMesh,
		},
		{
			name:   "child cycle",
			nodes:  `[{"mesh":0,"children":[1]},{"children":[0]}]`,
			meshes: triangleMesh,
		},
		{
			name:   "child out of range",
			nodes:  `[{"mesh":0,"children":[4]}]`,
			meshes: triangleMesh,
		},
		{
			name:   "node with two parents",
			nodes:  `[{"mesh":0,"children":[1,2]},{"children":[2]},{}]`,
			meshes: triangleMesh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := LoadGLTF(writeGLTF(t, tt.nodes, tt.meshes))
			if err == nil {
				t.Fatalf("expected an error, got root %v", root.Name)
			}
			if root != nil {
				t.Error("expected no root on error")
			}
		})
	}
}
