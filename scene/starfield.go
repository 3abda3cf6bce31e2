package scene

import (
	"math/rand"

	"warp-scene/core"
	"warp-scene/math"
)

// CreateStarfield scatters count points uniformly inside an axis-aligned cube
// of edge length extent centred on the origin.
func CreateStarfield(count int, extent float32, rng *rand.Rand) *Mesh {
	if count < 0 {
		count = 0
	}
	vertices := make([]core.Vertex, count)
	coord := func() float32 {
		return (rng.Float32() - 0.5) * extent
	}
	for i := range vertices {
		vertices[i] = core.Vertex{
			Position: math.Vec3{X: coord(), Y: coord(), Z: coord()},
			Color:    core.ColorWhite,
		}
	}

	m := CreateMeshFromData("Starfield", vertices, nil)
	m.DrawMode = DrawPoints
	return m
}
