package shader

import (
	"warp-scene/core"
	"warp-scene/scene"
)

// Updater pushes per-frame time and color changes into the warp and model
// materials.
type Updater struct {
	warp  *scene.Material
	model *scene.Material
}

func NewUpdater(warp, model *scene.Material) *Updater {
	return &Updater{warp: warp, model: model}
}

func (u *Updater) Warp() *scene.Material { return u.warp }
func (u *Updater) Model() *scene.Material { return u.model }

// Tick writes elapsed seconds into the time uniform of both materials.
func (u *Updater) Tick(elapsed float32) {
	u.warp.SetFloat(TimeUniform, elapsed)
	u.model.SetFloat(TimeUniform, elapsed)
}

// Adopt replaces the material of every mesh under root with the model
// material and returns how many meshes were changed.
func (u *Updater) Adopt(root *scene.Node) int {
	count := 0
	for _, mesh := range root.Meshes() {
		mesh.Material = u.model
		count++
	}
	return count
}

// ApplyColor sets the color uniform on every mesh material under root.
func (u *Updater) ApplyColor(root *scene.Node, color core.Color) {
	for _, mesh := range root.Meshes() {
		if mesh.Material != nil {
			mesh.Material.SetColor(ColorUniform, color)
		}
	}
}
