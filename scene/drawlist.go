package scene

import (
	"sort"

	"warp-scene/math"
)

// DrawItem is one mesh ready to draw with its transforms resolved.
type DrawItem struct {
	Node      *Node
	Mesh      *Mesh
	ModelView math.Mat4
}

// DrawList is the per-frame draw queue for a scene seen through a camera.
type DrawList struct {
	Items      []DrawItem
	View       math.Mat4
	Projection math.Mat4
	Culled     int
}

// BuildDrawList collects visible meshes that have a material. With cull set,
// nodes whose bounds fall outside the camera frustum are dropped. Materials
// that leave depth untouched are queued first so they act as a backdrop.
func BuildDrawList(s *Scene, cam *Camera, cull bool) DrawList {
	view := cam.GetViewMatrix()
	proj := cam.GetProjectionMatrix()
	frustum := FrustumFromVP(view.Mul(proj))

	list := DrawList{View: view, Projection: proj}
	for _, node := range s.GetVisibleNodes() {
		mesh := node.Mesh
		if mesh.Material == nil {
			continue
		}
		world := node.GetWorldMatrix()
		if cull && node.FrustumCulled && mesh.HasLocalAABB {
			if !mesh.LocalAABB.Transform(world).IntersectsFrustum(&frustum) {
				list.Culled++
				continue
			}
		}
		list.Items = append(list.Items, DrawItem{
			Node:      node,
			Mesh:      mesh,
			ModelView: world.Mul(view),
		})
	}

	sort.SliceStable(list.Items, func(i, j int) bool {
		return !list.Items[i].Mesh.Material.DepthWrite && list.Items[j].Mesh.Material.DepthWrite
	})
	return list
}
