package follow

import (
	stdmath "math"

	"warp-scene/math"
	"warp-scene/scene"
)

// DefaultDistance is the orbit radius around the followed target.
const DefaultDistance float32 = 10

// Offset is the camera displacement from its target. The vertical component
// is flattened by half.
func Offset(yaw, pitch, distance float32) math.Vec3 {
	return math.Vec3{
		X: float32(stdmath.Sin(float64(yaw))) * distance,
		Y: float32(stdmath.Sin(float64(pitch))) * distance * 0.5,
		Z: float32(stdmath.Cos(float64(yaw))) * distance,
	}
}

func Position(target math.Vec3, yaw, pitch, distance float32) math.Vec3 {
	return target.Add(Offset(yaw, pitch, distance))
}

// Apply places camera on the orbit around target and aims it at target.
func Apply(camera *scene.Camera, target math.Vec3, yaw, pitch, distance float32) {
	camera.SetPosition(Position(target, yaw, pitch, distance))
	camera.LookAt(target, math.Vec3Up)
}
