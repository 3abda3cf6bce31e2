package frame

import (
	stdmath "math"
	"math/rand"

	"warp-scene/core"
	"warp-scene/math"
	"warp-scene/scene"
	"warp-scene/shader"
)

// StageConfig sizes the static parts of the scene.
type StageConfig struct {
	FOVDegrees  float32
	AspectRatio float32
	Near        float32
	Far         float32

	StarCount  int
	StarExtent float32
	StarSize   float32
	StarSeed   int64

	ModelColor core.Color
}

func DefaultStageConfig() StageConfig {
	return StageConfig{
		FOVDegrees:  45,
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         500,
		StarCount:   5000,
		StarExtent:  200,
		StarSize:    0.1,
		StarSeed:    1,
		ModelColor:  shader.ModelColor,
	}
}

const (
	warpRadius   = 50
	warpSegments = 64
)

var (
	Background    = core.ColorFromHex(0x000010)
	CameraStart   = math.Vec3{X: 0, Y: 2, Z: 10}
	starfieldName = "Starfield"
	warpName      = "WarpTunnel"
)

// Stage is the assembled scene before any model arrives.
type Stage struct {
	Scene     *scene.Scene
	Camera    *scene.Camera
	Starfield *scene.Node
	Warp      *scene.Node
	Updater   *shader.Updater
}

// Assemble builds the starfield, the warp tunnel and the camera.
func Assemble(cfg StageConfig) *Stage {
	s := scene.NewScene()
	s.Background = Background

	fov := cfg.FOVDegrees * stdmath.Pi / 180
	cam := scene.NewCamera(fov, cfg.AspectRatio, cfg.Near, cfg.Far)
	cam.SetPosition(CameraStart)
	// until a model arrives the camera faces straight down -Z
	cam.LookAt(CameraStart.Add(math.Vec3Back), math.Vec3Up)

	rng := rand.New(rand.NewSource(cfg.StarSeed))
	starMesh := scene.CreateStarfield(cfg.StarCount, cfg.StarExtent, rng)
	starMesh.Material = shader.NewStarMaterial(core.ColorWhite, cfg.StarSize)
	stars := scene.NewNode(starfieldName)
	stars.Mesh = starMesh
	s.AddNode(stars)

	warpMat := shader.NewWarpMaterial(shader.WarpInnerColor, shader.WarpOuterColor)
	warpMesh := scene.CreateSphere(warpRadius, warpSegments, warpSegments)
	warpMesh.Material = warpMat
	warp := scene.NewNode(warpName)
	warp.Mesh = warpMesh
	// positions are emitted in clip space, world bounds mean nothing here
	warp.FrustumCulled = false
	s.AddNode(warp)

	return &Stage{
		Scene:     s,
		Camera:    cam,
		Starfield: stars,
		Warp:      warp,
		Updater:   shader.NewUpdater(warpMat, shader.NewModelMaterial(cfg.ModelColor)),
	}
}
