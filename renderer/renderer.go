package renderer

import (
	"fmt"
	"log/slog"

	"warp-scene/internal/opengl"
	"warp-scene/logger"
	"warp-scene/scene"
	"warp-scene/window"
)

// DrawStats describes the most recent Render call.
type DrawStats struct {
	Objects   int
	Vertices  int
	Triangles int
	Points    int
	Culled    int
}

// RenderEngine is the high-level renderer that drives the OpenGL backend.
type RenderEngine struct {
	gl             *opengl.Renderer
	window         *window.Window
	log            *slog.Logger
	FrustumCulling bool

	last DrawStats
}

func NewRenderEngine(win *window.Window, log *slog.Logger) (*RenderEngine, error) {
	if log == nil {
		log = logger.L()
	}
	log = log.With(logger.ComponentKey, "Render")

	glRenderer, err := opengl.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}
	glRenderer.SetViewport(win.Width, win.Height)

	log.Info("render engine initialized", "width", win.Width, "height", win.Height)
	return &RenderEngine{
		gl:             glRenderer,
		window:         win,
		log:            log,
		FrustumCulling: true,
	}, nil
}

// Render draws scene as seen from camera into the back buffer.
func (re *RenderEngine) Render(s *scene.Scene, camera *scene.Camera) {
	re.gl.BeginFrame(s.Background)

	list := scene.BuildDrawList(s, camera, re.FrustumCulling)
	stats := DrawStats{Culled: list.Culled}

	for _, item := range list.Items {
		if !re.gl.DrawMesh(item.Mesh, item.ModelView, list.Projection) {
			continue
		}
		stats.Objects++
		stats.Vertices += len(item.Mesh.Vertices)
		switch item.Mesh.DrawMode {
		case scene.DrawPoints:
			stats.Points += len(item.Mesh.Vertices)
		default:
			if len(item.Mesh.Indices) > 0 {
				stats.Triangles += len(item.Mesh.Indices) / 3
			} else {
				stats.Triangles += len(item.Mesh.Vertices) / 3
			}
		}
	}
	re.last = stats
}

// Present swaps the back buffer to the screen.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

// Resize updates the viewport to a new framebuffer size in pixels.
func (re *RenderEngine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	re.gl.SetViewport(width, height)
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}

// DrawStats returns stats from the most recent Render call.
func (re *RenderEngine) DrawStats() DrawStats {
	return re.last
}
