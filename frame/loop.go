package frame

import (
	"log/slog"

	"warp-scene/asset"
	"warp-scene/core"
	"warp-scene/follow"
	"warp-scene/input"
	"warp-scene/logger"
	"warp-scene/math"
	"warp-scene/motion"
	"warp-scene/palette"
	"warp-scene/scene"
	"warp-scene/shader"
)

// Surface is the part of the host window the loop drives.
type Surface interface {
	CaptureCursor()
	ReleaseCursor()
	SetShouldClose(bool)
}

type Options struct {
	Motion         motion.Params
	Sensitivity    float32
	FollowDistance float32
	SpinPerFrame   float32
	Palette        []core.Color
	Bindings       input.Bindings
}

func DefaultOptions() Options {
	return Options{
		Motion:         motion.DefaultParams(),
		Sensitivity:    input.DefaultSensitivity,
		FollowDistance: follow.DefaultDistance,
		SpinPerFrame:   0.005,
		Palette:        palette.Default,
		Bindings:       input.DefaultBindings(),
	}
}

// Loop owns all per-frame state. Event handlers and Tick must be called from
// the same goroutine.
type Loop struct {
	stage    *Stage
	surface  Surface
	opts     Options
	log      *slog.Logger
	assets   *asset.Lifecycle
	controls *input.State
	look     *input.Look
	cursor   input.CursorTracker
	cycler   *palette.Cycler
	motion   *motion.State
	model    *scene.Node
	spin     float32
	frames   uint64
}

func NewLoop(stage *Stage, assets *asset.Lifecycle, surface Surface, opts Options, log *slog.Logger) (*Loop, error) {
	if log == nil {
		log = logger.L()
	}
	if err := opts.Motion.Validate(); err != nil {
		return nil, err
	}
	cycler, err := palette.NewCycler(opts.Palette)
	if err != nil {
		return nil, err
	}

	l := &Loop{
		stage:    stage,
		surface:  surface,
		opts:     opts,
		log:      log.With(logger.ComponentKey, "Frame"),
		assets:   assets,
		controls: input.NewState(),
		look:     input.NewLook(opts.Sensitivity),
		cycler:   cycler,
	}
	stage.Updater.Model().SetColor(shader.ColorUniform, cycler.Current())
	assets.OnLoad(l.adoptModel)
	return l, nil
}

// adoptModel runs once, inside Tick, when the asset arrives.
func (l *Loop) adoptModel(root *scene.Node) {
	meshes := l.stage.Updater.Adopt(root)
	root.SetPosition(math.Vec3Zero)
	l.stage.Scene.AddNode(root)

	l.model = root
	l.motion = motion.NewState(l.opts.Motion, root.Transform.Position)
	l.cycler.Bind(func(c core.Color) {
		l.stage.Updater.ApplyColor(root, c)
	})
	l.log.Info("model attached", "meshes", meshes)
}

// HandleKey applies a key event. Movement keys track press and release;
// color keys and Escape act on the initial press only.
func (l *Loop) HandleKey(key int, action core.KeyAction) {
	if action == core.Repeat {
		return
	}
	pressed := action == core.Press

	if c, ok := l.opts.Bindings.Control(key); ok {
		l.controls.SetControl(c, pressed)
		return
	}
	if !pressed {
		return
	}
	if step, ok := l.opts.Bindings.CycleStep(key); ok {
		if l.cycler.Advance(palette.Step(step)) {
			l.log.Debug("color changed", "index", l.cycler.Index())
		}
		return
	}
	if key == core.KeyEscape {
		if l.look.Engaged() {
			l.HandleCaptureLost()
			return
		}
		l.surface.SetShouldClose(true)
	}
}

// HandleMouseButton engages look on a left click.
func (l *Loop) HandleMouseButton(button int, action core.KeyAction) {
	if button != core.MouseButtonLeft || action != core.Press || l.look.Engaged() {
		return
	}
	l.surface.CaptureCursor()
	l.cursor.Reset()
	l.look.Engage()
}

func (l *Loop) HandleCursor(x, y float64) {
	dx, dy, ok := l.cursor.Move(x, y)
	if !ok {
		return
	}
	l.look.OnMouseDelta(dx, dy)
}

// HandleCaptureLost releases the cursor and stops mouse look.
func (l *Loop) HandleCaptureLost() {
	if !l.look.Engaged() {
		return
	}
	l.look.Disengage()
	l.surface.ReleaseCursor()
}

func (l *Loop) HandleFocus(focused bool) {
	if !focused {
		l.HandleCaptureLost()
		// released keys are not reported to an unfocused window
		l.controls.Reset()
	}
}

func (l *Loop) HandleResize(width, height int) {
	l.stage.Camera.UpdateAspectRatio(float32(width), float32(height))
}

// Tick advances one frame. elapsed is wall-clock seconds since start.
func (l *Loop) Tick(elapsed float32) {
	l.frames++
	l.stage.Updater.Tick(elapsed)
	l.assets.Poll()

	if l.assets.State() != asset.Loaded {
		return
	}

	l.motion.Step(l.controls)
	l.model.SetPosition(l.motion.Position)
	l.spin += l.opts.SpinPerFrame
	l.model.SetRotation(math.QuaternionFromAxisAngle(math.Vec3Up, l.spin))

	follow.Apply(l.stage.Camera, l.motion.Position, l.look.Yaw, l.look.Pitch, l.opts.FollowDistance)
}

func (l *Loop) Stage() *Stage { return l.stage }
func (l *Loop) Controls() *input.State { return l.controls }
func (l *Loop) Look() *input.Look { return l.look }
func (l *Loop) Cycler() *palette.Cycler { return l.cycler }
func (l *Loop) Assets() *asset.Lifecycle { return l.assets }
func (l *Loop) Frames() uint64 { return l.frames }

// Model returns the loaded model root, or nil before the load completes.
func (l *Loop) Model() *scene.Node { return l.model }

// Motion returns the model motion state, or nil before the load completes.
func (l *Loop) Motion() *motion.State { return l.motion }
