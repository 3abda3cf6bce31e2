package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"warp-scene/core"
)

func init() {
	runtime.LockOSThread()
}

type (
	KeyCallback         func(key int, action core.KeyAction)
	MouseButtonCallback func(button int, action core.KeyAction)
	CursorPosCallback   func(x, y float64)
	FocusCallback       func(focused bool)
	ResizeCallback      func(width, height int)
)

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	onResize ResizeCallback
}

type Config struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	VSync      bool
	Fullscreen bool
}

func DefaultConfig() Config {
	return Config{
		Width:      1280,
		Height:     720,
		Title:      "Warp Scene",
		Resizable:  true,
		VSync:      true,
		Fullscreen: false,
	}
}

// New creates a window and makes its OpenGL 4.1 core context current.
func New(config Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	window := &Window{
		Handle: handle,
		Title:  config.Title,
	}
	// HiDPI displays report a framebuffer larger than the requested window size.
	window.Width, window.Height = handle.GetFramebufferSize()

	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		if window.onResize != nil {
			window.onResize(width, height)
		}
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

// CaptureCursor hides the cursor and switches to unbounded relative motion.
func (w *Window) CaptureCursor() {
	w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		w.Handle.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
}

func (w *Window) ReleaseCursor() {
	w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

func (w *Window) SetKeyCallback(cb KeyCallback) {
	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		cb(int(key), toKeyAction(action))
	})
}

func (w *Window) SetMouseButtonCallback(cb MouseButtonCallback) {
	w.Handle.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		cb(int(button), toKeyAction(action))
	})
}

func (w *Window) SetCursorPosCallback(cb CursorPosCallback) {
	w.Handle.SetCursorPosCallback(func(win *glfw.Window, x, y float64) {
		cb(x, y)
	})
}

func (w *Window) SetFocusCallback(cb FocusCallback) {
	w.Handle.SetFocusCallback(func(win *glfw.Window, focused bool) {
		cb(focused)
	})
}

// SetResizeCallback is notified with the new framebuffer size in pixels.
func (w *Window) SetResizeCallback(cb ResizeCallback) {
	w.onResize = cb
}

func toKeyAction(a glfw.Action) core.KeyAction {
	switch a {
	case glfw.Press:
		return core.Press
	case glfw.Repeat:
		return core.Repeat
	default:
		return core.Release
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
