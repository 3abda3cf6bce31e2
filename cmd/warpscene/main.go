package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"warp-scene/asset"
	"warp-scene/config"
	"warp-scene/frame"
	"warp-scene/input"
	"warp-scene/logger"
	"warp-scene/renderer"
	"warp-scene/window"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:   "warpscene",
		Short: "Fly a glTF model through a warp tunnel",
		Long: `warpscene - starfield, warp tunnel and a follow camera around a glTF model.

Controls:
  W/S/A/D         - Move
  Space/Shift     - Ascend/descend
  Arrow Up/Down   - Cycle model color
  Left click      - Capture mouse and orbit
  Esc             - Release mouse, then quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			logger.Init(cfg.Logging)
			log := logger.L()

			if err := run(cfg, log); err != nil {
				log.Error("fatal", "err", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to a YAML config file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "warpscene: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	winCfg := window.DefaultConfig()
	winCfg.Width = cfg.Window.Width
	winCfg.Height = cfg.Window.Height
	winCfg.Title = cfg.Window.Title
	winCfg.VSync = cfg.Window.VSync
	winCfg.Fullscreen = cfg.Window.Fullscreen

	win, err := window.New(winCfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	renderEngine, err := renderer.NewRenderEngine(win, log)
	if err != nil {
		return err
	}
	defer renderEngine.Destroy()

	colors, err := cfg.Colors()
	if err != nil {
		return err
	}

	seed := cfg.Starfield.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	aspect := float32(16.0 / 9.0)
	if win.Height > 0 {
		aspect = float32(win.Width) / float32(win.Height)
	}
	stage := frame.Assemble(frame.StageConfig{
		FOVDegrees:  cfg.Camera.FOVDegrees,
		AspectRatio: aspect,
		Near:        cfg.Camera.Near,
		Far:         cfg.Camera.Far,
		StarCount:   cfg.Starfield.Count,
		StarExtent:  cfg.Starfield.Extent,
		StarSize:    cfg.Starfield.Size,
		StarSeed:    seed,
		ModelColor:  colors[0],
	})

	assets := asset.NewLifecycle(cfg.Model.Path, asset.FromFile(cfg.Model.Path), log)
	loop, err := frame.NewLoop(stage, assets, win, frame.Options{
		Motion:         cfg.Motion,
		Sensitivity:    cfg.Look.Sensitivity,
		FollowDistance: cfg.Camera.FollowDistance,
		SpinPerFrame:   cfg.Camera.SpinPerFrame,
		Palette:        colors,
		Bindings:       input.DefaultBindings(),
	}, log)
	if err != nil {
		return fmt.Errorf("frame loop: %w", err)
	}

	win.SetKeyCallback(loop.HandleKey)
	win.SetMouseButtonCallback(loop.HandleMouseButton)
	win.SetCursorPosCallback(loop.HandleCursor)
	win.SetFocusCallback(loop.HandleFocus)
	win.SetResizeCallback(func(width, height int) {
		renderEngine.Resize(width, height)
		loop.HandleResize(width, height)
	})

	assets.Start()
	printControls(cfg.Camera.FollowDistance)

	var status statusLine
	start := time.Now()
	lastTitle := start
	frameCount := 0

	for !win.ShouldClose() {
		win.PollEvents()

		loop.Tick(float32(time.Since(start).Seconds()))
		renderEngine.Render(stage.Scene, stage.Camera)
		renderEngine.Present()

		frameCount++
		now := time.Now()
		if now.Sub(lastTitle) >= time.Second {
			stats := renderEngine.DrawStats()
			status.Clear()
			status.Add("%s", cfg.Window.Title)
			status.Add("FPS: %d", frameCount)
			status.Add("Model: %s", assets.State())
			if m := loop.Motion(); m != nil {
				status.Add("(%.1f, %.1f, %.1f)", m.Position.X, m.Position.Y, m.Position.Z)
			}
			win.SetTitle(status.String())

			log.Debug("frame stats",
				"fps", frameCount,
				"objects", stats.Objects,
				"triangles", stats.Triangles,
				"points", stats.Points,
				"culled", stats.Culled)
			frameCount = 0
			lastTitle = now
		}
	}

	log.Info("exiting", "frames", loop.Frames())
	return nil
}

func printControls(followDistance float32) {
	fmt.Println("===========================================")
	fmt.Println("  Warp Scene")
	fmt.Println("===========================================")
	fmt.Println("")
	fmt.Println("  W / S            - Move forward / backward")
	fmt.Println("  A / D            - Move left / right")
	fmt.Println("  Space / Shift    - Ascend / descend")
	fmt.Println("  Arrow Up / Down  - Cycle model color")
	fmt.Println("  Left click       - Capture mouse and orbit the camera")
	fmt.Printf("  (camera trails the model at %.0f units)\n", followDistance)
	fmt.Println("")
	fmt.Println("EXIT: ESC (first press releases the mouse)")
	fmt.Println("===========================================")
	fmt.Println("")
}
