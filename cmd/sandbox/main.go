package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/hubastard/hoglib"
	"github.com/hubastard/hoglib/engine/colors"
	"github.com/hubastard/hoglib/engine/core"
)

const (
	EnvWidth  = "HOGLIB_WIDTH"
	EnvHeight = "HOGLIB_HEIGHT"
	EnvLegacy = "HOGLIB_LEGACY"
	EnvImage  = "HOGLIB_IMAGE"
	EnvDebug  = "HOGLIB_DEBUG"
)

type App struct {
	image string
	layer *Layer2D
	debug *LayerDebug
}

func (a *App) OnStart(e *hoglib.Engine) {
	a.layer = &Layer2D{imagePath: a.image}
	a.debug = &LayerDebug{}
	e.Layers.Push(a.layer)
	e.Layers.Push(a.debug)
}

func (a *App) OnUpdate(e *hoglib.Engine, dt float64) {
	if e.Input.IsKeyPressed(core.KeyEscape) {
		e.Window.SetShouldClose(true)
	}
}

func (a *App) OnRender(e *hoglib.Engine, alpha float64)  {}
func (a *App) OnEvent(e *hoglib.Engine, ev hoglib.Event) {}
func (a *App) OnShutdown(e *hoglib.Engine)               {}

func main() {
	width := flag.Int("width", 1280, "window width; also configurable via "+EnvWidth)
	height := flag.Int("height", 720, "window height; also configurable via "+EnvHeight)
	legacy := flag.Bool("legacy", false, "use the OpenGL 2.1 renderer; also configurable via "+EnvLegacy)
	vsync := flag.Bool("vsync", true, "wait for vertical sync")
	image := flag.String("image", "", "sprite image to draw instead of the checkerboard; also configurable via "+EnvImage)
	debug := flag.Bool("debug", false, "log at debug level to stderr; also configurable via "+EnvDebug)
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var err error
	if !set["width"] {
		*width, err = envInt(EnvWidth, *width)
	}
	if err == nil && !set["height"] {
		*height, err = envInt(EnvHeight, *height)
	}
	if err == nil && !set["legacy"] {
		*legacy, err = envBool(EnvLegacy, *legacy)
	}
	if err == nil && !set["debug"] {
		*debug, err = envBool(EnvDebug, *debug)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if *image == "" {
		*image = os.Getenv(EnvImage)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	flags := hoglib.WindowGLModern
	if *legacy {
		flags = hoglib.WindowGLLegacy
	}
	cfg := core.Config{
		Title:      "hoglib sandbox",
		Width:      *width,
		Height:     *height,
		Flags:      flags | core.WindowCenter,
		VSync:      *vsync,
		ClearColor: colors.DarkGray,
	}
	if err := hoglib.Run(&App{image: *image}, cfg); err != nil {
		core.Logger().Error("sandbox", "err", err)
		os.Exit(1)
	}
}

func envInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got %q): %w", key, raw, err)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean (got %q): %w", key, raw, err)
	}
	return v, nil
}
