package hoglib

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/scene"
)

// App receives the Run loop hooks.
type App interface {
	OnStart(e *Engine)                 // after the window and renderer exist
	OnUpdate(e *Engine, dt float64)    // at a fixed 60 Hz tick
	OnRender(e *Engine, alpha float64) // alpha interpolates between ticks
	OnEvent(e *Engine, ev Event)
	OnShutdown(e *Engine)
}

// Engine is what Run hands to the App and its layers.
type Engine struct {
	Window *Window
	Input  *core.Input
	Layers LayerStack
	start  time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Camera returns the window renderer's screen camera.
func (e *Engine) Camera() *scene.OrthoCamera2D { return e.Window.renderer.Camera() }

// Layer is one slice of an App. Events go top-down; updates and renders
// bottom-up.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true stops propagation
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}

const (
	tick    = time.Second / 60
	maxStep = 10 // cap on catch-up updates per frame
)

// Run opens a window from cfg and drives app until the window closes.
// Without a renderer flag the modern renderer is used.
func Run(app App, cfg core.Config) error {
	// GLFW and GL need the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if core.RendererFromFlags(cfg.Flags) == core.RendererNone {
		cfg.Flags |= core.WindowGLModern
	}
	win, err := openWindow(cfg)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer win.Close()
	if cfg.VSync {
		win.SwapInterval(1)
	} else {
		win.SwapInterval(0)
	}

	eng := &Engine{Window: win, Input: input, start: time.Now()}
	win.onEvent = func(ev Event) {
		handled := false
		eng.Layers.ForEachReverse(func(l Layer) bool {
			handled = l.OnEvent(eng, ev)
			return handled
		})
		if !handled {
			app.OnEvent(eng, ev)
		}
	}

	app.OnStart(eng)
	eng.Layers.ForEach(func(l Layer) { l.OnAttach(eng) })

	var (
		accum time.Duration
		prev  = time.Now()
	)
	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := tick.Seconds()
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			app.OnUpdate(eng, dt)
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		win.StartFrame()
		win.Clear(cfg.ClearColor)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)
		win.FinishFrame()
	}

	for l, ok := eng.Layers.Pop(); ok; l, ok = eng.Layers.Pop() {
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	core.Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}
