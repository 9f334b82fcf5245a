package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/hoglib"
	"github.com/hubastard/hoglib/engine/core"
)

// LayerDebug reports frame timing and batch statistics once a second in
// the window title and the debug log. F1 logs the GPU strings.
type LayerDebug struct {
	frames int
	ticks  int
	since  time.Time
}

func (l *LayerDebug) OnAttach(e *hoglib.Engine) {
	l.since = time.Now()
	l.logGPU(e)
}

func (l *LayerDebug) OnDetach(e *hoglib.Engine) {}

func (l *LayerDebug) OnUpdate(e *hoglib.Engine, dt float64) { l.ticks++ }

func (l *LayerDebug) OnRender(e *hoglib.Engine, alpha float64) {
	l.frames++
	elapsed := time.Since(l.since)
	if elapsed < time.Second {
		return
	}

	fps := float64(l.frames) / elapsed.Seconds()
	r := e.Window.Renderer()
	st := r.Stats()
	e.Window.SetTitle(fmt.Sprintf("hoglib sandbox | %.1f FPS | %d draws | %d quads", fps, st.DrawCalls, st.QuadCount))

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	core.Logger().Debug("frame stats",
		"fps", fps,
		"ms", 1000/fps,
		"ticks", l.ticks,
		"draws", st.DrawCalls,
		"quads", st.QuadCount,
		"vertices", st.TotalVertexCount(),
		"textures", st.TextureCount,
		"heap_mb", float32(mem.HeapAlloc)/(1<<20),
		"goroutines", runtime.NumGoroutine(),
		"uptime", e.Uptime().Round(time.Second))

	l.frames, l.ticks = 0, 0
	l.since = time.Now()
}

func (l *LayerDebug) OnEvent(e *hoglib.Engine, ev hoglib.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && !k.Repeat && k.Key == core.KeyF1 {
		l.logGPU(e)
		return true
	}
	return false
}

func (l *LayerDebug) logGPU(e *hoglib.Engine) {
	vendor, renderer, version := e.Window.Renderer().GPU()
	core.Logger().Info("gpu",
		"type", e.Window.Renderer().Type(),
		"vendor", vendor,
		"renderer", renderer,
		"version", version,
		"cpus", runtime.NumCPU())
}
