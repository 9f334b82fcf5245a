// Command mediahog-events opens a window and logs every event it receives,
// through the event queue and the global callbacks.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/mediahog"
)

const (
	EnvWait  = "HOGLIB_WAIT_MS"
	EnvDebug = "HOGLIB_DEBUG"
)

func main() {
	wait := flag.Int("wait", mediahog.EventWaitNext, "milliseconds to wait for events, -1 blocks, 0 polls; also configurable via "+EnvWait)
	callbacks := flag.Bool("callbacks", false, "log through callbacks instead of the event queue")
	debug := flag.Bool("debug", false, "log at debug level; also configurable via "+EnvDebug)
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if raw := os.Getenv(EnvWait); raw != "" && !set["wait"] {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s must be an integer (got %q): %v\n", EnvWait, raw, err)
			os.Exit(2)
		}
		*wait = v
	}
	if raw := os.Getenv(EnvDebug); raw != "" && !set["debug"] {
		*debug, _ = strconv.ParseBool(raw)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	core.SetLogger(log)

	if err := run(log, *wait, *callbacks); err != nil {
		log.Error("mediahog-events", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, wait int, useCallbacks bool) error {
	if err := mediahog.Init(mediahog.SubsystemWindowing); err != nil {
		return err
	}
	defer mediahog.Free()

	mediahog.SetDebugCallback(func(t mediahog.DebugType, code mediahog.ErrorCode, msg string) {
		log.Debug("mediahog debug", "type", t, "code", code, "msg", msg)
	})

	win, err := mediahog.CreateWindow("mediahog events", 0, 0, 640, 480,
		mediahog.WindowCenter|mediahog.WindowAllowDND)
	if err != nil {
		return err
	}
	defer win.Free()

	for _, m := range mediahog.Monitors() {
		log.Info("monitor", "name", m.Name, "x", m.X, "y", m.Y,
			"w", m.Mode.W, "h", m.Mode.H, "hz", m.Mode.RefreshRate, "scale", m.ScaleX)
	}

	if useCallbacks {
		installCallbacks(log)
		for !win.ShouldClose() {
			mediahog.WaitForEvent(wait)
		}
		return nil
	}

	mediahog.SetQueueEvents(true)
	for !win.ShouldClose() {
		mediahog.WaitForEvent(wait)
		for ev, ok := win.CheckEvent(); ok; ev, ok = win.CheckEvent() {
			logEvent(log, ev)
		}
		if win.IsKeyPressed(core.KeyC) && win.IsKeyDown(core.KeyControlLeft) {
			log.Info("clipboard", "text", mediahog.ReadClipboard())
		}
	}
	return nil
}

func logEvent(log *slog.Logger, ev mediahog.Event) {
	switch v := ev.(type) {
	case core.EventKey:
		log.Info("key", "type", v.Type(), "key", v.Key, "sym", string(v.Sym), "mods", v.Mods, "repeat", v.Repeat)
	case core.EventMouseButton:
		log.Info("mouse button", "type", v.Type(), "button", v.Button)
	case core.EventScroll:
		log.Info("scroll", "x", v.X, "y", v.Y)
	case core.EventMouseMove:
		log.Debug("mouse", "x", v.X, "y", v.Y, "vx", v.VecX, "vy", v.VecY)
	case core.EventMove:
		log.Info("moved", "x", v.X, "y", v.Y)
	case core.EventResize:
		log.Info("resized", "w", v.W, "h", v.H)
	case core.EventWindowState:
		log.Info("state", "type", v.Type(), "x", v.X, "y", v.Y, "w", v.W, "h", v.H)
	case core.EventDrop:
		log.Info("drop", "files", v.Files)
	case core.EventScale:
		log.Info("scale", "x", v.X, "y", v.Y)
	default:
		log.Info("event", "type", ev.Type())
	}
}

func installCallbacks(log *slog.Logger) {
	mediahog.SetKeyCallback(func(w *mediahog.Window, key mediahog.Key, sym rune, mods mediahog.Mod, repeat, pressed bool) {
		log.Info("key callback", "key", key, "sym", string(sym), "mods", mods, "repeat", repeat, "pressed", pressed)
	})
	mediahog.SetMouseButtonCallback(func(w *mediahog.Window, b mediahog.MouseButton, pressed bool) {
		log.Info("mouse button callback", "button", b, "pressed", pressed)
	})
	mediahog.SetMouseScrollCallback(func(w *mediahog.Window, x, y float32) {
		log.Info("scroll callback", "x", x, "y", y)
	})
	mediahog.SetWindowResizedCallback(func(w *mediahog.Window, width, height int) {
		log.Info("resize callback", "w", width, "h", height)
	})
	mediahog.SetFocusCallback(func(w *mediahog.Window, inFocus bool) {
		log.Info("focus callback", "focused", inFocus)
	})
	mediahog.SetDataDropCallback(func(w *mediahog.Window, files []string) {
		log.Info("drop callback", "files", files)
	})
	mediahog.SetWindowQuitCallback(func(w *mediahog.Window) {
		log.Info("quit callback")
	})
}
