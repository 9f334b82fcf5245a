// Package mediahog is the second draft of the facade: RGFW-style window
// handles with an event queue, global callbacks and software surfaces, on
// top of the same GLFW platform layer and GL backend as package hoglib.
//
// Call everything from the main goroutine.
package mediahog

import (
	"fmt"

	"github.com/hubastard/hoglib/engine/core"
	glbackend "github.com/hubastard/hoglib/engine/gfx/gl"
	"github.com/hubastard/hoglib/engine/platform"
)

// Subsystems selects what Init brings up.
type Subsystems uint32

const (
	SubsystemWindowing Subsystems = 1 << 0 // windows, input, monitors, clipboard
	SubsystemGraphics  Subsystems = 1 << 1 // GL rendering for surfaces

	SubsystemVideo = SubsystemWindowing | SubsystemGraphics
)

type (
	Key         = core.Key
	MouseButton = core.MouseButton
	Mod         = core.Mod
	Event       = core.Event
	EventType   = core.EventType
	EventFlag   = core.EventFlag
	Cursor      = core.Cursor
	Monitor     = core.Monitor
	MonitorMode = core.MonitorMode
	ModeRequest = core.ModeRequest
)

const (
	MonitorScale   = core.ModeScale
	MonitorRefresh = core.ModeRefresh
	MonitorRGB     = core.ModeRGB
	MonitorAll     = core.ModeAll
)

// Swapped out by tests that run without a display.
var (
	platformInit       = platform.Init
	platformTerminate  = platform.Terminate
	pollPlatform       = platform.PollEvents
	waitPlatform       = platform.WaitEvents
	wakePlatform       = platform.PostEmptyEvent
	procAddress        = platform.GetProcAddress
	extensionSupported = platform.ExtensionSupported

	newPlatformWindow = func(cfg core.Config, onEvent func(core.Event)) (core.Window, *platform.GLFWWindow, error) {
		w, err := platform.NewGLFWWindow(cfg, onEvent)
		if err != nil {
			return nil, nil, err
		}
		return w, w, nil
	}
	newBackend = func(win core.Window) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(win)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
)

var (
	initialized Subsystems
	windows     []*Window
)

// Init brings up the requested subsystems. Subsystems already up are left
// alone.
func Init(s Subsystems) error {
	add := s &^ initialized
	if add&(SubsystemWindowing|SubsystemGraphics) == 0 {
		return nil
	}
	// Graphics needs windows to render into.
	if add&SubsystemGraphics != 0 && initialized&SubsystemWindowing == 0 {
		add |= SubsystemWindowing
	}
	if add&SubsystemWindowing != 0 {
		if err := platformInit(); err != nil {
			sendError(ErrWindowing, err)
			return fmt.Errorf("mediahog init: %w", err)
		}
	}
	initialized |= add
	sendInfo(InfoGlobal, fmt.Sprintf("initialized subsystems %#x", uint32(add)))
	return nil
}

// Initialized reports which subsystems are up.
func Initialized() Subsystems { return initialized }

// Free closes every open window and shuts all subsystems down. Free
// without Init does nothing.
func Free() error {
	if initialized == 0 {
		return nil
	}
	for len(windows) > 0 {
		windows[len(windows)-1].Free()
	}
	if initialized&SubsystemWindowing != 0 {
		platformTerminate()
	}
	initialized = 0
	queueEvents = false
	stopWait.Store(false)
	frameOpen = false
	currentWindow = nil
	globalInput = core.NewInput()
	sendInfo(InfoGlobal, "freed")
	return nil
}

func requireWindowing(op string) error {
	if initialized&SubsystemWindowing == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotInitialized)
	}
	return nil
}
