package core

import "github.com/hubastard/hoglib/engine/colors"

// Config describes the window to create.
type Config struct {
	Title      string
	X, Y       int // ignored when Flags has WindowCenter
	Width      int
	Height     int
	Flags      WindowFlags
	VSync      bool
	ClearColor colors.Color
	GL         GLHints
}

type GLProfile uint8

const (
	GLCore GLProfile = iota
	GLCompatibility
	GLES
)

type GLReleaseBehavior uint8

const (
	GLReleaseFlush GLReleaseBehavior = iota
	GLReleaseNone
)

type GLRendererKind uint8

const (
	GLAccelerated GLRendererKind = iota
	GLSoftware
)

// GLHints are OpenGL context creation hints.
type GLHints struct {
	Stencil         int
	Samples         int
	Stereo          bool
	AuxBuffers      int
	DoubleBuffer    bool
	Red, Green      int
	Blue, Alpha     int
	Depth           int
	AccumRed        int
	AccumGreen      int
	AccumBlue       int
	AccumAlpha      int
	SRGB            bool
	Robustness      bool
	Debug           bool
	NoError         bool
	ReleaseBehavior GLReleaseBehavior
	Profile         GLProfile
	Major, Minor    int
	Renderer        GLRendererKind
}

// DefaultGLHints returns the hints used when a Config leaves GL zeroed.
func DefaultGLHints() GLHints {
	return GLHints{
		DoubleBuffer:    true,
		Red:             8,
		Green:           8,
		Blue:            8,
		Alpha:           8,
		Depth:           24,
		ReleaseBehavior: GLReleaseNone,
		Profile:         GLCore,
		Major:           1,
		Minor:           0,
	}
}

// ForRenderer adjusts the context version and profile to what the renderer
// type needs.
func (h GLHints) ForRenderer(t RendererType) GLHints {
	switch t {
	case RendererOpenGLModern:
		if h.Major < 3 || (h.Major == 3 && h.Minor < 3) {
			h.Major, h.Minor = 3, 3
		}
		h.Profile = GLCore
	case RendererOpenGLLegacy:
		h.Major, h.Minor = 2, 1
		h.Profile = GLCompatibility
	}
	return h
}

// MonitorMode is a video mode of a monitor.
type MonitorMode struct {
	W, H             int
	RefreshRate      int
	Red, Green, Blue int // bits per channel
}

// Monitor describes a connected display.
type Monitor struct {
	X, Y           int
	Name           string
	ScaleX, ScaleY float32
	PixelRatio     float32
	PhysW, PhysH   float32 // inches
	Mode           MonitorMode
}

// ModeRequest selects which parts of a MonitorMode matter.
type ModeRequest uint8

const (
	ModeScale   ModeRequest = 1 << 0
	ModeRefresh ModeRequest = 1 << 1
	ModeRGB     ModeRequest = 1 << 2
	ModeAll                 = ModeScale | ModeRefresh | ModeRGB
)

// CompareModes reports whether a and b match on the requested fields.
func CompareModes(a, b MonitorMode, req ModeRequest) bool {
	if req&ModeScale != 0 && (a.W != b.W || a.H != b.H) {
		return false
	}
	if req&ModeRefresh != 0 && a.RefreshRate != b.RefreshRate {
		return false
	}
	if req&ModeRGB != 0 && (a.Red != b.Red || a.Green != b.Green || a.Blue != b.Blue) {
		return false
	}
	return true
}
