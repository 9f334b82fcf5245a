package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/hoglib/engine/core"
)

func hintMap(hs []hintValue) map[glfw.Hint]int {
	m := make(map[glfw.Hint]int, len(hs))
	for _, h := range hs {
		m[h.hint] = h.value
	}
	return m
}

func TestWindowHints(t *testing.T) {
	m := hintMap(windowHints(0))
	if m[glfw.Decorated] != glfw.True || m[glfw.Resizable] != glfw.True || m[glfw.Visible] != glfw.True {
		t.Fatalf("default window should be decorated, resizable and visible: %v", m)
	}

	m = hintMap(windowHints(core.WindowNoBorder | core.WindowNoResize | core.WindowHide | core.WindowFloating))
	checks := map[glfw.Hint]int{
		glfw.Decorated: glfw.False,
		glfw.Resizable: glfw.False,
		glfw.Visible:   glfw.False,
		glfw.Floating:  glfw.True,
		glfw.Maximized: glfw.False,
	}
	for h, want := range checks {
		if m[h] != want {
			t.Errorf("hint %#x = %d, want %d", h, m[h], want)
		}
	}
}

func TestContextHintsNoContext(t *testing.T) {
	hs := contextHints(core.WindowCenter, core.DefaultGLHints())
	if len(hs) != 1 || hs[0].hint != glfw.ClientAPI || hs[0].value != glfw.NoAPI {
		t.Fatalf("expected only NoAPI, got %v", hs)
	}
}

func TestContextHintsModern(t *testing.T) {
	m := hintMap(contextHints(core.WindowGLModern, core.DefaultGLHints()))
	if m[glfw.ContextVersionMajor] != 3 || m[glfw.ContextVersionMinor] != 3 {
		t.Fatalf("modern context version = %d.%d", m[glfw.ContextVersionMajor], m[glfw.ContextVersionMinor])
	}
	if m[glfw.OpenGLProfile] != glfw.OpenGLCoreProfile {
		t.Errorf("modern context should request the core profile")
	}
	if m[glfw.OpenGLForwardCompatible] != glfw.True {
		t.Errorf("core profile should be forward compatible")
	}
	if m[glfw.DepthBits] != 24 || m[glfw.DoubleBuffer] != glfw.True {
		t.Errorf("default buffer hints not applied: %v", m)
	}
}

func TestContextHintsPlainContext(t *testing.T) {
	tests := []struct {
		name         string
		h            core.GLHints
		major, minor int
		coreProfile  bool
	}{
		{"defaults", core.DefaultGLHints(), 1, 0, false},
		{"graphics", core.DefaultGLHints().ForRenderer(core.RendererOpenGLModern), 3, 3, true},
	}
	for _, tt := range tests {
		m := hintMap(contextHints(core.WindowOpenGL, tt.h))
		if m[glfw.ContextVersionMajor] != tt.major || m[glfw.ContextVersionMinor] != tt.minor {
			t.Errorf("%s: version = %d.%d", tt.name, m[glfw.ContextVersionMajor], m[glfw.ContextVersionMinor])
		}
		if got := m[glfw.OpenGLProfile] == glfw.OpenGLCoreProfile; got != tt.coreProfile {
			t.Errorf("%s: core profile = %v", tt.name, got)
		}
	}
}

func TestContextHintsLegacyWins(t *testing.T) {
	m := hintMap(contextHints(core.WindowGLModern|core.WindowGLLegacy, core.DefaultGLHints()))
	if m[glfw.ContextVersionMajor] != 2 || m[glfw.ContextVersionMinor] != 1 {
		t.Fatalf("legacy context version = %d.%d", m[glfw.ContextVersionMajor], m[glfw.ContextVersionMinor])
	}
	if _, ok := m[glfw.OpenGLProfile]; ok {
		t.Errorf("2.1 contexts must not set a profile")
	}
}

func TestContextHintsOptions(t *testing.T) {
	h := core.DefaultGLHints()
	h.Samples = 4
	h.Robustness = true
	h.ReleaseBehavior = core.GLReleaseFlush
	h.Profile = core.GLES
	h.Major, h.Minor = 3, 0
	m := hintMap(contextHints(core.WindowOpenGL|core.WindowEGL, h))
	if m[glfw.Samples] != 4 {
		t.Errorf("samples = %d", m[glfw.Samples])
	}
	if m[glfw.ClientAPI] != glfw.OpenGLESAPI {
		t.Errorf("client api = %#x, want ES", m[glfw.ClientAPI])
	}
	if m[glfw.ContextRobustness] != glfw.LoseContextOnReset {
		t.Errorf("robustness not requested")
	}
	if m[glfw.ContextReleaseBehavior] != glfw.ReleaseBehaviorFlush {
		t.Errorf("release behavior not flush")
	}
	if m[glfw.ContextCreationAPI] != glfw.EGLContextAPI {
		t.Errorf("EGL creation api not requested")
	}
}
