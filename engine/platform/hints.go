package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/hoglib/engine/core"
)

type hintValue struct {
	hint  glfw.Hint
	value int
}

// flagHint maps one window flag onto a creation hint.
type flagHint struct {
	flag    core.WindowFlags
	hint    glfw.Hint
	on, off int
}

var flagHints = []flagHint{
	{core.WindowNoBorder, glfw.Decorated, glfw.False, glfw.True},
	{core.WindowNoResize, glfw.Resizable, glfw.False, glfw.True},
	{core.WindowTransparent, glfw.TransparentFramebuffer, glfw.True, glfw.False},
	{core.WindowScaleToMonitor, glfw.ScaleToMonitor, glfw.True, glfw.False},
	{core.WindowHide, glfw.Visible, glfw.False, glfw.True},
	{core.WindowMaximize, glfw.Maximized, glfw.True, glfw.False},
	{core.WindowCenterCursor, glfw.CenterCursor, glfw.True, glfw.False},
	{core.WindowFloating, glfw.Floating, glfw.True, glfw.False},
	{core.WindowFocusOnShow, glfw.FocusOnShow, glfw.True, glfw.False},
	{core.WindowFocus, glfw.Focused, glfw.True, glfw.False},
}

// windowHints translates flags into GLFW creation hints. Flags that have
// no hint (fullscreen, minimize, hidden mouse, centering, DND) are applied
// after creation.
func windowHints(flags core.WindowFlags) []hintValue {
	out := make([]hintValue, 0, len(flagHints))
	for _, fh := range flagHints {
		v := fh.off
		if flags&fh.flag != 0 {
			v = fh.on
		}
		out = append(out, hintValue{fh.hint, v})
	}
	return out
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// contextHints translates GL hints. Without a context flag the window is
// created with no client API.
func contextHints(flags core.WindowFlags, h core.GLHints) []hintValue {
	if !flags.WantsContext() {
		return []hintValue{{glfw.ClientAPI, glfw.NoAPI}}
	}
	h = h.ForRenderer(core.RendererFromFlags(flags))

	out := []hintValue{
		{glfw.ContextVersionMajor, h.Major},
		{glfw.ContextVersionMinor, h.Minor},
		{glfw.RedBits, h.Red},
		{glfw.GreenBits, h.Green},
		{glfw.BlueBits, h.Blue},
		{glfw.AlphaBits, h.Alpha},
		{glfw.DepthBits, h.Depth},
		{glfw.StencilBits, h.Stencil},
		{glfw.AccumRedBits, h.AccumRed},
		{glfw.AccumGreenBits, h.AccumGreen},
		{glfw.AccumBlueBits, h.AccumBlue},
		{glfw.AccumAlphaBits, h.AccumAlpha},
		{glfw.AuxBuffers, h.AuxBuffers},
		{glfw.Samples, h.Samples},
		{glfw.Stereo, boolHint(h.Stereo)},
		{glfw.SRGBCapable, boolHint(h.SRGB)},
		{glfw.DoubleBuffer, boolHint(h.DoubleBuffer)},
		{glfw.OpenGLDebugContext, boolHint(h.Debug)},
		{glfw.ContextNoError, boolHint(h.NoError)},
	}

	switch h.Profile {
	case core.GLES:
		out = append(out, hintValue{glfw.ClientAPI, glfw.OpenGLESAPI})
	case core.GLCompatibility:
		out = append(out, hintValue{glfw.ClientAPI, glfw.OpenGLAPI})
		if h.Major > 3 || (h.Major == 3 && h.Minor >= 2) {
			out = append(out, hintValue{glfw.OpenGLProfile, glfw.OpenGLCompatProfile})
		}
	default:
		out = append(out, hintValue{glfw.ClientAPI, glfw.OpenGLAPI})
		if h.Major > 3 || (h.Major == 3 && h.Minor >= 2) {
			// macOS only hands out core contexts when forward compatible.
			out = append(out,
				hintValue{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
				hintValue{glfw.OpenGLForwardCompatible, glfw.True},
			)
		}
	}

	if h.Robustness {
		out = append(out, hintValue{glfw.ContextRobustness, glfw.LoseContextOnReset})
	}
	if h.ReleaseBehavior == core.GLReleaseFlush {
		out = append(out, hintValue{glfw.ContextReleaseBehavior, glfw.ReleaseBehaviorFlush})
	} else {
		out = append(out, hintValue{glfw.ContextReleaseBehavior, glfw.ReleaseBehaviorNone})
	}
	if flags&core.WindowEGL != 0 {
		out = append(out, hintValue{glfw.ContextCreationAPI, glfw.EGLContextAPI})
	}
	return out
}

func applyHints(hints []hintValue) {
	for _, h := range hints {
		glfw.WindowHint(h.hint, h.value)
	}
}
