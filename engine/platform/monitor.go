package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/hoglib/engine/core"
)

const mmPerInch = 25.4

func monitorInfo(m *glfw.Monitor) core.Monitor {
	if m == nil {
		return core.Monitor{}
	}
	x, y := m.GetPos()
	sx, sy := m.GetContentScale()
	pw, ph := m.GetPhysicalSize()
	info := core.Monitor{
		X: x, Y: y,
		Name:       m.GetName(),
		ScaleX:     sx,
		ScaleY:     sy,
		PixelRatio: sx,
		PhysW:      float32(pw) / mmPerInch,
		PhysH:      float32(ph) / mmPerInch,
	}
	if vm := m.GetVideoMode(); vm != nil {
		info.Mode = modeInfo(vm)
	}
	return info
}

func modeInfo(vm *glfw.VidMode) core.MonitorMode {
	return core.MonitorMode{
		W: vm.Width, H: vm.Height,
		RefreshRate: vm.RefreshRate,
		Red:         vm.RedBits,
		Green:       vm.GreenBits,
		Blue:        vm.BlueBits,
	}
}

// Monitors lists the connected monitors, primary first.
func Monitors() []core.Monitor {
	ms := glfw.GetMonitors()
	out := make([]core.Monitor, 0, len(ms))
	for _, m := range ms {
		out = append(out, monitorInfo(m))
	}
	return out
}

func PrimaryMonitor() core.Monitor { return monitorInfo(glfw.GetPrimaryMonitor()) }

// findMonitor resolves a core.Monitor back to its GLFW handle.
func findMonitor(mon core.Monitor) *glfw.Monitor {
	for _, m := range glfw.GetMonitors() {
		x, y := m.GetPos()
		if m.GetName() == mon.Name && x == mon.X && y == mon.Y {
			return m
		}
	}
	return nil
}

// currentMonitor returns the fullscreen monitor, else the monitor holding
// the window's center, else the primary one.
func (g *GLFWWindow) currentMonitor() *glfw.Monitor {
	if m := g.w.GetMonitor(); m != nil {
		return m
	}
	wx, wy := g.w.GetPos()
	ww, wh := g.w.GetSize()
	cx, cy := wx+ww/2, wy+wh/2
	for _, m := range glfw.GetMonitors() {
		mx, my, mw, mh := m.GetWorkarea()
		if cx >= mx && cx < mx+mw && cy >= my && cy < my+mh {
			return m
		}
	}
	return glfw.GetPrimaryMonitor()
}

func (g *GLFWWindow) Monitor() core.Monitor { return monitorInfo(g.currentMonitor()) }

// MoveToMonitor places the window at the top-left of mon's work area.
func (g *GLFWWindow) MoveToMonitor(mon core.Monitor) bool {
	m := findMonitor(mon)
	if m == nil {
		return false
	}
	x, y, _, _ := m.GetWorkarea()
	g.w.SetPos(x, y)
	return true
}

// ScaleToMonitor resizes the window to cover its monitor's work area.
func (g *GLFWWindow) ScaleToMonitor() {
	m := g.currentMonitor()
	if m == nil {
		return
	}
	x, y, w, h := m.GetWorkarea()
	g.w.SetPos(x, y)
	g.w.SetSize(w, h)
}

// RequestMonitorMode switches mon to the first video mode matching mode on
// the requested fields by making the window fullscreen on it.
func (g *GLFWWindow) RequestMonitorMode(mon core.Monitor, mode core.MonitorMode, req core.ModeRequest) bool {
	m := findMonitor(mon)
	if m == nil {
		return false
	}
	for _, vm := range m.GetVideoModes() {
		if core.CompareModes(modeInfo(vm), mode, req) {
			if !g.IsFullscreen() {
				g.winX, g.winY = g.w.GetPos()
				g.winW, g.winH = g.w.GetSize()
			}
			g.w.SetMonitor(m, 0, 0, vm.Width, vm.Height, vm.RefreshRate)
			return true
		}
	}
	core.Logger().Warn("no matching monitor mode", "monitor", mon.Name, "w", mode.W, "h", mode.H)
	return false
}
