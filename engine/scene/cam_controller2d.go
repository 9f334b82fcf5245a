package scene

import "github.com/hubastard/hoglib/engine/core"

// OrthoController2D: WASD/arrows pan, Q/E rotate, scroll zooms.
type OrthoController2D struct {
	MoveSpeed float32 // pixels per second at zoom 1
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // zoom factor per scroll notch
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed: 300,
		RotSpeed:  2.0,
		ZoomSpeed: 1.2,
		Camera:    cam,
	}
}

// Update applies held keys for dt seconds.
func (cc *OrthoController2D) Update(in *core.Input, dt float32) {
	speed := cc.MoveSpeed * dt / cc.Camera.Zoom
	rot := cc.RotSpeed * dt

	if in.IsKeyDown(core.KeyW) || in.IsKeyDown(core.KeyUp) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyS) || in.IsKeyDown(core.KeyDown) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyA) || in.IsKeyDown(core.KeyLeft) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) || in.IsKeyDown(core.KeyRight) {
		cc.Camera.Move(speed, 0)
	}
	if in.IsKeyDown(core.KeyQ) {
		cc.Camera.Rotate(rot)
	}
	if in.IsKeyDown(core.KeyE) {
		cc.Camera.Rotate(-rot)
	}
}

// HandleEvent zooms on scroll and reports whether ev was consumed.
func (cc *OrthoController2D) HandleEvent(ev core.Event) bool {
	s, ok := ev.(core.EventScroll)
	if !ok || s.Y == 0 {
		return false
	}
	if s.Y > 0 {
		cc.Camera.SetZoom(cc.Camera.Zoom * cc.ZoomSpeed)
	} else {
		cc.Camera.SetZoom(cc.Camera.Zoom / cc.ZoomSpeed)
	}
	return true
}
