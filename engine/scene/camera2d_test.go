package scene

import (
	"math"
	"testing"

	"github.com/hubastard/hoglib/engine/core"
)

func apply(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestOrthoTopLeftOrigin(t *testing.T) {
	cam := NewOrtho2D(800, 600)
	vp := cam.VP()
	cases := []struct {
		x, y   float32
		nx, ny float32
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
		{800, 0, 1, 1},
	}
	for _, c := range cases {
		nx, ny := apply(vp, c.x, c.y)
		if !near(nx, c.nx) || !near(ny, c.ny) {
			t.Errorf("(%v,%v) -> (%v,%v), want (%v,%v)", c.x, c.y, nx, ny, c.nx, c.ny)
		}
	}
}

func TestFitKeepsTopLeft(t *testing.T) {
	cam := NewOrtho2D(100, 100)
	cam.Fit(1024, 512)
	if cam.Width() != 1024 || cam.Height() != 512 {
		t.Fatalf("size = %vx%v", cam.Width(), cam.Height())
	}
	nx, ny := apply(cam.VP(), 0, 0)
	if !near(nx, -1) || !near(ny, 1) {
		t.Fatalf("origin maps to (%v,%v)", nx, ny)
	}
}

func TestZoomClampAndScreenToWorld(t *testing.T) {
	cam := NewOrtho2D(200, 100)
	cam.SetZoom(0)
	if cam.Zoom != 0.05 {
		t.Fatalf("zoom = %v, want clamp to 0.05", cam.Zoom)
	}
	cam.SetZoom(2)
	x, y := cam.ScreenToWorld(0, 0)
	if !near(x, 50) || !near(y, 25) {
		t.Fatalf("screen origin at zoom 2 = (%v,%v), want (50,25)", x, y)
	}
	nx, ny := apply(cam.VP(), x, y)
	if !near(nx, -1) || !near(ny, 1) {
		t.Fatalf("round trip = (%v,%v)", nx, ny)
	}
}

func TestControllerScrollZoom(t *testing.T) {
	cam := NewOrtho2D(10, 10)
	cc := NewOrthoController2D(cam)
	if !cc.HandleEvent(core.EventScroll{Y: 1}) {
		t.Fatal("scroll should be consumed")
	}
	if !near(cam.Zoom, 1.2) {
		t.Fatalf("zoom = %v", cam.Zoom)
	}
	if cc.HandleEvent(core.EventResize{W: 1, H: 1}) {
		t.Fatal("resize should not be consumed")
	}
}

func TestControllerPan(t *testing.T) {
	cam := NewOrtho2D(10, 10)
	cc := NewOrthoController2D(cam)
	in := core.NewInput()
	in.Handle(core.EventKey{Key: core.KeyD, Down: true})
	cc.Update(in, 0.5)
	if !near(cam.X, 5+150) {
		t.Fatalf("x = %v, want 155", cam.X)
	}
}

func TestMulOrder(t *testing.T) {
	scale := [16]float32{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	m := mul(scale, translate(10, 0, 0))
	if m[12] != 20 {
		t.Fatalf("scale·translate x offset = %v, want 20", m[12])
	}
	m = mul(translate(10, 0, 0), scale)
	if m[12] != 10 || m[0] != 2 {
		t.Fatalf("translate·scale = %v", m)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	cam := NewOrtho2D(640, 480)
	cam.Move(35, -20)
	cam.Rotate(0.3)
	cam.SetZoom(1.5)
	vp := cam.VP()

	for _, p := range [][2]float32{{0, 0}, {640, 480}, {100, 400}, {320, 240}} {
		wx, wy := cam.ScreenToWorld(p[0], p[1])
		nx, ny := apply(vp, wx, wy)
		wantX := p[0]/640*2 - 1
		wantY := 1 - p[1]/480*2
		if math.Abs(float64(nx-wantX)) > 1e-4 || math.Abs(float64(ny-wantY)) > 1e-4 {
			t.Errorf("screen (%v,%v) -> clip (%v,%v), want (%v,%v)", p[0], p[1], nx, ny, wantX, wantY)
		}
	}
}
