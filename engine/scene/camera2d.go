package scene

import "math"

// OrthoCamera2D provides an orthographic camera with position, rotation, zoom.
// Y grows downward; the camera position is the world point at the viewport
// centre.
type OrthoCamera2D struct {
	Left, Right, Bottom, Top float32
	Near, Far                float32
	X, Y                     float32
	RotationRad              float32
	Zoom                     float32 // 1 = no zoom
	vp                       [16]float32
	dirty                    bool
}

// NewOrtho2D returns a camera over a width x height pixel viewport with
// world (0,0) at the top-left corner.
func NewOrtho2D(width, height int) *OrthoCamera2D {
	c := &OrthoCamera2D{Near: -1, Far: 1, Zoom: 1}
	c.SetViewportPixels(width, height)
	c.SetPosition(float32(width)*0.5, float32(height)*0.5)
	c.Recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	halfW := float32(w) * 0.5
	halfH := float32(h) * 0.5
	c.Left, c.Right = -halfW, halfW
	// top is the smaller y in a y-down space
	c.Top, c.Bottom = -halfH, halfH
	c.dirty = true
}

// Fit resizes the viewport and recentres so (0,0) stays the top-left pixel.
func (c *OrthoCamera2D) Fit(w, h int) {
	c.SetViewportPixels(w, h)
	c.SetPosition(float32(w)*0.5, float32(h)*0.5)
}

func (c *OrthoCamera2D) Width() float32  { return c.Right - c.Left }
func (c *OrthoCamera2D) Height() float32 { return c.Bottom - c.Top }

func (c *OrthoCamera2D) SetPosition(x, y float32) { c.X, c.Y = x, y; c.dirty = true }
func (c *OrthoCamera2D) Move(dx, dy float32)      { c.X += dx; c.Y += dy; c.dirty = true }
func (c *OrthoCamera2D) Rotate(dRad float32)      { c.RotationRad += dRad; c.dirty = true }
func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

func (c *OrthoCamera2D) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

// ScreenToWorld maps a pixel in the viewport to world coordinates.
func (c *OrthoCamera2D) ScreenToWorld(sx, sy float32) (float32, float32) {
	// pixel relative to the viewport centre, undo zoom then rotation
	dx := (sx - c.Width()*0.5) / c.Zoom
	dy := (sy - c.Height()*0.5) / c.Zoom
	cs := float32(math.Cos(float64(c.RotationRad)))
	sn := float32(math.Sin(float64(c.RotationRad)))
	return dx*cs - dy*sn + c.X, dx*sn + dy*cs + c.Y
}

func (c *OrthoCamera2D) Recalculate() {
	// Ortho scaled by Zoom
	z := c.Zoom
	proj := ortho(c.Left/z, c.Right/z, c.Bottom/z, c.Top/z, c.Near, c.Far)

	// view = R(-rot) · T(-pos) for column vectors
	view := mul(
		rotateZ(-c.RotationRad),
		translate(-c.X, -c.Y, 0),
	)

	c.vp = mul(proj, view)
	c.dirty = false
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func rotateZ(a float32) [16]float32 {
	c := float32(math.Cos(float64(a)))
	s := float32(math.Sin(float64(a)))
	return [16]float32{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// mul returns a·b.
func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i+4*j] = a[i+0]*b[0+4*j] + a[i+4]*b[1+4*j] + a[i+8]*b[2+4*j] + a[i+12]*b[3+4*j]
		}
	}
	return out
}
