package core

type Vec2 struct{ X, Y float32 }

func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct{ X, Y, W, H float32 }

func R(x, y, w, h float32) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center returns the midpoint of r.
func (r Rect) Center() (float32, float32) { return r.X + r.W*0.5, r.Y + r.H*0.5 }
