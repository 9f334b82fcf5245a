package colors

import (
	"image/color"
	"testing"
)

var _ color.Color = Color{}

func TestNormalized(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want [4]float32
	}{
		{"white", White, [4]float32{1, 1, 1, 1}},
		{"black", Black, [4]float32{0, 0, 0, 1}},
		{"transparent red", RGBA(255, 0, 0, 0), [4]float32{1, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBIsOpaque(t *testing.T) {
	c := RGB(1, 2, 3)
	if c.A != 255 {
		t.Fatalf("RGB alpha = %d, want 255", c.A)
	}
	if got := c.WithAlpha(7); got.A != 7 || got.R != 1 {
		t.Fatalf("WithAlpha = %+v", got)
	}
}

func TestRGBAPremultiplies(t *testing.T) {
	r, _, _, a := RGBA(255, 0, 0, 0).RGBA()
	if r != 0 || a != 0 {
		t.Fatalf("fully transparent colour returned r=%d a=%d", r, a)
	}
	r, _, _, a = Red.RGBA()
	if r != 0xffff || a != 0xffff {
		t.Fatalf("opaque red returned r=%d a=%d", r, a)
	}
}
