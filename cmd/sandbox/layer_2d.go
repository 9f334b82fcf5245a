package main

import (
	"math"

	"github.com/hubastard/hoglib"
	"github.com/hubastard/hoglib/engine/colors"
	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/scene"
	"golang.org/x/image/font/gofont/goregular"
)

// Layer2D draws a small scene and pans it with WASD, Q/E and the wheel.
type Layer2D struct {
	imagePath string

	ctrl   *scene.OrthoController2D
	sprite *hoglib.Texture
	font   *hoglib.Font
	t      float32
}

func (l *Layer2D) OnAttach(e *hoglib.Engine) {
	l.ctrl = scene.NewOrthoController2D(e.Camera())

	var err error
	if l.imagePath != "" {
		l.sprite, err = e.Window.LoadTextureFromImage(l.imagePath)
		if err != nil {
			core.Logger().Warn("sprite image", "path", l.imagePath, "err", err)
		}
	}
	if l.sprite == nil {
		l.sprite, err = e.Window.LoadTextureFromBlob(checkerboard(8, 8))
		if err != nil {
			core.Logger().Error("checkerboard texture", "err", err)
		}
	}

	l.font, err = e.Window.LoadFontBytes(goregular.TTF, 32)
	if err != nil {
		core.Logger().Error("default font", "err", err)
	}
	e.Window.SetFont(l.font)
}

func (l *Layer2D) OnDetach(e *hoglib.Engine) {
	e.Window.ReleaseTexture(l.sprite)
	e.Window.ReleaseFont(l.font)
}

func (l *Layer2D) OnUpdate(e *hoglib.Engine, dt float64) {
	l.ctrl.Update(e.Input, float32(dt))
	l.t += float32(dt)
}

func (l *Layer2D) OnRender(e *hoglib.Engine, alpha float64) {
	w := e.Window

	w.SetTexture(nil)
	for i := 0; i < 8; i++ {
		x := float32(40 + i*70)
		y := 120 + 20*float32(math.Sin(float64(l.t*2+float32(i)*0.6)))
		w.SetColor(hoglib.RGB(uint8(60+i*24), 120, uint8(230-i*20)))
		w.DrawRect(core.R(x, y, 50, 50))
	}

	w.SetColor(colors.Gray)
	w.DrawLine(core.V2(20, 220), core.V2(620, 220))

	if l.sprite != nil {
		w.SetColor(colors.White)
		w.SetTexture(l.sprite)
		w.DrawRect(core.R(40, 260, 128, 128))
		sw, sh := l.sprite.Size()
		w.SetTextureSource(l.sprite, core.R(0, 0, float32(sw)/2, float32(sh)/2))
		w.DrawRect(core.R(200, 260, 128, 128))
		w.SetTexture(nil)
	}

	if l.font != nil {
		w.SetColor(colors.Yellow)
		w.DrawText("hoglib sandbox", 40, 40, 32)
		msg := "WASD pan, Q/E rotate, wheel zoom, R reset"
		w.SetColor(colors.White)
		w.DrawTextLen(msg, int(l.t*20), 40, 420, 20)
	}
}

func (l *Layer2D) OnEvent(e *hoglib.Engine, ev hoglib.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyR {
		cam := e.Camera()
		ww, wh := e.Window.Size()
		cam.RotationRad = 0
		cam.SetZoom(1)
		cam.Fit(ww, wh)
		l.t = 0
		return true
	}
	return l.ctrl.HandleEvent(ev)
}

// checkerboard builds a two-tone RGBA blob of n x n cells, each px wide.
func checkerboard(n, px int) *hoglib.TextureBlob {
	size := n * px
	data := make([]byte, 0, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := colors.Magenta
			if (x/px+y/px)%2 == 0 {
				c = colors.Cyan
			}
			data = append(data, c.R, c.G, c.B, c.A)
		}
	}
	return &hoglib.TextureBlob{
		Data:       data,
		Width:      size,
		Height:     size,
		DataType:   core.TextureDataInt,
		DataFormat: core.FormatRGBA,
		MinFilter:  core.FilterNearest,
		MagFilter:  core.FilterNearest,
	}
}
