package mediahog

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/hubastard/hoglib/engine/colors"
	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/platform"
)

// Format is the byte layout of 8-bit pixel data.
type Format uint8

const (
	FormatRGB8 Format = iota
	FormatBGR8
	FormatRGBA8
	FormatARGB8
	FormatBGRA8
	FormatABGR8
	FormatCount
)

// channelOrder gives the byte offset of R, G, B and A; -1 means no alpha.
var channelOrder = [FormatCount][4]int{
	FormatRGB8:  {0, 1, 2, -1},
	FormatBGR8:  {2, 1, 0, -1},
	FormatRGBA8: {0, 1, 2, 3},
	FormatARGB8: {1, 2, 3, 0},
	FormatBGRA8: {2, 1, 0, 3},
	FormatABGR8: {3, 2, 1, 0},
}

var formatNames = [FormatCount]string{"RGB8", "BGR8", "RGBA8", "ARGB8", "BGRA8", "ABGR8"}

func (f Format) String() string {
	if f < FormatCount {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Channels returns bytes per pixel, or 0 for an unknown format.
func (f Format) Channels() int {
	switch {
	case f >= FormatCount:
		return 0
	case channelOrder[f][3] < 0:
		return 3
	default:
		return 4
	}
}

var errShortBuffer = errors.New("mediahog: pixel buffer too small")

func checkBuffer(buf []byte, w, h int, f Format) error {
	ch := f.Channels()
	if ch == 0 {
		return fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, f)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: size %dx%d", core.ErrInvalidBlob, w, h)
	}
	if len(buf) < w*h*ch {
		return fmt.Errorf("%w: have %d bytes, want %d", errShortBuffer, len(buf), w*h*ch)
	}
	return nil
}

// CopyImageData converts w*h pixels from src to dst. Alpha missing from
// src becomes 255.
func CopyImageData(dst []byte, w, h int, dstFormat Format, src []byte, srcFormat Format) error {
	if err := checkBuffer(dst, w, h, dstFormat); err != nil {
		return err
	}
	if err := checkBuffer(src, w, h, srcFormat); err != nil {
		return err
	}
	if dstFormat == srcFormat {
		copy(dst, src[:w*h*srcFormat.Channels()])
		return nil
	}

	so, do := channelOrder[srcFormat], channelOrder[dstFormat]
	sc, dc := srcFormat.Channels(), dstFormat.Channels()
	for i, n := 0, w*h; i < n; i++ {
		s, d := src[i*sc:i*sc+sc], dst[i*dc:i*dc+dc]
		for c := 0; c < 3; c++ {
			d[do[c]] = s[so[c]]
		}
		if do[3] >= 0 {
			if so[3] >= 0 {
				d[do[3]] = s[so[3]]
			} else {
				d[do[3]] = 255
			}
		}
	}
	return nil
}

func toNRGBA(data []byte, w, h int, f Format) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if err := CopyImageData(img.Pix, w, h, FormatRGBA8, data, f); err != nil {
		return nil, err
	}
	return img, nil
}

// Surface is a CPU pixel buffer. It keeps a reference to the caller's data,
// so writes to it show up on the next blit.
type Surface struct {
	data   []byte
	w, h   int
	format Format
}

func NewSurface(data []byte, w, h int, f Format) (*Surface, error) {
	if err := checkBuffer(data, w, h, f); err != nil {
		return nil, err
	}
	return &Surface{data: data, w: w, h: h, format: f}, nil
}

func (s *Surface) Size() (int, int) { return s.w, s.h }
func (s *Surface) Format() Format   { return s.format }

// Image converts the surface's current contents to an image.
func (s *Surface) Image() *image.NRGBA {
	img, err := toNRGBA(s.data, s.w, s.h, s.format)
	if err != nil {
		sendError(ErrBuffer, err)
		return nil
	}
	return img
}

func (s *Surface) Free() { s.data = nil }

// BlitSurface draws s at the window's top-left corner and presents it.
// Needs the graphics subsystem.
func (w *Window) BlitSurface(s *Surface) {
	if w.r2d == nil {
		sendWarning(ErrBuffer, "blit needs the graphics subsystem")
		return
	}
	if s == nil || s.data == nil {
		return
	}
	rgba := make([]byte, s.w*s.h*4)
	if err := CopyImageData(rgba, s.w, s.h, FormatRGBA8, s.data, s.format); err != nil {
		sendError(ErrBuffer, err)
		return
	}

	w.makeCurrent()
	if w.blitTex != nil {
		w.r2d.ReleaseTexture(w.blitTex)
		w.blitTex = nil
	}
	tex, err := w.backend.CreateTexture(core.TextureDesc{
		Width:         s.w,
		Height:        s.h,
		DataFormat:    core.FormatRGBA,
		TextureFormat: core.FormatRGBA,
		Pixels:        rgba,
		MinFilter:     core.FilterNearest,
		MagFilter:     core.FilterNearest,
	})
	if err != nil {
		sendError(ErrBuffer, err)
		return
	}
	w.blitTex = tex

	sw, sh := float32(s.w), float32(s.h)
	w.r2d.BeginScene(w.cam.VP())
	w.r2d.DrawTexturedQuad(sw/2, sh/2, sw, sh, tex, colors.White, 0)
	w.r2d.EndScene()
	w.win.SwapBuffers()
}

// Mouse is a custom cursor image.
type Mouse struct {
	c *platform.Cursor
}

// LoadMouse creates a cursor from pixel data with the hotspot at the
// top-left.
func LoadMouse(data []byte, w, h int, f Format) (*Mouse, error) {
	if err := requireWindowing("load mouse"); err != nil {
		return nil, err
	}
	img, err := toNRGBA(data, w, h, f)
	if err != nil {
		return nil, err
	}
	c, err := platform.NewCursor(img)
	if err != nil {
		sendError(ErrWindowing, err)
		return nil, err
	}
	return &Mouse{c: c}, nil
}

func (m *Mouse) Free() {
	if m != nil {
		m.c.Destroy()
	}
}

var iconSizes = []int{48, 32, 16}

// iconSet returns img plus downscaled copies at the usual icon sizes, so
// the window system has a close match for taskbar and title bar.
func iconSet(img *image.NRGBA) []image.Image {
	out := []image.Image{img}
	b := img.Bounds()
	for _, n := range iconSizes {
		if b.Dx() <= n && b.Dy() <= n {
			continue
		}
		dst := image.NewNRGBA(image.Rect(0, 0, n, n))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = append(out, dst)
	}
	return out
}

// SetIcon sets the window icon from pixel data.
func (w *Window) SetIcon(data []byte, width, height int, f Format) bool {
	img, err := toNRGBA(data, width, height, f)
	if err != nil {
		sendError(ErrBuffer, err)
		return false
	}
	w.gw.SetIcon(iconSet(img)...)
	return true
}
