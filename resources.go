package hoglib

import (
	"fmt"
	"unicode/utf8"

	"github.com/hubastard/hoglib/engine/assets"
	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/text"
)

// Texture is an uploaded image owned by one renderer.
type Texture struct {
	tex   core.Texture
	owner *Renderer
}

func (t *Texture) Size() (int, int) {
	if t == nil || t.tex == nil {
		return 0, 0
	}
	return t.tex.Size()
}

// Font is a glyph atlas owned by one renderer.
type Font struct {
	f     *text.Font
	owner *Renderer
}

// LineHeight returns the line advance when drawn at size.
func (f *Font) LineHeight(size float32) float32 {
	_, h := text.MeasureText(f.f, "", size)
	return h
}

// Measure returns the extent of s drawn at size.
func (f *Font) Measure(s string, size float32) (w, h float32) {
	return text.MeasureText(f.f, s, size)
}

func noRenderer(op string) error {
	return fmt.Errorf("%s: %w", op, core.ErrNoRenderer)
}

func (w *Window) LoadTextureFromBlob(blob *TextureBlob) (*Texture, error) {
	r := w.rend("LoadTextureFromBlob")
	if r == nil {
		return nil, noRenderer("load texture")
	}
	if err := blob.Validate(); err != nil {
		return nil, err
	}
	tex, err := r.backend.CreateTexture(blob.Desc())
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	return &Texture{tex: tex, owner: r}, nil
}

// LoadTextureFromImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file.
func (w *Window) LoadTextureFromImage(path string) (*Texture, error) {
	if w.rend("LoadTextureFromImage") == nil {
		return nil, noRenderer("load texture")
	}
	blob, err := assets.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return w.LoadTextureFromBlob(blob)
}

// ReleaseTexture frees t. A bound texture is unbound first.
func (w *Window) ReleaseTexture(t *Texture) {
	r := w.rend("ReleaseTexture")
	if r == nil || t == nil || t.tex == nil {
		return
	}
	if t.owner != r {
		core.Logger().Warn("texture released through a foreign renderer")
		return
	}
	r.r2d.ReleaseTexture(t.tex)
	t.tex = nil
}

// SetTexture textures subsequent rects with t; nil draws flat colour.
func (w *Window) SetTexture(t *Texture) {
	if r := w.rend("SetTexture"); r != nil {
		r.r2d.SetTexture(r.texture(t))
	}
}

// SetTextureSource textures subsequent rects with the src pixel rect of t.
// A zero rect uses the whole texture.
func (w *Window) SetTextureSource(t *Texture, src Rect) {
	if r := w.rend("SetTextureSource"); r != nil {
		r.r2d.SetTextureSource(r.texture(t), src)
	}
}

func (r *Renderer) texture(t *Texture) core.Texture {
	if t == nil {
		return nil
	}
	if t.tex == nil {
		core.Logger().Warn("released texture bound, drawing untextured")
		return nil
	}
	return t.tex
}

// LoadFont rasterises the TTF/OTF at path at maxHeight pixels; larger
// sizes are drawn scaled.
func (w *Window) LoadFont(path string, maxHeight int) (*Font, error) {
	r := w.rend("LoadFont")
	if r == nil {
		return nil, noRenderer("load font")
	}
	f, err := text.LoadFont(r.backend, path, float32(maxHeight))
	if err != nil {
		return nil, err
	}
	return &Font{f: f, owner: r}, nil
}

// LoadFontBytes is LoadFont for in-memory font data.
func (w *Window) LoadFontBytes(data []byte, maxHeight int) (*Font, error) {
	r := w.rend("LoadFontBytes")
	if r == nil {
		return nil, noRenderer("load font")
	}
	f, err := text.LoadFontBytes(r.backend, data, float32(maxHeight))
	if err != nil {
		return nil, err
	}
	return &Font{f: f, owner: r}, nil
}

func (w *Window) ReleaseFont(f *Font) {
	r := w.rend("ReleaseFont")
	if r == nil || f == nil || f.f == nil {
		return
	}
	if r.font == f {
		r.font = nil
	}
	f.f.Release(r.r2d)
	f.f = nil
}

func (w *Window) SetFont(f *Font) {
	if r := w.rend("SetFont"); r != nil {
		r.font = f
	}
}

// DrawText draws s with its top-left at (x,y), size pixels tall, in the
// current colour.
func (w *Window) DrawText(s string, x, y, size float32) {
	r := w.rend("DrawText")
	if r == nil {
		return
	}
	if r.font == nil || r.font.f == nil {
		core.Logger().Warn("DrawText without a font")
		return
	}
	r.begin()
	text.DrawText(r.r2d, r.font.f, x, y, s, size, r.r2d.Color())
}

// DrawTextLen draws the first n bytes of s. n is clamped to the string and
// cut back to a rune boundary.
func (w *Window) DrawTextLen(s string, n int, x, y, size float32) {
	n = min(max(n, 0), len(s))
	for n > 0 && n < len(s) && !utf8.RuneStart(s[n]) {
		n--
	}
	w.DrawText(s[:n], x, y, size)
}
