package text

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/gfx/renderer2d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Atlas rune range.
const (
	firstRune = rune(32)
	lastRune  = rune(255)
)

const (
	atlasPadding = 2
	minAtlasSize = 256
	maxAtlasSize = 4096
)

var ErrAtlasTooLarge = errors.New("text: font atlas exceeds 4096x4096")

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Font is a glyph atlas rasterised at SizePx and drawn scaled to any size.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32 // Descent is negative
	Glyphs                   map[rune]Glyph
	Kerning                  map[[2]rune]float32
	Texture                  core.Texture
	AtlasW, AtlasH           int
	face                     font.Face
}

// LineHeight is the baseline-to-baseline distance at SizePx.
func (f *Font) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }

// Kern returns the kerning adjustment between a and b at SizePx.
func (f *Font) Kern(a, b rune) float32 { return f.Kerning[[2]rune{a, b}] }

// Release deletes the atlas texture through rd and closes the face.
func (f *Font) Release(rd *renderer2d.Renderer2D) {
	if f == nil {
		return
	}
	if f.Texture != nil && rd != nil {
		rd.ReleaseTexture(f.Texture)
		f.Texture = nil
	}
	if f.face != nil {
		_ = f.face.Close()
		f.face = nil
	}
}

// LoadFont reads a TTF/OTF file and builds its atlas at maxHeight pixels.
func LoadFont(r core.Renderer, path string, maxHeight float32) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return LoadFontBytes(r, data, maxHeight)
}

// LoadFontBytes parses font data with opentype, falling back to the
// freetype parser for fonts opentype rejects.
func LoadFontBytes(r core.Renderer, data []byte, maxHeight float32) (*Font, error) {
	if maxHeight <= 0 {
		return nil, fmt.Errorf("font size %v must be positive", maxHeight)
	}
	face, err := newFace(data, maxHeight)
	if err != nil {
		return nil, err
	}
	f, img, err := buildAtlas(face, maxHeight)
	if err != nil {
		_ = face.Close()
		return nil, err
	}

	tex, err := r.CreateTexture(core.TextureDesc{
		Width:         f.AtlasW,
		Height:        f.AtlasH,
		DataFormat:    core.FormatGrayscaleAlpha,
		TextureFormat: core.FormatGrayscaleAlpha,
		Pixels:        grayAlpha(img),
		MinFilter:     core.FilterLinear,
		MagFilter:     core.FilterLinear,
	})
	if err != nil {
		_ = face.Close()
		return nil, fmt.Errorf("upload font atlas: %w", err)
	}
	f.Texture = tex
	core.Logger().Info("font loaded", "size", maxHeight, "glyphs", len(f.Glyphs), "atlas", f.AtlasW)
	return f, nil
}

func newFace(data []byte, sizePx float32) (font.Face, error) {
	ot, err := opentype.Parse(data)
	if err == nil {
		face, ferr := opentype.NewFace(ot, &opentype.FaceOptions{
			Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
		})
		if ferr != nil {
			return nil, fmt.Errorf("new face: %w", ferr)
		}
		return face, nil
	}
	tt, terr := truetype.Parse(data)
	if terr != nil {
		return nil, fmt.Errorf("parse font: %w", errors.Join(err, terr))
	}
	core.Logger().Warn("opentype rejected font, using truetype parser", "err", err)
	return truetype.NewFace(tt, &truetype.Options{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	}), nil
}

type glyphMeasure struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32
}

// buildAtlas rasterises the rune range into an alpha coverage image using a
// shelf packer, growing the square atlas until everything fits.
func buildAtlas(face font.Face, sizePx float32) (*Font, *image.Alpha, error) {
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	measure := make([]glyphMeasure, 0, lastRune-firstRune+1)
	for r := firstRune; r <= lastRune; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		x0, y0 := br.Min.X.Floor(), br.Min.Y.Floor()
		measure = append(measure, glyphMeasure{
			r:   r,
			w:   br.Max.X.Ceil() - x0,
			h:   br.Max.Y.Ceil() - y0,
			adv: float32(adv.Round()),
			bx:  float32(x0),
			by:  float32(-y0), // distance from baseline to top
		})
	}

	size := minAtlasSize
	var pos map[rune]image.Point
	for {
		var fits bool
		pos, fits = pack(measure, size)
		if fits {
			break
		}
		size *= 2
		if size > maxAtlasSize {
			return nil, nil, ErrAtlasTooLarge
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.Opaque, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		out := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			// the drawer's dot sits on the baseline
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			out.U0 = float32(p.X) / float32(size)
			out.V0 = float32(p.Y) / float32(size)
			out.U1 = float32(p.X+g.w) / float32(size)
			out.V1 = float32(p.Y+g.h) / float32(size)
		}
		glyphs[g.r] = out
	}

	kerning := make(map[[2]rune]float32)
	for _, a := range measure {
		for _, b := range measure {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				kerning[[2]rune{a.r, b.r}] = float32(dx) / 64
			}
		}
	}

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:  glyphs,
		Kerning: kerning,
		AtlasW:  size, AtlasH: size,
		face: face,
	}, dst, nil
}

// pack places every non-empty glyph on shelves inside a size x size square.
func pack(measure []glyphMeasure, size int) (map[rune]image.Point, bool) {
	pos := make(map[rune]image.Point, len(measure))
	x, y, rowH := atlasPadding, atlasPadding, 0
	for _, g := range measure {
		if g.w == 0 || g.h == 0 {
			continue
		}
		if g.w+atlasPadding*2 > size || g.h+atlasPadding*2 > size {
			return nil, false
		}
		if x+g.w+atlasPadding > size {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		if y+g.h+atlasPadding > size {
			return nil, false
		}
		pos[g.r] = image.Pt(x, y)
		x += g.w + atlasPadding
		rowH = max(rowH, g.h)
	}
	return pos, true
}

// grayAlpha expands coverage into white luminance plus alpha.
func grayAlpha(a *image.Alpha) []byte {
	w, h := a.Rect.Dx(), a.Rect.Dy()
	out := make([]byte, 0, w*h*2)
	for y := 0; y < h; y++ {
		row := a.Pix[y*a.Stride : y*a.Stride+w]
		for _, v := range row {
			out = append(out, 255, v)
		}
	}
	return out
}
