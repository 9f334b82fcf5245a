package text

import (
	"github.com/hubastard/hoglib/engine/colors"
	"github.com/hubastard/hoglib/engine/gfx/renderer2d"
)

// DrawText draws s with its top-left corner at (x,y), scaled so the font's
// max height equals size. A size <= 0 draws at the atlas size. Positive Y
// goes downward (matching the 2D projection).
func DrawText(r2d *renderer2d.Renderer2D, font *Font, x, y float32, s string, size float32, color colors.Color) {
	scale := fontScale(font, size)
	penX := x
	baseY := y + font.Ascent*scale
	lineH := font.LineHeight() * scale
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				penX += sp.Advance * scale
			}
			prev = r
			continue
		}

		if prev >= 0 {
			penX += font.Kern(prev, r) * scale
		}

		if g.W > 0 && g.H > 0 {
			// Baseline-aligned quad centre (Y-down system)
			w, h := float32(g.W)*scale, float32(g.H)*scale
			left := penX + g.BearingX*scale
			top := baseY - g.BearingY*scale
			r2d.DrawTexturedQuadUV(
				left+w*0.5, top+h*0.5,
				w, h,
				font.Texture, color, 0,
				g.U0, g.V0, g.U1, g.V1,
			)
		}

		penX += g.Advance * scale
		prev = r
	}
}

func MeasureText(font *Font, s string, size float32) (width, height float32) {
	var lineW float32
	var prev rune = -1
	lineH := font.LineHeight()
	height = lineH

	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 {
			lineW += font.Kern(prev, r)
		}

		lineW += g.Advance
		prev = r
	}

	width = max(width, lineW)
	scale := fontScale(font, size)
	return width * scale, height * scale
}

func fontScale(font *Font, size float32) float32 {
	if size <= 0 || font.SizePx <= 0 {
		return 1
	}
	return size / font.SizePx
}

// Baseline-to-top distance (useful to position text by top-left).
func BaselineToTop(font *Font) float32    { return font.Ascent }
func BaselineToBottom(font *Font) float32 { return -font.Descent }
