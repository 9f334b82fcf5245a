package renderer2d

import "github.com/hubastard/hoglib/engine/core"

// SubTexture2D describes a UV sub-rect of a full texture. V grows downward
// since textures are uploaded top row first.
type SubTexture2D struct {
	Texture core.Texture
	U0, V0  float32 // top-left
	U1, V1  float32 // bottom-right
}

// FromRect builds a subtexture from a pixel rect of tex. An empty rect
// covers the whole texture.
func FromRect(tex core.Texture, src core.Rect) SubTexture2D {
	w, h := tex.Size()
	if src.Empty() || w <= 0 || h <= 0 {
		return SubTexture2D{Texture: tex, U1: 1, V1: 1}
	}
	return FromPixels(tex, int(src.X), int(src.Y), int(src.W), int(src.H), w, h)
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
func FromPixels(tex core.Texture, x, y, w, h, atlasW, atlasH int) SubTexture2D {
	u0 := float32(x) / float32(atlasW)
	v0 := float32(y) / float32(atlasH)
	u1 := float32(x+w) / float32(atlasW)
	v1 := float32(y+h) / float32(atlasH)
	return SubTexture2D{Texture: tex, U0: u0, V0: v0, U1: u1, V1: v1}
}

// FromGrid builds a subtexture from tile grid coordinates (cx,cy) of cell size (cw,ch).
func FromGrid(tex core.Texture, cx, cy, cw, ch, atlasW, atlasH int) SubTexture2D {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch, atlasW, atlasH)
}
