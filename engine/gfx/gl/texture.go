package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/hoglib/engine/core"
)

type texture struct {
	id   uint32
	w, h int
}

func (t *texture) ID() uint32       { return t.id }
func (t *texture) Size() (int, int) { return t.w, t.h }

// texFormat is how one TextureDesc maps onto TexImage2D arguments.
type texFormat struct {
	internal int32
	format   uint32
	xtype    uint32
	swizzle  *[4]int32
}

var (
	swizzleGray      = [4]int32{gl.RED, gl.RED, gl.RED, gl.ONE}
	swizzleGrayAlpha = [4]int32{gl.RED, gl.RED, gl.RED, gl.GREEN}
)

// pixelFormat returns the client format of data in f.
func pixelFormat(f core.TextureFormat) (uint32, bool) {
	switch f {
	case core.FormatRGB:
		return gl.RGB, true
	case core.FormatBGR:
		return gl.BGR, true
	case core.FormatRGBA:
		return gl.RGBA, true
	case core.FormatBGRA:
		return gl.BGRA, true
	case core.FormatRed, core.FormatGrayscale:
		return gl.RED, true
	case core.FormatGrayscaleAlpha:
		return gl.RG, true
	}
	return 0, false
}

func textureFormat(desc core.TextureDesc) (texFormat, error) {
	format, ok := pixelFormat(desc.DataFormat)
	if !ok {
		return texFormat{}, fmt.Errorf("%w: data format %s", core.ErrUnsupportedFormat, desc.DataFormat)
	}
	tf := desc.TextureFormat
	if tf == core.FormatNone {
		tf = desc.DataFormat
	}
	float := desc.DataType == core.TextureDataFloat

	out := texFormat{format: format, xtype: gl.UNSIGNED_BYTE}
	if float {
		out.xtype = gl.FLOAT
	}
	switch tf {
	case core.FormatRGB, core.FormatBGR:
		out.internal = pick(float, gl.RGB32F, gl.RGB8)
	case core.FormatRGBA, core.FormatBGRA:
		out.internal = pick(float, gl.RGBA32F, gl.RGBA8)
	case core.FormatRed:
		out.internal = pick(float, gl.R32F, gl.R8)
	case core.FormatGrayscale:
		out.internal = pick(float, gl.R32F, gl.R8)
		out.swizzle = &swizzleGray
	case core.FormatGrayscaleAlpha:
		out.internal = pick(float, gl.RG32F, gl.RG8)
		out.swizzle = &swizzleGrayAlpha
	default:
		return texFormat{}, fmt.Errorf("%w: texture format %s", core.ErrUnsupportedFormat, tf)
	}
	return out, nil
}

func pick(float bool, f, i int32) int32 {
	if float {
		return f
	}
	return i
}

func filter(f core.TextureFilter) int32 {
	if f == core.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrap(w core.TextureWrap) int32 {
	if w == core.WrapRepeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", core.ErrInvalidBlob, desc.Width, desc.Height)
	}
	tf, err := textureFormat(desc)
	if err != nil {
		return nil, err
	}
	want := desc.Width * desc.Height * desc.DataFormat.Channels() * desc.DataType.ComponentSize()
	if len(desc.Pixels) < want {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", core.ErrInvalidBlob, len(desc.Pixels), want)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap(desc.WrapV))
	if tf.swizzle != nil {
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &tf.swizzle[0])
	}
	// rows are tightly packed
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, tf.internal,
		int32(desc.Width), int32(desc.Height), 0,
		tf.format, tf.xtype, gl.Ptr(&desc.Pixels[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t := &texture{id: id, w: desc.Width, h: desc.Height}
	r.textures[t] = struct{}{}
	return t, nil
}

func (r *RendererGL) DeleteTexture(t core.Texture) {
	tex, ok := t.(*texture)
	if !ok || tex.id == 0 {
		return
	}
	gl.DeleteTextures(1, &tex.id)
	tex.id = 0
	delete(r.textures, tex)
}
