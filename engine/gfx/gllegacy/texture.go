package gllegacy

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hubastard/hoglib/engine/core"
)

type texture struct {
	id   uint32
	w, h int
}

func (t *texture) ID() uint32       { return t.id }
func (t *texture) Size() (int, int) { return t.w, t.h }

// uploadFormat returns internal format, client format and component type
// for desc. GL 2.1 has no swizzle, so grayscale uses luminance formats.
func uploadFormat(desc core.TextureDesc) (int32, uint32, uint32, error) {
	var format uint32
	switch desc.DataFormat {
	case core.FormatRGB:
		format = gl.RGB
	case core.FormatBGR:
		format = gl.BGR
	case core.FormatRGBA:
		format = gl.RGBA
	case core.FormatBGRA:
		format = gl.BGRA
	case core.FormatRed:
		format = gl.RED
	case core.FormatGrayscale:
		format = gl.LUMINANCE
	case core.FormatGrayscaleAlpha:
		format = gl.LUMINANCE_ALPHA
	default:
		return 0, 0, 0, fmt.Errorf("%w: data format %s", core.ErrUnsupportedFormat, desc.DataFormat)
	}

	tf := desc.TextureFormat
	if tf == core.FormatNone {
		tf = desc.DataFormat
	}
	var internal int32
	switch tf {
	case core.FormatRGB, core.FormatBGR, core.FormatRed:
		internal = gl.RGB8
	case core.FormatRGBA, core.FormatBGRA:
		internal = gl.RGBA8
	case core.FormatGrayscale:
		internal = gl.LUMINANCE8
	case core.FormatGrayscaleAlpha:
		internal = gl.LUMINANCE8_ALPHA8
	default:
		return 0, 0, 0, fmt.Errorf("%w: texture format %s", core.ErrUnsupportedFormat, tf)
	}

	xtype := uint32(gl.UNSIGNED_BYTE)
	if desc.DataType == core.TextureDataFloat {
		xtype = gl.FLOAT
	}
	return internal, format, xtype, nil
}

func glFilter(f core.TextureFilter) int32 {
	if f == core.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glWrap(w core.TextureWrap) int32 {
	if w == core.WrapRepeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func (r *Renderer) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", core.ErrInvalidBlob, desc.Width, desc.Height)
	}
	internal, format, xtype, err := uploadFormat(desc)
	if err != nil {
		return nil, err
	}
	want := desc.Width * desc.Height * desc.DataFormat.Channels() * desc.DataType.ComponentSize()
	if len(desc.Pixels) < want {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", core.ErrInvalidBlob, len(desc.Pixels), want)
	}

	t := &texture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(desc.WrapV))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(t.w), int32(t.h), 0, format, xtype, gl.Ptr(&desc.Pixels[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures[t] = struct{}{}
	return t, nil
}

func (r *Renderer) DeleteTexture(ct core.Texture) {
	t, ok := ct.(*texture)
	if !ok || t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
	delete(r.textures, t)
}
