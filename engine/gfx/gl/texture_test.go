package glbackend

import (
	"errors"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/hoglib/engine/core"
)

func TestTextureFormat(t *testing.T) {
	cases := []struct {
		name     string
		desc     core.TextureDesc
		internal int32
		format   uint32
		xtype    uint32
		swizzle  *[4]int32
	}{
		{"rgba", core.TextureDesc{DataFormat: core.FormatRGBA}, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, nil},
		{"bgr to rgb", core.TextureDesc{DataFormat: core.FormatBGR, TextureFormat: core.FormatRGB}, gl.RGB8, gl.BGR, gl.UNSIGNED_BYTE, nil},
		{"grayscale", core.TextureDesc{DataFormat: core.FormatGrayscale}, gl.R8, gl.RED, gl.UNSIGNED_BYTE, &swizzleGray},
		{"grayscale alpha", core.TextureDesc{DataFormat: core.FormatGrayscaleAlpha}, gl.RG8, gl.RG, gl.UNSIGNED_BYTE, &swizzleGrayAlpha},
		{"red", core.TextureDesc{DataFormat: core.FormatRed}, gl.R8, gl.RED, gl.UNSIGNED_BYTE, nil},
		{"float rgba", core.TextureDesc{DataFormat: core.FormatRGBA, DataType: core.TextureDataFloat}, gl.RGBA32F, gl.RGBA, gl.FLOAT, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := textureFormat(c.desc)
			if err != nil {
				t.Fatal(err)
			}
			if got.internal != c.internal || got.format != c.format || got.xtype != c.xtype {
				t.Fatalf("got %#x/%#x/%#x, want %#x/%#x/%#x",
					got.internal, got.format, got.xtype, c.internal, c.format, c.xtype)
			}
			if got.swizzle != c.swizzle {
				t.Fatalf("swizzle = %v, want %v", got.swizzle, c.swizzle)
			}
		})
	}
}

func TestTextureFormatRejectsNone(t *testing.T) {
	_, err := textureFormat(core.TextureDesc{DataFormat: core.FormatNone})
	if !errors.Is(err, core.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}
