package gllegacy

import (
	"errors"
	"testing"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hubastard/hoglib/engine/core"
)

func TestUploadFormat(t *testing.T) {
	cases := []struct {
		data, tex core.TextureFormat
		internal  int32
		format    uint32
	}{
		{core.FormatRGB, core.FormatNone, gl.RGB8, gl.RGB},
		{core.FormatBGRA, core.FormatRGBA, gl.RGBA8, gl.BGRA},
		{core.FormatGrayscale, core.FormatNone, gl.LUMINANCE8, gl.LUMINANCE},
		{core.FormatGrayscaleAlpha, core.FormatNone, gl.LUMINANCE8_ALPHA8, gl.LUMINANCE_ALPHA},
		{core.FormatRed, core.FormatNone, gl.RGB8, gl.RED},
	}
	for _, c := range cases {
		internal, format, xtype, err := uploadFormat(core.TextureDesc{DataFormat: c.data, TextureFormat: c.tex})
		if err != nil {
			t.Fatalf("%s: %v", c.data, err)
		}
		if internal != c.internal || format != c.format || xtype != gl.UNSIGNED_BYTE {
			t.Errorf("%s: got %#x/%#x/%#x", c.data, internal, format, xtype)
		}
	}
}

func TestUploadFormatFloat(t *testing.T) {
	_, _, xtype, err := uploadFormat(core.TextureDesc{DataFormat: core.FormatRGBA, DataType: core.TextureDataFloat})
	if err != nil {
		t.Fatal(err)
	}
	if xtype != gl.FLOAT {
		t.Fatalf("xtype = %#x, want FLOAT", xtype)
	}
}

func TestUploadFormatUnsupported(t *testing.T) {
	_, _, _, err := uploadFormat(core.TextureDesc{DataFormat: core.FormatCount})
	if !errors.Is(err, core.ErrUnsupportedFormat) {
		t.Fatalf("err = %v", err)
	}
}
