package core

import "fmt"

// TextureFormat is the channel layout of 8-bit pixel data.
type TextureFormat uint8

const (
	FormatNone TextureFormat = iota
	FormatRGB
	FormatBGR
	FormatRGBA
	FormatBGRA
	FormatRed
	FormatGrayscale
	FormatGrayscaleAlpha
	FormatCount
)

// Channels returns the number of components per pixel.
func (f TextureFormat) Channels() int {
	switch f {
	case FormatRGB, FormatBGR:
		return 3
	case FormatRGBA, FormatBGRA:
		return 4
	case FormatRed, FormatGrayscale:
		return 1
	case FormatGrayscaleAlpha:
		return 2
	default:
		return 0
	}
}

func (f TextureFormat) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatBGR:
		return "bgr"
	case FormatRGBA:
		return "rgba"
	case FormatBGRA:
		return "bgra"
	case FormatRed:
		return "red"
	case FormatGrayscale:
		return "grayscale"
	case FormatGrayscaleAlpha:
		return "grayscale-alpha"
	default:
		return "none"
	}
}

type TextureDataType uint8

const (
	TextureDataInt TextureDataType = iota // one byte per component
	TextureDataFloat                      // little-endian float32 per component
)

// ComponentSize returns bytes per component.
func (t TextureDataType) ComponentSize() int {
	if t == TextureDataFloat {
		return 4
	}
	return 1
}

type TextureFilter uint8

const (
	FilterNearest TextureFilter = iota
	FilterLinear
)

type TextureWrap uint8

const (
	WrapClamp TextureWrap = iota
	WrapRepeat
)

// TextureBlob is raw pixel data ready for upload.
type TextureBlob struct {
	Data          []byte
	Width         int
	Height        int
	DataType      TextureDataType
	DataFormat    TextureFormat // format of Data
	TextureFormat TextureFormat // format stored on the GPU
	MinFilter     TextureFilter // used when the surface is smaller than the texture
	MagFilter     TextureFilter // used when the surface is bigger than the texture
}

// Validate checks that Data holds exactly one image of the declared size.
func (b *TextureBlob) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil blob", ErrInvalidBlob)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidBlob, b.Width, b.Height)
	}
	ch := b.DataFormat.Channels()
	if ch == 0 {
		return fmt.Errorf("%w: data format %s", ErrUnsupportedFormat, b.DataFormat)
	}
	if b.TextureFormat != FormatNone && b.TextureFormat.Channels() == 0 {
		return fmt.Errorf("%w: texture format %s", ErrUnsupportedFormat, b.TextureFormat)
	}
	want := b.Width * b.Height * ch * b.DataType.ComponentSize()
	if len(b.Data) != want {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrInvalidBlob, len(b.Data), want)
	}
	return nil
}

// Desc converts the blob into a texture descriptor. An unset TextureFormat
// keeps the data format.
func (b *TextureBlob) Desc() TextureDesc {
	tf := b.TextureFormat
	if tf == FormatNone {
		tf = b.DataFormat
	}
	return TextureDesc{
		Width:         b.Width,
		Height:        b.Height,
		DataType:      b.DataType,
		DataFormat:    b.DataFormat,
		TextureFormat: tf,
		Pixels:        b.Data,
		MinFilter:     b.MinFilter,
		MagFilter:     b.MagFilter,
		WrapU:         WrapClamp,
		WrapV:         WrapClamp,
	}
}
