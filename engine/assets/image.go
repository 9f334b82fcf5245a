package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/hubastard/hoglib/engine/core"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image file at path into a texture blob.
func LoadImage(path string) (*core.TextureBlob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	blob, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return blob, nil
}

// DecodeImage decodes PNG, JPEG, GIF, BMP, TIFF or WebP data.
func DecodeImage(r io.Reader) (*core.TextureBlob, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	blob := ImageToBlob(img)
	core.Logger().Debug("image decoded", "format", format,
		"width", blob.Width, "height", blob.Height, "pixels", blob.DataFormat)
	return blob, nil
}

// ImageToBlob packs img into tight top-left-origin rows. Grayscale images
// stay single channel, opaque images become RGB and everything else
// straight-alpha RGBA.
func ImageToBlob(img image.Image) *core.TextureBlob {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	blob := &core.TextureBlob{
		Width:     w,
		Height:    h,
		DataType:  core.TextureDataInt,
		MinFilter: core.FilterNearest,
		MagFilter: core.FilterNearest,
	}

	switch m := img.(type) {
	case *image.Gray:
		blob.Data = tightRows(m.Pix, m.Stride, w, h, 1)
		blob.DataFormat = core.FormatGrayscale
	case *image.Gray16:
		gray := image.NewGray(image.Rect(0, 0, w, h))
		draw.Draw(gray, gray.Bounds(), m, b.Min, draw.Src)
		blob.Data = gray.Pix
		blob.DataFormat = core.FormatGrayscale
	default:
		nrgba := toNRGBA(img)
		if isOpaque(img) {
			blob.Data = dropAlpha(nrgba.Pix, w*h)
			blob.DataFormat = core.FormatRGB
		} else {
			blob.Data = nrgba.Pix
			blob.DataFormat = core.FormatRGBA
		}
	}
	blob.TextureFormat = blob.DataFormat
	return blob
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if m, ok := img.(*image.NRGBA); ok && m.Stride == b.Dx()*4 && b.Min == (image.Point{}) {
		return m
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func tightRows(pix []byte, stride, w, h, bpp int) []byte {
	row := w * bpp
	if stride == row {
		return pix[:row*h]
	}
	out := make([]byte, row*h)
	for y := 0; y < h; y++ {
		copy(out[y*row:(y+1)*row], pix[y*stride:y*stride+row])
	}
	return out
}

func dropAlpha(rgba []byte, n int) []byte {
	out := make([]byte, n*3)
	for i := 0; i < n; i++ {
		copy(out[i*3:i*3+3], rgba[i*4:i*4+3])
	}
	return out
}
