package mediahog

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/hubastard/hoglib/engine/core"
)

// one pixel with R=1 G=2 B=3 A=4 in every layout
var pixel = map[Format][]byte{
	FormatRGB8:  {1, 2, 3},
	FormatBGR8:  {3, 2, 1},
	FormatRGBA8: {1, 2, 3, 4},
	FormatARGB8: {4, 1, 2, 3},
	FormatBGRA8: {3, 2, 1, 4},
	FormatABGR8: {4, 3, 2, 1},
}

func TestCopyImageData(t *testing.T) {
	for src := Format(0); src < FormatCount; src++ {
		for dst := Format(0); dst < FormatCount; dst++ {
			t.Run(src.String()+"->"+dst.String(), func(t *testing.T) {
				want := append([]byte(nil), pixel[dst]...)
				if src.Channels() == 3 && dst.Channels() == 4 {
					// alpha is made opaque
					for i, v := range want {
						if v == 4 {
							want[i] = 255
						}
					}
				}
				got := make([]byte, dst.Channels())
				if err := CopyImageData(got, 1, 1, dst, pixel[src], src); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(got, want) {
					t.Errorf("got %v, want %v", got, want)
				}
			})
		}
	}
}

func TestCopyImageDataErrors(t *testing.T) {
	tests := []struct {
		name    string
		dst     []byte
		dstF    Format
		src     []byte
		srcF    Format
		w, h    int
		wantErr error
	}{
		{"short src", make([]byte, 8), FormatRGBA8, make([]byte, 5), FormatRGB8, 2, 1, errShortBuffer},
		{"short dst", make([]byte, 3), FormatRGBA8, make([]byte, 3), FormatRGB8, 1, 1, errShortBuffer},
		{"bad format", make([]byte, 4), FormatCount, make([]byte, 4), FormatRGBA8, 1, 1, core.ErrUnsupportedFormat},
		{"empty", nil, FormatRGBA8, nil, FormatRGBA8, 0, 0, core.ErrInvalidBlob},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CopyImageData(tt.dst, tt.w, tt.h, tt.dstF, tt.src, tt.srcF)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSurfaceImage(t *testing.T) {
	data := []byte{
		10, 20, 30, 40, 50, 60,
		70, 80, 90, 1, 2, 3,
	}
	s, err := NewSurface(data, 2, 2, FormatBGR8)
	if err != nil {
		t.Fatal(err)
	}
	img := s.Image()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if c := img.NRGBAAt(1, 0); c.R != 60 || c.G != 50 || c.B != 40 || c.A != 255 {
		t.Errorf("pixel (1,0) = %v", c)
	}

	// The surface tracks the caller's buffer.
	data[0] = 99
	if c := s.Image().NRGBAAt(0, 0); c.B != 99 {
		t.Errorf("surface did not see buffer write: %v", c)
	}

	if _, err := NewSurface(data, 3, 3, FormatBGR8); !errors.Is(err, errShortBuffer) {
		t.Errorf("oversized surface err = %v", err)
	}
}

func TestIconSet(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{16, 1},
		{32, 2},
		{64, 4},
	}
	for _, tt := range tests {
		img := image.NewNRGBA(image.Rect(0, 0, tt.size, tt.size))
		set := iconSet(img)
		if len(set) != tt.want {
			t.Errorf("iconSet(%d) = %d images, want %d", tt.size, len(set), tt.want)
		}
		for _, ic := range set[1:] {
			if ic.Bounds().Dx() >= tt.size {
				t.Errorf("icon %v not smaller than source %d", ic.Bounds(), tt.size)
			}
		}
	}
}

func TestDebugCallback(t *testing.T) {
	defer SetDebugCallback(nil)

	type msg struct {
		t    DebugType
		code ErrorCode
		s    string
	}
	var got []msg
	prev := SetDebugCallback(func(dt DebugType, c ErrorCode, s string) { got = append(got, msg{dt, c, s}) })
	if prev != nil {
		t.Error("initial debug callback not nil")
	}
	SendDebugInfo(TypeWarning, WarningOpenGL, "slow path")
	if len(got) != 1 || got[0] != (msg{TypeWarning, WarningOpenGL, "slow path"}) {
		t.Errorf("got %v", got)
	}
	if SetDebugCallback(nil) == nil {
		t.Error("previous debug callback not returned")
	}
}

func TestFormatString(t *testing.T) {
	if FormatABGR8.String() != "ABGR8" || Format(42).String() != "Format(42)" {
		t.Errorf("names: %s %s", FormatABGR8, Format(42))
	}
	if TypeInfo.String() != "info" {
		t.Errorf("debug type = %s", TypeInfo)
	}
}
