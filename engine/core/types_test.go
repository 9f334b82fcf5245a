package core

import (
	"errors"
	"testing"
)

func TestKeyCodes(t *testing.T) {
	if KeyF1 != 128 {
		t.Fatalf("KeyF1 = %d, want 128", KeyF1)
	}
	if KeyEnter != KeyReturn || KeyReturn != '\n' {
		t.Fatal("enter must alias return")
	}
	if KeyWorld2 >= KeyLast {
		t.Fatalf("KeyWorld2 = %d overflows KeyLast", KeyWorld2)
	}
}

func TestRendererFromFlags(t *testing.T) {
	tests := []struct {
		flags WindowFlags
		want  RendererType
	}{
		{0, RendererNone},
		{WindowNoBorder, RendererNone},
		{WindowGLModern, RendererOpenGLModern},
		{WindowGLLegacy, RendererOpenGLLegacy},
		{WindowGLLegacy | WindowGLModern, RendererOpenGLLegacy},
	}
	for _, tt := range tests {
		if got := RendererFromFlags(tt.flags); got != tt.want {
			t.Errorf("RendererFromFlags(%b) = %v, want %v", tt.flags, got, tt.want)
		}
	}
	if (WindowNoBorder).WantsContext() || !(WindowOpenGL).WantsContext() {
		t.Fatal("WantsContext mismatch")
	}
}

func TestTextureBlobValidate(t *testing.T) {
	tests := []struct {
		name string
		blob *TextureBlob
		want error
	}{
		{"nil", nil, ErrInvalidBlob},
		{"zero size", &TextureBlob{DataFormat: FormatRGBA}, ErrInvalidBlob},
		{"bad format", &TextureBlob{Width: 1, Height: 1, Data: []byte{0}}, ErrUnsupportedFormat},
		{"short data", &TextureBlob{Width: 2, Height: 2, DataFormat: FormatRGB, Data: make([]byte, 11)}, ErrInvalidBlob},
		{"rgb ok", &TextureBlob{Width: 2, Height: 2, DataFormat: FormatRGB, Data: make([]byte, 12)}, nil},
		{"float ok", &TextureBlob{Width: 1, Height: 1, DataFormat: FormatGrayscaleAlpha, DataType: TextureDataFloat, Data: make([]byte, 8)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.blob.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTextureBlobDescDefaultsFormat(t *testing.T) {
	b := &TextureBlob{Width: 1, Height: 1, DataFormat: FormatBGRA, Data: make([]byte, 4), MagFilter: FilterLinear}
	d := b.Desc()
	if d.TextureFormat != FormatBGRA || d.MagFilter != FilterLinear {
		t.Fatalf("Desc() = %+v", d)
	}
}

func TestGLHintsForRenderer(t *testing.T) {
	h := DefaultGLHints().ForRenderer(RendererOpenGLModern)
	if h.Major != 3 || h.Minor != 3 || h.Profile != GLCore {
		t.Fatalf("modern hints = %d.%d profile %d", h.Major, h.Minor, h.Profile)
	}
	h = GLHints{Major: 4, Minor: 6}.ForRenderer(RendererOpenGLModern)
	if h.Major != 4 || h.Minor != 6 {
		t.Fatal("newer requested version was lowered")
	}
	h = DefaultGLHints().ForRenderer(RendererOpenGLLegacy)
	if h.Major != 2 || h.Minor != 1 || h.Profile != GLCompatibility {
		t.Fatalf("legacy hints = %d.%d", h.Major, h.Minor)
	}
}

func TestCompareModes(t *testing.T) {
	a := MonitorMode{W: 1920, H: 1080, RefreshRate: 60, Red: 8, Green: 8, Blue: 8}
	b := a
	b.RefreshRate = 144
	if !CompareModes(a, b, ModeScale|ModeRGB) {
		t.Fatal("modes should match when refresh is ignored")
	}
	if CompareModes(a, b, ModeAll) {
		t.Fatal("modes should differ on refresh")
	}
}

func TestSleepAdvancesTime(t *testing.T) {
	start := GetTime()
	Sleep(0.01)
	if GetTime()-start < 0.009 {
		t.Fatal("clock did not advance across Sleep")
	}
	Sleep(-1)
}
