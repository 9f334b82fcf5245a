package text

import (
	"testing"

	"github.com/hubastard/hoglib/engine/colors"
	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/core/coretest"
	"github.com/hubastard/hoglib/engine/gfx/renderer2d"
	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFont(t *testing.T, fake *coretest.Renderer, size float32) *Font {
	t.Helper()
	f, err := LoadFontBytes(fake, goregular.TTF, size)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoadFontAtlas(t *testing.T) {
	fake := coretest.NewRenderer(core.RendererOpenGLModern, 16)
	f := loadTestFont(t, fake, 32)

	if len(fake.Textures) != 1 {
		t.Fatalf("textures = %d, want 1", len(fake.Textures))
	}
	desc := fake.Textures[0].Desc
	if desc.DataFormat != core.FormatGrayscaleAlpha {
		t.Errorf("atlas format = %s", desc.DataFormat)
	}
	if len(desc.Pixels) != f.AtlasW*f.AtlasH*2 {
		t.Errorf("atlas bytes = %d for %dx%d", len(desc.Pixels), f.AtlasW, f.AtlasH)
	}
	for _, r := range []rune{' ', 'A', 'z', '~', 'é'} {
		if _, ok := f.Glyphs[r]; !ok {
			t.Errorf("missing glyph %q", r)
		}
	}
	a := f.Glyphs['A']
	if a.W == 0 || a.H == 0 || a.U1 <= a.U0 || a.V1 <= a.V0 {
		t.Errorf("glyph A not packed: %+v", a)
	}
	if f.Ascent <= 0 || f.Descent >= 0 {
		t.Errorf("metrics ascent=%v descent=%v", f.Ascent, f.Descent)
	}
}

func TestLoadFontErrors(t *testing.T) {
	fake := coretest.NewRenderer(core.RendererOpenGLModern, 16)
	if _, err := LoadFontBytes(fake, []byte("not a font"), 16); err == nil {
		t.Error("garbage data should fail")
	}
	if _, err := LoadFontBytes(fake, goregular.TTF, 0); err == nil {
		t.Error("zero size should fail")
	}
	if _, err := LoadFont(fake, "does/not/exist.ttf", 16); err == nil {
		t.Error("missing file should fail")
	}
	fake.FailTextures = true
	if _, err := LoadFontBytes(fake, goregular.TTF, 16); err == nil {
		t.Error("upload failure should propagate")
	}
}

func TestMeasureTextScales(t *testing.T) {
	f := loadTestFont(t, coretest.NewRenderer(core.RendererOpenGLModern, 16), 32)

	w1, h1 := MeasureText(f, "Hello", 32)
	w2, h2 := MeasureText(f, "Hello", 64)
	if w1 <= 0 || w2 != w1*2 || h2 != h1*2 {
		t.Fatalf("measure 32=(%v,%v) 64=(%v,%v)", w1, h1, w2, h2)
	}
	_, h3 := MeasureText(f, "a\nb", 32)
	if h3 != 2*f.LineHeight() {
		t.Fatalf("two lines height = %v, want %v", h3, 2*f.LineHeight())
	}
	wa, _ := MeasureText(f, "Hello\nHi", 0)
	if wa != w1 {
		t.Fatalf("widest line = %v, want %v", wa, w1)
	}
}

func TestDrawTextQuads(t *testing.T) {
	fake := coretest.NewRenderer(core.RendererOpenGLModern, 16)
	rd, err := renderer2d.New(fake, "vs", "fs", 100)
	if err != nil {
		t.Fatal(err)
	}
	f := loadTestFont(t, fake, 24)

	rd.BeginScene([16]float32{})
	DrawText(rd, f, 0, 0, "Hi there", 48, colors.White)
	rd.EndScene()

	st := rd.Stats()
	if st.QuadCount != 7 {
		t.Fatalf("quads = %d, want 7 (space has no bitmap)", st.QuadCount)
	}
	if len(fake.Draws) != 1 || fake.Draws[0].Samplers["uTex[0]"] != f.Texture {
		t.Fatal("text should draw in one batch from the atlas")
	}
}

func TestReleaseFont(t *testing.T) {
	fake := coretest.NewRenderer(core.RendererOpenGLModern, 16)
	rd, err := renderer2d.New(fake, "vs", "fs", 10)
	if err != nil {
		t.Fatal(err)
	}
	f := loadTestFont(t, fake, 16)
	tex := f.Texture
	f.Release(rd)
	if !fake.IsDeleted(tex) || f.Texture != nil {
		t.Fatal("atlas texture not released")
	}
	f.Release(rd) // second release is a no-op
}
