package hoglib

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/hubastard/hoglib/engine/colors"
	"github.com/hubastard/hoglib/engine/core"
	"github.com/hubastard/hoglib/engine/core/coretest"
)

type fakes struct {
	win      *coretest.Window
	backends []*coretest.Renderer
	cfg      core.Config
}

// useFakes routes window and renderer creation to in-memory fakes.
func useFakes(t *testing.T) *fakes {
	t.Helper()
	f := &fakes{}
	oldWin, oldBackend, oldPoll := newPlatformWindow, newBackend, pollPlatform
	newPlatformWindow = func(cfg core.Config, onEvent func(core.Event)) (core.Window, error) {
		f.cfg = cfg
		f.win = coretest.NewWindow(cfg.Width, cfg.Height)
		f.win.SetEventCallback(onEvent)
		return f.win, nil
	}
	newBackend = func(typ core.RendererType, _ core.Window) (core.Renderer, error) {
		slots := 16
		if typ == core.RendererOpenGLLegacy {
			slots = 1
		}
		r := coretest.NewRenderer(typ, slots)
		f.backends = append(f.backends, r)
		return r, nil
	}
	pollPlatform = func() {
		if f.win != nil {
			f.win.PollEvents()
		}
	}
	t.Cleanup(func() {
		newPlatformWindow, newBackend, pollPlatform = oldWin, oldBackend, oldPoll
		input = core.NewInput()
	})
	return f
}

func (f *fakes) backend() *coretest.Renderer { return f.backends[len(f.backends)-1] }

func TestCreateWindowRendererSelection(t *testing.T) {
	tests := []struct {
		name  string
		flags WindowFlags
		want  RendererType
	}{
		{"none", 0, core.RendererNone},
		{"modern", WindowGLModern, RendererOpenGLModern},
		{"legacy", WindowGLLegacy, RendererOpenGLLegacy},
		{"legacy wins", WindowGLModern | WindowGLLegacy, RendererOpenGLLegacy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := useFakes(t)
			w, err := CreateWindow("test", 320, 240, tt.flags)
			if err != nil {
				t.Fatal(err)
			}
			defer w.Close()

			if f.cfg.Flags&core.WindowCenter == 0 {
				t.Error("window not centred")
			}
			if tt.want == core.RendererNone {
				if w.Renderer() != nil {
					t.Fatal("unexpected renderer")
				}
				return
			}
			if w.Renderer() == nil || w.Renderer().Type() != tt.want {
				t.Fatalf("renderer = %v, want %s", w.Renderer(), tt.want)
			}
		})
	}
}

func TestCloseFreesRendererFirst(t *testing.T) {
	f := useFakes(t)
	w, err := CreateWindow("test", 100, 100, WindowGLModern)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()
	if !f.backend().Closed {
		t.Error("backend not shut down")
	}
	if !f.win.Closed {
		t.Error("window not closed")
	}
	if !w.ShouldClose() {
		t.Error("closed window should report ShouldClose")
	}
	w.Close()
}

func TestPollEventsUpdatesInput(t *testing.T) {
	f := useFakes(t)
	w, err := CreateWindow("test", 100, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	f.win.PendingPolls = []core.Event{
		core.EventKey{Key: core.KeyA, Down: true},
		core.EventScroll{Y: 2},
	}
	PollEvents()
	if !IsKeyPressed(core.KeyA) || !IsKeyDown(core.KeyA) {
		t.Error("A should be pressed and down")
	}
	if _, y := MouseScroll(); y != 2 {
		t.Errorf("scroll y = %v, want 2", y)
	}

	PollEvents()
	if IsKeyPressed(core.KeyA) {
		t.Error("press edge should last one poll")
	}
	if !IsKeyDown(core.KeyA) {
		t.Error("A should still be down")
	}
	if _, y := MouseScroll(); y != 0 {
		t.Errorf("scroll not reset, y = %v", y)
	}

	f.win.PendingPolls = []core.Event{core.EventKey{Key: core.KeyA}}
	PollEvents()
	if !IsKeyReleased(core.KeyA) || IsKeyDown(core.KeyA) {
		t.Error("A should be released")
	}
}

func TestPollEventsWithoutWindow(t *testing.T) {
	PollEvents()
	PollEvents()
	if IsKeyDown(core.KeyA) {
		t.Error("input changed without a window")
	}
}

func TestResizeTracksFramebuffer(t *testing.T) {
	f := useFakes(t)
	w, err := CreateWindow("test", 200, 100, WindowGLModern)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	f.win.W, f.win.H = 400, 300
	f.win.FBW, f.win.FBH = 800, 600
	f.win.Emit(core.EventResize{W: 800, H: 600})

	b := f.backend()
	if b.W != 800 || b.H != 600 {
		t.Errorf("viewport = %dx%d, want 800x600", b.W, b.H)
	}
	cam := w.Renderer().Camera()
	if cam.Width() != 400 || cam.Height() != 300 {
		t.Errorf("camera = %vx%v, want window size 400x300", cam.Width(), cam.Height())
	}
}

func TestDrawWithoutRenderer(t *testing.T) {
	useFakes(t)
	w, err := CreateWindow("test", 100, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	w.StartFrame()
	w.SetColor(colors.Red)
	w.DrawRect(Rect{W: 10, H: 10})
	w.FinishFrame()

	if _, err := w.LoadTextureFromBlob(&TextureBlob{}); !errors.Is(err, core.ErrNoRenderer) {
		t.Errorf("LoadTextureFromBlob err = %v, want ErrNoRenderer", err)
	}
	if _, err := w.LoadFont("missing.ttf", 16); !errors.Is(err, core.ErrNoRenderer) {
		t.Errorf("LoadFont err = %v, want ErrNoRenderer", err)
	}
}

func TestFrameDrawsAndClears(t *testing.T) {
	f := useFakes(t)
	w, err := CreateWindow("test", 100, 100, WindowGLModern)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	w.StartFrame()
	w.Clear(colors.Black)
	w.SetColor(colors.Red)
	w.DrawRect(Rect{X: 10, Y: 10, W: 20, H: 20})
	w.DrawLine(Vec2{X: 0, Y: 0}, Vec2{X: 50, Y: 50})
	w.FinishFrame()

	b := f.backend()
	if len(b.Clears) != 1 || b.Clears[0] != colors.Black.Normalized() {
		t.Errorf("clears = %v", b.Clears)
	}
	if len(b.Draws) != 1 {
		t.Fatalf("draws = %d, want 1 batch", len(b.Draws))
	}
	if got := w.Renderer().Stats().QuadCount; got != 2 {
		t.Errorf("quads = %d, want 2", got)
	}
	if f.win.Swaps != 1 {
		t.Errorf("swaps = %d, want 1", f.win.Swaps)
	}

	// the rect spans window pixels 10..30 of 100, so clip -0.8..-0.4 with y up
	vp, ok := b.Draws[0].Uniforms["uVP"].([16]float32)
	if !ok {
		t.Fatalf("uVP = %T", b.Draws[0].Uniforms["uVP"])
	}
	v := b.Draws[0].Vertices
	stride := len(v) / 8 // two quads of four vertices
	corners := []struct {
		vertex       int
		wantX, wantY float32
	}{
		{0, -0.8, 0.8},
		{3, -0.4, 0.4},
	}
	for _, c := range corners {
		x, y := v[c.vertex*stride], v[c.vertex*stride+1]
		cx := vp[0]*x + vp[4]*y + vp[12]
		cy := vp[1]*x + vp[5]*y + vp[13]
		if math.Abs(float64(cx-c.wantX)) > 1e-5 || math.Abs(float64(cy-c.wantY)) > 1e-5 {
			t.Errorf("corner (%v,%v) -> clip (%v,%v), want (%v,%v)", x, y, cx, cy, c.wantX, c.wantY)
		}
	}
}

func TestTextureLifecycle(t *testing.T) {
	f := useFakes(t)
	w, err := CreateWindow("test", 100, 100, WindowGLModern)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	blob := &TextureBlob{
		Data:       make([]byte, 2*2*4),
		Width:      2,
		Height:     2,
		DataFormat: core.FormatRGBA,
	}
	tex, err := w.LoadTextureFromBlob(blob)
	if err != nil {
		t.Fatal(err)
	}
	if tw, th := tex.Size(); tw != 2 || th != 2 {
		t.Errorf("size = %dx%d", tw, th)
	}

	w.SetTexture(tex)
	if w.Renderer().r2d.Texture() == nil {
		t.Fatal("texture not bound")
	}
	inner := tex.tex
	w.ReleaseTexture(tex)
	if w.Renderer().r2d.Texture() != nil {
		t.Error("released texture still bound")
	}
	if !f.backend().IsDeleted(inner) {
		t.Error("texture not deleted")
	}

	// A released texture draws untextured rather than touching freed state.
	w.SetTexture(tex)
	if w.Renderer().r2d.Texture() != nil {
		t.Error("released texture rebound")
	}

	if _, err := w.LoadTextureFromBlob(&TextureBlob{Width: 2, Height: 2, DataFormat: core.FormatRGBA}); !errors.Is(err, core.ErrInvalidBlob) {
		t.Errorf("short blob err = %v, want ErrInvalidBlob", err)
	}
}

func TestFontAndText(t *testing.T) {
	useFakes(t)
	w, err := CreateWindow("test", 100, 100, WindowGLModern)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// No font set: nothing drawn.
	w.StartFrame()
	w.DrawText("hi", 0, 0, 16)
	if got := w.Renderer().r2d.Stats().QuadCount; got != 0 {
		t.Errorf("quads without font = %d", got)
	}

	font, err := w.LoadFontBytes(goregular.TTF, 32)
	if err != nil {
		t.Fatal(err)
	}
	w.SetFont(font)
	w.DrawText("hi", 0, 0, 16)
	w.FinishFrame()
	if got := w.Renderer().Stats().QuadCount; got != 2 {
		t.Errorf("quads = %d, want 2", got)
	}

	if fw, _ := font.Measure("hi", 32); fw <= 0 {
		t.Errorf("measure width = %v", fw)
	}

	w.ReleaseFont(font)
	if w.Renderer().font != nil {
		t.Error("released font still current")
	}
}

func TestDrawTextLen(t *testing.T) {
	useFakes(t)
	w, err := CreateWindow("test", 100, 100, WindowGLModern)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	font, err := w.LoadFontBytes(goregular.TTF, 16)
	if err != nil {
		t.Fatal(err)
	}
	w.SetFont(font)

	tests := []struct {
		name  string
		s     string
		n     int
		quads int
	}{
		{"prefix", "abcd", 2, 2},
		{"beyond length", "abc", 10, 3},
		{"negative", "abc", -1, 0},
		{"mid rune", "aé", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.StartFrame()
			w.DrawTextLen(tt.s, tt.n, 0, 0, 16)
			w.FinishFrame()
			if got := w.Renderer().Stats().QuadCount; got != tt.quads {
				t.Errorf("quads = %d, want %d", got, tt.quads)
			}
		})
	}
}

func TestInitRendererReplaces(t *testing.T) {
	f := useFakes(t)
	w, err := CreateWindow("test", 100, 100, WindowGLModern)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	first := f.backend()

	r, err := InitRenderer(RendererOpenGLLegacy, w)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Closed {
		t.Error("old backend not shut down")
	}
	if w.Renderer() != r || r.Type() != RendererOpenGLLegacy {
		t.Error("window renderer not replaced")
	}

	r.Free()
	if w.Renderer() != nil {
		t.Error("freed renderer still attached")
	}
	r.Free()
}

func TestInitRendererNeedsContext(t *testing.T) {
	f := useFakes(t)
	w, err := CreateWindow("test", 100, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if _, err := InitRenderer(RendererOpenGLModern, w); !errors.Is(err, core.ErrNotInitialized) {
		t.Fatalf("err = %v, want ErrNotInitialized", err)
	}
	if len(f.backends) != 0 || w.Renderer() != nil {
		t.Fatal("backend created for a window without a context")
	}

	ctx, err := CreateWindow("ctx", 100, 100, WindowOpenGL)
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()
	if ctx.Renderer() != nil {
		t.Fatal("WindowOpenGL alone should not attach a renderer")
	}
	if _, err := InitRenderer(RendererOpenGLModern, ctx); err != nil {
		t.Fatalf("InitRenderer on a context window: %v", err)
	}
}

func TestClosedWindowCalls(t *testing.T) {
	useFakes(t)
	w, err := CreateWindow("test", 100, 100, WindowGLModern)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()

	w.SetShouldClose(false)
	w.SetTitle("gone")
	w.MakeContextCurrent()
	w.SwapBuffers()
	w.SwapInterval(1)
	w.StartFrame()
	w.DrawRect(Rect{W: 1, H: 1})
	w.FinishFrame()
	if x, y := w.Size(); x != 0 || y != 0 {
		t.Errorf("size = %dx%d", x, y)
	}
	if _, _, in := w.Mouse(); in {
		t.Error("closed window reports the mouse inside")
	}
	if w.GetProcAddress("glClear") != nil {
		t.Error("proc address from a closed window")
	}
	if !w.ShouldClose() {
		t.Error("closed window should report ShouldClose")
	}
}

func TestResizeMakesContextCurrent(t *testing.T) {
	f := useFakes(t)
	w, err := CreateWindow("test", 100, 100, WindowGLModern)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	before := f.win.Current
	f.win.Emit(core.EventResize{W: 50, H: 50})
	if f.win.Current <= before {
		t.Error("viewport resized without making the window's context current")
	}
}

func TestLayerStack(t *testing.T) {
	var ls LayerStack
	a, b := &recLayer{name: "a"}, &recLayer{name: "b", consume: true}
	ls.Push(a)
	ls.Push(b)

	var order []string
	ls.ForEachReverse(func(l Layer) bool {
		rl := l.(*recLayer)
		order = append(order, rl.name)
		return rl.consume
	})
	if len(order) != 1 || order[0] != "b" {
		t.Errorf("reverse order = %v, want [b]", order)
	}

	l, ok := ls.Pop()
	if !ok || l != Layer(b) || ls.Len() != 1 {
		t.Errorf("pop = %v %v, len %d", l, ok, ls.Len())
	}
	ls.Pop()
	if _, ok := ls.Pop(); ok {
		t.Error("pop on empty stack")
	}
}

type recLayer struct {
	name    string
	consume bool

	attached, detached, updates, renders int
	events                               []Event
}

func (l *recLayer) OnAttach(*Engine)          { l.attached++ }
func (l *recLayer) OnDetach(*Engine)          { l.detached++ }
func (l *recLayer) OnUpdate(*Engine, float64) { l.updates++ }
func (l *recLayer) OnRender(*Engine, float64) { l.renders++ }
func (l *recLayer) OnEvent(_ *Engine, ev Event) bool {
	l.events = append(l.events, ev)
	return l.consume
}

type recApp struct {
	layer             *recLayer
	frames            int
	started, shutdown bool
	events            []Event
}

func (a *recApp) OnStart(e *Engine) {
	a.started = true
	e.Layers.Push(a.layer)
}
func (a *recApp) OnUpdate(*Engine, float64) {}
func (a *recApp) OnRender(e *Engine, _ float64) {
	a.frames++
	if a.frames == 1 {
		e.Window.win.(*coretest.Window).Emit(core.EventFocus{Focused: true})
	}
	if a.frames == 3 {
		e.Window.SetShouldClose(true)
	}
}
func (a *recApp) OnEvent(_ *Engine, ev Event) { a.events = append(a.events, ev) }
func (a *recApp) OnShutdown(*Engine)          { a.shutdown = true }

func TestRun(t *testing.T) {
	f := useFakes(t)
	app := &recApp{layer: &recLayer{name: "l"}}
	cfg := core.Config{Title: "run", Width: 64, Height: 64, VSync: true, ClearColor: colors.Blue}
	if err := Run(app, cfg); err != nil {
		t.Fatal(err)
	}

	if f.cfg.Flags&core.WindowGLModern == 0 {
		t.Error("Run should default to the modern renderer")
	}
	if !app.started || !app.shutdown {
		t.Error("start/shutdown hooks not called")
	}
	if app.frames != 3 || app.layer.renders != 3 {
		t.Errorf("frames = %d, layer renders = %d, want 3", app.frames, app.layer.renders)
	}
	if app.layer.attached != 1 || app.layer.detached != 1 {
		t.Errorf("attach/detach = %d/%d", app.layer.attached, app.layer.detached)
	}
	if len(app.layer.events) != 1 || len(app.events) != 1 {
		t.Errorf("events layer=%d app=%d, want 1 each", len(app.layer.events), len(app.events))
	}
	if f.win.Interval != 1 {
		t.Errorf("swap interval = %d, want 1", f.win.Interval)
	}
	if f.win.Swaps != 3 || !f.win.Closed {
		t.Errorf("swaps = %d closed = %v", f.win.Swaps, f.win.Closed)
	}
	if b := f.backend(); len(b.Clears) != 3 || b.Clears[0] != colors.Blue.Normalized() {
		t.Errorf("clears = %v", b.Clears)
	}
}
