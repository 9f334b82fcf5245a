package renderer2d

import (
	"embed"
	"fmt"
	"math"
	"strconv"

	"github.com/hubastard/hoglib/engine/assets"
	"github.com/hubastard/hoglib/engine/colors"
	"github.com/hubastard/hoglib/engine/core"
)

//go:embed shaders
var shaderFS embed.FS

// Upper bound on textures per batch; backends may allow fewer.
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const vStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

const defaultMaxQuads = 10000

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4}, // texIndex
	},
}

// attribute names in location order, for GLSL without layout qualifiers
var quadAttribNames = []string{"aPos", "aColor", "aUV", "aTexIndex"}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

type Renderer2D struct {
	r      core.Renderer
	pipe   core.Pipeline
	white  core.Texture // 1x1 white used for untextured quads
	slots  int
	texArr [maxTexSlots]core.Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	mesh     core.Mesh
	samplers map[string]core.Texture
	uniforms map[string]any
	texNames [maxTexSlots]string

	// draw state used by DrawRect and DrawLine
	color  colors.Color
	tex    core.Texture
	source core.Rect

	_vp           [16]float32
	stats         Statistics
	extraUniforms map[string]any
}

// ShaderSources returns the embedded quad shaders for a backend type.
func ShaderSources(t core.RendererType) (vert, frag string, err error) {
	prefix := "shaders/quad330"
	if t == core.RendererOpenGLLegacy {
		prefix = "shaders/quad120"
	}
	if vert, err = assets.LoadShader(shaderFS, prefix+".vert"); err != nil {
		return "", "", err
	}
	if frag, err = assets.LoadShader(shaderFS, prefix+".frag"); err != nil {
		return "", "", err
	}
	return vert, frag, nil
}

// NewDefault creates a renderer with the embedded shaders matching r.
func NewDefault(r core.Renderer) (*Renderer2D, error) {
	vs, fs, err := ShaderSources(r.Type())
	if err != nil {
		return nil, err
	}
	return New(r, vs, fs, defaultMaxQuads)
}

// New creates renderer and compiles the shader pipeline.
func New(r core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = defaultMaxQuads
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		AttribNames:    quadAttribNames,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d pipeline: %w", err)
	}

	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		DataFormat:    core.FormatRGBA,
		TextureFormat: core.FormatRGBA,
		Pixels:        []byte{255, 255, 255, 255},
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d white texture: %w", err)
	}

	slots := min(r.MaxTextureSlots(), maxTexSlots)
	if slots < 1 {
		slots = 1
	}

	rd := &Renderer2D{
		r: r, pipe: pipe, white: white, slots: slots, maxQuads: maxQuads,
		verts: make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:  make([]uint32, 0, maxQuads*indsPerQuad),
		color: colors.White,
	}

	// Create a reusable mesh large enough for the biggest batch.
	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d mesh: %w", err)
	}
	rd.mesh = mesh

	rd.samplers = make(map[string]core.Texture, slots)
	rd.uniforms = make(map[string]any, 4)
	for i := 0; i < maxTexSlots; i++ {
		rd.texNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	rd.resetBatch()

	return rd, nil
}

// Backend returns the GPU renderer the batches are submitted to.
func (rd *Renderer2D) Backend() core.Renderer { return rd.r }

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd._vp = vp
	rd.stats = Statistics{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Flush submits the pending batch without ending the scene.
func (rd *Renderer2D) Flush() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// SetUniform queues an additional uniform to be sent on every draw call.
// The uniform persists until overwritten; call with nil to remove.
func (rd *Renderer2D) SetUniform(name string, value any) {
	if rd.extraUniforms == nil {
		rd.extraUniforms = make(map[string]any)
	}
	if value == nil {
		delete(rd.extraUniforms, name)
		return
	}
	rd.extraUniforms[name] = value
}

func (rd *Renderer2D) SetColor(c colors.Color) { rd.color = c }
func (rd *Renderer2D) Color() colors.Color     { return rd.color }

// SetTexture selects the texture for DrawRect; nil draws untextured.
func (rd *Renderer2D) SetTexture(t core.Texture) {
	rd.tex = t
	rd.source = core.Rect{}
}

// SetTextureSource selects t and the pixel rect of it DrawRect samples.
// An empty rect samples the whole texture.
func (rd *Renderer2D) SetTextureSource(t core.Texture, src core.Rect) {
	rd.tex = t
	rd.source = src
}

func (rd *Renderer2D) Texture() core.Texture { return rd.tex }

// ReleaseTexture deletes t, flushing first if the pending batch samples it
// and unbinding it if it is the current texture.
func (rd *Renderer2D) ReleaseTexture(t core.Texture) {
	if t == nil {
		return
	}
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			rd.flush()
			break
		}
	}
	if rd.tex == t {
		rd.SetTexture(nil)
	}
	rd.r.DeleteTexture(t)
}

// DrawRect draws rect (top-left origin) with the current colour and texture.
func (rd *Renderer2D) DrawRect(rect core.Rect) {
	if rect.Empty() {
		return
	}
	cx, cy := rect.Center()
	if rd.tex == nil {
		rd.DrawQuad(cx, cy, rect.W, rect.H, rd.color, 0)
		return
	}
	rd.DrawSubTexQuad(cx, cy, rect.W, rect.H, FromRect(rd.tex, rd.source), rd.color, 0)
}

// DrawLine draws a segment from a to b, thickness pixels wide, with the
// current colour.
func (rd *Renderer2D) DrawLine(a, b core.Vec2, thickness float32) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 || thickness <= 0 {
		return
	}
	angle := float32(math.Atan2(float64(dy), float64(dx)))
	rd.DrawQuad((a.X+b.X)*0.5, (a.Y+b.Y)*0.5, length, thickness, rd.color, angle)
}

// Draw solid color quad centred on (x,y).
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, color colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(x, y, w, h, color, rotationRad, rd.texSlot(rd.white), 0, 0, 1, 1)
}

// Draw textured quad with UVs (tint color)
func (rd *Renderer2D) DrawTexturedQuad(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(x, y, w, h, tint, rotationRad, slot, 0, 0, 1, 1)
}

// Draw textured sub-rect (UV rect: u0,v0 -> u1,v1)
func (rd *Renderer2D) DrawTexturedQuadUV(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(x, y, w, h, tint, rotationRad, slot, u0, v0, u1, v1)
}

// DrawSubTexQuad draws a quad using a SubTexture2D (tint + rotation optional).
func (rd *Renderer2D) DrawSubTexQuad(x, y, w, h float32, sub SubTexture2D, tint colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(sub.Texture)
	rd.drawQuadInternal(x, y, w, h, tint, rotationRad, slot, sub.U0, sub.V0, sub.U1, sub.V1)
}

// Shutdown releases the GPU objects owned by the 2D renderer.
func (rd *Renderer2D) Shutdown() {
	if rd.white != nil {
		rd.r.DeleteTexture(rd.white)
		rd.white = nil
	}
}

// --- internals ---

func (rd *Renderer2D) texSlot(t core.Texture) float32 {
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	if rd.texCnt >= rd.slots {
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	if rd.texCnt > rd.stats.TextureCount {
		rd.stats.TextureCount = rd.texCnt
	}
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) drawQuadInternal(x, y, w, h float32, color colors.Color, rotationRad float32, texIndex float32, u0, v0, u1, v1 float32) {
	halfW := w * 0.5
	halfH := h * 0.5

	// corners (TL, TR, BL, BR) with UVs. Positive Y goes down so top is -halfH.
	corners := [4][4]float32{
		{-halfW, -halfH, u0, v0},
		{halfW, -halfH, u1, v0},
		{-halfW, halfH, u0, v1},
		{halfW, halfH, u1, v1},
	}
	c, s := float32(1), float32(0)
	if rotationRad != 0 {
		c, s = float32(math.Cos(float64(rotationRad))), float32(math.Sin(float64(rotationRad)))
	}
	col := color.Normalized()

	startVertex := uint32(len(rd.verts) / vStride)

	for _, p := range corners {
		rx := p[0]*c - p[1]*s + x
		ry := p[0]*s + p[1]*c + y
		rd.verts = append(rd.verts,
			rx, ry,
			col[0], col[1], col[2], col[3],
			p[2], p[3],
			texIndex,
		)
	}
	rd.inds = append(rd.inds,
		startVertex+0, startVertex+2, startVertex+1,
		startVertex+1, startVertex+2, startVertex+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		rd.resetBatch()
		return
	}

	if err := rd.r.UpdateMesh(rd.mesh, rd.verts, rd.inds); err != nil {
		core.Logger().Error("renderer2d: batch upload failed", "quads", rd.quadCount, "err", err)
		rd.resetBatch()
		return
	}

	clear(rd.samplers)
	for i := 0; i < rd.texCnt; i++ {
		rd.samplers[rd.texNames[i]] = rd.texArr[i]
	}

	clear(rd.uniforms)
	rd.uniforms["uVP"] = rd._vp
	for k, v := range rd.extraUniforms {
		rd.uniforms[k] = v
	}

	rd.r.Draw(core.DrawCmd{
		Pipe:     rd.pipe,
		Mesh:     rd.mesh,
		Uniforms: rd.uniforms,
		Samplers: rd.samplers,
	})
	rd.stats.DrawCalls++

	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
	clear(rd.texArr[:])
	rd.texCnt = 0
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}
