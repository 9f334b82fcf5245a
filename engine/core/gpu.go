package core

// Texture is a GPU texture owned by a Renderer.
type Texture interface {
	ID() uint32
	Size() (w, h int)
}

// Pipeline is a linked shader program plus fixed state.
type Pipeline interface {
	ID() uint32
}

// Mesh is a vertex/index buffer pair with its layout.
type Mesh interface {
	ID() uint32
}

type TextureDesc struct {
	Width, Height int
	DataType      TextureDataType
	DataFormat    TextureFormat
	TextureFormat TextureFormat
	Pixels        []byte
	MinFilter     TextureFilter
	MagFilter     TextureFilter
	WrapU, WrapV  TextureWrap
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	// Attribute names bound to locations before linking. Needed by GLSL
	// versions without layout qualifiers.
	AttribNames []string
	DepthTest   bool
	Blend       bool
}

type AttribType uint8

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int32
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd draws every index of Mesh with Pipe. Uniform values may be
// float32, int32, [2]float32, [4]float32 or [16]float32.
type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
	Samplers map[string]Texture
}

// Renderer is the GPU backend a window renders with.
type Renderer interface {
	Type() RendererType
	Resize(w, h int)
	Clear(rgba [4]float32)

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	DeleteTexture(t Texture)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)

	// MaxTextureSlots is the number of samplers one draw may bind.
	MaxTextureSlots() int

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string

	Shutdown()
}
