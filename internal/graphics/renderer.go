package graphics

import (
	"mini-voxel/internal/game"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/player"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	WinWidth  = 900
	WinHeight = 600
)

// Interleaved vertex layout: position(3) normal(3) color(4) uv(2).
const vertexStride = 12

var CrosshairVertices = []float32{
	-0.02, 0.0,
	0.02, 0.0,
	0.0, -0.02,
	0.0, 0.02,
}

// Unit cube edges for the target highlight box, centered usage via model
// matrix.
var CubeWireframeVertices = []float32{
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 0, 1,
	1, 0, 1, 0, 0, 1,
	0, 0, 1, 0, 0, 0,
	0, 1, 0, 1, 1, 0,
	1, 1, 0, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 1, 0,
	0, 0, 0, 0, 1, 0,
	1, 0, 0, 1, 1, 0,
	1, 0, 1, 1, 1, 1,
	0, 0, 1, 0, 1, 1,
}

type Renderer struct {
	chunkShader     *Shader
	wireframeShader *Shader
	crosshairShader *Shader
	camera          *Camera

	wireframeVAO uint32
	wireframeVBO uint32
	crosshairVAO uint32
	crosshairVBO uint32

	// GPU buffers per mesh handle; pruned when the handle disappears from
	// the session.
	chunkMeshes map[world.MeshHandle]*glMesh

	// WireframeMode draws chunk geometry as lines when set.
	WireframeMode bool
}

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	version    uint64
}

func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	// Meshing emits CCW front faces
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	chunkShader, err := NewShader(chunkVertShader, chunkFragShader)
	if err != nil {
		return nil, err
	}
	wireframeShader, err := NewShader(wireframeVertShader, wireframeFragShader)
	if err != nil {
		return nil, err
	}
	crosshairShader, err := NewShader(crosshairVertShader, crosshairFragShader)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		chunkShader:     chunkShader,
		wireframeShader: wireframeShader,
		crosshairShader: crosshairShader,
		camera:          NewCamera(WinWidth, WinHeight),
		chunkMeshes:     make(map[world.MeshHandle]*glMesh),
	}

	r.setupWireframeVAO()
	r.setupCrosshairVAO()

	return r, nil
}

func (r *Renderer) setupWireframeVAO() {
	gl.GenVertexArrays(1, &r.wireframeVAO)
	gl.BindVertexArray(r.wireframeVAO)

	gl.GenBuffers(1, &r.wireframeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.wireframeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeWireframeVertices)*4, gl.Ptr(CubeWireframeVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
}

func (r *Renderer) setupCrosshairVAO() {
	gl.GenVertexArrays(1, &r.crosshairVAO)
	gl.BindVertexArray(r.crosshairVAO)

	gl.GenBuffers(1, &r.crosshairVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.crosshairVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(CrosshairVertices)*4, gl.Ptr(CrosshairVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
}

// Render draws one frame: all chunk meshes of the session, the target
// highlight, and the crosshair.
func (r *Renderer) Render(s *game.Session, p *player.Player) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := p.GetViewMatrix()
	projection := r.camera.GetProjectionMatrix()

	if r.WireframeMode {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	r.renderChunks(s, view, projection)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	if target := s.Target(); target.Valid {
		r.renderTargetHighlight(target, view, projection)
	}

	r.renderCrosshair()
}

func (r *Renderer) renderChunks(s *game.Session, view, projection mgl32.Mat4) {
	r.chunkShader.Use()
	r.chunkShader.SetMatrix4("proj", &projection[0])
	r.chunkShader.SetMatrix4("view", &view[0])

	light := mgl32.Vec3{0.3, 1.0, 0.3}.Normalize()
	r.chunkShader.SetVector3("lightDir", light.X(), light.Y(), light.Z())

	live := make(map[world.MeshHandle]bool, len(s.Meshes()))
	for coord, cm := range s.Meshes() {
		live[cm.Handle] = true

		m := r.ensureMesh(cm)
		if m.indexCount == 0 {
			continue
		}

		origin := coord.Origin()
		model := mgl32.Translate3D(origin.X(), origin.Y(), origin.Z())
		r.chunkShader.SetMatrix4("model", &model[0])

		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	}

	// Free GPU buffers of evicted chunks
	for handle, m := range r.chunkMeshes {
		if live[handle] {
			continue
		}
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(r.chunkMeshes, handle)
	}
}

// ensureMesh uploads the CPU mesh when it is new or its version advanced.
func (r *Renderer) ensureMesh(cm *game.ChunkMesh) *glMesh {
	existing := r.chunkMeshes[cm.Handle]
	if existing != nil && existing.version == cm.Version {
		return existing
	}

	if existing == nil {
		existing = &glMesh{}
		gl.GenVertexArrays(1, &existing.vao)
		gl.GenBuffers(1, &existing.vbo)
		gl.GenBuffers(1, &existing.ebo)

		gl.BindVertexArray(existing.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, existing.vbo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, existing.ebo)

		stride := int32(vertexStride * 4)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
		gl.EnableVertexAttribArray(2)
		gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 6*4)
		gl.EnableVertexAttribArray(3)
		gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, stride, 10*4)
	} else {
		gl.BindVertexArray(existing.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, existing.vbo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, existing.ebo)
	}

	verts := interleave(cm.Mesh)
	if len(verts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cm.Mesh.Indices)*4, gl.Ptr(cm.Mesh.Indices), gl.DYNAMIC_DRAW)
		existing.indexCount = int32(len(cm.Mesh.Indices))
	} else {
		existing.indexCount = 0
	}
	existing.version = cm.Version
	r.chunkMeshes[cm.Handle] = existing
	return existing
}

// interleave flattens a mesh into the renderer's vertex layout.
func interleave(m *meshing.Mesh) []float32 {
	out := make([]float32, 0, len(m.Positions)*vertexStride)
	for i := range m.Positions {
		out = append(out,
			m.Positions[i].X(), m.Positions[i].Y(), m.Positions[i].Z(),
			m.Normals[i].X(), m.Normals[i].Y(), m.Normals[i].Z(),
			m.Colors[i].X(), m.Colors[i].Y(), m.Colors[i].Z(), m.Colors[i].W(),
			m.UVs[i].X(), m.UVs[i].Y(),
		)
	}
	return out
}

func (r *Renderer) renderTargetHighlight(target game.TargetState, view, projection mgl32.Mat4) {
	r.wireframeShader.Use()
	r.wireframeShader.SetMatrix4("proj", &projection[0])
	r.wireframeShader.SetMatrix4("view", &view[0])

	x, y, z := target.BlockWorld()
	model := mgl32.Translate3D(
		float32(x)-0.005,
		float32(y)-0.005,
		float32(z)-0.005,
	).Mul4(mgl32.Scale3D(1.01, 1.01, 1.01))

	r.wireframeShader.SetMatrix4("model", &model[0])
	r.wireframeShader.SetVector3("color", 0.0, 0.0, 0.0)

	gl.BindVertexArray(r.wireframeVAO)
	gl.LineWidth(2.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(CubeWireframeVertices)/3))
}

func (r *Renderer) renderCrosshair() {
	r.crosshairShader.Use()
	r.crosshairShader.SetFloat("aspectRatio", r.camera.AspectRatio)

	gl.BindVertexArray(r.crosshairVAO)
	gl.LineWidth(2.0)
	gl.DrawArrays(gl.LINES, 0, 4)
}
