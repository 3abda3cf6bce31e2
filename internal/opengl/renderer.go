package opengl

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"warp-scene/core"
	"warp-scene/math"
	"warp-scene/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO         uint32
	VBO         uint32
	EBO         uint32
	IndexCount  int32
	VertexCount int32
	HasIndices  bool
}

// program is a linked material program with its uniform locations.
type program struct {
	id     uint32
	failed bool
	locs   map[string]int32

	projectionLoc int32
	modelViewLoc  int32
	viewportHLoc  int32
}

// Renderer is the OpenGL rendering backend.
type Renderer struct {
	log *slog.Logger

	viewportW int32
	viewportH int32

	programs  map[*scene.Material]*program
	gpuMeshes map[*scene.Mesh]*GPUMesh
}

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer(log *slog.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Info("OpenGL ready", "version", version)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	// star materials size their points in the vertex shader
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return &Renderer{
		log:       log,
		programs:  make(map[*scene.Material]*program),
		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears colour and depth.
func (r *Renderer) BeginFrame(background core.Color) {
	gl.DepthMask(true)
	gl.ClearColor(background.R, background.G, background.B, background.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh draws mesh with its material. It reports false when the mesh
// could not be drawn (no material, no vertices or a broken program).
func (r *Renderer) DrawMesh(mesh *scene.Mesh, modelView, proj math.Mat4) bool {
	mat := mesh.Material
	if mat == nil {
		return false
	}
	prog := r.ensureProgram(mat)
	if prog.failed {
		return false
	}
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return false
	}

	gl.UseProgram(prog.id)
	gl.UniformMatrix4fv(prog.projectionLoc, 1, false, (*float32)(unsafe.Pointer(&proj[0][0])))
	gl.UniformMatrix4fv(prog.modelViewLoc, 1, false, (*float32)(unsafe.Pointer(&modelView[0][0])))
	gl.Uniform1f(prog.viewportHLoc, float32(r.viewportH))
	r.applyMaterial(prog, mat)

	primitive := uint32(gl.TRIANGLES)
	if mesh.DrawMode == scene.DrawPoints {
		primitive = gl.POINTS
	}

	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(primitive, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(primitive, 0, gpu.VertexCount)
	}
	gl.BindVertexArray(0)
	return true
}

// applyMaterial uploads the material's uniforms and sets face culling and
// depth writes to match it.
func (r *Renderer) applyMaterial(prog *program, mat *scene.Material) {
	for name, u := range mat.Uniforms {
		loc := prog.location(name)
		if loc < 0 {
			continue
		}
		switch u.Kind {
		case scene.UniformFloat:
			gl.Uniform1f(loc, u.Float)
		case scene.UniformColor:
			gl.Uniform3f(loc, u.Color.R, u.Color.G, u.Color.B)
		}
	}

	switch mat.Side {
	case scene.FrontSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case scene.BackSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
	gl.DepthMask(mat.DepthWrite)
}

func (p *program) location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

// ensureProgram compiles mat's shaders on first use. A program that fails
// to build is logged once and skipped afterwards.
func (r *Renderer) ensureProgram(mat *scene.Material) *program {
	if prog, ok := r.programs[mat]; ok {
		return prog
	}

	prog := &program{locs: make(map[string]int32)}
	id, err := newProgram(mat.VertexShader, mat.FragmentShader)
	if err != nil {
		r.log.Error("shader program build failed", "material", mat.Name, "err", err)
		prog.failed = true
	} else {
		prog.id = id
		prog.projectionLoc = prog.location("projectionMatrix")
		prog.modelViewLoc = prog.location("modelViewMatrix")
		prog.viewportHLoc = prog.location("viewportHeight")
		r.log.Debug("shader program built", "material", mat.Name, "program", id)
	}
	r.programs[mat] = prog
	return prog
}

// ReleaseMesh frees GPU buffers for the given mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		if gpu.HasIndices {
			gl.DeleteBuffers(1, &gpu.EBO)
		}
		delete(r.gpuMeshes, mesh)
		mesh.GPUData = nil
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	for mat, prog := range r.programs {
		if !prog.failed {
			gl.DeleteProgram(prog.id)
		}
		delete(r.programs, mat)
	}
}

// ensureUploaded uploads vertex/index data if not already done.
func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount:  int32(len(mesh.Indices)),
		VertexCount: int32(len(mesh.Vertices)),
		HasIndices:  len(mesh.Indices) > 0,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))
	colorOff := int(unsafe.Offsetof(v.Color))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			gl.Ptr(mesh.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", log)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
