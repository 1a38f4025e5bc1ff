package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"sprite-engine/shader"
)

// Program is a linked vertex/fragment pair with its bindings resolved
// according to the chosen strategy. With shader.BindByLocation the
// locations are the fixed indices the sources declare; with
// shader.BindByName they are looked up after linking.
type Program struct {
	id      uint32
	binding shader.Binding
	device  *Device

	resolutionLoc int32
	debugLoc      int32 // -1 for the explicit variant, which has no toggle
	albedoLoc     int32

	positionAttr int32
	texcoordAttr int32
	colorAttr    int32 // -1 for the basic variant, which has no color attribute
}

// NewProgram compiles and links the shader pair for the given binding
// strategy. The GL context must be current.
func NewProgram(device *Device, binding shader.Binding) (*Program, error) {
	vertSrc, fragSrc := shader.Sources(binding)

	id, err := newProgram(vertSrc+"\x00", fragSrc+"\x00")
	if err != nil {
		return nil, fmt.Errorf("shader compile: %w", err)
	}

	p := &Program{id: id, binding: binding, device: device}

	if binding == shader.BindByLocation {
		p.resolutionLoc = shader.LocResolution
		p.albedoLoc = shader.LocAlbedo
		p.debugLoc = -1
		p.positionAttr = shader.LocPosition
		p.texcoordAttr = shader.LocTexCoord
		p.colorAttr = shader.LocColor
	} else {
		p.resolutionLoc = gl.GetUniformLocation(id, gl.Str(shader.NameResolution+"\x00"))
		p.debugLoc = gl.GetUniformLocation(id, gl.Str(shader.NameDebugConst+"\x00"))
		p.albedoLoc = gl.GetUniformLocation(id, gl.Str(shader.NameAlbedo+"\x00"))
		p.positionAttr = gl.GetAttribLocation(id, gl.Str(shader.NamePosition+"\x00"))
		p.texcoordAttr = gl.GetAttribLocation(id, gl.Str(shader.NameTexCoord+"\x00"))
		p.colorAttr = gl.GetAttribLocation(id, gl.Str(shader.NameColor+"\x00"))
	}

	return p, nil
}

func (p *Program) Binding() shader.Binding {
	return p.binding
}

// Use makes the program current and points the albedo sampler at texture
// unit 0, where the batch binds sprite textures.
func (p *Program) Use() {
	gl.UseProgram(p.id)
	if p.albedoLoc >= 0 {
		gl.Uniform1i(p.albedoLoc, 0)
	}
}

// SetResolution updates the canvas-size uniform. The program must be
// current.
func (p *Program) SetResolution(width, height float32) {
	gl.Uniform2f(p.resolutionLoc, width, height)
}

// SetDebugTriangle flips the fixed-triangle fallback. Only the basic
// variant carries the toggle; on the sprite variant this is a no-op.
func (p *Program) SetDebugTriangle(on bool) {
	if p.debugLoc < 0 {
		return
	}
	var v int32
	if on {
		v = 1
	}
	gl.Uniform1i(p.debugLoc, v)
}

// AttribLocations returns the position/uv/color attribute locations the
// vertex buffer layout must match. A location of -1 means the attribute
// is not present in this variant.
func (p *Program) AttribLocations() (position, texcoord, color int32) {
	return p.positionAttr, p.texcoordAttr, p.colorAttr
}

// Release queues the program for deletion on the context goroutine.
func (p *Program) Release() {
	id := p.id
	p.device.scheduleDestroy(func() {
		gl.DeleteProgram(id)
	})
	p.id = 0
}

// ── shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	// Once linked, the stage objects can go.
	gl.DetachShader(prog, vert)
	gl.DetachShader(prog, frag)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return sh, nil
}
