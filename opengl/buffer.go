package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"sprite-engine/core"
)

// VertexBuffer is a VAO with interleaved core.Vertex data and uint16
// element indices. The attribute layout is taken from the program so that
// both binding strategies stay in sync with the buffer.
type VertexBuffer struct {
	vao    uint32
	vbo    uint32
	ebo    uint32
	device *Device
}

// NewVertexBuffer uploads the given vertices and indices and records the
// attribute layout. The backing stores are sized by this initial upload;
// Update may rewrite them but not grow them.
func NewVertexBuffer(device *Device, prog *Program, vertices []core.Vertex, indices []uint16) *VertexBuffer {
	b := &VertexBuffer{device: device}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(vertices)*int(unsafe.Sizeof(core.Vertex{})),
		gl.Ptr(vertices),
		gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	uvOff := int(unsafe.Offsetof(v.UV))
	colorOff := int(unsafe.Offsetof(v.Color))

	posAttr, uvAttr, colorAttr := prog.AttribLocations()

	// Vertex data is interleaved; offsets come straight from the struct.
	gl.EnableVertexAttribArray(uint32(posAttr))
	gl.VertexAttribPointer(uint32(posAttr), 2, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(uint32(uvAttr))
	gl.VertexAttribPointer(uint32(uvAttr), 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	// The basic shader variant has no color attribute.
	if colorAttr >= 0 {
		gl.EnableVertexAttribArray(uint32(colorAttr))
		gl.VertexAttribPointer(uint32(colorAttr), 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))
	}

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(indices)*2,
		gl.Ptr(indices),
		gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return b
}

func (b *VertexBuffer) Bind() {
	gl.BindVertexArray(b.vao)
}

func (b *VertexBuffer) Unbind() {
	gl.BindVertexArray(0)
}

// Update rewrites the front of both stores with fresh data. The slices
// must not exceed the sizes given to NewVertexBuffer.
func (b *VertexBuffer) Update(vertices []core.Vertex, indices []uint16) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0,
		len(vertices)*int(unsafe.Sizeof(core.Vertex{})),
		gl.Ptr(vertices))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0,
		len(indices)*2,
		gl.Ptr(indices))
}

// Draw issues an indexed draw for the given number of elements. The VAO
// must be bound and a program current.
func (b *VertexBuffer) Draw(indexCount int32) {
	gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_SHORT, nil)
}

// Release queues the GL objects for deletion on the context goroutine.
func (b *VertexBuffer) Release() {
	vao, vbo, ebo := b.vao, b.vbo, b.ebo
	b.device.scheduleDestroy(func() {
		gl.DeleteVertexArrays(1, &vao)
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteBuffers(1, &ebo)
	})
	b.vao, b.vbo, b.ebo = 0, 0, 0
}
