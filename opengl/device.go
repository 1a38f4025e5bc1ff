// Package opengl is the GPU backend: it owns the OpenGL objects that the
// sprite pipeline needs (program, vertex buffers, textures) and the draw
// path that feeds them. Everything here must run on the goroutine that
// holds the GL context; resources released from elsewhere are queued and
// reclaimed by Device.Maintain.
package opengl

import (
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"sprite-engine/core"
)

// Info describes the OpenGL implementation behind the current context.
type Info struct {
	Version  string
	Vendor   string
	Renderer string
}

func (i Info) String() string {
	return fmt.Sprintf("OpenGL Info:\n    Version: %s\n    Vendor: %s\n    Renderer: %s\n",
		i.Version, i.Vendor, i.Renderer)
}

// Device wraps the OpenGL context.
type Device struct {
	info   Info
	width  int
	height int

	// Pending GL deletes queued from Release calls. Drained by Maintain
	// on the context goroutine.
	mu      sync.Mutex
	pending []func()
}

// NewDevice initialises OpenGL. Must be called after the window context
// is made current.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	info := Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	fmt.Printf("OpenGL version: %s\n", info.Version)

	return &Device{info: info, width: 640, height: 480}, nil
}

func (d *Device) Info() Info {
	return d.info
}

// SetViewport records the canvas size and resizes the GL viewport. The
// size also feeds the resolution uniform on every batch draw.
func (d *Device) SetViewport(width, height int) {
	d.width = width
	d.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) ViewportSize() (int, int) {
	return d.width, d.height
}

// Clear fills the color buffer.
func (d *Device) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// scheduleDestroy queues a GL delete to run on the context goroutine.
func (d *Device) scheduleDestroy(fn func()) {
	d.mu.Lock()
	d.pending = append(d.pending, fn)
	d.mu.Unlock()
}

// Maintain reclaims released GL resources. Call once per frame from the
// context goroutine.
func (d *Device) Maintain() {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}
