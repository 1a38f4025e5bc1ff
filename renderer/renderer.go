// Package renderer is the high-level engine: it owns the device, the
// shader program and the sprite batch, and turns per-frame Draw calls
// into batched GPU work.
package renderer

import (
	"fmt"

	"sprite-engine/core"
	"sprite-engine/opengl"
	"sprite-engine/shader"
)

// Engine drives the OpenGL backend for one window.
type Engine struct {
	device  *opengl.Device
	program *opengl.Program
	batch   *opengl.SpriteBatch
	window  *core.Window

	// Per-frame stats (populated during Present)
	lastSprites int
	lastFlushes int
}

// New creates the engine for a window whose GL context is current. The
// binding strategy selects between the name-bound basic shader pair and
// the explicit-location sprite pair; the transform they perform is
// identical.
func New(window *core.Window, binding shader.Binding) (*Engine, error) {
	device, err := opengl.NewDevice()
	if err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	program, err := opengl.NewProgram(device, binding)
	if err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}

	device.SetViewport(window.Width, window.Height)

	fmt.Println("Sprite engine initialized (OpenGL)")
	return &Engine{
		device:  device,
		program: program,
		batch:   opengl.NewSpriteBatch(device, program),
		window:  window,
	}, nil
}

// Device exposes the GL device for texture creation.
func (e *Engine) Device() *opengl.Device {
	return e.device
}

// BeginFrame reclaims released resources, follows window resizes and
// clears the canvas.
func (e *Engine) BeginFrame(clear core.Color) {
	e.device.Maintain()

	if w, h := e.device.ViewportSize(); w != e.window.Width || h != e.window.Height {
		e.device.SetViewport(e.window.Width, e.window.Height)
	}

	e.device.Clear(clear)
	e.lastSprites = 0
}

// Draw queues a sprite for this frame.
func (e *Engine) Draw(sprite *opengl.Sprite) {
	e.batch.Add(sprite)
	e.lastSprites++
}

// Present flushes the batch and swaps buffers.
func (e *Engine) Present() {
	e.batch.Draw(e.device, e.program)
	e.lastFlushes = e.batch.Flushes()
	e.window.SwapBuffers()
}

// Stats returns the sprite and flush counts of the last frame.
func (e *Engine) Stats() (sprites, flushes int) {
	return e.lastSprites, e.lastFlushes
}

// Destroy releases GPU resources and drains the destroy queue.
func (e *Engine) Destroy() {
	e.batch.Release()
	e.program.Release()
	e.device.Maintain()
}
