package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"sprite-engine/core"
	"sprite-engine/math"
)

// BatchSize is the number of sprites per GPU upload. The vertex store is
// sized for it at creation; larger frames simply flush more than once.
const BatchSize = 2048

type batchItem struct {
	pos     [2]float32
	size    [2]float32
	color   core.Color
	texture *Texture
}

// SpriteBatch accumulates sprites and draws them with as few GL calls as
// it can manage: one flush per run of sprites sharing a texture, plus one
// whenever the batch fills.
type SpriteBatch struct {
	items    []batchItem
	vertices []core.Vertex
	indices  []uint16
	buffer   *VertexBuffer

	// Flushes during the last Draw, for frame stats.
	lastFlushes int
}

// NewSpriteBatch allocates GPU stores big enough for BatchSize sprites
// (4 vertices, 6 indices each).
func NewSpriteBatch(device *Device, prog *Program) *SpriteBatch {
	vertices := make([]core.Vertex, BatchSize*4)
	indices := make([]uint16, 0, BatchSize*6)
	for i := 0; i < BatchSize; i++ {
		base := uint16(i * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &SpriteBatch{
		items:    make([]batchItem, 0, BatchSize),
		vertices: make([]core.Vertex, 0, BatchSize*4),
		indices:  make([]uint16, 0, BatchSize*6),
		buffer:   NewVertexBuffer(device, prog, vertices, indices),
	}
}

// Add queues a sprite for the next Draw. Sprites must be re-added every
// frame; Draw drains the queue. Textureless sprites are dropped here.
func (b *SpriteBatch) Add(sprite *Sprite) {
	if sprite.texture == nil {
		return
	}
	b.items = append(b.items, batchItem{
		pos:     [2]float32{float32(sprite.Pos[0]), float32(sprite.Pos[1])},
		size:    [2]float32{float32(sprite.Size[0]), float32(sprite.Size[1])},
		color:   sprite.Color,
		texture: sprite.texture,
	})
}

// Draw renders all queued sprites. It owns the resolution uniform: the
// device's viewport size is uploaded once per call, so the vertex stage
// maps pixel coordinates onto the current canvas.
func (b *SpriteBatch) Draw(device *Device, prog *Program) {
	b.lastFlushes = 0

	if len(b.items) == 0 {
		return
	}

	width, height := device.ViewportSize()

	prog.Use()
	prog.SetResolution(float32(width), float32(height))
	b.buffer.Bind()

	batchCount := 0
	var lastTexture *Texture

	for _, item := range b.items {
		if batchCount >= BatchSize {
			b.flush()
			batchCount = 0
		}

		// A new texture forces a flush: the shader samples a single
		// bound albedo on unit 0.
		if item.texture != lastTexture {
			b.flush()
			batchCount = 0
			lastTexture = item.texture
			item.texture.Bind()
		}

		x, y := item.pos[0], item.pos[1]
		w, h := item.size[0], item.size[1]
		color := item.color

		b.vertices = append(b.vertices,
			core.Vertex{Position: math.NewVec2(x, y), UV: math.NewVec2(0, 0), Color: color},
			core.Vertex{Position: math.NewVec2(x+w, y), UV: math.NewVec2(1, 0), Color: color},
			core.Vertex{Position: math.NewVec2(x+w, y+h), UV: math.NewVec2(1, 1), Color: color},
			core.Vertex{Position: math.NewVec2(x, y+h), UV: math.NewVec2(0, 1), Color: color},
		)

		base := uint16(batchCount * 4)
		b.indices = append(b.indices, base, base+1, base+2, base, base+2, base+3)

		batchCount++
	}

	// Flush whatever didn't reach the threshold.
	b.flush()

	b.items = b.items[:0]

	gl.BindTexture(gl.TEXTURE_2D, 0)
	b.buffer.Unbind()
	gl.UseProgram(0)
}

// Flushes reports how many GPU uploads the last Draw needed.
func (b *SpriteBatch) Flushes() int {
	return b.lastFlushes
}

// flush uploads the accumulated vertices and issues the draw call.
func (b *SpriteBatch) flush() {
	if len(b.vertices) == 0 {
		return
	}

	b.buffer.Update(b.vertices, b.indices)
	b.buffer.Draw(int32(len(b.indices)))
	b.lastFlushes++

	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// Release frees the GPU stores.
func (b *SpriteBatch) Release() {
	b.buffer.Release()
}
