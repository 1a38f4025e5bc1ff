package opengl

import (
	"errors"
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"sprite-engine/core"
)

var (
	ErrInvalidTextureSize = errors.New("texture dimensions must be non-zero")
	ErrInvalidImageData   = errors.New("image data does not match texture storage size")
)

// Texture is a handle to RGBA8 storage in video memory. Sampling state is
// fixed at creation: nearest filtering, clamp-to-edge wrapping — the same
// parameters the CPU-side reference sampler implements.
type Texture struct {
	id     uint32
	width  int
	height int
	device *Device
}

// NewTexture allocates empty texture storage. Pixel data can be uploaded
// later with Upload or UploadSub.
func NewTexture(device *Device, width, height int) (*Texture, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidTextureSize)
	}

	t := &Texture{width: width, height: height, device: device}

	gl.GenTextures(1, &t.id)

	restore := saveTextureBinding()
	defer restore()

	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		nil, // data uploaded later
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return t, nil
}

func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// DataLen returns the number of bytes the texture's storage holds, four
// per texel.
func (t *Texture) DataLen() int {
	return t.width * t.height * 4
}

// Upload replaces the full texture contents with RGBA pixel data.
func (t *Texture) Upload(pixels []byte) error {
	if len(pixels) != t.DataLen() {
		return fmt.Errorf("expected %d bytes, got %d: %w", t.DataLen(), len(pixels), ErrInvalidImageData)
	}
	return t.UploadSub(core.Rect{Width: t.width, Height: t.height}, pixels)
}

// UploadSub replaces a sub-rectangle of the texture with RGBA pixel data.
// The binding current before the call is restored afterwards, so editing
// a texture does not disturb a texture bound for drawing.
func (t *Texture) UploadSub(region core.Rect, pixels []byte) error {
	if len(pixels) != region.Width*region.Height*4 {
		return fmt.Errorf("expected %d bytes, got %d: %w",
			region.Width*region.Height*4, len(pixels), ErrInvalidImageData)
	}

	restore := saveTextureBinding()
	defer restore()

	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexSubImage2D(
		gl.TEXTURE_2D,
		0,
		int32(region.X),
		int32(region.Y),
		int32(region.Width),
		int32(region.Height),
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)
	return nil
}

// Bind makes the texture current on texture unit 0, where the sprite
// shader samples it.
func (t *Texture) Bind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Release queues the texture for deletion on the context goroutine.
func (t *Texture) Release() {
	id := t.id
	t.device.scheduleDestroy(func() {
		gl.DeleteTextures(1, &id)
	})
	t.id = 0
}

// saveTextureBinding captures the current 2D texture binding and returns
// a func that restores it.
func saveTextureBinding() func() {
	var prev int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &prev)
	return func() {
		gl.BindTexture(gl.TEXTURE_2D, uint32(prev))
	}
}
