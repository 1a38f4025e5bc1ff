// Package textures loads and generates CPU-side RGBA images and caches
// them by name. Upload to the GPU happens in the opengl package; nothing
// here touches the context, so the package is usable from any goroutine
// and fully testable without a display.
package textures

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Image is decoded, ready-to-upload RGBA pixel data.
type Image struct {
	Name   string
	Width  int
	Height int
	Pixels *image.RGBA
	Path   string // empty for procedural images
}

// Bytes returns the raw RGBA pixel data in upload order.
func (i *Image) Bytes() []byte {
	return i.Pixels.Pix
}

// Manager caches loaded images by path.
type Manager struct {
	images map[string]*Image
	mu     sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{images: make(map[string]*Image)}
}

// Load reads an image file (PNG, JPEG or BMP), returning the cached copy
// if the path was loaded before.
func (m *Manager) Load(path string) (*Image, error) {
	m.mu.RLock()
	if img, ok := m.images[path]; ok {
		m.mu.RUnlock()
		return img, nil
	}
	m.mu.RUnlock()

	img, err := loadImageFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	img.Path = path

	m.mu.Lock()
	m.images[path] = img
	m.mu.Unlock()

	return img, nil
}

// GetOrDefault returns the image at path, or the default white image when
// the path is empty or fails to load.
func (m *Manager) GetOrDefault(path string) *Image {
	if path == "" {
		return m.Default()
	}
	img, err := m.Load(path)
	if err != nil {
		fmt.Printf("Warning: failed to load texture %s: %v\n", path, err)
		return m.Default()
	}
	return img
}

// Default returns a 1x1 opaque white image, the identity tint for the
// fragment stage.
func (m *Manager) Default() *Image {
	const key = "__default_white__"
	m.mu.RLock()
	if img, ok := m.images[key]; ok {
		m.mu.RUnlock()
		return img
	}
	m.mu.RUnlock()

	img := Solid(key, 1, 1, [4]uint8{255, 255, 255, 255})

	m.mu.Lock()
	m.images[key] = img
	m.mu.Unlock()

	return img
}

// Solid generates a single-color image.
func Solid(name string, width, height int, rgba [4]uint8) *Image {
	pixels := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(pixels.Pix); i += 4 {
		copy(pixels.Pix[i:i+4], rgba[:])
	}
	return &Image{Name: name, Width: width, Height: height, Pixels: pixels}
}

// Checker generates a checkerboard pattern, 8 blocks per side.
func Checker(name string, size int, c1, c2 [4]uint8) *Image {
	pixels := image.NewRGBA(image.Rect(0, 0, size, size))
	blockSize := size / 8
	if blockSize < 1 {
		blockSize = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := pixels.PixOffset(x, y)
			c := c1
			if ((x/blockSize)+(y/blockSize))%2 != 0 {
				c = c2
			}
			copy(pixels.Pix[i:i+4], c[:])
		}
	}

	return &Image{Name: name, Width: size, Height: size, Pixels: pixels}
}

// Resize scales an RGBA image to the given dimensions with
// nearest-neighbor sampling, matching the pipeline's texture filter.
func Resize(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// loadImageFile reads an image file and converts it to RGBA pixel data.
func loadImageFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)

	return &Image{
		Name:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba,
	}, nil
}
