package textures

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSolid(t *testing.T) {
	img := Solid("red", 4, 2, [4]uint8{255, 0, 0, 255})
	if img.Width != 4 || img.Height != 2 {
		t.Fatalf("expected 4x2, got %dx%d", img.Width, img.Height)
	}
	if len(img.Bytes()) != 4*2*4 {
		t.Fatalf("expected %d bytes, got %d", 4*2*4, len(img.Bytes()))
	}
	for x := 0; x < 4; x++ {
		c := img.Pixels.RGBAAt(x, 1)
		if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
			t.Errorf("texel (%d,1): expected red, got %v", x, c)
		}
	}
}

func TestChecker(t *testing.T) {
	img := Checker("check", 16, [4]uint8{255, 255, 255, 255}, [4]uint8{0, 0, 0, 255})

	// Block size is 2: (0,0) and (2,0) sit in different blocks.
	a := img.Pixels.RGBAAt(0, 0)
	b := img.Pixels.RGBAAt(2, 0)
	if a == b {
		t.Errorf("expected alternating blocks, both %v", a)
	}
	// Diagonal neighbor is the same color again.
	c := img.Pixels.RGBAAt(2, 2)
	if a != c {
		t.Errorf("expected diagonal block to match, got %v and %v", a, c)
	}
}

func TestResize(t *testing.T) {
	src := Solid("src", 8, 8, [4]uint8{10, 20, 30, 255})
	dst := Resize(src.Pixels, 4, 2)

	bounds := dst.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 2 {
		t.Fatalf("expected 4x2, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if c := dst.RGBAAt(2, 1); c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("expected source color preserved, got %v", c)
	}
}

func TestManagerCaching(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")

	img := Solid("sprite", 8, 8, [4]uint8{0, 255, 0, 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img.Pixels); err != nil {
		t.Fatal(err)
	}
	f.Close()

	m := NewManager()
	first, err := m.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first.Width != 8 || first.Height != 8 {
		t.Errorf("expected 8x8, got %dx%d", first.Width, first.Height)
	}
	if c := first.Pixels.RGBAAt(3, 3); c.G != 255 {
		t.Errorf("expected green pixel, got %v", c)
	}

	second, err := m.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first != second {
		t.Error("expected cached image on second load")
	}
}

func TestManagerGetOrDefault(t *testing.T) {
	m := NewManager()

	img := m.GetOrDefault("")
	if img.Width != 1 || img.Height != 1 {
		t.Fatalf("expected 1x1 default, got %dx%d", img.Width, img.Height)
	}
	if c := img.Pixels.RGBAAt(0, 0); c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
		t.Errorf("expected opaque white, got %v", c)
	}

	// Missing file falls back to the default as well.
	if m.GetOrDefault("/does/not/exist.png") != img {
		t.Error("expected default image for missing file")
	}
}
