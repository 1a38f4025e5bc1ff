package shader

import (
	"image"
	"image/color"
	"testing"

	"sprite-engine/core"
	"sprite-engine/math"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSamplerNearest(t *testing.T) {
	// 2x2 texture: red, green / blue, white.
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	s := NewSampler(img)

	tests := []struct {
		uv       math.Vec2
		expected math.Vec4
	}{
		{math.NewVec2(0.25, 0.25), math.NewVec4(1, 0, 0, 1)},
		{math.NewVec2(0.75, 0.25), math.NewVec4(0, 1, 0, 1)},
		{math.NewVec2(0.25, 0.75), math.NewVec4(0, 0, 1, 1)},
		{math.NewVec2(0.75, 0.75), math.NewVec4(1, 1, 1, 1)},
	}

	for _, tt := range tests {
		got := s.Sample(tt.uv)
		if got != tt.expected {
			t.Errorf("uv %v: expected %v, got %v", tt.uv, tt.expected, got)
		}
	}
}

func TestSamplerClampToEdge(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	s := NewSampler(img)

	// Out-of-range coordinates clamp to the edge texel.
	if got := s.Sample(math.NewVec2(-0.5, 0.5)); got != math.NewVec4(1, 0, 0, 1) {
		t.Errorf("negative u: expected edge red, got %v", got)
	}
	if got := s.Sample(math.NewVec2(1.5, 0.5)); got != math.NewVec4(0, 1, 0, 1) {
		t.Errorf("u beyond 1: expected edge green, got %v", got)
	}
}

func TestDrawQuadFullCanvas(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	albedo := NewSampler(solidImage(1, 1, color.RGBA{51, 102, 153, 204}))

	p := Program{Resolution: math.NewVec2(4, 4), PerVertexColor: true}
	DrawQuad(dst, p, QuadVertices(0, 0, 4, 4, core.ColorWhite), albedo)

	// Every pixel carries the identity-tinted sample.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := dst.RGBAAt(x, y)
			if got != (color.RGBA{51, 102, 153, 204}) {
				t.Fatalf("pixel (%d,%d): expected sample color, got %v", x, y, got)
			}
		}
	}
}

func TestDrawQuadTint(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	albedo := NewSampler(solidImage(1, 1, color.RGBA{255, 255, 255, 255}))

	p := Program{Resolution: math.NewVec2(2, 2), PerVertexColor: true}
	DrawQuad(dst, p, QuadVertices(0, 0, 2, 2, core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}), albedo)

	got := dst.RGBAAt(0, 0)
	if got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("expected half-gray tint, got %v", got)
	}
}

func TestDrawQuadTopLeftPlacement(t *testing.T) {
	// A quad covering the top-left quarter of the canvas must land in the
	// top-left of the image: the Y flip in the vertex stage and the flip
	// back in the viewport transform cancel out.
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	albedo := NewSampler(solidImage(1, 1, color.RGBA{255, 255, 255, 255}))

	p := Program{Resolution: math.NewVec2(4, 4), PerVertexColor: true}
	DrawQuad(dst, p, QuadVertices(0, 0, 2, 2, core.ColorWhite), albedo)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			covered := x < 2 && y < 2
			got := dst.RGBAAt(x, y)
			if covered && got.A == 0 {
				t.Errorf("pixel (%d,%d): expected covered", x, y)
			}
			if !covered && got.A != 0 {
				t.Errorf("pixel (%d,%d): expected untouched", x, y)
			}
		}
	}
}

func TestDrawQuadOffCanvasClipped(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	albedo := NewSampler(solidImage(1, 1, color.RGBA{255, 255, 255, 255}))

	// Quad hangs off the right and bottom edges; must not panic and must
	// only write in-bounds pixels.
	p := Program{Resolution: math.NewVec2(4, 4), PerVertexColor: true}
	DrawQuad(dst, p, QuadVertices(2, 2, 4, 4, core.ColorWhite), albedo)

	if dst.RGBAAt(1, 1).A != 0 {
		t.Error("pixel (1,1): expected untouched")
	}
	if dst.RGBAAt(3, 3).A == 0 {
		t.Error("pixel (3,3): expected covered")
	}
}

func TestDrawQuadColorInterpolation(t *testing.T) {
	// Left edge black, right edge white: the varying must ramp across
	// the quad like hardware interpolation would.
	dst := image.NewRGBA(image.Rect(0, 0, 8, 1))
	albedo := NewSampler(solidImage(1, 1, color.RGBA{255, 255, 255, 255}))

	quad := QuadVertices(0, 0, 8, 1, core.ColorWhite)
	quad[0].Color = math.NewVec4(0, 0, 0, 1)
	quad[3].Color = math.NewVec4(0, 0, 0, 1)

	p := Program{Resolution: math.NewVec2(8, 1), PerVertexColor: true}
	DrawQuad(dst, p, quad, albedo)

	prev := dst.RGBAAt(0, 0).R
	for x := 1; x < 8; x++ {
		cur := dst.RGBAAt(x, 0).R
		if cur <= prev {
			t.Fatalf("pixel %d: expected increasing ramp, got %d after %d", x, cur, prev)
		}
		prev = cur
	}
}
