package shader

import (
	"image"

	"sprite-engine/math"
)

// Sampler reads texels from an RGBA image the way the GL texture layer is
// configured: nearest filtering, clamp-to-edge wrapping. Coordinates are
// normalized; (0,0) is the top-left texel.
type Sampler struct {
	img *image.RGBA
}

func NewSampler(img *image.RGBA) Sampler {
	return Sampler{img: img}
}

// Sample returns the texel at the given normalized coordinate as floats
// in [0,1]. Out-of-range coordinates clamp to the edge texel.
func (s Sampler) Sample(uv math.Vec2) math.Vec4 {
	bounds := s.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	x := clampInt(int(uv.X*float32(w)), 0, w-1)
	y := clampInt(int(uv.Y*float32(h)), 0, h-1)

	i := s.img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
	pix := s.img.Pix[i : i+4 : i+4]
	return math.Vec4{
		X: float32(pix[0]) / 255,
		Y: float32(pix[1]) / 255,
		Z: float32(pix[2]) / 255,
		W: float32(pix[3]) / 255,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
