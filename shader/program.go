package shader

import "sprite-engine/math"

// FallbackTriangle is the fixed-geometry triangle rendered when the debug
// toggle is positive. The points live in normalized [0,1] space and are
// indexed by the per-vertex invocation ordinal; behavior for ordinals
// outside 0..2 is undefined, same as on the GPU.
var FallbackTriangle = [3]math.Vec2{
	{X: 0.5, Y: 1.0},
	{X: 0.0, Y: 0.0},
	{X: 1.0, Y: 0.0},
}

// VertexIn is one vertex-stage invocation's input. Index stands in for
// gl_VertexID and is only consulted on the debug path.
type VertexIn struct {
	Position math.Vec2
	TexCoord math.Vec2
	Color    math.Vec4
	Index    int
}

// VertexOut is what the vertex stage hands to the rasterizer: a clip-space
// position plus the varyings interpolated across the primitive.
type VertexOut struct {
	ClipPosition math.Vec4
	Color        math.Vec4
	TexCoord     math.Vec2
}

// Program is the CPU mirror of one linked shader pair: the uniforms plus
// the variant selection. The zero value is the basic variant with a zero
// resolution, which divides by zero exactly like the GPU would — set
// Resolution before transforming.
type Program struct {
	// Resolution is the canvas size in pixels. Strictly positive by
	// contract; zero or negative values propagate Inf/NaN coordinates
	// with no error, matching the GLSL.
	Resolution math.Vec2

	// DebugTriangle mirrors u_do_const. Positive selects the fixed
	// triangle path. Only honored by the basic variant.
	DebugTriangle int32

	// PerVertexColor selects the extended variant: the color attribute
	// is passed through instead of constant white.
	PerVertexColor bool
}

// TransformVertex runs one vertex-stage invocation.
//
// Primary path: position is divided by the resolution, scaled to [-1,1],
// and Y-flipped so pixel (0,0) maps to clip (-1,1) and pixel
// (resolution.x, resolution.y) maps to clip (1,-1). Input outside the
// canvas produces output outside clip space and is left for the clipper.
//
// Debug path (DebugTriangle > 0): the position attribute is ignored and a
// fallback-table point is shifted by -0.5 on both axes — no resolution
// divide, no Y flip.
func (p Program) TransformVertex(in VertexIn) VertexOut {
	out := VertexOut{
		Color:    math.NewVec4(1, 1, 1, 1),
		TexCoord: in.TexCoord,
	}
	if p.PerVertexColor {
		out.Color = in.Color
	}

	if !p.PerVertexColor && p.DebugTriangle > 0 {
		point := FallbackTriangle[in.Index]
		out.ClipPosition = math.NewVec4(point.X-0.5, point.Y-0.5, 0, 1)
		return out
	}

	pos := in.Position.Div(p.Resolution).Mul(2).Sub(math.NewVec2(1, 1))
	out.ClipPosition = math.NewVec4(pos.X, -pos.Y, 0, 1)
	return out
}

// Shade runs one fragment-stage invocation: the component-wise product of
// the interpolated color and the albedo sample. Nothing is clamped.
func Shade(color, sample math.Vec4) math.Vec4 {
	return color.Modulate(sample)
}
