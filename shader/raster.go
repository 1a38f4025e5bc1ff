package shader

import (
	"image"

	"sprite-engine/core"
	"sprite-engine/math"
)

// DrawQuad rasterizes one axis-aligned textured quad into dst by running
// the vertex stage on the four corners, interpolating the varyings across
// the covered pixels, and running the fragment stage per pixel. It is the
// executable form of the pipeline contract, used by tests and tooling;
// the GPU path in the opengl package is the production equivalent.
//
// Corners follow the sprite winding: top-left, top-right, bottom-right,
// bottom-left. A pixel is covered when its center falls inside the quad.
// Pixels outside dst are clipped. Shaded values are clamped only at the
// final 8-bit conversion, which stands in for the render-target write.
func DrawQuad(dst *image.RGBA, p Program, quad [4]VertexIn, albedo Sampler) {
	var out [4]VertexOut
	for i, v := range quad {
		out[i] = p.TransformVertex(v)
	}

	bounds := dst.Bounds()
	fbW := float32(bounds.Dx())
	fbH := float32(bounds.Dy())

	// Viewport transform back to framebuffer space. The Y flip here
	// mirrors the one in the vertex stage, so in-canvas input round-trips
	// to its own pixel rectangle.
	var fx, fy [4]float32
	for i, v := range out {
		clip := v.ClipPosition.XY()
		fx[i] = (clip.X + 1) / 2 * fbW
		fy[i] = (1 - clip.Y) / 2 * fbH
	}

	left, right := fx[0], fx[1]
	top, bottom := fy[0], fy[3]

	x0 := clampInt(int(left+0.5), 0, bounds.Dx())
	x1 := clampInt(int(right+0.5), 0, bounds.Dx())
	y0 := clampInt(int(top+0.5), 0, bounds.Dy())
	y1 := clampInt(int(bottom+0.5), 0, bounds.Dy())

	spanX := right - left
	spanY := bottom - top
	if spanX <= 0 || spanY <= 0 {
		return
	}

	for py := y0; py < y1; py++ {
		t := (float32(py) + 0.5 - top) / spanY
		// Varyings along the left and right edges.
		leftColor := out[0].Color.Lerp(out[3].Color, t)
		rightColor := out[1].Color.Lerp(out[2].Color, t)
		leftUV := out[0].TexCoord.Lerp(out[3].TexCoord, t)
		rightUV := out[1].TexCoord.Lerp(out[2].TexCoord, t)

		for px := x0; px < x1; px++ {
			s := (float32(px) + 0.5 - left) / spanX

			color := leftColor.Lerp(rightColor, s)
			uv := leftUV.Lerp(rightUV, s)

			shaded := Shade(color, albedo.Sample(uv))

			i := dst.PixOffset(bounds.Min.X+px, bounds.Min.Y+py)
			pix := dst.Pix[i : i+4 : i+4]
			pix[0] = toByte(shaded.X)
			pix[1] = toByte(shaded.Y)
			pix[2] = toByte(shaded.Z)
			pix[3] = toByte(shaded.W)
		}
	}
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// QuadVertices builds the four corner vertices for a sprite occupying the
// given pixel rectangle, in the same winding and UV assignment the sprite
// batch uploads: full texture across the quad, top-left UV (0,0).
func QuadVertices(x, y, w, h float32, tint core.Color) [4]VertexIn {
	color := tint.Vec4()
	return [4]VertexIn{
		{Position: math.NewVec2(x, y), TexCoord: math.NewVec2(0, 0), Color: color, Index: 0},
		{Position: math.NewVec2(x+w, y), TexCoord: math.NewVec2(1, 0), Color: color, Index: 1},
		{Position: math.NewVec2(x+w, y+h), TexCoord: math.NewVec2(1, 1), Color: color, Index: 2},
		{Position: math.NewVec2(x, y+h), TexCoord: math.NewVec2(0, 1), Color: color, Index: 3},
	}
}
