// Package io imports sprite-sheet assets from glTF files. Art tools that
// already export glTF can describe a sheet directly: images become
// textures, and any node carrying a mesh becomes a named frame whose
// pixel-space bounds come from the mesh's position accessor.
package io

import (
	"bytes"
	"fmt"
	"image"
	gomath "math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	xdraw "golang.org/x/image/draw"

	"sprite-engine/core"
	"sprite-engine/textures"
)

// Sheet is the result of importing one glTF asset.
type Sheet struct {
	Images []*textures.Image
	Frames map[string]core.Rect
}

// LoadSheet opens a .glb or .gltf file and extracts its images and
// frames. Images referenced by external URI are loaded relative to the
// asset's directory; embedded (buffer view) images are decoded in place.
func LoadSheet(path string) (*Sheet, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	return buildSheet(doc, filepath.Dir(path))
}

func buildSheet(doc *gltf.Document, dir string) (*Sheet, error) {
	sheet := &Sheet{Frames: make(map[string]core.Rect)}
	manager := textures.NewManager()

	// ── 1. Images ─────────────────────────────────────────────────────────────
	for i, img := range doc.Images {
		name := img.Name
		if name == "" {
			name = fmt.Sprintf("gltf_img_%d", i)
		}

		if img.BufferView != nil {
			// Binary GLB: image data lives in a buffer view.
			raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
			if err != nil {
				fmt.Printf("gltf: image %d bufferview: %v\n", i, err)
				continue
			}
			tex, err := decodeImageBytes(name, raw)
			if err != nil {
				fmt.Printf("gltf: image %d decode: %v\n", i, err)
				continue
			}
			sheet.Images = append(sheet.Images, tex)
		} else if img.URI != "" && !img.IsEmbeddedResource() {
			// External file referenced by relative URI.
			tex, err := manager.Load(filepath.Join(dir, img.URI))
			if err != nil {
				fmt.Printf("gltf: image %d (%s): %v\n", i, img.URI, err)
				continue
			}
			sheet.Images = append(sheet.Images, tex)
		}
	}

	// ── 2. Frames ─────────────────────────────────────────────────────────────
	// Mesh geometry is only a carrier for rectangle bounds here; the
	// sprite pipeline has no use for the triangles themselves.
	meshBounds := make([]*core.Rect, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			posIdx, ok := prim.Attributes["POSITION"]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				fmt.Printf("gltf: mesh %d positions: %v\n", mi, err)
				continue
			}
			bounds := frameBounds(positions)
			if meshBounds[mi] == nil {
				meshBounds[mi] = &bounds
			} else {
				merged := mergeRects(*meshBounds[mi], bounds)
				meshBounds[mi] = &merged
			}
		}
	}

	for i, gn := range doc.Nodes {
		if gn.Mesh == nil || *gn.Mesh >= len(meshBounds) || meshBounds[*gn.Mesh] == nil {
			continue
		}
		name := gn.Name
		if name == "" {
			name = fmt.Sprintf("node_%d", i)
		}
		sheet.Frames[name] = *meshBounds[*gn.Mesh]
	}

	return sheet, nil
}

// frameBounds computes the pixel-space bounding rectangle of a position
// accessor. X and Y are used as sheet coordinates, Z is ignored. Minima
// round down and maxima round up so the frame never crops a texel.
func frameBounds(positions [][3]float32) core.Rect {
	if len(positions) == 0 {
		return core.Rect{}
	}

	minX, minY := positions[0][0], positions[0][1]
	maxX, maxY := minX, minY
	for _, p := range positions[1:] {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}

	x0 := int(gomath.Floor(float64(minX)))
	y0 := int(gomath.Floor(float64(minY)))
	x1 := int(gomath.Ceil(float64(maxX)))
	y1 := int(gomath.Ceil(float64(maxY)))

	return core.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func mergeRects(a, b core.Rect) core.Rect {
	x0 := minInt(a.X, b.X)
	y0 := minInt(a.Y, b.Y)
	x1 := maxInt(a.X+a.Width, b.X+b.Width)
	y1 := maxInt(a.Y+a.Height, b.Y+b.Height)
	return core.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// decodeImageBytes decodes an embedded image blob to RGBA.
func decodeImageBytes(name string, data []byte) (*textures.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)

	return &textures.Image{
		Name:   name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba,
	}, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
