package textures

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"sprite-engine/core"
)

// DefaultAtlasDim is the default dimension, width and height, of each
// atlas page in texels. OpenGL 4 guarantees support for at least 1024.
const DefaultAtlasDim = 1024

var ErrInvalidImageSize = errors.New("image dimensions must be non-zero")

// Frame locates a packed image inside an atlas page.
type Frame struct {
	Page   int
	Region core.Rect
}

// TexturePack packs many small images into a small number of large atlas
// pages so the sprite batch can draw them without texture switches. Pages
// are plain RGBA images; the host uploads them with opengl.Texture.
type TexturePack struct {
	pages   []*image.RGBA
	packers []*packer
	dim     int
	padding int
}

// NewTexturePack creates an atlas with DefaultAtlasDim pages.
func NewTexturePack() *TexturePack {
	return NewTexturePackSize(DefaultAtlasDim)
}

func NewTexturePackSize(dim int) *TexturePack {
	return &TexturePack{dim: dim, padding: 1}
}

// AddImage copies the image into the first page with room, opening a new
// page when none has any. Images too large for a page are scaled down to
// fit with nearest-neighbor sampling. The returned frame excludes the
// 1-texel padding that separates neighbors, so sampling inside it never
// bleeds into another sprite.
func (tp *TexturePack) AddImage(img *Image) (Frame, error) {
	if img.Width == 0 || img.Height == 0 {
		return Frame{}, fmt.Errorf("%dx%d: %w", img.Width, img.Height, ErrInvalidImageSize)
	}

	pixels := img.Pixels
	width, height := img.Width, img.Height

	// Scale down anything that cannot fit a page.
	maxDim := tp.dim - tp.padding*2
	if width > maxDim || height > maxDim {
		scale := float64(maxDim) / float64(width)
		if s := float64(maxDim) / float64(height); s < scale {
			scale = s
		}
		width = int(float64(width) * scale)
		height = int(float64(height) * scale)
		pixels = Resize(pixels, width, height)
	}

	paddedWidth := width + tp.padding*2
	paddedHeight := height + tp.padding*2

	// Look for a page with space.
	for i, p := range tp.packers {
		if x, y, ok := p.tryInsert(paddedWidth, paddedHeight); ok {
			return tp.place(i, x, y, width, height, pixels), nil
		}
	}

	// No room anywhere: open a fresh page. The insert cannot fail, the
	// image was already scaled to fit.
	tp.pages = append(tp.pages, image.NewRGBA(image.Rect(0, 0, tp.dim, tp.dim)))
	tp.packers = append(tp.packers, newPacker(tp.dim, tp.dim))

	page := len(tp.packers) - 1
	x, y, ok := tp.packers[page].tryInsert(paddedWidth, paddedHeight)
	if !ok {
		return Frame{}, fmt.Errorf("atlas insert failed on empty %dx%d page", tp.dim, tp.dim)
	}
	return tp.place(page, x, y, width, height, pixels), nil
}

func (tp *TexturePack) place(page, x, y, width, height int, pixels *image.RGBA) Frame {
	region := core.Rect{
		X:      x + tp.padding,
		Y:      y + tp.padding,
		Width:  width,
		Height: height,
	}
	dst := tp.pages[page]
	target := image.Rect(region.X, region.Y, region.X+width, region.Y+height)
	xdraw.Draw(dst, target, pixels, pixels.Bounds().Min, xdraw.Src)
	return Frame{Page: page, Region: region}
}

// Pages returns the atlas pages for upload.
func (tp *TexturePack) Pages() []*image.RGBA {
	return tp.pages
}

// UV returns the frame's normalized texture-coordinate bounds within its
// page, ready for the texcoord attribute.
func (tp *TexturePack) UV(f Frame) (u0, v0, u1, v1 float32) {
	d := float32(tp.dim)
	return float32(f.Region.X) / d,
		float32(f.Region.Y) / d,
		float32(f.Region.X+f.Region.Width) / d,
		float32(f.Region.Y+f.Region.Height) / d
}

// ── rectangle bin packer ──────────────────────────────────────────────────────

// packer is a guillotine rect packer over an implicit binary tree stored
// in a slice. Claiming a leaf splits the remaining area into a rectangle
// to the right and a rectangle below; the right branch is searched first.
type packer struct {
	nodes     []rectNode
	available int
}

type nodeKind int

const (
	// Slice slot reserved for children of a branch that has not been
	// split yet.
	nodeVacant nodeKind = iota

	// Leaf too small to hold anything.
	nodeClosed

	// Free rectangle, can accept an image and split further.
	nodeLeaf

	// Occupied rectangle with children at 2i+1 (right) and 2i+2 (bottom).
	nodeBranch
)

type rectNode struct {
	kind nodeKind
	rect core.Rect
}

func newPacker(width, height int) *packer {
	// The root leaf covers the entire page.
	return &packer{
		nodes: []rectNode{{
			kind: nodeLeaf,
			rect: core.Rect{Width: width, Height: height},
		}},
		available: 1,
	}
}

func (p *packer) hasSpace() bool {
	return p.available > 0
}

// tryInsert claims a width x height slot and returns its position.
func (p *packer) tryInsert(width, height int) (x, y int, ok bool) {
	if len(p.nodes) == 0 {
		return 0, 0, false
	}
	return p.insert(width, height, 0)
}

func (p *packer) insert(width, height, index int) (x, y int, ok bool) {
	node := p.nodes[index]
	switch node.kind {
	case nodeVacant:
		panic("packer: recursion followed leaf to non-existing node")

	case nodeClosed:
		return 0, 0, false

	case nodeLeaf:
		if width > node.rect.Width || height > node.rect.Height {
			return 0, 0, false
		}

		slotX, slotY := node.rect.X, node.rect.Y

		// Claim the node and split the remainder.
		p.nodes[index] = rectNode{
			kind: nodeBranch,
			rect: core.Rect{X: slotX, Y: slotY, Width: width, Height: height},
		}

		right := index*2 + 1
		bottom := index*2 + 2
		for bottom >= len(p.nodes) {
			p.nodes = append(p.nodes, rectNode{kind: nodeVacant})
		}

		p.setChild(right, core.Rect{
			X:      slotX + width,
			Y:      slotY,
			Width:  node.rect.Width - width,
			Height: height,
		})
		p.setChild(bottom, core.Rect{
			X:      slotX,
			Y:      slotY + height,
			Width:  node.rect.Width,
			Height: node.rect.Height - height,
		})

		p.available--
		return slotX, slotY, true

	case nodeBranch:
		// Right branch takes precedence, bottom is the fallback.
		if x, y, ok = p.insert(width, height, index*2+1); ok {
			return x, y, true
		}
		return p.insert(width, height, index*2+2)
	}

	return 0, 0, false
}

func (p *packer) setChild(index int, rect core.Rect) {
	if rect.Width > 0 && rect.Height > 0 {
		p.nodes[index] = rectNode{kind: nodeLeaf, rect: rect}
		p.available++
	} else {
		p.nodes[index] = rectNode{kind: nodeClosed}
	}
}
