package opengl

import "sprite-engine/core"

// Sprite is a drawable rectangle with a texture. Sprites without a
// texture are skipped by the batch.
type Sprite struct {
	Pos     [2]int
	Size    [2]int
	Color   core.Color
	texture *Texture
}

func NewSprite(x, y, width, height int) *Sprite {
	return &Sprite{
		Pos:   [2]int{x, y},
		Size:  [2]int{width, height},
		Color: core.ColorWhite,
	}
}

func (s *Sprite) SetTexture(texture *Texture) {
	s.texture = texture
}

func (s *Sprite) Texture() *Texture {
	return s.texture
}
