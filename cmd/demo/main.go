package main

import (
	"fmt"
	"time"

	"sprite-engine/core"
	"sprite-engine/opengl"
	"sprite-engine/renderer"
	"sprite-engine/shader"
	"sprite-engine/textures"
)

const tileSize = 64

func main() {
	config := core.DefaultWindowConfig()
	config.Title = "Sprite Engine - Demo"
	config.VSync = false

	window, err := core.NewWindow(config)
	if err != nil {
		fmt.Printf("Failed to create window: %v\n", err)
		return
	}
	defer window.Destroy()

	engine, err := renderer.New(window, shader.BindByLocation)
	if err != nil {
		fmt.Printf("Failed to create engine: %v\n", err)
		return
	}
	defer engine.Destroy()

	fmt.Print(engine.Device().Info())

	sprites, err := buildScene(engine.Device())
	if err != nil {
		fmt.Printf("Failed to build scene: %v\n", err)
		return
	}

	fps := core.NewFpsCounter()
	lastTime := time.Now()

	for !window.ShouldClose() {
		window.PollEvents()
		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		now := time.Now()
		fps.Add(now.Sub(lastTime))
		lastTime = now

		engine.BeginFrame(core.Color{R: 0.1, G: 0.2, B: 0.3, A: 1})

		// Sprites are re-queued every frame; Present drains the batch.
		for _, sprite := range sprites {
			engine.Draw(sprite)
		}

		engine.Present()

		drawn, flushes := engine.Stats()
		window.SetTitle(fmt.Sprintf("Sprite Engine - %d sprites, %d flushes, %.0f fps",
			drawn, flushes, fps.Fps()))
	}
}

// buildScene uploads a checkerboard and a few solid tiles, then lays out
// a full-window grid of sprites. Tinted rows exercise the per-vertex
// color attribute of the explicit-location shader pair.
func buildScene(device *opengl.Device) ([]*opengl.Sprite, error) {
	checker := textures.Checker("checker", tileSize,
		[4]uint8{220, 220, 220, 255}, [4]uint8{90, 90, 90, 255})
	checkerTex, err := uploadImage(device, checker)
	if err != nil {
		return nil, err
	}

	solid := textures.Solid("solid", tileSize, tileSize, [4]uint8{255, 255, 255, 255})
	solidTex, err := uploadImage(device, solid)
	if err != nil {
		return nil, err
	}

	tints := []core.Color{core.ColorWhite, core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow}

	var sprites []*opengl.Sprite
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			sprite := opengl.NewSprite(x*tileSize, y*tileSize, tileSize, tileSize)
			if y%2 == 0 {
				sprite.SetTexture(checkerTex)
			} else {
				sprite.SetTexture(solidTex)
				sprite.Color = tints[x%len(tints)]
			}
			sprites = append(sprites, sprite)
		}
	}
	return sprites, nil
}

func uploadImage(device *opengl.Device, img *textures.Image) (*opengl.Texture, error) {
	tex, err := opengl.NewTexture(device, img.Width, img.Height)
	if err != nil {
		return nil, err
	}
	if err := tex.Upload(img.Bytes()); err != nil {
		return nil, err
	}
	return tex, nil
}
