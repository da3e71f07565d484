package game

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// vergeTexture paints a tileable patch of roadside grass and bushes
func vergeTexture(width, height int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rng := rand.New(rand.NewSource(seed))

	base := color.RGBA{30, 100, 30, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, base)
		}
	}
	for i := 0; i < width*height/10; i++ {
		shade := uint8(80 + rng.Intn(60))
		img.SetRGBA(rng.Intn(width), rng.Intn(height), color.RGBA{30, shade, 30, 255})
	}

	for y := 0; y < height; y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)
		for x := 0; x < width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			drawBush(img, x+rng.Intn(10)-5, y+rng.Intn(10)-5, rng)
		}
	}
	return img
}

// drawBush draws a round bush, wrapping vertically so the texture tiles
func drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	b := img.Bounds()
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			px := x + dx
			py := ((y+dy)%b.Dy() + b.Dy()) % b.Dy()
			if px >= 0 && px < b.Dx() {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

// drawVerge tiles the verge texture down the screen, scrolled with the player
func drawVerge(screen, tex *ebiten.Image, scroll float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()

	offset := math.Mod(scroll, float64(th))
	if offset < 0 {
		offset += float64(th)
	}
	for y := offset - float64(th); y < float64(height); y += float64(th) {
		for x := 0; x < width; x += tw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), y)
			screen.DrawImage(tex, op)
		}
	}
}
