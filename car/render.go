package car

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	spriteWidth  = 30
	spriteHeight = 50
)

var sprites = map[color.RGBA]*ebiten.Image{}

// RenderCar draws a top-down car centred on (x, y). heading is in radians;
// zero faces up the screen. w and h are the on-screen size in pixels.
func RenderCar(screen *ebiten.Image, x, y, w, h, heading float64, body color.RGBA) {
	img := carSprite(body)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-spriteWidth/2, -spriteHeight/2)
	op.GeoM.Scale(w/spriteWidth, h/spriteHeight)
	op.GeoM.Rotate(-heading)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// carSprite builds the sprite for a body colour once and caches it
func carSprite(body color.RGBA) *ebiten.Image {
	if img, ok := sprites[body]; ok {
		return img
	}

	img := ebiten.NewImage(spriteWidth, spriteHeight)
	img.Fill(body)

	outline := color.RGBA{20, 20, 20, 255}
	fillRect(img, 0, 0, spriteWidth, 2, outline)
	fillRect(img, 0, spriteHeight-2, spriteWidth, 2, outline)
	fillRect(img, 0, 0, 2, spriteHeight, outline)
	fillRect(img, spriteWidth-2, 0, 2, spriteHeight, outline)

	// windshield at the front
	fillRect(img, spriteWidth*0.2, 0, spriteWidth*0.6, spriteHeight*0.2, color.RGBA{150, 200, 255, 200})

	wheel := color.RGBA{30, 30, 30, 255}
	fillRect(img, 2, 5, 6, 8, wheel)
	fillRect(img, spriteWidth-8, 5, 6, 8, wheel)
	fillRect(img, 2, spriteHeight-13, 6, 8, wheel)
	fillRect(img, spriteWidth-8, spriteHeight-13, 6, 8, wheel)

	sprites[body] = img
	return img
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	r := ebiten.NewImage(int(w), int(h))
	r.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(r, op)
}
