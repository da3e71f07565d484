// Package ui draws the heads-up display and the popups shown around a run.
package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/turnpike/models"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var face = text.NewGoXFace(bitmapfont.Face)

var pixel *ebiten.Image

// FillRect draws a solid rectangle
func FillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel, op)
}

// HealthBarWidth is the filled width of a bar of full width for health
func HealthBarWidth(health, full float64) float64 {
	health = max(0, min(models.MaxHealth, health))
	return full * health / models.MaxHealth
}

// healthColor fades from green to red as health drops
func healthColor(health float64) color.RGBA {
	f := HealthBarWidth(health, 1)
	return color.RGBA{uint8(255 * (1 - f)), uint8(200 * f), 40, 255}
}

// HUD is the in-run overlay: health bar, elapsed clock, speed and distance
type HUD struct {
	X, Y  float64
	Width float64
}

// NewHUD places the HUD in the top-left corner
func NewHUD() *HUD {
	return &HUD{X: 16, Y: 16, Width: 200}
}

// Draw renders the HUD for the current state
func (h *HUD) Draw(screen *ebiten.Image, state *models.GameState, player *models.PlayerVehicle) {
	const barHeight = 14

	FillRect(screen, h.X-2, h.Y-2, h.Width+4, barHeight+4, color.RGBA{20, 20, 20, 200})
	FillRect(screen, h.X, h.Y, HealthBarWidth(state.Health(), h.Width), barHeight, healthColor(state.Health()))

	drawText(screen, fmt.Sprintf("HEALTH %3.0f", state.Health()), h.X, h.Y+barHeight+6, 1, color.White)
	drawText(screen, "TIME "+FormatElapsed(state.Elapsed()), h.X, h.Y+barHeight+22, 1, color.White)
	drawText(screen, fmt.Sprintf("SPEED %.2f", player.Velocity.ZSpeed), h.X, h.Y+barHeight+38, 1, color.White)
	drawText(screen, fmt.Sprintf("DIST %.0f", player.Distance()), h.X, h.Y+barHeight+54, 1, color.White)
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
