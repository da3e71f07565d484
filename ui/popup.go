package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Charges are read out on the jail popup
var Charges = []string{
	"Vehicular manslaughter",
	"Driving under the influence",
	"Fleeing the scene of an accident",
	"Reckless endangerment",
	"Hit and run",
	"Property damage over $10,000",
}

// Popup is a centred modal box of text with a single action
type Popup struct {
	Title      string
	Lines      []string
	Action     string
	Background color.RGBA
}

// FormatElapsed renders a run time as seconds with two decimals
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}

// InstructionPopup is shown before the first run starts
func InstructionPopup() Popup {
	return Popup{
		Title: "Pennsylvania Turnpike Simulator",
		Lines: []string{
			"W to accelerate, S to brake.",
			"A and D to steer.",
			"",
			"Collisions cost health.",
			"Checkpoints restore it to full.",
			"Reach the finish line to complete the course!",
		},
		Action:     "Press ENTER to start",
		Background: color.RGBA{0, 0, 0, 230},
	}
}

// JailPopup is shown when health runs out
func JailPopup() Popup {
	lines := []string{
		"The State Troopers have arrested you.",
		"You have been charged with:",
	}
	for _, c := range Charges {
		lines = append(lines, "  - "+c)
	}
	lines = append(lines, "", "Better luck next time, reckless driver!")

	return Popup{
		Title:      "Jail! Straight to Jail!",
		Lines:      lines,
		Action:     "Press ENTER to start over",
		Background: color.RGBA{120, 20, 20, 230},
	}
}

// CongratsPopup is shown when the finish line is reached
func CongratsPopup(elapsed time.Duration) Popup {
	return Popup{
		Title: "Congratulations!",
		Lines: []string{
			"You made it to the finish line!",
			fmt.Sprintf("You completed the course in %s seconds!", FormatElapsed(elapsed)),
		},
		Action:     "Press ENTER to start over",
		Background: color.RGBA{20, 140, 40, 230},
	}
}

// Draw renders the popup centred on screen
func (p Popup) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	const (
		titleScale = 2.0
		lineHeight = 16.0
		padding    = 20.0
	)

	boxW := text.Advance(p.Title, face) * titleScale
	for _, l := range p.Lines {
		boxW = max(boxW, text.Advance(l, face))
	}
	boxW = max(boxW, text.Advance(p.Action, face)) + 2*padding
	boxH := 2*padding + 32 + float64(len(p.Lines)+2)*lineHeight

	x := (float64(width) - boxW) / 2
	y := (float64(height) - boxH) / 2
	FillRect(screen, 0, 0, float64(width), float64(height), color.RGBA{0, 0, 0, 100})
	FillRect(screen, x, y, boxW, boxH, p.Background)

	drawText(screen, p.Title, x+padding, y+padding, titleScale, color.RGBA{255, 200, 50, 255})
	ty := y + padding + 32
	for _, l := range p.Lines {
		drawText(screen, l, x+padding, ty, 1, color.White)
		ty += lineHeight
	}
	drawText(screen, p.Action, x+padding, ty+lineHeight, 1, color.RGBA{150, 200, 255, 255})
}
