// Command turnpike-sprites renders the top-down traffic sprites the game
// loads from assets/npc.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golangdaddy/turnpike/geom"
	"github.com/golangdaddy/turnpike/logging"
	"github.com/golangdaddy/turnpike/models/npc"
	"github.com/spf13/pflag"
)

// pixelsPerUnit sets sprite resolution against the world footprint
const pixelsPerUnit = 48

type palette struct {
	body   color.RGBA
	stripe color.RGBA
	light  color.RGBA
}

var palettes = map[npc.Kind]palette{
	npc.Ambulance: {
		body:   color.RGBA{245, 245, 245, 255},
		stripe: color.RGBA{220, 30, 30, 255},
		light:  color.RGBA{255, 60, 60, 255},
	},
	npc.Police: {
		body:   color.RGBA{25, 35, 70, 255},
		stripe: color.RGBA{240, 240, 240, 255},
		light:  color.RGBA{40, 90, 255, 255},
	},
	npc.FireTruck: {
		body:   color.RGBA{200, 25, 25, 255},
		stripe: color.RGBA{190, 190, 190, 255},
		light:  color.RGBA{255, 200, 40, 255},
	},
}

// spriteSize is the sprite's pixel size for a kind's scaled, rotated footprint
func spriteSize(spec npc.Spec) (int, int) {
	e := geom.RotateExtentY(spec.Extent.Scale(spec.Scale), spec.RotationY)
	return max(8, int(e.X*pixelsPerUnit)), max(8, int(e.Z*pixelsPerUnit))
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// renderSprite draws a kind's sprite with the front of the vehicle at the top
func renderSprite(kind npc.Kind) (*image.RGBA, error) {
	spec, err := kind.Spec()
	if err != nil {
		return nil, err
	}
	pal := palettes[kind]
	w, h := spriteSize(spec)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), pal.body)

	outline := color.RGBA{15, 15, 15, 255}
	fill(img, image.Rect(0, 0, w, 1), outline)
	fill(img, image.Rect(0, h-1, w, h), outline)
	fill(img, image.Rect(0, 0, 1, h), outline)
	fill(img, image.Rect(w-1, 0, w, h), outline)

	// windshield
	fill(img, image.Rect(w/5, h/10, w-w/5, h/10+h/8), color.RGBA{150, 200, 255, 255})
	// light bar behind the cab
	fill(img, image.Rect(w/6, h/4, w-w/6, h/4+max(2, h/20)), pal.light)

	switch kind {
	case npc.Ambulance:
		cx, cy := w/2, h*3/5
		arm := max(2, w/5)
		fill(img, image.Rect(cx-arm, cy-arm/3, cx+arm, cy+arm/3), pal.stripe)
		fill(img, image.Rect(cx-arm/3, cy-arm, cx+arm/3, cy+arm), pal.stripe)
	case npc.Police:
		fill(img, image.Rect(0, h/2, w, h/2+max(2, h/12)), pal.stripe)
	case npc.FireTruck:
		// ladder rails and rungs
		fill(img, image.Rect(w/3, h/3, w/3+2, h-2), pal.stripe)
		fill(img, image.Rect(w-w/3-2, h/3, w-w/3, h-2), pal.stripe)
		for y := h / 3; y < h-2; y += max(3, h/12) {
			fill(img, image.Rect(w/3, y, w-w/3, y+1), pal.stripe)
		}
	}
	return img, nil
}

func savePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

// parseKinds resolves kind names; no names selects every kind
func parseKinds(names []string) ([]npc.Kind, error) {
	if len(names) == 0 {
		return npc.Kinds, nil
	}
	kinds := make([]npc.Kind, 0, len(names))
	for _, name := range names {
		kind, err := npc.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func run(outDir string, kinds []npc.Kind) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	log := logging.Setup(os.Stderr, nil, "info")

	for _, kind := range kinds {
		img, err := renderSprite(kind)
		if err != nil {
			return err
		}
		filename := filepath.Join(outDir, kind.String()+".png")
		if err := savePNG(img, filename); err != nil {
			return fmt.Errorf("error saving %s: %w", filename, err)
		}
		log.Info().Str("file", filename).Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).Msg("sprite written")
	}
	return nil
}

func main() {
	out := pflag.String("out", filepath.Join("assets", "npc"), "directory to write sprites to")
	names := pflag.StringSlice("kinds", nil, "kinds to render, all when empty")
	pflag.Parse()

	kinds, err := parseKinds(*names)
	if err == nil {
		err = run(*out, kinds)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "turnpike-sprites: %v\n", err)
		os.Exit(1)
	}
}
