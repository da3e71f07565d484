package game

import (
	"context"
	"image/color"
	"time"

	"github.com/golangdaddy/turnpike/car"
	"github.com/golangdaddy/turnpike/geom"
	"github.com/golangdaddy/turnpike/models"
	"github.com/golangdaddy/turnpike/models/npc"
	"github.com/golangdaddy/turnpike/road"
	"github.com/golangdaddy/turnpike/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

const (
	pixelsPerUnit = 40.0
	viewDepth     = 20.0 // world units drawn around the player
)

var (
	laneColor   = color.RGBA{60, 60, 65, 255}
	stripeColor = color.RGBA{230, 230, 230, 255}
	playerColor = color.RGBA{100, 150, 255, 255}

	kindColors = map[npc.Kind]color.RGBA{
		npc.Ambulance: {240, 240, 240, 255},
		npc.Police:    {30, 40, 160, 255},
		npc.FireTruck: {200, 30, 30, 255},
	}
	contactColor = color.RGBA{255, 220, 0, 120}
)

// RoadView is the top-down driving view. The camera is fixed above the
// player; forward (negative Z) is up the screen.
type RoadView struct {
	ctx     context.Context
	world   *World
	loader  *AssetLoader
	hud     *ui.HUD
	verge   *ebiten.Image
	log     zerolog.Logger
	started bool
}

// NewRoadView creates a view over world. loader may be nil.
func NewRoadView(ctx context.Context, world *World, loader *AssetLoader, log zerolog.Logger) *RoadView {
	return &RoadView{
		ctx:    ctx,
		world:  world,
		loader: loader,
		hud:    ui.NewHUD(),
		verge:  ebiten.NewImageFromImage(vergeTexture(256, 256, 1)),
		log:    log,
	}
}

// ReadIntents maps the held keys to driving intents
func ReadIntents() car.Intents {
	return car.Intents{
		Accelerate: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Brake:      ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		SteerLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		SteerRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

// Update advances the world one tick
func (rv *RoadView) Update() error {
	if rv.loader != nil {
		rv.loader.Drain()
	}

	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if !rv.started {
		rv.started = enter
		return nil
	}
	if rv.world.State.Phase().Terminal() {
		if enter {
			rv.world.Restart()
		}
		return nil
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	rv.world.Step(rv.ctx, ReadIntents(), dt)
	return nil
}

// Draw renders the road, traffic, player and overlays
func (rv *RoadView) Draw(screen *ebiten.Image) {
	drawVerge(screen, rv.verge, -rv.world.Player.Pos.Z*pixelsPerUnit)

	rv.drawRoad(screen)
	rv.drawMarkers(screen)
	rv.drawActors(screen)

	p := rv.world.Player
	box := p.BoundingBox()
	x, y := rv.toScreen(screen, p.Pos.X, p.Pos.Z)
	size := box.Size()
	car.RenderCar(screen, x, y, size.X*pixelsPerUnit, size.Z*pixelsPerUnit, p.Heading, playerColor)

	rv.hud.Draw(screen, rv.world.State, p)

	switch {
	case !rv.started:
		ui.InstructionPopup().Draw(screen)
	case rv.world.State.Phase() == models.PhaseJailed:
		ui.JailPopup().Draw(screen)
	case rv.world.State.Phase() == models.PhaseFinished:
		ui.CongratsPopup(rv.world.State.Elapsed()).Draw(screen)
	}
}

// toScreen maps a world (x, z) to screen pixels with the player at the lower
// middle of the screen.
func (rv *RoadView) toScreen(screen *ebiten.Image, x, z float64) (float64, float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	p := rv.world.Player.Pos
	sx := float64(width)/2 + (x-p.X)*pixelsPerUnit
	sy := float64(height)*0.75 + (z-p.Z)*pixelsPerUnit
	return sx, sy
}

func (rv *RoadView) fillBox(screen *ebiten.Image, b geom.Box3, c color.Color) {
	x0, y0 := rv.toScreen(screen, b.Min.X, b.Min.Z)
	x1, y1 := rv.toScreen(screen, b.Max.X, b.Max.Z)
	ui.FillRect(screen, x0, y0, x1-x0, y1-y0, c)
}

func (rv *RoadView) drawRoad(screen *ebiten.Image) {
	course := rv.world.Course()
	chunks := rv.world.Chunks()
	pz := rv.world.Player.Pos.Z
	half := course.LaneWidth / 2

	first := chunks.CourseChunk(pz + viewDepth)
	last := chunks.CourseChunk(pz - viewDepth)
	for c := max(first, 1); c <= last; c++ {
		seg := course.SegmentAt(c)
		if seg == nil {
			continue
		}
		near := -chunks.ChunkStart(c)
		far := -float64(c) * chunks.Length()
		for i := 0; i < seg.NumLanes; i++ {
			x := road.LaneX(course.LaneOffset(i))
			rv.fillBox(screen, geom.Box3{
				Min: geom.V3(x-half, 0, far),
				Max: geom.V3(x+half, 0, near),
			}, laneColor)
			if i > 0 {
				rv.fillBox(screen, geom.Box3{
					Min: geom.V3(x-half-0.02, 0, far),
					Max: geom.V3(x-half+0.02, 0, near),
				}, stripeColor)
			}
		}
	}
}

func (rv *RoadView) drawMarkers(screen *ebiten.Image) {
	pz := rv.world.Player.Pos.Z
	for _, m := range rv.world.Course().Markers {
		if d := m.Z - pz; d > viewDepth || d < -viewDepth {
			continue
		}
		c := color.RGBA{250, 210, 40, 255}
		if m.Kind == road.MarkerFinish {
			c = color.RGBA{250, 250, 250, 255}
		}
		rv.fillBox(screen, m.Box, c)
	}
}

func (rv *RoadView) drawActors(screen *ebiten.Image) {
	pz := rv.world.Player.Pos.Z
	for _, lc := range rv.world.Lanes {
		for _, a := range lc.Near(pz, viewDepth) {
			box := a.BoundingBox()
			if img, ok := a.Visual().(*ebiten.Image); ok {
				rv.drawSprite(screen, img, box)
			} else {
				rv.fillBox(screen, box, kindColors[a.Kind])
			}
			if rv.world.Touching(a) {
				rv.fillBox(screen, box, contactColor)
			}
		}
	}
}

func (rv *RoadView) drawSprite(screen *ebiten.Image, img *ebiten.Image, box geom.Box3) {
	x0, y0 := rv.toScreen(screen, box.Min.X, box.Min.Z)
	x1, y1 := rv.toScreen(screen, box.Max.X, box.Max.Z)
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale((x1-x0)/float64(b.Dx()), (y1-y0)/float64(b.Dy()))
	op.GeoM.Translate(x0, y0)
	screen.DrawImage(img, op)
}
