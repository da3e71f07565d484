package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golangdaddy/turnpike/config"
	"github.com/golangdaddy/turnpike/game"
	"github.com/golangdaddy/turnpike/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// Game implements ebiten.Game over the road view
type Game struct {
	view *game.RoadView
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	return g.view.Update()
}

// Draw is called every frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
}

// Layout returns a fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func run() error {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	configDir, _ := flags.GetString("config-dir")
	if err := config.Load(configDir, flags); err != nil {
		return err
	}

	var file io.Writer
	if dir := config.GetString("logsDir"); dir != "" {
		f, err := logging.OpenLogFile(dir, "turnpike", time.Now())
		if err != nil {
			return err
		}
		defer f.Close()
		file = f
	}
	log := logging.Setup(os.Stderr, file, config.GetString("logLevel"))

	loader := game.NewAssetLoader("assets/npc", log.With().Str("component", "assets").Logger())
	world, err := game.NewWorld(config.Simulation(),
		game.WithLogger(log.With().Str("component", "world").Logger()),
		game.WithVisualLoader(loader),
	)
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Turnpike")

	log.Info().Str("configDir", configDir).Msg("starting")
	g := &Game{view: game.NewRoadView(context.Background(), world, loader, log)}
	return ebiten.RunGame(g)
}

func main() {
	if err := run(); err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("turnpike exited")
	}
}
