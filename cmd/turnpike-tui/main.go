// Command turnpike-tui drives the turnpike simulation in a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/turnpike/config"
	"github.com/golangdaddy/turnpike/game"
	"github.com/golangdaddy/turnpike/logging"
	"github.com/golangdaddy/turnpike/models"
	"github.com/golangdaddy/turnpike/models/npc"
	"github.com/golangdaddy/turnpike/road"
	"github.com/golangdaddy/turnpike/ui"
	"github.com/rs/zerolog"
)

const (
	tick         = 16 * time.Millisecond
	cellsPerLane = 6
	rowsPerUnit  = 0.5
)

var kindRunes = map[npc.Kind]rune{
	npc.Ambulance: 'A',
	npc.Police:    'P',
	npc.FireTruck: 'F',
}

type app struct {
	screen  tcell.Screen
	world   *game.World
	tones   *tones
	log     zerolog.Logger
	keys    keyState
	started bool
}

func newApp(world *game.World, log zerolog.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	t, err := newTones()
	if err != nil {
		log.Warn().Err(err).Msg("audio unavailable")
	}

	return &app{
		screen: screen,
		world:  world,
		tones:  t,
		log:    log,
		keys:   keyState{},
	}, nil
}

func (a *app) cleanup() {
	a.tones.close()
	a.screen.Fini()
}

// handleInput returns false when the player quits
func (a *app) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyEnter {
			switch {
			case !a.started:
				a.started = true
			case a.world.State.Phase().Terminal():
				a.world.Restart()
			}
			return true
		}
		a.keys.press(ev, now)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) step(ctx context.Context, now time.Time) {
	if !a.started || a.world.State.Phase().Terminal() {
		return
	}
	ev := a.world.Step(ctx, a.keys.intents(now), tick)
	if len(ev.Collisions) > 0 {
		a.tones.crash()
	}
	if ev.Checkpoints > 0 {
		a.tones.checkpoint()
	}
	if ev.Finished {
		a.tones.finish()
	}
}

func (a *app) run(ctx context.Context) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(a.screen, events, done)

	for {
		select {
		case ev := <-events:
			if !a.handleInput(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			a.step(ctx, now)
			a.draw()
		}
	}
}

type eventSource interface {
	PollEvent() tcell.Event
}

// pumpEvents forwards events from src until the screen is finalized, which
// makes PollEvent return nil, or done is closed.
func pumpEvents(src eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (a *app) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	p := a.world.Player
	course := a.world.Course()
	chunks := a.world.Chunks()
	playerRow := height * 3 / 4
	left := width/2 - int((p.Pos.X-road.LaneBaseX)*cellsPerLane/course.LaneWidth)

	toCell := func(x, z float64) (int, int) {
		col := left + int((x-road.LaneBaseX)*cellsPerLane/course.LaneWidth)
		row := playerRow + int((z-p.Pos.Z)/rowsPerUnit)
		return col, row
	}

	laneStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for row := 0; row < height; row++ {
		z := p.Pos.Z + float64(row-playerRow)*rowsPerUnit
		seg := course.SegmentAt(chunks.CourseChunk(z))
		if seg == nil {
			continue
		}
		for i := 0; i <= seg.NumLanes; i++ {
			col, _ := toCell(road.LaneX(course.LaneOffset(i)-course.LaneWidth/2), z)
			a.screen.SetContent(col, row, '|', nil, laneStyle)
		}
	}

	for _, m := range course.Markers {
		_, row := toCell(0, m.Z)
		if row < 0 || row >= height {
			continue
		}
		x0, _ := toCell(m.Box.Min.X, m.Z)
		x1, _ := toCell(m.Box.Max.X, m.Z)
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		if m.Kind == road.MarkerFinish {
			style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		}
		for col := x0; col <= x1; col++ {
			a.screen.SetContent(col, row, '=', nil, style)
		}
	}

	for _, actor := range a.world.Actors() {
		c := actor.BoundingBox().Center()
		col, row := toCell(c.X, c.Z)
		if row < 0 || row >= height {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		if a.world.Touching(actor) {
			style = style.Reverse(true)
		}
		a.screen.SetContent(col, row, kindRunes[actor.Kind], nil, style)
	}

	col, row := toCell(p.Pos.X, p.Pos.Z)
	a.screen.SetContent(col, row, '^', nil, tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true))

	state := a.world.State
	status := fmt.Sprintf("HEALTH %3.0f  TIME %s  SPEED %.2f  DIST %.0f",
		state.Health(), ui.FormatElapsed(state.Elapsed()), p.Velocity.ZSpeed, p.Distance())
	a.drawLines(0, []string{status})

	switch {
	case !a.started:
		a.drawPopup(ui.InstructionPopup())
	case state.Phase() == models.PhaseJailed:
		a.drawPopup(ui.JailPopup())
	case state.Phase() == models.PhaseFinished:
		a.drawPopup(ui.CongratsPopup(state.Elapsed()))
	}

	a.screen.Show()
}

func (a *app) drawPopup(p ui.Popup) {
	lines := append([]string{strings.ToUpper(p.Title), ""}, p.Lines...)
	lines = append(lines, "", p.Action)
	_, height := a.screen.Size()
	a.drawLines(max(0, (height-len(lines))/2), lines)
}

func (a *app) drawLines(top int, lines []string) {
	width, _ := a.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, line := range lines {
		x := max(0, (width-len(line))/2)
		for j, r := range line {
			a.screen.SetContent(x+j, top+i, r, nil, style)
		}
	}
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

	// the terminal belongs to the game, so logs only go to a file
	log := zerolog.Nop()
	if dir := config.GetString("logsDir"); dir != "" {
		f, err := logging.OpenLogFile(dir, "turnpike-tui", time.Now())
		if err != nil {
			return err
		}
		defer f.Close()
		log = logging.Setup(io.Discard, f, config.GetString("logLevel"))
	}

	world, err := game.NewWorld(config.Simulation(),
		game.WithLogger(log.With().Str("component", "world").Logger()),
	)
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}

	a, err := newApp(world, log)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer a.cleanup()

	a.run(context.Background())
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "turnpike-tui: %v\n", err)
		os.Exit(1)
	}
}
