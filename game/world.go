// Package game runs the per-tick loop that ties the simulation core together
// and presents it through ebiten.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/golangdaddy/turnpike/car"
	"github.com/golangdaddy/turnpike/collision"
	"github.com/golangdaddy/turnpike/config"
	"github.com/golangdaddy/turnpike/geom"
	"github.com/golangdaddy/turnpike/lanecontroller"
	"github.com/golangdaddy/turnpike/models"
	"github.com/golangdaddy/turnpike/models/npc"
	"github.com/golangdaddy/turnpike/road"
	"github.com/rs/zerolog"
)

// broadPhaseRadius limits contact checks to actors this close along Z
const broadPhaseRadius = 10.0

// Collision is one new contact with traffic and the health it cost
type Collision struct {
	Actor *npc.Actor
	Lost  float64
}

// Events reports what happened during one Step
type Events struct {
	Collisions  []Collision
	Damage      float64
	Checkpoints int
	Finished    bool
	Jailed      bool
	Spawned     int
	Recycled    int
}

// World owns every piece of simulation state for a run
type World struct {
	cfg        config.SimulationConfig
	log        zerolog.Logger
	rng     *rand.Rand
	chunks  *road.Chunker
	course  *road.Course
	damage  models.DamagePolicy
	metrics *Metrics
	visuals npc.VisualLoader

	Player   *models.PlayerVehicle
	State    *models.GameState
	Lanes    []*lanecontroller.LaneController
	contacts *collision.ContactTracker
	spawned  map[int]bool
	tick     uint64
}

// Option customises a World
type Option func(*World)

// WithRand fixes the random source, for reproducible runs
func WithRand(rng *rand.Rand) Option {
	return func(w *World) {
		w.rng = rng
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(w *World) {
		w.log = log
	}
}

// WithCourse replaces the course built from config
func WithCourse(c *road.Course) Option {
	return func(w *World) {
		w.course = c
	}
}

// WithVisualLoader requests a visual for every spawned actor
func WithVisualLoader(l npc.VisualLoader) Option {
	return func(w *World) {
		w.visuals = l
	}
}

// WithMetrics replaces the default instruments
func WithMetrics(m *Metrics) Option {
	return func(w *World) {
		w.metrics = m
	}
}

// NewWorld validates cfg and builds a world ready to Step
func NewWorld(cfg config.SimulationConfig, opts ...Option) (*World, error) {
	if err := car.ValidateTuning(cfg.Acceleration, cfg.MaxSpeed); err != nil {
		return nil, fmt.Errorf("player config: %w", err)
	}
	damage, err := models.ParseDamagePolicy(cfg.DamagePolicy, cfg.DamageFactor, cfg.DamageAmount)
	if err != nil {
		return nil, fmt.Errorf("damage config: %w", err)
	}
	if cfg.TrafficPerChunk < 0 || cfg.AheadChunks < 0 || cfg.BehindChunks < 0 {
		return nil, fmt.Errorf("traffic config: counts must be non-negative")
	}

	w := &World{
		cfg:    cfg,
		log:    zerolog.Nop(),
		damage: damage,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.chunks, err = road.NewChunker(cfg.ChunkLength, cfg.ChunkMargin, w.rng)
	if err != nil {
		return nil, fmt.Errorf("chunk config: %w", err)
	}

	if w.course == nil {
		w.course, err = buildCourse(cfg, w.chunks)
		if err != nil {
			return nil, err
		}
	}
	if w.metrics == nil {
		w.metrics, err = NewMetrics()
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
	}

	w.Restart()
	return w, nil
}

func buildCourse(cfg config.SimulationConfig, chunks *road.Chunker) (*road.Course, error) {
	if cfg.CourseFile != "" {
		return road.LoadCourseFromFile(cfg.CourseFile, cfg.LaneWidth, chunks)
	}
	c, err := road.DefaultCourse(cfg.CourseLength, cfg.LaneCount, cfg.CheckpointEvery, cfg.LaneWidth, chunks)
	if err != nil {
		return nil, fmt.Errorf("course config: %w", err)
	}
	return c, nil
}

// Restart throws away the current run and starts a fresh one at the start of
// the course.
func (w *World) Restart() {
	for _, lc := range w.Lanes {
		lc.Clear()
	}

	start := geom.V3(road.LaneX(w.course.LaneOffset(0)), 0, 0)
	w.Player = models.NewPlayerVehicle(start, w.cfg.Acceleration, w.cfg.MaxSpeed)

	if w.State == nil {
		w.State = models.NewGameState(w.damage)
		w.State.OnPhaseChange = w.onPhaseChange
	} else {
		w.State.Reset()
	}

	w.Lanes = lanecontroller.LaneControllersForCourse(w.course)
	w.contacts = collision.NewContactTracker()
	w.spawned = make(map[int]bool)
	w.tick = 0

	w.stream(&Events{})
	w.log.Info().
		Int("chunks", w.course.Length()).
		Int("lanes", len(w.Lanes)).
		Float64("chunkLength", w.chunks.Length()).
		Float64("chunkMargin", w.chunks.Margin()).
		Msg("run started")
}

func (w *World) onPhaseChange(from, to models.Phase) {
	w.log.Info().
		Stringer("from", from).
		Stringer("to", to).
		Float64("health", w.State.Health()).
		Float64("distance", w.Player.Distance()).
		Dur("elapsed", w.State.Elapsed()).
		Msg("phase changed")
}

// Course returns the road being driven
func (w *World) Course() *road.Course {
	return w.course
}

// Chunks returns the chunk geometry
func (w *World) Chunks() *road.Chunker {
	return w.chunks
}

// Actors returns every live actor across all lanes
func (w *World) Actors() []*npc.Actor {
	var out []*npc.Actor
	for _, lc := range w.Lanes {
		out = append(out, lc.Actors()...)
	}
	return out
}

// Touching reports whether the player is currently in contact with a
func (w *World) Touching(a *npc.Actor) bool {
	return w.contacts.IsActive(collision.ContactKey{A: w.Player.ID, B: a.ID})
}

// PlayerChunk is the 1-based course chunk the player is in
func (w *World) PlayerChunk() int {
	return w.chunks.CourseChunk(w.Player.Pos.Z)
}

// Step advances the world by one tick. Once the run has ended it does nothing.
func (w *World) Step(ctx context.Context, in car.Intents, dt time.Duration) Events {
	var ev Events
	if w.State.Phase() != models.PhaseDriving {
		return ev
	}
	w.tick++

	car.Tick(w.Player, in)
	w.Player.Advance()
	w.clampToRoad()
	w.Player.UpdateBoundingBox()

	w.stream(&ev)

	for _, lc := range w.Lanes {
		lc.Update(w.cfg.TrafficResponse)
	}

	w.collideActors(&ev)
	if w.State.Phase() == models.PhaseDriving {
		w.collideMarkers(&ev)
	}

	w.State.Tick(dt)
	ev.Jailed = w.State.Phase() == models.PhaseJailed

	w.metrics.Record(ctx, ev)
	return ev
}

func (w *World) clampToRoad() {
	bounds := w.course.Bounds()
	w.Player.ClampLateral(bounds.Min.X, bounds.Max.X)
}

func (w *World) collideActors(ev *Events) {
	playerBox := w.Player.BoundingBox()
	pz := w.Player.Pos.Z
	for _, lc := range w.Lanes {
		for _, a := range lc.Actors() {
			// broad phase along the travel axis, then the box test
			dz := a.Pos.Z - pz
			touching := dz <= broadPhaseRadius && dz >= -broadPhaseRadius &&
				collision.Intersects(playerBox, a.BoundingBox())

			key := collision.ContactKey{A: w.Player.ID, B: a.ID}
			if !w.contacts.Update(key, touching) {
				continue
			}
			lost := w.State.OnCollision(a.Mass)
			ev.Collisions = append(ev.Collisions, Collision{Actor: a, Lost: lost})
			ev.Damage += lost
			w.log.Debug().
				Uint64("tick", w.tick).
				Stringer("kind", a.Kind).
				Float64("mass", a.Mass).
				Float64("lost", lost).
				Float64("health", w.State.Health()).
				Msg("collision")
			if w.State.Phase() != models.PhaseDriving {
				return
			}
		}
	}
}

func (w *World) collideMarkers(ev *Events) {
	playerBox := w.Player.BoundingBox()
	for _, m := range w.course.Markers {
		key := collision.ContactKey{A: w.Player.ID, B: m.ID}
		touching := collision.Intersects(playerBox, m.Box)
		if !touching {
			continue
		}
		// gates fire once per run, so contacts are never ended here
		if !w.contacts.Begin(key) {
			continue
		}
		switch m.Kind {
		case road.MarkerCheckpoint:
			w.State.OnCheckpoint()
			ev.Checkpoints++
			w.log.Debug().Int("chunk", m.Chunk).Msg("checkpoint")
		case road.MarkerFinish:
			w.State.OnFinish()
			ev.Finished = true
			return
		}
	}
}
