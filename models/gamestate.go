package models

import (
	"fmt"
	"math"
	"time"
)

// MaxHealth is full health; checkpoints restore to exactly this
const MaxHealth = 100.0

// Phase is the top-level state of a run
type Phase int

const (
	PhaseDriving Phase = iota
	PhaseJailed
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseDriving:
		return "driving"
	case PhaseJailed:
		return "jailed"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Terminal reports whether p is an exit from driving
func (p Phase) Terminal() bool {
	return p == PhaseJailed || p == PhaseFinished
}

// GameState owns health and phase for one run. Jailed and Finished are
// terminal: only Reset leaves them.
type GameState struct {
	health  float64
	phase   Phase
	elapsed time.Duration
	damage  DamagePolicy

	// OnPhaseChange is called once per transition, after state is updated
	OnPhaseChange func(from, to Phase)
}

// NewGameState creates a driving state at full health
func NewGameState(damage DamagePolicy) *GameState {
	if damage == nil {
		damage = LinearDamage(1)
	}
	return &GameState{
		health: MaxHealth,
		phase:  PhaseDriving,
		damage: damage,
	}
}

// Health is always within [0, MaxHealth]
func (gs *GameState) Health() float64 {
	return gs.health
}

func (gs *GameState) Phase() Phase {
	return gs.phase
}

// Elapsed is the driving time, frozen once the run ends
func (gs *GameState) Elapsed() time.Duration {
	return gs.elapsed
}

// Tick accumulates driving time
func (gs *GameState) Tick(dt time.Duration) {
	if gs.phase != PhaseDriving || dt <= 0 {
		return
	}
	gs.elapsed += dt
}

// OnCollision applies the damage policy for a hit against a vehicle of the
// given mass. Calls in the same tick accumulate. It returns the health lost.
func (gs *GameState) OnCollision(mass float64) float64 {
	if gs.phase != PhaseDriving {
		return 0
	}
	dmg := gs.damage(mass)
	if dmg < 0 || math.IsNaN(dmg) {
		dmg = 0
	}
	before := gs.health
	gs.setHealth(gs.health - dmg)
	if gs.health <= 0 {
		gs.transition(PhaseJailed)
	}
	return before - gs.health
}

// OnCheckpoint restores full health
func (gs *GameState) OnCheckpoint() {
	if gs.phase != PhaseDriving {
		return
	}
	gs.setHealth(MaxHealth)
}

// OnFinish ends the run and freezes the clock
func (gs *GameState) OnFinish() {
	if gs.phase != PhaseDriving {
		return
	}
	gs.transition(PhaseFinished)
}

// Reset starts a new run; this is the only way out of a terminal phase
func (gs *GameState) Reset() {
	from := gs.phase
	gs.health = MaxHealth
	gs.elapsed = 0
	gs.phase = PhaseDriving
	if from != PhaseDriving && gs.OnPhaseChange != nil {
		gs.OnPhaseChange(from, PhaseDriving)
	}
}

func (gs *GameState) setHealth(h float64) {
	gs.health = max(0, min(MaxHealth, h))
}

func (gs *GameState) transition(to Phase) {
	from := gs.phase
	if from == to {
		return
	}
	gs.phase = to
	if gs.OnPhaseChange != nil {
		gs.OnPhaseChange(from, to)
	}
}
