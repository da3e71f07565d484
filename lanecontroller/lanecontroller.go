package lanecontroller

import (
	"slices"

	"github.com/golangdaddy/turnpike/models/npc"
)

// LaneController owns the traffic actors spawned in a single lane
type LaneController struct {
	LaneIndex int     // Lane index (0 = lane at the base offset)
	Offset    float64 // Lateral offset passed to npc.Spawn

	actors []*npc.Actor
}

// NewLaneController creates a new lane controller
func NewLaneController(laneIndex int, offset float64) *LaneController {
	return &LaneController{
		LaneIndex: laneIndex,
		Offset:    offset,
	}
}

// Add takes ownership of an actor
func (lc *LaneController) Add(a *npc.Actor) {
	a.SetOwner(lc)
	lc.actors = append(lc.actors, a)
}

// Detach drops a from the lane. Called by Actor.Remove.
func (lc *LaneController) Detach(a *npc.Actor) {
	lc.actors = slices.DeleteFunc(lc.actors, func(x *npc.Actor) bool {
		return x == a
	})
}

// Actors returns the actors currently in the lane. The slice is shared;
// callers that remove actors while iterating must copy it first.
func (lc *LaneController) Actors() []*npc.Actor {
	return lc.actors
}

// Len returns the number of actors in the lane
func (lc *LaneController) Len() int {
	return len(lc.actors)
}

// Update drives every actor's forward speed toward its resting speed by at
// most response per tick, moves it forward (toward negative Z) and refreshes
// its bounding box.
func (lc *LaneController) Update(response float64) {
	for _, a := range lc.actors {
		target := a.RestingSpeed()
		v := a.Velocity.Z
		switch {
		case v < target:
			v = min(v+response, target)
		case v > target:
			v = max(v-response, target)
		}
		a.Velocity.Z = v

		// lateral drift only ever decays; actors hold their lane
		a.Velocity.X *= 0.9

		a.Pos.Z -= a.Velocity.Z
		a.Pos.X -= a.Velocity.X
		a.UpdateBoundingBox()
	}
}

// Recycle removes actors whose chunk is more than behind chunks behind
// playerChunk (both as reported by CurrentChunk). It returns the removed actors.
func (lc *LaneController) Recycle(playerChunk, behind int) []*npc.Actor {
	var stale []*npc.Actor
	for _, a := range lc.actors {
		if a.CurrentChunk() > playerChunk+behind {
			stale = append(stale, a)
		}
	}
	for _, a := range stale {
		a.Remove()
	}
	return stale
}

// Near returns actors whose Z lies within radius of z
func (lc *LaneController) Near(z, radius float64) []*npc.Actor {
	var out []*npc.Actor
	for _, a := range lc.actors {
		if d := a.Pos.Z - z; d <= radius && d >= -radius {
			out = append(out, a)
		}
	}
	return out
}

// Clear removes every actor in the lane
func (lc *LaneController) Clear() {
	for _, a := range slices.Clone(lc.actors) {
		a.Remove()
	}
}
