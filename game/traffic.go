package game

import (
	"github.com/golangdaddy/turnpike/lanecontroller"
	"github.com/golangdaddy/turnpike/models/npc"
)

const (
	// minSpacing is the closest two actors in one lane may spawn along Z
	minSpacing = 6.0
	// spawnClearance keeps spawns off the player's position
	spawnClearance = 8.0
)

// stream populates chunks coming into range ahead of the player and recycles
// actors left behind.
func (w *World) stream(ev *Events) {
	current := w.PlayerChunk()
	last := min(current+w.cfg.AheadChunks, w.course.Length())
	for c := max(current, 1); c <= last; c++ {
		if w.spawned[c] {
			continue
		}
		w.spawned[c] = true
		n := w.populateChunk(c)
		ev.Spawned += n
		w.log.Debug().Int("chunk", c).Int("actors", n).Msg("chunk populated")
	}

	playerChunk := w.Player.CurrentChunk(w.chunks.Length())
	for _, lc := range w.Lanes {
		for _, a := range lc.Recycle(playerChunk, w.cfg.BehindChunks) {
			w.contacts.Forget(a.ID)
			ev.Recycled++
		}
	}
}

// populateChunk spawns up to TrafficPerChunk actors in the open lanes of chunk
func (w *World) populateChunk(chunk int) int {
	var open []*lanecontroller.LaneController
	for _, lc := range w.Lanes {
		if lc.OpenIn(w.course, chunk) {
			open = append(open, lc)
		}
	}
	if len(open) == 0 {
		return 0
	}

	spawned := 0
	for i := 0; i < w.cfg.TrafficPerChunk; i++ {
		lc := open[w.chunks.Intn(len(open))]
		kind := npc.Kinds[w.chunks.Intn(len(npc.Kinds))]
		if w.spawnInLane(lc, kind, chunk) {
			spawned++
		}
	}
	return spawned
}

// spawnInLane spawns one actor unless it would land too close to another
// actor in the lane or to the player.
func (w *World) spawnInLane(lc *lanecontroller.LaneController, kind npc.Kind, chunk int) bool {
	a, err := npc.Spawn(kind, lc.Offset, chunk, w.chunks)
	if err != nil {
		w.log.Error().Err(err).Msg("spawn failed")
		return false
	}

	if d := a.Pos.Z - w.Player.Pos.Z; d > -spawnClearance && d < spawnClearance {
		return false
	}
	for _, other := range lc.Actors() {
		if d := other.Pos.Z - a.Pos.Z; d > -minSpacing && d < minSpacing {
			return false
		}
	}

	lc.Add(a)
	a.RequestVisual(w.visuals)
	return true
}
