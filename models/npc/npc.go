// Package npc models the autonomous traffic actors sharing the road with the
// player. Every variant is the same entity parameterised by its Kind.
package npc

import (
	"fmt"

	"github.com/golangdaddy/turnpike/collision"
	"github.com/golangdaddy/turnpike/geom"
	"github.com/golangdaddy/turnpike/road"
	"github.com/google/uuid"
)

// Sampler supplies spawn depths and uniform draws for a chunk.
// *road.Chunker satisfies it.
type Sampler interface {
	SpawnDepth(chunk int) float64
	Uniform(lo, hi float64) float64
	ChunkOf(z float64) int
}

// Owner is the collection an actor lives in
type Owner interface {
	Detach(a *Actor)
}

// VisualLoader loads the visual representation for a kind and reports back
// through done, possibly after the actor is gone.
type VisualLoader interface {
	Load(kind Kind, done func(visual any, err error))
}

// Velocity is split into forward (Z) and lateral (X) speeds
type Velocity struct {
	Z float64
	X float64
}

// Actor is a traffic vehicle. Physical state is complete at construction;
// the visual is optional and may arrive later.
type Actor struct {
	ID        uuid.UUID
	Kind      Kind
	Pos       geom.Vec3
	Rotation  float64
	Size      geom.Vec3 // scale
	Mass      float64
	Velocity  Velocity
	SpawnedIn int // chunk index passed to Spawn

	restingSpeed float64
	extent       geom.Vec3
	box          geom.Box3
	chunks       Sampler
	owner        Owner
	visual       any
	removed      bool
}

// Spawn creates an actor of kind in the given lane offset and chunk
func Spawn(kind Kind, lane float64, chunk int, chunks Sampler) (*Actor, error) {
	spec, err := kind.Spec()
	if err != nil {
		return nil, err
	}
	if chunks == nil {
		return nil, fmt.Errorf("spawn %s: nil sampler", kind)
	}

	a := &Actor{
		ID:        uuid.New(),
		Kind:      kind,
		Rotation:  spec.RotationY,
		Size:      geom.Uniform(spec.Scale),
		Mass:      spec.Mass,
		SpawnedIn: chunk,
		extent:    spec.Extent,
		chunks:    chunks,
	}
	a.Pos = geom.V3(road.LaneX(lane), spec.OffsetY, -1*chunks.SpawnDepth(chunk))
	a.restingSpeed = chunks.Uniform(spec.MinSpeed, spec.MaxSpeed)
	a.UpdateBoundingBox()

	return a, nil
}

// RestingSpeed is the steady-state forward speed drawn at spawn
func (a *Actor) RestingSpeed() float64 {
	return a.restingSpeed
}

// CurrentChunk returns floor(z / L) for the actor's position
func (a *Actor) CurrentChunk() int {
	return a.chunks.ChunkOf(a.Pos.Z)
}

func (a *Actor) Position() geom.Vec3 { return a.Pos }
func (a *Actor) RotationY() float64  { return a.Rotation }
func (a *Actor) Scale() geom.Vec3    { return a.Size }
func (a *Actor) Extent() geom.Vec3   { return a.extent }

// UpdateBoundingBox recomputes the box from the current transform.
// Call after every position change.
func (a *Actor) UpdateBoundingBox() {
	a.box = collision.BoundingBoxOf(a)
}

// BoundingBox returns a copy of the last computed box
func (a *Actor) BoundingBox() geom.Box3 {
	return a.box
}

// SetOwner records the collection holding the actor
func (a *Actor) SetOwner(o Owner) {
	a.owner = o
}

// Remove detaches the actor from its owner. Safe to call more than once.
func (a *Actor) Remove() {
	a.removed = true
	if a.owner == nil {
		return
	}
	o := a.owner
	a.owner = nil
	o.Detach(a)
}

// Alive reports whether the actor has not been removed
func (a *Actor) Alive() bool {
	return !a.removed
}

// Visual returns the attached visual, nil until loading completes
func (a *Actor) Visual() any {
	return a.visual
}

// BindVisual attaches v unless the actor has been removed
func (a *Actor) BindVisual(v any) bool {
	if a.removed || v == nil {
		return false
	}
	a.visual = v
	return true
}

// RequestVisual asks loader for the actor's visual. The actor is fully
// physical whether or not the load ever completes; a failed load or a
// completion after Remove leaves it untouched.
func (a *Actor) RequestVisual(loader VisualLoader) {
	if loader == nil {
		return
	}
	loader.Load(a.Kind, func(visual any, err error) {
		if err != nil {
			return
		}
		a.BindVisual(visual)
	})
}
