package models

import (
	"math"

	"github.com/golangdaddy/turnpike/collision"
	"github.com/golangdaddy/turnpike/geom"
	"github.com/google/uuid"
)

// DefaultPlayerExtent is the footprint of the player's car
var DefaultPlayerExtent = geom.V3(0.8, 0.7, 1.8)

// Velocity holds the player's forward (ZSpeed) and lateral (XSpeed) speeds
type Velocity struct {
	ZSpeed float64
	XSpeed float64
}

// PlayerVehicle is the car the player drives
type PlayerVehicle struct {
	ID           uuid.UUID
	Pos          geom.Vec3
	Heading      float64 // rotation about Y, radians
	Velocity     Velocity
	Acceleration float64
	MaxSpeed     float64

	extent geom.Vec3
	box    geom.Box3
}

// NewPlayerVehicle creates a stationary player at start
func NewPlayerVehicle(start geom.Vec3, acceleration, maxSpeed float64) *PlayerVehicle {
	p := &PlayerVehicle{
		ID:           uuid.New(),
		Pos:          start,
		Acceleration: acceleration,
		MaxSpeed:     maxSpeed,
		extent:       DefaultPlayerExtent,
	}
	p.UpdateBoundingBox()
	return p
}

// Advance moves the player one tick along its velocity. Forward speed moves
// toward negative Z; positive lateral speed (steering left) moves toward
// negative X.
func (p *PlayerVehicle) Advance() {
	p.Pos.Z -= p.Velocity.ZSpeed
	p.Pos.X -= p.Velocity.XSpeed
}

// ClampLateral keeps the player between lo and hi on X, killing lateral speed
// at the edge.
func (p *PlayerVehicle) ClampLateral(lo, hi float64) {
	if p.Pos.X < lo {
		p.Pos.X = lo
		p.Velocity.XSpeed = 0
	}
	if p.Pos.X > hi {
		p.Pos.X = hi
		p.Velocity.XSpeed = 0
	}
}

// CurrentChunk returns floor(z / chunkLength), the same coordinate actors report
func (p *PlayerVehicle) CurrentChunk(chunkLength float64) int {
	return int(math.Floor(p.Pos.Z / chunkLength))
}

// Distance is how far the player has travelled forward from z = 0
func (p *PlayerVehicle) Distance() float64 {
	return -p.Pos.Z
}

func (p *PlayerVehicle) Position() geom.Vec3 { return p.Pos }
func (p *PlayerVehicle) RotationY() float64  { return p.Heading }
func (p *PlayerVehicle) Scale() geom.Vec3    { return geom.Uniform(1) }
func (p *PlayerVehicle) Extent() geom.Vec3   { return p.extent }

// UpdateBoundingBox recomputes the player's box from its transform
func (p *PlayerVehicle) UpdateBoundingBox() {
	p.box = collision.BoundingBoxOf(p)
}

// BoundingBox returns a copy of the last computed box
func (p *PlayerVehicle) BoundingBox() geom.Box3 {
	return p.box
}
