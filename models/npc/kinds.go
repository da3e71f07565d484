package npc

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/golangdaddy/turnpike/geom"
)

// Kind tags the variant of a traffic actor
type Kind int

const (
	Ambulance Kind = iota
	Police
	FireTruck
)

// Kinds lists every valid kind in spawn-table order
var Kinds = []Kind{Ambulance, Police, FireTruck}

var ErrUnknownKind = errors.New("unknown actor kind")

// Spec holds the per-kind parameters of the single actor shape
type Spec struct {
	Name      string
	Scale     float64   // Uniform model scale
	Mass      float64   // Collision severity weight
	MinSpeed  float64   // Resting speed range, closed interval
	MaxSpeed  float64
	RotationY float64   // Heading offset of the model, radians
	OffsetY   float64   // Vertical lift of the model
	Extent    geom.Vec3 // Unscaled model footprint
}

// specs is indexed by Kind
var specs = [...]Spec{
	Ambulance: {
		Name:      "ambulance",
		Scale:     0.1,
		Mass:      7,
		MinSpeed:  0.1,
		MaxSpeed:  0.4,
		RotationY: math.Pi,
		Extent:    geom.V3(9, 11, 22),
	},
	Police: {
		Name:      "police",
		Scale:     0.5,
		Mass:      2,
		MinSpeed:  0.1,
		MaxSpeed:  0.45,
		RotationY: math.Pi,
		Extent:    geom.V3(1.8, 1.5, 4.4),
	},
	FireTruck: {
		Name:      "fire_truck",
		Scale:     3,
		Mass:      15,
		MinSpeed:  0.1,
		MaxSpeed:  0.3,
		RotationY: math.Pi / 2,
		OffsetY:   0.5,
		Extent:    geom.V3(1.2, 0.8, 0.32),
	},
}

// Valid reports whether k names a known kind
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(specs)
}

// Spec returns the parameters for k
func (k Kind) Spec() (Spec, error) {
	if !k.Valid() {
		return Spec{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return specs[k], nil
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return specs[k].Name
}

// ParseKind maps a kind name back to its tag
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(specs[k].Name, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
