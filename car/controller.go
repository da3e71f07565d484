package car

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangdaddy/turnpike/models"
)

const (
	SteerHeading       = 0.05 // heading snap while steering, radians
	HardBrakeFactor    = 5.0  // braking while moving forward
	ReverseCreepFactor = 0.5  // braking at rest or in reverse
	ForwardDecay       = 0.99 // per-tick forward speed retained without throttle or brake
	LateralDecay       = 0.9  // per-tick lateral speed retained without steering
)

var ErrInvalidTuning = errors.New("invalid vehicle tuning")

// Intents is the per-tick control input. The input layer fills it; the
// controller never reads devices.
type Intents struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
}

// IntentsFromNames builds Intents from intent names. Unknown names are ignored.
func IntentsFromNames(names ...string) Intents {
	var in Intents
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "accelerate":
			in.Accelerate = true
		case "brake":
			in.Brake = true
		case "steerleft", "steer_left", "left":
			in.SteerLeft = true
		case "steerright", "steer_right", "right":
			in.SteerRight = true
		}
	}
	return in
}

// ValidateTuning rejects acceleration or max speed that are not positive.
func ValidateTuning(acceleration, maxSpeed float64) error {
	if !(acceleration > 0) {
		return fmt.Errorf("%w: acceleration %v", ErrInvalidTuning, acceleration)
	}
	if !(maxSpeed > 0) {
		return fmt.Errorf("%w: max speed %v", ErrInvalidTuning, maxSpeed)
	}
	return nil
}

// Tick applies one step of intents to v using the vehicle's own acceleration
// and max speed. Throttle wins over brake; each branch clamps to ±MaxSpeed.
func Tick(v *models.PlayerVehicle, in Intents) {
	accel, limit := v.Acceleration, v.MaxSpeed
	vel := &v.Velocity

	if in.Accelerate {
		vel.ZSpeed = min(vel.ZSpeed+accel, limit)
	} else if in.Brake {
		if vel.ZSpeed > 0 {
			vel.ZSpeed = max(vel.ZSpeed-HardBrakeFactor*accel, -limit)
		} else {
			vel.ZSpeed = max(vel.ZSpeed-ReverseCreepFactor*accel, -limit)
		}
	}

	if in.SteerRight {
		v.Heading = -SteerHeading
		vel.XSpeed = max(vel.XSpeed-accel, -limit)
	}
	if in.SteerLeft {
		v.Heading = SteerHeading
		vel.XSpeed = min(vel.XSpeed+accel, limit)
	}

	if !in.Accelerate && !in.Brake {
		vel.ZSpeed *= ForwardDecay
	}
	if !in.SteerLeft && !in.SteerRight {
		v.Heading = 0
		vel.XSpeed *= LateralDecay
	}
}
