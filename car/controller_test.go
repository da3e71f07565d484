package car

import (
	"testing"

	"github.com/golangdaddy/turnpike/geom"
	"github.com/golangdaddy/turnpike/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccel    = 0.01
	testMaxSpeed = 0.6
)

func newTestVehicle() *models.PlayerVehicle {
	return models.NewPlayerVehicle(geom.V3(0.5, 0, 0), testAccel, testMaxSpeed)
}

func TestValidateTuning(t *testing.T) {
	assert.NoError(t, ValidateTuning(testAccel, testMaxSpeed))
	assert.ErrorIs(t, ValidateTuning(0, 1), ErrInvalidTuning)
	assert.ErrorIs(t, ValidateTuning(0.1, -1), ErrInvalidTuning)
}

func TestTick_UsesVehicleTuning(t *testing.T) {
	v := models.NewPlayerVehicle(geom.V3(0.5, 0, 0), 0.05, 0.2)

	Tick(v, Intents{Accelerate: true, SteerLeft: true})
	assert.InDelta(t, 0.05, v.Velocity.ZSpeed, 1e-12)
	assert.InDelta(t, 0.05, v.Velocity.XSpeed, 1e-12)

	for i := 0; i < 200; i++ {
		Tick(v, Intents{Accelerate: true, SteerLeft: true})
		assert.LessOrEqual(t, v.Velocity.ZSpeed, v.MaxSpeed)
		assert.LessOrEqual(t, v.Velocity.XSpeed, v.MaxSpeed)
	}
	assert.Equal(t, 0.2, v.Velocity.ZSpeed)
	assert.Equal(t, 0.2, v.Velocity.XSpeed)

	for i := 0; i < 200; i++ {
		Tick(v, Intents{Brake: true})
	}
	assert.Equal(t, -0.2, v.Velocity.ZSpeed)
}

func TestTick_AccelerateConvergesToMaxSpeed(t *testing.T) {
	v := newTestVehicle()

	for i := 0; i < 200; i++ {
		Tick(v, Intents{Accelerate: true})
		assert.LessOrEqual(t, v.Velocity.ZSpeed, testMaxSpeed)
	}
	assert.Equal(t, testMaxSpeed, v.Velocity.ZSpeed)
}

func TestTick_AcceleratePrecedesBrake(t *testing.T) {
	v := newTestVehicle()

	Tick(v, Intents{Accelerate: true, Brake: true})
	assert.InDelta(t, testAccel, v.Velocity.ZSpeed, 1e-12)
}

func TestTick_BrakeHardWhenMovingForward(t *testing.T) {
	v := newTestVehicle()
	v.Velocity.ZSpeed = 0.3

	Tick(v, Intents{Brake: true})
	assert.InDelta(t, 0.3-5*testAccel, v.Velocity.ZSpeed, 1e-12)
}

func TestTick_BrakeCreepsInReverse(t *testing.T) {
	v := newTestVehicle()

	Tick(v, Intents{Brake: true})
	assert.InDelta(t, -0.5*testAccel, v.Velocity.ZSpeed, 1e-12)

	for i := 0; i < 1000; i++ {
		Tick(v, Intents{Brake: true})
	}
	assert.Equal(t, -testMaxSpeed, v.Velocity.ZSpeed, "reverse is clamped")
}

func TestTick_Steering(t *testing.T) {
	v := newTestVehicle()

	Tick(v, Intents{SteerLeft: true})
	assert.Equal(t, SteerHeading, v.Heading)
	assert.InDelta(t, testAccel, v.Velocity.XSpeed, 1e-12)

	Tick(v, Intents{SteerRight: true})
	assert.Equal(t, -SteerHeading, v.Heading)
	assert.InDelta(t, 0, v.Velocity.XSpeed, 1e-12)

	// both held: right is applied first, then left overrides the heading
	Tick(v, Intents{SteerLeft: true, SteerRight: true})
	assert.Equal(t, SteerHeading, v.Heading)
}

func TestTick_LateralClamp(t *testing.T) {
	v := newTestVehicle()

	for i := 0; i < 500; i++ {
		Tick(v, Intents{SteerLeft: true})
	}
	assert.Equal(t, testMaxSpeed, v.Velocity.XSpeed)

	for i := 0; i < 500; i++ {
		Tick(v, Intents{SteerRight: true})
	}
	assert.Equal(t, -testMaxSpeed, v.Velocity.XSpeed)
}

func TestTick_HeadingReturnsToZero(t *testing.T) {
	v := newTestVehicle()

	pattern := []Intents{
		{SteerLeft: true}, {}, {SteerRight: true}, {},
		{SteerLeft: true}, {SteerLeft: true}, {},
		{SteerRight: true, Accelerate: true}, {Accelerate: true},
	}
	for _, in := range pattern {
		Tick(v, in)
		if !in.SteerLeft && !in.SteerRight {
			assert.Equal(t, 0.0, v.Heading)
		}
	}
}

func TestTick_GeometricDecay(t *testing.T) {
	v := newTestVehicle()

	for i := 0; i < 100; i++ {
		Tick(v, Intents{Accelerate: true})
	}
	require.Equal(t, testMaxSpeed, v.Velocity.ZSpeed)

	prev := v.Velocity.ZSpeed
	for i := 0; i < 50; i++ {
		Tick(v, Intents{})
		assert.InDelta(t, prev*ForwardDecay, v.Velocity.ZSpeed, 1e-12)
		prev = v.Velocity.ZSpeed
	}
	assert.InDelta(t, testMaxSpeed*0.605006, v.Velocity.ZSpeed, 1e-6) // 0.99^50
}

func TestTick_LateralDecay(t *testing.T) {
	v := newTestVehicle()
	v.Velocity.XSpeed = 0.5

	Tick(v, Intents{})
	assert.InDelta(t, 0.45, v.Velocity.XSpeed, 1e-12)
}

func TestIntentsFromNames(t *testing.T) {
	in := IntentsFromNames("accelerate", "STEERLEFT", "honk", "", "jump")
	assert.Equal(t, Intents{Accelerate: true, SteerLeft: true}, in)
	assert.Equal(t, Intents{}, IntentsFromNames())
	assert.Equal(t, Intents{Brake: true, SteerRight: true}, IntentsFromNames("brake", "steer_right"))
}
