package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/golangdaddy/turnpike/game"

// Metrics holds the world's instruments. With no meter provider installed
// the global meter is a no-op.
type Metrics struct {
	collisions  metric.Int64Counter
	checkpoints metric.Int64Counter
	spawned     metric.Int64Counter
	recycled    metric.Int64Counter
	damage      metric.Float64Histogram
}

// NewMetrics creates instruments on the global meter provider
func NewMetrics() (*Metrics, error) {
	return NewMetricsFrom(otel.Meter(instrumentationName))
}

// NewMetricsFrom creates instruments on meter
func NewMetricsFrom(meter metric.Meter) (*Metrics, error) {
	var m Metrics
	var err error

	if m.collisions, err = meter.Int64Counter("turnpike.collisions",
		metric.WithDescription("New contacts between the player and traffic")); err != nil {
		return nil, fmt.Errorf("collisions counter: %w", err)
	}
	if m.checkpoints, err = meter.Int64Counter("turnpike.checkpoints",
		metric.WithDescription("Checkpoint gates passed")); err != nil {
		return nil, fmt.Errorf("checkpoints counter: %w", err)
	}
	if m.spawned, err = meter.Int64Counter("turnpike.actors.spawned"); err != nil {
		return nil, fmt.Errorf("spawned counter: %w", err)
	}
	if m.recycled, err = meter.Int64Counter("turnpike.actors.recycled"); err != nil {
		return nil, fmt.Errorf("recycled counter: %w", err)
	}
	if m.damage, err = meter.Float64Histogram("turnpike.damage",
		metric.WithDescription("Health lost per collision")); err != nil {
		return nil, fmt.Errorf("damage histogram: %w", err)
	}
	return &m, nil
}

// Record adds one Step's events to the instruments
func (m *Metrics) Record(ctx context.Context, ev Events) {
	for _, c := range ev.Collisions {
		kind := metric.WithAttributes(attribute.String("kind", c.Actor.Kind.String()))
		m.collisions.Add(ctx, 1, kind)
		m.damage.Record(ctx, c.Lost, kind)
	}
	if ev.Checkpoints > 0 {
		m.checkpoints.Add(ctx, int64(ev.Checkpoints))
	}
	if ev.Spawned > 0 {
		m.spawned.Add(ctx, int64(ev.Spawned))
	}
	if ev.Recycled > 0 {
		m.recycled.Add(ctx, int64(ev.Recycled))
	}
}
