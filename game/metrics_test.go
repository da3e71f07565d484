package game

import (
	"context"
	"testing"

	"github.com/golangdaddy/turnpike/models/npc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type recordingHistogram struct {
	noop.Float64Histogram
	values []float64
}

func (h *recordingHistogram) Record(_ context.Context, v float64, _ ...metric.RecordOption) {
	h.values = append(h.values, v)
}

type recordingMeter struct {
	noop.Meter
	damage *recordingHistogram
}

func (m *recordingMeter) Float64Histogram(string, ...metric.Float64HistogramOption) (metric.Float64Histogram, error) {
	return m.damage, nil
}

func TestMetricsRecordDamagePerCollision(t *testing.T) {
	meter := &recordingMeter{damage: &recordingHistogram{}}
	m, err := NewMetricsFrom(meter)
	require.NoError(t, err)

	police := &npc.Actor{Kind: npc.Police}
	truck := &npc.Actor{Kind: npc.FireTruck}
	m.Record(context.Background(), Events{
		Collisions: []Collision{{Actor: police, Lost: 10}, {Actor: truck, Lost: 30}},
		Damage:     40,
	})
	m.Record(context.Background(), Events{Spawned: 3})

	assert.Equal(t, []float64{10, 30}, meter.damage.values)
}
