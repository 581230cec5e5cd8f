package notify

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarops/medic-api/pkg/logger"
	"github.com/sarops/medic-api/pkg/messaging"
	"github.com/sarops/medic-api/pkg/metrics"
)

func TestReorderRecordsHistory(t *testing.T) {
	p := NewProcurement(
		logger.NewLogger(nil),
		messaging.NewNoopBroker(),
		nil,
		metrics.New("test", prometheus.NewRegistry()),
	)
	ctx := context.Background()

	p.Reorder(ctx, "bandages", 10)
	p.Reorder(ctx, "antiseptic", 25)

	history := p.History()
	require.Len(t, history, 2)
	assert.Equal(t, "bandages", history[0].Item)
	assert.Equal(t, 10, history[0].Shortfall)
	assert.Equal(t, "antiseptic", history[1].Item)
	assert.Equal(t, 25, history[1].Shortfall)
	assert.False(t, history[0].PlacedAt.IsZero())

	// returned slice is a copy
	history[0].Item = "mutated"
	assert.Equal(t, "bandages", p.History()[0].Item)
}
