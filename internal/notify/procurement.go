package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sarops/medic-api/pkg/logger"
	"github.com/sarops/medic-api/pkg/messaging"
	"github.com/sarops/medic-api/pkg/metrics"
)

// ReorderRecord is one placed reorder.
type ReorderRecord struct {
	Item      string    `json:"item"`
	Shortfall int       `json:"shortfall"`
	PlacedAt  time.Time `json:"placed_at"`
}

// Procurement records reorders, publishes them as lifecycle events, and
// optionally mails the logistics contact. It stands in for a real ordering
// system; the reorder history is kept in memory.
type Procurement struct {
	mu      sync.Mutex
	history []ReorderRecord
	logger  *logger.Logger
	broker  messaging.Broker
	mailer  *Mailer
	metrics *metrics.Metrics
}

// NewProcurement creates a procurement recorder. mailer may be nil when no
// SMTP transport is configured.
func NewProcurement(log *logger.Logger, broker messaging.Broker, mailer *Mailer, m *metrics.Metrics) *Procurement {
	return &Procurement{
		logger:  log,
		broker:  broker,
		mailer:  mailer,
		metrics: m,
	}
}

func (p *Procurement) Reorder(ctx context.Context, item string, shortfall int) {
	record := ReorderRecord{
		Item:      item,
		Shortfall: shortfall,
		PlacedAt:  time.Now().UTC(),
	}

	p.mu.Lock()
	p.history = append(p.history, record)
	p.mu.Unlock()

	p.metrics.ReordersTotal.WithLabelValues(item).Inc()
	p.logger.Info("reorder placed", "item", item, "shortfall", shortfall)

	msg := messaging.Message{
		ID:      uuid.NewString(),
		Type:    messaging.EventSupplyReorder,
		Payload: record,
	}
	if err := p.broker.Publish(ctx, "supply.reorder", msg); err != nil {
		p.metrics.EventsFailed.WithLabelValues(messaging.EventSupplyReorder).Inc()
		p.logger.Error(err, "failed to publish reorder event", "item", item)
	} else {
		p.metrics.EventsPublished.WithLabelValues(messaging.EventSupplyReorder).Inc()
	}

	if p.mailer != nil {
		if err := p.mailer.SendReorderNotice(item, shortfall); err != nil {
			p.logger.Error(err, "failed to send reorder notice", "item", item)
		}
	}
}

// History returns all reorders placed so far, oldest first.
func (p *Procurement) History() []ReorderRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ReorderRecord(nil), p.history...)
}
