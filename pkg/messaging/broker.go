package messaging

import (
	"context"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// Message is the envelope published for coordinator lifecycle events.
type Message struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Lifecycle event types published by the coordinator.
const (
	EventPatientRegistered = "PATIENT_REGISTERED"
	EventPatientInTransit  = "PATIENT_IN_TRANSIT"
	EventPatientDischarged = "PATIENT_DISCHARGED"
	EventSupplyReorder     = "SUPPLY_REORDER"
)
