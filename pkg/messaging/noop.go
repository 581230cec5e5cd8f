package messaging

import (
	"context"
)

// NoopBroker discards all messages. It is the default when no broker is
// configured so the coordinator can run standalone.
type NoopBroker struct{}

func NewNoopBroker() *NoopBroker {
	return &NoopBroker{}
}

func (b *NoopBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	return nil
}

func (b *NoopBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	ch := make(chan []byte)
	close(ch)
	return ch, nil
}

func (b *NoopBroker) Close() error {
	return nil
}
