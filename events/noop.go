package events

import "context"

// NoopPublisher hiçbir şey yapmayan Publisher (gerçek zamanlı katman kapalıyken).
type NoopPublisher struct{}

func (n *NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}

var _ Publisher = (*NoopPublisher)(nil)
