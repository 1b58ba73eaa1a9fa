package messaging

import (
	"context"
)

// Broker is the boundary to the outbound message transport. Publishes are
// fire-and-forget from the core's point of view; delivery happens in the
// worker process.
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// Channels used between the API and the dispatch worker.
const (
	ChannelSMS       = "screening.sms"
	ChannelEmail     = "screening.email"
	ChannelDocuments = "screening.documents"
)
