package events

import (
	"context"
	"errors"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

const (
	fetchBatch    = 10
	fetchMaxWait  = 5 * time.Second
	fetchErrPause = 5 * time.Second
)

// Fetcher is the subset of a pull subscription used by RunPullLoop
type Fetcher interface {
	Fetch(batch int, opts ...nats.PullOpt) ([]*nats.Msg, error)
}

// Acker settles a fetched message
type Acker interface {
	Ack(opts ...nats.AckOpt) error
	Nak(opts ...nats.AckOpt) error
}

// RunPullLoop fetches batches until ctx is cancelled. Handler errors nak the
// message so JetStream redelivers it with backoff.
func RunPullLoop(ctx context.Context, sub Fetcher, handler func(data []byte) error, log *logger.Logger) {
	for {
		if ctx.Err() != nil {
			return
		}

		msgs, err := sub.Fetch(fetchBatch, nats.MaxWait(fetchMaxWait))
		if err != nil {
			if errors.Is(err, nats.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			log.Error("Failed to fetch messages from JetStream", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(fetchErrPause):
			}
			continue
		}

		for _, msg := range msgs {
			settle(msg.Data, msg, handler, log)
		}
	}
}

func settle(data []byte, msg Acker, handler func(data []byte) error, log *logger.Logger) {
	if err := handler(data); err != nil {
		log.Error("Failed to handle event", err)
		if nakErr := msg.Nak(); nakErr != nil {
			log.Error("Failed to NAK message", nakErr)
		}
		return
	}

	if ackErr := msg.Ack(); ackErr != nil {
		log.Error("Failed to ACK message", ackErr)
	}
}
