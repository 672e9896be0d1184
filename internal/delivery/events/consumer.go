package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/grocery_catalog/internal/config"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

// Consumer receives catalog events over plain NATS subscriptions
type Consumer struct {
	nc     *nats.Conn
	logger *logger.Logger
	subs   []*nats.Subscription
}

// NewConsumer creates a new NATS consumer
func NewConsumer(cfg *config.Config, name string, log *logger.Logger) (*Consumer, error) {
	nc, err := Connect(cfg, name, log)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		nc:     nc,
		logger: log,
	}, nil
}

// Subscribe subscribes to a NATS subject and processes messages
func (c *Consumer) Subscribe(subject string, handler func(data []byte) error) error {
	sub, err := c.nc.Subscribe(subject, func(msg *nats.Msg) {
		c.logger.Debugf("Received message on subject %s", subject)

		if err := handler(msg.Data); err != nil {
			c.logger.Errorf(err, "Failed to handle message on subject %s", subject)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	c.subs = append(c.subs, sub)
	c.logger.Infof("Subscribed to NATS subject: %s", subject)
	return nil
}

// Close unsubscribes and closes the NATS connection
func (c *Consumer) Close() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			c.logger.Warnf("Failed to unsubscribe from %s: %v", sub.Subject, err)
		}
	}
	if c.nc != nil {
		c.nc.Close()
		c.logger.Info("NATS consumer connection closed")
	}
}

// envelope holds the fields shared by product and seller events
type envelope struct {
	EventType string `json:"event_type"`
	ProductID string `json:"product_id,omitempty"`
	SellerID  string `json:"seller_id,omitempty"`
}

// LoggingHandler logs a one-line summary of every event
func LoggingHandler(log *logger.Logger) func(data []byte) error {
	return func(data []byte) error {
		var event envelope
		if err := json.Unmarshal(data, &event); err != nil {
			log.Error("Failed to unmarshal event", err)
			return err
		}

		fields := map[string]interface{}{
			"event_type": event.EventType,
			"seller_id":  event.SellerID,
			"bytes":      len(data),
		}
		if event.ProductID != "" {
			fields["product_id"] = event.ProductID
		}
		log.WithFields(fields).Info("Catalog event")
		return nil
	}
}
