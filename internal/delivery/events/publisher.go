package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/Saharyasa/best-buy-2.0/internal/config"
	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
)

// Publisher handles publishing order events to NATS JetStream
type Publisher struct {
	nc     *nats.Conn
	js     nats.JetStreamContext
	logger *logger.Logger
}

// NewPublisher connects to NATS, makes sure the orders stream exists, and
// returns a JetStream publisher
func NewPublisher(cfg *config.Config, log *logger.Logger) (*Publisher, error) {
	nc, err := nats.Connect(cfg.Events.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if err := EnsureStream(js, log); err != nil {
		nc.Close()
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"url": cfg.Events.URL,
	}).Info("Connected to NATS JetStream")

	return &Publisher{
		nc:     nc,
		js:     js,
		logger: log,
	}, nil
}

// Publish publishes a message to a NATS JetStream subject
func (p *Publisher) Publish(ctx context.Context, subject string, data []byte) error {
	// Publish with acknowledgment - ensures message is stored before returning
	pubAck, err := p.js.Publish(subject, data, nats.Context(ctx))
	if err != nil {
		p.logger.WithFields(map[string]interface{}{
			"subject": subject,
		}).Error("Failed to publish message to JetStream", err)
		return fmt.Errorf("failed to publish to JetStream: %w", err)
	}

	p.logger.WithFields(map[string]interface{}{
		"subject":  subject,
		"stream":   pubAck.Stream,
		"sequence": pubAck.Sequence,
	}).Debug("Published message to JetStream")

	return nil
}

// Close closes the NATS connection
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
		p.logger.Info("NATS publisher connection closed")
	}
}

// NoopPublisher discards every event. Used when order events are disabled
// so the API runs without any messaging infrastructure.
type NoopPublisher struct{}

// Publish discards the message
func (NoopPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	return nil
}

// Close does nothing
func (NoopPublisher) Close() {}
