package events

import (
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
)

const (
	// StreamName is the JetStream stream for order events
	StreamName = "ORDERS"

	// StreamSubjects defines the subjects this stream captures
	StreamSubjects = "orders.>"
)

// EnsureStream creates the JetStream stream for order events if it does not
// exist yet
func EnsureStream(js nats.JetStreamContext, log *logger.Logger) error {
	_, err := js.StreamInfo(StreamName)
	if err == nil {
		log.Debugf("JetStream stream %s already exists", StreamName)
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNotFound) {
		return fmt.Errorf("failed to look up stream %s: %w", StreamName, err)
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{StreamSubjects},
		Storage:   nats.FileStorage,
		Retention: nats.LimitsPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", StreamName, err)
	}

	log.Infof("Created JetStream stream %s for subjects %s", StreamName, StreamSubjects)
	return nil
}
