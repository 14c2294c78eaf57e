package checkout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
	"github.com/Saharyasa/best-buy-2.0/internal/usecase/catalog"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// OrderEvent is emitted after an order has been fulfilled
type OrderEvent struct {
	EventType string         `json:"event_type"`
	Timestamp time.Time      `json:"timestamp"`
	OrderID   uuid.UUID      `json:"order_id"`
	Lines     []catalog.Line `json:"lines"`
	Total     float64        `json:"total"`
}

// Receipt summarizes a fulfilled order
type Receipt struct {
	OrderID uuid.UUID `json:"order_id"`
	Total   float64   `json:"total"`
}

// Service places orders against the catalog and publishes order events
type Service struct {
	catalog   *catalog.Service
	publisher EventPublisher
	subject   string
	logger    *logger.Logger
}

// NewService creates a new checkout service
func NewService(cat *catalog.Service, publisher EventPublisher, subject string, log *logger.Logger) *Service {
	return &Service{
		catalog:   cat,
		publisher: publisher,
		subject:   subject,
		logger:    log,
	}
}

// PlaceOrder fulfills the requested lines and returns a receipt. Failed
// orders leave the catalog untouched and publish nothing.
func (s *Service) PlaceOrder(ctx context.Context, lines []catalog.Line) (*Receipt, error) {
	total, err := s.catalog.Order(lines)
	if err != nil {
		return nil, err
	}

	receipt := &Receipt{
		OrderID: uuid.New(),
		Total:   total,
	}

	s.publishEvent(ctx, receipt, lines)

	s.logger.WithFields(map[string]interface{}{
		"order_id": receipt.OrderID,
		"total":    receipt.Total,
	}).Info("Order placed successfully")

	return receipt, nil
}

// publishEvent publishes an order event. Event delivery is best-effort;
// a publish failure never fails the already-fulfilled order.
func (s *Service) publishEvent(ctx context.Context, receipt *Receipt, lines []catalog.Line) {
	event := OrderEvent{
		EventType: "order.completed",
		Timestamp: time.Now().UTC(),
		OrderID:   receipt.OrderID,
		Lines:     lines,
		Total:     receipt.Total,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal order event", err)
		return
	}

	if err := s.publisher.Publish(ctx, s.subject, data); err != nil {
		s.logger.Warnf("Failed to publish order event for %s: %v", receipt.OrderID, err)
	}
}
