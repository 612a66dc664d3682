package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// Subjects published by the checker service.
const (
	SubjectSubmissionCreated  = "giftcard.submission.created"
	SubjectSubmissionsCleared = "giftcard.submissions.cleared"
)

// SubmissionCreatedEvent is emitted after a submission is stored.
type SubmissionCreatedEvent struct {
	EventID     string    `json:"event_id"`
	CardNumber  string    `json:"card_number"`
	Balance     float64   `json:"balance"`
	DateChecked time.Time `json:"date_checked"`
}

// SubmissionsClearedEvent is emitted after a delete-all wipes the store.
type SubmissionsClearedEvent struct {
	EventID   string    `json:"event_id"`
	Deleted   int64     `json:"deleted"`
	ClearedAt time.Time `json:"cleared_at"`
}

// Publisher emits submission lifecycle events over NATS. The service runs
// without events when NATS is not configured; callers hold a nil *Publisher in
// that case and every method is nil-safe.
type Publisher struct {
	nc  *nats.Conn
	log *logrus.Entry
}

// NewPublisher connects to NATS at the given URL.
func NewPublisher(natsURL string, logger *logrus.Logger) (*Publisher, error) {
	nc, err := nats.Connect(natsURL,
		nats.Name("gift-card-checker-service"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		nc:  nc,
		log: logger.WithField("component", "events.publisher"),
	}, nil
}

func (p *Publisher) publish(subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, data)
}

// PublishSubmissionCreated publishes a submission created event.
func (p *Publisher) PublishSubmissionCreated(cardNumber string, balance float64, dateChecked time.Time) {
	if p == nil {
		return
	}

	event := SubmissionCreatedEvent{
		EventID:     uuid.NewString(),
		CardNumber:  cardNumber,
		Balance:     balance,
		DateChecked: dateChecked,
	}
	if err := p.publish(SubjectSubmissionCreated, event); err != nil {
		p.log.WithError(err).Warn("Failed to publish submission created event")
	}
}

// PublishSubmissionsCleared publishes a submissions cleared event.
func (p *Publisher) PublishSubmissionsCleared(deleted int64) {
	if p == nil {
		return
	}

	event := SubmissionsClearedEvent{
		EventID:   uuid.NewString(),
		Deleted:   deleted,
		ClearedAt: time.Now().UTC(),
	}
	if err := p.publish(SubjectSubmissionsCleared, event); err != nil {
		p.log.WithError(err).Warn("Failed to publish submissions cleared event")
	}
}

// IsConnected returns true if connected to NATS
func (p *Publisher) IsConnected() bool {
	return p != nil && p.nc.IsConnected()
}

// Close closes the publisher connection
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.nc.Close()
}
