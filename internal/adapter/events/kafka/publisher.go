// Package kafka publishes ledger events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pushpay/config"
	"pushpay/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// HeaderEventType carries the event type on every record.
const HeaderEventType = "event_type"

// producer is the subset of *kgo.Client the publisher uses.
type producer interface {
	Produce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))
}

// Envelope is the JSON value of a published record.
type Envelope struct {
	EventType  domain.EventType  `json:"event_type"`
	MerchantID domain.MerchantID `json:"merchant_id"`
	RecordID   domain.RecordID   `json:"record_id"`
	EmittedAt  time.Time         `json:"emitted_at"`
	Data       domain.Event      `json:"data"`
}

// Publisher is a ledger observer that produces each event asynchronously.
// Delivery failures are logged; they never affect the payment.
type Publisher struct {
	client producer
	topic  string
	clock  func() time.Time
	log    zerolog.Logger
}

// NewClient creates a franz-go client for cfg.
func NewClient(cfg config.KafkaConfig) (*kgo.Client, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kafka client: %w", err)
	}
	return client, nil
}

// NewPublisher creates a publisher producing to topic.
func NewPublisher(client producer, topic string, log zerolog.Logger) *Publisher {
	return &Publisher{client: client, topic: topic, clock: time.Now, log: log}
}

// Notify produces event keyed by merchant ID.
func (p *Publisher) Notify(ctx context.Context, event domain.Event) {
	value, err := json.Marshal(Envelope{
		EventType:  event.Type(),
		MerchantID: event.Merchant(),
		RecordID:   event.Record(),
		EmittedAt:  p.clock().UTC(),
		Data:       event,
	})
	if err != nil {
		p.log.Error().Err(err).Str("event_type", string(event.Type())).Msg("failed to encode event")
		return
	}

	rec := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Merchant()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: HeaderEventType, Value: []byte(event.Type())},
		},
	}

	// The request context ends with the HTTP response; delivery must not.
	p.client.Produce(context.WithoutCancel(ctx), rec, func(r *kgo.Record, err error) {
		if err != nil {
			p.log.Warn().
				Err(err).
				Str("event_type", string(event.Type())).
				Str("merchant_id", string(event.Merchant())).
				Msg("failed to publish event")
		}
	})
}

// flushCloser is the subset of *kgo.Client used at shutdown.
type flushCloser interface {
	Flush(ctx context.Context) error
	Close()
}

// Shutdown delivers buffered records, waiting at most timeout, then closes
// the client. Records still undelivered at the deadline are dropped.
func Shutdown(client flushCloser, timeout time.Duration, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Flush(ctx); err != nil {
		log.Warn().Err(err).Dur("timeout", timeout).Msg("kafka flush incomplete, closing with buffered events")
	}
	client.Close()
}

// HealthCheck reports whether a Kafka broker is reachable.
type HealthCheck struct {
	client *kgo.Client
}

// NewHealthCheck creates a kafka health checker.
func NewHealthCheck(client *kgo.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Ping(ctx)
}

func (h *HealthCheck) Name() string {
	return "kafka"
}
