package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"pushpay/config"
	"pushpay/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type fakeProducer struct {
	mu      sync.Mutex
	records []*kgo.Record
	ctxErrs []error
	err     error
}

func (f *fakeProducer) Produce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error)) {
	f.mu.Lock()
	f.records = append(f.records, r)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	f.mu.Unlock()
	promise(r, f.err)
}

func TestPublisher_Notify(t *testing.T) {
	fp := &fakeProducer{}
	p := NewPublisher(fp, "pushpay.events", zerolog.Nop())
	p.clock = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	p.Notify(context.Background(), domain.FeeSplitExecuted{
		MerchantID:     "shop-1",
		RecordID:       9,
		MerchantAmount: 9800,
		PartyAAmount:   100,
		PartyBAmount:   100,
		TotalFee:       200,
	})

	require.Len(t, fp.records, 1)
	rec := fp.records[0]
	assert.Equal(t, "pushpay.events", rec.Topic)
	assert.Equal(t, []byte("shop-1"), rec.Key)
	require.Len(t, rec.Headers, 1)
	assert.Equal(t, HeaderEventType, rec.Headers[0].Key)
	assert.Equal(t, "FEE_SPLIT_EXECUTED", string(rec.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Value, &body))
	assert.Equal(t, "FEE_SPLIT_EXECUTED", body["event_type"])
	assert.Equal(t, "shop-1", body["merchant_id"])
	assert.Equal(t, float64(9), body["record_id"])
	assert.Equal(t, "2026-01-02T03:04:05Z", body["emitted_at"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(9800), data["merchant_amount"])
	assert.Equal(t, float64(200), data["total_fee"])
}

func TestPublisher_DetachesFromCancelledContext(t *testing.T) {
	fp := &fakeProducer{}
	p := NewPublisher(fp, "t", zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Notify(ctx, domain.PaymentReceived{MerchantID: "m", RecordID: 1})

	require.Len(t, fp.ctxErrs, 1)
	assert.NoError(t, fp.ctxErrs[0])
}

func TestPublisher_DeliveryFailureIsSwallowed(t *testing.T) {
	fp := &fakeProducer{err: errors.New("broker unavailable")}
	p := NewPublisher(fp, "t", zerolog.Nop())

	assert.NotPanics(t, func() {
		p.Notify(context.Background(), domain.PaymentReceived{MerchantID: "m", RecordID: 1, Amount: 5})
	})
	assert.Len(t, fp.records, 1)
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(config.KafkaConfig{
		Brokers:  []string{"localhost:9092"},
		Topic:    "pushpay.events",
		ClientID: "pushpay-test",
	})
	require.NoError(t, err)
	// Nothing buffered, so the flush returns at once.
	defer Shutdown(client, time.Second, zerolog.Nop())

	h := NewHealthCheck(client)
	assert.Equal(t, "kafka", h.Name())
}

type fakeFlushCloser struct {
	calls    []string
	deadline time.Time
	err      error
}

func (f *fakeFlushCloser) Flush(ctx context.Context) error {
	f.calls = append(f.calls, "flush")
	f.deadline, _ = ctx.Deadline()
	return f.err
}

func (f *fakeFlushCloser) Close() {
	f.calls = append(f.calls, "close")
}

func TestShutdown_FlushesBeforeClose(t *testing.T) {
	client := &fakeFlushCloser{}
	start := time.Now()

	Shutdown(client, 3*time.Second, zerolog.Nop())

	assert.Equal(t, []string{"flush", "close"}, client.calls)
	assert.WithinDuration(t, start.Add(3*time.Second), client.deadline, time.Second)
}

func TestShutdown_ClosesWhenFlushTimesOut(t *testing.T) {
	client := &fakeFlushCloser{err: context.DeadlineExceeded}

	Shutdown(client, time.Millisecond, zerolog.Nop())

	assert.Equal(t, []string{"flush", "close"}, client.calls)
}
