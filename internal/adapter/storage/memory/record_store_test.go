package memory

import (
	"context"
	"sync"
	"testing"

	"pushpay/internal/core/domain"
	"pushpay/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore_AppendAssignsSequence(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore()

	for want := domain.RecordID(1); want <= 3; want++ {
		id, err := s.Append(ctx, &domain.PaymentRecord{Amount: uint64(want) * 100, ContentHash: "0xaa"})
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRecordStore_Get(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore()

	rec := &domain.PaymentRecord{Payer: "alice", Amount: 500, Metadata: "order-1"}
	id, err := s.Append(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, domain.RecordID(0), rec.ID, "caller's record is not mutated")

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.Identity("alice"), got.Payer)
	assert.Equal(t, "order-1", got.Metadata)

	got.Amount = 1
	again, _ := s.Get(ctx, id)
	assert.Equal(t, uint64(500), again.Amount, "returned record is a copy")
}

func TestRecordStore_GetNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore()
	_, _ = s.Append(ctx, &domain.PaymentRecord{})

	for _, id := range []domain.RecordID{0, 2, 99} {
		_, err := s.Get(ctx, id)
		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.CodeNotFound), "id %d", id)
	}
}

func TestRecordStore_FindByContentHash(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore()

	id1, _ := s.Append(ctx, &domain.PaymentRecord{ContentHash: "0xsame"})
	_, _ = s.Append(ctx, &domain.PaymentRecord{ContentHash: "0xother"})
	id3, _ := s.Append(ctx, &domain.PaymentRecord{ContentHash: "0xsame"})

	ids, err := s.FindByContentHash(ctx, "0xsame")
	require.NoError(t, err)
	assert.Equal(t, []domain.RecordID{id1, id3}, ids)

	ids, err = s.FindByContentHash(ctx, "0xmissing")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRecordStore_Totals(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore()

	_, _ = s.Append(ctx, &domain.PaymentRecord{Amount: 10000, Fee: 200, PartyAShare: 100, PartyBShare: 100})
	_, _ = s.Append(ctx, &domain.PaymentRecord{Amount: 150, Fee: 3, PartyAShare: 1, PartyBShare: 2})

	stats, err := s.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LedgerStats{
		TotalPayments:      2,
		TotalVolume:        10150,
		TotalFeesCollected: 203,
		ContributionA:      101,
		ContributionB:      102,
	}, stats)
}

func TestRecordStore_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Append(ctx, &domain.PaymentRecord{Amount: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	n, _ := s.Count(ctx)
	assert.Equal(t, 50, n)
	for id := domain.RecordID(1); id <= 50; id++ {
		_, err := s.Get(ctx, id)
		assert.NoError(t, err)
	}
}
