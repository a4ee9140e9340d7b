// Package memory provides in-process storage adapters.
package memory

import (
	"context"
	"sync"

	"pushpay/internal/core/domain"
	"pushpay/pkg/apperror"
)

// RecordStore implements ports.RecordStore in memory.
type RecordStore struct {
	mu       sync.RWMutex
	records  []domain.PaymentRecord
	byDigest map[string][]domain.RecordID
}

// NewRecordStore creates an empty in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{byDigest: make(map[string][]domain.RecordID)}
}

// Append stores a copy of record under the next sequence number.
func (s *RecordStore) Append(_ context.Context, record *domain.PaymentRecord) (domain.RecordID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := domain.RecordID(len(s.records) + 1)
	r := *record
	r.ID = id
	s.records = append(s.records, r)
	s.byDigest[r.ContentHash] = append(s.byDigest[r.ContentHash], id)
	return id, nil
}

func (s *RecordStore) Get(_ context.Context, id domain.RecordID) (*domain.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id == 0 || uint64(id) > uint64(len(s.records)) {
		return nil, apperror.ErrNotFound("Payment record")
	}
	r := s.records[id-1]
	return &r, nil
}

func (s *RecordStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Totals sums every stored record.
func (s *RecordStore) Totals(_ context.Context) (domain.LedgerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats domain.LedgerStats
	for _, r := range s.records {
		next, err := stats.Add(r.Amount, r.Fee, r.PartyAShare, r.PartyBShare)
		if err != nil {
			return domain.LedgerStats{}, err
		}
		stats = next
	}
	return stats, nil
}

func (s *RecordStore) FindByContentHash(_ context.Context, hash string) ([]domain.RecordID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byDigest[hash]
	out := make([]domain.RecordID, len(ids))
	copy(out, ids)
	return out, nil
}
