package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"pushpay/internal/core/domain"
	"pushpay/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

const recordColumns = `id, payer, amount, verification_hash, metadata, created_at, content_hash, fee, party_a_share, party_b_share`

// RecordStore implements ports.RecordStore for one merchant. Record IDs come
// from merchants.last_record_id, incremented under a row lock, so each
// merchant gets its own gapless sequence.
type RecordStore struct {
	pool       Pool
	merchantID domain.MerchantID
}

// NewRecordStore creates the record store of merchantID.
func NewRecordStore(pool Pool, merchantID domain.MerchantID) *RecordStore {
	return &RecordStore{pool: pool, merchantID: merchantID}
}

// Append inserts record under the merchant's next sequence number.
func (s *RecordStore) Append(ctx context.Context, record *domain.PaymentRecord) (domain.RecordID, error) {
	for name, v := range map[string]uint64{
		"amount":        record.Amount,
		"fee":           record.Fee,
		"party_a_share": record.PartyAShare,
		"party_b_share": record.PartyBShare,
	} {
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%s %d exceeds BIGINT range", name, v)
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var next int64
	err = tx.QueryRow(ctx,
		`UPDATE merchants SET last_record_id = last_record_id + 1 WHERE id = $1 RETURNING last_record_id`,
		string(s.merchantID),
	).Scan(&next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.ErrNotFound("Merchant")
		}
		return 0, fmt.Errorf("next record id: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO payment_records (merchant_id, `+recordColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		string(s.merchantID), next, string(record.Payer), int64(record.Amount),
		record.VerificationHash, record.Metadata, record.Timestamp, record.ContentHash,
		int64(record.Fee), int64(record.PartyAShare), int64(record.PartyBShare),
	)
	if err != nil {
		return 0, fmt.Errorf("insert payment record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit payment record: %w", err)
	}
	return domain.RecordID(next), nil
}

// Get fetches one record or returns a NotFound error.
func (s *RecordStore) Get(ctx context.Context, id domain.RecordID) (*domain.PaymentRecord, error) {
	if uint64(id) > math.MaxInt64 {
		return nil, apperror.ErrNotFound("Payment record")
	}
	row := s.pool.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM payment_records WHERE merchant_id = $1 AND id = $2`,
		string(s.merchantID), int64(id))

	r, err := s.scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrNotFound("Payment record")
		}
		return nil, fmt.Errorf("get payment record: %w", err)
	}
	return r, nil
}

func (s *RecordStore) Count(ctx context.Context) (int, error) {
	var n int64
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM payment_records WHERE merchant_id = $1`,
		string(s.merchantID)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count payment records: %w", err)
	}
	return int(n), nil
}

// Totals folds every record of the merchant into ledger statistics. Sums
// are done in Go so they are overflow-checked like live payments.
func (s *RecordStore) Totals(ctx context.Context) (domain.LedgerStats, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT amount, fee, party_a_share, party_b_share FROM payment_records WHERE merchant_id = $1 ORDER BY id`,
		string(s.merchantID))
	if err != nil {
		return domain.LedgerStats{}, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	var stats domain.LedgerStats
	for rows.Next() {
		var amount, fee, a, b int64
		if err := rows.Scan(&amount, &fee, &a, &b); err != nil {
			return domain.LedgerStats{}, fmt.Errorf("scan totals: %w", err)
		}
		stats, err = stats.Add(uint64(amount), uint64(fee), uint64(a), uint64(b))
		if err != nil {
			return domain.LedgerStats{}, err
		}
	}
	if err := rows.Err(); err != nil {
		return domain.LedgerStats{}, fmt.Errorf("query totals: %w", err)
	}
	return stats, nil
}

func (s *RecordStore) FindByContentHash(ctx context.Context, hash string) ([]domain.RecordID, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id FROM payment_records WHERE merchant_id = $1 AND content_hash = $2 ORDER BY id`,
		string(s.merchantID), hash)
	if err != nil {
		return nil, fmt.Errorf("find by content hash: %w", err)
	}
	defer rows.Close()

	ids := []domain.RecordID{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan record id: %w", err)
		}
		ids = append(ids, domain.RecordID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find by content hash: %w", err)
	}
	return ids, nil
}

func (s *RecordStore) scanRecord(row pgx.Row) (*domain.PaymentRecord, error) {
	var (
		r                   domain.PaymentRecord
		id                  int64
		payer               string
		amount, fee, pa, pb int64
	)
	err := row.Scan(&id, &payer, &amount, &r.VerificationHash, &r.Metadata,
		&r.Timestamp, &r.ContentHash, &fee, &pa, &pb)
	if err != nil {
		return nil, err
	}
	r.ID = domain.RecordID(id)
	r.MerchantID = s.merchantID
	r.Payer = domain.Identity(payer)
	r.Amount = uint64(amount)
	r.Fee = uint64(fee)
	r.PartyAShare = uint64(pa)
	r.PartyBShare = uint64(pb)
	return &r, nil
}
