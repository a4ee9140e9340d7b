package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pushpay/internal/core/domain"
	"pushpay/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

const merchantColumns = `id, name, admin, fee_rate_bps, certified, certification_hash, cert_expires_at, created_at, updated_at`

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// Create inserts a new merchant into the database.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	query := `INSERT INTO merchants (` + merchantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		string(m.ID), m.Name, string(m.Admin), int32(m.Fee.RateBasisPoints),
		m.Certification.Certified, m.Certification.Hash, nullTime(m.Certification.ExpiresAt),
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID fetches a merchant by ID. Returns nil, nil if it does not exist.
func (r *MerchantRepo) GetByID(ctx context.Context, id domain.MerchantID) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = $1`

	m, err := scanMerchant(r.pool.QueryRow(ctx, query, string(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// List returns every merchant ordered by ID.
func (r *MerchantRepo) List(ctx context.Context) ([]domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()

	var out []domain.Merchant
	for rows.Next() {
		m, err := scanMerchant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan merchant: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	return out, nil
}

// UpdateFeeRate sets the merchant's fee rate.
func (r *MerchantRepo) UpdateFeeRate(ctx context.Context, id domain.MerchantID, rateBps uint32) error {
	return r.update(ctx, "fee rate",
		`UPDATE merchants SET fee_rate_bps = $2, updated_at = NOW() WHERE id = $1`,
		string(id), int32(rateBps))
}

// UpdateCertification overwrites the merchant's certification state.
func (r *MerchantRepo) UpdateCertification(ctx context.Context, id domain.MerchantID, cert domain.Certification) error {
	return r.update(ctx, "certification",
		`UPDATE merchants SET certified = $2, certification_hash = $3, cert_expires_at = $4, updated_at = NOW() WHERE id = $1`,
		string(id), cert.Certified, cert.Hash, nullTime(cert.ExpiresAt))
}

// UpdateAdmin sets the merchant's administrator identity.
func (r *MerchantRepo) UpdateAdmin(ctx context.Context, id domain.MerchantID, admin domain.Identity) error {
	return r.update(ctx, "admin",
		`UPDATE merchants SET admin = $2, updated_at = NOW() WHERE id = $1`,
		string(id), string(admin))
}

func (r *MerchantRepo) update(ctx context.Context, what, query string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update merchant %s: %w", what, err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("Merchant")
	}
	return nil
}

func scanMerchant(row pgx.Row) (*domain.Merchant, error) {
	var (
		m       domain.Merchant
		id      string
		admin   string
		rate    int32
		expires *time.Time
	)
	err := row.Scan(
		&id, &m.Name, &admin, &rate,
		&m.Certification.Certified, &m.Certification.Hash, &expires,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rate < 0 {
		return nil, fmt.Errorf("merchant %s: negative fee rate %d", id, rate)
	}
	m.ID = domain.MerchantID(id)
	m.Admin = domain.Identity(admin)
	m.Fee.RateBasisPoints = uint32(rate)
	if expires != nil {
		m.Certification.ExpiresAt = *expires
	}
	return &m, nil
}

// nullTime maps the zero time to SQL NULL.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
