package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"pushpay/internal/core/domain"
	"pushpay/pkg/apperror"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMerchant() *domain.Merchant {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Merchant{
		ID:    "shop-1",
		Name:  "Test Shop",
		Admin: "alice",
		Fee:   domain.FeeConfiguration{RateBasisPoints: 200},
		Certification: domain.Certification{
			Certified: true,
			Hash:      "0xcert",
			ExpiresAt: now.Add(365 * 24 * time.Hour),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func merchantCols() []string {
	return []string{"id", "name", "admin", "fee_rate_bps", "certified", "certification_hash", "cert_expires_at", "created_at", "updated_at"}
}

func merchantRow(rows *pgxmock.Rows, m *domain.Merchant) *pgxmock.Rows {
	var expires *time.Time
	if !m.Certification.ExpiresAt.IsZero() {
		t := m.Certification.ExpiresAt
		expires = &t
	}
	return rows.AddRow(
		string(m.ID), m.Name, string(m.Admin), int32(m.Fee.RateBasisPoints),
		m.Certification.Certified, m.Certification.Hash, expires,
		m.CreatedAt, m.UpdatedAt,
	)
}

func TestMerchantRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectExec("INSERT INTO merchants").
		WithArgs("shop-1", "Test Shop", "alice", int32(200),
			true, "0xcert", pgxmock.AnyArg(),
			m.CreatedAt, m.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), m)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectExec("INSERT INTO merchants").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("duplicate key"))

	err = repo.Create(context.Background(), newTestMerchant())
	assert.ErrorContains(t, err, "insert merchant")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs("shop-1").
		WillReturnRows(merchantRow(pgxmock.NewRows(merchantCols()), m))

	result, err := repo.GetByID(context.Background(), "shop-1")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, m.ID, result.ID)
	assert.Equal(t, m.Admin, result.Admin)
	assert.Equal(t, uint32(200), result.Fee.RateBasisPoints)
	assert.Equal(t, m.Certification, result.Certification)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByID_NoExpiry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()
	m.Certification = domain.Certification{}

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs("shop-1").
		WillReturnRows(merchantRow(pgxmock.NewRows(merchantCols()), m))

	result, err := repo.GetByID(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.True(t, result.Certification.ExpiresAt.IsZero())
	assert.False(t, result.Certification.Certified)
}

func TestMerchantRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(merchantCols()))

	result, err := repo.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	a := newTestMerchant()
	b := newTestMerchant()
	b.ID = "shop-2"
	b.Admin = "bob"

	rows := pgxmock.NewRows(merchantCols())
	merchantRow(rows, a)
	merchantRow(rows, b)
	mock.ExpectQuery("SELECT .+ FROM merchants ORDER BY id").WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.MerchantID("shop-1"), list[0].ID)
	assert.Equal(t, domain.Identity("bob"), list[1].Admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_UpdateFeeRate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectExec("UPDATE merchants SET fee_rate_bps").
		WithArgs("shop-1", int32(300)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateFeeRate(context.Background(), "shop-1", 300))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_UpdateFeeRate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectExec("UPDATE merchants SET fee_rate_bps").
		WithArgs("missing", int32(300)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateFeeRate(context.Background(), "missing", 300)
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}

func TestMerchantRepo_UpdateCertification(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectExec("UPDATE merchants SET certified").
		WithArgs("shop-1", false, "", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateCertification(context.Background(), "shop-1", domain.Certification{})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_UpdateAdmin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectExec("UPDATE merchants SET admin").
		WithArgs("shop-1", "bob").
		WillReturnError(errors.New("connection reset"))

	err = repo.UpdateAdmin(context.Background(), "shop-1", "bob")
	assert.ErrorContains(t, err, "update merchant admin")
	assert.NoError(t, mock.ExpectationsWereMet())
}
