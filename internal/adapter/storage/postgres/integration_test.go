//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"pushpay/internal/core/domain"
	"pushpay/internal/ledger"
	"pushpay/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

type PostgresSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("pushpay"),
		tcpostgres.WithUsername("pushpay"),
		tcpostgres.WithPassword("pushpay"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	pool, err := pgxpool.New(s.ctx, dsn)
	s.Require().NoError(err)
	s.pool = pool

	s.Require().NoError(Migrate(s.ctx, pool))
}

func (s *PostgresSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if err := testcontainers.TerminateContainer(s.container); err != nil {
		s.T().Logf("terminate postgres container: %v", err)
	}
}

func (s *PostgresSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE payment_records, merchants`)
	s.Require().NoError(err)
}

func (s *PostgresSuite) createMerchant(id domain.MerchantID) *domain.Merchant {
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := &domain.Merchant{
		ID:        id,
		Name:      "Shop " + string(id),
		Admin:     "alice",
		Fee:       domain.FeeConfiguration{RateBasisPoints: 200},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(NewMerchantRepo(s.pool).Create(s.ctx, m))
	return m
}

func (s *PostgresSuite) TestMerchantRoundTrip() {
	repo := NewMerchantRepo(s.pool)
	m := s.createMerchant("shop-1")

	got, err := repo.GetByID(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(m.Admin, got.Admin)
	s.Equal(uint32(200), got.Fee.RateBasisPoints)
	s.True(got.Certification.ExpiresAt.IsZero())

	expiry := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Microsecond)
	s.Require().NoError(repo.UpdateCertification(s.ctx, m.ID, domain.Certification{Certified: true, Hash: "0xc", ExpiresAt: expiry}))
	s.Require().NoError(repo.UpdateFeeRate(s.ctx, m.ID, 1000))
	s.Require().NoError(repo.UpdateAdmin(s.ctx, m.ID, "bob"))

	got, err = repo.GetByID(s.ctx, m.ID)
	s.Require().NoError(err)
	s.True(got.Certification.Certified)
	s.True(expiry.Equal(got.Certification.ExpiresAt))
	s.Equal(uint32(1000), got.Fee.RateBasisPoints)
	s.Equal(domain.Identity("bob"), got.Admin)

	err = repo.UpdateFeeRate(s.ctx, "missing", 1)
	s.True(apperror.Is(err, apperror.CodeNotFound))

	list, err := repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *PostgresSuite) TestFeeRateCapEnforcedBySchema() {
	repo := NewMerchantRepo(s.pool)
	m := s.createMerchant("shop-1")
	s.Error(repo.UpdateFeeRate(s.ctx, m.ID, 1001))
}

func (s *PostgresSuite) TestRecordSequencePerMerchant() {
	s.createMerchant("a")
	s.createMerchant("b")
	storeA := NewRecordStore(s.pool, "a")
	storeB := NewRecordStore(s.pool, "b")

	rec := &domain.PaymentRecord{Payer: "p", Amount: 100, Timestamp: time.Now().UTC(), ContentHash: "0xh", Fee: 2, PartyAShare: 1, PartyBShare: 1}

	id, err := storeA.Append(s.ctx, rec)
	s.Require().NoError(err)
	s.Equal(domain.RecordID(1), id)
	id, err = storeA.Append(s.ctx, rec)
	s.Require().NoError(err)
	s.Equal(domain.RecordID(2), id)
	id, err = storeB.Append(s.ctx, rec)
	s.Require().NoError(err)
	s.Equal(domain.RecordID(1), id)

	ids, err := storeA.FindByContentHash(s.ctx, "0xh")
	s.Require().NoError(err)
	s.Equal([]domain.RecordID{1, 2}, ids)

	n, err := storeA.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	_, err = storeA.Get(s.ctx, 3)
	s.True(apperror.Is(err, apperror.CodeNotFound))
}

func (s *PostgresSuite) TestLedgerRestoresFromStore() {
	m := s.createMerchant("shop-1")
	repo := NewMerchantRepo(s.pool)
	cfg := ledger.Config{
		Merchant: *m,
		Store:    NewRecordStore(s.pool, m.ID),
		Repo:     repo,
		Logger:   zerolog.Nop(),
	}

	l, err := ledger.New(s.ctx, cfg)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.ReceivePayment(s.ctx, "payer", 10000, "0xh", "")
			s.NoError(err)
		}()
	}
	wg.Wait()
	s.Require().NoError(l.SetFeeRate(s.ctx, "alice", 500))

	restored, err := ledger.New(s.ctx, cfg)
	s.Require().NoError(err)
	s.Equal(l.GetStats(), restored.GetStats())
	s.Equal(domain.LedgerStats{
		TotalPayments:      20,
		TotalVolume:        200000,
		TotalFeesCollected: 4000,
		ContributionA:      2000,
		ContributionB:      2000,
	}, restored.GetStats())

	persisted, err := repo.GetByID(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(uint32(500), persisted.Fee.RateBasisPoints)
}
