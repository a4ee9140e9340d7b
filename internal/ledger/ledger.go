// Package ledger implements the merchant-side payment ledger: it records
// pushed payments, splits the protocol fee between the two beneficiaries and
// holds the merchant's certification and fee configuration.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pushpay/internal/core/domain"
	"pushpay/internal/core/fee"
	"pushpay/internal/core/ports"
	"pushpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// Beneficiaries are the two fixed recipients of the protocol fee.
type Beneficiaries struct {
	A domain.Identity
	B domain.Identity
}

// Config holds the dependencies of a Ledger.
type Config struct {
	Merchant      domain.Merchant
	Store         ports.RecordStore
	Repo          ports.MerchantRepository // optional; admin changes are persisted first
	Observers     []ports.Observer
	Beneficiaries Beneficiaries
	Logger        zerolog.Logger
	Clock         func() time.Time
	// AcquireTimeout bounds the wait for a concurrent in-flight call.
	AcquireTimeout time.Duration
}

// Ledger is the payment ledger of a single merchant. It implements
// ports.MerchantLedger.
type Ledger struct {
	id            domain.MerchantID
	name          string
	createdAt     time.Time
	store         ports.RecordStore
	repo          ports.MerchantRepository
	beneficiaries Beneficiaries
	clock         func() time.Time
	log           zerolog.Logger
	guard         *guard

	mu        sync.RWMutex
	admin     domain.Identity
	fee       domain.FeeConfiguration
	cert      domain.Certification
	stats     domain.LedgerStats
	updatedAt time.Time
	observers []ports.Observer
}

var _ ports.MerchantLedger = (*Ledger)(nil)

// New builds a ledger for cfg.Merchant and restores its statistics from the
// records already in cfg.Store.
func New(ctx context.Context, cfg Config) (*Ledger, error) {
	m := cfg.Merchant
	if m.ID == "" {
		return nil, apperror.ErrInvalidConfiguration("Merchant ID is required")
	}
	if m.Admin == "" {
		return nil, apperror.ErrInvalidConfiguration("Merchant administrator is required")
	}
	if !m.Fee.Valid() {
		return nil, apperror.ErrFeeRateTooHigh(m.Fee.RateBasisPoints, domain.MaxFeeRateBasisPoints)
	}
	if cfg.Store == nil {
		return nil, apperror.ErrInvalidConfiguration("Record store is required")
	}

	stats, err := cfg.Store.Totals(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("restore ledger %s: %w", m.ID, err))
	}
	if !stats.Balanced() {
		return nil, apperror.InternalError(fmt.Errorf("ledger %s: stored fee shares do not sum to collected fees", m.ID))
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = clock()
	}
	updatedAt := m.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return &Ledger{
		id:            m.ID,
		name:          m.Name,
		createdAt:     createdAt,
		store:         cfg.Store,
		repo:          cfg.Repo,
		beneficiaries: cfg.Beneficiaries,
		clock:         clock,
		log:           cfg.Logger.With().Str("merchant_id", string(m.ID)).Logger(),
		guard:         newGuard(cfg.AcquireTimeout),
		admin:         m.Admin,
		fee:           m.Fee,
		cert:          m.Certification,
		stats:         stats,
		updatedAt:     updatedAt,
		observers:     append([]ports.Observer(nil), cfg.Observers...),
	}, nil
}

// Subscribe adds an observer for subsequent payments.
func (l *Ledger) Subscribe(o ports.Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// ReceivePayment records a payment pushed by from, splits the fee and
// notifies observers. Either every effect happens or none does.
func (l *Ledger) ReceivePayment(ctx context.Context, from domain.Identity, amount uint64, verificationHash, metadata string) (domain.RecordID, error) {
	ctx, release, err := l.guard.enter(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	l.mu.RLock()
	rate := l.fee.RateBasisPoints
	stats := l.stats
	l.mu.RUnlock()

	split := fee.Calculate(amount, rate)
	next, err := stats.Add(amount, split.Fee, split.PartyA, split.PartyB)
	if err != nil {
		var overflow *domain.OverflowError
		if errors.As(err, &overflow) {
			return 0, apperror.ErrCounterOverflow(overflow.Counter)
		}
		return 0, apperror.InternalError(err)
	}

	now := l.clock()
	record := &domain.PaymentRecord{
		MerchantID:       l.id,
		Payer:            from,
		Amount:           amount,
		VerificationHash: verificationHash,
		Metadata:         metadata,
		Timestamp:        now,
		ContentHash:      domain.ContentHash(from, amount, verificationHash, now),
		Fee:              split.Fee,
		PartyAShare:      split.PartyA,
		PartyBShare:      split.PartyB,
	}

	id, err := l.store.Append(ctx, record)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("append payment record: %w", err))
	}
	record.ID = id

	l.mu.Lock()
	l.stats = next
	observers := l.observers
	l.mu.Unlock()

	l.log.Info().
		Uint64("record_id", uint64(id)).
		Str("from", string(from)).
		Uint64("amount", amount).
		Uint64("fee", split.Fee).
		Msg("payment received")

	l.notify(ctx, observers, domain.PaymentReceived{
		MerchantID:       l.id,
		RecordID:         id,
		From:             from,
		Amount:           amount,
		VerificationHash: verificationHash,
		Metadata:         metadata,
		Timestamp:        now,
	})
	l.notify(ctx, observers, domain.FeeSplitExecuted{
		MerchantID:     l.id,
		RecordID:       id,
		MerchantAmount: split.MerchantAmount,
		BeneficiaryA:   l.beneficiaries.A,
		PartyAAmount:   split.PartyA,
		BeneficiaryB:   l.beneficiaries.B,
		PartyBAmount:   split.PartyB,
		TotalFee:       split.Fee,
	})

	return id, nil
}

// notify delivers event to every observer. The payment is already
// committed, so an observer panic is logged and does not undo it.
func (l *Ledger) notify(ctx context.Context, observers []ports.Observer, event domain.Event) {
	for _, o := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					l.log.Error().
						Interface("panic", r).
						Str("event_type", string(event.Type())).
						Msg("observer panicked")
				}
			}()
			o.Notify(ctx, event)
		}()
	}
}

// SetCertification overwrites the certification state. Admin only.
func (l *Ledger) SetCertification(ctx context.Context, caller domain.Identity, certified bool, hash string, expiresAt time.Time) error {
	if err := l.authorize(caller); err != nil {
		return err
	}
	ctx, release, err := l.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()
	// The administrator may have changed while waiting for the guard.
	if err := l.authorize(caller); err != nil {
		return err
	}

	cert := domain.Certification{Certified: certified, Hash: hash, ExpiresAt: expiresAt}
	if l.repo != nil {
		if err := l.repo.UpdateCertification(ctx, l.id, cert); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update certification: %w", err))
		}
	}

	l.mu.Lock()
	l.cert = cert
	l.updatedAt = l.clock()
	l.mu.Unlock()

	l.log.Info().
		Bool("certified", certified).
		Str("certification_hash", hash).
		Time("expires_at", expiresAt).
		Msg("certification updated")
	return nil
}

// SetFeeRate changes the fee rate for subsequent payments. Admin only.
func (l *Ledger) SetFeeRate(ctx context.Context, caller domain.Identity, rateBps uint32) error {
	if err := l.authorize(caller); err != nil {
		return err
	}
	ctx, release, err := l.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()
	if err := l.authorize(caller); err != nil {
		return err
	}

	if !(domain.FeeConfiguration{RateBasisPoints: rateBps}).Valid() {
		return apperror.ErrFeeRateTooHigh(rateBps, domain.MaxFeeRateBasisPoints)
	}
	if l.repo != nil {
		if err := l.repo.UpdateFeeRate(ctx, l.id, rateBps); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update fee rate: %w", err))
		}
	}

	l.mu.Lock()
	old := l.fee.RateBasisPoints
	l.fee.RateBasisPoints = rateBps
	l.updatedAt = l.clock()
	l.mu.Unlock()

	l.log.Info().Uint32("old_fee_rate_bps", old).Uint32("fee_rate_bps", rateBps).Msg("fee rate updated")
	return nil
}

// TransferAdmin hands the administrator role to newAdmin. Admin only.
func (l *Ledger) TransferAdmin(ctx context.Context, caller, newAdmin domain.Identity) error {
	if err := l.authorize(caller); err != nil {
		return err
	}
	ctx, release, err := l.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()
	if err := l.authorize(caller); err != nil {
		return err
	}

	if newAdmin == "" {
		return apperror.ErrInvalidConfiguration("New administrator identity is required")
	}
	if l.repo != nil {
		if err := l.repo.UpdateAdmin(ctx, l.id, newAdmin); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update admin: %w", err))
		}
	}

	l.mu.Lock()
	l.admin = newAdmin
	l.updatedAt = l.clock()
	l.mu.Unlock()

	l.log.Info().Str("old_admin", string(caller)).Str("admin", string(newAdmin)).Msg("administrator transferred")
	return nil
}

func (l *Ledger) authorize(caller domain.Identity) error {
	l.mu.RLock()
	admin := l.admin
	l.mu.RUnlock()
	if caller == "" || caller != admin {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// GetRecord returns a stored payment record.
func (l *Ledger) GetRecord(ctx context.Context, id domain.RecordID) (*domain.PaymentRecord, error) {
	return l.store.Get(ctx, id)
}

// FindByContentHash returns the IDs of records with the given content hash.
func (l *Ledger) FindByContentHash(ctx context.Context, hash string) ([]domain.RecordID, error) {
	return l.store.FindByContentHash(ctx, hash)
}

func (l *Ledger) GetCertification() domain.Certification {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cert
}

func (l *Ledger) GetFeeRate() uint32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fee.RateBasisPoints
}

func (l *Ledger) GetStats() domain.LedgerStats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stats
}

func (l *Ledger) ID() domain.MerchantID { return l.id }

func (l *Ledger) Admin() domain.Identity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.admin
}

// Profile returns a snapshot of the merchant behind the ledger.
func (l *Ledger) Profile() domain.Merchant {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.Merchant{
		ID:            l.id,
		Name:          l.name,
		Admin:         l.admin,
		Fee:           l.fee,
		Certification: l.cert,
		CreatedAt:     l.createdAt,
		UpdatedAt:     l.updatedAt,
	}
}
