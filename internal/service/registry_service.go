package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"pushpay/internal/core/domain"
	"pushpay/internal/core/ports"
	"pushpay/internal/ledger"
	"pushpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// RegistryConfig holds what every ledger built by a Registry shares.
type RegistryConfig struct {
	Stores                    ports.RecordStoreFactory
	Repo                      ports.MerchantRepository // nil keeps merchants in memory only
	Observers                 []ports.Observer
	Beneficiaries             ledger.Beneficiaries
	DefaultFeeRateBasisPoints uint32
	AcquireTimeout            time.Duration
	Logger                    zerolog.Logger
	Clock                     func() time.Time
}

// Registry implements ports.MerchantRegistry.
type Registry struct {
	cfg RegistryConfig
	log zerolog.Logger

	mu      sync.RWMutex
	ledgers map[domain.MerchantID]*ledger.Ledger
}

var _ ports.MerchantRegistry = (*Registry)(nil)

// NewRegistry creates an empty merchant registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Registry{
		cfg:     cfg,
		log:     cfg.Logger,
		ledgers: make(map[domain.MerchantID]*ledger.Ledger),
	}
}

// Get returns the ledger of a registered merchant.
func (r *Registry) Get(id domain.MerchantID) (ports.MerchantLedger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.ledgers[id]
	if !ok {
		return nil, apperror.ErrNotFound("Merchant")
	}
	return l, nil
}

// List returns every registered ledger ordered by merchant ID.
func (r *Registry) List() []ports.MerchantLedger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ports.MerchantLedger, 0, len(r.ledgers))
	for _, l := range r.ledgers {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Register creates a merchant whose administrator is req.Admin.
func (r *Registry) Register(ctx context.Context, req ports.RegisterMerchantRequest) (ports.MerchantLedger, error) {
	if req.ID == "" {
		return nil, apperror.Validation("merchant id is required")
	}
	if req.Admin == "" {
		return nil, apperror.ErrInvalidConfiguration("Merchant administrator is required")
	}
	rate := r.cfg.DefaultFeeRateBasisPoints
	if req.FeeRateBasisPoints != nil {
		rate = *req.FeeRateBasisPoints
	}
	if rate > domain.MaxFeeRateBasisPoints {
		return nil, apperror.ErrFeeRateTooHigh(rate, domain.MaxFeeRateBasisPoints)
	}

	if r.known(req.ID) {
		return nil, apperror.ErrMerchantExists(string(req.ID))
	}

	now := r.cfg.Clock()
	m := domain.Merchant{
		ID:        req.ID,
		Name:      req.Name,
		Admin:     req.Admin,
		Fee:       domain.FeeConfiguration{RateBasisPoints: rate},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Build before the row is written. Storage I/O runs without r.mu.
	l, err := r.build(ctx, m)
	if err != nil {
		return nil, err
	}

	if r.cfg.Repo != nil {
		if err := r.persist(ctx, &m); err != nil {
			return nil, err
		}
	}

	if err := r.publish(l); err != nil {
		return nil, err
	}

	r.log.Info().
		Str("merchant_id", string(m.ID)).
		Str("admin", string(m.Admin)).
		Uint32("fee_rate_bps", rate).
		Msg("merchant registered")
	return l, nil
}

// Load opens a ledger for every merchant in the repository. It returns the
// number of merchants loaded.
func (r *Registry) Load(ctx context.Context) (int, error) {
	if r.cfg.Repo == nil {
		return 0, nil
	}
	merchants, err := r.cfg.Repo.List(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("list merchants: %w", err))
	}

	loaded := 0
	for _, m := range merchants {
		if r.known(m.ID) {
			continue
		}
		l, err := r.build(ctx, m)
		if err != nil {
			return loaded, fmt.Errorf("open ledger %s: %w", m.ID, err)
		}
		if err := r.publish(l); err != nil {
			continue
		}
		loaded++
	}
	return loaded, nil
}

// Seed registers each merchant that is not already known.
func (r *Registry) Seed(ctx context.Context, seeds []ports.RegisterMerchantRequest) error {
	for _, s := range seeds {
		if _, err := r.Get(s.ID); err == nil {
			continue
		}
		if _, err := r.Register(ctx, s); err != nil {
			if apperror.Is(err, apperror.CodeMerchantExists) {
				continue
			}
			return fmt.Errorf("seed merchant %s: %w", s.ID, err)
		}
	}
	return nil
}

func (r *Registry) known(id domain.MerchantID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ledgers[id]
	return ok
}

// persist creates the merchant row. A failed insert for an ID that now
// exists means a concurrent registration won.
func (r *Registry) persist(ctx context.Context, m *domain.Merchant) error {
	existing, err := r.cfg.Repo.GetByID(ctx, m.ID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		return apperror.ErrMerchantExists(string(m.ID))
	}
	if err := r.cfg.Repo.Create(ctx, m); err != nil {
		if existing, gerr := r.cfg.Repo.GetByID(ctx, m.ID); gerr == nil && existing != nil {
			return apperror.ErrMerchantExists(string(m.ID))
		}
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// build opens the ledger of m without registering it.
func (r *Registry) build(ctx context.Context, m domain.Merchant) (*ledger.Ledger, error) {
	return ledger.New(ctx, ledger.Config{
		Merchant:       m,
		Store:          r.cfg.Stores(m.ID),
		Repo:           r.cfg.Repo,
		Observers:      r.cfg.Observers,
		Beneficiaries:  r.cfg.Beneficiaries,
		Logger:         r.cfg.Logger,
		Clock:          r.cfg.Clock,
		AcquireTimeout: r.cfg.AcquireTimeout,
	})
}

// publish makes l visible to Get, unless its ID was taken meanwhile.
func (r *Registry) publish(l *ledger.Ledger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ledgers[l.ID()]; ok {
		return apperror.ErrMerchantExists(string(l.ID()))
	}
	r.ledgers[l.ID()] = l
	return nil
}
