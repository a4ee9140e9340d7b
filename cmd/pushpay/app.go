package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"pushpay/config"
	kafkaEvents "pushpay/internal/adapter/events/kafka"
	httpHandler "pushpay/internal/adapter/http/handler"
	"pushpay/internal/adapter/metrics"
	"pushpay/internal/adapter/storage/memory"
	pgStorage "pushpay/internal/adapter/storage/postgres"
	redisStorage "pushpay/internal/adapter/storage/redis"
	"pushpay/internal/core/domain"
	"pushpay/internal/core/ports"
	"pushpay/internal/ledger"
	"pushpay/internal/service"
	"pushpay/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// app is the wired service: every adapter selected by config, behind one
// http.Handler.
type app struct {
	handler  http.Handler
	registry *service.Registry
	closers  []func()
}

// Close releases adapters in reverse order of construction.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (_ *app, err error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret is required (PUSHPAY_JWT_SECRET)")
	}

	a := &app{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	var (
		checkers  []ports.HealthChecker
		observers = []ports.Observer{service.NewAuditObserver(logger.Component(log, "audit"))}
		stores    ports.RecordStoreFactory
		repo      ports.MerchantRepository
	)

	// Storage
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			return nil, err
		}
		stores = func(id domain.MerchantID) ports.RecordStore { return pgStorage.NewRecordStore(pool, id) }
		repo = pgStorage.NewMerchantRepo(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	default:
		log.Warn().Msg("memory storage selected: ledgers are lost on restart")
		stores = func(domain.MerchantID) ports.RecordStore { return memory.NewRecordStore() }
	}

	// Metrics
	var (
		checkoutOpts   []service.CheckoutOption
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m := metrics.New(reg)
		observers = append(observers, m)
		checkoutOpts = append(checkoutOpts, service.WithCheckoutMetrics(m))
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	// Event stream
	if cfg.Kafka.Enabled {
		client, err := kafkaEvents.NewClient(cfg.Kafka)
		if err != nil {
			return nil, fmt.Errorf("creating kafka client: %w", err)
		}
		kafkaLog := logger.Component(log, "kafka")
		a.closers = append(a.closers, func() { kafkaEvents.Shutdown(client, cfg.Kafka.FlushTimeout, kafkaLog) })
		observers = append(observers, kafkaEvents.NewPublisher(client, cfg.Kafka.Topic, kafkaLog))
		checkers = append(checkers, kafkaEvents.NewHealthCheck(client))
	}

	// Redis: handshake replay guard and rate limiting
	var rateLimit *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		checkoutOpts = append(checkoutOpts, service.WithReplayGuard(redisStorage.NewReplayGuard(rdb), cfg.Redis.ReplayTTL))
		rateLimit = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	// Ledgers
	a.registry = service.NewRegistry(service.RegistryConfig{
		Stores:    stores,
		Repo:      repo,
		Observers: observers,
		Beneficiaries: ledger.Beneficiaries{
			A: domain.Identity(cfg.Protocol.BeneficiaryA),
			B: domain.Identity(cfg.Protocol.BeneficiaryB),
		},
		DefaultFeeRateBasisPoints: cfg.Protocol.DefaultFeeRateBasisPoints,
		Logger:                    logger.Component(log, "ledger"),
	})
	loaded, err := a.registry.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading merchants: %w", err)
	}
	if err := a.registry.Seed(ctx, seedRequests(cfg.Merchants)); err != nil {
		return nil, err
	}
	log.Info().Int("loaded", loaded).Int("merchants", len(a.registry.List())).Msg("merchant ledgers ready")

	checkout := service.NewCheckoutService(a.registry, service.NewKeccakHandshakeVerifier(), logger.Component(log, "checkout"), checkoutOpts...)

	deps := httpHandler.RouterDeps{
		Checkout:       checkout,
		Registry:       a.registry,
		TokenSvc:       service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer),
		HealthCheckers: checkers,
		Metrics:        metricsHandler,
		MetricsPath:    cfg.Metrics.Path,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	}
	// A nil *RateLimitStore must not become a non-nil interface.
	if rateLimit != nil {
		deps.RateLimitStore = rateLimit
	}
	a.handler = httpHandler.SetupRouter(deps)

	return a, nil
}

func seedRequests(seeds []config.MerchantConfig) []ports.RegisterMerchantRequest {
	reqs := make([]ports.RegisterMerchantRequest, 0, len(seeds))
	for _, s := range seeds {
		reqs = append(reqs, ports.RegisterMerchantRequest{
			ID:                 domain.MerchantID(s.ID),
			Name:               s.Name,
			Admin:              domain.Identity(s.Admin),
			FeeRateBasisPoints: s.FeeRateBasisPoints,
		})
	}
	return reqs
}
