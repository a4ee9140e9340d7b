package service

import (
	"context"
	"time"

	"pushpay/internal/core/domain"
	"pushpay/internal/core/ports"
	"pushpay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "pushpay/internal/service"

// CheckoutServiceImpl implements ports.CheckoutService. It is the only
// component that moves value into a merchant ledger: it authorizes the
// payer's handshake and pushes the payment.
type CheckoutServiceImpl struct {
	merchants ports.MerchantDirectory
	verifier  ports.HandshakeVerifier
	replay    ports.ReplayGuard // optional
	replayTTL time.Duration
	metrics   ports.CheckoutMetrics // optional
	tracer    trace.Tracer
	log       zerolog.Logger
}

// CheckoutOption customizes a CheckoutServiceImpl.
type CheckoutOption func(*CheckoutServiceImpl)

// WithReplayGuard makes every verification hash single-use for ttl.
func WithReplayGuard(g ports.ReplayGuard, ttl time.Duration) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		s.replay = g
		s.replayTTL = ttl
	}
}

// WithCheckoutMetrics records rejected handshakes.
func WithCheckoutMetrics(m ports.CheckoutMetrics) CheckoutOption {
	return func(s *CheckoutServiceImpl) { s.metrics = m }
}

// WithTracer overrides the global otel tracer.
func WithTracer(t trace.Tracer) CheckoutOption {
	return func(s *CheckoutServiceImpl) { s.tracer = t }
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	merchants ports.MerchantDirectory,
	verifier ports.HandshakeVerifier,
	log zerolog.Logger,
	opts ...CheckoutOption,
) *CheckoutServiceImpl {
	s := &CheckoutServiceImpl{
		merchants: merchants,
		verifier:  verifier,
		tracer:    otel.Tracer(tracerName),
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessPayment verifies the handshake and pushes the payment to the
// merchant. On any failure before the push the merchant is never invoked.
// The verification hash is normalized once and that form is verified,
// consumed and recorded.
func (s *CheckoutServiceImpl) ProcessPayment(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentResult, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.ProcessPayment", trace.WithAttributes(
		attribute.String("merchant_id", string(req.MerchantID)),
		attribute.String("payer", string(req.Payer)),
	))
	defer span.End()

	result, err := s.processPayment(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int64("record_id", int64(result.RecordID)),
		attribute.String("tx_id", result.TransactionID.String()),
	)
	return result, nil
}

func (s *CheckoutServiceImpl) processPayment(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentResult, error) {
	if req.Payer == "" {
		return nil, apperror.Validation("payer is required")
	}
	if req.MerchantID == "" {
		return nil, apperror.Validation("merchant_id is required")
	}
	if req.VerificationHash == "" {
		return nil, apperror.Validation("verification_hash is required")
	}

	merchant, err := s.merchants.Get(req.MerchantID)
	if err != nil {
		return nil, err
	}

	hash, ok := domain.NormalizeVerificationHash(req.VerificationHash)
	if !ok {
		s.rejected("malformed_hash", req)
		return nil, apperror.ErrAuthorizationFailed()
	}
	if !s.verifier.Verify(req.Payer, hash, req.FaceProof, req.FingerProof) {
		s.rejected("handshake_mismatch", req)
		return nil, apperror.ErrAuthorizationFailed()
	}

	if s.replay != nil {
		fresh, err := s.replay.Consume(ctx, req.MerchantID, hash, s.replayTTL)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if !fresh {
			s.rejected("handshake_replayed", req)
			return nil, apperror.ErrHandshakeReplayed()
		}
	}

	recordID, err := merchant.ReceivePayment(ctx, req.Payer, req.Amount, hash, req.Metadata)
	if err != nil {
		if s.replay != nil {
			if rerr := s.replay.Release(context.WithoutCancel(ctx), req.MerchantID, hash); rerr != nil {
				s.log.Warn().Err(rerr).Str("merchant_id", string(req.MerchantID)).Msg("failed to release handshake")
			}
		}
		return nil, err
	}

	result := &ports.PaymentResult{
		Success:       true,
		TransactionID: uuid.New(),
		MerchantID:    req.MerchantID,
		RecordID:      recordID,
		Amount:        req.Amount,
	}
	if rec, err := merchant.GetRecord(ctx, recordID); err == nil {
		result.Fee = rec.Fee
	} else {
		s.log.Warn().Err(err).Uint64("record_id", uint64(recordID)).Msg("failed to read back payment record")
	}

	s.log.Info().
		Str("tx_id", result.TransactionID.String()).
		Str("merchant_id", string(req.MerchantID)).
		Str("payer", string(req.Payer)).
		Uint64("record_id", uint64(recordID)).
		Uint64("amount", req.Amount).
		Msg("checkout completed")

	return result, nil
}

func (s *CheckoutServiceImpl) rejected(reason string, req ports.PaymentRequest) {
	if s.metrics != nil {
		s.metrics.IncAuthorizationFailure(reason)
	}
	s.log.Warn().
		Str("reason", reason).
		Str("merchant_id", string(req.MerchantID)).
		Str("payer", string(req.Payer)).
		Msg("checkout rejected")
}
