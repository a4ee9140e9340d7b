package ports

import (
	"context"
	"time"

	"pushpay/internal/core/domain"

	"github.com/google/uuid"
)

// Payable is the capability a merchant exposes to receive pushed payments.
// There is no way to pull funds through it.
type Payable interface {
	// ReceivePayment records a payment pushed by from. A nil error means the
	// payment was accepted.
	ReceivePayment(ctx context.Context, from domain.Identity, amount uint64, verificationHash, metadata string) (domain.RecordID, error)
	GetCertification() domain.Certification
	GetFeeRate() uint32
	GetStats() domain.LedgerStats
}

// MerchantLedger is a Payable with its administrative surface.
type MerchantLedger interface {
	Payable

	ID() domain.MerchantID
	Admin() domain.Identity
	Profile() domain.Merchant
	GetRecord(ctx context.Context, id domain.RecordID) (*domain.PaymentRecord, error)

	SetCertification(ctx context.Context, caller domain.Identity, certified bool, hash string, expiresAt time.Time) error
	SetFeeRate(ctx context.Context, caller domain.Identity, rateBps uint32) error
	TransferAdmin(ctx context.Context, caller, newAdmin domain.Identity) error
}

// Observer receives ledger notifications synchronously, after the payment
// has been committed. The ctx carries the in-flight ledger call.
type Observer interface {
	Notify(ctx context.Context, event domain.Event)
}

// HandshakeVerifier confirms that face and finger proofs belong to the payer
// and jointly hash to the verification hash.
type HandshakeVerifier interface {
	Verify(payer domain.Identity, verificationHash, faceProof, fingerProof string) bool
}

// ReplayGuard makes a verification hash single-use per merchant.
type ReplayGuard interface {
	// Consume marks hash as used. Returns false if it was already used.
	Consume(ctx context.Context, merchantID domain.MerchantID, hash string, ttl time.Duration) (bool, error)
	// Release forgets a consumed hash, used when the payment did not go through.
	Release(ctx context.Context, merchantID domain.MerchantID, hash string) error
}

// CheckoutMetrics records checkout outcomes that never reach a ledger.
type CheckoutMetrics interface {
	IncAuthorizationFailure(reason string)
}

// TokenService handles JWT identity tokens.
type TokenService interface {
	Generate(subject domain.Identity) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject   domain.Identity
	ExpiresAt time.Time
}

// --- Service Ports (Business Logic) ---

// CheckoutService authorizes payer handshakes and pushes payments to merchants.
type CheckoutService interface {
	ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

// PaymentRequest holds validated input for a checkout.
type PaymentRequest struct {
	Payer            domain.Identity
	MerchantID       domain.MerchantID
	Amount           uint64
	VerificationHash string
	FaceProof        string
	FingerProof      string
	Metadata         string
}

// PaymentResult describes an accepted checkout.
type PaymentResult struct {
	Success       bool
	TransactionID uuid.UUID
	MerchantID    domain.MerchantID
	RecordID      domain.RecordID
	Amount        uint64
	Fee           uint64
}

// MerchantDirectory resolves merchant ledgers by ID.
type MerchantDirectory interface {
	// Get returns the ledger or a NotFound error.
	Get(id domain.MerchantID) (MerchantLedger, error)
}

// MerchantRegistry is the process-wide set of merchant ledgers.
type MerchantRegistry interface {
	MerchantDirectory
	Register(ctx context.Context, req RegisterMerchantRequest) (MerchantLedger, error)
	List() []MerchantLedger
}

// RegisterMerchantRequest holds input for merchant registration.
// A nil FeeRateBasisPoints selects the protocol default.
type RegisterMerchantRequest struct {
	ID                 domain.MerchantID
	Name               string
	Admin              domain.Identity
	FeeRateBasisPoints *uint32
}
