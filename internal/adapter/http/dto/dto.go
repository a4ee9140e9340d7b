package dto

import (
	"time"

	"pushpay/internal/core/domain"
	"pushpay/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CheckoutRequest is the request body for a checkout. The payer is the
// authenticated caller, never a body field.
type CheckoutRequest struct {
	MerchantID       string `json:"merchant_id" binding:"required,safe_id,max=64"`
	Amount           uint64 `json:"amount"`
	VerificationHash string `json:"verification_hash" binding:"required,verification_hash"`
	FaceProof        string `json:"face_proof" binding:"max=512"`
	FingerProof      string `json:"finger_proof" binding:"max=512"`
	Metadata         string `json:"metadata" binding:"max=1024"`
}

// CheckoutResponse is the response body for an accepted checkout.
type CheckoutResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	MerchantID    string `json:"merchant_id"`
	RecordID      uint64 `json:"record_id"`
	Amount        uint64 `json:"amount"`
	Fee           uint64 `json:"fee"`
}

// NewCheckoutResponse maps a checkout result.
func NewCheckoutResponse(r *ports.PaymentResult) CheckoutResponse {
	return CheckoutResponse{
		Success:       r.Success,
		TransactionID: r.TransactionID.String(),
		MerchantID:    string(r.MerchantID),
		RecordID:      uint64(r.RecordID),
		Amount:        r.Amount,
		Fee:           r.Fee,
	}
}

// RegisterMerchantRequest is the request body for merchant registration.
// The authenticated caller becomes the administrator.
type RegisterMerchantRequest struct {
	ID                 string  `json:"id" binding:"required,safe_id,max=64"`
	Name               string  `json:"name" binding:"required,min=1,max=100"`
	FeeRateBasisPoints *uint32 `json:"fee_rate_bps,omitempty"`
}

// SetCertificationRequest replaces a merchant's certification state.
// A missing expires_at means the certification never expires.
type SetCertificationRequest struct {
	Certified *bool      `json:"certified" binding:"required"`
	Hash      string     `json:"hash" binding:"max=130"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SetFeeRateRequest changes a merchant's fee rate. Exactly one of the two
// fields must be present.
type SetFeeRateRequest struct {
	FeeRateBasisPoints *uint32          `json:"fee_rate_bps,omitempty"`
	FeeRatePercent     *decimal.Decimal `json:"fee_rate_percent,omitempty"`
}

// TransferAdminRequest hands a merchant over to a new administrator.
type TransferAdminRequest struct {
	NewAdmin string `json:"new_admin" binding:"required,max=128"`
}

// FeeRateResponse renders a fee rate in basis points and percent.
type FeeRateResponse struct {
	FeeRateBasisPoints uint32 `json:"fee_rate_bps"`
	FeeRatePercent     string `json:"fee_rate_percent"`
}

// NewFeeRateResponse renders rateBps, e.g. 250 as "2.50".
func NewFeeRateResponse(rateBps uint32) FeeRateResponse {
	return FeeRateResponse{
		FeeRateBasisPoints: rateBps,
		FeeRatePercent:     BasisPointsToPercent(rateBps).StringFixed(2),
	}
}

// CertificationResponse renders a certification state.
type CertificationResponse struct {
	Certified bool       `json:"certified"`
	Hash      string     `json:"hash"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    bool       `json:"active"`
}

// NewCertificationResponse renders c, evaluating expiry at now.
func NewCertificationResponse(c domain.Certification, now time.Time) CertificationResponse {
	resp := CertificationResponse{
		Certified: c.Certified,
		Hash:      c.Hash,
		Active:    c.IsActiveAt(now),
	}
	if !c.ExpiresAt.IsZero() {
		exp := c.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}

// MerchantResponse is the public profile of a merchant ledger.
type MerchantResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Admin         string                `json:"admin"`
	FeeRate       FeeRateResponse       `json:"fee_rate"`
	Certification CertificationResponse `json:"certification"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// NewMerchantResponse maps a merchant profile.
func NewMerchantResponse(m domain.Merchant, now time.Time) MerchantResponse {
	return MerchantResponse{
		ID:            string(m.ID),
		Name:          m.Name,
		Admin:         string(m.Admin),
		FeeRate:       NewFeeRateResponse(m.Fee.RateBasisPoints),
		Certification: NewCertificationResponse(m.Certification, now),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// StatsResponse wraps ledger counters with the owning merchant.
type StatsResponse struct {
	MerchantID string `json:"merchant_id"`
	domain.LedgerStats
}

// PaymentRecordResponse renders a stored payment record.
type PaymentRecordResponse struct {
	ID               uint64    `json:"id"`
	MerchantID       string    `json:"merchant_id"`
	Payer            string    `json:"payer"`
	Amount           uint64    `json:"amount"`
	VerificationHash string    `json:"verification_hash"`
	Metadata         string    `json:"metadata"`
	Timestamp        time.Time `json:"timestamp"`
	ContentHash      string    `json:"content_hash"`
	Fee              uint64    `json:"fee"`
	PartyAShare      uint64    `json:"party_a_share"`
	PartyBShare      uint64    `json:"party_b_share"`
}

// NewPaymentRecordResponse maps a payment record.
func NewPaymentRecordResponse(r *domain.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:               uint64(r.ID),
		MerchantID:       string(r.MerchantID),
		Payer:            string(r.Payer),
		Amount:           r.Amount,
		VerificationHash: r.VerificationHash,
		Metadata:         r.Metadata,
		Timestamp:        r.Timestamp,
		ContentHash:      r.ContentHash,
		Fee:              r.Fee,
		PartyAShare:      r.PartyAShare,
		PartyBShare:      r.PartyBShare,
	}
}

// TokenResponse is returned by the token command and test helpers.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}
