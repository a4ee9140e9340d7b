package domain

import "time"

// Fee rates are expressed in basis points (1/10000).
const (
	BasisPointsDenominator uint32 = 10000
	MaxFeeRateBasisPoints  uint32 = 1000 // 10%
)

// Certification records whether a merchant is recognized as a protocol
// participant. Expiry is informational; the ledger never enforces it.
type Certification struct {
	Certified bool      `json:"certified"`
	Hash      string    `json:"certification_hash"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsActiveAt reports whether the certification is set and unexpired at t.
// A zero ExpiresAt never expires.
func (c Certification) IsActiveAt(t time.Time) bool {
	if !c.Certified {
		return false
	}
	return c.ExpiresAt.IsZero() || t.Before(c.ExpiresAt)
}

// FeeConfiguration holds the merchant's protocol fee rate.
type FeeConfiguration struct {
	RateBasisPoints uint32 `json:"fee_rate_bps"`
}

// Valid reports whether the rate is within the protocol cap.
func (f FeeConfiguration) Valid() bool {
	return f.RateBasisPoints <= MaxFeeRateBasisPoints
}
