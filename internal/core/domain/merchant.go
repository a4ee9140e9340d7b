package domain

import "time"

// Identity is an opaque participant identity: a payer, a merchant
// administrator or a fee beneficiary.
type Identity string

// MerchantID identifies a merchant ledger.
type MerchantID string

// Merchant is the persisted profile behind a merchant ledger.
type Merchant struct {
	ID            MerchantID       `json:"id"`
	Name          string           `json:"name"`
	Admin         Identity         `json:"admin"`
	Fee           FeeConfiguration `json:"fee"`
	Certification Certification    `json:"certification"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// IsAdmin reports whether caller is the merchant administrator.
func (m *Merchant) IsAdmin(caller Identity) bool {
	return caller != "" && caller == m.Admin
}
