package ports

import (
	"context"

	"pushpay/internal/core/domain"
)

// RecordStore is the append-only payment record store of one merchant ledger.
type RecordStore interface {
	// Append stores record and returns the ID assigned to it. IDs start at 1
	// and increase by one per appended record.
	Append(ctx context.Context, record *domain.PaymentRecord) (domain.RecordID, error)
	// Get returns the record with the given ID or a NotFound error.
	Get(ctx context.Context, id domain.RecordID) (*domain.PaymentRecord, error)
	Count(ctx context.Context) (int, error)
	// Totals aggregates every stored record into ledger statistics.
	Totals(ctx context.Context) (domain.LedgerStats, error)
	// FindByContentHash returns the IDs of all records sharing a content hash.
	FindByContentHash(ctx context.Context, hash string) ([]domain.RecordID, error)
}

// MerchantRepository persists merchant profiles.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	// GetByID returns nil, nil when the merchant does not exist.
	GetByID(ctx context.Context, id domain.MerchantID) (*domain.Merchant, error)
	List(ctx context.Context) ([]domain.Merchant, error)
	UpdateFeeRate(ctx context.Context, id domain.MerchantID, rateBps uint32) error
	UpdateCertification(ctx context.Context, id domain.MerchantID, cert domain.Certification) error
	UpdateAdmin(ctx context.Context, id domain.MerchantID, admin domain.Identity) error
}

// RecordStoreFactory opens the record store backing a merchant ledger.
type RecordStoreFactory func(merchantID domain.MerchantID) RecordStore
