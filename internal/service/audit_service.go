package service

import (
	"context"

	"pushpay/internal/core/domain"
	"pushpay/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditObserver struct {
	log zerolog.Logger
}

// NewAuditObserver creates a ledger observer that writes every event to the
// audit log.
func NewAuditObserver(log zerolog.Logger) ports.Observer {
	return &auditObserver{log: log}
}

func (o *auditObserver) Notify(_ context.Context, event domain.Event) {
	ev := o.log.Info().
		Str("event_type", string(event.Type())).
		Str("merchant_id", string(event.Merchant())).
		Uint64("record_id", uint64(event.Record()))

	switch e := event.(type) {
	case domain.PaymentReceived:
		ev = ev.Str("from", string(e.From)).
			Uint64("amount", e.Amount).
			Str("verification_hash", e.VerificationHash)
	case domain.FeeSplitExecuted:
		ev = ev.Uint64("merchant_amount", e.MerchantAmount).
			Str("beneficiary_a", string(e.BeneficiaryA)).
			Uint64("party_a_amount", e.PartyAAmount).
			Str("beneficiary_b", string(e.BeneficiaryB)).
			Uint64("party_b_amount", e.PartyBAmount).
			Uint64("total_fee", e.TotalFee)
	}
	ev.Msg("audit")
}
