// Package fee implements the protocol fee calculation and the split of a
// collected fee between the two protocol beneficiaries.
package fee

import (
	"math/bits"

	"pushpay/internal/core/domain"
)

// Breakdown is the division of one payment.
type Breakdown struct {
	Amount          uint64 `json:"amount"`
	RateBasisPoints uint32 `json:"fee_rate_bps"`
	Fee             uint64 `json:"fee"`
	PartyA          uint64 `json:"party_a"`
	PartyB          uint64 `json:"party_b"`
	MerchantAmount  uint64 `json:"merchant_amount"`
}

// Split divides fee between the two beneficiaries. Party A receives the
// floor of half, party B receives the remainder, so a + b == fee always.
func Split(fee uint64) (partyA, partyB uint64) {
	partyA = fee / 2
	partyB = fee - partyA
	return partyA, partyB
}

// Compute returns floor(amount * rateBps / 10000) using a 128-bit
// intermediate. rateBps must not exceed domain.BasisPointsDenominator.
func Compute(amount uint64, rateBps uint32) uint64 {
	if rateBps > domain.BasisPointsDenominator {
		panic("fee: rate exceeds basis point denominator")
	}
	hi, lo := bits.Mul64(amount, uint64(rateBps))
	q, _ := bits.Div64(hi, lo, uint64(domain.BasisPointsDenominator))
	return q
}

// Calculate computes the fee for amount at rateBps and splits it.
func Calculate(amount uint64, rateBps uint32) Breakdown {
	f := Compute(amount, rateBps)
	a, b := Split(f)
	return Breakdown{
		Amount:          amount,
		RateBasisPoints: rateBps,
		Fee:             f,
		PartyA:          a,
		PartyB:          b,
		MerchantAmount:  amount - f,
	}
}
