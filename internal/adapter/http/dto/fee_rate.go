package dto

import (
	"errors"
	"math"

	"pushpay/internal/core/domain"

	"github.com/shopspring/decimal"
)

var basisPointsPerPercent = decimal.NewFromInt(int64(domain.BasisPointsDenominator / 100))

// BasisPointsToPercent converts a basis-point rate to percent.
func BasisPointsToPercent(rateBps uint32) decimal.Decimal {
	return decimal.NewFromInt(int64(rateBps)).Div(basisPointsPerPercent)
}

// PercentToBasisPoints converts a percent rate to whole basis points.
// Fractions of a basis point are rejected, not rounded.
func PercentToBasisPoints(percent decimal.Decimal) (uint32, error) {
	if percent.IsNegative() {
		return 0, errors.New("fee_rate_percent must not be negative")
	}
	bps := percent.Mul(basisPointsPerPercent)
	if !bps.IsInteger() {
		return 0, errors.New("fee_rate_percent must be a whole number of basis points")
	}
	if bps.GreaterThan(decimal.NewFromInt(math.MaxUint32)) {
		return 0, errors.New("fee_rate_percent out of range")
	}
	return uint32(bps.IntPart()), nil
}

// BasisPoints resolves the requested rate from whichever field was sent.
func (r SetFeeRateRequest) BasisPoints() (uint32, error) {
	switch {
	case r.FeeRateBasisPoints != nil && r.FeeRatePercent != nil:
		return 0, errors.New("send fee_rate_bps or fee_rate_percent, not both")
	case r.FeeRateBasisPoints != nil:
		return *r.FeeRateBasisPoints, nil
	case r.FeeRatePercent != nil:
		return PercentToBasisPoints(*r.FeeRatePercent)
	default:
		return 0, errors.New("fee_rate_bps or fee_rate_percent is required")
	}
}
