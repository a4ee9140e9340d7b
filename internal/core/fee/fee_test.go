package fee

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"pushpay/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestSplit_SmallRange(t *testing.T) {
	for f := uint64(0); f <= 100000; f++ {
		a, b := Split(f)
		if a+b != f || a != f/2 || b-a > 1 {
			t.Fatalf("Split(%d) = (%d, %d)", f, a, b)
		}
	}
}

func TestSplit_Examples(t *testing.T) {
	tests := []struct {
		fee  uint64
		a, b uint64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 1},
		{3, 1, 2},
		{200, 100, 100},
		{math.MaxUint64, math.MaxUint64 / 2, math.MaxUint64/2 + 1},
	}

	for _, tt := range tests {
		a, b := Split(tt.fee)
		assert.Equal(t, tt.a, a, "fee %d", tt.fee)
		assert.Equal(t, tt.b, b, "fee %d", tt.fee)
	}
}

func TestSplit_Random(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100000; i++ {
		f := r.Uint64()
		a, b := Split(f)
		assert.Equal(t, f, a+b)
		assert.True(t, b == a || b == a+1)
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64
		rate   uint32
		want   uint64
	}{
		{"zero amount", 0, 200, 0},
		{"zero rate", 10000, 0, 0},
		{"two percent", 10000, 200, 200},
		{"rounds down", 49, 200, 0},
		{"smallest non-zero", 50, 200, 1},
		{"cap", 10000, 1000, 1000},
		{"full rate", 12345, 10000, 12345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.amount, tt.rate))
		})
	}
}

func TestCompute_NoOverflow(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	denom := big.NewInt(int64(domain.BasisPointsDenominator))

	amounts := []uint64{math.MaxUint64, math.MaxUint64 - 1, 1 << 63}
	for i := 0; i < 10000; i++ {
		amounts = append(amounts, r.Uint64())
	}

	for _, amount := range amounts {
		rate := uint32(r.IntN(int(domain.MaxFeeRateBasisPoints) + 1))
		want := new(big.Int).SetUint64(amount)
		want.Mul(want, big.NewInt(int64(rate)))
		want.Quo(want, denom)

		got := Compute(amount, rate)
		if !want.IsUint64() || want.Uint64() != got {
			t.Fatalf("Compute(%d, %d) = %d, want %s", amount, rate, got, want)
		}
		assert.LessOrEqual(t, got, amount)
	}
}

func TestCompute_RateAboveDenominatorPanics(t *testing.T) {
	assert.Panics(t, func() { Compute(1, domain.BasisPointsDenominator+1) })
}

func TestCalculate(t *testing.T) {
	b := Calculate(10000, 200)

	assert.Equal(t, Breakdown{
		Amount:          10000,
		RateBasisPoints: 200,
		Fee:             200,
		PartyA:          100,
		PartyB:          100,
		MerchantAmount:  9800,
	}, b)
}

func TestCalculate_OddFee(t *testing.T) {
	b := Calculate(150, 1000)

	assert.Equal(t, uint64(15), b.Fee)
	assert.Equal(t, uint64(7), b.PartyA)
	assert.Equal(t, uint64(8), b.PartyB)
	assert.Equal(t, uint64(135), b.MerchantAmount)
}
