package domain

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/bits"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

// RecordID is the ledger-owned sequence number of a payment record.
// The first record of a ledger has ID 1.
type RecordID uint64

// PaymentRecord is an immutable entry in a merchant ledger.
type PaymentRecord struct {
	ID               RecordID   `json:"id"`
	MerchantID       MerchantID `json:"merchant_id"`
	Payer            Identity   `json:"payer"`
	Amount           uint64     `json:"amount"`
	VerificationHash string     `json:"verification_hash"`
	Metadata         string     `json:"metadata"`
	Timestamp        time.Time  `json:"timestamp"`
	ContentHash      string     `json:"content_hash"`
	Fee              uint64     `json:"fee"`
	PartyAShare      uint64     `json:"party_a_share"`
	PartyBShare      uint64     `json:"party_b_share"`
}

// ContentHash returns the keccak-256 digest of a payment's content, hex
// encoded with a 0x prefix. Identical payloads at the same instant share a
// content hash, so it is an index and never a key.
func ContentHash(payer Identity, amount uint64, verificationHash string, ts time.Time) string {
	h := sha3.NewLegacyKeccak256()
	var buf [8]byte

	h.Write([]byte(payer))
	h.Write([]byte{0})
	binary.BigEndian.PutUint64(buf[:], amount)
	h.Write(buf[:])
	h.Write([]byte(verificationHash))
	h.Write([]byte{0})
	binary.BigEndian.PutUint64(buf[:], uint64(ts.UnixNano()))
	h.Write(buf[:])

	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// verificationHashLen is the hex length of a keccak-256 digest.
const verificationHashLen = 64

// NormalizeVerificationHash returns h in canonical form: lower-case hex with
// a 0x prefix. ok is false unless h holds exactly one keccak-256 digest.
// Replay keys and stored records use this form.
func NormalizeVerificationHash(h string) (string, bool) {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimPrefix(h, "0x")
	if len(h) != verificationHashLen {
		return "", false
	}
	if _, err := hex.DecodeString(h); err != nil {
		return "", false
	}
	return "0x" + h, true
}

// LedgerStats are the aggregate counters of a merchant ledger.
// TotalFeesCollected always equals ContributionA + ContributionB.
type LedgerStats struct {
	TotalPayments      uint64 `json:"total_payments"`
	TotalVolume        uint64 `json:"total_volume"`
	TotalFeesCollected uint64 `json:"total_fees_collected"`
	ContributionA      uint64 `json:"contribution_to_beneficiary_a"`
	ContributionB      uint64 `json:"contribution_to_beneficiary_b"`
}

// Balanced reports whether collected fees equal the sum of contributions.
func (s LedgerStats) Balanced() bool {
	sum, carry := bits.Add64(s.ContributionA, s.ContributionB, 0)
	return carry == 0 && sum == s.TotalFeesCollected
}

// OverflowError reports an aggregate counter that would wrap.
type OverflowError struct {
	Counter string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("counter %s overflows uint64", e.Counter)
}

// Add returns the stats after accepting one payment. The receiver is left
// unchanged, and an *OverflowError is returned if any counter would wrap.
func (s LedgerStats) Add(amount, fee, partyA, partyB uint64) (LedgerStats, error) {
	next := s
	var err error
	add := func(name string, v *uint64, delta uint64) {
		if err != nil {
			return
		}
		sum, carry := bits.Add64(*v, delta, 0)
		if carry != 0 {
			err = &OverflowError{Counter: name}
			return
		}
		*v = sum
	}

	add("total_payments", &next.TotalPayments, 1)
	add("total_volume", &next.TotalVolume, amount)
	add("total_fees_collected", &next.TotalFeesCollected, fee)
	add("contribution_to_beneficiary_a", &next.ContributionA, partyA)
	add("contribution_to_beneficiary_b", &next.ContributionB, partyB)
	if err != nil {
		return s, err
	}
	return next, nil
}
