package service

import (
	"crypto/subtle"
	"encoding/hex"

	"pushpay/internal/core/domain"

	"golang.org/x/crypto/sha3"
)

// KeccakHandshakeVerifier implements ports.HandshakeVerifier. A handshake is
// valid when the verification hash equals
// keccak256(payer || 0x00 || faceProof || 0x00 || fingerProof).
type KeccakHandshakeVerifier struct{}

// NewKeccakHandshakeVerifier creates the default handshake verifier.
func NewKeccakHandshakeVerifier() *KeccakHandshakeVerifier {
	return &KeccakHandshakeVerifier{}
}

// Combine returns the verification hash for the given proofs, 0x-prefixed.
func (v *KeccakHandshakeVerifier) Combine(payer domain.Identity, faceProof, fingerProof string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(payer))
	h.Write([]byte{0})
	h.Write([]byte(faceProof))
	h.Write([]byte{0})
	h.Write([]byte(fingerProof))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// Verify reports whether the proofs belong to payer and hash to
// verificationHash. Comparison is constant time on the normalized hash.
func (v *KeccakHandshakeVerifier) Verify(payer domain.Identity, verificationHash, faceProof, fingerProof string) bool {
	if payer == "" || faceProof == "" || fingerProof == "" {
		return false
	}
	got, ok := domain.NormalizeVerificationHash(verificationHash)
	if !ok {
		return false
	}
	expected := v.Combine(payer, faceProof, fingerProof)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}
