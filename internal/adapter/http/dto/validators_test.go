package dto

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterMerchantRequest{
		ID:   "  shop-1  ",
		Name: " My Shop ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "shop-1", req.ID)
	assert.Equal(t, "My Shop", req.Name)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := RegisterMerchantRequest{
		ID:   "shop-1",
		Name: "shop <script>alert('x')</script>",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Name, "&lt;script&gt;")
	assert.NotContains(t, req.Name, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	type withPointer struct {
		Note *string
	}
	note := "  hello  "
	req := withPointer{Note: &note}
	SanitizeStruct(&req)

	assert.Equal(t, "hello", *req.Note)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := RegisterMerchantRequest{ID: "shop", Name: "Shop"}
	SanitizeStruct(&req)
	assert.Nil(t, req.FeeRateBasisPoints)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"shop-001",
		"SHOP_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"shop 001",    // space
		"shop<001>",   // angle brackets
		"shop;DROP",   // semicolon
		"",            // empty
		"hello world", // space
		"shop\n001",   // newline
		"shop/1",      // path separator
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestVerificationHash(t *testing.T) {
	digest := strings.Repeat("c4", 32)
	base := CheckoutRequest{MerchantID: "shop-1"}

	valid := []string{"0x" + digest, digest, "0X" + strings.ToUpper(digest)}
	for _, h := range valid {
		req := base
		req.VerificationHash = h
		assert.NoError(t, binding.Validator.ValidateStruct(&req), "expected valid: %s", h)
	}

	invalid := []string{"0x1", "0xabc", "0x" + digest + "00", "0x" + strings.Repeat("zz", 32), "0x"}
	for _, h := range invalid {
		req := base
		req.VerificationHash = h
		assert.Error(t, binding.Validator.ValidateStruct(&req), "expected invalid: %s", h)
	}
}
