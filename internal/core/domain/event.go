package domain

import "time"

// EventType names a ledger notification.
type EventType string

const (
	EventPaymentReceived  EventType = "PAYMENT_RECEIVED"
	EventFeeSplitExecuted EventType = "FEE_SPLIT_EXECUTED"
)

// Event is a notification emitted by a ledger after a committed payment.
type Event interface {
	Type() EventType
	Merchant() MerchantID
	Record() RecordID
}

// PaymentReceived is emitted first for every accepted payment.
type PaymentReceived struct {
	MerchantID       MerchantID `json:"merchant_id"`
	RecordID         RecordID   `json:"record_id"`
	From             Identity   `json:"from"`
	Amount           uint64     `json:"amount"`
	VerificationHash string     `json:"verification_hash"`
	Metadata         string     `json:"metadata"`
	Timestamp        time.Time  `json:"timestamp"`
}

func (e PaymentReceived) Type() EventType      { return EventPaymentReceived }
func (e PaymentReceived) Merchant() MerchantID { return e.MerchantID }
func (e PaymentReceived) Record() RecordID     { return e.RecordID }

// FeeSplitExecuted follows PaymentReceived and describes how the payment
// was divided. MerchantAmount + TotalFee == amount.
type FeeSplitExecuted struct {
	MerchantID     MerchantID `json:"merchant_id"`
	RecordID       RecordID   `json:"record_id"`
	MerchantAmount uint64     `json:"merchant_amount"`
	BeneficiaryA   Identity   `json:"beneficiary_a"`
	PartyAAmount   uint64     `json:"party_a_amount"`
	BeneficiaryB   Identity   `json:"beneficiary_b"`
	PartyBAmount   uint64     `json:"party_b_amount"`
	TotalFee       uint64     `json:"total_fee"`
}

func (e FeeSplitExecuted) Type() EventType      { return EventFeeSplitExecuted }
func (e FeeSplitExecuted) Merchant() MerchantID { return e.MerchantID }
func (e FeeSplitExecuted) Record() RecordID     { return e.RecordID }
