package domain

import "time"

type TransactionType string

const (
	TransactionTypePayment TransactionType = "Payment"
	TransactionTypeRefund  TransactionType = "Refund"
	TransactionTypePayout  TransactionType = "Payout"
)

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "Pending"
	TransactionStatusSuccess TransactionStatus = "Success"
	TransactionStatusFailed  TransactionStatus = "Failed"
)

// Transaction is an append-only ledger row tied to a rental request.
// Rows are never edited or deleted after creation.
type Transaction struct {
	ID          int32             `json:"id"`
	RequestID   int32             `json:"request_id"`
	AmountCents int32             `json:"amount_cents"`
	Type        TransactionType   `json:"type"`
	ExternalRef *string           `json:"external_ref,omitempty"`
	Status      TransactionStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
}
