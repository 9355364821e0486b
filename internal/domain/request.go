package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending         RequestStatus = "Pending"
	RequestStatusApproved        RequestStatus = "Approved"
	RequestStatusAwaitingPayment RequestStatus = "AwaitingPayment"
	RequestStatusPaid            RequestStatus = "Paid"
	RequestStatusInHand          RequestStatus = "InHand"
	RequestStatusReturned        RequestStatus = "Returned"
	RequestStatusCompleted       RequestStatus = "Completed"
	RequestStatusRejected        RequestStatus = "Rejected"
	RequestStatusCancelled       RequestStatus = "Cancelled"
	RequestStatusDisputed        RequestStatus = "Disputed"
)

// IsTerminal reports whether no further transition is defined from s.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

type RentalRequest struct {
	ID            int32  `json:"id"`
	ItemID        int32  `json:"item_id"`
	RequesterID   int32  `json:"requester_id"`
	OwnerID       int32  `json:"owner_id"`
	RequesterName string `json:"requester_name"`
	OwnerName     string `json:"owner_name"`
	// Dates are inclusive yyyy-mm-dd strings; start <= end always holds.
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// Price snapshot fields — locked at creation time, never re-priced.
	TotalPriceCents int32         `json:"total_price_cents"`
	DepositCents    int32         `json:"deposit_cents"`
	Status          RequestStatus `json:"status"`
	// Shared-secret tokens exchanged out of band at the physical meeting.
	// Never exposed through list endpoints; only the two parties see them.
	HandoverCode string    `json:"handover_code,omitempty"`
	ReturnCode   string    `json:"return_code,omitempty"`
	RatingGiven  *int32    `json:"rating_given,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// RequestDetail is the full read model: the request plus its ledger
// transactions and dispute, if one was opened.
type RequestDetail struct {
	RentalRequest
	Transactions []Transaction `json:"transactions"`
	Dispute      *Dispute      `json:"dispute,omitempty"`
}
