package domain

import "time"

type DisputeStatus string

const (
	DisputeStatusOpen       DisputeStatus = "Open"
	DisputeStatusResolved   DisputeStatus = "Resolved"
	DisputeStatusArbitrated DisputeStatus = "Arbitrated"
)

// Dispute records a conflict raised against a rental request.
// At most one dispute exists per request (unique on RequestID).
type Dispute struct {
	ID          int32         `json:"id"`
	RequestID   int32         `json:"request_id"`
	ReporterID  int32         `json:"reporter_id"`
	Reason      string        `json:"reason"`
	EvidenceURL *string       `json:"evidence_url,omitempty"`
	Status      DisputeStatus `json:"status"`
	CreatedOn   time.Time     `json:"created_on"`
}
