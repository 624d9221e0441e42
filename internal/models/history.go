package models

import "time"

// Decision values recorded in the status history audit log.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// HistoryRecord is one account-approval decision from the audit log.
// The log is append-only and read-only for this client.
type HistoryRecord struct {
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
