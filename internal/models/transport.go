package models

import "strings"

// RequestStatusPending is the only request status the client acts on; any
// other value is a terminal state set server-side.
const RequestStatusPending = "pending"

// TransportRequest represents an employee's trip request
type TransportRequest struct {
	ID          int    `json:"id"`
	StartDay    string `json:"start_day"`
	StartTime   string `json:"start_time"`
	ReturnDay   string `json:"return_day"`
	Destination string `json:"destination"`
	Reason      string `json:"reason"`
	Employees   []int  `json:"employees"`
	Status      string `json:"status"`
}

// Pending reports whether the request still awaits a decision.
func (r *TransportRequest) Pending() bool {
	return strings.EqualFold(r.Status, RequestStatusPending)
}
