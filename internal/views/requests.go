package views

import (
	"context"

	"github.com/addisfleet/transport-admin/internal/api"
	"github.com/addisfleet/transport-admin/internal/models"
)

// UnknownEmployee is rendered for a member ID with no match in the employee
// collection. Unresolvable IDs are a display concern, never an error.
const UnknownEmployee = "Unknown"

// RequestSource provides the transport-request surface. Satisfied by
// *api.Client.
type RequestSource interface {
	ListTransportRequests(ctx context.Context) ([]models.TransportRequest, error)
	ListEmployees(ctx context.Context) ([]models.Account, error)
	CreateTransportRequest(ctx context.Context, req api.CreateTransportRequest) (models.TransportRequest, error)
}

// RequestList is the employee's transport-request view: the request table
// plus the employee collection used to resolve member IDs to names.
type RequestList struct {
	src       RequestSource
	requests  []models.TransportRequest
	employees map[int]string
	loaded    bool
}

// NewRequestList creates an empty request list.
func NewRequestList(src RequestSource) *RequestList {
	return &RequestList{src: src, employees: map[int]string{}}
}

// Reload fetches the request table and the employee collection. Prior state
// is kept on failure.
func (l *RequestList) Reload(ctx context.Context) error {
	requests, err := l.src.ListTransportRequests(ctx)
	if err != nil {
		return err
	}

	employees, err := l.src.ListEmployees(ctx)
	if err != nil {
		return err
	}

	byID := make(map[int]string, len(employees))
	for _, e := range employees {
		byID[e.ID] = e.FullName
	}

	l.requests = requests
	l.employees = byID
	l.loaded = true
	return nil
}

// Invalidate marks the collection stale without touching the rows.
func (l *RequestList) Invalidate() {
	l.loaded = false
}

// Loaded reports whether the collection reflects a completed fetch.
func (l *RequestList) Loaded() bool {
	return l.loaded
}

// Requests returns the currently loaded rows, newest first.
func (l *RequestList) Requests() []models.TransportRequest {
	return l.requests
}

// EmployeeNames resolves a request's member IDs to display names. IDs absent
// from the employee collection resolve to UnknownEmployee.
func (l *RequestList) EmployeeNames(r models.TransportRequest) []string {
	names := make([]string, 0, len(r.Employees))
	for _, id := range r.Employees {
		name, ok := l.employees[id]
		if !ok {
			name = UnknownEmployee
		}
		names = append(names, name)
	}
	return names
}

// Submit creates a transport request and prepends the created record to the
// in-memory list. This is the one place the client patches a collection
// locally instead of re-fetching; the next Reload replaces it with server
// state.
func (l *RequestList) Submit(ctx context.Context, req api.CreateTransportRequest) (models.TransportRequest, error) {
	created, err := l.src.CreateTransportRequest(ctx, req)
	if err != nil {
		return models.TransportRequest{}, err
	}
	l.requests = append([]models.TransportRequest{created}, l.requests...)
	return created, nil
}
