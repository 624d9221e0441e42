// Package views holds the list models behind each admin surface. Every list
// follows the same contract: Reload issues exactly one fetch and replaces the
// local collection on success; on failure the prior state is kept and the
// error is returned for the front end to render. Authorization failures pass
// through unchanged so the caller can route to login.
package views

import (
	"context"

	"github.com/addisfleet/transport-admin/internal/api"
	"github.com/addisfleet/transport-admin/internal/models"
)

// Row actions offered by the user list.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// UserSource provides pages of the admin user list. Satisfied by *api.Client.
type UserSource interface {
	ListUsers(ctx context.Context, page int) (api.UserPage, error)
}

// UserList is the admin user list. Pagination is server-driven: the page
// number is forwarded to the backend and the backend decides the slice.
type UserList struct {
	src    UserSource
	page   int
	count  int
	users  []models.Account
	loaded bool
}

// NewUserList creates a user list positioned on page 1.
func NewUserList(src UserSource) *UserList {
	return &UserList{src: src, page: 1}
}

// Reload fetches the current page and replaces the collection. On failure the
// previously loaded rows stay visible.
func (l *UserList) Reload(ctx context.Context) error {
	p, err := l.src.ListUsers(ctx, l.page)
	if err != nil {
		return err
	}
	l.users = p.Results
	l.count = p.Count
	l.loaded = true
	return nil
}

// Invalidate marks the collection stale without touching the rows.
func (l *UserList) Invalidate() {
	l.loaded = false
}

// Loaded reports whether the collection reflects a completed fetch.
func (l *UserList) Loaded() bool {
	return l.loaded
}

// SetPage moves to a page and marks the collection stale. Pages below 1 snap
// to 1.
func (l *UserList) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	l.page = page
	l.loaded = false
}

// Page returns the current page number.
func (l *UserList) Page() int {
	return l.page
}

// Count returns the server-reported total across all pages.
func (l *UserList) Count() int {
	return l.count
}

// Users returns the currently loaded rows.
func (l *UserList) Users() []models.Account {
	return l.users
}

// Actions returns the row actions for an account. Only accounts still
// pending approval offer the approve/reject pair; active accounts offer
// neither.
func (l *UserList) Actions(a models.Account) []string {
	if !a.Pending() {
		return nil
	}
	return []string{ActionApprove, ActionReject}
}
