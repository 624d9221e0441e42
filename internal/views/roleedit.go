package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/addisfleet/transport-admin/internal/models"
)

var ErrNotEditing = errors.New("no role edit in progress")

// RoleUpdater issues the role patch. Satisfied by *api.Client.
type RoleUpdater interface {
	UpdateRole(ctx context.Context, id int, role models.Role) error
}

// listRefresher is the invalidate-then-reload pair a saved edit triggers.
type listRefresher interface {
	Invalidate()
	Reload(ctx context.Context) error
}

// RoleEditor is the inline role-edit form on the user list. Entering edit
// mode captures a draft of the account; only the role field is ever
// submitted. Cancel discards the draft without touching the network.
type RoleEditor struct {
	api  RoleUpdater
	list listRefresher

	editing bool
	account models.Account
	role    models.Role
}

// NewRoleEditor wires the editor to the API and the list it refreshes on
// save.
func NewRoleEditor(api RoleUpdater, list listRefresher) *RoleEditor {
	return &RoleEditor{api: api, list: list}
}

// Begin enters edit mode for an account, capturing its current values as the
// draft. A new Begin replaces any previous draft.
func (e *RoleEditor) Begin(a models.Account) {
	e.editing = true
	e.account = a
	e.role = a.Role
}

// Editing reports whether a draft is open.
func (e *RoleEditor) Editing() bool {
	return e.editing
}

// Draft returns the account the open draft was captured from.
func (e *RoleEditor) Draft() models.Account {
	return e.account
}

// Options returns the role choices. Always the full fixed set, regardless of
// the account's current role.
func (e *RoleEditor) Options() []models.Role {
	return models.Roles()
}

// SetRole updates the draft's role. Values outside the fixed set are
// rejected.
func (e *RoleEditor) SetRole(role models.Role) error {
	if !e.editing {
		return ErrNotEditing
	}
	if !models.IsValidRole(role) {
		return fmt.Errorf("invalid role %q", role)
	}
	e.role = role
	return nil
}

// Save submits the draft's role, refreshes the list, and exits edit mode. On
// failure the draft stays open and the list keeps its prior state.
func (e *RoleEditor) Save(ctx context.Context) error {
	if !e.editing {
		return ErrNotEditing
	}

	if err := e.api.UpdateRole(ctx, e.account.ID, e.role); err != nil {
		return err
	}

	e.editing = false
	e.list.Invalidate()
	return e.list.Reload(ctx)
}

// Cancel discards the draft. No network call is made.
func (e *RoleEditor) Cancel() {
	e.editing = false
	e.account = models.Account{}
	e.role = ""
}
