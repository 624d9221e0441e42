package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/addisfleet/transport-admin/internal/models"
)

// TokenPair is the credential pair issued at login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the account-creation payload. The account starts pending
// and stays inactive until an admin approves it.
type SignupRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone_number"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

// UserPage is one server-driven page of the admin user list.
type UserPage struct {
	Count   int              `json:"count"`
	Results []models.Account `json:"results"`
}

// CreateTransportRequest is the trip-request creation payload.
type CreateTransportRequest struct {
	StartDay    string `json:"start_day"`
	StartTime   string `json:"start_time"`
	ReturnDay   string `json:"return_day"`
	Employees   []int  `json:"employees"`
	Destination string `json:"destination"`
	Reason      string `json:"reason"`
}

type decisionRequest struct {
	Action           string `json:"action"`
	RejectionMessage string `json:"rejection_message,omitempty"`
}

// Login authenticates and returns the token pair. Callers own persisting the
// pair into the session.
func (c *Client) Login(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair
	err := c.doAnon(ctx, http.MethodPost, "/login/", LoginRequest{Email: email, Password: password}, &pair)
	return pair, err
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.doAnon(ctx, http.MethodPost, "/signup/", req, nil)
}

// Logout invalidates the refresh token server-side. The endpoint declares no
// auth, so the call goes out without a bearer header.
func (c *Client) Logout(ctx context.Context, refresh string) error {
	body := struct {
		Refresh string `json:"refresh"`
	}{Refresh: refresh}
	return c.doAnon(ctx, http.MethodPost, "/logout/", body, nil)
}

// ListDepartments returns all departments.
func (c *Client) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var out []models.Department
	if err := c.do(ctx, http.MethodGet, "/departments/", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("decode response: departments list missing")
	}
	return out, nil
}

// ListUsers returns one page of the admin user list. Pagination is
// server-driven; the page parameter is forwarded as-is.
func (c *Client) ListUsers(ctx context.Context, page int) (UserPage, error) {
	var out UserPage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/?page=%d", page), nil, &out); err != nil {
		return UserPage{}, err
	}
	if out.Results == nil {
		return UserPage{}, fmt.Errorf("decode response: results missing")
	}
	return out, nil
}

// Approve flips a pending account to approved.
func (c *Client) Approve(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/approve/%d/", id), decisionRequest{Action: models.DecisionApprove}, nil)
}

// Reject declines a pending account with the given reason. Reason emptiness
// is a caller-side precondition; see the workflow package.
func (c *Client) Reject(ctx context.Context, id int, reason string) error {
	body := decisionRequest{Action: models.DecisionReject, RejectionMessage: reason}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/approve/%d/", id), body, nil)
}

// UpdateRole patches only the role field of an account.
func (c *Client) UpdateRole(ctx context.Context, id int, role models.Role) error {
	body := struct {
		Role models.Role `json:"role"`
	}{Role: role}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/update-role/%d/", id), body, nil)
}

// ListTransportRequests returns all transport requests visible to the caller.
func (c *Client) ListTransportRequests(ctx context.Context) ([]models.TransportRequest, error) {
	var out []models.TransportRequest
	if err := c.do(ctx, http.MethodGet, "/transport-requests/list/", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("decode response: request list missing")
	}
	return out, nil
}

// CreateTransportRequest submits a new trip request and returns the created
// record as the server stored it.
func (c *Client) CreateTransportRequest(ctx context.Context, req CreateTransportRequest) (models.TransportRequest, error) {
	var out models.TransportRequest
	if err := c.do(ctx, http.MethodPost, "/transport-requests/create/", req, &out); err != nil {
		return models.TransportRequest{}, err
	}
	return out, nil
}

// ListEmployees returns the flat employee collection used to resolve the
// member IDs on transport requests.
func (c *Client) ListEmployees(ctx context.Context) ([]models.Account, error) {
	var out []models.Account
	if err := c.do(ctx, http.MethodGet, "/users-list/", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("decode response: employee list missing")
	}
	return out, nil
}

// StatusHistory returns the full approval/rejection audit log. Filtering and
// paging over it are client-side concerns.
func (c *Client) StatusHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	var out []models.HistoryRecord
	if err := c.do(ctx, http.MethodGet, "/status-history/", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("decode response: history missing")
	}
	return out, nil
}
