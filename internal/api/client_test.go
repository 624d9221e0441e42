package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addisfleet/transport-admin/internal/models"
	"github.com/addisfleet/transport-admin/internal/session"
)

func testSession(t *testing.T, token string) *session.Session {
	t.Helper()
	s := session.New(filepath.Join(t.TempDir(), "session.json"))
	if token != "" {
		require.NoError(t, s.Set(token, "refresh-token"))
	}
	return s
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]models.Department{{ID: 1, Name: "Finance"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok-123"), 0)

	deps, err := c.ListDepartments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, []models.Department{{ID: 1, Name: "Finance"}}, deps)
}

func TestClient_MissingTokenShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, ""), 0)

	_, err := c.ListUsers(context.Background(), 1)
	assert.ErrorIs(t, err, session.ErrNoToken)
	assert.False(t, called, "no request may be issued without a token")
}

func TestClient_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "stale"), 0)

	_, err := c.ListUsers(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestClient_ErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail wins", `{"detail":"no such user","error":"ignored"}`, "no such user"},
		{"error fallback", `{"error":"bad request"}`, "bad request"},
		{"generic fallback", `{"unexpected":true}`, "request failed"},
		{"non-json body", `<html>boom</html>`, "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, testSession(t, "tok"), 0)

			err := c.Approve(context.Background(), 7)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		})
	}
}

func TestClient_ListUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(UserPage{
			Count:   21,
			Results: []models.Account{{ID: 1, FullName: "A", IsActive: false}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok"), 0)

	page, err := c.ListUsers(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 21, page.Count)
	assert.Len(t, page.Results, 1)
}

func TestClient_ListUsers_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"results not a list", `{"count":1,"results":{"id":1}}`},
		{"results missing", `{"count":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, testSession(t, "tok"), 0)

			_, err := c.ListUsers(context.Background(), 1)
			assert.Error(t, err, "shape mismatch must fail, not default to empty")
		})
	}
}

func TestClient_RejectBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok"), 0)

	require.NoError(t, c.Reject(context.Background(), 1, "incomplete docs"))
	assert.Equal(t, "/approve/1/", gotPath)
	assert.Equal(t, map[string]any{
		"action":            "reject",
		"rejection_message": "incomplete docs",
	}, gotBody)
}

func TestClient_ApproveBody(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/approve/5/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok"), 0)

	require.NoError(t, c.Approve(context.Background(), 5))
	assert.Equal(t, map[string]any{"action": "approve"}, gotBody)
}

func TestClient_UpdateRole(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		assert.Equal(t, "/update-role/9/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok"), 0)

	require.NoError(t, c.UpdateRole(context.Background(), 9, models.RoleDriver))
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, map[string]any{"role": "Driver"}, gotBody)
}

func TestClient_LogoutUnauthenticated(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/logout/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer srv.Close()

	// Works even with an empty session
	c := NewClient(srv.URL, testSession(t, ""), 0)

	require.NoError(t, c.Logout(context.Background(), "refresh-token"))
	assert.Empty(t, gotAuth)
	assert.Equal(t, map[string]any{"refresh": "refresh-token"}, gotBody)
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@example.com", req.Email)
		json.NewEncoder(w).Encode(TokenPair{Access: "acc", Refresh: "ref"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, ""), 0)

	pair, err := c.Login(context.Background(), "a@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, TokenPair{Access: "acc", Refresh: "ref"}, pair)
}

func TestClient_CreateTransportRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transport-requests/create/", r.URL.Path)

		var req CreateTransportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int{3, 5}, req.Employees)

		json.NewEncoder(w).Encode(models.TransportRequest{
			ID:          42,
			StartDay:    req.StartDay,
			StartTime:   req.StartTime,
			ReturnDay:   req.ReturnDay,
			Destination: req.Destination,
			Reason:      req.Reason,
			Employees:   req.Employees,
			Status:      models.RequestStatusPending,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok"), 0)

	created, err := c.CreateTransportRequest(context.Background(), CreateTransportRequest{
		StartDay:    "2026-09-01",
		StartTime:   "08:30",
		ReturnDay:   "2026-09-03",
		Employees:   []int{3, 5},
		Destination: "Addis Ababa",
		Reason:      "site visit",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.True(t, created.Pending())
}
