package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken = errors.New("no session token")
)

// tokenFile is the persisted shape of a session. The fixed keys mirror the
// token pair issued by the backend at login.
type tokenFile struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Session owns the bearer credentials for the current user. It is the single
// owner of the token file: populated at login, read before every request,
// cleared at logout. The access token is opaque to every decision the client
// makes; only Identity peeks inside it, and only for display.
type Session struct {
	path    string
	access  string
	refresh string
}

// New returns an empty session persisting to path.
func New(path string) *Session {
	return &Session{path: path}
}

// Load reads the token file at path if one exists. A missing file yields an
// empty session, not an error.
func Load(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse token file: %w", err)
	}

	s.access = tf.Access
	s.refresh = tf.Refresh
	return s, nil
}

// Token returns the access token, or ErrNoToken when the session is empty.
// Callers must check this before issuing any authenticated request.
func (s *Session) Token() (string, error) {
	if s.access == "" {
		return "", ErrNoToken
	}
	return s.access, nil
}

// RefreshToken returns the refresh token, empty when absent.
func (s *Session) RefreshToken() string {
	return s.refresh
}

// Set stores a token pair and persists it to the token file.
func (s *Session) Set(access, refresh string) error {
	s.access = access
	s.refresh = refresh

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	data, err := json.Marshal(tokenFile{Access: access, Refresh: refresh})
	if err != nil {
		return fmt.Errorf("marshal token file: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear drops the in-memory tokens and deletes the token file.
func (s *Session) Clear() error {
	s.access = ""
	s.refresh = ""

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// Identity is a best-effort view of the access token's claims, for display
// surfaces only (whoami). Signature is not verified; the backend remains the
// authority on what the token grants.
type Identity struct {
	Name  string
	Email string
	Role  string
}

// Identity parses the access token's claims without verification. The second
// return is false when the session is empty or the token is not a readable
// JWT; that is not an error condition.
func (s *Session) Identity() (Identity, bool) {
	if s.access == "" {
		return Identity{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.access, claims); err != nil {
		return Identity{}, false
	}

	var id Identity
	if v, ok := claims["full_name"].(string); ok {
		id.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		id.Role = v
	}

	if id == (Identity{}) {
		return Identity{}, false
	}
	return id, true
}
