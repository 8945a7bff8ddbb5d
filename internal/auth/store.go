// Package auth stores the backend's bearer token between CLI invocations.
// The auth protocol itself is the backend's business; this package only
// answers "am I logged in" and supplies the token for outgoing requests.
package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store persists one bearer token at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the stored token, or "" when none is stored. Implements
// api.TokenSource.
func (s *Store) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save writes the token, readable only by the current user.
func (s *Store) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("refusing to store an empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file %s: %w", s.path, err)
	}
	return nil
}

// LoggedIn reports whether a token is stored and, when it is a JWT with an
// expiry claim, whether that expiry is still in the future. The signature is
// not verified here: the token is the backend's to validate, the client only
// avoids sending one it knows is dead.
func (s *Store) LoggedIn() bool {
	token := s.Token()
	if token == "" {
		return false
	}
	expiry, err := tokenExpiry(token)
	if err != nil || expiry.IsZero() {
		// Opaque tokens get the benefit of the doubt; the backend will
		// 401 if it disagrees.
		return true
	}
	return time.Now().Before(expiry)
}

// tokenExpiry reads the exp claim from a JWT without verifying it.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
