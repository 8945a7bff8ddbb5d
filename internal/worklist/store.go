package worklist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lsrecruit/sourcer/internal/types"
)

// Session is the on-disk snapshot of a sourcing session: the working list
// and the keyword string. It lets the CLI carry one session across
// invocations the way the page carried it across interactions.
type Session struct {
	Companies []types.CompanyRecord `json:"companies"`
	Keywords  string                `json:"keywords"`
}

// Store reads and writes the session snapshot at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the session from disk. A missing file is an empty session,
// not an error.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", s.path, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", s.path, err)
	}
	return &session, nil
}

// Save writes the session to disk, creating parent directories as needed.
func (s *Store) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file %s: %w", s.path, err)
	}
	return nil
}
