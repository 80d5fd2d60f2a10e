package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/studiowebux/sniprrr/internal/config"
	"github.com/studiowebux/sniprrr/internal/types"
)

// LoadOutcome names the way a load resolved. Every outcome other than
// LoadOK means the store degraded to an empty list; none of them is an
// error the caller has to handle.
type LoadOutcome int

const (
	LoadOK LoadOutcome = iota
	LoadMissing
	LoadUnreadable
	LoadMalformed
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadUnreadable:
		return "unreadable"
	case LoadMalformed:
		return "malformed"
	}
	return "unknown"
}

// Store persists the snippet list as a JSON array at a fixed path.
type Store struct {
	Path string
}

// New returns a store bound to the configured snippets file.
func New() *Store {
	return &Store{Path: config.SnippetsFile}
}

// Load reads the full snippet list. It never fails: a missing file,
// unreadable file, or malformed JSON all degrade to an empty list, with
// the outcome named so callers (and tests) can tell the paths apart.
func (s *Store) Load() ([]types.Snippet, LoadOutcome) {
	if s.Path == "" {
		return []types.Snippet{}, LoadMissing
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.Snippet{}, LoadMissing
		}
		return []types.Snippet{}, LoadUnreadable
	}

	var snippets []types.Snippet
	if err := json.Unmarshal(data, &snippets); err != nil {
		return []types.Snippet{}, LoadMalformed
	}
	if snippets == nil {
		snippets = []types.Snippet{}
	}

	return snippets, LoadOK
}

// Save writes the full snippet list, creating the parent directory as
// needed. The write goes to a temp file in the same directory and is
// renamed over the target so a crash can't leave a half-written file.
// Unlike Load, failures here propagate: masking a failed save risks
// silent data loss.
func (s *Store) Save(snippets []types.Snippet) error {
	if s.Path == "" {
		return fmt.Errorf("snippets file path is not configured")
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if snippets == nil {
		snippets = []types.Snippet{}
	}

	data, err := json.MarshalIndent(snippets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snippets: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".messages-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write snippets: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write snippets: %w", err)
	}

	if err := os.Chmod(tmpPath, config.FilePermissions); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}

	return nil
}
