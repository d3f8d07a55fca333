// Package keystore persists the single credential record at
// <home>/.config/<app>/config.json.
//
// Writes go to a temporary file in the same directory that is renamed over
// the config file, so readers see either the old record or the new one.
// Where the platform has POSIX permission bits the directory is forced to
// 0700 and the file to 0600 before any key material is written. Elsewhere
// the write is a plain replace and protection is left to the platform.
package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	apperrors "github.com/d5c5ceb0/polymarket-cli/pkg/errors"
	"github.com/d5c5ceb0/polymarket-cli/pkg/types"
)

const (
	// DefaultAppName is the directory under ~/.config
	DefaultAppName = "polymarket"

	// FileName is the config file name inside the app directory
	FileName = "config.json"

	parentPerm os.FileMode = 0o755
	dirPerm    os.FileMode = 0o700
	filePerm   os.FileMode = 0o600
)

// Store reads and writes the credential record
type Store struct {
	app     string
	homeDir func() (string, error)
}

// Option configures a Store
type Option func(*Store)

// WithHomeDir overrides the home directory lookup
func WithHomeDir(fn func() (string, error)) Option {
	return func(s *Store) {
		s.homeDir = fn
	}
}

// WithAppName overrides the app directory name
func WithAppName(name string) Option {
	return func(s *Store) {
		s.app = name
	}
}

// New creates a store rooted at the user's home directory
func New(opts ...Option) *Store {
	s := &Store{
		app:     DefaultAppName,
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the config directory. It is recomputed on every call.
func (s *Store) Dir() (string, error) {
	home, err := s.homeDir()
	if err != nil {
		return "", apperrors.PathResolution(err)
	}
	if home == "" {
		return "", apperrors.PathResolution(errors.New("home directory is empty"))
	}
	return filepath.Join(home, ".config", s.app), nil
}

// Locate returns the config file path
func (s *Store) Locate() (string, error) {
	dir, err := s.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Exists reports whether a config file is present. Lookup errors count as absent.
func (s *Store) Exists() bool {
	path, err := s.Locate()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// record mirrors types.Config with required fields
type record struct {
	PrivateKey *string `json:"private_key"`
	ChainID    *uint64 `json:"chain_id"`
}

// Load reads the credential record.
// A missing, unreadable or malformed file is reported as absent, never as an error.
func (s *Store) Load() (*types.Config, bool) {
	path, err := s.Locate()
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Debug("config file unreadable, treating as absent", "path", path, "error", err)
		}
		return nil, false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Debug("config file malformed, treating as absent", "path", path, "error", err)
		return nil, false
	}
	if rec.PrivateKey == nil || rec.ChainID == nil {
		slog.Debug("config file missing fields, treating as absent", "path", path)
		return nil, false
	}

	return &types.Config{PrivateKey: *rec.PrivateKey, ChainID: *rec.ChainID}, true
}

// Save writes {private_key, chain_id} to the config file, replacing any prior record
func (s *Store) Save(key string, chainID uint64) error {
	dir, err := s.Dir()
	if err != nil {
		return err
	}

	// Only the app directory is private; missing parents get ordinary modes.
	if err := os.MkdirAll(filepath.Dir(dir), parentPerm); err != nil {
		return apperrors.Persistence("create config directory", filepath.Dir(dir), err)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return apperrors.Persistence("create config directory", dir, err)
	}
	if permissionBitsSupported {
		if err := hardenDir(dir); err != nil {
			return apperrors.Persistence("set config directory permissions", dir, err)
		}
	}

	data, err := json.MarshalIndent(types.Config{PrivateKey: key, ChainID: chainID}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := writeFileAtomic(dir, path, data); err != nil {
		return apperrors.Persistence("write config file", path, err)
	}

	slog.Debug("saved config", "path", path, "chain_id", chainID)
	return nil
}

// writeFileAtomic writes data to a private temp file in dir and renames it onto path
func writeFileAtomic(dir, path string, data []byte) (err error) {
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", FileName, uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if permissionBitsSupported {
		if err = hardenFile(f); err != nil {
			return fmt.Errorf("failed to set file permissions: %w", err)
		}
	}

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = atomic.ReplaceFile(tmp, path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}
