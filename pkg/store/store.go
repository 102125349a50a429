// Package store persists the companion, trade offers, and the marketplace
// as JSON documents under a single base directory. Writes go through a temp
// file and an atomic rename so a crash never leaves a half-written document.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"digip/pkg/pet"
)

// Subdirectories and well-known files under the base directory.
const (
	petsDir     = "pets"
	tradesDir   = "trades"
	petFile     = "companion.json"
	marketFile  = "market.json"
	eventsFile  = "events.db"
	configFile  = "config.toml"
	catalogFile = "kinds.yaml"
)

// Store reads and writes JSON documents under an explicit base directory.
// The base directory is always supplied by the caller; there is no
// process-wide default path.
type Store struct {
	base string
}

// New creates a Store rooted at base, creating the directory layout if
// needed.
func New(base string) (*Store, error) {
	for _, dir := range []string{base, filepath.Join(base, petsDir), filepath.Join(base, tradesDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}
	return &Store{base: base}, nil
}

// Base returns the store's base directory.
func (s *Store) Base() string { return s.base }

// PetPath returns the active companion's save file path.
func (s *Store) PetPath() string { return filepath.Join(s.base, petsDir, petFile) }

// TradeDir returns the directory holding one document per trade offer.
func (s *Store) TradeDir() string { return filepath.Join(s.base, tradesDir) }

// TradePath returns the document path for a trade offer id.
func (s *Store) TradePath(id string) string {
	return filepath.Join(s.base, tradesDir, id+".json")
}

// MarketPath returns the shared marketplace document path.
func (s *Store) MarketPath() string { return filepath.Join(s.base, marketFile) }

// EventLogPath returns the SQLite event log path.
func (s *Store) EventLogPath() string { return filepath.Join(s.base, eventsFile) }

// ConfigPath returns the TOML config file path.
func (s *Store) ConfigPath() string { return filepath.Join(s.base, configFile) }

// KindCatalogPath returns the optional kind catalog override path.
func (s *Store) KindCatalogPath() string { return filepath.Join(s.base, catalogFile) }

// SaveDoc marshals v as indented JSON and writes it to path atomically.
func (s *Store) SaveDoc(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return s.writeFile(path, data)
}

// LoadDoc decodes the JSON document at path into v. It returns
// *NotFoundError when the document does not exist and *ParseError when it
// cannot be decoded.
func (s *Store) LoadDoc(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &NotFoundError{Path: path}
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// SavePet persists the companion to its save file.
func (s *Store) SavePet(p *pet.Pet) error {
	data, err := p.Encode()
	if err != nil {
		return err
	}
	return s.writeFile(s.PetPath(), data)
}

// LoadPet reconstructs the saved companion. Missing save yields
// *NotFoundError; a corrupt save yields *ParseError.
func (s *Store) LoadPet(opts ...pet.Option) (*pet.Pet, error) {
	path := s.PetPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := pet.Decode(data, opts...)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return p, nil
}

// writeFile writes data to path via a temp file in the same directory and an
// atomic rename.
func (s *Store) writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
