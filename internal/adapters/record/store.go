// Package record persists optimization results as a flat JSON file per
// target directory.
package record

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore using one JSON file per target
// directory, loaded lazily and cached for the process lifetime.
type Store struct {
	filename string
	mu       sync.RWMutex
	cache    map[string]map[string]domain.OptimizeRecord
}

// NewStore creates a store whose per-directory file carries the given name.
func NewStore(filename string) *Store {
	return &Store{
		filename: filename,
		cache:    make(map[string]map[string]domain.OptimizeRecord),
	}
}

// Get retrieves the record for a module within targetDir. A missing file or
// missing entry yields nil, nil.
func (s *Store) Get(targetDir, modulePath string) (*domain.OptimizeRecord, error) {
	records, err := s.records(targetDir)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := records[modulePath]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record under targetDir and flushes the directory's file.
func (s *Store) Put(targetDir string, rec domain.OptimizeRecord) error {
	records, err := s.records(targetDir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	records[rec.ModulePath] = rec
	s.mu.Unlock()

	return s.save(targetDir)
}

// records returns the cached map for targetDir, loading the file on first
// access.
func (s *Store) records(targetDir string) (map[string]domain.OptimizeRecord, error) {
	key := filepath.Clean(targetDir)

	s.mu.RLock()
	records, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return records, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if records, ok := s.cache[key]; ok {
		return records, nil
	}

	records = make(map[string]domain.OptimizeRecord)
	data, err := os.ReadFile(filepath.Join(key, s.filename)) //nolint:gosec // path derives from the target directory
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.Wrap(err, "failed to read record store")
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, zerr.Wrap(err, "failed to unmarshal record store")
		}
	}

	s.cache[key] = records
	return records, nil
}

func (s *Store) save(targetDir string) error {
	key := filepath.Clean(targetDir)

	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache[key], "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal record store")
	}

	if err := os.MkdirAll(key, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create record store directory")
	}
	if err := os.WriteFile(filepath.Join(key, s.filename), data, 0o644); err != nil { //nolint:gosec // records are not sensitive
		return zerr.Wrap(err, "failed to write record store")
	}
	return nil
}
