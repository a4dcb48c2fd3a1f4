package engine

import (
	"context"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"backend/internal/models"
)

// Store owns the process-wide dataset. The dataset is loaded once and then
// only replaced wholesale: readers always see either the previous complete
// snapshot or the new one, never a partial load.
type Store struct {
	path string

	// loadMu serializes Load and the watcher's reloads so that two
	// concurrent first Loads cannot both read the file.
	loadMu sync.Mutex

	mu         sync.RWMutex
	records    []models.Record
	generation uint64
	loaded     bool
	loadErr    error
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load performs the initial load. Calling it again after a successful load
// is a no-op; use the watcher for refreshes.
func (s *Store) Load() error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.mu.RLock()
	done := s.loaded
	s.mu.RUnlock()
	if done {
		return nil
	}
	return s.reloadLocked()
}

func (s *Store) reload() error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	return s.reloadLocked()
}

func (s *Store) reloadLocked() error {
	records, err := Load(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Keep the previous snapshot on a failed refresh; only the
		// initial load leaves the store empty with an error.
		s.loadErr = err
		return err
	}
	s.records = records
	s.generation++
	s.loaded = true
	s.loadErr = nil
	return nil
}

// Dataset returns the current snapshot and whether a load has completed.
// The returned slice is shared and must be treated as read-only.
func (s *Store) Dataset() ([]models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.loaded
}

// Generation increments on every successful (re)load.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// LoadErr reports the most recent load failure, nil after a success.
func (s *Store) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Watch reloads the dataset whenever the source file is rewritten. It
// blocks until ctx is cancelled or the watcher fails. The directory is
// watched rather than the file so that replace-by-rename updates are seen.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return err
	}

	target, err := filepath.Abs(s.path)
	if err != nil {
		target = s.path
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				name = event.Name
			}
			if name != target {
				continue
			}
			if err := s.reload(); err != nil {
				log.Printf("store: reload after %s failed, keeping previous dataset: %v", event.Op, err)
			} else {
				log.Printf("store: dataset reloaded (generation %d)", s.Generation())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
