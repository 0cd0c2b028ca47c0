package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is used when New is called with an empty path.
var DefaultPath = filepath.Join(".firstrun", "install.json")

// Metadata is the on-disk install metadata document.
type Metadata struct {
	PromotionDialogCount int       `json:"promotion_dialog_count"`
	UpdatedAt            time.Time `json:"updated_at,omitempty"`
}

// Store implements ports.InstallMetadataStore using a JSON file on the local filesystem.
// Increments are serialized within the process; the file is replaced atomically on write.
type Store struct {
	Path string

	mu sync.Mutex
}

// New creates a new Store for the given file path.
// If path is empty, it defaults to DefaultPath.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// PromotionDialogCount reads the counter. A missing file means the dialog was never shown.
func (s *Store) PromotionDialogCount(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.load()
	if err != nil {
		return 0, err
	}
	return meta.PromotionDialogCount, nil
}

// RecordPromotionDialogShown increments the counter and persists it.
func (s *Store) RecordPromotionDialogShown(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.load()
	if err != nil {
		return 0, err
	}
	meta.PromotionDialogCount++
	meta.UpdatedAt = time.Now().UTC()

	if err := s.save(meta); err != nil {
		return 0, err
	}
	return meta.PromotionDialogCount, nil
}

func (s *Store) load() (Metadata, error) {
	var meta Metadata

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return meta, fmt.Errorf("failed to read install metadata: %w", err)
	}

	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("failed to unmarshal install metadata: %w", err)
	}
	if meta.PromotionDialogCount < 0 {
		return meta, fmt.Errorf("corrupt install metadata: negative promotion dialog count %d", meta.PromotionDialogCount)
	}
	return meta, nil
}

// save writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) save(meta Metadata) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure metadata directory: %w", err)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal install metadata: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // No-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if _, err := os.Stat(s.Path); err == nil {
		if err := os.Remove(s.Path); err != nil {
			return fmt.Errorf("failed to remove existing metadata file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to rename temp file to metadata file: %w", err)
	}
	return nil
}
