package adapters

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"hospital-registry-service/internal/codec"
	"hospital-registry-service/internal/domain/registry"
)

// SnapshotStore persists and restores whole-directory state. Saves and
// loads are whole-file operations; there is no per-entity persistence.
type SnapshotStore interface {
	// Save overwrites the store with the directory's current state.
	Save(ctx context.Context, dir *registry.Directory) error
	// Load reconstructs a directory from the store.
	Load(ctx context.Context) (*registry.Directory, error)
	// Exists reports whether the store holds previously saved data.
	Exists() bool
}

// FileStore is the flat-file SnapshotStore. The file is fully rewritten
// on every save; a mutex keeps one save or load in flight at a time.
type FileStore struct {
	path   string
	codec  *codec.Codec
	logger *log.Logger
	mu     sync.Mutex
}

var _ SnapshotStore = (*FileStore)(nil)

// NewFileStore creates a store writing to path.
func NewFileStore(path string, c *codec.Codec, logger *log.Logger) *FileStore {
	return &FileStore{path: path, codec: c, logger: logger}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Save snapshots the directory and overwrites the backing file.
func (s *FileStore) Save(ctx context.Context, dir *registry.Directory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	text := s.codec.Encode(dir.Snapshot())
	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("saving hospital data to %s: %w", s.path, err)
	}
	s.logger.Printf("filestore: data saved to %s", s.path)
	return nil
}

// Load reads the backing file and decodes it into a fresh directory.
// Decoding itself never fails; only the read can.
func (s *FileStore) Load(ctx context.Context) (*registry.Directory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("loading hospital data from %s: %w", s.path, err)
	}
	dir := s.codec.Decode(string(raw))
	s.logger.Printf("filestore: data loaded from %s (%d patients, %d doctors)",
		s.path, dir.PatientCount(), dir.DoctorCount())
	return dir, nil
}

// Exists reports whether the backing file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
