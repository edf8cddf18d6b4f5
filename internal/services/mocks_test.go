package services

import (
	"context"
	"errors"
	"sync/atomic"

	"hospital-registry-service/internal/adapters"
	"hospital-registry-service/internal/domain/registry"
)

// --- MockSnapshotStore ---
// Compile-time check that the mock satisfies the store contract.
var _ adapters.SnapshotStore = (*MockSnapshotStore)(nil)

// MockSnapshotStore is a func-field mock of adapters.SnapshotStore.
type MockSnapshotStore struct {
	SaveFunc   func(ctx context.Context, dir *registry.Directory) error
	LoadFunc   func(ctx context.Context) (*registry.Directory, error)
	ExistsFunc func() bool

	SaveCallCount int32
	LoadCallCount int32
}

func (m *MockSnapshotStore) Save(ctx context.Context, dir *registry.Directory) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, dir)
	}
	return nil
}

func (m *MockSnapshotStore) Load(ctx context.Context) (*registry.Directory, error) {
	atomic.AddInt32(&m.LoadCallCount, 1)
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return nil, errors.New("LoadFunc not implemented in mock")
}

func (m *MockSnapshotStore) Exists() bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc()
	}
	return false
}

// --- MockArchiver ---
var _ adapters.Archiver = (*MockArchiver)(nil)

// MockArchiver is a func-field mock of adapters.Archiver.
type MockArchiver struct {
	ArchiveFunc func(ctx context.Context, snap registry.Snapshot, encoded string) (string, error)
	HistoryFunc func(ctx context.Context, limit int) ([]adapters.SnapshotRecord, error)

	ArchiveCallCount int32
}

func (m *MockArchiver) Archive(ctx context.Context, snap registry.Snapshot, encoded string) (string, error) {
	atomic.AddInt32(&m.ArchiveCallCount, 1)
	if m.ArchiveFunc != nil {
		return m.ArchiveFunc(ctx, snap, encoded)
	}
	return "mock-archive-id", nil
}

func (m *MockArchiver) History(ctx context.Context, limit int) ([]adapters.SnapshotRecord, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockArchiver) Close() error {
	return nil
}
