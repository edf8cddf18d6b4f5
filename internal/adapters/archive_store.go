package adapters

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"log"
	"time"

	"hospital-registry-service/internal/domain/registry"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
)

var snapshotBucket = []byte("snapshots")

// SnapshotRecord is one archived save, kept for history browsing.
type SnapshotRecord struct {
	ID       string
	SavedAt  time.Time
	Patients int
	Doctors  int
	Data     string
}

// Archiver keeps a history of saved snapshots.
type Archiver interface {
	Archive(ctx context.Context, snap registry.Snapshot, encoded string) (string, error)
	History(ctx context.Context, limit int) ([]SnapshotRecord, error)
	Close() error
}

// BoltArchive stores snapshot history in a local bolt database, one
// gob-encoded record per save under a monotonic sequence key.
type BoltArchive struct {
	db     *bolt.DB
	logger *log.Logger
}

var _ Archiver = (*BoltArchive)(nil)

// NewBoltArchive opens (or creates) the archive database. The caller
// owns the returned archive and must Close it.
func NewBoltArchive(path string, logger *log.Logger) (*BoltArchive, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot archive %s: %w", path, err)
	}
	return &BoltArchive{db: db, logger: logger}, nil
}

// Close releases the archive database and its file lock.
func (a *BoltArchive) Close() error {
	return a.db.Close()
}

// Archive appends the encoded snapshot to the history and returns the
// record's ID.
func (a *BoltArchive) Archive(ctx context.Context, snap registry.Snapshot, encoded string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rec := SnapshotRecord{
		ID:       uuid.New().String(),
		SavedAt:  time.Now().UTC(),
		Patients: len(snap.Patients),
		Doctors:  len(snap.Doctors),
		Data:     encoded,
	}

	err := a.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(snapshotBucket)
		if err != nil {
			return err
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		value, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		return bucket.Put(sequenceKey(seq), value)
	})
	if err != nil {
		return "", fmt.Errorf("archiving snapshot: %w", err)
	}

	a.logger.Printf("archive: stored snapshot %s (%d patients, %d doctors)",
		rec.ID, rec.Patients, rec.Doctors)
	return rec.ID, nil
}

// History returns archived snapshots oldest first, up to limit entries
// (limit <= 0 means all).
func (a *BoltArchive) History(ctx context.Context, limit int) ([]SnapshotRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []SnapshotRecord
	err := a.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(snapshotBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, value []byte) error {
			if limit > 0 && len(records) >= limit {
				return nil
			}
			rec, err := decodeRecord(value)
			if err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading snapshot history: %w", err)
	}
	return records, nil
}

// sequenceKey returns an 8-byte big endian representation of v, so bolt
// iterates records in insertion order.
func sequenceKey(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func encodeRecord(rec SnapshotRecord) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRecord(data []byte) (SnapshotRecord, error) {
	var rec SnapshotRecord
	err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&rec)
	return rec, err
}
