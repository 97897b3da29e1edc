package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrNoSave is returned when a slot has no stored snapshot.
var ErrNoSave = errors.New("no saved game")

// SnapshotRepository stores serialized snapshots on the local device.
type SnapshotRepository interface {
	// Save appends a snapshot to the slot's history and sets record.ID.
	Save(ctx context.Context, record *SaveRecord) error

	// LoadLatest returns the newest snapshot in a slot, or ErrNoSave.
	LoadLatest(ctx context.Context, slot string) (*SaveRecord, error)

	// List returns up to limit snapshots, newest first. Payloads are not loaded.
	List(ctx context.Context, slot string, limit int) ([]*SaveRecord, error)

	// Prune deletes all but the newest keep snapshots and reports how many went.
	Prune(ctx context.Context, slot string, keep int) (int64, error)
}

// SaveRecord is one stored snapshot.
type SaveRecord struct {
	ID        int64
	Slot      string
	Version   string
	Payload   []byte
	SavedAt   int64 // unix ms, same clock as the snapshot timestamp
	CreatedAt string
}

// SaveFileStore reads and writes portable save files.
type SaveFileStore interface {
	// Write stores data at path, creating parent directories.
	Write(ctx context.Context, path string, data []byte) error

	// Read returns the contents of path.
	Read(ctx context.Context, path string) ([]byte, error)
}

// Clock abstracts wall time so tests can control it.
type Clock interface {
	Now() time.Time
}
