// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/guildmaster/internal/ports/secondary"
)

// SaveRepository implements secondary.SnapshotRepository with SQLite.
type SaveRepository struct {
	db *sql.DB
}

// NewSaveRepository creates a new SQLite save repository.
func NewSaveRepository(db *sql.DB) *SaveRepository {
	return &SaveRepository{db: db}
}

// Save appends a snapshot to the slot history.
func (r *SaveRepository) Save(ctx context.Context, record *secondary.SaveRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO saves (slot, version, payload, saved_at) VALUES (?, ?, ?, ?)",
		record.Slot, record.Version, string(record.Payload), record.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert save: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read save id: %w", err)
	}
	record.ID = id
	return nil
}

// LoadLatest returns the newest snapshot in a slot.
func (r *SaveRepository) LoadLatest(ctx context.Context, slot string) (*secondary.SaveRecord, error) {
	var (
		payload   string
		createdAt time.Time
	)

	record := &secondary.SaveRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, slot, version, payload, saved_at, created_at FROM saves WHERE slot = ? ORDER BY id DESC LIMIT 1",
		slot,
	).Scan(&record.ID, &record.Slot, &record.Version, &payload, &record.SavedAt, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("slot %s: %w", slot, secondary.ErrNoSave)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load save: %w", err)
	}

	record.Payload = []byte(payload)
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// List returns up to limit snapshots, newest first, without payloads.
// A non-positive limit lists everything.
func (r *SaveRepository) List(ctx context.Context, slot string, limit int) ([]*secondary.SaveRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, slot, version, saved_at, created_at FROM saves WHERE slot = ? ORDER BY id DESC LIMIT ?",
		slot, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	defer rows.Close()

	var records []*secondary.SaveRecord
	for rows.Next() {
		var createdAt time.Time
		record := &secondary.SaveRecord{}
		if err := rows.Scan(&record.ID, &record.Slot, &record.Version, &record.SavedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan save: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		records = append(records, record)
	}

	return records, rows.Err()
}

// Prune deletes all but the newest keep snapshots in a slot.
func (r *SaveRepository) Prune(ctx context.Context, slot string, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	result, err := r.db.ExecContext(ctx, `
		DELETE FROM saves
		WHERE slot = ? AND id NOT IN (
			SELECT id FROM saves WHERE slot = ? ORDER BY id DESC LIMIT ?
		)`,
		slot, slot, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune saves: %w", err)
	}

	return result.RowsAffected()
}

// Ensure SaveRepository implements the interface.
var _ secondary.SnapshotRepository = (*SaveRepository)(nil)
