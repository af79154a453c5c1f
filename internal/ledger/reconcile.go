package ledger

import (
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"filings/internal/identity"
	"filings/internal/record"
)

// Identity is the persisted state of one stable_id.
type Identity struct {
	StableID        string
	FirstAddedDate  string
	LastUpdatedDate sql.NullString
	DataHash        string
	ActionType      string
}

// Summary counts what a reconcile pass did.
type Summary struct {
	Records   int
	Inserts   int
	Updates   int
	Unchanged int
}

// hashExcludedColumns never participate in the row content hash: they
// describe the processing run, not the candidate, and would make every
// rerun look like an update.
var hashExcludedColumns = map[string]bool{
	record.ColDataHash:            true,
	record.ColFirstAddedDate:      true,
	record.ColLastUpdatedDate:     true,
	record.ColActionType:          true,
	record.ColProcessingTimestamp: true,
	record.ColPipelineVersion:     true,
	record.ColDataSource:          true,
}

const rowHashLength = 16

// RowHash fingerprints a row's content, excluding processing metadata.
func RowHash(row record.Row, columns []string) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		if hashExcludedColumns[col] {
			continue
		}
		parts = append(parts, record.String(row[col]))
	}
	sum := md5.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:rowHashLength]
}

// Reconcile compares the finalized table against the persisted
// identities and rewrites each row's action_type: new stable_ids are
// INSERT, changed content is UPDATE, identical content is NO_CHANGE.
// Known identities get their persisted first_added_date restored so
// the date survives across runs, and the ledger rows are upserted.
func (s *Store) Reconcile(ctx context.Context, table *record.Table) (*Summary, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	table.EnsureColumns(record.ColDataHash)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin reconcile tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	summary := &Summary{Records: table.Len()}
	for _, row := range table.Rows {
		id := record.TrimString(row[record.ColStableID])
		if id == "" {
			continue
		}
		hash := RowHash(row, table.Columns)
		row[record.ColDataHash] = hash

		known, err := getIdentity(ctx, tx, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			firstAdded := record.String(row[record.ColFirstAddedDate])
			if firstAdded == "" {
				firstAdded = now
				row[record.ColFirstAddedDate] = firstAdded
			}
			row[record.ColLastUpdatedDate] = nil
			row[record.ColActionType] = identity.ActionInsert
			summary.Inserts++
			if err := upsertIdentity(ctx, tx, Identity{
				StableID:       id,
				FirstAddedDate: firstAdded,
				DataHash:       hash,
				ActionType:     identity.ActionInsert,
			}, now); err != nil {
				return nil, err
			}
		case err != nil:
			return nil, fmt.Errorf("load identity %s: %w", id, err)
		case known.DataHash != hash:
			row[record.ColFirstAddedDate] = known.FirstAddedDate
			row[record.ColLastUpdatedDate] = now
			row[record.ColActionType] = identity.ActionUpdate
			summary.Updates++
			if err := upsertIdentity(ctx, tx, Identity{
				StableID:        id,
				FirstAddedDate:  known.FirstAddedDate,
				LastUpdatedDate: sql.NullString{String: now, Valid: true},
				DataHash:        hash,
				ActionType:      identity.ActionUpdate,
			}, now); err != nil {
				return nil, err
			}
		default:
			row[record.ColFirstAddedDate] = known.FirstAddedDate
			if known.LastUpdatedDate.Valid {
				row[record.ColLastUpdatedDate] = known.LastUpdatedDate.String
			} else {
				row[record.ColLastUpdatedDate] = nil
			}
			row[record.ColActionType] = identity.ActionNoChange
			summary.Unchanged++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reconcile: %w", err)
	}
	return summary, nil
}

func getIdentity(ctx context.Context, tx *sql.Tx, id string) (*Identity, error) {
	var ident Identity
	err := tx.QueryRowContext(ctx,
		`SELECT stable_id, first_added_date, last_updated_date, data_hash, action_type
         FROM identities WHERE stable_id = ?`, id,
	).Scan(&ident.StableID, &ident.FirstAddedDate, &ident.LastUpdatedDate, &ident.DataHash, &ident.ActionType)
	if err != nil {
		return nil, err
	}
	return &ident, nil
}

func upsertIdentity(ctx context.Context, tx *sql.Tx, ident Identity, now string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO identities (stable_id, first_added_date, last_updated_date, data_hash, action_type, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(stable_id) DO UPDATE SET
            last_updated_date = excluded.last_updated_date,
            data_hash = excluded.data_hash,
            action_type = excluded.action_type,
            updated_at = excluded.updated_at`,
		ident.StableID, ident.FirstAddedDate, ident.LastUpdatedDate, ident.DataHash, ident.ActionType, now,
	)
	if err != nil {
		return fmt.Errorf("upsert identity %s: %w", ident.StableID, err)
	}
	return nil
}

// Run is one pipeline execution recorded in the ledger.
type Run struct {
	ID         string
	StartedAt  string
	FinishedAt sql.NullString
	States     int
	Records    int
	Inserts    int
	Updates    int
	Unchanged  int
}

// BeginRun records the start of a pipeline run.
func (s *Store) BeginRun(ctx context.Context, runID string, states int) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, started_at, states) VALUES (?, ?, ?)",
		runID, time.Now().UTC().Format(time.RFC3339), states,
	)
	if err != nil {
		return fmt.Errorf("record run start: %w", err)
	}
	return nil
}

// FinishRun stores the reconcile summary for a run.
func (s *Store) FinishRun(ctx context.Context, runID string, summary *Summary) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, records = ?, inserts = ?, updates = ?, unchanged = ?
         WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339),
		summary.Records, summary.Inserts, summary.Updates, summary.Unchanged,
		runID,
	)
	if err != nil {
		return fmt.Errorf("record run finish: %w", err)
	}
	return nil
}

// Stats summarizes the ledger for reporting.
type Stats struct {
	Identities int
	Runs       int
	LastRun    sql.NullString
}

// GetStats returns counters for the ledger CLI.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM identities").Scan(&stats.Identities); err != nil {
		return nil, fmt.Errorf("count identities: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM runs").Scan(&stats.Runs); err != nil {
		return nil, fmt.Errorf("count runs: %w", err)
	}
	err := s.db.QueryRowContext(ctx, "SELECT MAX(started_at) FROM runs").Scan(&stats.LastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("last run: %w", err)
	}
	return &stats, nil
}
