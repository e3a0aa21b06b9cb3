package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	"shotname/internal/classify"
	"shotname/internal/grouping"
	"shotname/internal/metadata"
	"shotname/internal/naming"
)

// StoredRow is one metadata row as persisted for a run.
type StoredRow struct {
	Index          int
	Row            metadata.Row
	Classification classify.Classification
}

// SaveTable stores every row of table with its classification.
func (s *Store) SaveTable(ctx context.Context, runID string, table *metadata.Table) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_rows (run_id, idx, directory, file_name, captured_at, row_json, classification_json)
             VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare rows: %w", err)
		}
		defer stmt.Close()

		for i := 0; i < table.Len(); i++ {
			row := table.Row(i)
			rowJSON, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("encode row %d: %w", i, err)
			}
			classJSON, err := json.Marshal(classify.Classify(row))
			if err != nil {
				return fmt.Errorf("encode classification %d: %w", i, err)
			}
			ts, _ := row.CaptureTime()
			if _, err := stmt.ExecContext(ctx, runID, i, row.Directory, row.FileName, formatTime(ts),
				string(rowJSON), string(classJSON)); err != nil {
				return fmt.Errorf("insert row %d: %w", i, err)
			}
		}
		return nil
	})
}

// Rows loads the stored table of a run in table order.
func (s *Store) Rows(ctx context.Context, runID string) ([]StoredRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, row_json, classification_json FROM run_rows WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	var out []StoredRow
	for rows.Next() {
		var (
			stored    StoredRow
			rowJSON   string
			classJSON string
		)
		if err := rows.Scan(&stored.Index, &rowJSON, &classJSON); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(rowJSON), &stored.Row); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", stored.Index, err)
		}
		if err := json.Unmarshal([]byte(classJSON), &stored.Classification); err != nil {
			return nil, fmt.Errorf("decode classification %d: %w", stored.Index, err)
		}
		out = append(out, stored)
	}
	return out, rows.Err()
}

// SaveRecords stores the naming records of a run.
func (s *Store) SaveRecords(ctx context.Context, runID string, records []naming.Record) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_records (run_id, idx, directory, old_name, new_name, raw_old, raw_new, captured_at,
                                      sequence, sequence_number)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare records: %w", err)
		}
		defer stmt.Close()

		for _, r := range records {
			if _, err := stmt.ExecContext(ctx, runID, r.Index, r.Directory, r.OldName, r.NewName,
				r.RawOld, r.RawNew, formatTime(r.Timestamp), string(r.Sequence), r.SequenceNumber); err != nil {
				return fmt.Errorf("insert record %d: %w", r.Index, err)
			}
		}
		return nil
	})
}

// Records loads the naming records of a run in order.
func (s *Store) Records(ctx context.Context, runID string) ([]naming.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, directory, old_name, new_name, raw_old, raw_new, captured_at, sequence, sequence_number
         FROM run_records WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []naming.Record
	for rows.Next() {
		var (
			r        naming.Record
			captured sql.NullString
			seq      string
		)
		if err := rows.Scan(&r.Index, &r.Directory, &r.OldName, &r.NewName, &r.RawOld, &r.RawNew, &captured,
			&seq, &r.SequenceNumber); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.Extension = filepath.Ext(r.NewName)
		r.NewBase = r.NewName[:len(r.NewName)-len(r.Extension)]
		r.Timestamp = parseTime(captured)
		r.Sequence = classify.SequenceKind(seq)
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveGroups stores the batch intervals of an order run.
func (s *Store) SaveGroups(ctx context.Context, runID string, groups []grouping.Interval) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for i, g := range groups {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO run_groups (run_id, idx, name, first_at, last_at, files) VALUES (?, ?, ?, ?, ?, ?)`,
				runID, i, g.Name, formatTime(g.First), formatTime(g.Last), g.Count,
			); err != nil {
				return fmt.Errorf("insert group %d: %w", i, err)
			}
		}
		return nil
	})
}

// Groups loads the batch intervals of a run.
func (s *Store) Groups(ctx context.Context, runID string) ([]grouping.Interval, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, first_at, last_at, files FROM run_groups WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	var out []grouping.Interval
	for rows.Next() {
		var (
			g           grouping.Interval
			first, last sql.NullString
		)
		if err := rows.Scan(&g.Name, &first, &last, &g.Count); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		g.First = parseTime(first)
		g.Last = parseTime(last)
		out = append(out, g)
	}
	return out, rows.Err()
}
