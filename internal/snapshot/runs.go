package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusPlanned   Status = "planned"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// ErrRunNotFound is returned when no run matches an ID.
var ErrRunNotFound = errors.New("run not found")

// Run describes one command invocation.
type Run struct {
	ID         string
	Command    string
	Directory  string
	Extension  string
	PlanOnly   bool
	EasyMode   bool
	Status     Status
	Files      int
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// BeginRun records a new run in the running state.
func (s *Store) BeginRun(ctx context.Context, run Run) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	err := s.exec(ctx,
		`INSERT INTO runs (id, command, directory, extension, plan_only, easy_mode, status, started_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Command, run.Directory, run.Extension,
		boolToInt(run.PlanOnly), boolToInt(run.EasyMode), StatusRunning, formatTime(run.StartedAt),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// MarkEasyMode flags a run that fell back to easy mode.
func (s *Store) MarkEasyMode(ctx context.Context, id string) error {
	if err := s.exec(ctx, `UPDATE runs SET easy_mode = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	return nil
}

// FinishRun stores the final status, file count and error of a run.
func (s *Store) FinishRun(ctx context.Context, id string, status Status, files int, runErr error) error {
	message := ""
	if runErr != nil {
		message = runErr.Error()
	}
	err := s.exec(ctx,
		`UPDATE runs SET status = ?, files = ?, error_message = ?, finished_at = ? WHERE id = ?`,
		status, files, message, formatTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

const runColumns = `id, command, directory, extension, plan_only, easy_mode, status, files, error_message, started_at, finished_at`

// ListRuns returns the most recent runs first. limit <= 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns the run whose ID equals or uniquely starts with id.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrRunNotFound
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ? OR id LIKE ? ORDER BY started_at DESC LIMIT 2`,
		id, id+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	var matches []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		if run.ID == id {
			return &run, nil
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("run id prefix %q is ambiguous", id)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run      Run
		planOnly int
		easyMode int
		status   string
		started  sql.NullString
		finished sql.NullString
	)
	if err := row.Scan(&run.ID, &run.Command, &run.Directory, &run.Extension, &planOnly, &easyMode,
		&status, &run.Files, &run.Error, &started, &finished); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.PlanOnly = planOnly != 0
	run.EasyMode = easyMode != 0
	run.Status = Status(status)
	run.StartedAt = parseTime(started)
	run.FinishedAt = parseTime(finished)
	return run, nil
}
