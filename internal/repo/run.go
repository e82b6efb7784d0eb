// Package repo contains the database access logic for stored scenario runs.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

// db is the minimal interface satisfied by both *pgxpool.Pool and pgx.Tx.
// Tests pass a transaction that is rolled back after each test.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RunRepo defines the persistence operations for computed runs.
type RunRepo interface {
	// Create inserts the run header and every sample of run.Trajectories in one
	// transaction, returning the run with its DB-generated id and created_at.
	Create(ctx context.Context, run domain.Run) (domain.Run, error)

	// GetByID returns a run with its trajectories, trains in insertion order.
	// Returns domain.ErrNotFound if no run has that id.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Run, error)

	// List returns run headers newest first, without trajectories.
	List(ctx context.Context, page domain.RunPage) ([]domain.Run, error)

	// Delete removes a run and its samples.
	// Returns domain.ErrNotFound if no run has that id.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgRunRepo is the Postgres implementation of RunRepo.
type pgRunRepo struct {
	db db
}

// NewRunRepo constructs a RunRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewRunRepo(db db) RunRepo {
	return &pgRunRepo{db: db}
}

var sampleColumns = []string{"run_id", "train_seq", "train", "seq", "time_min", "location_km"}

func (r *pgRunRepo) Create(ctx context.Context, run domain.Run) (domain.Run, error) {
	const q = `
		INSERT INTO runs (scenario, trains)
		VALUES (@scenario, @trains)
		RETURNING id, scenario, trains, created_at`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Run{}, fmt.Errorf("repo.RunRepo.Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	args := pgx.NamedArgs{
		"scenario": run.Scenario,
		"trains":   run.Trajectories.Len(),
	}
	result, err := scanRun(tx.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Run{}, fmt.Errorf("repo.RunRepo.Create: %w", err)
	}

	var rows [][]any
	for trainSeq, label := range run.Trajectories.Labels() {
		t, _ := run.Trajectories.Get(label)
		for seq, s := range t {
			rows = append(rows, []any{result.ID, trainSeq, label, seq, s.Time, s.Location})
		}
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"run_samples"}, sampleColumns, pgx.CopyFromRows(rows)); err != nil {
		return domain.Run{}, fmt.Errorf("repo.RunRepo.Create: copy samples: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Run{}, fmt.Errorf("repo.RunRepo.Create: commit: %w", err)
	}
	result.Trajectories = run.Trajectories
	return result, nil
}

func (r *pgRunRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Run, error) {
	const header = `
		SELECT id, scenario, trains, created_at
		FROM runs
		WHERE id = @id`
	const samples = `
		SELECT train, time_min, location_km
		FROM run_samples
		WHERE run_id = @id
		ORDER BY train_seq, seq`

	result, err := scanRun(r.db.QueryRow(ctx, header, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Run{}, fmt.Errorf("repo.RunRepo.GetByID: %w", err)
	}

	rows, err := r.db.Query(ctx, samples, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Run{}, fmt.Errorf("repo.RunRepo.GetByID: samples: %w", err)
	}
	defer rows.Close()

	set := domain.NewTrajectorySet()
	var (
		current string
		t       domain.Trajectory
	)
	for rows.Next() {
		var (
			label string
			s     domain.Sample
		)
		if err := rows.Scan(&label, &s.Time, &s.Location); err != nil {
			return domain.Run{}, fmt.Errorf("repo.RunRepo.GetByID: scan: %w", err)
		}
		if label != current && t != nil {
			set.Set(current, t)
			t = nil
		}
		current = label
		t = append(t, s)
	}
	if err := rows.Err(); err != nil {
		return domain.Run{}, fmt.Errorf("repo.RunRepo.GetByID: rows: %w", err)
	}
	if t != nil {
		set.Set(current, t)
	}

	result.Trajectories = set
	return result, nil
}

func (r *pgRunRepo) List(ctx context.Context, page domain.RunPage) ([]domain.Run, error) {
	const q = `
		SELECT id, scenario, trains, created_at
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": page.Limit, "offset": page.Offset()})
	if err != nil {
		return nil, fmt.Errorf("repo.RunRepo.List: %w", err)
	}
	defer rows.Close()

	runs := []domain.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RunRepo.List: scan: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RunRepo.List: rows: %w", err)
	}
	return runs, nil
}

func (r *pgRunRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM runs WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.RunRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RunRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRun maps a runs row into a domain.Run header.
func scanRun(s scanner) (domain.Run, error) {
	var (
		run domain.Run
		id  pgtype.UUID
	)
	if err := s.Scan(&id, &run.Scenario, &run.Trains, &run.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Run{}, domain.ErrNotFound
		}
		return domain.Run{}, err
	}
	run.ID = uuid.UUID(id.Bytes)
	return run, nil
}
