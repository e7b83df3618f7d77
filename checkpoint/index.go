package checkpoint

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/supervillain/action"
)

// Run is one row of the run index.
type Run struct {
	ID             string
	Created        time.Time
	Updated        time.Time
	Action         ActionSpec
	Generator      string
	Seed           uint64
	Configurations int
	Snapshot       string
}

// timeLayout is fixed width so that timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Index is a sqlite table of runs. One connection; safe for concurrent use.
type Index struct {
	db *sql.DB
}

// NewRunID returns a time-ordered UUIDv7, falling back to v4.
func NewRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// OpenIndex opens (creating if needed) the index database at path.
func OpenIndex(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("checkpoint: empty index path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initIndex(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

func initIndex(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created TEXT NOT NULL,
			updated TEXT NOT NULL,
			formulation TEXT NOT NULL,
			n INTEGER NOT NULL,
			kappa REAL NOT NULL,
			w TEXT NOT NULL,
			generator TEXT NOT NULL,
			seed TEXT NOT NULL,
			configurations INTEGER NOT NULL,
			snapshot TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS runs_created ON runs(created);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("checkpoint: init index: %w", err)
		}
	}
	return nil
}

// Close releases the database.
func (x *Index) Close() error { return x.db.Close() }

// Record inserts r, or updates the mutable columns of an existing run.
func (x *Index) Record(ctx context.Context, r Run) error {
	w, err := r.Action.W.MarshalText()
	if err != nil {
		return err
	}
	_, err = x.db.ExecContext(ctx, `
		INSERT INTO runs (id, created, updated, formulation, n, kappa, w, generator, seed, configurations, snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			updated = excluded.updated,
			generator = excluded.generator,
			configurations = excluded.configurations,
			snapshot = excluded.snapshot`,
		r.ID,
		r.Created.UTC().Format(timeLayout),
		r.Updated.UTC().Format(timeLayout),
		r.Action.Kind.String(),
		r.Action.N,
		r.Action.Kappa,
		string(w),
		r.Generator,
		strconv.FormatUint(r.Seed, 10),
		r.Configurations,
		r.Snapshot,
	)
	if err != nil {
		return fmt.Errorf("checkpoint: record %s: %w", r.ID, err)
	}
	return nil
}

const selectRuns = `SELECT id, created, updated, formulation, n, kappa, w, generator, seed, configurations, snapshot FROM runs`

// Get returns the run with the given id, or ErrNotFound.
func (x *Index) Get(ctx context.Context, id string) (Run, error) {
	row := x.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, err
}

// Runs lists every run, oldest first.
func (x *Index) Runs(ctx context.Context) ([]Run, error) {
	rows, err := x.db.QueryContext(ctx, selectRuns+` ORDER BY created, id`)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var (
		r                    Run
		created, updated     string
		formulation, w, seed string
	)
	if err := s.Scan(&r.ID, &created, &updated, &formulation, &r.Action.N, &r.Action.Kappa,
		&w, &r.Generator, &seed, &r.Configurations, &r.Snapshot); err != nil {
		return Run{}, err
	}
	var err error
	if r.Created, err = time.Parse(timeLayout, created); err != nil {
		return Run{}, fmt.Errorf("checkpoint: run %s: %w", r.ID, err)
	}
	if r.Updated, err = time.Parse(timeLayout, updated); err != nil {
		return Run{}, fmt.Errorf("checkpoint: run %s: %w", r.ID, err)
	}
	if r.Action.Kind, err = action.ParseKind(formulation); err != nil {
		return Run{}, fmt.Errorf("checkpoint: run %s: %w", r.ID, err)
	}
	if r.Action.W, err = action.ParseModulus(w); err != nil {
		return Run{}, fmt.Errorf("checkpoint: run %s: %w", r.ID, err)
	}
	if r.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return Run{}, fmt.Errorf("checkpoint: run %s: %w", r.ID, err)
	}
	return r, nil
}
