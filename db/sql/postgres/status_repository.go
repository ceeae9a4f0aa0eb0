package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adeilh/go-rakh-status/status"
	"github.com/lib/pq"
)

// StatusRepository mirrors the status table into PostgreSQL so other
// services can join against it, and serves lookups back from the database.
type StatusRepository struct {
	db *sql.DB
}

// NewStatusRepository wraps an existing *sql.DB connection.
func NewStatusRepository(db *sql.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// EnsureSchema creates the status_codes table if it does not exist.
func (r *StatusRepository) EnsureSchema(ctx context.Context) error {
	return ApplyMigrations(ctx, r.db, StatusSchema...)
}

// Seed upserts entries and removes rows whose names are no longer present,
// all in one transaction. Each row records its index in entries so reads
// come back in the same order. It returns the number of rows written.
func (r *StatusRepository) Seed(ctx context.Context, entries []status.Entry) (int64, error) {
	const upsert = `INSERT INTO status_codes (name, code, class, description, reference, deprecated, position)
                    SELECT * FROM unnest($1::text[], $2::int[], $3::text[], $4::text[], $5::text[], $6::bool[], $7::int[])
                    ON CONFLICT (name) DO UPDATE SET
                        code = EXCLUDED.code,
                        class = EXCLUDED.class,
                        description = EXCLUDED.description,
                        reference = EXCLUDED.reference,
                        deprecated = EXCLUDED.deprecated,
                        position = EXCLUDED.position`
	const prune = `DELETE FROM status_codes WHERE NOT (name = ANY($1::text[]))`

	n := len(entries)
	names := make([]string, 0, n)
	codes := make([]int64, 0, n)
	classes := make([]string, 0, n)
	descriptions := make([]string, 0, n)
	references := make([]string, 0, n)
	deprecated := make([]bool, 0, n)
	positions := make([]int64, 0, n)
	for i, e := range entries {
		names = append(names, e.Name)
		codes = append(codes, int64(e.Code))
		classes = append(classes, e.Class.String())
		descriptions = append(descriptions, e.Description)
		references = append(references, e.Reference)
		deprecated = append(deprecated, e.Deprecated)
		positions = append(positions, int64(i))
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("postgres: seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, upsert,
		pq.Array(names), pq.Array(codes), pq.Array(classes),
		pq.Array(descriptions), pq.Array(references), pq.Array(deprecated), pq.Array(positions))
	if err != nil {
		return 0, fmt.Errorf("postgres: seed: upsert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, prune, pq.Array(names)); err != nil {
		return 0, fmt.Errorf("postgres: seed: prune: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("postgres: seed: commit: %w", err)
	}

	written, _ := res.RowsAffected()
	return written, nil
}

// Lookup returns the stored entry for name.
func (r *StatusRepository) Lookup(ctx context.Context, name string) (status.Entry, error) {
	const query = `SELECT name, code, class, description, reference, deprecated FROM status_codes WHERE name = $1`
	e, err := scanEntry(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return status.Entry{}, &status.NotFoundError{Name: name}
	}
	return e, err
}

func (r *StatusRepository) CodeFor(ctx context.Context, name string) (status.Code, error) {
	e, err := r.Lookup(ctx, name)
	if err != nil {
		return 0, err
	}
	return e.Code, nil
}

// NameFor returns the first name stored for code in seeded order, matching
// status.NameFor when the table was seeded from status.Entries.
func (r *StatusRepository) NameFor(ctx context.Context, code status.Code) (string, error) {
	const query = `SELECT name FROM status_codes WHERE code = $1 ORDER BY position, name LIMIT 1`
	var name string
	err := r.db.QueryRowContext(ctx, query, int64(code)).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &status.NotFoundError{Code: code}
	}
	if err != nil {
		return "", fmt.Errorf("postgres: name for %d: %w", code, err)
	}
	return name, nil
}

// List returns every stored entry in seeded order.
func (r *StatusRepository) List(ctx context.Context) ([]status.Entry, error) {
	const query = `SELECT name, code, class, description, reference, deprecated FROM status_codes ORDER BY position, code, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: list: %w", err)
	}
	defer rows.Close()

	var out []status.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: list: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (status.Entry, error) {
	var (
		e     status.Entry
		code  int64
		class string
	)
	if err := row.Scan(&e.Name, &code, &class, &e.Description, &e.Reference, &e.Deprecated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return status.Entry{}, err
		}
		return status.Entry{}, fmt.Errorf("postgres: scan status entry: %w", err)
	}
	parsed, err := status.ParseClass(class)
	if err != nil {
		return status.Entry{}, fmt.Errorf("postgres: row %s: %w", e.Name, err)
	}
	e.Code = status.Code(code)
	e.Class = parsed
	return e, nil
}
