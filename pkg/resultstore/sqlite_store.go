package resultstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"

	// SQLite driver
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore records computations in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a store backed by the database at path. Call
// Init before use.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	return &SQLiteStore{path: path}, nil
}

// Init opens the database, verifies the connection, and runs pending
// migrations.
func (s *SQLiteStore) Init(ctx context.Context) error {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", s.path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	s.db = db
	return s.migrate()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// migrate applies the embedded schema migrations.
func (s *SQLiteStore) migrate() error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(s.db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Record inserts a computation, assigning its ID and creation time.
// The passed value is updated in place.
func (s *SQLiteStore) Record(ctx context.Context, c *Computation) error {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO computations (id, kind, group_name, group_order, prime, exponent, result, status, error, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID,
		c.Kind,
		c.GroupName,
		c.GroupOrder,
		c.Prime,
		c.Exponent,
		c.Result,
		c.Status,
		c.Error,
		c.Duration.Nanoseconds(),
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record computation: %w", err)
	}
	return nil
}

// Get retrieves a computation by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Computation, error) {
	query := `
		SELECT id, kind, group_name, group_order, prime, exponent, result, status, error, duration_ns, created_at
		FROM computations
		WHERE id = ?
	`

	c := &Computation{}
	var durationNS int64
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Kind,
		&c.GroupName,
		&c.GroupOrder,
		&c.Prime,
		&c.Exponent,
		&c.Result,
		&c.Status,
		&c.Error,
		&durationNS,
		&c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("computation not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get computation: %w", err)
	}
	c.Duration = time.Duration(durationNS)
	return c, nil
}

// List returns computations newest first, with pagination.
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*Computation, error) {
	query := `
		SELECT id, kind, group_name, group_order, prime, exponent, result, status, error, duration_ns, created_at
		FROM computations
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list computations: %w", err)
	}
	defer rows.Close()

	computations := []*Computation{}
	for rows.Next() {
		c := &Computation{}
		var durationNS int64
		err := rows.Scan(
			&c.ID,
			&c.Kind,
			&c.GroupName,
			&c.GroupOrder,
			&c.Prime,
			&c.Exponent,
			&c.Result,
			&c.Status,
			&c.Error,
			&durationNS,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan computation: %w", err)
		}
		c.Duration = time.Duration(durationNS)
		computations = append(computations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating computations: %w", err)
	}
	return computations, nil
}

// Delete removes a computation by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM computations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete computation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("computation not found: %s", id)
	}
	return nil
}
