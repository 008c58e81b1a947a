package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/cmdkit/internal/domain"
	"github.com/footprint-tools/cmdkit/internal/store/migrations"
)

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is the SQLite audit trail of dispatched invocations.
// It implements domain.AuditStore.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the database at path and applies pending migrations.
func New(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing, migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CloseDB closes a database connection and reports errors on stderr.
// Intended for defer statements.
func CloseDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "store: close database: %v\n", err)
	}
}

// configureSQLite sets WAL mode and a busy timeout so async workers and the
// console can write concurrently. An in-memory database exists per
// connection, so it is pinned to one.
func configureSQLite(db *sql.DB, path string) error {
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
		return nil
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return err
	}
	_, err := db.Exec("PRAGMA busy_timeout=5000")
	return err
}

func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Insert adds an entry and returns its row id.
func (s *Store) Insert(e domain.AuditEntry) (int64, error) {
	async := 0
	if e.Async {
		async = 1
	}

	res, err := s.db.Exec(
		`INSERT INTO invocations
		 (invocation_id, sender_id, sender_name, command, input, stage, result_kind,
		  message, error, async, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Invocation,
		e.SenderID,
		e.SenderName,
		e.Command,
		e.Input,
		e.Stage,
		e.Kind,
		e.Message,
		e.Error,
		async,
		e.StartedAt.UTC().Format(timeLayout),
		e.DurationMS,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns entries matching filter, newest first.
func (s *Store) List(filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	query := `
		SELECT
			id,
			invocation_id,
			sender_id,
			sender_name,
			command,
			input,
			stage,
			result_kind,
			message,
			error,
			async,
			started_at,
			duration_ms
		FROM invocations
	`

	var (
		clauses []string
		args    []any
	)

	if filter.SenderID != "" {
		clauses = append(clauses, "sender_id = ?")
		args = append(args, filter.SenderID)
	}

	if filter.Command != "" {
		clauses = append(clauses, "command = ?")
		args = append(args, filter.Command)
	}

	if filter.Kind != "" {
		clauses = append(clauses, "result_kind = ?")
		args = append(args, filter.Kind)
	}

	if filter.Since != nil {
		clauses = append(clauses, "started_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY started_at DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AuditEntry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Count returns the number of entries per result kind.
func (s *Store) Count() (map[string]int64, error) {
	rows, err := s.db.Query("SELECT result_kind, COUNT(*) FROM invocations GROUP BY result_kind")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			kind string
			n    int64
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

// Prune deletes entries started before cutoff and returns how many went.
func (s *Store) Prune(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM invocations WHERE started_at < ?", cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanEntry(rows *sql.Rows) (domain.AuditEntry, error) {
	var (
		e     domain.AuditEntry
		async int
		ts    string
	)

	if err := rows.Scan(
		&e.ID,
		&e.Invocation,
		&e.SenderID,
		&e.SenderName,
		&e.Command,
		&e.Input,
		&e.Stage,
		&e.Kind,
		&e.Message,
		&e.Error,
		&async,
		&ts,
		&e.DurationMS,
	); err != nil {
		return domain.AuditEntry{}, err
	}

	t, err := time.Parse(timeLayout, ts)
	if err != nil {
		return domain.AuditEntry{}, err
	}

	e.StartedAt = t
	e.Async = async != 0

	return e, nil
}

var _ domain.AuditStore = (*Store)(nil)
