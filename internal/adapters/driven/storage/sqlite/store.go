package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/namereg/internal/adapters/driven/storage/sqlite/schema"
	"github.com/custodia-labs/namereg/internal/core/domain"
	"github.com/custodia-labs/namereg/internal/core/ports/driven"
)

// MemoryDir is the data directory value that selects an in-memory database.
const MemoryDir = ":memory:"

// Store is a SQLite-based storage that provides access to the
// NameStore port through a wrapper type.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.namereg/data/names.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == MemoryDir {
		db, err := sql.Open("sqlite", MemoryDir)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
		return newStoreFromDB(db, MemoryDir)
	}

	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".namereg", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "names.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return newStoreFromDB(db, dbPath)
}

// newStoreFromDB wraps an open handle and creates the schema.
// The handle is closed if schema creation fails.
func newStoreFromDB(db *sql.DB, path string) (*Store, error) {
	s := &Store{
		db:   db,
		path: path,
	}

	if _, err := db.Exec(schema.SQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// NameStore returns a NameStore interface backed by this store.
func (s *Store) NameStore() driven.NameStore {
	return &nameStore{store: s}
}

// ==================== Name Store ====================

// nameStore implements driven.NameStore.
type nameStore struct {
	store *Store
}

var _ driven.NameStore = (*nameStore)(nil)

// Insert adds a row and returns it with the id SQLite assigned.
func (s *nameStore) Insert(ctx context.Context, name string) (domain.StoredName, error) {
	res, err := s.store.db.ExecContext(ctx, "INSERT INTO stored_names (name) VALUES (?)", name)
	if err != nil {
		return domain.StoredName{}, fmt.Errorf("%w: inserting name: %w", domain.ErrStorageUnavailable, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.StoredName{}, fmt.Errorf("%w: reading inserted id: %w", domain.ErrStorageUnavailable, err)
	}

	return domain.RestoreStoredName(id, name), nil
}

// ListAll returns every row ordered by id.
func (s *nameStore) ListAll(ctx context.Context) ([]domain.StoredName, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT id, name FROM stored_names ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%w: querying names: %w", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	names := []domain.StoredName{} //nolint:prealloc // size unknown from query
	for rows.Next() {
		var id int64
		var name sql.NullString
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%w: scanning name: %w", domain.ErrStorageUnavailable, err)
		}
		names = append(names, domain.RestoreStoredName(id, name.String))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating names: %w", domain.ErrStorageUnavailable, err)
	}

	return names, nil
}
