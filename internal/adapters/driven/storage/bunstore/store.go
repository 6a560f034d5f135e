package bunstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"   // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"   // PostgreSQL driver
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/namereg/internal/adapters/driven/storage/bunstore/schema"
	"github.com/custodia-labs/namereg/internal/core/domain"
	"github.com/custodia-labs/namereg/internal/core/ports/driven"
	"github.com/custodia-labs/namereg/internal/logger"
)

// Supported driver names.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// storedNameModel maps the stored_names table for bun queries.
type storedNameModel struct {
	bun.BaseModel `bun:"table:stored_names"`
	ID            int64          `bun:"id,pk,autoincrement"`
	Name          sql.NullString `bun:"name"`
}

// Store is a bun-backed storage that provides access to the NameStore port.
type Store struct {
	db     *bun.DB
	driver string
}

// Open connects to dsn with the given driver, creates the schema if needed
// and returns the store.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	driverName, err := sqlDriverName(driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	// Every connection to an in-memory SQLite database is a separate database.
	if driver == DriverSQLite && dsn == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	s := &Store{
		db:     newBunDB(sqlDB, driver),
		driver: driver,
	}

	if err := s.createSchema(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	logger.Debug("bunstore: opened %s database", driver)

	return s, nil
}

// sqlDriverName maps a driver name to the database/sql driver registration.
// The pgx stdlib registers itself as "pgx".
func sqlDriverName(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "pgx", nil
	case DriverMySQL:
		return "mysql", nil
	case DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: unsupported database driver %q", domain.ErrInvalidInput, driver)
	}
}

// newBunDB wraps sqlDB with the bun dialect matching driver.
func newBunDB(sqlDB *sql.DB, driver string) *bun.DB {
	switch driver {
	case DriverPostgres:
		return bun.NewDB(sqlDB, pgdialect.New())
	case DriverMySQL:
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

func (s *Store) schemaDDL() (string, error) {
	ddl, err := schema.FS.ReadFile(s.driver + ".sql")
	if err != nil {
		return "", fmt.Errorf("reading %s schema: %w", s.driver, err)
	}
	return string(ddl), nil
}

func (s *Store) createSchema(ctx context.Context) error {
	ddl, err := s.schemaDDL()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: creating schema: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Driver returns the driver name the store was opened with.
func (s *Store) Driver() string {
	return s.driver
}

// NameStore returns a NameStore interface backed by this store.
func (s *Store) NameStore() driven.NameStore {
	return &nameStore{db: s.db}
}

// nameStore implements driven.NameStore.
type nameStore struct {
	db *bun.DB
}

var _ driven.NameStore = (*nameStore)(nil)

// Insert adds a row, letting the database assign the id.
func (s *nameStore) Insert(ctx context.Context, name string) (domain.StoredName, error) {
	m := &storedNameModel{Name: sql.NullString{String: name, Valid: true}}
	if _, err := s.db.NewInsert().Model(m).Column("name").Returning("id").Exec(ctx); err != nil {
		return domain.StoredName{}, fmt.Errorf("%w: inserting name: %w", domain.ErrStorageUnavailable, err)
	}
	return domain.RestoreStoredName(m.ID, name), nil
}

// ListAll returns every row ordered by id.
func (s *nameStore) ListAll(ctx context.Context) ([]domain.StoredName, error) {
	var models []storedNameModel
	if err := s.db.NewSelect().Model(&models).OrderExpr("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("%w: querying names: %w", domain.ErrStorageUnavailable, err)
	}

	out := make([]domain.StoredName, 0, len(models))
	for _, m := range models {
		out = append(out, domain.RestoreStoredName(m.ID, m.Name.String))
	}
	return out, nil
}
