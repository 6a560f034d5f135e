package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	s, err := Open(context.Background(), "oracle", "whatever")
	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"oracle"`)
}

func TestSQLDriverName(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{DriverPostgres, "pgx"},
		{DriverMySQL, "mysql"},
		{DriverSQLite, "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := sqlDriverName(tt.driver)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemaFilesExistForEveryDriver(t *testing.T) {
	for _, d := range []string{DriverPostgres, DriverMySQL, DriverSQLite} {
		t.Run(d, func(t *testing.T) {
			s := &Store{driver: d}
			_, err := s.schemaDDL()
			assert.NoError(t, err)
		})
	}
}

func TestNameStore_InsertAndList(t *testing.T) {
	s := openMemory(t)
	ns := s.NameStore()
	ctx := context.Background()

	ada, err := ns.Insert(ctx, "Ada")
	require.NoError(t, err)
	grace, err := ns.Insert(ctx, "Grace")
	require.NoError(t, err)

	assert.True(t, ada.IsPersisted())
	assert.NotEqual(t, ada.ID(), grace.ID())

	all, err := ns.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].SameRecord(ada))
	assert.Equal(t, "Grace", all[1].Name())
	assert.Equal(t, "[StoredName{id=1, name='Ada'}, StoredName{id=2, name='Grace'}]", domain.FormatStoredNames(all))
}

func TestNameStore_DuplicatesAreKept(t *testing.T) {
	ns := openMemory(t).NameStore()
	ctx := context.Background()

	first, err := ns.Insert(ctx, "Ada")
	require.NoError(t, err)
	second, err := ns.Insert(ctx, "Ada")
	require.NoError(t, err)

	assert.True(t, first.SameName(second))
	assert.False(t, first.SameRecord(second))

	all, err := ns.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNameStore_EmptyList(t *testing.T) {
	all, err := openMemory(t).NameStore().ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestNameStore_PersistsAcrossReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "names.db")
	ctx := context.Background()

	s, err := Open(ctx, DriverSQLite, dsn)
	require.NoError(t, err)
	_, err = s.NameStore().Insert(ctx, "Ada")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, DriverSQLite, dsn)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, DriverSQLite, s.Driver())

	all, err := s.NameStore().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ada", all[0].Name())
}

func TestNameStore_ClosedDatabase(t *testing.T) {
	s, err := Open(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	ns := s.NameStore()
	require.NoError(t, s.Close())

	_, err = ns.Insert(context.Background(), "Ada")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = ns.ListAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestOpen_SQLOpenError(t *testing.T) {
	orig := sqlOpenFunc
	t.Cleanup(func() { sqlOpenFunc = orig })
	sqlOpenFunc = func(string, string) (*sql.DB, error) {
		return nil, errors.New("boom")
	}

	_, err := Open(context.Background(), DriverPostgres, "postgres://localhost/none")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening postgres database")
}
