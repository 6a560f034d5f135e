package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

var errConnLost = errors.New("connection lost")

// setupMockStore wraps a sqlmock handle after satisfying schema creation.
func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS stored_names").WillReturnResult(sqlmock.NewResult(0, 0))

	store, err := newStoreFromDB(db, "mock")
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return store, mock
}

func TestNewStoreFromDB_SchemaFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS stored_names").WillReturnError(errConnLost)
	mock.ExpectClose()

	store, err := newStoreFromDB(db, "mock")

	require.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "creating schema")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNameStore_Insert_UsesGeneratedID(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec("INSERT INTO stored_names").
		WithArgs("Ada").
		WillReturnResult(sqlmock.NewResult(42, 1))

	stored, err := store.NameStore().Insert(context.Background(), "Ada")

	require.NoError(t, err)
	assert.Equal(t, int64(42), stored.ID())
	assert.Equal(t, "Ada", stored.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNameStore_Insert_WriteFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec("INSERT INTO stored_names").
		WithArgs("Ada").
		WillReturnError(errConnLost)

	_, err := store.NameStore().Insert(context.Background(), "Ada")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.ErrorIs(t, err, errConnLost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNameStore_Insert_LastInsertIDFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec("INSERT INTO stored_names").
		WithArgs("Ada").
		WillReturnResult(sqlmock.NewErrorResult(errConnLost))

	_, err := store.NameStore().Insert(context.Background(), "Ada")

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "reading inserted id")
}

func TestNameStore_ListAll_ScansRows(t *testing.T) {
	store, mock := setupMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "Ada").
		AddRow(2, nil)
	mock.ExpectQuery("SELECT id, name FROM stored_names").WillReturnRows(rows)

	list, err := store.NameStore().ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "StoredName{id=1, name='Ada'}", list[0].String())
	assert.Equal(t, int64(2), list[1].ID())
	assert.Equal(t, "", list[1].Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNameStore_ListAll_QueryFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery("SELECT id, name FROM stored_names").WillReturnError(errConnLost)

	list, err := store.NameStore().ListAll(context.Background())

	assert.Nil(t, list)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "querying names")
}

func TestNameStore_ListAll_RowFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "Ada").
		AddRow(2, "Grace").
		RowError(1, errConnLost)
	mock.ExpectQuery("SELECT id, name FROM stored_names").WillReturnRows(rows)

	list, err := store.NameStore().ListAll(context.Background())

	assert.Nil(t, list, "a partial snapshot must not be returned")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
