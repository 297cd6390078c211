package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uMbuso/TenantManagementApi/internal/model"
)

var tenantColumns = []string{"id", "first_name", "last_name", "email", "phone", "created_at", "modified_at"}

func TestTenantCreateMapsDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO tenants").
		WillReturnError(&mysql.MySQLError{Number: 1062,
			Message: "Duplicate entry 'a@x.com' for key 'tenants.uq_tenants_email'"})

	repo := NewTenantRepo(db)
	err = repo.Create(context.Background(), &model.Tenant{
		FirstName: "John", LastName: "Doe", Email: "a@x.com",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantListPagesAndOrdersByLastName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(tenantColumns).
		AddRow("t-1", "Ann", "Adams", "ann@x.com", "0111", now, nil).
		AddRow("t-2", "Bob", "Brown", "bob@x.com", "0222", now, nil)

	// Page 3 with size 2 translates to LIMIT 2 OFFSET 4.
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY last_name, id LIMIT ? OFFSET ?")).
		WithArgs(2, 4).
		WillReturnRows(rows)

	repo := NewTenantRepo(db)
	out, err := repo.List(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Adams", out[0].LastName)
	assert.Equal(t, "Brown", out[1].LastName)
	assert.Nil(t, out[0].ModifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantUpdateSetsModifiedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		"SET first_name = ?, last_name = ?, email = ?, phone = ?, modified_at = ?")).
		WithArgs("John", "Doe", "john@x.com", "0333", sqlmock.AnyArg(), "t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTenantRepo(db)
	tn := &model.Tenant{ID: "t-1", FirstName: "John", LastName: "Doe", Email: "John@X.com", Phone: "0333"}
	require.NoError(t, repo.Update(context.Background(), tn))
	require.NotNil(t, tn.ModifiedAt)
	assert.Equal(t, "john@x.com", tn.Email, "email is normalized on update")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantDeleteCascadesLeasesInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM leases WHERE tenant_id = ?")).
		WithArgs("t-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenants WHERE id = ?")).
		WithArgs("t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewTenantRepo(db)
	removed, err := repo.Delete(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantDeleteRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM leases WHERE tenant_id = ?")).
		WithArgs("t-1").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := NewTenantRepo(db)
	_, err = repo.Delete(context.Background(), "t-1")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
