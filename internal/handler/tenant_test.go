package handler

import (
	"database/sql"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uMbuso/TenantManagementApi/internal/repository"
)

var tenantColumns = []string{"id", "first_name", "last_name", "email", "phone", "created_at", "modified_at"}

func newTenantHandlerForTest(t *testing.T) (*TenantHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTenantHandler(repository.NewTenantRepo(db)), mock
}

func TestListTenantsRejectsBadPagination(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"zero page number", "pageNumber=0&pageSize=10"},
		{"zero page size", "pageNumber=1&pageSize=0"},
		{"page size above limit", "pageNumber=1&pageSize=101"},
		{"non-numeric page size", "pageNumber=1&pageSize=lots"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, mock := newTenantHandlerForTest(t)
			c, rec := newJSONContext(t, http.MethodGet, "/api/tenants?"+tc.query, "")
			require.NoError(t, h.List(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NoError(t, mock.ExpectationsWereMet(), "no query must reach the database")
		})
	}
}

func TestListTenantsSetsPaginationHeaders(t *testing.T) {
	h, mock := newTenantHandlerForTest(t)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY last_name, id LIMIT ? OFFSET ?")).
		WithArgs(2, 2).
		WillReturnRows(sqlmock.NewRows(tenantColumns).
			AddRow("t-3", "Cara", "Cole", "cara@x.com", "0333", now, nil).
			AddRow("t-4", "Dan", "Drew", "dan@x.com", "0444", now, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tenants")).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(7))

	c, rec := newJSONContext(t, http.MethodGet, "/api/tenants?pageNumber=2&pageSize=2", "")
	require.NoError(t, h.List(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7", rec.Header().Get("X-Total-Count"))
	assert.Equal(t, "2", rec.Header().Get("X-Page-Number"))
	assert.Equal(t, "2", rec.Header().Get("X-Page-Size"))
	assert.Contains(t, rec.Body.String(), "Cole")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTenantConflictOnDuplicateEmail(t *testing.T) {
	h, mock := newTenantHandlerForTest(t)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM tenants WHERE email =").
		WithArgs("john@x.com").
		WillReturnRows(sqlmock.NewRows(tenantColumns).
			AddRow("t-1", "Jane", "Doe", "john@x.com", "0111", now, nil))

	c, rec := newJSONContext(t, http.MethodPost, "/api/tenants",
		`{"first_name":"John","last_name":"Doe","email":"john@x.com","phone":"0222"}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTenantReturnsGeneratedID(t *testing.T) {
	h, mock := newTenantHandlerForTest(t)

	mock.ExpectQuery("FROM tenants WHERE email =").
		WithArgs("john@x.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tenants")).
		WithArgs(sqlmock.AnyArg(), "John", "Doe", "john@x.com", "0222", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(t, http.MethodPost, "/api/tenants",
		`{"first_name":"John","last_name":"Doe","email":"john@x.com","phone":"0222"}`)
	require.NoError(t, h.Create(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Regexp(t, `"id":"[0-9a-f-]{36}"`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTenantSkipsEmailCheckWhenUnchanged(t *testing.T) {
	h, mock := newTenantHandlerForTest(t)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM tenants WHERE id =").
		WithArgs("t-1").
		WillReturnRows(sqlmock.NewRows(tenantColumns).
			AddRow("t-1", "John", "Doe", "john@x.com", "0111", now, nil))
	// No email lookup expected: the address is unchanged.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE tenants")).
		WithArgs("Johnny", "Doe", "john@x.com", "0999", sqlmock.AnyArg(), "t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(t, http.MethodPut, "/api/tenants/t-1",
		`{"first_name":"Johnny","last_name":"Doe","email":"john@x.com","phone":"0999"}`)
	c.SetParamNames("id")
	c.SetParamValues("t-1")
	require.NoError(t, h.Update(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "modified_at")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTenantConflictWhenNewEmailTaken(t *testing.T) {
	h, mock := newTenantHandlerForTest(t)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM tenants WHERE id =").
		WithArgs("t-1").
		WillReturnRows(sqlmock.NewRows(tenantColumns).
			AddRow("t-1", "John", "Doe", "john@x.com", "0111", now, nil))
	mock.ExpectQuery("FROM tenants WHERE email =").
		WithArgs("taken@x.com").
		WillReturnRows(sqlmock.NewRows(tenantColumns).
			AddRow("t-2", "Jane", "Roe", "taken@x.com", "0222", now, nil))

	c, rec := newJSONContext(t, http.MethodPut, "/api/tenants/t-1",
		`{"first_name":"John","last_name":"Doe","email":"taken@x.com","phone":"0111"}`)
	c.SetParamNames("id")
	c.SetParamValues("t-1")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTenantMissingReturnsNotFound(t *testing.T) {
	h, mock := newTenantHandlerForTest(t)

	mock.ExpectQuery("FROM tenants WHERE id =").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/tenants/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTenantCascadesToLeases(t *testing.T) {
	h, mock := newTenantHandlerForTest(t)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM tenants WHERE id =").
		WithArgs("t-1").
		WillReturnRows(sqlmock.NewRows(tenantColumns).
			AddRow("t-1", "John", "Doe", "john@x.com", "0111", now, nil))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM leases WHERE tenant_id = ?")).
		WithArgs("t-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenants WHERE id = ?")).
		WithArgs("t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, rec := newJSONContext(t, http.MethodDelete, "/api/tenants/t-1", "")
	c.SetParamNames("id")
	c.SetParamValues("t-1")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
