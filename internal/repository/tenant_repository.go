// This file defines repository methods for the `tenants` table: CRUD,
// unique-email lookup and paginated listing.  A tenant composes its leases,
// so Delete removes dependent leases and the tenant inside one transaction.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uMbuso/TenantManagementApi/internal/model"
)

// TenantRepo encapsulates all database queries related to tenants.  It
// depends on a sql.DB connection pool which is configured at startup.
type TenantRepo struct {
	db *sql.DB
}

// NewTenantRepo constructs a TenantRepo with the provided DB handle.  This
// allows dependency injection of the database in tests and at startup.
func NewTenantRepo(db *sql.DB) *TenantRepo {
	return &TenantRepo{db: db}
}

// Create inserts a new tenant.  The UUID and creation timestamp are
// assigned here; ModifiedAt stays nil until the first update.  A duplicate
// email that races past the handler pre-check surfaces as ErrEmailExists
// through the unique index uq_tenants_email.
func (r *TenantRepo) Create(ctx context.Context, t *model.Tenant) error {
	t.ID = uuid.NewString()
	t.Email = strings.ToLower(strings.TrimSpace(t.Email))
	t.CreatedAt = time.Now().UTC()
	const q = "INSERT INTO tenants (id, first_name, last_name, email, phone, created_at) VALUES (?,?,?,?,?,?)"
	if _, err := r.db.ExecContext(ctx, q, t.ID, t.FirstName, t.LastName, t.Email, t.Phone, t.CreatedAt); err != nil {
		if isDuplicate(err, "email") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByID fetches a tenant by its UUID.  It returns ErrTenantNotFound if no
// row is found.
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*model.Tenant, error) {
	const q = "SELECT id, first_name, last_name, email, phone, created_at, modified_at FROM tenants WHERE id = ?"
	var t model.Tenant
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.CreatedAt, &t.ModifiedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByEmail fetches a tenant by normalized email, returning
// ErrTenantNotFound when absent.  Handlers use it for uniqueness
// pre-checks on create and update.
func (r *TenantRepo) GetByEmail(ctx context.Context, email string) (*model.Tenant, error) {
	const q = "SELECT id, first_name, last_name, email, phone, created_at, modified_at FROM tenants WHERE email = ?"
	var t model.Tenant
	if err := r.db.QueryRowContext(ctx, q, strings.ToLower(strings.TrimSpace(email))).
		Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.CreatedAt, &t.ModifiedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns one page of tenants ordered by last name.  The id is the
// tie-breaker so pages stay stable when tenants share a last name.
// Pagination bounds are validated by the handler; pageNumber is 1-based.
func (r *TenantRepo) List(ctx context.Context, pageNumber, pageSize int) ([]*model.Tenant, error) {
	const q = `SELECT id, first_name, last_name, email, phone, created_at, modified_at
	           FROM tenants ORDER BY last_name, id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Tenant{}
	for rows.Next() {
		t := new(model.Tenant)
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.CreatedAt, &t.ModifiedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total number of tenants for the list response headers.
func (r *TenantRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tenants").Scan(&n)
	return n, err
}

// Update replaces the mutable fields of a tenant and refreshes the
// modified_at timestamp.  The caller is expected to have loaded the tenant
// first (the handler surfaces 404 for missing ids), so a zero affected-row
// count is not treated as an error here: MySQL reports zero when the new
// values equal the old ones.
func (r *TenantRepo) Update(ctx context.Context, t *model.Tenant) error {
	t.Email = strings.ToLower(strings.TrimSpace(t.Email))
	now := time.Now().UTC()
	const q = `UPDATE tenants
	           SET first_name = ?, last_name = ?, email = ?, phone = ?, modified_at = ?
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, t.FirstName, t.LastName, t.Email, t.Phone, now, t.ID); err != nil {
		if isDuplicate(err, "email") {
			return ErrEmailExists
		}
		return err
	}
	t.ModifiedAt = &now
	return nil
}

// Delete removes a tenant and all of its leases inside one transaction and
// reports how many leases were cascaded.  Deleting an id that no longer
// exists is not an error at this layer; the handler decides whether a 404
// is warranted.
func (r *TenantRepo) Delete(ctx context.Context, id string) (leasesRemoved int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.ExecContext(ctx, "DELETE FROM leases WHERE tenant_id = ?", id)
	if err != nil {
		return 0, err
	}
	leasesRemoved, _ = res.RowsAffected()

	if _, err = tx.ExecContext(ctx, "DELETE FROM tenants WHERE id = ?", id); err != nil {
		return 0, err
	}
	return leasesRemoved, nil
}
