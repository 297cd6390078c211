// This file defines repository methods for the `leases` table.  Referential
// integrity against tenants is enforced twice: handlers check tenant
// existence up front, and the fk_leases_tenant foreign key backs that check
// at the storage layer.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/uMbuso/TenantManagementApi/internal/model"
)

// LeaseRepo encapsulates all database queries related to leases.
type LeaseRepo struct {
	db *sql.DB
}

// NewLeaseRepo constructs a LeaseRepo with the provided DB handle.
func NewLeaseRepo(db *sql.DB) *LeaseRepo {
	return &LeaseRepo{db: db}
}

// Create inserts a new lease for an existing tenant.  The UUID is assigned
// here; TenantID must already be set by the caller and never changes after
// this insert.
func (r *LeaseRepo) Create(ctx context.Context, l *model.Lease) error {
	l.ID = uuid.NewString()
	const q = `INSERT INTO leases (id, tenant_id, property_address, start_date, end_date, monthly_rent, deposit)
	           VALUES (?,?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, q,
		l.ID, l.TenantID, l.PropertyAddress, l.StartDate, l.EndDate, l.MonthlyRent, l.Deposit)
	return err
}

// GetByID fetches a lease by its UUID, returning ErrLeaseNotFound when the
// row is absent.
func (r *LeaseRepo) GetByID(ctx context.Context, id string) (*model.Lease, error) {
	const q = `SELECT id, tenant_id, property_address, start_date, end_date, monthly_rent, deposit
	           FROM leases WHERE id = ?`
	var l model.Lease
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&l.ID, &l.TenantID, &l.PropertyAddress, &l.StartDate, &l.EndDate, &l.MonthlyRent, &l.Deposit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeaseNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListByTenant returns all leases belonging to a tenant ordered by start
// date, with id as the tie-breaker for a stable order.
func (r *LeaseRepo) ListByTenant(ctx context.Context, tenantID string) ([]*model.Lease, error) {
	const q = `SELECT id, tenant_id, property_address, start_date, end_date, monthly_rent, deposit
	           FROM leases WHERE tenant_id = ? ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, q, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Lease{}
	for rows.Next() {
		l := new(model.Lease)
		if err := rows.Scan(&l.ID, &l.TenantID, &l.PropertyAddress, &l.StartDate, &l.EndDate, &l.MonthlyRent, &l.Deposit); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the mutable fields of a lease.  The owning tenant_id is
// deliberately absent from the SET list: a lease can never move to another
// tenant.  As with tenants, the handler loads the lease first, so affected
// rows are not inspected here.
func (r *LeaseRepo) Update(ctx context.Context, l *model.Lease) error {
	const q = `UPDATE leases
	           SET property_address = ?, start_date = ?, end_date = ?, monthly_rent = ?, deposit = ?
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		l.PropertyAddress, l.StartDate, l.EndDate, l.MonthlyRent, l.Deposit, l.ID)
	return err
}

// Delete removes a lease by id.  Removing an id that is already gone is a
// no-op; the handler surfaces 404 before calling this.
func (r *LeaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM leases WHERE id = ?", id)
	return err
}
