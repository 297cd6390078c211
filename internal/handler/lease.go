package handler // lease CRUD handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/uMbuso/TenantManagementApi/internal/model"
	"github.com/uMbuso/TenantManagementApi/internal/queue"
	"github.com/uMbuso/TenantManagementApi/internal/repository"
	queue_publisher "github.com/uMbuso/TenantManagementApi/internal/service"
)

// LeaseHandler bundles the lease and tenant repositories.  The tenant
// repository is needed because every lease operation that takes a tenant
// id must confirm the tenant exists before touching leases.
type LeaseHandler struct {
	Leases  *repository.LeaseRepo
	Tenants *repository.TenantRepo
}

func NewLeaseHandler(leases *repository.LeaseRepo, tenants *repository.TenantRepo) *LeaseHandler {
	if leases == nil || tenants == nil {
		panic("nil repository passed to NewLeaseHandler")
	}
	return &LeaseHandler{Leases: leases, Tenants: tenants}
}

// ----- DTOs -----

// leaseReq carries create/update payloads.  Monetary fields bind through
// shopspring/decimal so JSON numbers like 15000.00 arrive exactly as
// written, never as float64.
type leaseReq struct {
	PropertyAddress string           `json:"property_address"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         *time.Time       `json:"end_date"`
	MonthlyRent     decimal.Decimal  `json:"monthly_rent"`
	Deposit         *decimal.Decimal `json:"deposit"`
}

type leaseResp struct {
	ID              string           `json:"id"`
	TenantID        string           `json:"tenant_id"`
	PropertyAddress string           `json:"property_address"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         *time.Time       `json:"end_date,omitempty"`
	MonthlyRent     decimal.Decimal  `json:"monthly_rent"`
	Deposit         *decimal.Decimal `json:"deposit,omitempty"`
}

func newLeaseResp(l *model.Lease) leaseResp {
	resp := leaseResp{
		ID:              l.ID,
		TenantID:        l.TenantID,
		PropertyAddress: l.PropertyAddress,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		MonthlyRent:     l.MonthlyRent,
	}
	if l.Deposit.Valid {
		d := l.Deposit.Decimal
		resp.Deposit = &d
	}
	return resp
}

// validate trims the request and reports the first problem as a message,
// or "" when the payload is acceptable.  Rent and deposit must be
// non-negative; zero is allowed (e.g. rent-free arrangements).
func (r *leaseReq) validate() string {
	r.PropertyAddress = strings.TrimSpace(r.PropertyAddress)
	if r.PropertyAddress == "" {
		return "property_address required"
	}
	if r.StartDate.IsZero() {
		return "start_date required"
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return "end_date must not precede start_date"
	}
	if r.MonthlyRent.IsNegative() {
		return "monthly_rent must be non-negative"
	}
	if r.Deposit != nil && r.Deposit.IsNegative() {
		return "deposit must be non-negative"
	}
	return ""
}

func (r *leaseReq) apply(l *model.Lease) {
	l.PropertyAddress = r.PropertyAddress
	l.StartDate = r.StartDate
	l.EndDate = r.EndDate
	l.MonthlyRent = r.MonthlyRent
	if r.Deposit != nil {
		l.Deposit = decimal.NullDecimal{Decimal: *r.Deposit, Valid: true}
	} else {
		l.Deposit = decimal.NullDecimal{}
	}
}

// ListByTenant handles GET /api/tenants/:tenantId/leases.
func (h *LeaseHandler) ListByTenant(c echo.Context) error {
	ctx := c.Request().Context()
	tenant, err := h.Tenants.GetByID(ctx, c.Param("tenantId"))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	leases, err := h.Leases.ListByTenant(ctx, tenant.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]leaseResp, 0, len(leases))
	for _, l := range leases {
		out = append(out, newLeaseResp(l))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/leases/:id.
func (h *LeaseHandler) Get(c echo.Context) error {
	l, err := h.Leases.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLeaseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "lease not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, newLeaseResp(l))
}

// Create handles POST /api/tenants/:tenantId/leases (Admin/Manager).  The
// owning tenant must exist; its id is fixed on the lease at creation.
func (h *LeaseHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	tenant, err := h.Tenants.GetByID(ctx, c.Param("tenantId"))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var req leaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	l := &model.Lease{TenantID: tenant.ID}
	req.apply(l)
	if err := h.Leases.Create(ctx, l); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create lease"})
	}

	_ = queue_publisher.PublishLeaseCreated(ctx, queue.LeaseCreatedEvent{
		LeaseID:         l.ID,
		TenantID:        l.TenantID,
		PropertyAddress: l.PropertyAddress,
		StartDate:       l.StartDate.Format(time.RFC3339),
		MonthlyRent:     l.MonthlyRent.String(),
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, newLeaseResp(l))
}

// Update handles PUT /api/leases/:id (Admin/Manager).  All mutable fields
// are replaced; the owning tenant never changes.
func (h *LeaseHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l, err := h.Leases.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLeaseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "lease not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var req leaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	req.apply(l)
	if err := h.Leases.Update(ctx, l); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, newLeaseResp(l))
}

// Delete handles DELETE /api/leases/:id (Admin only).
func (h *LeaseHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l, err := h.Leases.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLeaseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "lease not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Leases.Delete(ctx, l.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
