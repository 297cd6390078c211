package handler // tenant CRUD handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/uMbuso/TenantManagementApi/internal/model"
	"github.com/uMbuso/TenantManagementApi/internal/queue"
	"github.com/uMbuso/TenantManagementApi/internal/repository"
	queue_publisher "github.com/uMbuso/TenantManagementApi/internal/service"
)

// TenantHandler bundles the tenant repository for the /api/tenants routes.
type TenantHandler struct {
	Tenants *repository.TenantRepo
}

func NewTenantHandler(tenants *repository.TenantRepo) *TenantHandler {
	if tenants == nil {
		panic("nil repository passed to NewTenantHandler")
	}
	return &TenantHandler{Tenants: tenants}
}

// ----- DTOs -----

type tenantReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type tenantResp struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

func newTenantResp(t *model.Tenant) tenantResp {
	return tenantResp{
		ID:         t.ID,
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		Email:      t.Email,
		Phone:      t.Phone,
		CreatedAt:  t.CreatedAt,
		ModifiedAt: t.ModifiedAt,
	}
}

// validate trims the request fields in place and reports whether the
// required ones are present.
func (r *tenantReq) validate() bool {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	return r.FirstName != "" && r.LastName != "" && r.Email != ""
}

// List handles GET /api/tenants with pageNumber/pageSize query parameters.
// The total count and page metadata travel as response headers so the body
// stays a plain array.
func (h *TenantHandler) List(c echo.Context) error {
	pageNumber, pageSize, ok := parsePagination(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pagination parameters"})
	}

	ctx := c.Request().Context()
	tenants, err := h.Tenants.List(ctx, pageNumber, pageSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	total, err := h.Tenants.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	c.Response().Header().Set("X-Total-Count", strconv.Itoa(total))
	c.Response().Header().Set("X-Page-Number", strconv.Itoa(pageNumber))
	c.Response().Header().Set("X-Page-Size", strconv.Itoa(pageSize))

	out := make([]tenantResp, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, newTenantResp(t))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/tenants/:id.
func (h *TenantHandler) Get(c echo.Context) error {
	t, err := h.Tenants.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, newTenantResp(t))
}

// Create handles POST /api/tenants (Admin/Manager).  The email pre-check
// gives a clean 409 in the common case; the unique index covers the race.
func (h *TenantHandler) Create(c echo.Context) error {
	var req tenantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !req.validate() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name/last_name/email required"})
	}

	ctx := c.Request().Context()
	if _, err := h.Tenants.GetByEmail(ctx, req.Email); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	} else if !errors.Is(err, repository.ErrTenantNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	t := &model.Tenant{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := h.Tenants.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create tenant"})
	}
	return c.JSON(http.StatusCreated, newTenantResp(t))
}

// Update handles PUT /api/tenants/:id (Admin/Manager).  Email uniqueness
// is re-checked only when the email actually changes, and the current
// record is excluded from the check by comparing against the loaded row.
func (h *TenantHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	t, err := h.Tenants.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var req tenantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !req.validate() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name/last_name/email required"})
	}

	if req.Email != t.Email {
		if _, err := h.Tenants.GetByEmail(ctx, req.Email); err == nil {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		} else if !errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}

	t.FirstName = req.FirstName
	t.LastName = req.LastName
	t.Email = req.Email
	t.Phone = req.Phone
	if err := h.Tenants.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, newTenantResp(t))
}

// Delete handles DELETE /api/tenants/:id (Admin only).  The tenant's
// leases go with it in the same transaction; an audit event is published
// best-effort after the commit.
func (h *TenantHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	t, err := h.Tenants.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	leasesRemoved, err := h.Tenants.Delete(ctx, t.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}

	_ = queue_publisher.PublishTenantDeleted(ctx, queue.TenantDeletedEvent{
		TenantID:      t.ID,
		Email:         t.Email,
		LeasesRemoved: leasesRemoved,
		DeletedAt:     time.Now().UTC().Format(time.RFC3339),
	})

	return c.NoContent(http.StatusNoContent)
}
