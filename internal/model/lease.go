package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease represents a rental agreement in the `leases` table.  Every lease
// belongs to exactly one tenant; TenantID is set at creation and never
// changes afterwards.  Monetary columns are DECIMAL(10,2) and are carried
// as decimal.Decimal end to end so amounts survive the round trip without
// floating point drift.
//
// Fields:
//
//	ID              – opaque UUID primary key.
//	TenantID        – owning tenant (leases.tenant_id, immutable).
//	PropertyAddress – address of the rented property.
//	StartDate       – when the lease begins.
//	EndDate         – when the lease ends (nil for open-ended leases).
//	MonthlyRent     – exact monthly rent, two decimal places.
//	Deposit         – optional deposit amount.
type Lease struct {
	ID              string              // leases.id (CHAR(36))
	TenantID        string              // leases.tenant_id
	PropertyAddress string              // leases.property_address
	StartDate       time.Time           // leases.start_date
	EndDate         *time.Time          // leases.end_date (nullable)
	MonthlyRent     decimal.Decimal     // leases.monthly_rent
	Deposit         decimal.NullDecimal // leases.deposit (nullable)
}
