package model

import "time"

// Tenant represents a renter record in the `tenants` table.  A tenant owns
// zero or more leases; deleting a tenant removes its leases in the same
// transaction (see repository.TenantRepo.Delete).
//
// Fields:
//
//	ID         – opaque UUID primary key.
//	FirstName  – given name.
//	LastName   – family name; tenant listings are ordered by this column.
//	Email      – unique among tenants.
//	Phone      – contact phone number.
//	CreatedAt  – creation timestamp.
//	ModifiedAt – last update timestamp (nil until the first update).
type Tenant struct {
	ID         string     // tenants.id (CHAR(36))
	FirstName  string     // tenants.first_name
	LastName   string     // tenants.last_name
	Email      string     // tenants.email
	Phone      string     // tenants.phone
	CreatedAt  time.Time  // tenants.created_at
	ModifiedAt *time.Time // tenants.modified_at (nullable)
}
