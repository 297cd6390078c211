// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names for lifecycle events.  Both queues are declared durable so
// audit messages survive a broker restart.
const (
	LeaseCreatedQueue  = "lease.created"
	TenantDeletedQueue = "tenant.deleted"
)

// LeaseCreatedEvent is published after a lease is stored.  It carries
// enough information for downstream consumers to write an audit trail
// without querying the primary database.  The rent travels as its exact
// decimal string form.
type LeaseCreatedEvent struct {
	LeaseID         string `json:"lease_id"`
	TenantID        string `json:"tenant_id"`
	PropertyAddress string `json:"property_address"`
	StartDate       string `json:"start_date"`
	MonthlyRent     string `json:"monthly_rent"`
	CreatedAt       string `json:"created_at"`
}

// TenantDeletedEvent is published after a tenant and its leases are
// removed.  LeasesRemoved records how many leases the cascade took out.
type TenantDeletedEvent struct {
	TenantID      string `json:"tenant_id"`
	Email         string `json:"email"`
	LeasesRemoved int64  `json:"leases_removed"`
	DeletedAt     string `json:"deleted_at"`
}
