// Package repository defines error values that are reused across multiple
// repositories.  These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios without inspecting
// driver-specific errors.  Uniqueness violations are detected here, at the
// storage boundary, because the unique indexes in MySQL are the final
// arbiter when two requests race past the handler-level pre-checks.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrUsernameExists is returned when an insert violates the unique index on
// users.username.  Handlers translate this into an HTTP 409 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when an insert or update violates a unique
// email index (users.email or tenants.email).  Handlers translate this
// into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrTenantNotFound is returned when a tenant cannot be found.
var ErrTenantNotFound = errors.New("tenant not found")

// ErrLeaseNotFound is returned when a lease cannot be found.
var ErrLeaseNotFound = errors.New("lease not found")

// isDuplicate reports whether err is a MySQL duplicate-key error (1062)
// whose message names the given unique index.  Index names follow the
// uq_<table>_<column> convention, so matching on the index substring is
// stable across MySQL versions.
func isDuplicate(err error, index string) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != 1062 {
		return false
	}
	return index == "" || strings.Contains(strings.ToLower(me.Message), strings.ToLower(index))
}
