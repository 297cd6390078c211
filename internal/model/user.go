package model

import (
	"strings"
	"time"
)

// Role names stored in users.role and embedded in token claims.  The set is
// fixed; anything else arriving at registration falls back to RoleViewer.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleViewer  = "Viewer"
)

// NormalizeRole maps a client-supplied role string onto one of the known
// role constants, ignoring case and surrounding whitespace.  Unknown or
// empty input yields RoleViewer, the least privileged role.
func NormalizeRole(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	default:
		return RoleViewer
	}
}

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column in the database.  The json
// tags are omitted here because these structs are used internally by the
// repository layer; handlers define separate response types with
// appropriate JSON tags.
//
// Fields:
//
//	ID           – opaque UUID primary key.
//	Username     – unique login name.
//	Email        – unique email address.
//	PasswordHash – bcrypt hashed password; the plaintext is never stored.
//	Role         – one of the Role* constants.
//	CreatedAt    – timestamp of registration.
type User struct {
	ID           string    // users.id (CHAR(36))
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}
