package constants

import "time"

// Context keys set by the auth middleware.
const (
	ContextKeyStaffID = "staff_id"
	ContextKeyRole    = "user_role"
)

// RoleAdmin is the role claim embedded in administrator tokens.
const RoleAdmin = "admin"

// TokenTTL is how long issued bearer tokens stay valid. There is no refresh
// flow; clients log in again after expiry.
const TokenTTL = 3 * time.Hour

// Pagination bounds for list endpoints.
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
