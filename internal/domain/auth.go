package domain

// Role is the authorization level carried inside issued tokens.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity is the authenticated subject decoded from a verified token. It is
// attached to the request context by the auth middleware and consumed by the
// role gate; it is never persisted.
type Identity struct {
	UserID string
	Role   Role
}
