package rolegate

import "context"

// Role is an enumerated access level assigned to a user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User is the caller record the gate compares against a required role.
// It is read-only here; an external identity subsystem owns it.
type User struct {
	ID   string
	Role Role
}

// UserSource looks up users by their identifier.
type UserSource interface {
	// FindByID returns the user with the given identifier, or
	// ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id string) (*User, error)
}
