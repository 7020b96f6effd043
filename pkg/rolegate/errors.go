package rolegate

import "errors"

var (
	// ErrUserNotFound is returned by a UserSource when the identifier
	// matches no user.
	ErrUserNotFound = errors.New("user not found")
)
