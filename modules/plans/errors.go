package plans

import "errors"

var (
	// ErrNotFound is returned when a plan does not exist or belongs to a
	// different owner. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("plan not found")

	// ErrCodeTaken is returned when the owner already has a plan with the
	// same code.
	ErrCodeTaken = errors.New("plan code already taken")
)
