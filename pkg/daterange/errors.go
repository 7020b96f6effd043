package daterange

import "errors"

var (
	// ErrUnknownTag is returned when a range tag is not in the recognized set.
	ErrUnknownTag = errors.New("unknown date range")

	// ErrMissingBounds is returned when a custom range lacks a start or end date.
	ErrMissingBounds = errors.New("custom date range requires both start and end dates")

	// ErrInvalidBound is returned when a custom bound cannot be parsed as a date.
	ErrInvalidBound = errors.New("invalid date value")

	// ErrInvertedBounds is returned when a custom start date falls after its end date.
	ErrInvertedBounds = errors.New("start date is after end date")
)
