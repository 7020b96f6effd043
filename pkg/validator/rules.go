package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// RequiredString fails when the value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: invalid(field, "is required"),
	}
}

// Provided fails when a field the caller marked as required was absent from
// the input. Use this for optional-typed (pointer) fields where the zero
// value is a legal payload value and cannot stand in for "missing".
func Provided(field string, present bool) Rule {
	return Rule{
		Check: func() bool {
			return present
		},
		Error: invalid(field, "is required"),
	}
}

// MinLen fails when the string is shorter than min characters.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: invalid(field, "must be at least %d characters long", min),
	}
}

// MaxLen fails when the string is longer than max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: invalid(field, "must be at most %d characters long", max),
	}
}

// Min fails when the value is below min.
func Min[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: invalid(field, "must be at least %v", min),
	}
}

// Max fails when the value is above max.
func Max[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: invalid(field, "must be at most %v", max),
	}
}

// Between fails when the value is outside the [min, max] interval.
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: invalid(field, "must be between %v and %v", min, max),
	}
}

// OneOf fails when the value is not a member of the allowed set.
func OneOf(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: invalid(field, "must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// Matches fails when the value does not match the pattern. The description
// names the expected shape in the error message; patterns are compiled once
// by the caller, not per invocation.
func Matches(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: invalid(field, "must be %s", description),
	}
}
