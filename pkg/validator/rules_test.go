package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/plankit/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("name", "Starter")
		assert.True(t, rule.Check())
		assert.Equal(t, "name", rule.Error.Field)
		assert.Equal(t, "is required", rule.Error.Message)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		rule := validator.RequiredString("name", "")
		assert.False(t, rule.Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		rule := validator.RequiredString("name", "   ")
		assert.False(t, rule.Check())
	})
}

func TestProvided(t *testing.T) {
	t.Run("passes when present", func(t *testing.T) {
		assert.True(t, validator.Provided("renews", true).Check())
	})

	t.Run("fails when absent", func(t *testing.T) {
		rule := validator.Provided("totalBillingCycles", false)
		assert.False(t, rule.Check())
		assert.Equal(t, "is required", rule.Error.Message)
	})
}

func TestMinLen(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.True(t, validator.MinLen("code", "ab", 2).Check())
	})

	t.Run("fails below the boundary", func(t *testing.T) {
		rule := validator.MinLen("code", "a", 2)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be at least 2 characters long", rule.Error.Message)
	})
}

func TestMaxLen(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.True(t, validator.MaxLen("code", "abcde", 5).Check())
	})

	t.Run("fails above the boundary", func(t *testing.T) {
		rule := validator.MaxLen("code", "abcdef", 5)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be at most 5 characters long", rule.Error.Message)
	})
}

func TestMinMax(t *testing.T) {
	t.Run("min passes at the boundary", func(t *testing.T) {
		assert.True(t, validator.Min("trialPeriod", 0, 0).Check())
	})

	t.Run("min fails below the boundary", func(t *testing.T) {
		rule := validator.Min("billingCyclePeriod", 0, 1)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be at least 1", rule.Error.Message)
	})

	t.Run("max fails above the boundary", func(t *testing.T) {
		rule := validator.Max("limit", 101, 100)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be at most 100", rule.Error.Message)
	})

	t.Run("works with floats", func(t *testing.T) {
		assert.True(t, validator.Min("price", 9.99, 0.0).Check())
		assert.False(t, validator.Min("price", -0.01, 0.0).Check())
	})
}

func TestBetween(t *testing.T) {
	t.Run("passes inside the interval", func(t *testing.T) {
		assert.True(t, validator.Between("limit", 20, 10, 100).Check())
	})

	t.Run("includes both endpoints", func(t *testing.T) {
		assert.True(t, validator.Between("limit", 10, 10, 100).Check())
		assert.True(t, validator.Between("limit", 100, 10, 100).Check())
	})

	t.Run("fails outside the interval", func(t *testing.T) {
		rule := validator.Between("limit", 9, 10, 100)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be between 10 and 100", rule.Error.Message)
	})
}

func TestOneOf(t *testing.T) {
	allowed := []string{"days", "months"}

	t.Run("passes for a member", func(t *testing.T) {
		assert.True(t, validator.OneOf("unit", "days", allowed).Check())
	})

	t.Run("fails for a non-member", func(t *testing.T) {
		rule := validator.OneOf("unit", "years", allowed)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be one of: days, months", rule.Error.Message)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		assert.False(t, validator.OneOf("unit", "Days", allowed).Check())
	})
}

func TestMatches(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]+$`)

	t.Run("passes for a matching value", func(t *testing.T) {
		assert.True(t, validator.Matches("code", "starter2", pattern, "lowercase letters and digits").Check())
	})

	t.Run("fails for a non-matching value", func(t *testing.T) {
		rule := validator.Matches("code", "Starter!", pattern, "lowercase letters and digits")
		assert.False(t, rule.Check())
		assert.Equal(t, "must be lowercase letters and digits", rule.Error.Message)
	})
}
