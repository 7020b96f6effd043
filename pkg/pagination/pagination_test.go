package pagination_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/plankit/pkg/pagination"
)

func TestNew(t *testing.T) {
	t.Run("first page of many", func(t *testing.T) {
		p := pagination.New([]string{"a", "b"}, 45, 0, 20)

		assert.Equal(t, int64(45), p.TotalRecords)
		assert.Equal(t, int64(3), p.TotalPages)
		assert.False(t, p.HasPreviousPage)
		assert.Nil(t, p.PreviousPage)
		assert.True(t, p.HasNextPage)
		require.NotNil(t, p.NextPage)
		assert.Equal(t, int64(1), *p.NextPage)
	})

	t.Run("middle page", func(t *testing.T) {
		p := pagination.New([]string{"a"}, 45, 1, 20)

		assert.True(t, p.HasPreviousPage)
		require.NotNil(t, p.PreviousPage)
		assert.Equal(t, int64(0), *p.PreviousPage)
		assert.True(t, p.HasNextPage)
		require.NotNil(t, p.NextPage)
		assert.Equal(t, int64(2), *p.NextPage)
	})

	t.Run("last page", func(t *testing.T) {
		p := pagination.New([]string{"a"}, 45, 2, 20)

		assert.True(t, p.HasPreviousPage)
		assert.False(t, p.HasNextPage)
		assert.Nil(t, p.NextPage)
	})

	t.Run("exact multiple has no trailing page", func(t *testing.T) {
		p := pagination.New([]string{"a"}, 40, 1, 20)

		assert.Equal(t, int64(2), p.TotalPages)
		assert.False(t, p.HasNextPage)
	})

	t.Run("empty result set", func(t *testing.T) {
		p := pagination.New[string](nil, 0, 0, 20)

		assert.Equal(t, int64(0), p.TotalRecords)
		assert.Equal(t, int64(0), p.TotalPages)
		assert.False(t, p.HasPreviousPage)
		assert.False(t, p.HasNextPage)
		assert.NotNil(t, p.Records)
		assert.Empty(t, p.Records)
	})

	t.Run("single partial page", func(t *testing.T) {
		p := pagination.New([]string{"a", "b", "c"}, 3, 0, 20)

		assert.Equal(t, int64(1), p.TotalPages)
		assert.False(t, p.HasNextPage)
	})

	t.Run("has next page iff another record exists past this page", func(t *testing.T) {
		assert.False(t, pagination.New([]string{"a"}, 20, 0, 20).HasNextPage)
		assert.True(t, pagination.New([]string{"a"}, 21, 0, 20).HasNextPage)
	})
}

func TestPageJSON(t *testing.T) {
	t.Run("nulls at the boundary and array records", func(t *testing.T) {
		raw, err := json.Marshal(pagination.New[string](nil, 0, 0, 20))
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"totalRecords": 0,
			"page": 0,
			"limit": 20,
			"totalPages": 0,
			"previousPage": null,
			"nextPage": null,
			"hasPreviousPage": false,
			"hasNextPage": false,
			"records": []
		}`, string(raw))
	})

	t.Run("neighbor pages are numbers when present", func(t *testing.T) {
		raw, err := json.Marshal(pagination.New([]int{1}, 45, 1, 20))
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"totalRecords": 45,
			"page": 1,
			"limit": 20,
			"totalPages": 3,
			"previousPage": 0,
			"nextPage": 2,
			"hasPreviousPage": true,
			"hasNextPage": true,
			"records": [1]
		}`, string(raw))
	})
}
