package pagination

// Page is the envelope wrapped around one page of records. Pages are
// 0-indexed on the wire; PreviousPage and NextPage are null at the
// boundaries rather than clamped.
type Page[T any] struct {
	TotalRecords    int64  `json:"totalRecords"`
	Page            int64  `json:"page"`
	Limit           int64  `json:"limit"`
	TotalPages      int64  `json:"totalPages"`
	PreviousPage    *int64 `json:"previousPage"`
	NextPage        *int64 `json:"nextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	HasNextPage     bool   `json:"hasNextPage"`
	Records         []T    `json:"records"`
}

// New builds the envelope for the given 0-indexed page. A nil records slice
// is normalized to an empty one so the envelope always serializes records as
// a JSON array. Non-positive limits are treated as 1 to keep the page count
// defined; callers are expected to validate limits before querying.
func New[T any](records []T, total, page, limit int64) Page[T] {
	if limit <= 0 {
		limit = 1
	}
	if records == nil {
		records = []T{}
	}

	p := Page[T]{
		TotalRecords:    total,
		Page:            page,
		Limit:           limit,
		TotalPages:      (total + limit - 1) / limit,
		HasPreviousPage: page > 0,
		HasNextPage:     (page+1)*limit < total,
		Records:         records,
	}
	if p.HasPreviousPage {
		prev := page - 1
		p.PreviousPage = &prev
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	return p
}
