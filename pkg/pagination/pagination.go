package pagination

import (
	"net/http"
	"strconv"
)

// MaxLimit caps how many rows a single request may ask for.
const MaxLimit = 100

// Params holds limit/offset parameters extracted from query strings.
type Params struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// FromRequest extracts limit and offset from an HTTP request. Absent or
// malformed values fall back to the given default limit and offset 0;
// limits above MaxLimit are clamped.
func FromRequest(r *http.Request, defaultLimit int) Params {
	p := Params{Limit: defaultLimit, Offset: 0}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil && v > 0 {
			p.Limit = v
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	if offset := r.URL.Query().Get("offset"); offset != "" {
		if v, err := strconv.Atoi(offset); err == nil && v >= 0 {
			p.Offset = v
		}
	}

	return p
}

// Result wraps a page of rows together with the total row count.
type Result[T any] struct {
	Data       []T  `json:"data"`
	TotalCount int  `json:"total_count"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	HasNext    bool `json:"has_next"`
}

// NewResult creates a paginated result. A nil data slice is normalized to an
// empty slice so the JSON field is always an array.
func NewResult[T any](data []T, totalCount int, params Params) Result[T] {
	if data == nil {
		data = []T{}
	}
	return Result[T]{
		Data:       data,
		TotalCount: totalCount,
		Limit:      params.Limit,
		Offset:     params.Offset,
		HasNext:    params.Offset+len(data) < totalCount,
	}
}
