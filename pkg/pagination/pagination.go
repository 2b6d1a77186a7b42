package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows any query can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers.
type Params struct {
	Limit  int
	Offset int
}

// FromRequest reads limit/offset query parameters, tolerating junk input.
func FromRequest(r *http.Request) Params {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return Params{Limit: NormalizeLimit(limit), Offset: offset}
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Bounds clips the params against a collection of the given length and
// returns the [start, end) window to slice.
func (p Params) Bounds(length int) (int, int) {
	start := p.Offset
	if start > length {
		start = length
	}
	end := start + NormalizeLimit(p.Limit)
	if end > length {
		end = length
	}
	return start, end
}
