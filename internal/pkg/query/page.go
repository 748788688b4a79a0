package query

import "errors"

const (
	// DefaultLimit is applied when the caller does not specify one.
	DefaultLimit int64 = 500
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit int64 = 500
)

// ErrInvalidPage is returned for negative offset or limit values.
var ErrInvalidPage = errors.New("offset and limit must be non-negative")

// Page carries validated offset/limit pagination parameters.
type Page struct {
	Offset int64
	Limit  int64
}

// NewPage validates and normalizes pagination parameters.
// A nil offset or limit takes the default; negatives are rejected;
// the limit is capped at MaxLimit.
func NewPage(offset, limit *int64) (Page, error) {
	p := Page{Offset: 0, Limit: DefaultLimit}

	if offset != nil {
		if *offset < 0 {
			return Page{}, ErrInvalidPage
		}
		p.Offset = *offset
	}

	if limit != nil {
		if *limit < 0 {
			return Page{}, ErrInvalidPage
		}
		p.Limit = *limit
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}

	return p, nil
}
