package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// pagination parses optional offset/limit query parameters. Absent
// parameters come back nil; the query layer fills in defaults and
// caps.
func pagination(r *http.Request) (offset, limit *int64, err error) {
	if raw := r.URL.Query().Get("offset"); raw != "" {
		v, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: offset %q", query.ErrInvalidPage, raw)
		}
		offset = &v
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: limit %q", query.ErrInvalidPage, raw)
		}
		limit = &v
	}
	return offset, limit, nil
}
