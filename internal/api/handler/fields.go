// internal/api/handler/fields.go
package handler

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"msgboard/internal/util"
)

// checkFilters rejects the request when any query-string key falls outside
// the operation's allow-list. Pure check; the first offending key found
// determines the message.
func checkFilters(values url.Values, allowed ...string) error {
	for key := range values {
		if !slices.Contains(allowed, key) {
			return util.NewBadRequest("Invalid filter: %s", key)
		}
	}
	return nil
}

// checkFields is the body-side counterpart of checkFilters.
func checkFields(body map[string]*string, allowed ...string) error {
	for key := range body {
		if !slices.Contains(allowed, key) {
			return util.NewBadRequest("Invalid field: %s", key)
		}
	}
	return nil
}

// parseID extracts an integer path parameter. A value that does not parse
// fails with a 400 before any store access.
func parseID(r *http.Request, param, resource string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, util.NewBadRequest("Invalid %s ID", resource)
	}
	return id, nil
}
