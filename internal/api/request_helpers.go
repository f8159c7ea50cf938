package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/orders-api/internal/domain"
)

// getPathID extracts an integer id from the URL path parameters.
// It parses and validates the id, handling common error cases.
//
// Returns:
//   - (id, nil): The parsed id if valid
//   - (0, error): Zero and domain.ErrInvalidID if the parameter is
//     missing or not an integer
func getPathID(r *http.Request) (int64, error) {
	// Extract parameter from URL path using chi router
	pathParam := chi.URLParam(r, "id")
	if pathParam == "" {
		return 0, domain.ErrInvalidID
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	return id, nil
}
