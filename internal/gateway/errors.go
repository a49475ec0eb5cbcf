package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoData is returned when a mutating call succeeds at the HTTP level but
// the backend echoes no document back. The contract is that every successful
// mutation returns the affected record.
var ErrNoData = errors.New("gateway: empty reply to mutating call")

// APIError is a non-2xx reply. Message is the backend's own message when it
// sent one, otherwise the HTTP status text.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: %s (status %d)", e.Message, e.Status)
}

// IsAuthError reports whether err means the session token was rejected.
// Auth-failure detection lives here and nowhere else; 401 is the one status
// the backend uses consistently.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
