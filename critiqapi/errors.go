package critiqapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// APIError represents a critiq API error. The server usually supplies
// a message in the response body; when it doesn't, operations fall
// back to a fixed default message.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

var _ error = (*APIError)(nil)

func (ae *APIError) Error() string {
	return fmt.Sprintf("critiq API error (%d): %s", ae.StatusCode, ae.Message)
}

// IsAPIError returns true if an error is a critiq API error,
// even if it's wrapped with github.com/pkg/errors
func IsAPIError(err error) bool {
	_, ok := AsAPIError(err)
	return ok
}

// AsAPIError returns an *APIError and true if the
// passed error (no matter how deeply wrapped it is)
// is an *APIError. Otherwise it returns nil, false.
func AsAPIError(err error) (*APIError, bool) {
	rootErr := errors.Cause(err)
	apiError, ok := rootErr.(*APIError)
	return apiError, ok
}
