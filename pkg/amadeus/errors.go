package amadeus

import (
	"errors"
	"fmt"
)

var (
	ErrUpstreamAuth = errors.New("amadeus: credential exchange failed")
	ErrEmptyToken   = errors.New("amadeus: token response carried no access_token")
)

// UpstreamError is a non-2xx answer from the provider. Body is kept as received.
type UpstreamError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("amadeus: %s %s returned %d", e.Method, e.Path, e.StatusCode)
}

func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
