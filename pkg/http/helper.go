package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

var ErrInvalidBody = errors.New("invalid request body")

// DecodeBody decodes a JSON request body into target. An empty body decodes
// into the zero value so that presence validation reports the missing fields.
func DecodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrInvalidBody
	}
	return nil
}
