package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wpt-fixtures/fixtures/fixture"
)

// newErrorResponse creates a new error response. Every fixture failure is
// a server error; the kind is reported in the body.
func newErrorResponse(err error) *fixture.Response {
	type responseError struct {
		Message string `json:"message"`
		Error   string `json:"error,omitempty"`
	}

	body, err := json.Marshal(struct {
		Error responseError `json:"error"`
	}{
		Error: responseError{
			Message: err.Error(),
			Error:   fixture.ErrorKind(err),
		},
	})
	if err != nil {
		return &fixture.Response{
			StatusCode: http.StatusInternalServerError,
			Header:     make(http.Header),
		}
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &fixture.Response{
		StatusCode: http.StatusInternalServerError,
		Header:     header,
		Body:       body,
	}
}
