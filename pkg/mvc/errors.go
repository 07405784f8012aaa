package mvc

import (
	"errors"
	"net/http"
)

// HTTPError is implemented by errors that carry a response status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError attaches an HTTP status to an error returned from an action.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// NotFound wraps err as a 404.
func NotFound(err error) error {
	return StatusError{Code: http.StatusNotFound, Err: err}
}

// BadRequest wraps err as a 400.
func BadRequest(err error) error {
	return StatusError{Code: http.StatusBadRequest, Err: err}
}

// StatusOf maps an action error onto a response status. Errors without an
// explicit status, missing views included, are a 500.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		return httpErr.StatusCode()
	}
	return http.StatusInternalServerError
}
