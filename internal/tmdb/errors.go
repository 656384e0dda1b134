package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is the error envelope returned for any non-2xx TMDB
// response. Callers branch on the code through IsNotFound/IsUnauthorized
// rather than sniffing response fields.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tmdb: status %d", e.Code)
	}
	return fmt.Sprintf("tmdb: status %d: %s", e.Code, e.Message)
}

// IsNotFound reports whether err is a TMDB 404 response.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// IsUnauthorized reports whether err is a TMDB 401 response, i.e. a bad
// or missing API key.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusUnauthorized
}
