package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
)

// ErrUnauthorized is returned for every 401. By the time the caller sees it the token has been
// cleared and the login redirect issued.
var ErrUnauthorized = errors.New("admin: not authenticated")

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("admin: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response other than 401. Detail is the server message, verbatim.
type HTTPError struct {
	Status int
	Code   string
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("admin: backend error (%d %s): %s", e.Status, e.Code, e.Detail)
	}
	return fmt.Sprintf("admin: backend error (%d)", e.Status)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == http.StatusNotFound
}

// UserMessage turns any client error into the single line shown to the operator.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var (
		he *HTTPError
		ne *NetworkError
	)
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "Session expired, please sign in again"
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	case errors.As(err, &ne):
		return "Network error, check the connection and try again"
	case errors.As(err, &he):
		if he.Detail != "" {
			return he.Detail
		}
		if he.Status == http.StatusNotFound {
			return "Not found"
		}
		return fmt.Sprintf("Request failed (%d)", he.Status)
	case errors.Is(err, apicontract.ErrInvalidContract):
		return "Unexpected response from the server"
	}
	return err.Error()
}
