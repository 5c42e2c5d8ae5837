package httptransport

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/platform/httpx"
)

// decodeBody reads a JSON body into dst and checks its contract tags.
func decodeBody(r *http.Request, dst any) error {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		return badRequest(err.Error())
	}
	if err := apicontract.Validate(dst); err != nil {
		return httpx.NewError("validation_error", err.Error(), http.StatusUnprocessableEntity)
	}
	return nil
}

// queryInt parses an integer query parameter. Missing means def; garbage is a 422 like any
// other malformed parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httpx.NewError("validation_error", name+" must be an integer", http.StatusUnprocessableEntity)
	}
	return n, nil
}

// queryString returns nil for a missing or blank parameter.
func queryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

func queryBool(r *http.Request, name string) (*bool, error) {
	raw := queryString(r, name)
	if raw == nil {
		return nil, nil
	}
	b, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, httpx.NewError("validation_error", name+" must be true or false", http.StatusUnprocessableEntity)
	}
	return &b, nil
}
