package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/client/listing"
)

type harness struct {
	app       *app
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	tokenFile string
}

func newHarness(t *testing.T, h http.Handler) *harness {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	env := map[string]string{
		apiURLEnv:    srv.URL + "/api",
		tokenFileEnv: filepath.Join(t.TempDir(), "token.json"),
	}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &harness{
		app: &app{
			stdout:     out,
			stderr:     errOut,
			getenv:     func(k string) string { return env[k] },
			httpClient: srv.Client(),
		},
		stdout:    out,
		stderr:    errOut,
		tokenFile: env[tokenFileEnv],
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func catalogAPI(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var req apicontract.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, apicontract.ErrorBody{Error: "unauthorized", Message: "Invalid credentials", Status: 401})
			return
		}
		writeJSON(w, http.StatusOK, apicontract.LoginResponse{AccessToken: "tok", TokenType: "bearer"})
	})
	mux.HandleFunc("GET /api/admin/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, apicontract.ErrorBody{Error: "unauthorized", Status: 401})
			return
		}
		assert.Equal(t, "drill", r.URL.Query().Get("search"))
		writeJSON(w, http.StatusOK, apicontract.ProductListResponse{
			Items: []apicontract.ProductSummary{{
				ID:    "p1",
				Slug:  "drel-udarnaya",
				Title: "Дрель ударная",
				Variants: []apicontract.VariantSummary{{
					ID: "v1", OptionName: "Color", OptionValue: "Red", StockQty: 3,
				}},
			}},
			Total:   1,
			Page:    1,
			PerPage: 10,
		})
	})
	mux.HandleFunc("GET /api/admin/manufacturers", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, apicontract.ErrorBody{Error: "unauthorized", Status: 401})
			return
		}
		writeJSON(w, http.StatusOK, []string{"Bosch", "Makita"})
	})
	return mux
}

func TestRun_Slug(t *testing.T) {
	h := newHarness(t, http.NotFoundHandler())
	code := h.app.run(context.Background(), []string{"slug", "Дрель", "ударная"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "drel-udarnaya\n", h.stdout.String())
}

func TestRun_UnknownCommand(t *testing.T) {
	h := newHarness(t, http.NotFoundHandler())
	code := h.app.run(context.Background(), []string{"frobnicate"})
	assert.Equal(t, 2, code)
	assert.Contains(t, h.stderr.String(), `unknown command "frobnicate"`)
	assert.Contains(t, h.stderr.String(), "move-image")
}

func TestRun_LoginThenProducts(t *testing.T) {
	h := newHarness(t, catalogAPI(t))
	ctx := context.Background()

	require.Equal(t, 0, h.app.run(ctx, []string{"login", "-password", "secret"}), h.stderr.String())
	assert.FileExists(t, h.tokenFile)

	code := h.app.run(ctx, []string{"products", "-search", "drill", "-expand"})
	require.Equal(t, 0, code, h.stderr.String())
	out := h.stdout.String()
	assert.Contains(t, out, "Дрель ударная")
	assert.Contains(t, out, "Color: Red")
	assert.Contains(t, out, "page 1/1")
}

func TestRun_Manufacturers(t *testing.T) {
	h := newHarness(t, catalogAPI(t))
	ctx := context.Background()

	require.Equal(t, 0, h.app.run(ctx, []string{"login", "-password", "secret"}), h.stderr.String())
	h.stdout.Reset()
	require.Equal(t, 0, h.app.run(ctx, []string{"manufacturers"}), h.stderr.String())
	assert.Equal(t, "Bosch\nMakita\n", h.stdout.String())
}

func TestRun_LoginWrongPassword(t *testing.T) {
	h := newHarness(t, catalogAPI(t))
	code := h.app.run(context.Background(), []string{"login", "-password", "nope"})
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "Invalid credentials")
	assert.NotContains(t, h.stderr.String(), "session expired")
}

func TestRun_ProductsWithoutSession(t *testing.T) {
	h := newHarness(t, catalogAPI(t))
	require.NoError(t, os.WriteFile(h.tokenFile, []byte(`{"access_token":"stale"}`), 0o600))

	code := h.app.run(context.Background(), []string{"products", "-search", "drill"})
	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "session expired, run: catalogctl login")
	assert.NoFileExists(t, h.tokenFile)
}

func TestRun_ProductsRejectsBadFlags(t *testing.T) {
	h := newHarness(t, http.NotFoundHandler())
	ctx := context.Background()
	assert.Equal(t, 1, h.app.run(ctx, []string{"products", "-published", "maybe"}))
	assert.Equal(t, 1, h.app.run(ctx, []string{"products", "-sort", "colour"}))
}

func TestParsePublication(t *testing.T) {
	for in, want := range map[string]listing.Publication{
		"any": listing.PublicationAny,
		"yes": listing.PublicationPublished,
		"No":  listing.PublicationUnpublished,
	} {
		got, err := parsePublication(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := parsePublication("maybe")
	assert.Error(t, err)
}
