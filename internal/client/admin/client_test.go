package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
)

type recordingNavigator struct {
	path      string
	redirects []string
}

func (n *recordingNavigator) CurrentPath() string { return n.path }
func (n *recordingNavigator) Redirect(path string) { n.redirects = append(n.redirects, path) }

func newClient(t *testing.T, h http.HandlerFunc) (*Client, *MemoryTokenStore, *recordingNavigator) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	store := &MemoryTokenStore{}
	store.SetToken("tkn")
	nav := &recordingNavigator{path: "/admin/products"}
	c, err := New(srv.URL+"/api", srv.Client(), NewAuthContext(store, nav))
	require.NoError(t, err)
	return c, store, nav
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func emptyPage(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]any{"items": []any{}, "total": 0, "page": 1, "per_page": 10})
}

func strp(s string) *string { return &s }

func TestListProducts_OmitsUnsetFilters(t *testing.T) {
	var gotQuery, gotAuth, gotPath string
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery, gotAuth, gotPath = r.URL.RawQuery, r.Header.Get("Authorization"), r.URL.Path
		emptyPage(w)
	})

	_, err := c.ListProducts(context.Background(), ProductQuery{Page: 1, PerPage: 10, SortBy: "title", SortOrder: "asc", Search: strp("")})
	require.NoError(t, err)
	assert.Equal(t, "/api/admin/products", gotPath)
	assert.Equal(t, "page=1&per_page=10&sort_by=title&sort_order=asc", gotQuery)
	assert.Equal(t, "Bearer tkn", gotAuth)

	published := false
	_, err = c.ListProducts(context.Background(), ProductQuery{Manufacturer: strp("Acme"), IsPublished: &published, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, "is_published=false&manufacturer=Acme&page=2", gotQuery)
}

func TestUnauthorized_ClearsTokenAndRedirectsOnce(t *testing.T) {
	c, store, nav := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, apicontract.ErrorBody{Error: "unauthorized", Message: "Invalid or expired token", Status: 401})
	})

	_, err := c.Stats(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = c.Stats(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.Empty(t, store.Token())
	assert.Equal(t, []string{"/admin/login"}, nav.redirects)
	assert.Equal(t, "Session expired, please sign in again", UserMessage(err))
}

func TestUnauthorized_NoRedirectFromLoginPage(t *testing.T) {
	c, _, nav := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	nav.path = "/login"

	_, err := c.Stats(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, nav.redirects)
}

func TestLoginPath(t *testing.T) {
	assert.Equal(t, "/admin/login", LoginPath("/admin"))
	assert.Equal(t, "/admin/login", LoginPath("/admin/products/1"))
	assert.Equal(t, "/login", LoginPath("/products"))
	assert.Equal(t, "/login", LoginPath("/administrator"))
}

func TestSignInRearmsRedirect(t *testing.T) {
	nav := &recordingNavigator{path: "/products"}
	a := NewAuthContext(nil, nav)
	assert.True(t, a.HandleUnauthorized())
	assert.False(t, a.HandleUnauthorized())
	a.SignIn("fresh")
	assert.Equal(t, "fresh", a.Token())
	assert.True(t, a.HandleUnauthorized())
	assert.Equal(t, []string{"/login", "/login"}, nav.redirects)
}

func TestLogin(t *testing.T) {
	c, store, nav := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in apicontract.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, apicontract.ErrorBody{Error: "unauthorized", Message: "Invalid login or password", Status: 401})
			return
		}
		writeJSON(w, http.StatusOK, apicontract.LoginResponse{AccessToken: "new-token", TokenType: "bearer"})
	})

	err := c.Login(context.Background(), "admin", "wrong")
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "Invalid login or password", UserMessage(err))
	assert.Empty(t, nav.redirects)
	assert.Equal(t, "tkn", store.Token())

	require.NoError(t, c.Login(context.Background(), "admin", "secret"))
	assert.Equal(t, "new-token", store.Token())
}

func TestNotFoundDetail(t *testing.T) {
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, apicontract.ErrorBody{Error: "not_found", Message: "Product not found", Status: 404})
	})

	_, err := c.GetProduct(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Product not found", UserMessage(err))
}

func TestValidationDetailIsVerbatim(t *testing.T) {
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, apicontract.ErrorBody{Error: "invalid_request", Message: "price cannot be negative", Status: 400})
	})

	_, err := c.CreateProduct(context.Background(), apicontract.ProductInput{Slug: "a", Title: "A"})
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "price cannot be negative", UserMessage(err))
}

func TestNonJSONErrorBody(t *testing.T) {
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.Stats(context.Background())
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadGateway, he.Status)
	assert.Equal(t, "bad gateway", he.Detail)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c, err := New(srv.URL+"/api", nil, nil)
	require.NoError(t, err)

	_, err = c.Stats(context.Background())
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "Network error, check the connection and try again", UserMessage(err))
}

func TestResponseViolatingContract(t *testing.T) {
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"items": []any{map[string]any{"id": ""}}, "total": 1, "page": 1, "per_page": 10})
	})

	_, err := c.ListProducts(context.Background(), ProductQuery{})
	assert.ErrorIs(t, err, apicontract.ErrInvalidContract)
	assert.Equal(t, "Unexpected response from the server", UserMessage(err))
}

func TestUploadImage_Multipart(t *testing.T) {
	var alt, sortOrder, filename, contentType, content string
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		alt, sortOrder = r.FormValue("alt"), r.FormValue("sort_order")
		f, h, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		b, _ := io.ReadAll(f)
		filename, contentType, content = h.Filename, h.Header.Get("Content-Type"), string(b)
		writeJSON(w, http.StatusOK, apicontract.UploadedFile{ID: "img-1", URL: "/api/files/img-1"})
	})

	out, err := c.UploadImage(context.Background(), "p1", File{Name: "a.png", ContentType: "image/png", Body: strings.NewReader("png")}, " front ", 2)
	require.NoError(t, err)
	assert.Equal(t, "img-1", out.ID)
	assert.Equal(t, "front", alt)
	assert.Equal(t, "2", sortOrder)
	assert.Equal(t, "a.png", filename)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "png", content)
}

func TestReorderImagesBody(t *testing.T) {
	var got apicontract.ImageOrder
	var path, method string
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, apicontract.IDResponse{ID: "p1"})
	})

	require.NoError(t, c.ReorderImages(context.Background(), "p1", []string{"b", "a"}))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/admin/products/p1/images/order", path)
	assert.Equal(t, []string{"b", "a"}, got.ImageIDs)
}

func TestDeleteFileAndManufacturers(t *testing.T) {
	var calls []string
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/api/admin/files/i1":
			writeJSON(w, http.StatusOK, apicontract.DeletedResponse{Deleted: "i1"})
		case "/api/admin/manufacturers":
			writeJSON(w, http.StatusOK, []string{"Acme", "Bosch"})
		default:
			writeJSON(w, http.StatusNotFound, apicontract.ErrorBody{Error: "not_found", Message: "File not found", Status: 404})
		}
	})

	require.NoError(t, c.DeleteFile(context.Background(), "i1"))
	err := c.DeleteFile(context.Background(), "nope")
	assert.True(t, IsNotFound(err), "got %v", err)

	names, err := c.Manufacturers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Bosch"}, names)
	assert.Equal(t, []string{
		"DELETE /api/admin/files/i1",
		"DELETE /api/admin/files/nope",
		"GET /api/admin/manufacturers",
	}, calls)
}

func TestDeleteMembersByParent(t *testing.T) {
	var calls []string
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		writeJSON(w, http.StatusOK, apicontract.DeletedResponse{Deleted: "x"})
	})

	require.NoError(t, c.DeleteImage(context.Background(), "p1", "i1"))
	require.NoError(t, c.DeleteAttachment(context.Background(), "p1", "a1"))
	assert.Equal(t, []string{
		"DELETE /api/admin/products/p1/images/i1",
		"DELETE /api/admin/products/p1/attachments/a1",
	}, calls)
}

func TestCancelledContext(t *testing.T) {
	c, _, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		emptyPage(w)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListProducts(ctx, ProductQuery{})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, "Request cancelled", UserMessage(err))
}

func TestFileTokenStore(t *testing.T) {
	s := &FileTokenStore{Path: t.TempDir() + "/nested/token.json"}
	assert.Empty(t, s.Token())
	s.SetToken("abc")
	assert.Equal(t, "abc", s.Token())
	s.Clear()
	assert.Empty(t, s.Token())
}
