package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
)

func newClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/api", srv.Client())
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestList(t *testing.T) {
	var rawQuery, path string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery, path = r.URL.RawQuery, r.URL.Path
		writeJSON(w, http.StatusOK, apicontract.StorefrontList{
			Items: []apicontract.StorefrontItem{{ID: "p1", Slug: "drill", Title: "Drill"}},
			Total: 1, Page: 2, PerPage: 20,
		})
	})

	page, err := c.List(context.Background(), ListQuery{Page: 2, Sort: "price_amount"})
	require.NoError(t, err)
	assert.Equal(t, "/api/products/", path)
	assert.Equal(t, "page=2&sort=price_amount", rawQuery)
	assert.Equal(t, "drill", page.Items[0].Slug)
}

func TestProduct_NotFound(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, apicontract.ErrorBody{Error: "not_found", Message: "Product not found", Status: 404})
	})

	_, err := c.Product(context.Background(), "nope")
	assert.True(t, admin.IsNotFound(err))
	assert.Equal(t, "Product not found", admin.UserMessage(err))
}

func TestTrackView_OncePerSlug(t *testing.T) {
	var calls atomic.Int32
	var fail atomic.Bool
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		if fail.Load() {
			writeJSON(w, http.StatusInternalServerError, apicontract.ErrorBody{Error: "internal", Message: "boom", Status: 500})
			return
		}
		writeJSON(w, http.StatusOK, apicontract.ViewCount{ViewCount: 5})
	})
	ctx := context.Background()

	fail.Store(true)
	_, tracked, err := c.TrackView(ctx, "drill")
	require.Error(t, err)
	assert.True(t, tracked)

	fail.Store(false)
	count, tracked, err := c.TrackView(ctx, "drill")
	require.NoError(t, err)
	assert.True(t, tracked, "a failed attempt does not mark the slug")
	assert.Equal(t, int64(5), count)

	_, tracked, err = c.TrackView(ctx, "drill")
	require.NoError(t, err)
	assert.False(t, tracked)
	assert.Equal(t, int32(2), calls.Load())

	_, tracked, _ = c.TrackView(ctx, "saw")
	assert.True(t, tracked)
}

func TestTrackView_ConcurrentCallsShareOneRequest(t *testing.T) {
	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(entered)
		}
		<-release
		writeJSON(w, http.StatusOK, apicontract.ViewCount{ViewCount: 1})
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	track := func() {
		defer wg.Done()
		_, _, err := c.TrackView(ctx, "drill")
		assert.NoError(t, err)
	}
	wg.Add(1)
	go track()
	<-entered
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go track()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	_, tracked, err := c.TrackView(ctx, "drill")
	require.NoError(t, err)
	assert.False(t, tracked)
}

func TestBootstrap(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/miniapp/settings", r.URL.Path)
		writeJSON(w, http.StatusOK, apicontract.MiniappSettings{ShopName: "Drills & Co", BackgroundColor: "#000000"})
	})

	s, err := c.Bootstrap(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "Drills & Co", s.ShopName)
}

func TestBootstrap_TimeoutFallsBack(t *testing.T) {
	release := make(chan struct{})
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	start := time.Now()
	s, err := c.Bootstrap(context.Background(), 50*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, DefaultSettings(), s)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestBootstrap_ServerErrorFallsBack(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	s, err := c.Bootstrap(context.Background(), time.Second)
	require.Error(t, err)
	assert.Equal(t, "Shop", s.ShopName)
}
