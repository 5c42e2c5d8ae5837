package listing

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
)

type reply struct {
	page *apicontract.ProductListResponse
	err  error
}

type pendingCall struct {
	ctx   context.Context
	query admin.ProductQuery
	reply chan reply
}

// blockingClient hands every ListProducts call to the test, which answers it.
type blockingClient struct {
	calls chan pendingCall
}

func newBlockingClient() *blockingClient {
	return &blockingClient{calls: make(chan pendingCall, 8)}
}

func (c *blockingClient) ListProducts(ctx context.Context, q admin.ProductQuery) (*apicontract.ProductListResponse, error) {
	call := pendingCall{ctx: ctx, query: q, reply: make(chan reply, 1)}
	c.calls <- call
	r := <-call.reply
	return r.page, r.err
}

func (c *blockingClient) DeleteProduct(context.Context, string) error { return nil }

// countingClient answers immediately with a page of the given total.
type countingClient struct {
	mu      sync.Mutex
	total   int
	queries []admin.ProductQuery
	deleted []string
	err     error
}

func (c *countingClient) ListProducts(_ context.Context, q admin.ProductQuery) (*apicontract.ProductListResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries = append(c.queries, q)
	if c.err != nil {
		return nil, c.err
	}
	return &apicontract.ProductListResponse{Total: c.total, Page: q.Page, PerPage: q.PerPage}, nil
}

func (c *countingClient) DeleteProduct(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, id)
	return nil
}

func (c *countingClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queries)
}

func page(total int) *apicontract.ProductListResponse {
	return &apicontract.ProductListResponse{Total: total, Page: 1, PerPage: 10}
}

func TestController_OneFetchPerAppliedChange(t *testing.T) {
	client := &countingClient{total: 47}
	c := NewController(client)
	ctx := context.Background()

	c.EditDraft(func(f *Filter) { f.Search = "drill" })
	c.Wait()
	assert.Equal(t, 0, client.count(), "draft edits never fetch")

	c.Apply(ctx)
	c.Wait()
	assert.Equal(t, 1, client.count())
	assert.Equal(t, "drill", *client.queries[0].Search)
	assert.Equal(t, 47, c.State().Total)

	c.ToggleSort(ctx, SortPrice)
	c.Wait()
	require.NoError(t, c.SetPageSize(ctx, 25))
	c.Wait()
	assert.Equal(t, 3, client.count())

	assert.ErrorIs(t, c.SetPageSize(ctx, 7), ErrInvalidPageSize)
	assert.False(t, c.SetPage(ctx, 3), "47 rows at 25 per page is two pages")
	assert.True(t, c.SetPage(ctx, 2))
	c.Wait()
	assert.Equal(t, 4, client.count())
	assert.Equal(t, 2, client.queries[3].Page)
	assert.Equal(t, "price", client.queries[3].SortBy)
}

func TestController_DiscardsStaleResponses(t *testing.T) {
	client := newBlockingClient()
	var delivered []Result
	var mu sync.Mutex
	c := NewController(client, OnResult(func(r Result) {
		mu.Lock()
		defer mu.Unlock()
		delivered = append(delivered, r)
	}))
	ctx := context.Background()

	c.Apply(ctx)
	first := <-client.calls
	c.ToggleSort(ctx, SortTitle)
	second := <-client.calls

	assert.Error(t, first.ctx.Err(), "the older fetch is cancelled")
	assert.NoError(t, second.ctx.Err())

	second.reply <- reply{page: page(30)}
	first.reply <- reply{page: page(99)}
	res := c.Wait()

	assert.Equal(t, uint64(2), res.Generation)
	assert.Equal(t, 30, c.State().Total)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, delivered, 1)
	assert.Equal(t, "title", delivered[0].Query.ProductQuery().SortBy)
}

func TestController_OlderResponseArrivingFirstIsDropped(t *testing.T) {
	client := newBlockingClient()
	c := NewController(client)
	ctx := context.Background()

	c.Apply(ctx)
	first := <-client.calls
	c.Refresh(ctx)
	second := <-client.calls

	first.reply <- reply{err: context.Canceled}
	second.reply <- reply{page: page(12)}
	res := c.Wait()

	require.NoError(t, res.Err)
	assert.Equal(t, uint64(2), res.Generation)
	assert.Equal(t, 12, c.State().Total)
}

func TestController_ErrorKeepsTotal(t *testing.T) {
	client := &countingClient{total: 20}
	c := NewController(client)
	ctx := context.Background()

	c.Refresh(ctx)
	c.Wait()
	client.err = errors.New("boom")
	c.Refresh(ctx)
	res := c.Wait()

	assert.EqualError(t, res.Err, "boom")
	assert.Equal(t, 20, c.State().Total)
}

func TestController_DeleteRequeries(t *testing.T) {
	client := &countingClient{total: 3}
	c := NewController(client)

	require.NoError(t, c.Delete(context.Background(), "p1"))
	c.Wait()
	assert.Equal(t, []string{"p1"}, client.deleted)
	assert.Equal(t, 1, client.count())
}

func TestRender(t *testing.T) {
	sku, currency := "DR-1", "RUB"
	st := NewState()
	st.Total = 12
	p := &apicontract.ProductListResponse{
		Items: []apicontract.ProductSummary{{
			ID: "p1", Slug: "drill", Title: "Drill", SKU: &sku, PriceCurrency: &currency,
			Variants: []apicontract.VariantSummary{{ID: "v1", OptionName: "Color", OptionValue: "Red", StockQty: 3}},
		}},
		Total: 12, Page: 1, PerPage: 10,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, st, p, map[string]bool{"p1": true}))
	out := buf.String()

	assert.Contains(t, out, "ORDER ↑")
	assert.Contains(t, out, "DR-1")
	assert.Contains(t, out, "Color: Red")
	assert.Contains(t, out, "draft")
	assert.Contains(t, out, "page 1/2 · 12 products · 10 per page · [next]")
	assert.NotContains(t, out, "[prev]")

	buf.Reset()
	require.NoError(t, Render(&buf, st, p, nil))
	assert.NotContains(t, buf.String(), "Color: Red")
}
