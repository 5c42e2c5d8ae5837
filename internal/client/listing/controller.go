package listing

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
)

// Client is the part of the admin client the product table needs.
type Client interface {
	ListProducts(ctx context.Context, q admin.ProductQuery) (*apicontract.ProductListResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// Result is the outcome of one fetch. Generation increases with every fetch started.
type Result struct {
	Generation uint64
	Query      Query
	Page       *apicontract.ProductListResponse
	Err        error
}

type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// OnResult registers a callback for every result that is still current when it arrives.
// It may call back into the controller.
func OnResult(fn func(Result)) Option {
	return func(c *Controller) { c.onResult = fn }
}

// Controller owns a State and keeps one page of results in sync with it. Every change of
// the applied query starts exactly one fetch; starting a fetch cancels the one in flight,
// and a response that arrives for an older generation is dropped.
type Controller struct {
	client   Client
	logger   *zap.Logger
	onResult func(Result)

	mu     sync.Mutex
	state  State
	gen    uint64
	cancel context.CancelFunc
	latest Result

	// deliver serialises the staleness check with the callback so results are handed out
	// in generation order.
	deliver  sync.Mutex
	inflight sync.WaitGroup
}

func NewController(client Client, opts ...Option) *Controller {
	c := &Controller{client: client, logger: zap.NewNop(), state: NewState()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Latest returns the last current result.
func (c *Controller) Latest() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

// Wait blocks until no fetch is in flight and returns the latest result. It must not run
// concurrently with calls that start fetches.
func (c *Controller) Wait() Result {
	c.inflight.Wait()
	return c.Latest()
}

func (c *Controller) EditDraft(edit func(*Filter)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.EditDraft(edit)
}

func (c *Controller) Apply(ctx context.Context) {
	c.change(ctx, (*State).Apply)
}

func (c *Controller) Reset(ctx context.Context) {
	c.change(ctx, (*State).Reset)
}

func (c *Controller) ToggleSort(ctx context.Context, field SortField) {
	c.change(ctx, func(s *State) bool { return s.ToggleSort(field) })
}

func (c *Controller) SetPageSize(ctx context.Context, n int) error {
	var err error
	c.change(ctx, func(s *State) bool {
		var changed bool
		changed, err = s.SetPageSize(n)
		return changed
	})
	return err
}

// SetPage reports whether a fetch was started.
func (c *Controller) SetPage(ctx context.Context, n int) bool {
	var changed bool
	c.change(ctx, func(s *State) bool {
		changed = s.SetPage(n)
		return changed
	})
	return changed
}

// Refresh re-queries the applied state as is.
func (c *Controller) Refresh(ctx context.Context) {
	c.change(ctx, func(*State) bool { return true })
}

// Delete removes a product and re-queries the current page.
func (c *Controller) Delete(ctx context.Context, productID string) error {
	if err := c.client.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	c.Refresh(ctx)
	return nil
}

func (c *Controller) change(ctx context.Context, fn func(*State) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !fn(&c.state) {
		return
	}

	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	gen, query := c.gen, c.state.Applied
	c.inflight.Add(1)
	go c.fetch(fetchCtx, cancel, gen, query)
}

func (c *Controller) fetch(ctx context.Context, cancel context.CancelFunc, gen uint64, q Query) {
	defer c.inflight.Done()
	defer cancel()

	page, err := c.client.ListProducts(ctx, q.ProductQuery())
	res := Result{Generation: gen, Query: q, Page: page, Err: err}

	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	current := gen == c.gen
	if current {
		c.cancel = nil
		c.latest = res
		if err == nil {
			c.state.Total = page.Total
		}
	}
	c.mu.Unlock()

	if !current {
		c.logger.Debug("discarding stale product page",
			zap.Uint64("generation", gen),
			zap.Int("page", q.Page),
			zap.Error(err),
		)
		return
	}
	if err != nil {
		c.logger.Warn("product list fetch failed", zap.Uint64("generation", gen), zap.Error(err))
	}
	if c.onResult != nil {
		c.onResult(res)
	}
}
