// Package storefront is the client of the public catalog API used by the shop front.
package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
)

// DefaultBootstrapTimeout bounds the settings probe made before the first render.
const DefaultBootstrapTimeout = 5 * time.Second

// DefaultSettings is what the shop front shows when the settings cannot be fetched.
func DefaultSettings() apicontract.MiniappSettings {
	return apicontract.MiniappSettings{
		ShopName:        "Shop",
		SectionTitle:    "Catalog",
		BackgroundColor: "#FFFFFF",
		TextColor:       "#000000",
		HeadingColor:    "#000000",
		PriceColor:      "#000000",
		HintColor:       "#999999",
		CardBgColor:     "#F5F5F5",
	}
}

// ListQuery selects a page of published products. Zero values are not sent.
type ListQuery struct {
	Page    int
	PerPage int
	Sort    string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	return v
}

// Client is one browsing session. Views are counted at most once per slug per Client.
type Client struct {
	base   *url.URL
	client admin.HTTPClient

	mu     sync.Mutex
	viewed map[string]bool
	views  singleflight.Group
}

func New(baseURL string, client admin.HTTPClient) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("storefront: base URL is required")
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("storefront: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{base: parsed, client: client, viewed: map[string]bool{}}, nil
}

func (c *Client) List(ctx context.Context, q ListQuery) (*apicontract.StorefrontList, error) {
	var out apicontract.StorefrontList
	if err := c.call(ctx, http.MethodGet, "products/", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Product(ctx context.Context, slug string) (*apicontract.StorefrontDetail, error) {
	var out apicontract.StorefrontDetail
	if err := c.call(ctx, http.MethodGet, "products/"+slug, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TrackView counts a view of slug unless this session already did. tracked reports whether
// a request was sent. Concurrent calls for one slug share a single request. A failed request
// leaves the slug untracked so the next call retries.
func (c *Client) TrackView(ctx context.Context, slug string) (count int64, tracked bool, err error) {
	if c.seen(slug) {
		return 0, false, nil
	}
	v, err, _ := c.views.Do(slug, func() (any, error) {
		if c.seen(slug) {
			return viewResult{}, nil
		}
		var out apicontract.ViewCount
		if err := c.call(ctx, http.MethodPost, "products/"+slug+"/view", nil, &out); err != nil {
			return viewResult{sent: true}, err
		}
		c.mu.Lock()
		c.viewed[slug] = true
		c.mu.Unlock()
		return viewResult{count: out.ViewCount, sent: true}, nil
	})
	r := v.(viewResult)
	return r.count, r.sent, err
}

type viewResult struct {
	count int64
	sent  bool
}

func (c *Client) seen(slug string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewed[slug]
}

func (c *Client) Settings(ctx context.Context) (*apicontract.MiniappSettings, error) {
	var out apicontract.MiniappSettings
	if err := c.call(ctx, http.MethodGet, "miniapp/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bootstrap fetches the settings within timeout (DefaultBootstrapTimeout when zero). The
// returned settings are always usable: on any failure they are DefaultSettings and the
// error says why.
func (c *Client) Bootstrap(ctx context.Context, timeout time.Duration) (apicontract.MiniappSettings, error) {
	if timeout <= 0 {
		timeout = DefaultBootstrapTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s, err := c.Settings(ctx)
	if err != nil {
		return DefaultSettings(), err
	}
	return *s, nil
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, out any) error {
	ref := &url.URL{Path: path}
	if len(query) > 0 {
		ref.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.ResolveReference(ref).String(), nil)
	if err != nil {
		return fmt.Errorf("storefront: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &admin.NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return admin.ErrorFromResponse(resp)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", apicontract.ErrInvalidContract, method, path, err)
	}
	return apicontract.Validate(out)
}
