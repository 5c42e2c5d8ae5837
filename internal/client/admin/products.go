package admin

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
)

// ProductQuery is the admin list request. Nil filters and zero paging fields are left out of
// the query string entirely.
type ProductQuery struct {
	Search       *string
	CategoryID   *string
	Manufacturer *string
	IsPublished  *bool
	Page         int
	PerPage      int
	SortBy       string
	SortOrder    string
}

// Values encodes q for the wire.
func (q ProductQuery) Values() url.Values {
	v := url.Values{}
	setString := func(key string, p *string) {
		if p != nil && *p != "" {
			v.Set(key, *p)
		}
	}
	setString("search", q.Search)
	setString("category_id", q.CategoryID)
	setString("manufacturer", q.Manufacturer)
	if q.IsPublished != nil {
		v.Set("is_published", strconv.FormatBool(*q.IsPublished))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.SortBy != "" {
		v.Set("sort_by", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sort_order", q.SortOrder)
	}
	return v
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) (*apicontract.ProductListResponse, error) {
	var out apicontract.ProductListResponse
	if err := c.call(ctx, http.MethodGet, "admin/products", q.Values(), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*apicontract.ProductAggregate, error) {
	var out apicontract.ProductAggregate
	if err := c.callJSON(ctx, http.MethodGet, endpoint("admin/products", productID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in apicontract.ProductInput) (*apicontract.CreatedProduct, error) {
	var out apicontract.CreatedProduct
	if err := c.callJSON(ctx, http.MethodPost, "admin/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, productID string, patch apicontract.ProductPatch) (*apicontract.IDResponse, error) {
	var out apicontract.IDResponse
	if err := c.callJSON(ctx, http.MethodPut, endpoint("admin/products", productID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	var out apicontract.DeletedResponse
	return c.callJSON(ctx, http.MethodDelete, endpoint("admin/products", productID), nil, &out)
}

func (c *Client) Stats(ctx context.Context) (*apicontract.Stats, error) {
	var out apicontract.Stats
	if err := c.callJSON(ctx, http.MethodGet, "admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Manufacturers(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.callJSON(ctx, http.MethodGet, "admin/manufacturers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteFile removes an image or attachment by its public file id.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	var out apicontract.DeletedResponse
	return c.callJSON(ctx, http.MethodDelete, endpoint("admin/files", fileID), nil, &out)
}
