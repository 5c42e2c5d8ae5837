package list_published

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/get_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/rowscan"
	"github.com/murkotick/showcase-catalog-service/internal/models"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// sortColumns are the storefront sort keys. Sorting is always ascending.
var sortColumns = map[string]string{
	"sort_order":   "p.sort_order",
	"title":        "p.title",
	"price_amount": "p.price_amount",
	"created_at":   "p.created_at",
	"view_count":   "p.view_count",
}

// SpannerListPublishedQuery serves the storefront reads. Unpublished products are invisible.
type SpannerListPublishedQuery struct {
	Client *spanner.Client
}

func NewSpannerListPublishedQuery(client *spanner.Client) *SpannerListPublishedQuery {
	return &SpannerListPublishedQuery{Client: client}
}

// Normalize clamps paging and replaces an unknown sort key with sort_order.
func Normalize(f dto.PublicListFilter) dto.PublicListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
	if _, ok := sortColumns[f.Sort]; !ok {
		f.Sort = "sort_order"
	}
	return f
}

func buildListStatement(f dto.PublicListFilter) spanner.Statement {
	f = Normalize(f)
	col := sortColumns[f.Sort]
	return spanner.Statement{
		SQL: `SELECT p.product_id, p.slug, p.title, p.short_description, p.price_amount, p.price_currency,
		       (SELECT i.image_id FROM product_images i
		         WHERE i.product_id = p.product_id
		         ORDER BY i.sort_order, i.created_at LIMIT 1) AS cover_image_id
		FROM products@{FORCE_INDEX=products_by_published} p
		WHERE p.is_published = TRUE
		ORDER BY (` + col + ` IS NULL), ` + col + `, p.product_id
		LIMIT @limit OFFSET @offset`,
		Params: map[string]interface{}{
			"limit":  int64(f.PerPage),
			"offset": int64((f.Page - 1) * f.PerPage),
		},
	}
}

// ListPublishedProducts returns one page of storefront cards.
func (q *SpannerListPublishedQuery) ListPublishedProducts(ctx context.Context, filter dto.PublicListFilter) (*dto.PublicProductPage, error) {
	filter = Normalize(filter)
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	total, err := rowscan.One(ctx, tx, spanner.Statement{
		SQL: `SELECT COUNT(*) FROM products WHERE is_published = TRUE`,
	}, func(row *spanner.Row) (int64, error) {
		var n int64
		err := row.Columns(&n)
		return n, err
	})
	if err != nil {
		return nil, err
	}

	items, err := rowscan.Collect(ctx, tx, buildListStatement(filter), scanCard)
	if err != nil {
		return nil, err
	}
	return &dto.PublicProductPage{Items: items, Total: *total, Page: filter.Page, PerPage: filter.PerPage}, nil
}

// GetPublishedProduct returns the published product with the given slug and its members.
func (q *SpannerListPublishedQuery) GetPublishedProduct(ctx context.Context, slug string) (*dto.ProductAggregateDTO, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	p, err := rowscan.One(ctx, tx, spanner.Statement{
		SQL: `SELECT ` + rowscan.ProductColumns + ` FROM products@{FORCE_INDEX=products_by_slug}
		      WHERE slug = @slug AND is_published = TRUE`,
		Params: map[string]interface{}{"slug": slug},
	}, rowscan.Product)
	if err != nil {
		return nil, err
	}
	return get_product.LoadMembers(ctx, tx, *p)
}

func scanCard(row *spanner.Row) (dto.PublicProductRow, error) {
	var (
		out                    dto.PublicProductRow
		short, currency, cover spanner.NullString
		price                  spanner.NullNumeric
	)
	if err := row.Columns(&out.ProductID, &out.Slug, &out.Title, &short, &price, &currency, &cover); err != nil {
		return out, err
	}
	out.ShortDescription = models.StringPtr(short)
	out.PriceAmount = models.NumericString(price)
	out.PriceCurrency = models.StringPtr(currency)
	out.CoverImageID = models.StringPtr(cover)
	return out, nil
}
