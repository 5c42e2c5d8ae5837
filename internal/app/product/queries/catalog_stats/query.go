package catalog_stats

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/rowscan"
)

// SpannerCatalogStatsQuery backs the admin dashboard and filter dropdowns.
type SpannerCatalogStatsQuery struct {
	Client *spanner.Client
}

func NewSpannerCatalogStatsQuery(client *spanner.Client) *SpannerCatalogStatsQuery {
	return &SpannerCatalogStatsQuery{Client: client}
}

// GetStats counts products, published products and the sum of view counters.
func (q *SpannerCatalogStatsQuery) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	stmt := spanner.Statement{SQL: `SELECT COUNT(*),
	       COUNTIF(is_published),
	       IFNULL(SUM(view_count), 0)
	FROM products`}
	return rowscan.One(ctx, q.Client.Single(), stmt, func(row *spanner.Row) (dto.StatsDTO, error) {
		var s dto.StatsDTO
		err := row.Columns(&s.TotalProducts, &s.PublishedCount, &s.TotalViews)
		return s, err
	})
}

// ListManufacturers returns the distinct non-empty manufacturers in alphabetical order.
func (q *SpannerCatalogStatsQuery) ListManufacturers(ctx context.Context) ([]string, error) {
	stmt := spanner.Statement{SQL: `SELECT DISTINCT manufacturer FROM products
	WHERE manufacturer IS NOT NULL AND manufacturer != ''
	ORDER BY manufacturer`}
	return rowscan.Collect(ctx, q.Client.Single(), stmt, func(row *spanner.Row) (string, error) {
		var m string
		err := row.Columns(&m)
		return m, err
	})
}

// CategoryExists reports whether a category row with the id exists.
func (q *SpannerCatalogStatsQuery) CategoryExists(ctx context.Context, categoryID string) (bool, error) {
	_, err := q.Client.Single().ReadRow(ctx, "product_categories", spanner.Key{categoryID}, []string{"category_id"})
	if spanner.ErrCode(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
