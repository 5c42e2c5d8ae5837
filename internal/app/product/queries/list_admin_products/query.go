package list_admin_products

import (
	"context"
	"strings"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/rowscan"
	"github.com/murkotick/showcase-catalog-service/internal/models"
)

// Default and maximum page sizes of the admin list.
const (
	DefaultPerPage = 50
	MaxPerPage     = 100
)

// sortColumns whitelists the sortable columns by their API name.
var sortColumns = map[string]string{
	"sort_order":   "p.sort_order",
	"sku":          "p.sku",
	"price":        "p.price_amount",
	"manufacturer": "p.manufacturer",
	"status":       "p.is_published",
	"views":        "p.view_count",
	"title":        "p.title",
}

// SpannerListAdminProductsQuery lists products for the admin table.
type SpannerListAdminProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListAdminProductsQuery(client *spanner.Client) *SpannerListAdminProductsQuery {
	return &SpannerListAdminProductsQuery{Client: client}
}

// Normalize applies defaults and bounds to a filter.
func Normalize(f dto.AdminListFilter) dto.AdminListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
	if _, ok := sortColumns[f.SortBy]; !ok {
		f.SortBy = "sort_order"
	}
	if f.SortOrder != "desc" {
		f.SortOrder = "asc"
	}
	return f
}

// buildWhere returns the shared WHERE clause and its parameters.
func buildWhere(f dto.AdminListFilter) (string, map[string]interface{}) {
	clauses := []string{"TRUE"}
	params := map[string]interface{}{}

	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		clauses = append(clauses, `(LOWER(p.title) LIKE @search OR LOWER(IFNULL(p.sku, '')) LIKE @search)`)
		params["search"] = "%" + escapeLike(strings.ToLower(strings.TrimSpace(*f.Search))) + "%"
	}
	if f.CategoryID != nil {
		clauses = append(clauses, `p.category_id = @category_id`)
		params["category_id"] = *f.CategoryID
	}
	if f.Manufacturer != nil {
		clauses = append(clauses, `p.manufacturer = @manufacturer`)
		params["manufacturer"] = *f.Manufacturer
	}
	if f.IsPublished != nil {
		clauses = append(clauses, `p.is_published = @is_published`)
		params["is_published"] = *f.IsPublished
	}
	return strings.Join(clauses, " AND "), params
}

// buildListStatement returns the page query. NULLs sort last in both directions and ties
// are broken by newest first.
func buildListStatement(f dto.AdminListFilter) spanner.Statement {
	f = Normalize(f)
	where, params := buildWhere(f)
	col := sortColumns[f.SortBy]
	dir := "ASC"
	if f.SortOrder == "desc" {
		dir = "DESC"
	}

	sql := `SELECT ` + rowscan.ProductColumnsOf("p") + `, c.name,
	       (SELECT i.image_id FROM product_images i
	         WHERE i.product_id = p.product_id
	         ORDER BY i.sort_order, i.created_at LIMIT 1) AS cover_image_id
	FROM products p
	LEFT JOIN product_categories c ON c.category_id = p.category_id
	WHERE ` + where + `
	ORDER BY (` + col + ` IS NULL), ` + col + ` ` + dir + `, p.created_at DESC
	LIMIT @limit OFFSET @offset`

	params["limit"] = int64(f.PerPage)
	params["offset"] = int64((f.Page - 1) * f.PerPage)
	return spanner.Statement{SQL: sql, Params: params}
}

func buildCountStatement(f dto.AdminListFilter) spanner.Statement {
	where, params := buildWhere(f)
	return spanner.Statement{SQL: `SELECT COUNT(*) FROM products p WHERE ` + where, Params: params}
}

// ListAdminProducts returns one page of rows plus the total matching the filter.
func (q *SpannerListAdminProductsQuery) ListAdminProducts(ctx context.Context, filter dto.AdminListFilter) (*dto.AdminProductPage, error) {
	filter = Normalize(filter)
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	total, err := rowscan.One(ctx, tx, buildCountStatement(filter), func(row *spanner.Row) (int64, error) {
		var n int64
		err := row.Columns(&n)
		return n, err
	})
	if err != nil {
		return nil, err
	}

	rows, err := rowscan.Collect(ctx, tx, buildListStatement(filter), scanRow)
	if err != nil {
		return nil, err
	}

	if len(rows) > 0 {
		ids := make([]string, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.Product.ProductID)
		}
		variants, err := rowscan.Collect(ctx, tx, spanner.Statement{
			SQL: `SELECT ` + rowscan.VariantColumns + ` FROM product_variants
			      WHERE product_id IN UNNEST(@ids)
			      ORDER BY product_id, sort_order, variant_id`,
			Params: map[string]interface{}{"ids": ids},
		}, rowscan.Variant)
		if err != nil {
			return nil, err
		}
		attachVariants(rows, variants)
	}

	return &dto.AdminProductPage{
		Items:   rows,
		Total:   *total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

func scanRow(row *spanner.Row) (dto.AdminProductRow, error) {
	var (
		d            rowscan.ProductDest
		categoryName spanner.NullString
		cover        spanner.NullString
	)
	if err := row.Columns(d.Targets(&categoryName, &cover)...); err != nil {
		return dto.AdminProductRow{}, err
	}
	return dto.AdminProductRow{
		Product:      d.DTO(),
		CategoryName: models.StringPtr(categoryName),
		CoverImageID: models.StringPtr(cover),
		Variants:     []dto.VariantDTO{},
	}, nil
}

func attachVariants(rows []dto.AdminProductRow, variants []dto.VariantDTO) {
	index := make(map[string]int, len(rows))
	for i, r := range rows {
		index[r.Product.ProductID] = i
	}
	for _, v := range variants {
		if i, ok := index[v.ProductID]; ok {
			rows[i].Variants = append(rows[i].Variants, v)
		}
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
