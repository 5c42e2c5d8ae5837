package list_admin_products

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
)

func strp(s string) *string { return &s }

func TestNormalize_Defaults(t *testing.T) {
	f := Normalize(dto.AdminListFilter{SortBy: "DROP TABLE", SortOrder: "sideways", PerPage: 1000})
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, MaxPerPage, f.PerPage)
	assert.Equal(t, "sort_order", f.SortBy)
	assert.Equal(t, "asc", f.SortOrder)

	assert.Equal(t, DefaultPerPage, Normalize(dto.AdminListFilter{}).PerPage)
}

func TestBuildListStatement_SortAndPaging(t *testing.T) {
	stmt := buildListStatement(dto.AdminListFilter{Page: 3, PerPage: 25, SortBy: "price", SortOrder: "desc"})

	assert.Contains(t, stmt.SQL, "ORDER BY (p.price_amount IS NULL), p.price_amount DESC, p.created_at DESC")
	assert.Equal(t, int64(25), stmt.Params["limit"])
	assert.Equal(t, int64(50), stmt.Params["offset"])
	assert.NotContains(t, stmt.SQL, "@search")
}

func TestBuildListStatement_Filters(t *testing.T) {
	published := false
	stmt := buildListStatement(dto.AdminListFilter{
		Search:       strp("  50%_Off "),
		CategoryID:   strp("c-1"),
		Manufacturer: strp("Bosch"),
		IsPublished:  &published,
	})

	assert.Contains(t, stmt.SQL, "LOWER(p.title) LIKE @search OR LOWER(IFNULL(p.sku, '')) LIKE @search")
	assert.Equal(t, `%50\%\_off%`, stmt.Params["search"])
	assert.Equal(t, "c-1", stmt.Params["category_id"])
	assert.Equal(t, "Bosch", stmt.Params["manufacturer"])
	assert.Equal(t, false, stmt.Params["is_published"])
	assert.Contains(t, stmt.SQL, "ORDER BY (p.sort_order IS NULL), p.sort_order ASC")
}

func TestBuildCountStatement_SharesWhere(t *testing.T) {
	count := buildCountStatement(dto.AdminListFilter{Manufacturer: strp("Bosch")})
	assert.True(t, strings.HasPrefix(count.SQL, "SELECT COUNT(*) FROM products p WHERE TRUE AND p.manufacturer = @manufacturer"))
	_, hasLimit := count.Params["limit"]
	assert.False(t, hasLimit)
}

func TestAttachVariants(t *testing.T) {
	rows := []dto.AdminProductRow{
		{Product: dto.ProductDTO{ProductID: "a"}},
		{Product: dto.ProductDTO{ProductID: "b"}},
	}
	attachVariants(rows, []dto.VariantDTO{
		{VariantID: "v1", ProductID: "b"},
		{VariantID: "v2", ProductID: "b"},
		{VariantID: "v3", ProductID: "zzz"},
	})
	assert.Empty(t, rows[0].Variants)
	assert.Len(t, rows[1].Variants, 2)
}
