// Package rowscan converts Spanner rows of the catalog tables into read DTOs.
// Every query selects the column lists declared here so the scanners stay in sync.
package rowscan

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/models"
)

var productColumns = []string{
	"product_id", "slug", "title", "sku", "manufacturer", "category_id",
	"short_description", "description", "hashtags", "price_amount", "price_currency",
	"is_published", "sort_order", "view_count", "created_at", "updated_at",
}

// ProductColumns is the select list scanned by Product and ProductDest.
var ProductColumns = strings.Join(productColumns, ", ")

// ProductColumnsOf is ProductColumns qualified with a table alias.
func ProductColumnsOf(alias string) string {
	cols := make([]string, len(productColumns))
	for i, c := range productColumns {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

const (
	ImageColumns      = `image_id, product_id, file_path, mime, size_bytes, alt, sort_order, created_at`
	AttachmentColumns = `attachment_id, product_id, title, file_path, mime, size_bytes, sort_order, created_at`
	SpecColumns       = `spec_id, product_id, name, value, unit, sort_order`
	VariantColumns    = `variant_id, product_id, option_name, option_value, stock_qty, in_order_qty, sort_order`
)

// ProductDest holds scan targets for ProductColumns. Extra lets callers append their own
// trailing columns (category name, cover image id) to the same row.
type ProductDest struct {
	id, slug, title               string
	sku, manufacturer, categoryID spanner.NullString
	shortDescription, description spanner.NullString
	hashtags, currency            spanner.NullString
	price                         spanner.NullNumeric
	isPublished                   bool
	sortOrder, viewCount          int64
	createdAt, updatedAt          time.Time
}

// Targets returns the pointers for row.Columns, followed by extra.
func (d *ProductDest) Targets(extra ...interface{}) []interface{} {
	ptrs := []interface{}{
		&d.id, &d.slug, &d.title, &d.sku, &d.manufacturer, &d.categoryID,
		&d.shortDescription, &d.description, &d.hashtags, &d.price, &d.currency,
		&d.isPublished, &d.sortOrder, &d.viewCount, &d.createdAt, &d.updatedAt,
	}
	return append(ptrs, extra...)
}

// DTO converts the scanned values.
func (d *ProductDest) DTO() dto.ProductDTO {
	return dto.ProductDTO{
		ProductID:        d.id,
		Slug:             d.slug,
		Title:            d.title,
		SKU:              models.StringPtr(d.sku),
		Manufacturer:     models.StringPtr(d.manufacturer),
		CategoryID:       models.StringPtr(d.categoryID),
		ShortDescription: models.StringPtr(d.shortDescription),
		Description:      models.StringPtr(d.description),
		Hashtags:         models.StringPtr(d.hashtags),
		PriceAmount:      models.NumericString(d.price),
		PriceCurrency:    models.StringPtr(d.currency),
		IsPublished:      d.isPublished,
		SortOrder:        d.sortOrder,
		ViewCount:        d.viewCount,
		CreatedAt:        FormatTime(d.createdAt),
		UpdatedAt:        FormatTime(d.updatedAt),
	}
}

// Product scans a row selected with ProductColumns.
func Product(row *spanner.Row) (dto.ProductDTO, error) {
	var d ProductDest
	if err := row.Columns(d.Targets()...); err != nil {
		return dto.ProductDTO{}, err
	}
	return d.DTO(), nil
}

// Image scans a row selected with ImageColumns.
func Image(row *spanner.Row) (dto.ImageDTO, error) {
	var (
		out       dto.ImageDTO
		mime, alt spanner.NullString
		size      spanner.NullInt64
		createdAt time.Time
	)
	if err := row.Columns(&out.ImageID, &out.ProductID, &out.FilePath, &mime, &size, &alt, &out.SortOrder, &createdAt); err != nil {
		return out, err
	}
	out.Mime = models.StringPtr(mime)
	out.SizeBytes = models.Int64Ptr(size)
	out.Alt = models.StringPtr(alt)
	out.CreatedAt = FormatTime(createdAt)
	return out, nil
}

// Attachment scans a row selected with AttachmentColumns.
func Attachment(row *spanner.Row) (dto.AttachmentDTO, error) {
	var (
		out       dto.AttachmentDTO
		mime      spanner.NullString
		size      spanner.NullInt64
		createdAt time.Time
	)
	if err := row.Columns(&out.AttachmentID, &out.ProductID, &out.Title, &out.FilePath, &mime, &size, &out.SortOrder, &createdAt); err != nil {
		return out, err
	}
	out.Mime = models.StringPtr(mime)
	out.SizeBytes = models.Int64Ptr(size)
	out.CreatedAt = FormatTime(createdAt)
	return out, nil
}

// Spec scans a row selected with SpecColumns.
func Spec(row *spanner.Row) (dto.SpecDTO, error) {
	var (
		out  dto.SpecDTO
		unit spanner.NullString
	)
	if err := row.Columns(&out.SpecID, &out.ProductID, &out.Name, &out.Value, &unit, &out.SortOrder); err != nil {
		return out, err
	}
	out.Unit = models.StringPtr(unit)
	return out, nil
}

// Variant scans a row selected with VariantColumns.
func Variant(row *spanner.Row) (dto.VariantDTO, error) {
	var out dto.VariantDTO
	err := row.Columns(&out.VariantID, &out.ProductID, &out.OptionName, &out.OptionValue, &out.StockQty, &out.InOrderQty, &out.SortOrder)
	return out, err
}

// FormatTime renders a timestamp as RFC3339 in UTC.
func FormatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// ParseTime reverses FormatTime. Nil or malformed input yields the zero time.
func ParseTime(s *string) time.Time {
	if s == nil || *s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// Querier is satisfied by single-use and multi-use read-only transactions.
type Querier interface {
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// Collect runs stmt and scans every row.
func Collect[T any](ctx context.Context, q Querier, stmt spanner.Statement, scan func(*spanner.Row) (T, error)) ([]T, error) {
	iter := q.Query(ctx, stmt)
	defer iter.Stop()

	out := make([]T, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		v, err := scan(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// One runs stmt and scans the first row, returning spanner.ErrRowNotFound when there is none.
func One[T any](ctx context.Context, q Querier, stmt spanner.Statement, scan func(*spanner.Row) (T, error)) (*T, error) {
	iter := q.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, spanner.ErrRowNotFound
	}
	if err != nil {
		return nil, err
	}
	v, err := scan(row)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
