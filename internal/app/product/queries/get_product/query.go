package get_product

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/rowscan"
)

// SpannerGetProductQuery reads one product, optionally with its owned collections.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct fetches the scalar product row.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + rowscan.ProductColumns + ` FROM products WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}
	return rowscan.One(ctx, q.Client.Single(), stmt, rowscan.Product)
}

// GetProductAggregate reads the product and its members from one snapshot.
func (q *SpannerGetProductQuery) GetProductAggregate(ctx context.Context, productID string) (*dto.ProductAggregateDTO, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	stmt := spanner.Statement{
		SQL:    `SELECT ` + rowscan.ProductColumns + ` FROM products WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}
	p, err := rowscan.One(ctx, tx, stmt, rowscan.Product)
	if err != nil {
		return nil, err
	}
	return LoadMembers(ctx, tx, *p)
}

// LoadMembers attaches images, attachments, specs and variants of p, each in display order.
func LoadMembers(ctx context.Context, q rowscan.Querier, p dto.ProductDTO) (*dto.ProductAggregateDTO, error) {
	params := map[string]interface{}{"id": p.ProductID}
	out := &dto.ProductAggregateDTO{Product: p}
	var err error

	out.Images, err = rowscan.Collect(ctx, q, spanner.Statement{
		SQL:    `SELECT ` + rowscan.ImageColumns + ` FROM product_images WHERE product_id = @id ORDER BY sort_order, created_at`,
		Params: params,
	}, rowscan.Image)
	if err != nil {
		return nil, err
	}
	out.Attachments, err = rowscan.Collect(ctx, q, spanner.Statement{
		SQL:    `SELECT ` + rowscan.AttachmentColumns + ` FROM product_attachments WHERE product_id = @id ORDER BY sort_order, created_at`,
		Params: params,
	}, rowscan.Attachment)
	if err != nil {
		return nil, err
	}
	out.Specs, err = rowscan.Collect(ctx, q, spanner.Statement{
		SQL:    `SELECT ` + rowscan.SpecColumns + ` FROM product_specs WHERE product_id = @id ORDER BY sort_order, spec_id`,
		Params: params,
	}, rowscan.Spec)
	if err != nil {
		return nil, err
	}
	out.Variants, err = rowscan.Collect(ctx, q, spanner.Statement{
		SQL:    `SELECT ` + rowscan.VariantColumns + ` FROM product_variants WHERE product_id = @id ORDER BY sort_order, variant_id`,
		Params: params,
	}, rowscan.Variant)
	if err != nil {
		return nil, err
	}
	return out, nil
}
