package get_member

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/rowscan"
)

// SpannerGetMemberQuery reads single members of a product. Every lookup is scoped by the
// owning product, so a member of another product reads as missing.
type SpannerGetMemberQuery struct {
	Client *spanner.Client
}

func NewSpannerGetMemberQuery(client *spanner.Client) *SpannerGetMemberQuery {
	return &SpannerGetMemberQuery{Client: client}
}

func scoped(sql, productID, memberID string) spanner.Statement {
	return spanner.Statement{
		SQL:    sql,
		Params: map[string]interface{}{"pid": productID, "mid": memberID},
	}
}

func (q *SpannerGetMemberQuery) GetImage(ctx context.Context, productID, imageID string) (*dto.ImageDTO, error) {
	stmt := scoped(`SELECT `+rowscan.ImageColumns+` FROM product_images WHERE product_id = @pid AND image_id = @mid`, productID, imageID)
	return rowscan.One(ctx, q.Client.Single(), stmt, rowscan.Image)
}

// ListImages returns the images of a product in display order.
func (q *SpannerGetMemberQuery) ListImages(ctx context.Context, productID string) ([]dto.ImageDTO, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + rowscan.ImageColumns + ` FROM product_images WHERE product_id = @pid ORDER BY sort_order, created_at`,
		Params: map[string]interface{}{"pid": productID},
	}
	return rowscan.Collect(ctx, q.Client.Single(), stmt, rowscan.Image)
}

func (q *SpannerGetMemberQuery) GetAttachment(ctx context.Context, productID, attachmentID string) (*dto.AttachmentDTO, error) {
	stmt := scoped(`SELECT `+rowscan.AttachmentColumns+` FROM product_attachments WHERE product_id = @pid AND attachment_id = @mid`, productID, attachmentID)
	return rowscan.One(ctx, q.Client.Single(), stmt, rowscan.Attachment)
}

func (q *SpannerGetMemberQuery) GetSpec(ctx context.Context, productID, specID string) (*dto.SpecDTO, error) {
	stmt := scoped(`SELECT `+rowscan.SpecColumns+` FROM product_specs WHERE product_id = @pid AND spec_id = @mid`, productID, specID)
	return rowscan.One(ctx, q.Client.Single(), stmt, rowscan.Spec)
}

func (q *SpannerGetMemberQuery) GetVariant(ctx context.Context, productID, variantID string) (*dto.VariantDTO, error) {
	stmt := scoped(`SELECT `+rowscan.VariantColumns+` FROM product_variants WHERE product_id = @pid AND variant_id = @mid`, productID, variantID)
	return rowscan.One(ctx, q.Client.Single(), stmt, rowscan.Variant)
}
