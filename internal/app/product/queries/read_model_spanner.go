package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/catalog_stats"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/get_member"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/get_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/list_admin_products"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/list_published"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/resolve_file"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	getQ     *get_product.SpannerGetProductQuery
	adminQ   *list_admin_products.SpannerListAdminProductsQuery
	publicQ  *list_published.SpannerListPublishedQuery
	statsQ   *catalog_stats.SpannerCatalogStatsQuery
	memberQ  *get_member.SpannerGetMemberQuery
	resolveQ *resolve_file.SpannerResolveFileQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:     get_product.NewSpannerGetProductQuery(client),
		adminQ:   list_admin_products.NewSpannerListAdminProductsQuery(client),
		publicQ:  list_published.NewSpannerListPublishedQuery(client),
		statsQ:   catalog_stats.NewSpannerCatalogStatsQuery(client),
		memberQ:  get_member.NewSpannerGetMemberQuery(client),
		resolveQ: resolve_file.NewSpannerResolveFileQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) GetProductAggregate(ctx context.Context, productID string) (*dto.ProductAggregateDTO, error) {
	return rm.getQ.GetProductAggregate(ctx, productID)
}

func (rm *SpannerReadModel) ListAdminProducts(ctx context.Context, filter dto.AdminListFilter) (*dto.AdminProductPage, error) {
	return rm.adminQ.ListAdminProducts(ctx, filter)
}

func (rm *SpannerReadModel) ListManufacturers(ctx context.Context) ([]string, error) {
	return rm.statsQ.ListManufacturers(ctx)
}

func (rm *SpannerReadModel) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	return rm.statsQ.GetStats(ctx)
}

func (rm *SpannerReadModel) CategoryExists(ctx context.Context, categoryID string) (bool, error) {
	return rm.statsQ.CategoryExists(ctx, categoryID)
}

func (rm *SpannerReadModel) ListPublishedProducts(ctx context.Context, filter dto.PublicListFilter) (*dto.PublicProductPage, error) {
	return rm.publicQ.ListPublishedProducts(ctx, filter)
}

func (rm *SpannerReadModel) GetPublishedProduct(ctx context.Context, slug string) (*dto.ProductAggregateDTO, error) {
	return rm.publicQ.GetPublishedProduct(ctx, slug)
}

func (rm *SpannerReadModel) GetImage(ctx context.Context, productID, imageID string) (*dto.ImageDTO, error) {
	return rm.memberQ.GetImage(ctx, productID, imageID)
}

func (rm *SpannerReadModel) ListImages(ctx context.Context, productID string) ([]dto.ImageDTO, error) {
	return rm.memberQ.ListImages(ctx, productID)
}

func (rm *SpannerReadModel) GetAttachment(ctx context.Context, productID, attachmentID string) (*dto.AttachmentDTO, error) {
	return rm.memberQ.GetAttachment(ctx, productID, attachmentID)
}

func (rm *SpannerReadModel) GetSpec(ctx context.Context, productID, specID string) (*dto.SpecDTO, error) {
	return rm.memberQ.GetSpec(ctx, productID, specID)
}

func (rm *SpannerReadModel) GetVariant(ctx context.Context, productID, variantID string) (*dto.VariantDTO, error) {
	return rm.memberQ.GetVariant(ctx, productID, variantID)
}

func (rm *SpannerReadModel) ResolveFile(ctx context.Context, fileID string) (*dto.FileDTO, error) {
	return rm.resolveQ.ResolveFile(ctx, fileID)
}
