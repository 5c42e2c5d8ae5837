package contracts

import (
	"context"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
)

// ReadModel is the query side of the catalog. Lookups of a single row return
// spanner.ErrRowNotFound when nothing matches.
type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	GetProductAggregate(ctx context.Context, productID string) (*dto.ProductAggregateDTO, error)
	ListAdminProducts(ctx context.Context, filter dto.AdminListFilter) (*dto.AdminProductPage, error)
	ListManufacturers(ctx context.Context) ([]string, error)
	GetStats(ctx context.Context) (*dto.StatsDTO, error)
	CategoryExists(ctx context.Context, categoryID string) (bool, error)

	ListPublishedProducts(ctx context.Context, filter dto.PublicListFilter) (*dto.PublicProductPage, error)
	GetPublishedProduct(ctx context.Context, slug string) (*dto.ProductAggregateDTO, error)

	GetImage(ctx context.Context, productID, imageID string) (*dto.ImageDTO, error)
	ListImages(ctx context.Context, productID string) ([]dto.ImageDTO, error)
	GetAttachment(ctx context.Context, productID, attachmentID string) (*dto.AttachmentDTO, error)
	GetSpec(ctx context.Context, productID, specID string) (*dto.SpecDTO, error)
	GetVariant(ctx context.Context, productID, variantID string) (*dto.VariantDTO, error)

	ResolveFile(ctx context.Context, fileID string) (*dto.FileDTO, error)
}
