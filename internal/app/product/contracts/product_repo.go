package contracts

import (
	"context"
	"io"

	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
)

// ProductRepo is the write-side repository interface for products.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// InsertMut returns a mutation that inserts the product.
	InsertMut(p *domain.Product) *spanner.Mutation

	// UpdateMut returns a mutation that updates the product according to its ChangeTracker (or nil).
	UpdateMut(p *domain.Product) *spanner.Mutation

	// DeleteMut removes the product row; interleaved children cascade.
	DeleteMut(p *domain.Product) *spanner.Mutation
}

// MemberRepo is the write-side repository for the collections a product owns.
type MemberRepo interface {
	InsertImageMut(img *domain.Image) *spanner.Mutation
	UpdateImageMut(img *domain.Image) *spanner.Mutation
	DeleteImageMut(productID, imageID string) *spanner.Mutation

	InsertAttachmentMut(a *domain.Attachment) *spanner.Mutation
	DeleteAttachmentMut(productID, attachmentID string) *spanner.Mutation

	InsertSpecMut(s *domain.Spec) *spanner.Mutation
	UpdateSpecMut(s *domain.Spec) *spanner.Mutation
	DeleteSpecMut(productID, specID string) *spanner.Mutation

	InsertVariantMut(v *domain.Variant) *spanner.Mutation
	UpdateVariantMut(v *domain.Variant) *spanner.Mutation
	DeleteVariantMut(productID, variantID string) *spanner.Mutation
}

// ViewCounter increments the view counter of a published product in its own transaction
// and returns the new value.
type ViewCounter interface {
	IncrementViews(ctx context.Context, slug string) (int64, error)
}

// FileStore is the object storage the upload usecases write to.
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) (int64, error)
	Delete(ctx context.Context, key string) error
}

// UploadPolicies supplies the current upload limits, which are editable settings.
type UploadPolicies interface {
	ImagePolicy(ctx context.Context) (domain.UploadPolicy, error)
	AttachmentPolicy(ctx context.Context) (domain.UploadPolicy, error)
}
