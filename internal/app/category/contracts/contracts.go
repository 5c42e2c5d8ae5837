package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/dto"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox"
)

// CategoryRepo returns Spanner mutations for categories; it does not apply them.
type CategoryRepo interface {
	InsertMut(c *domain.Category) *spanner.Mutation
	UpdateMut(c *domain.Category) *spanner.Mutation
	DeleteMut(categoryID string) *spanner.Mutation
	// DetachProductMut clears category_id of a product that referenced a deleted category.
	DetachProductMut(productID string) *spanner.Mutation
	// DetachChildMut clears parent_id of a child of a deleted category.
	DetachChildMut(categoryID string) *spanner.Mutation
}

// ReadModel is the category query side. GetCategory returns spanner.ErrRowNotFound.
type ReadModel interface {
	ListCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	GetCategory(ctx context.Context, categoryID string) (*dto.CategoryDTO, error)
	ProductIDsInCategory(ctx context.Context, categoryID string) ([]string, error)
	ChildCategoryIDs(ctx context.Context, categoryID string) ([]string, error)
}

type OutboxRepo interface {
	InsertMut(e *outbox.Event) *spanner.Mutation
}

type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
