package queries

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/showcase-catalog-service/internal/app/category/dto"
	"github.com/murkotick/showcase-catalog-service/internal/models"
)

const categoryColumns = `category_id, name, slug, sort_order, parent_id, created_at, updated_at`

// SpannerReadModel satisfies contracts.ReadModel for categories.
type SpannerReadModel struct {
	Client *spanner.Client
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{Client: client}
}

// ListCategories returns every category ordered by sort_order, then name.
func (rm *SpannerReadModel) ListCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	iter := rm.Client.Single().Query(ctx, spanner.Statement{
		SQL: `SELECT ` + categoryColumns + ` FROM product_categories ORDER BY sort_order, name`,
	})
	defer iter.Stop()

	out := make([]dto.CategoryDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		c, err := scanCategory(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
}

func (rm *SpannerReadModel) GetCategory(ctx context.Context, categoryID string) (*dto.CategoryDTO, error) {
	iter := rm.Client.Single().Query(ctx, spanner.Statement{
		SQL:    `SELECT ` + categoryColumns + ` FROM product_categories WHERE category_id = @id`,
		Params: map[string]interface{}{"id": categoryID},
	})
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, spanner.ErrRowNotFound
	}
	if err != nil {
		return nil, err
	}
	c, err := scanCategory(row)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (rm *SpannerReadModel) ProductIDsInCategory(ctx context.Context, categoryID string) ([]string, error) {
	return rm.ids(ctx, spanner.Statement{
		SQL:    `SELECT product_id FROM products@{FORCE_INDEX=products_by_category} WHERE category_id = @id`,
		Params: map[string]interface{}{"id": categoryID},
	})
}

func (rm *SpannerReadModel) ChildCategoryIDs(ctx context.Context, categoryID string) ([]string, error) {
	return rm.ids(ctx, spanner.Statement{
		SQL:    `SELECT category_id FROM product_categories WHERE parent_id = @id`,
		Params: map[string]interface{}{"id": categoryID},
	})
}

func (rm *SpannerReadModel) ids(ctx context.Context, stmt spanner.Statement) ([]string, error) {
	iter := rm.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []string
	err := iter.Do(func(row *spanner.Row) error {
		var id string
		if err := row.Columns(&id); err != nil {
			return err
		}
		out = append(out, id)
		return nil
	})
	return out, err
}

func scanCategory(row *spanner.Row) (dto.CategoryDTO, error) {
	var (
		c                    dto.CategoryDTO
		parent               spanner.NullString
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&c.CategoryID, &c.Name, &c.Slug, &c.SortOrder, &parent, &createdAt, &updatedAt); err != nil {
		return c, err
	}
	c.ParentID = models.StringPtr(parent)
	c.CreatedAt = formatTime(createdAt)
	c.UpdatedAt = formatTime(updatedAt)
	return c, nil
}

func formatTime(t time.Time) *string {
	s := t.UTC().Format(time.RFC3339)
	return &s
}
