package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	"github.com/murkotick/showcase-catalog-service/internal/models"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_category"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_product"
)

type CategoryRepo struct{}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{}
}

func (r *CategoryRepo) InsertMut(c *domain.Category) *spanner.Mutation {
	if c == nil {
		return nil
	}
	return m_category.InsertMutation(buildInsertValues(c))
}

func buildInsertValues(c *domain.Category) map[string]interface{} {
	f := c.Fields()
	return m_category.BuildInsertMap(c.ID(), f.Name, f.Slug, int64(f.SortOrder), f.ParentID,
		c.CreatedAt().UTC(), c.UpdatedAt().UTC())
}

// UpdateMut writes only dirty columns plus updated_at, or returns nil.
func (r *CategoryRepo) UpdateMut(c *domain.Category) *spanner.Mutation {
	if c == nil || !c.HasChanges() {
		return nil
	}
	return m_category.UpdateMutation(c.ID(), buildUpdateValues(c))
}

func buildUpdateValues(c *domain.Category) map[string]interface{} {
	f := c.Fields()
	values := map[string]interface{}{m_category.ColUpdatedAt: c.UpdatedAt().UTC()}
	if c.Dirty(domain.FieldName) {
		values[m_category.ColName] = f.Name
	}
	if c.Dirty(domain.FieldSlug) {
		values[m_category.ColSlug] = f.Slug
	}
	if c.Dirty(domain.FieldSortOrder) {
		values[m_category.ColSortOrder] = int64(f.SortOrder)
	}
	if c.Dirty(domain.FieldParentID) {
		values[m_category.ColParentID] = models.NullString(f.ParentID)
	}
	return values
}

func (r *CategoryRepo) DeleteMut(categoryID string) *spanner.Mutation {
	return m_category.DeleteMutation(categoryID)
}

func (r *CategoryRepo) DetachProductMut(productID string) *spanner.Mutation {
	return m_product.UpdateMutation(productID, map[string]interface{}{
		m_product.ColCategoryID: spanner.NullString{},
	})
}

func (r *CategoryRepo) DetachChildMut(categoryID string) *spanner.Mutation {
	return m_category.UpdateMutation(categoryID, map[string]interface{}{
		m_category.ColParentID: spanner.NullString{},
	})
}
