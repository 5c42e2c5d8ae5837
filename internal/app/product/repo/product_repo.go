package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/models"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_product"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	d := p.Details()
	return m_product.BuildInsertMap(m_product.Row{
		ProductID:        p.ID(),
		Slug:             d.Slug,
		Title:            d.Title,
		SKU:              d.SKU,
		Manufacturer:     d.Manufacturer,
		CategoryID:       d.CategoryID,
		ShortDescription: d.ShortDescription,
		Description:      d.Description,
		Hashtags:         d.Hashtags,
		PriceAmount:      d.Price.Rat(),
		PriceCurrency:    d.Currency,
		IsPublished:      d.IsPublished,
		SortOrder:        int64(d.SortOrder),
		ViewCount:        p.ViewCount(),
		CreatedAt:        p.CreatedAt().UTC(),
		UpdatedAt:        p.UpdatedAt().UTC(),
	})
}

// buildUpdateValues maps the dirty fields to columns. updated_at is always stamped.
func buildUpdateValues(p *domain.Product) map[string]interface{} {
	ch := p.Changes()
	updates := map[string]interface{}{}

	if ch.Dirty(domain.FieldSlug) {
		updates[m_product.ColSlug] = p.Slug()
	}
	if ch.Dirty(domain.FieldTitle) {
		updates[m_product.ColTitle] = p.Title()
	}
	nullable := []struct {
		field string
		col   string
		value *string
	}{
		{domain.FieldSKU, m_product.ColSKU, p.SKU()},
		{domain.FieldManufacturer, m_product.ColManufacturer, p.Manufacturer()},
		{domain.FieldCategoryID, m_product.ColCategoryID, p.CategoryID()},
		{domain.FieldShortDescription, m_product.ColShortDescription, p.ShortDescription()},
		{domain.FieldDescription, m_product.ColDescription, p.Description()},
		{domain.FieldHashtags, m_product.ColHashtags, p.Hashtags()},
		{domain.FieldCurrency, m_product.ColPriceCurrency, p.Currency()},
	}
	for _, n := range nullable {
		if ch.Dirty(n.field) {
			updates[n.col] = models.NullString(n.value)
		}
	}
	if ch.Dirty(domain.FieldPrice) {
		updates[m_product.ColPriceAmount] = models.NullNumeric(p.Price().Rat())
	}
	if ch.Dirty(domain.FieldPublished) {
		updates[m_product.ColIsPublished] = p.IsPublished()
	}
	if ch.Dirty(domain.FieldSortOrder) {
		updates[m_product.ColSortOrder] = int64(p.SortOrder())
	}

	updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	return updates
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
// It updates only dirty fields and always stamps updated_at when there are changes.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil
	}
	return m_product.UpdateMutation(p.ID(), buildUpdateValues(p))
}

// DeleteMut removes the product. Spanner cascades the interleaved member rows.
func (r *ProductRepo) DeleteMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.DeleteMutation(p.ID())
}
