package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/models"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_attachment"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_image"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_spec"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_variant"
)

// MemberRepo builds mutations for the rows a product owns.
type MemberRepo struct{}

func NewMemberRepo() *MemberRepo {
	return &MemberRepo{}
}

func (r *MemberRepo) InsertImageMut(img *domain.Image) *spanner.Mutation {
	if img == nil {
		return nil
	}
	f := img.File()
	return m_image.InsertMutation(m_image.BuildInsertMap(
		img.ProductID(), img.ID(), f.Key,
		optionalString(f.Mime), optionalSize(f.SizeBytes),
		img.Alt(), int64(img.SortOrder()), img.CreatedAt().UTC(),
	))
}

// UpdateImageMut writes the image's dirty fields; only the position is mutable.
func (r *MemberRepo) UpdateImageMut(img *domain.Image) *spanner.Mutation {
	if img == nil || !img.Changes().HasChanges() {
		return nil
	}
	return m_image.UpdateMutation(img.ProductID(), img.ID(), imageUpdateValues(img))
}

func imageUpdateValues(img *domain.Image) map[string]interface{} {
	updates := map[string]interface{}{}
	if img.Changes().Dirty(domain.FieldSortOrder) {
		updates[m_image.ColSortOrder] = int64(img.SortOrder())
	}
	return updates
}

func (r *MemberRepo) DeleteImageMut(productID, imageID string) *spanner.Mutation {
	return m_image.DeleteMutation(productID, imageID)
}

func (r *MemberRepo) InsertAttachmentMut(a *domain.Attachment) *spanner.Mutation {
	if a == nil {
		return nil
	}
	f := a.File()
	return m_attachment.InsertMutation(m_attachment.BuildInsertMap(
		a.ProductID(), a.ID(), a.Title(), f.Key,
		optionalString(f.Mime), optionalSize(f.SizeBytes),
		int64(a.SortOrder()), a.CreatedAt().UTC(),
	))
}

func (r *MemberRepo) DeleteAttachmentMut(productID, attachmentID string) *spanner.Mutation {
	return m_attachment.DeleteMutation(productID, attachmentID)
}

func (r *MemberRepo) InsertSpecMut(s *domain.Spec) *spanner.Mutation {
	if s == nil {
		return nil
	}
	f := s.Fields()
	return m_spec.InsertMutation(m_spec.BuildInsertMap(s.ProductID(), s.ID(), f.Name, f.Value, f.Unit, int64(f.SortOrder)))
}

func (r *MemberRepo) UpdateSpecMut(s *domain.Spec) *spanner.Mutation {
	if s == nil || !s.Changes().HasChanges() {
		return nil
	}
	f := s.Fields()
	updates := map[string]interface{}{}
	if s.Changes().Dirty(domain.FieldSpecName) {
		updates[m_spec.ColName] = f.Name
	}
	if s.Changes().Dirty(domain.FieldSpecValue) {
		updates[m_spec.ColValue] = f.Value
	}
	if s.Changes().Dirty(domain.FieldSpecUnit) {
		updates[m_spec.ColUnit] = models.NullString(f.Unit)
	}
	if s.Changes().Dirty(domain.FieldSortOrder) {
		updates[m_spec.ColSortOrder] = int64(f.SortOrder)
	}
	return m_spec.UpdateMutation(s.ProductID(), s.ID(), updates)
}

func (r *MemberRepo) DeleteSpecMut(productID, specID string) *spanner.Mutation {
	return m_spec.DeleteMutation(productID, specID)
}

func (r *MemberRepo) InsertVariantMut(v *domain.Variant) *spanner.Mutation {
	if v == nil {
		return nil
	}
	f := v.Fields()
	return m_variant.InsertMutation(m_variant.BuildInsertMap(
		v.ProductID(), v.ID(), f.OptionName, f.OptionValue,
		int64(f.StockQty), int64(f.InOrderQty), int64(f.SortOrder),
	))
}

func (r *MemberRepo) UpdateVariantMut(v *domain.Variant) *spanner.Mutation {
	if v == nil || !v.Changes().HasChanges() {
		return nil
	}
	return m_variant.UpdateMutation(v.ProductID(), v.ID(), variantUpdateValues(v))
}

func (r *MemberRepo) DeleteVariantMut(productID, variantID string) *spanner.Mutation {
	return m_variant.DeleteMutation(productID, variantID)
}

func variantUpdateValues(v *domain.Variant) map[string]interface{} {
	f := v.Fields()
	ch := v.Changes()
	updates := map[string]interface{}{}
	if ch.Dirty(domain.FieldOptionName) {
		updates[m_variant.ColOptionName] = f.OptionName
	}
	if ch.Dirty(domain.FieldOptionValue) {
		updates[m_variant.ColOptionValue] = f.OptionValue
	}
	if ch.Dirty(domain.FieldStockQty) {
		updates[m_variant.ColStockQty] = int64(f.StockQty)
	}
	if ch.Dirty(domain.FieldInOrderQty) {
		updates[m_variant.ColInOrderQty] = int64(f.InOrderQty)
	}
	if ch.Dirty(domain.FieldSortOrder) {
		updates[m_variant.ColSortOrder] = int64(f.SortOrder)
	}
	return updates
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalSize(n int64) *int64 {
	if n <= 0 {
		return nil
	}
	return &n
}
