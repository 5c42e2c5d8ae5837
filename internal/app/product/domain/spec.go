package domain

import (
	"strings"
	"unicode/utf8"
)

// Field constants for spec and variant change tracking
const (
	FieldSpecName    = "name"
	FieldSpecValue   = "value"
	FieldSpecUnit    = "unit"
	FieldOptionName  = "option_name"
	FieldOptionValue = "option_value"
	FieldStockQty    = "stock_qty"
	FieldInOrderQty  = "in_order_qty"
)

const (
	maxSpecNameLen    = 255
	maxSpecValueLen   = 512
	maxSpecUnitLen    = 64
	maxOptionNameLen  = 128
	maxOptionValueLen = 255
)

// SpecFields is the full field set of a technical spec line ("Weight: 2.5 kg").
type SpecFields struct {
	Name      string
	Value     string
	Unit      *string
	SortOrder int
}

// SpecPatch is a partial spec update.
type SpecPatch struct {
	Name      Change[string]
	Value     Change[string]
	Unit      Change[*string]
	SortOrder Change[int]
}

// Spec is one technical characteristic of a product.
type Spec struct {
	id        string
	productID string
	fields    SpecFields
	changes   *ChangeTracker
}

func NewSpec(id, productID string, f SpecFields) (*Spec, error) {
	f = normalizeSpec(f)
	if err := validateSpec(f); err != nil {
		return nil, err
	}
	return &Spec{id: id, productID: productID, fields: f, changes: NewChangeTracker()}, nil
}

func ReconstructSpec(id, productID string, f SpecFields) *Spec {
	return &Spec{id: id, productID: productID, fields: f, changes: NewChangeTracker()}
}

func (s *Spec) ID() string              { return s.id }
func (s *Spec) ProductID() string       { return s.productID }
func (s *Spec) Fields() SpecFields      { return s.fields }
func (s *Spec) Changes() *ChangeTracker { return s.changes }

// Update applies a partial update and reports whether anything changed.
func (s *Spec) Update(p SpecPatch) (bool, error) {
	next := s.fields
	if p.Name.Set {
		next.Name = p.Name.Value
	}
	if p.Value.Set {
		next.Value = p.Value.Value
	}
	if p.Unit.Set {
		next.Unit = p.Unit.Value
	}
	if p.SortOrder.Set {
		next.SortOrder = p.SortOrder.Value
	}
	next = normalizeSpec(next)
	if err := validateSpec(next); err != nil {
		return false, err
	}

	prev := s.fields
	if next.Name != prev.Name {
		s.changes.MarkDirty(FieldSpecName)
	}
	if next.Value != prev.Value {
		s.changes.MarkDirty(FieldSpecValue)
	}
	if !equalStrPtr(next.Unit, prev.Unit) {
		s.changes.MarkDirty(FieldSpecUnit)
	}
	if next.SortOrder != prev.SortOrder {
		s.changes.MarkDirty(FieldSortOrder)
	}
	s.fields = next
	return s.changes.HasChanges(), nil
}

func normalizeSpec(f SpecFields) SpecFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Value = strings.TrimSpace(f.Value)
	f.Unit = normalizeOptional(f.Unit)
	return f
}

func validateSpec(f SpecFields) error {
	if f.Name == "" {
		return ErrEmptySpecName
	}
	if f.Value == "" {
		return ErrEmptySpecValue
	}
	if utf8.RuneCountInString(f.Name) > maxSpecNameLen ||
		utf8.RuneCountInString(f.Value) > maxSpecValueLen ||
		tooLong(f.Unit, maxSpecUnitLen) {
		return ErrSpecFieldTooLong
	}
	return nil
}

// VariantFields is the full field set of a purchasable option ("Size: XL").
type VariantFields struct {
	OptionName  string
	OptionValue string
	StockQty    int
	InOrderQty  int
	SortOrder   int
}

// VariantPatch is a partial variant update.
type VariantPatch struct {
	OptionName  Change[string]
	OptionValue Change[string]
	StockQty    Change[int]
	InOrderQty  Change[int]
	SortOrder   Change[int]
}

// Variant is one option of a product with its own stock counters.
type Variant struct {
	id        string
	productID string
	fields    VariantFields
	changes   *ChangeTracker
}

func NewVariant(id, productID string, f VariantFields) (*Variant, error) {
	f = normalizeVariant(f)
	if err := validateVariant(f); err != nil {
		return nil, err
	}
	return &Variant{id: id, productID: productID, fields: f, changes: NewChangeTracker()}, nil
}

func ReconstructVariant(id, productID string, f VariantFields) *Variant {
	return &Variant{id: id, productID: productID, fields: f, changes: NewChangeTracker()}
}

func (v *Variant) ID() string              { return v.id }
func (v *Variant) ProductID() string       { return v.productID }
func (v *Variant) Fields() VariantFields   { return v.fields }
func (v *Variant) Changes() *ChangeTracker { return v.changes }

// Update applies a partial update and reports whether anything changed.
func (v *Variant) Update(p VariantPatch) (bool, error) {
	next := v.fields
	if p.OptionName.Set {
		next.OptionName = p.OptionName.Value
	}
	if p.OptionValue.Set {
		next.OptionValue = p.OptionValue.Value
	}
	if p.StockQty.Set {
		next.StockQty = p.StockQty.Value
	}
	if p.InOrderQty.Set {
		next.InOrderQty = p.InOrderQty.Value
	}
	if p.SortOrder.Set {
		next.SortOrder = p.SortOrder.Value
	}
	next = normalizeVariant(next)
	if err := validateVariant(next); err != nil {
		return false, err
	}

	prev := v.fields
	if next.OptionName != prev.OptionName {
		v.changes.MarkDirty(FieldOptionName)
	}
	if next.OptionValue != prev.OptionValue {
		v.changes.MarkDirty(FieldOptionValue)
	}
	if next.StockQty != prev.StockQty {
		v.changes.MarkDirty(FieldStockQty)
	}
	if next.InOrderQty != prev.InOrderQty {
		v.changes.MarkDirty(FieldInOrderQty)
	}
	if next.SortOrder != prev.SortOrder {
		v.changes.MarkDirty(FieldSortOrder)
	}
	v.fields = next
	return v.changes.HasChanges(), nil
}

func normalizeVariant(f VariantFields) VariantFields {
	f.OptionName = strings.TrimSpace(f.OptionName)
	f.OptionValue = strings.TrimSpace(f.OptionValue)
	return f
}

func validateVariant(f VariantFields) error {
	if f.OptionName == "" || f.OptionValue == "" {
		return ErrEmptyOption
	}
	if utf8.RuneCountInString(f.OptionName) > maxOptionNameLen ||
		utf8.RuneCountInString(f.OptionValue) > maxOptionValueLen {
		return ErrOptionTooLong
	}
	if f.StockQty < 0 || f.InOrderQty < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
