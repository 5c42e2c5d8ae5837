package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/murkotick/showcase-catalog-service/internal/pkg/textnorm"
)

// Field constants for change tracking
const (
	FieldSlug             = "slug"
	FieldTitle            = "title"
	FieldSKU              = "sku"
	FieldManufacturer     = "manufacturer"
	FieldCategoryID       = "category_id"
	FieldShortDescription = "short_description"
	FieldDescription      = "description"
	FieldHashtags         = "hashtags"
	FieldPrice            = "price_amount"
	FieldCurrency         = "price_currency"
	FieldPublished        = "is_published"
	FieldSortOrder        = "sort_order"
	FieldUpdatedAt        = "updated_at"
)

// DefaultCurrency is applied on create when no currency is given.
const DefaultCurrency = "RUB"

const (
	maxSlugLen         = 255
	maxTitleLen        = 512
	maxSKULen          = 64
	maxManufacturerLen = 255
	maxHashtagsLen     = 1024
)

// Details is the full scalar field set of a product.
type Details struct {
	Slug             string
	Title            string
	SKU              *string
	Manufacturer     *string
	CategoryID       *string
	ShortDescription *string
	Description      *string
	Hashtags         *string
	Price            *Money
	Currency         *string
	IsPublished      bool
	SortOrder        int
}

// Change is one field of a partial update. Set == false leaves the field untouched.
type Change[T any] struct {
	Set   bool
	Value T
}

// SetTo returns a change that assigns v.
func SetTo[T any](v T) Change[T] {
	return Change[T]{Set: true, Value: v}
}

// Patch is a partial update of the scalar fields. A set nil pointer clears a nullable field.
type Patch struct {
	Slug             Change[string]
	Title            Change[string]
	SKU              Change[*string]
	Manufacturer     Change[*string]
	CategoryID       Change[*string]
	ShortDescription Change[*string]
	Description      Change[*string]
	Hashtags         Change[*string]
	Price            Change[*Money]
	Currency         Change[*string]
	IsPublished      Change[bool]
	SortOrder        Change[int]
}

// Product is the aggregate root of the catalog. It owns images, attachments, specs and
// variants; those are written as separate rows but always scoped to their product.
type Product struct {
	id        string
	details   Details
	viewCount int64
	createdAt time.Time
	updatedAt time.Time
	changes   *ChangeTracker
	events    []DomainEvent
}

// NewProduct creates a new Product from a full field set.
func NewProduct(id string, d Details, now time.Time) (*Product, error) {
	d = normalizeDetails(d)
	if d.Currency == nil {
		c := DefaultCurrency
		d.Currency = &c
	}
	if err := validateDetails(d); err != nil {
		return nil, err
	}

	p := &Product{
		id:        id,
		details:   d,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductCreatedEvent{
		ProductID:   p.id,
		Slug:        d.Slug,
		Title:       d.Title,
		Price:       d.Price,
		Currency:    d.Currency,
		IsPublished: d.IsPublished,
		CreatedAt:   now,
	})

	return p, nil
}

// ReconstructProduct reconstructs a Product from persisted state.
// Used when loading from the database; no validation runs.
func ReconstructProduct(id string, d Details, viewCount int64, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:        id,
		details:   d,
		viewCount: viewCount,
		createdAt: createdAt,
		updatedAt: updatedAt,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
}

// Getters

func (p *Product) ID() string                { return p.id }
func (p *Product) Slug() string              { return p.details.Slug }
func (p *Product) Title() string             { return p.details.Title }
func (p *Product) SKU() *string              { return p.details.SKU }
func (p *Product) Manufacturer() *string     { return p.details.Manufacturer }
func (p *Product) CategoryID() *string       { return p.details.CategoryID }
func (p *Product) ShortDescription() *string { return p.details.ShortDescription }
func (p *Product) Description() *string      { return p.details.Description }
func (p *Product) Hashtags() *string         { return p.details.Hashtags }
func (p *Product) Price() *Money             { return p.details.Price }
func (p *Product) Currency() *string         { return p.details.Currency }
func (p *Product) IsPublished() bool         { return p.details.IsPublished }
func (p *Product) SortOrder() int            { return p.details.SortOrder }
func (p *Product) ViewCount() int64          { return p.viewCount }
func (p *Product) CreatedAt() time.Time      { return p.createdAt }
func (p *Product) UpdatedAt() time.Time      { return p.updatedAt }
func (p *Product) Details() Details          { return p.details }
func (p *Product) Changes() *ChangeTracker   { return p.changes }
func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// Business Methods

// UpdateDetails applies a partial update. Fields whose normalized value equals the current
// one are not marked dirty, and no event is raised when nothing changed.
func (p *Product) UpdateDetails(patch Patch, now time.Time) error {
	next := p.details
	if patch.Slug.Set {
		next.Slug = patch.Slug.Value
	}
	if patch.Title.Set {
		next.Title = patch.Title.Value
	}
	if patch.SKU.Set {
		next.SKU = patch.SKU.Value
	}
	if patch.Manufacturer.Set {
		next.Manufacturer = patch.Manufacturer.Value
	}
	if patch.CategoryID.Set {
		next.CategoryID = patch.CategoryID.Value
	}
	if patch.ShortDescription.Set {
		next.ShortDescription = patch.ShortDescription.Value
	}
	if patch.Description.Set {
		next.Description = patch.Description.Value
	}
	if patch.Hashtags.Set {
		next.Hashtags = patch.Hashtags.Value
	}
	if patch.Price.Set {
		next.Price = patch.Price.Value
	}
	if patch.Currency.Set {
		next.Currency = patch.Currency.Value
	}
	if patch.IsPublished.Set {
		next.IsPublished = patch.IsPublished.Value
	}
	if patch.SortOrder.Set {
		next.SortOrder = patch.SortOrder.Value
	}

	next = normalizeDetails(next)
	if err := validateDetails(next); err != nil {
		return err
	}

	prev := p.details
	changes := make(map[string]interface{})
	track := func(field string, changed bool, value interface{}) {
		if changed {
			p.changes.MarkDirty(field)
			changes[field] = value
		}
	}
	track(FieldSlug, next.Slug != prev.Slug, next.Slug)
	track(FieldTitle, next.Title != prev.Title, next.Title)
	track(FieldSKU, !equalStrPtr(next.SKU, prev.SKU), next.SKU)
	track(FieldManufacturer, !equalStrPtr(next.Manufacturer, prev.Manufacturer), next.Manufacturer)
	track(FieldCategoryID, !equalStrPtr(next.CategoryID, prev.CategoryID), next.CategoryID)
	track(FieldShortDescription, !equalStrPtr(next.ShortDescription, prev.ShortDescription), next.ShortDescription)
	track(FieldDescription, !equalStrPtr(next.Description, prev.Description), next.Description)
	track(FieldHashtags, !equalStrPtr(next.Hashtags, prev.Hashtags), next.Hashtags)
	track(FieldSortOrder, next.SortOrder != prev.SortOrder, next.SortOrder)

	priceChanged := !next.Price.Equals(prev.Price)
	currencyChanged := !equalStrPtr(next.Currency, prev.Currency)
	publishedChanged := next.IsPublished != prev.IsPublished
	if priceChanged {
		p.changes.MarkDirty(FieldPrice)
	}
	if currencyChanged {
		p.changes.MarkDirty(FieldCurrency)
		changes[FieldCurrency] = next.Currency
	}
	if publishedChanged {
		p.changes.MarkDirty(FieldPublished)
	}

	if len(changes) == 0 && !priceChanged && !publishedChanged {
		return nil
	}

	p.details = next
	p.updatedAt = now

	if len(changes) > 0 {
		p.events = append(p.events, &ProductUpdatedEvent{
			ProductID: p.id,
			UpdatedAt: now,
			Changes:   changes,
		})
	}
	if priceChanged {
		p.events = append(p.events, &PriceChangedEvent{
			ProductID: p.id,
			OldPrice:  prev.Price,
			NewPrice:  next.Price,
			Currency:  next.Currency,
			ChangedAt: now,
		})
	}
	if publishedChanged {
		if next.IsPublished {
			p.events = append(p.events, &ProductPublishedEvent{ProductID: p.id, Slug: next.Slug, PublishedAt: now})
		} else {
			p.events = append(p.events, &ProductUnpublishedEvent{ProductID: p.id, UnpublishedAt: now})
		}
	}

	return nil
}

// MarkDeleted records the removal of the product and everything it owns.
func (p *Product) MarkDeleted(now time.Time) {
	p.events = append(p.events, &ProductDeletedEvent{
		ProductID: p.id,
		Slug:      p.details.Slug,
		DeletedAt: now,
	})
}

// RecordMemberChange stamps updated_at and raises a MemberChangedEvent.
func (p *Product) RecordMemberChange(kind MemberKind, action MemberAction, memberID string, now time.Time) {
	p.updatedAt = now
	p.changes.MarkDirty(FieldUpdatedAt)
	p.events = append(p.events, &MemberChangedEvent{
		ProductID: p.id,
		Kind:      kind,
		Action:    action,
		MemberID:  memberID,
		At:        now,
	})
}

// ClearEvents clears the accumulated domain events.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

// Validation helpers

func normalizeDetails(d Details) Details {
	d.Slug = strings.TrimSpace(d.Slug)
	d.Title = strings.TrimSpace(d.Title)
	d.SKU = normalizeOptional(d.SKU)
	d.Manufacturer = normalizeOptional(d.Manufacturer)
	d.CategoryID = normalizeOptional(d.CategoryID)
	d.ShortDescription = normalizeOptional(d.ShortDescription)
	d.Description = normalizeOptional(d.Description)
	if d.Hashtags != nil {
		tags := textnorm.NormalizeHashtags(*d.Hashtags)
		d.Hashtags = normalizeOptional(&tags)
	}
	if d.Currency != nil {
		c := strings.ToUpper(strings.TrimSpace(*d.Currency))
		d.Currency = normalizeOptional(&c)
	}
	return d
}

func validateDetails(d Details) error {
	if d.Slug == "" {
		return ErrEmptySlug
	}
	if utf8.RuneCountInString(d.Slug) > maxSlugLen || !textnorm.ValidSlug(d.Slug) {
		return ErrInvalidSlug
	}
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(d.Title) > maxTitleLen {
		return ErrTitleTooLong
	}
	if tooLong(d.SKU, maxSKULen) {
		return ErrSKUTooLong
	}
	if tooLong(d.Manufacturer, maxManufacturerLen) {
		return ErrManufacturerLong
	}
	if tooLong(d.Hashtags, maxHashtagsLen) {
		return ErrHashtagsTooLong
	}
	if d.CategoryID != nil {
		if _, err := uuid.Parse(*d.CategoryID); err != nil {
			return ErrInvalidCategoryID
		}
	}
	if d.Currency != nil && !validCurrency(*d.Currency) {
		return ErrInvalidCurrency
	}
	return validatePrice(d.Price)
}

func validCurrency(c string) bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func tooLong(s *string, limit int) bool {
	return s != nil && utf8.RuneCountInString(*s) > limit
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
