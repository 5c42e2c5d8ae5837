package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the domain.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductCreatedEvent is raised when a new product is created.
type ProductCreatedEvent struct {
	ProductID   string
	Slug        string
	Title       string
	Price       *Money
	Currency    *string
	IsPublished bool
	CreatedAt   time.Time
}

func (e *ProductCreatedEvent) EventType() string     { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// ProductUpdatedEvent is raised when scalar product fields change.
type ProductUpdatedEvent struct {
	ProductID string
	UpdatedAt time.Time
	Changes   map[string]interface{} // field name -> new value
}

func (e *ProductUpdatedEvent) EventType() string     { return "product.updated" }
func (e *ProductUpdatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// PriceChangedEvent is raised when the price is set, changed or cleared.
type PriceChangedEvent struct {
	ProductID string
	OldPrice  *Money
	NewPrice  *Money
	Currency  *string
	ChangedAt time.Time
}

func (e *PriceChangedEvent) EventType() string     { return "price.changed" }
func (e *PriceChangedEvent) AggregateID() string   { return e.ProductID }
func (e *PriceChangedEvent) OccurredAt() time.Time { return e.ChangedAt }

// ProductPublishedEvent is raised when a product becomes visible on the storefront.
type ProductPublishedEvent struct {
	ProductID   string
	Slug        string
	PublishedAt time.Time
}

func (e *ProductPublishedEvent) EventType() string     { return "product.published" }
func (e *ProductPublishedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductPublishedEvent) OccurredAt() time.Time { return e.PublishedAt }

// ProductUnpublishedEvent is raised when a product is hidden from the storefront.
type ProductUnpublishedEvent struct {
	ProductID     string
	UnpublishedAt time.Time
}

func (e *ProductUnpublishedEvent) EventType() string     { return "product.unpublished" }
func (e *ProductUnpublishedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductUnpublishedEvent) OccurredAt() time.Time { return e.UnpublishedAt }

// ProductDeletedEvent is raised when a product and everything it owns is removed.
type ProductDeletedEvent struct {
	ProductID string
	Slug      string
	DeletedAt time.Time
}

func (e *ProductDeletedEvent) EventType() string     { return "product.deleted" }
func (e *ProductDeletedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

// MemberKind names an owned collection of the product.
type MemberKind string

const (
	MemberImage      MemberKind = "image"
	MemberAttachment MemberKind = "attachment"
	MemberSpec       MemberKind = "spec"
	MemberVariant    MemberKind = "variant"
)

// MemberAction is what happened to the member.
type MemberAction string

const (
	MemberAdded     MemberAction = "added"
	MemberUpdated   MemberAction = "updated"
	MemberRemoved   MemberAction = "removed"
	MemberReordered MemberAction = "reordered"
)

// MemberChangedEvent is raised for every change to an owned collection.
// MemberID is empty for a collection-wide reorder.
type MemberChangedEvent struct {
	ProductID string
	Kind      MemberKind
	Action    MemberAction
	MemberID  string
	At        time.Time
}

func (e *MemberChangedEvent) EventType() string {
	return "product." + string(e.Kind) + "_" + string(e.Action)
}
func (e *MemberChangedEvent) AggregateID() string   { return e.ProductID }
func (e *MemberChangedEvent) OccurredAt() time.Time { return e.At }
