package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/murkotick/showcase-catalog-service/internal/pkg/textnorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugTaken        = errors.New("slug is already used by another category")
	ErrEmptyName        = errors.New("category name cannot be empty")
	ErrNameTooLong      = errors.New("category name cannot exceed 255 characters")
	ErrInvalidSlug      = errors.New("category slug must be lowercase latin letters, digits or underscores separated by single hyphens")
	ErrInvalidParent    = errors.New("parent category is invalid")
	ErrUnknownParent    = errors.New("parent category does not exist")
)

const (
	FieldName      = "name"
	FieldSlug      = "slug"
	FieldSortOrder = "sort_order"
	FieldParentID  = "parent_id"

	maxNameLen = 255
	maxSlugLen = 255
)

// Fields is the editable field set of a category.
type Fields struct {
	Name      string
	Slug      string
	SortOrder int
	ParentID  *string
}

// Change is one field of a partial update.
type Change[T any] struct {
	Set   bool
	Value T
}

func SetTo[T any](v T) Change[T] {
	return Change[T]{Set: true, Value: v}
}

type Patch struct {
	Name      Change[string]
	Slug      Change[string]
	SortOrder Change[int]
	ParentID  Change[*string]
}

// Category groups products for the admin filter. Categories form an optional tree
// through ParentID.
type Category struct {
	id        string
	fields    Fields
	createdAt time.Time
	updatedAt time.Time
	dirty     map[string]bool
	events    []DomainEvent
}

func NewCategory(id string, f Fields, now time.Time) (*Category, error) {
	f = normalize(f)
	if err := validate(id, f); err != nil {
		return nil, err
	}
	c := &Category{id: id, fields: f, createdAt: now, updatedAt: now, dirty: map[string]bool{}}
	c.events = append(c.events, &CategoryCreatedEvent{CategoryID: id, Name: f.Name, Slug: f.Slug, CreatedAt: now})
	return c, nil
}

func ReconstructCategory(id string, f Fields, createdAt, updatedAt time.Time) *Category {
	return &Category{id: id, fields: f, createdAt: createdAt, updatedAt: updatedAt, dirty: map[string]bool{}}
}

func (c *Category) ID() string                  { return c.id }
func (c *Category) Fields() Fields              { return c.fields }
func (c *Category) CreatedAt() time.Time        { return c.createdAt }
func (c *Category) UpdatedAt() time.Time        { return c.updatedAt }
func (c *Category) Dirty(field string) bool     { return c.dirty[field] }
func (c *Category) HasChanges() bool            { return len(c.dirty) > 0 }
func (c *Category) DomainEvents() []DomainEvent { return c.events }

// Update applies a partial update and reports whether anything changed.
func (c *Category) Update(p Patch, now time.Time) (bool, error) {
	next := c.fields
	if p.Name.Set {
		next.Name = p.Name.Value
	}
	if p.Slug.Set {
		next.Slug = p.Slug.Value
	}
	if p.SortOrder.Set {
		next.SortOrder = p.SortOrder.Value
	}
	if p.ParentID.Set {
		next.ParentID = p.ParentID.Value
	}
	next = normalize(next)
	if err := validate(c.id, next); err != nil {
		return false, err
	}

	prev := c.fields
	changes := map[string]interface{}{}
	if next.Name != prev.Name {
		changes[FieldName] = next.Name
	}
	if next.Slug != prev.Slug {
		changes[FieldSlug] = next.Slug
	}
	if next.SortOrder != prev.SortOrder {
		changes[FieldSortOrder] = next.SortOrder
	}
	if !equalPtr(next.ParentID, prev.ParentID) {
		changes[FieldParentID] = next.ParentID
	}
	if len(changes) == 0 {
		return false, nil
	}
	for k := range changes {
		c.dirty[k] = true
	}
	c.fields = next
	c.updatedAt = now
	c.events = append(c.events, &CategoryUpdatedEvent{CategoryID: c.id, Changes: changes, UpdatedAt: now})
	return true, nil
}

func (c *Category) MarkDeleted(now time.Time) {
	c.events = append(c.events, &CategoryDeletedEvent{CategoryID: c.id, Slug: c.fields.Slug, DeletedAt: now})
}

func normalize(f Fields) Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Slug = strings.TrimSpace(f.Slug)
	if f.ParentID != nil {
		p := strings.TrimSpace(*f.ParentID)
		if p == "" {
			f.ParentID = nil
		} else {
			f.ParentID = &p
		}
	}
	return f
}

func validate(id string, f Fields) error {
	if f.Name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(f.Name) > maxNameLen {
		return ErrNameTooLong
	}
	if f.Slug == "" || utf8.RuneCountInString(f.Slug) > maxSlugLen || !textnorm.ValidSlug(f.Slug) {
		return ErrInvalidSlug
	}
	if f.ParentID != nil {
		if _, err := uuid.Parse(*f.ParentID); err != nil || *f.ParentID == id {
			return ErrInvalidParent
		}
	}
	return nil
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
