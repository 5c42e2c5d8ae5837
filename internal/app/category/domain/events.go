package domain

import "time"

type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

type CategoryCreatedEvent struct {
	CategoryID string
	Name       string
	Slug       string
	CreatedAt  time.Time
}

func (e *CategoryCreatedEvent) EventType() string     { return "category.created" }
func (e *CategoryCreatedEvent) AggregateID() string   { return e.CategoryID }
func (e *CategoryCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

type CategoryUpdatedEvent struct {
	CategoryID string
	Changes    map[string]interface{}
	UpdatedAt  time.Time
}

func (e *CategoryUpdatedEvent) EventType() string     { return "category.updated" }
func (e *CategoryUpdatedEvent) AggregateID() string   { return e.CategoryID }
func (e *CategoryUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// CategoryDeletedEvent is raised after the category is removed and its products and
// children are detached.
type CategoryDeletedEvent struct {
	CategoryID string
	Slug       string
	DeletedAt  time.Time
}

func (e *CategoryDeletedEvent) EventType() string     { return "category.deleted" }
func (e *CategoryDeletedEvent) AggregateID() string   { return e.CategoryID }
func (e *CategoryDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }
