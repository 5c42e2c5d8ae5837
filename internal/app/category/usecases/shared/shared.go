package shared

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/showcase-catalog-service/internal/app/category/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/dto"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox"
)

// LoadCategory rebuilds a category from the read model.
func LoadCategory(ctx context.Context, rm contracts.ReadModel, categoryID string) (*domain.Category, error) {
	c, err := rm.GetCategory(ctx, categoryID)
	if errors.Is(err, spanner.ErrRowNotFound) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return FromDTO(*c), nil
}

func FromDTO(c dto.CategoryDTO) *domain.Category {
	return domain.ReconstructCategory(c.CategoryID, domain.Fields{
		Name:      c.Name,
		Slug:      c.Slug,
		SortOrder: int(c.SortOrder),
		ParentID:  c.ParentID,
	}, parseTime(c.CreatedAt), parseTime(c.UpdatedAt))
}

func parseTime(s *string) time.Time {
	if s == nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// CheckParent returns ErrUnknownParent when parentID names no category.
func CheckParent(ctx context.Context, rm contracts.ReadModel, parentID *string) error {
	if parentID == nil {
		return nil
	}
	_, err := rm.GetCategory(ctx, *parentID)
	if errors.Is(err, spanner.ErrRowNotFound) {
		return domain.ErrUnknownParent
	}
	return err
}

// StageEvents appends the category's events to plan as outbox rows.
func StageEvents(plan *commitplan.Plan, w outbox.Writer, c *domain.Category, now time.Time) error {
	return outbox.Stage(plan, w, c.DomainEvents(), marshalEvent, now)
}

func marshalEvent(ev domain.DomainEvent) (string, error) {
	var payload interface{} = ev
	switch e := ev.(type) {
	case *domain.CategoryCreatedEvent:
		payload = map[string]interface{}{
			"category_id": e.CategoryID,
			"name":        e.Name,
			"slug":        e.Slug,
			"created_at":  e.CreatedAt,
		}
	case *domain.CategoryUpdatedEvent:
		payload = map[string]interface{}{
			"category_id": e.CategoryID,
			"changes":     e.Changes,
			"updated_at":  e.UpdatedAt,
		}
	case *domain.CategoryDeletedEvent:
		payload = map[string]interface{}{
			"category_id": e.CategoryID,
			"slug":        e.Slug,
			"deleted_at":  e.DeletedAt,
		}
	}
	b, err := json.Marshal(payload)
	return string(b), err
}

// MapCommitError turns a violation of the category slug index into ErrSlugTaken.
func MapCommitError(err error) error {
	if err == nil {
		return nil
	}
	if spanner.ErrCode(err) == codes.AlreadyExists {
		return domain.ErrSlugTaken
	}
	return err
}
