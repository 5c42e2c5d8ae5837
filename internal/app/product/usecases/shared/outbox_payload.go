package shared

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
//
// Money is rendered as a two-decimal string so consumers never see float rounding.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		payload = map[string]interface{}{
			"product_id":   e.ProductID,
			"slug":         e.Slug,
			"title":        e.Title,
			"price":        moneyValue(e.Price),
			"currency":     e.Currency,
			"is_published": e.IsPublished,
			"created_at":   e.CreatedAt,
		}

	case *domain.ProductUpdatedEvent:
		changes := make(map[string]interface{}, len(e.Changes))
		for k, v := range e.Changes {
			if m, ok := v.(*domain.Money); ok {
				changes[k] = moneyValue(m)
				continue
			}
			changes[k] = v
		}
		payload = map[string]interface{}{
			"product_id": e.ProductID,
			"changes":    changes,
			"updated_at": e.UpdatedAt,
		}

	case *domain.PriceChangedEvent:
		payload = map[string]interface{}{
			"product_id": e.ProductID,
			"old_price":  moneyValue(e.OldPrice),
			"new_price":  moneyValue(e.NewPrice),
			"currency":   e.Currency,
			"changed_at": e.ChangedAt,
		}

	case *domain.ProductPublishedEvent:
		payload = map[string]interface{}{
			"product_id":   e.ProductID,
			"slug":         e.Slug,
			"published_at": e.PublishedAt,
		}

	case *domain.ProductUnpublishedEvent:
		payload = map[string]interface{}{
			"product_id":     e.ProductID,
			"unpublished_at": e.UnpublishedAt,
		}

	case *domain.ProductDeletedEvent:
		payload = map[string]interface{}{
			"product_id": e.ProductID,
			"slug":       e.Slug,
			"deleted_at": e.DeletedAt,
		}

	case *domain.MemberChangedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"kind":        e.Kind,
			"action":      e.Action,
			"member_id":   e.MemberID,
			"occurred_at": e.At,
		}
	}

	if payload != nil {
		b, err := json.Marshal(payload)
		return string(b), err
	}

	// Fallback: try to marshal the event directly.
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}

func moneyValue(m *domain.Money) interface{} {
	if m == nil {
		return nil
	}
	return m.String()
}

// StageEvents appends the product's pending events to plan as outbox rows.
func StageEvents(plan *commitplan.Plan, w outbox.Writer, p *domain.Product, now time.Time) error {
	return outbox.Stage(plan, w, p.DomainEvents(), MarshalDomainEventPayload, now)
}
