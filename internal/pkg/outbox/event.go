// Package outbox implements the transactional outbox: events are staged as mutations in the
// same commit plan as the aggregate write, and a relay later publishes them to Kafka.
package outbox

import (
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

// Event statuses stored in outbox_events.status.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
)

// Event is the application-level representation of an event persisted to the outbox table.
type Event struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}

// DomainEvent is what every aggregate's events expose.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// Writer returns the mutation that persists an outbox event. It never applies it.
type Writer interface {
	InsertMut(e *Event) *spanner.Mutation
}

// Stage appends one pending outbox row per domain event to plan.
func Stage[E DomainEvent](plan *commitplan.Plan, w Writer, events []E, marshal func(E) (string, error), now time.Time) error {
	for _, ev := range events {
		payload, err := marshal(ev)
		if err != nil {
			return err
		}
		plan.Add(w.InsertMut(&Event{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       StatusPending,
			CreatedAtUTC: now,
		}))
	}
	return nil
}
