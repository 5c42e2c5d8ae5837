package outbox

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/models/m_outbox"
)

// Repo is the Spanner implementation of the outbox write repository.
// It returns *spanner.Mutation but never applies it.
type Repo struct{}

func NewRepo() *Repo {
	return &Repo{}
}

func (r *Repo) InsertMut(e *Event) *spanner.Mutation {
	if e == nil {
		return nil
	}
	return m_outbox.InsertMutation(buildInsertValues(e))
}

// MarkPublishedMut flips an event to published.
func (r *Repo) MarkPublishedMut(eventID string, at time.Time) *spanner.Mutation {
	return m_outbox.MarkProcessedMutation(eventID, StatusPublished, at.UTC())
}

func buildInsertValues(e *Event) map[string]interface{} {
	status := e.Status
	if status == "" {
		status = StatusPending
	}
	return m_outbox.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateID,
		e.PayloadJSON,
		status,
		e.CreatedAtUTC.UTC(),
	)
}
