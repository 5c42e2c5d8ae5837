package outbox

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/showcase-catalog-service/internal/models/m_outbox"
)

// SpannerSource reads pending events and marks them published.
type SpannerSource struct {
	Client *spanner.Client
	repo   *Repo
}

func NewSpannerSource(client *spanner.Client) *SpannerSource {
	return &SpannerSource{Client: client, repo: NewRepo()}
}

// FetchPending returns up to limit pending events, oldest first.
func (s *SpannerSource) FetchPending(ctx context.Context, limit int) ([]Event, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s
		      FROM %s@{FORCE_INDEX=%s}
		      WHERE %s = @status
		      ORDER BY %s
		      LIMIT @limit`,
			m_outbox.ColEventID, m_outbox.ColEventType, m_outbox.ColAggregateID,
			m_outbox.ColPayload, m_outbox.ColStatus, m_outbox.ColCreatedAt,
			m_outbox.TableName, m_outbox.StatusIndex,
			m_outbox.ColStatus, m_outbox.ColCreatedAt),
		Params: map[string]interface{}{"status": StatusPending, "limit": int64(limit)},
	}

	iter := s.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []Event
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var e Event
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.PayloadJSON, &e.Status, &e.CreatedAtUTC); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

// MarkPublished stamps every id as published in one commit.
func (s *SpannerSource) MarkPublished(ctx context.Context, eventIDs []string, at time.Time) error {
	if len(eventIDs) == 0 {
		return nil
	}
	muts := make([]*spanner.Mutation, 0, len(eventIDs))
	for _, id := range eventIDs {
		muts = append(muts, s.repo.MarkPublishedMut(id, at))
	}
	_, err := s.Client.Apply(ctx, muts)
	return err
}
