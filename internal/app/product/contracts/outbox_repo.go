package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox"
)

// OutboxRepo is the write-side repository interface for the transactional outbox.
// It returns Spanner mutations; it does not apply them.
type OutboxRepo interface {
	InsertMut(e *outbox.Event) *spanner.Mutation
}
