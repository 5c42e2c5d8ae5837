package contracts

import (
	"context"

	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically. Usecases depend on this
// interface rather than on the Spanner driver.
type Committer interface {
	// Apply atomically applies the provided mutation plan.
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
