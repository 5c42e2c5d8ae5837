package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
)

var errNoClient = errors.New("committer: spanner client is nil")

// Adapter applies plans in a single Spanner read-write transaction.
type Adapter struct {
	client *spanner.Client
	tag    string
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client, tag: "catalog"}
}

// Apply buffers every mutation of plan and commits them atomically, then runs the plan's
// after-commit hooks. An empty plan commits nothing but still runs its hooks.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil {
		return nil
	}
	if plan.IsEmpty() {
		plan.Committed(ctx)
		return nil
	}
	if a.client == nil {
		return errNoClient
	}

	_, err := a.client.ReadWriteTransactionWithOptions(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	}, spanner.TransactionOptions{TransactionTag: a.tag})
	if err != nil {
		return fmt.Errorf("committer: apply %d mutations: %w", plan.Len(), err)
	}
	plan.Committed(ctx)
	return nil
}
