// Package committertest provides a Committer that records plans instead of applying them.
package committertest

import (
	"context"
	"sync"

	"cloud.google.com/go/spanner"

	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

// Recorder records every applied plan and runs its after-commit hooks. When Err is set
// Apply fails without recording and the hooks never run.
type Recorder struct {
	mu    sync.Mutex
	Plans []*commitplan.Plan
	Err   error
}

func (c *Recorder) Apply(ctx context.Context, plan *commitplan.Plan) error {
	c.mu.Lock()
	if c.Err != nil {
		c.mu.Unlock()
		return c.Err
	}
	c.Plans = append(c.Plans, plan)
	c.mu.Unlock()
	plan.Committed(ctx)
	return nil
}

// Commits is the number of successful Apply calls.
func (c *Recorder) Commits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Plans)
}

// Last returns the mutations of the most recent plan.
func (c *Recorder) Last() []*spanner.Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Plans) == 0 {
		return nil
	}
	return c.Plans[len(c.Plans)-1].Mutations()
}
