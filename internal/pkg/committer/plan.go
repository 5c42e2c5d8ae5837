package committer

import (
	"context"

	"cloud.google.com/go/spanner"
)

// Plan is the unit of work of one usecase: the mutations that commit together and the
// side effects that may only run once they did (removing stored files, for one).
type Plan struct {
	mutations []*spanner.Mutation
	after     []func(context.Context)
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends mutations in order. Nil mutations are skipped so repos can return nil for
// "nothing to write".
func (p *Plan) Add(ms ...*spanner.Mutation) {
	for _, m := range ms {
		if m != nil {
			p.mutations = append(p.mutations, m)
		}
	}
}

// AfterCommit registers fn to run once the plan has been committed. It never runs for a
// failed commit.
func (p *Plan) AfterCommit(fn func(context.Context)) {
	if fn != nil {
		p.after = append(p.after, fn)
	}
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Len() int { return len(p.mutations) }

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}

// Committed runs the after-commit hooks in registration order. Committers call it exactly
// once, after the mutations are durable.
func (p *Plan) Committed(ctx context.Context) {
	hooks := p.after
	p.after = nil
	for _, fn := range hooks {
		fn(ctx)
	}
}
