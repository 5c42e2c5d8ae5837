package create_category

import (
	"context"

	"github.com/google/uuid"

	"github.com/murkotick/showcase-catalog-service/internal/app/category/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

type Request struct {
	Fields domain.Fields
}

type Response struct {
	ID   string
	Slug string
}

type Interactor struct {
	CategoryRepo contracts.CategoryRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	ReadModel    contracts.ReadModel
	Clock        clock.Clock
}

func NewInteractor(repo contracts.CategoryRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		CategoryRepo: repo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		ReadModel:    readModel,
		Clock:        clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Response, error) {
	now := it.Clock.Now()

	c, err := domain.NewCategory(uuid.New().String(), req.Fields, now)
	if err != nil {
		return nil, err
	}
	if err := shared.CheckParent(ctx, it.ReadModel, c.Fields().ParentID); err != nil {
		return nil, err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.CategoryRepo.InsertMut(c))
	if err := shared.StageEvents(plan, it.OutboxRepo, c, now); err != nil {
		return nil, err
	}
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, shared.MapCommitError(err)
	}
	return &Response{ID: c.ID(), Slug: c.Fields().Slug}, nil
}
