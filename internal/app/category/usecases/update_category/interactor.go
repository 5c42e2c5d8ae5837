package update_category

import (
	"context"

	"github.com/murkotick/showcase-catalog-service/internal/app/category/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

type Request struct {
	CategoryID string
	Patch      domain.Patch
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

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	c, err := shared.LoadCategory(ctx, it.ReadModel, req.CategoryID)
	if err != nil {
		return err
	}
	changed, err := c.Update(req.Patch, now)
	if err != nil || !changed {
		return err
	}
	if c.Dirty(domain.FieldParentID) {
		if err := shared.CheckParent(ctx, it.ReadModel, c.Fields().ParentID); err != nil {
			return err
		}
	}

	plan := commitplan.NewPlan()
	plan.Add(it.CategoryRepo.UpdateMut(c))
	if err := shared.StageEvents(plan, it.OutboxRepo, c, now); err != nil {
		return err
	}
	return shared.MapCommitError(it.Committer.Apply(ctx, plan))
}
