package delete_category

import (
	"context"

	"github.com/murkotick/showcase-catalog-service/internal/app/category/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

type Request struct {
	CategoryID string
}

// Interactor deletes a category. Products and child categories that pointed at it are
// detached (their reference set to NULL) in the same commit.
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
	products, err := it.ReadModel.ProductIDsInCategory(ctx, c.ID())
	if err != nil {
		return err
	}
	children, err := it.ReadModel.ChildCategoryIDs(ctx, c.ID())
	if err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	for _, id := range products {
		plan.Add(it.CategoryRepo.DetachProductMut(id))
	}
	for _, id := range children {
		plan.Add(it.CategoryRepo.DetachChildMut(id))
	}
	plan.Add(it.CategoryRepo.DeleteMut(c.ID()))

	c.MarkDeleted(now)
	if err := shared.StageEvents(plan, it.OutboxRepo, c, now); err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}
