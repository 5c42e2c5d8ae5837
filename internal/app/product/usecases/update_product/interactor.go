package update_product

import (
	"context"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/richtext"
)

// Request represents the update product request (partial updates allowed).
type Request struct {
	ProductID string
	Patch     domain.Patch
}

// Interactor applies partial updates using the Golden Mutation Pattern.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(repo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// 1. Load aggregate via read model
	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return err
	}

	patch := req.Patch
	if patch.Description.Set && patch.Description.Value != nil {
		clean := richtext.Sanitize(*patch.Description.Value)
		patch.Description.Value = &clean
	}

	// 2. Domain method
	if err := product.UpdateDetails(patch, now); err != nil {
		return err
	}
	if !product.Changes().HasChanges() {
		return nil
	}
	if product.Changes().Dirty(domain.FieldCategoryID) {
		if err := shared.CheckCategory(ctx, it.ReadModel, product.CategoryID()); err != nil {
			return err
		}
	}

	// 3. Collect mutations
	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))
	if err := shared.StageEvents(plan, it.OutboxRepo, product, now); err != nil {
		return err
	}

	// 4. Apply via committer
	return shared.MapCommitError(it.Committer.Apply(ctx, plan))
}
