package update_variant

import (
	"context"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
)

type Request struct {
	ProductID string
	VariantID string
	Patch     domain.VariantPatch
}

type Interactor struct {
	ProductRepo contracts.ProductRepo
	MemberRepo  contracts.MemberRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(repo contracts.ProductRepo, members contracts.MemberRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		MemberRepo:  members,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

// Execute applies a partial update to a variant of the product. A patch that changes
// nothing commits nothing.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return err
	}
	stored, err := it.ReadModel.GetVariant(ctx, req.ProductID, req.VariantID)
	if err != nil {
		return shared.NotFound(err, domain.ErrVariantNotFound)
	}

	variant := shared.VariantFromDTO(*stored)
	changed, err := variant.Update(req.Patch)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	plan, err := shared.MemberPlan(product, it.ProductRepo, it.OutboxRepo,
		domain.MemberVariant, domain.MemberUpdated, variant.ID(), now,
		it.MemberRepo.UpdateVariantMut(variant))
	if err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}
