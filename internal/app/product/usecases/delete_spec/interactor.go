package delete_spec

import (
	"context"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
)

type Request struct {
	ProductID string
	SpecID    string
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

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return err
	}
	if _, err := it.ReadModel.GetSpec(ctx, req.ProductID, req.SpecID); err != nil {
		return shared.NotFound(err, domain.ErrSpecNotFound)
	}

	plan, err := shared.MemberPlan(product, it.ProductRepo, it.OutboxRepo,
		domain.MemberSpec, domain.MemberRemoved, req.SpecID, now,
		it.MemberRepo.DeleteSpecMut(req.ProductID, req.SpecID))
	if err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}
