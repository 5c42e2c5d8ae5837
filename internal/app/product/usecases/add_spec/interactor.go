package add_spec

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
)

type Request struct {
	ProductID string
	Fields    domain.SpecFields
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

// Execute adds a spec line and returns its id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return "", err
	}
	spec, err := domain.NewSpec(uuid.New().String(), product.ID(), req.Fields)
	if err != nil {
		return "", err
	}

	plan, err := shared.MemberPlan(product, it.ProductRepo, it.OutboxRepo,
		domain.MemberSpec, domain.MemberAdded, spec.ID(), now,
		it.MemberRepo.InsertSpecMut(spec))
	if err != nil {
		return "", err
	}
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}
	return spec.ID(), nil
}
