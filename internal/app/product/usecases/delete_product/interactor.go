package delete_product

import (
	"context"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
)

type Request struct {
	ProductID string
}

// Interactor removes a product. Owned rows cascade through interleaving; the stored
// files are removed once the commit succeeded.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Files       contracts.FileStore
	Clock       clock.Clock
}

func NewInteractor(repo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, files contracts.FileStore, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Files:       files,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	agg, err := it.ReadModel.GetProductAggregate(ctx, req.ProductID)
	if err != nil {
		return shared.NotFound(err, domain.ErrProductNotFound)
	}
	product, err := shared.ProductFromDTO(agg.Product)
	if err != nil {
		return err
	}
	product.MarkDeleted(now)

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.DeleteMut(product))
	if err := shared.StageEvents(plan, it.OutboxRepo, product, now); err != nil {
		return err
	}

	keys := make([]string, 0, len(agg.Images)+len(agg.Attachments))
	for _, img := range agg.Images {
		keys = append(keys, img.FilePath)
	}
	for _, a := range agg.Attachments {
		keys = append(keys, a.FilePath)
	}
	plan.AfterCommit(func(ctx context.Context) { shared.DiscardFiles(ctx, it.Files, keys...) })

	return it.Committer.Apply(ctx, plan)
}
