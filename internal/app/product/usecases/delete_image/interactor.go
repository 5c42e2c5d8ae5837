package delete_image

import (
	"context"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
)

type Request struct {
	ProductID string
	ImageID   string
}

type Interactor struct {
	ProductRepo contracts.ProductRepo
	MemberRepo  contracts.MemberRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Files       contracts.FileStore
	Clock       clock.Clock
}

func NewInteractor(repo contracts.ProductRepo, members contracts.MemberRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, files contracts.FileStore, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		MemberRepo:  members,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Files:       files,
		Clock:       clk,
	}
}

// Execute deletes the image row and then its stored file.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return err
	}
	img, err := it.ReadModel.GetImage(ctx, req.ProductID, req.ImageID)
	if err != nil {
		return shared.NotFound(err, domain.ErrImageNotFound)
	}

	plan, err := shared.MemberPlan(product, it.ProductRepo, it.OutboxRepo,
		domain.MemberImage, domain.MemberRemoved, img.ImageID, now,
		it.MemberRepo.DeleteImageMut(img.ProductID, img.ImageID))
	if err != nil {
		return err
	}
	plan.AfterCommit(func(ctx context.Context) { shared.DiscardFiles(ctx, it.Files, img.FilePath) })
	return it.Committer.Apply(ctx, plan)
}
