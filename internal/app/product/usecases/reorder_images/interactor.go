package reorder_images

import (
	"context"

	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain/services"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
)

type Request struct {
	ProductID string
	ImageIDs  []string
}

// Interactor renumbers all images of a product 0..n-1 in the requested order within one
// commit, so a partial reorder can never be observed.
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
	rows, err := it.ReadModel.ListImages(ctx, req.ProductID)
	if err != nil {
		return err
	}

	images := make([]*domain.Image, 0, len(rows))
	for _, r := range rows {
		images = append(images, shared.ImageFromDTO(r))
	}
	moves, err := services.SequenceImages(images, req.ImageIDs)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return nil
	}

	muts := make([]*spanner.Mutation, 0, len(moves))
	for _, img := range images {
		if pos, ok := moves[img.ID()]; ok {
			img.MoveTo(pos)
			muts = append(muts, it.MemberRepo.UpdateImageMut(img))
		}
	}

	plan, err := shared.MemberPlan(product, it.ProductRepo, it.OutboxRepo,
		domain.MemberImage, domain.MemberReordered, "", now, muts...)
	if err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}
