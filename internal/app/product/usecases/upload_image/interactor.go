package upload_image

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
	File      shared.Upload
	Alt       *string
	SortOrder int
}

// Interactor stores an image file and then commits its row. A failed commit removes the
// stored file again.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	MemberRepo  contracts.MemberRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Files       contracts.FileStore
	Policies    contracts.UploadPolicies
	Clock       clock.Clock
}

func NewInteractor(
	repo contracts.ProductRepo,
	members contracts.MemberRepo,
	outboxRepo contracts.OutboxRepo,
	committer contracts.Committer,
	readModel contracts.ReadModel,
	files contracts.FileStore,
	policies contracts.UploadPolicies,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		MemberRepo:  members,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Files:       files,
		Policies:    policies,
		Clock:       clk,
	}
}

// Execute returns the id of the new image, which is also its public file id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return "", err
	}
	policy, err := it.Policies.ImagePolicy(ctx)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	stored, err := shared.StoreUpload(ctx, it.Files, policy, domain.ImageKey(product.ID(), id, req.File.Filename), req.File)
	if err != nil {
		return "", err
	}

	now := it.Clock.Now()
	img, err := domain.NewImage(id, product.ID(), stored, req.Alt, req.SortOrder, now)
	if err != nil {
		shared.DiscardFiles(ctx, it.Files, stored.Key)
		return "", err
	}

	plan, err := shared.MemberPlan(product, it.ProductRepo, it.OutboxRepo,
		domain.MemberImage, domain.MemberAdded, id, now,
		it.MemberRepo.InsertImageMut(img))
	if err == nil {
		err = it.Committer.Apply(ctx, plan)
	}
	if err != nil {
		shared.DiscardFiles(ctx, it.Files, stored.Key)
		return "", err
	}
	return id, nil
}
