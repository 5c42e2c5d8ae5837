package upload_attachment

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
	Title     string
	SortOrder int
}

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

// Execute stores a document and commits its row, returning the attachment id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return "", err
	}
	policy, err := it.Policies.AttachmentPolicy(ctx)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	stored, err := shared.StoreUpload(ctx, it.Files, policy, domain.AttachmentKey(product.ID(), id, req.File.Filename), req.File)
	if err != nil {
		return "", err
	}

	now := it.Clock.Now()
	att := domain.NewAttachment(id, product.ID(), req.Title, req.File.Filename, stored, req.SortOrder, now)

	plan, err := shared.MemberPlan(product, it.ProductRepo, it.OutboxRepo,
		domain.MemberAttachment, domain.MemberAdded, id, now,
		it.MemberRepo.InsertAttachmentMut(att))
	if err == nil {
		err = it.Committer.Apply(ctx, plan)
	}
	if err != nil {
		shared.DiscardFiles(ctx, it.Files, stored.Key)
		return "", err
	}
	return id, nil
}
