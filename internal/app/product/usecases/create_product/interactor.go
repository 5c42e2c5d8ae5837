package create_product

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/richtext"
)

// Request is the application-level create-product request: the full scalar field set.
type Request struct {
	Details domain.Details
}

// Response identifies the created product.
type Response struct {
	ID   string
	Slug string
}

// Interactor implements the create-product usecase following the Golden Mutation pattern.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(prodRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: prodRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

// Execute creates a new product, persists it and writes outbox events in a single commit.
func (it *Interactor) Execute(ctx context.Context, req Request) (*Response, error) {
	now := it.Clock.Now()

	d := req.Details
	if d.Description != nil {
		clean := richtext.Sanitize(*d.Description)
		d.Description = &clean
	}

	// 1. Build domain aggregate
	product, err := domain.NewProduct(uuid.New().String(), d, now)
	if err != nil {
		return nil, err
	}

	// 2. Referenced category must exist
	if err := shared.CheckCategory(ctx, it.ReadModel, product.CategoryID()); err != nil {
		return nil, err
	}

	// 3. Build commit plan
	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.InsertMut(product))

	// 4. Outbox events
	if err := shared.StageEvents(plan, it.OutboxRepo, product, now); err != nil {
		return nil, err
	}

	// 5. Apply; the slug unique index rejects duplicates
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, shared.MapCommitError(err)
	}

	return &Response{ID: product.ID(), Slug: product.Slug()}, nil
}
