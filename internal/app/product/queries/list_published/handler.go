package list_published

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) List(ctx context.Context, filter dto.PublicListFilter) (*dto.PublicProductPage, error) {
	return h.readModel.ListPublishedProducts(ctx, Normalize(filter))
}

// Detail returns ErrProductNotFound for unknown and unpublished slugs alike.
func (h *Handler) Detail(ctx context.Context, slug string) (*dto.ProductAggregateDTO, error) {
	agg, err := h.readModel.GetPublishedProduct(ctx, slug)
	if errors.Is(err, spanner.ErrRowNotFound) {
		return nil, domain.ErrProductNotFound
	}
	return agg, err
}
