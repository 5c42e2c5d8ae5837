package get_product

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

// Execute returns the product with its owned collections for the admin editor.
func (h *Handler) Execute(ctx context.Context, productID string) (*dto.ProductAggregateDTO, error) {
	agg, err := h.readModel.GetProductAggregate(ctx, productID)
	if errors.Is(err, spanner.ErrRowNotFound) {
		return nil, domain.ErrProductNotFound
	}
	return agg, err
}
