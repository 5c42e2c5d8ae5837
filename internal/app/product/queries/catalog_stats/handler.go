package catalog_stats

import (
	"context"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Stats(ctx context.Context) (*dto.StatsDTO, error) {
	return h.readModel.GetStats(ctx)
}

func (h *Handler) Manufacturers(ctx context.Context) ([]string, error) {
	return h.readModel.ListManufacturers(ctx)
}
