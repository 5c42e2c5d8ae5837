package list_admin_products

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

func (h *Handler) Execute(ctx context.Context, filter dto.AdminListFilter) (*dto.AdminProductPage, error) {
	return h.readModel.ListAdminProducts(ctx, Normalize(filter))
}
