package resolve_file

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

// Execute resolves a file id and fills in the default content type.
func (h *Handler) Execute(ctx context.Context, fileID string) (*dto.FileDTO, error) {
	f, err := h.readModel.ResolveFile(ctx, fileID)
	if errors.Is(err, spanner.ErrRowNotFound) {
		return nil, domain.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	if f.Mime == nil || *f.Mime == "" {
		m := "application/octet-stream"
		f.Mime = &m
	}
	return f, nil
}
