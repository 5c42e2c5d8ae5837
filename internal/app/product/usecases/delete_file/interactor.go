package delete_file

import (
	"context"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_attachment"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_image"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
)

type Request struct {
	FileID string
}

// Interactor deletes a product image or attachment by its public file id. Site assets are
// managed by the settings endpoints and read as not found here.
type Interactor struct {
	ReadModel        contracts.ReadModel
	DeleteImage      *delete_image.Interactor
	DeleteAttachment *delete_attachment.Interactor
}

func NewInteractor(readModel contracts.ReadModel, images *delete_image.Interactor, attachments *delete_attachment.Interactor) *Interactor {
	return &Interactor{
		ReadModel:        readModel,
		DeleteImage:      images,
		DeleteAttachment: attachments,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	f, err := it.ReadModel.ResolveFile(ctx, req.FileID)
	if err != nil {
		return shared.NotFound(err, domain.ErrFileNotFound)
	}
	if f.ProductID == nil {
		return domain.ErrFileNotFound
	}

	switch f.Kind {
	case dto.FileKindImage:
		return it.DeleteImage.Execute(ctx, delete_image.Request{ProductID: *f.ProductID, ImageID: f.FileID})
	case dto.FileKindAttachment:
		return it.DeleteAttachment.Execute(ctx, delete_attachment.Request{ProductID: *f.ProductID, AttachmentID: f.FileID})
	default:
		return domain.ErrFileNotFound
	}
}
