package resolve_file

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/rowscan"
	"github.com/murkotick/showcase-catalog-service/internal/models"
)

// SpannerResolveFileQuery maps a public file id onto the stored object behind it.
type SpannerResolveFileQuery struct {
	Client *spanner.Client
}

func NewSpannerResolveFileQuery(client *spanner.Client) *SpannerResolveFileQuery {
	return &SpannerResolveFileQuery{Client: client}
}

// ResolveFile searches images, then attachments, then site assets.
func (q *SpannerResolveFileQuery) ResolveFile(ctx context.Context, fileID string) (*dto.FileDTO, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	params := map[string]interface{}{"id": fileID}

	img, err := rowscan.One(ctx, tx, spanner.Statement{
		SQL: `SELECT ` + rowscan.ImageColumns + `
		      FROM product_images@{FORCE_INDEX=product_images_by_image_id} WHERE image_id = @id`,
		Params: params,
	}, rowscan.Image)
	if err == nil {
		return FromImage(*img), nil
	}
	if !errors.Is(err, spanner.ErrRowNotFound) {
		return nil, err
	}

	att, err := rowscan.One(ctx, tx, spanner.Statement{
		SQL: `SELECT ` + rowscan.AttachmentColumns + `
		      FROM product_attachments@{FORCE_INDEX=product_attachments_by_attachment_id} WHERE attachment_id = @id`,
		Params: params,
	}, rowscan.Attachment)
	if err == nil {
		return FromAttachment(*att), nil
	}
	if !errors.Is(err, spanner.ErrRowNotFound) {
		return nil, err
	}

	return rowscan.One(ctx, tx, spanner.Statement{
		SQL:    `SELECT asset_id, file_path, mime, filename FROM site_assets WHERE asset_id = @id`,
		Params: params,
	}, scanAsset)
}

func scanAsset(row *spanner.Row) (dto.FileDTO, error) {
	var (
		out            dto.FileDTO
		mime, filename spanner.NullString
	)
	if err := row.Columns(&out.FileID, &out.FilePath, &mime, &filename); err != nil {
		return out, err
	}
	out.Kind = dto.FileKindAsset
	out.Mime = models.StringPtr(mime)
	out.Filename = filename.StringVal
	if out.Filename == "" {
		out.Filename = lastSegment(out.FilePath, out.FileID)
	}
	return out, nil
}

// FromImage names an image download after the last segment of its storage key.
func FromImage(img dto.ImageDTO) *dto.FileDTO {
	pid := img.ProductID
	return &dto.FileDTO{
		FileID:    img.ImageID,
		ProductID: &pid,
		Kind:      dto.FileKindImage,
		FilePath:  img.FilePath,
		Mime:      img.Mime,
		Filename:  lastSegment(img.FilePath, img.ImageID),
	}
}

// FromAttachment names an attachment download after its title.
func FromAttachment(a dto.AttachmentDTO) *dto.FileDTO {
	pid := a.ProductID
	return &dto.FileDTO{
		FileID:    a.AttachmentID,
		ProductID: &pid,
		Kind:      dto.FileKindAttachment,
		FilePath:  a.FilePath,
		Mime:      a.Mime,
		Filename:  a.Title,
	}
}

func lastSegment(key, id string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '/' {
			if i == len(key)-1 {
				break
			}
			return key[i+1:]
		}
	}
	if key != "" && key[len(key)-1] != '/' {
		return key
	}
	return id + ".bin"
}
