package shared

import (
	"context"
	"fmt"
	"io"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
)

// Upload is one multipart file as received by the transport. Size is the declared size,
// or -1 when unknown.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// StoreUpload checks the upload against policy and writes it under key. The body is read
// at most one byte past the limit, so a lying Size header cannot exceed it.
func StoreUpload(ctx context.Context, files contracts.FileStore, policy domain.UploadPolicy, key string, up Upload) (domain.StoredFile, error) {
	if err := policy.Check(up.ContentType, up.Size); err != nil {
		return domain.StoredFile{}, err
	}

	body := up.Body
	if policy.MaxBytes > 0 {
		body = io.LimitReader(up.Body, policy.MaxBytes+1)
	}
	n, err := files.Save(ctx, key, body, up.ContentType)
	if err != nil {
		return domain.StoredFile{}, fmt.Errorf("store %s: %w", key, err)
	}
	if err := policy.Check(up.ContentType, n); err != nil {
		DiscardFiles(ctx, files, key)
		return domain.StoredFile{}, err
	}
	return domain.StoredFile{Key: key, Mime: up.ContentType, SizeBytes: n}, nil
}
