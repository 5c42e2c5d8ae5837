package upload_image

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/repo"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/testdouble"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/committer/committertest"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox/outboxtest"
	"github.com/murkotick/showcase-catalog-service/internal/platform/storage"
)

type fixture struct {
	it        *Interactor
	committer *committertest.Recorder
	outbox    *outboxtest.Recorder
	files     *storage.Memory
}

func setup(maxBytes int64) fixture {
	f := fixture{
		committer: &committertest.Recorder{},
		outbox:    outboxtest.NewRecorder(),
		files:     storage.NewMemory(),
	}
	rm := testdouble.NewReadModel()
	rm.AddProduct(testdouble.ProductRow("p1", "drill"))
	policies := testdouble.Policies{Image: domain.UploadPolicy{
		MaxBytes:     maxBytes,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
	}}
	f.it = NewInteractor(repo.NewProductRepo(), repo.NewMemberRepo(), f.outbox, f.committer, rm, f.files, policies, clock.RealClock{})
	return f
}

func upload(name, contentType, body string, declared int64) shared.Upload {
	return shared.Upload{Filename: name, ContentType: contentType, Size: declared, Body: strings.NewReader(body)}
}

func TestUploadImage_StoresAndCommits(t *testing.T) {
	f := setup(1024)

	id, err := f.it.Execute(context.Background(), Request{
		ProductID: "p1",
		File:      upload("Photo.PNG", "image/png", "pngbytes", 8),
		SortOrder: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"products/p1/images/" + id + ".png"}, f.files.Keys())
	assert.Equal(t, 1, f.committer.Commits())
	assert.Equal(t, []string{"product.image_added"}, f.outbox.Types())
}

func TestUploadImage_RejectsTypeBeforeStoring(t *testing.T) {
	f := setup(1024)

	_, err := f.it.Execute(context.Background(), Request{ProductID: "p1", File: upload("a.gif", "image/gif", "gif", 3)})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
	assert.Empty(t, f.files.Keys())
	assert.Zero(t, f.committer.Commits())
}

func TestUploadImage_OversizedBodyIsDiscarded(t *testing.T) {
	f := setup(4)

	// declared size unknown, actual body larger than the limit
	_, err := f.it.Execute(context.Background(), Request{ProductID: "p1", File: upload("a.jpg", "image/jpeg", "0123456789", -1)})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Empty(t, f.files.Keys())
}

func TestUploadImage_FailedCommitRemovesFile(t *testing.T) {
	f := setup(1024)
	f.committer.Err = errors.New("aborted")

	_, err := f.it.Execute(context.Background(), Request{ProductID: "p1", File: upload("a.webp", "image/webp", "x", 1)})
	assert.Error(t, err)
	assert.Empty(t, f.files.Keys())
}

func TestUploadImage_UnknownProduct(t *testing.T) {
	f := setup(1024)
	_, err := f.it.Execute(context.Background(), Request{ProductID: "zz", File: upload("a.jpg", "image/jpeg", "x", 1)})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
