package delete_product

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/repo"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/testdouble"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/committer/committertest"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox/outboxtest"
	"github.com/murkotick/showcase-catalog-service/internal/platform/storage"
)

func setup(t *testing.T) (*Interactor, *committertest.Recorder, *outboxtest.Recorder, *storage.Memory) {
	t.Helper()
	ctx := context.Background()
	files := storage.NewMemory()
	for _, key := range []string{"products/p1/images/i1.jpg", "products/p1/attachments/a1.pdf", "products/p2/images/i2.jpg"} {
		_, err := files.Save(ctx, key, strings.NewReader("x"), "")
		require.NoError(t, err)
	}

	rm := testdouble.NewReadModel()
	rm.AddProduct(testdouble.ProductRow("p1", "drill"))
	rm.Images = []dto.ImageDTO{
		{ImageID: "i1", ProductID: "p1", FilePath: "products/p1/images/i1.jpg"},
		{ImageID: "i2", ProductID: "p2", FilePath: "products/p2/images/i2.jpg"},
	}
	rm.Attachments = []dto.AttachmentDTO{{AttachmentID: "a1", ProductID: "p1", FilePath: "products/p1/attachments/a1.pdf"}}

	committer := &committertest.Recorder{}
	ob := outboxtest.NewRecorder()
	return NewInteractor(repo.NewProductRepo(), ob, committer, rm, files, clock.RealClock{}), committer, ob, files
}

func TestDeleteProduct_RemovesOwnFilesAfterCommit(t *testing.T) {
	it, committer, ob, files := setup(t)

	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "p1"}))
	assert.Equal(t, 1, committer.Commits())
	assert.Equal(t, []string{"product.deleted"}, ob.Types())
	assert.Equal(t, []string{"products/p2/images/i2.jpg"}, files.Keys())
}

func TestDeleteProduct_FailedCommitKeepsFiles(t *testing.T) {
	it, committer, _, files := setup(t)
	committer.Err = errors.New("aborted")

	assert.Error(t, it.Execute(context.Background(), Request{ProductID: "p1"}))
	assert.Len(t, files.Keys(), 3)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	it, _, _, _ := setup(t)
	assert.ErrorIs(t, it.Execute(context.Background(), Request{ProductID: "nope"}), domain.ErrProductNotFound)
}
