package delete_image

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
	files := storage.NewMemory()
	for _, key := range []string{"products/p1/images/i1.jpg", "products/p2/images/j1.jpg"} {
		_, err := files.Save(context.Background(), key, strings.NewReader("x"), "image/jpeg")
		require.NoError(t, err)
	}
	rm := testdouble.NewReadModel()
	rm.AddProduct(testdouble.ProductRow("p1", "drill"))
	rm.AddProduct(testdouble.ProductRow("p2", "saw"))
	rm.Images = []dto.ImageDTO{
		{ImageID: "i1", ProductID: "p1", FilePath: "products/p1/images/i1.jpg"},
		{ImageID: "j1", ProductID: "p2", FilePath: "products/p2/images/j1.jpg"},
	}
	committer := &committertest.Recorder{}
	ob := outboxtest.NewRecorder()
	return NewInteractor(repo.NewProductRepo(), repo.NewMemberRepo(), ob, committer, rm, files, clock.RealClock{}), committer, ob, files
}

func TestDeleteImage_RemovesFileAfterCommit(t *testing.T) {
	it, committer, ob, files := setup(t)

	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "p1", ImageID: "i1"}))
	assert.Equal(t, 1, committer.Commits())
	assert.Equal(t, []string{"product.image_removed"}, ob.Types())
	assert.Equal(t, []string{"products/p2/images/j1.jpg"}, files.Keys())
}

func TestDeleteImage_FailedCommitKeepsFile(t *testing.T) {
	it, committer, _, files := setup(t)
	committer.Err = errors.New("aborted")

	assert.Error(t, it.Execute(context.Background(), Request{ProductID: "p1", ImageID: "i1"}))
	assert.Len(t, files.Keys(), 2)
}

func TestDeleteImage_ScopedToParent(t *testing.T) {
	it, committer, _, files := setup(t)

	err := it.Execute(context.Background(), Request{ProductID: "p1", ImageID: "j1"})
	assert.ErrorIs(t, err, domain.ErrImageNotFound)
	assert.Zero(t, committer.Commits())
	assert.Len(t, files.Keys(), 2)
}
