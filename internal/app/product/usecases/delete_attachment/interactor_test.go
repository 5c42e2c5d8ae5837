package delete_attachment

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
	for _, key := range []string{"products/p1/attachments/a1.pdf", "products/p2/attachments/b1.pdf"} {
		_, err := files.Save(context.Background(), key, strings.NewReader("%PDF"), "application/pdf")
		require.NoError(t, err)
	}
	rm := testdouble.NewReadModel()
	rm.AddProduct(testdouble.ProductRow("p1", "drill"))
	rm.AddProduct(testdouble.ProductRow("p2", "saw"))
	rm.Attachments = []dto.AttachmentDTO{
		{AttachmentID: "a1", ProductID: "p1", Title: "Manual", FilePath: "products/p1/attachments/a1.pdf"},
		{AttachmentID: "b1", ProductID: "p2", Title: "Manual", FilePath: "products/p2/attachments/b1.pdf"},
	}
	committer := &committertest.Recorder{}
	ob := outboxtest.NewRecorder()
	return NewInteractor(repo.NewProductRepo(), repo.NewMemberRepo(), ob, committer, rm, files, clock.RealClock{}), committer, ob, files
}

func TestDeleteAttachment_RemovesFileAfterCommit(t *testing.T) {
	it, committer, ob, files := setup(t)

	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "p1", AttachmentID: "a1"}))
	assert.Equal(t, 1, committer.Commits())
	assert.Equal(t, []string{"product.attachment_removed"}, ob.Types())
	assert.Equal(t, []string{"products/p2/attachments/b1.pdf"}, files.Keys())
}

func TestDeleteAttachment_FailedCommitKeepsFile(t *testing.T) {
	it, committer, _, files := setup(t)
	committer.Err = errors.New("aborted")

	assert.Error(t, it.Execute(context.Background(), Request{ProductID: "p1", AttachmentID: "a1"}))
	assert.Len(t, files.Keys(), 2)
}

func TestDeleteAttachment_ScopedToParent(t *testing.T) {
	it, committer, _, _ := setup(t)

	err := it.Execute(context.Background(), Request{ProductID: "p1", AttachmentID: "b1"})
	assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
	assert.Zero(t, committer.Commits())
}
