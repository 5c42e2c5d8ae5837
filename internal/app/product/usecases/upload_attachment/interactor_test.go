package upload_attachment

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

func setup() fixture {
	f := fixture{
		committer: &committertest.Recorder{},
		outbox:    outboxtest.NewRecorder(),
		files:     storage.NewMemory(),
	}
	rm := testdouble.NewReadModel()
	rm.AddProduct(testdouble.ProductRow("p1", "drill"))
	policies := testdouble.Policies{Attachment: domain.UploadPolicy{
		MaxBytes:     1024,
		AllowedTypes: []string{"application/pdf"},
	}}
	f.it = NewInteractor(repo.NewProductRepo(), repo.NewMemberRepo(), f.outbox, f.committer, rm, f.files, policies, clock.RealClock{})
	return f
}

func pdf(name string) shared.Upload {
	return shared.Upload{Filename: name, ContentType: "application/pdf", Size: 4, Body: strings.NewReader("%PDF")}
}

func TestUploadAttachment_StoresAndCommits(t *testing.T) {
	f := setup()

	id, err := f.it.Execute(context.Background(), Request{ProductID: "p1", File: pdf("Manual.PDF"), Title: "Manual"})
	require.NoError(t, err)

	assert.Equal(t, []string{"products/p1/attachments/" + id + ".pdf"}, f.files.Keys())
	assert.Equal(t, 1, f.committer.Commits())
	assert.Equal(t, []string{"product.attachment_added"}, f.outbox.Types())
}

func TestUploadAttachment_RejectsTypeBeforeStoring(t *testing.T) {
	f := setup()

	_, err := f.it.Execute(context.Background(), Request{ProductID: "p1", File: shared.Upload{
		Filename: "run.exe", ContentType: "application/x-msdownload", Size: 2, Body: strings.NewReader("MZ"),
	}})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
	assert.Empty(t, f.files.Keys())
	assert.Zero(t, f.committer.Commits())
}

func TestUploadAttachment_FailedCommitRemovesFile(t *testing.T) {
	f := setup()
	f.committer.Err = errors.New("aborted")

	_, err := f.it.Execute(context.Background(), Request{ProductID: "p1", File: pdf("a.pdf")})
	assert.Error(t, err)
	assert.Empty(t, f.files.Keys())
}

func TestUploadAttachment_UnknownProduct(t *testing.T) {
	f := setup()
	_, err := f.it.Execute(context.Background(), Request{ProductID: "zz", File: pdf("a.pdf")})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, f.files.Keys())
}
