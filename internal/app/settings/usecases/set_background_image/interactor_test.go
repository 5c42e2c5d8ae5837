package set_background_image

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	productshared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/repo"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/testdouble"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/committer/committertest"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox/outboxtest"
	"github.com/murkotick/showcase-catalog-service/internal/platform/storage"
)

type fixture struct {
	it        *Interactor
	rm        *testdouble.ReadModel
	committer *committertest.Recorder
	files     *storage.Memory
}

func setup() fixture {
	f := fixture{
		rm:        testdouble.NewReadModel(),
		committer: &committertest.Recorder{},
		files:     storage.NewMemory(),
	}
	f.it = NewInteractor(repo.NewSettingsRepo(), outboxtest.NewRecorder(), f.committer, f.rm, f.files, testdouble.Defaults(), clock.RealClock{})
	return f
}

func upload(name, contentType, body string) productshared.Upload {
	return productshared.Upload{Filename: name, ContentType: contentType, Size: int64(len(body)), Body: strings.NewReader(body)}
}

func TestSetBackground_ReplacesPrevious(t *testing.T) {
	f := setup()
	ctx := context.Background()
	_, err := f.files.Save(ctx, "settings/background_old.png", strings.NewReader("old"), "image/png")
	require.NoError(t, err)
	f.rm.AddBackground("old", "settings/background_old.png")

	res, err := f.it.Execute(ctx, Request{File: upload("sky.webp", "image/webp", "webp")})
	require.NoError(t, err)

	assert.Equal(t, "/api/files/"+res.ID, res.URL)
	assert.Equal(t, []string{"settings/background_" + res.ID + ".webp"}, f.files.Keys())
	// insert asset, delete old asset, upsert setting, outbox row
	assert.Len(t, f.committer.Last(), 4)
}

func TestSetBackground_DefaultExtension(t *testing.T) {
	f := setup()

	res, err := f.it.Execute(context.Background(), Request{File: upload("blob", "image/jpeg", "jpg")})
	require.NoError(t, err)
	assert.Equal(t, []string{"settings/background_" + res.ID + ".jpg"}, f.files.Keys())
	assert.Len(t, f.committer.Last(), 3)
}

func TestSetBackground_RejectsType(t *testing.T) {
	f := setup()

	_, err := f.it.Execute(context.Background(), Request{File: upload("bg.gif", "image/gif", "gif")})
	assert.ErrorIs(t, err, productdomain.ErrUnsupportedMediaType)
	assert.Empty(t, f.files.Keys())
	assert.Zero(t, f.committer.Commits())
}

func TestSetBackground_CommitFailureDiscardsFile(t *testing.T) {
	f := setup()
	f.committer.Err = errors.New("aborted")

	_, err := f.it.Execute(context.Background(), Request{File: upload("bg.png", "image/png", "png")})
	assert.Error(t, err)
	assert.Empty(t, f.files.Keys())
}
