package update_settings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/repo"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/testdouble"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/committer/committertest"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox/outboxtest"
)

type fixture struct {
	it        *Interactor
	rm        *testdouble.ReadModel
	committer *committertest.Recorder
	outbox    *outboxtest.Recorder
	level     *testdouble.Level
}

func setup() fixture {
	f := fixture{
		rm:        testdouble.NewReadModel(),
		committer: &committertest.Recorder{},
		outbox:    outboxtest.NewRecorder(),
		level:     &testdouble.Level{},
	}
	f.it = NewInteractor(repo.NewSettingsRepo(), f.outbox, f.committer, f.rm, testdouble.Defaults(), f.level, clock.RealClock{})
	return f
}

func strp(s string) *string { return &s }

func TestUpdateSettings_PersistsChangedKeys(t *testing.T) {
	f := setup()
	f.rm.Values[domain.KeyShopName] = "Old shop"

	got, err := f.it.Execute(context.Background(), Request{Patch: domain.Patch{
		ShopName:        strp("New shop"),
		BackgroundColor: strp("123"),
		LogLevel:        strp("INFO"),
	}})
	require.NoError(t, err)

	assert.Equal(t, "New shop", got.Miniapp.ShopName)
	assert.Equal(t, "#112233", got.Miniapp.BackgroundColor)
	require.Equal(t, 1, f.committer.Commits())
	// two upserts plus one outbox row
	assert.Len(t, f.committer.Last(), 3)
	assert.Equal(t, []string{"settings.updated"}, f.outbox.Types())

	var payload struct {
		Changes map[string]string `json:"changes"`
	}
	require.NoError(t, json.Unmarshal([]byte(f.outbox.Events[0].PayloadJSON), &payload))
	assert.Equal(t, map[string]string{
		domain.KeyShopName:        "New shop",
		domain.KeyBackgroundColor: "#112233",
	}, payload.Changes)
	assert.Empty(t, f.level.Set)
}

func TestUpdateSettings_AppliesLogLevel(t *testing.T) {
	f := setup()

	got, err := f.it.Execute(context.Background(), Request{Patch: domain.Patch{LogLevel: strp("warning")}})
	require.NoError(t, err)

	assert.Equal(t, "WARNING", got.LogLevel)
	assert.Equal(t, []zapcore.Level{zapcore.WarnLevel}, f.level.Set)
}

func TestUpdateSettings_NoChangeSkipsCommit(t *testing.T) {
	f := setup()

	got, err := f.it.Execute(context.Background(), Request{Patch: domain.Patch{
		ContactTelegramLink: strp("@support"),
	}})
	require.NoError(t, err)

	assert.Equal(t, "https://t.me/support", got.ContactTelegramLink)
	assert.Zero(t, f.committer.Commits())
}

func TestUpdateSettings_InvalidColor(t *testing.T) {
	f := setup()

	_, err := f.it.Execute(context.Background(), Request{Patch: domain.Patch{HintColor: strp("#12345G")}})
	assert.ErrorIs(t, err, domain.ErrInvalidColor)
	assert.Zero(t, f.committer.Commits())
}

func TestUpdateSettings_CommitFailureKeepsLevel(t *testing.T) {
	f := setup()
	f.committer.Err = errors.New("aborted")

	_, err := f.it.Execute(context.Background(), Request{Patch: domain.Patch{LogLevel: strp("DEBUG")}})
	assert.Error(t, err)
	assert.Empty(t, f.level.Set)
}
