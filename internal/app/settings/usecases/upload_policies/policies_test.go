package upload_policies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/testdouble"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/get_settings"
)

func TestPolicies_FollowStoredSettings(t *testing.T) {
	rm := testdouble.NewReadModel()
	rm.Values[domain.KeyMaxFileSizeMB] = "2"
	rm.Values[domain.KeyAllowedAttachmentTypes] = "application/pdf"
	p := New(get_settings.NewInteractor(rm, testdouble.Defaults()))

	img, err := p.ImagePolicy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2*1024*1024), img.MaxBytes)
	assert.Equal(t, []string{"image/jpeg", "image/png", "image/webp"}, img.AllowedTypes)

	att, err := p.AttachmentPolicy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"application/pdf"}, att.AllowedTypes)
}
