// Package upload_policies exposes the editable upload limits to the product usecases.
package upload_policies

import (
	"context"

	productdomain "github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
)

// SettingsSource returns the effective settings; get_settings.Interactor satisfies it.
type SettingsSource interface {
	Execute(ctx context.Context) (domain.Settings, error)
}

// Policies reads the limits on every call, so a settings change applies to the next upload.
type Policies struct {
	Settings SettingsSource
}

func New(src SettingsSource) *Policies {
	return &Policies{Settings: src}
}

func (p *Policies) ImagePolicy(ctx context.Context) (productdomain.UploadPolicy, error) {
	s, err := p.Settings.Execute(ctx)
	if err != nil {
		return productdomain.UploadPolicy{}, err
	}
	return productdomain.NewUploadPolicy(s.MaxFileSizeMB, s.AllowedImageTypes), nil
}

func (p *Policies) AttachmentPolicy(ctx context.Context) (productdomain.UploadPolicy, error) {
	s, err := p.Settings.Execute(ctx)
	if err != nil {
		return productdomain.UploadPolicy{}, err
	}
	return productdomain.NewUploadPolicy(s.MaxFileSizeMB, s.AllowedAttachmentTypes), nil
}
