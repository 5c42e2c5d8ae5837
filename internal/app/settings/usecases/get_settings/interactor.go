package get_settings

import (
	"context"

	"github.com/murkotick/showcase-catalog-service/internal/app/settings/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/shared"
)

// Interactor returns the effective settings. Defaults come from process configuration.
type Interactor struct {
	ReadModel contracts.ReadModel
	Defaults  domain.Settings
}

func NewInteractor(readModel contracts.ReadModel, defaults domain.Settings) *Interactor {
	return &Interactor{ReadModel: readModel, Defaults: defaults}
}

func (it *Interactor) Execute(ctx context.Context) (domain.Settings, error) {
	return shared.Load(ctx, it.ReadModel, it.Defaults)
}

// Miniapp is the public storefront subset.
func (it *Interactor) Miniapp(ctx context.Context) (domain.Miniapp, string, error) {
	s, err := it.Execute(ctx)
	if err != nil {
		return domain.Miniapp{}, "", err
	}
	return s.Miniapp, s.ContactTelegramLink, nil
}
