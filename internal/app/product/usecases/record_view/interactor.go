package record_view

import (
	"context"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
)

// Recorder counts recorded views. Optional.
type Recorder interface {
	ViewRecorded()
}

type Request struct {
	Slug string
}

// Interactor increments the view counter of a published product. Counting bypasses the
// outbox; views are not domain events.
type Interactor struct {
	Views    contracts.ViewCounter
	Recorder Recorder
}

func NewInteractor(views contracts.ViewCounter, recorder Recorder) *Interactor {
	return &Interactor{Views: views, Recorder: recorder}
}

// Execute returns the new view count.
func (it *Interactor) Execute(ctx context.Context, req Request) (int64, error) {
	n, err := it.Views.IncrementViews(ctx, req.Slug)
	if err != nil {
		return 0, shared.NotFound(err, domain.ErrProductNotFound)
	}
	if it.Recorder != nil {
		it.Recorder.ViewRecorded()
	}
	return n, nil
}
