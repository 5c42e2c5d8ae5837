package add_spec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/repo"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/testdouble"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/committer/committertest"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox/outboxtest"
)

func TestAddSpec(t *testing.T) {
	committer := &committertest.Recorder{}
	ob := outboxtest.NewRecorder()
	rm := testdouble.NewReadModel()
	rm.AddProduct(testdouble.ProductRow("p1", "drill"))
	it := NewInteractor(repo.NewProductRepo(), repo.NewMemberRepo(), ob, committer, rm,
		clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))

	id, err := it.Execute(context.Background(), Request{ProductID: "p1", Fields: domain.SpecFields{
		Name: " Weight ", Value: "2.5", SortOrder: 3,
	}})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// spec insert + parent updated_at stamp + outbox row
	assert.Len(t, committer.Last(), 3)
	assert.Equal(t, []string{"product.spec_added"}, ob.Types())
	assert.Contains(t, ob.Events[0].PayloadJSON, id)
}

func TestAddSpec_Errors(t *testing.T) {
	committer := &committertest.Recorder{}
	rm := testdouble.NewReadModel()
	rm.AddProduct(testdouble.ProductRow("p1", "drill"))
	it := NewInteractor(repo.NewProductRepo(), repo.NewMemberRepo(), outboxtest.NewRecorder(), committer, rm, clock.RealClock{})

	_, err := it.Execute(context.Background(), Request{ProductID: "nope", Fields: domain.SpecFields{Name: "a", Value: "b"}})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = it.Execute(context.Background(), Request{ProductID: "p1", Fields: domain.SpecFields{Name: "a"}})
	assert.ErrorIs(t, err, domain.ErrEmptySpecValue)
	assert.Zero(t, committer.Commits())
}
