package delete_spec

import (
	"context"
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
)

func setup() (*Interactor, *committertest.Recorder, *outboxtest.Recorder) {
	committer := &committertest.Recorder{}
	ob := outboxtest.NewRecorder()
	rm := testdouble.NewReadModel()
	rm.AddProduct(testdouble.ProductRow("p1", "drill"))
	rm.AddProduct(testdouble.ProductRow("p2", "saw"))
	rm.Specs = []dto.SpecDTO{{SpecID: "s1", ProductID: "p1", Name: "Weight", Value: "2.5"}}
	return NewInteractor(repo.NewProductRepo(), repo.NewMemberRepo(), ob, committer, rm, clock.RealClock{}), committer, ob
}

func TestDeleteSpec(t *testing.T) {
	it, committer, ob := setup()

	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "p1", SpecID: "s1"}))
	assert.Equal(t, 1, committer.Commits())
	assert.Equal(t, []string{"product.spec_removed"}, ob.Types())
}

func TestDeleteSpec_ScopedToParent(t *testing.T) {
	it, committer, ob := setup()

	assert.ErrorIs(t, it.Execute(context.Background(), Request{ProductID: "p2", SpecID: "s1"}), domain.ErrSpecNotFound)
	assert.ErrorIs(t, it.Execute(context.Background(), Request{ProductID: "p1", SpecID: "nope"}), domain.ErrSpecNotFound)
	assert.Zero(t, committer.Commits())
	assert.Empty(t, ob.Types())
}
