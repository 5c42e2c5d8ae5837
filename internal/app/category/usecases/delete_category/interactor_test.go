package delete_category

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/repo"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/committer/committertest"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox/outboxtest"
)

type fakeReadModel struct {
	categories map[string]dto.CategoryDTO
	products   map[string][]string
}

func (f *fakeReadModel) ListCategories(context.Context) ([]dto.CategoryDTO, error) {
	return nil, nil
}

func (f *fakeReadModel) GetCategory(_ context.Context, id string) (*dto.CategoryDTO, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, spanner.ErrRowNotFound
	}
	return &c, nil
}

func (f *fakeReadModel) ProductIDsInCategory(_ context.Context, id string) ([]string, error) {
	return f.products[id], nil
}

func (f *fakeReadModel) ChildCategoryIDs(_ context.Context, id string) ([]string, error) {
	var out []string
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == id {
			out = append(out, c.CategoryID)
		}
	}
	return out, nil
}

func TestDeleteCategory_DetachesProductsAndChildren(t *testing.T) {
	parent := "c-1"
	rm := &fakeReadModel{
		categories: map[string]dto.CategoryDTO{
			"c-1": {CategoryID: "c-1", Name: "Tools", Slug: "tools"},
			"c-2": {CategoryID: "c-2", Name: "Drills", Slug: "drills", ParentID: &parent},
		},
		products: map[string][]string{"c-1": {"p1", "p2"}},
	}
	committer := &committertest.Recorder{}
	ob := outboxtest.NewRecorder()
	it := NewInteractor(repo.NewCategoryRepo(), ob, committer, rm, clock.NewFake(time.Unix(0, 0)))

	require.NoError(t, it.Execute(context.Background(), Request{CategoryID: "c-1"}))

	// two product detaches + one child detach + delete + outbox row
	assert.Len(t, committer.Last(), 5)
	assert.Equal(t, []string{"category.deleted"}, ob.Types())
	assert.Contains(t, ob.Events[0].PayloadJSON, `"slug":"tools"`)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	rm := &fakeReadModel{categories: map[string]dto.CategoryDTO{}}
	it := NewInteractor(repo.NewCategoryRepo(), outboxtest.NewRecorder(), &committertest.Recorder{}, rm, clock.RealClock{})

	assert.ErrorIs(t, it.Execute(context.Background(), Request{CategoryID: "x"}), domain.ErrCategoryNotFound)
}
