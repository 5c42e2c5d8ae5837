package repo

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	"github.com/murkotick/showcase-catalog-service/internal/models/m_category"
)

func TestBuildInsertValues(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	c, err := domain.NewCategory("0b6e3c58-7b0b-4d7e-9f1e-6a8f5c1d2e01", domain.Fields{Name: "Tools", Slug: "tools", SortOrder: 2}, now)
	require.NoError(t, err)

	v := buildInsertValues(c)
	assert.Equal(t, "tools", v[m_category.ColSlug])
	assert.Equal(t, int64(2), v[m_category.ColSortOrder])
	assert.Equal(t, spanner.NullString{}, v[m_category.ColParentID])
	assert.Equal(t, now, v[m_category.ColCreatedAt])
}

func TestBuildUpdateValues_OnlyDirty(t *testing.T) {
	c := domain.ReconstructCategory("0b6e3c58-7b0b-4d7e-9f1e-6a8f5c1d2e01", domain.Fields{Name: "Tools", Slug: "tools"}, time.Time{}, time.Time{})
	_, err := c.Update(domain.Patch{Name: domain.SetTo("Hand tools")}, time.Now())
	require.NoError(t, err)

	v := buildUpdateValues(c)
	assert.Len(t, v, 2)
	assert.Equal(t, "Hand tools", v[m_category.ColName])
	assert.Contains(t, v, m_category.ColUpdatedAt)

	assert.Nil(t, NewCategoryRepo().UpdateMut(domain.ReconstructCategory("x", domain.Fields{}, time.Time{}, time.Time{})))
}
