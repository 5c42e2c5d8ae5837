package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catID = "0b6e3c58-7b0b-4d7e-9f1e-6a8f5c1d2e01"

func strp(s string) *string { return &s }

func TestNewCategory(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c, err := NewCategory(catID, Fields{Name: "  Tools ", Slug: "tools", ParentID: strp(" ")}, now)
	require.NoError(t, err)

	assert.Equal(t, "Tools", c.Fields().Name)
	assert.Nil(t, c.Fields().ParentID)
	require.Len(t, c.DomainEvents(), 1)
	assert.Equal(t, "category.created", c.DomainEvents()[0].EventType())
}

func TestNewCategory_Validation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		f    Fields
		want error
	}{
		{"empty name", Fields{Name: " ", Slug: "a"}, ErrEmptyName},
		{"bad slug", Fields{Name: "A", Slug: "Нет"}, ErrInvalidSlug},
		{"parent not uuid", Fields{Name: "A", Slug: "a", ParentID: strp("x")}, ErrInvalidParent},
		{"own parent", Fields{Name: "A", Slug: "a", ParentID: strp(catID)}, ErrInvalidParent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCategory(catID, tt.f, now)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCategoryUpdate(t *testing.T) {
	c := ReconstructCategory(catID, Fields{Name: "Tools", Slug: "tools"}, time.Time{}, time.Time{})

	changed, err := c.Update(Patch{Name: SetTo("Tools")}, time.Now())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, c.DomainEvents())

	changed, err = c.Update(Patch{SortOrder: SetTo(4), Slug: SetTo("hand-tools")}, time.Now())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, c.Dirty(FieldSortOrder))
	assert.True(t, c.Dirty(FieldSlug))
	assert.False(t, c.Dirty(FieldName))
	assert.Len(t, c.DomainEvents(), 1)
}
