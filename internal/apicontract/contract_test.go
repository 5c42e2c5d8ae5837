package apicontract

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_DistinguishesAbsentFromNull(t *testing.T) {
	var patch ProductPatch
	require.NoError(t, json.Unmarshal([]byte(`{"sku": null, "manufacturer": "Acme"}`), &patch))

	assert.True(t, patch.SKU.Set)
	assert.False(t, patch.SKU.Valid)

	assert.True(t, patch.Manufacturer.Set)
	assert.True(t, patch.Manufacturer.Valid)
	assert.Equal(t, "Acme", patch.Manufacturer.Value)

	assert.False(t, patch.Description.Set)
	assert.Nil(t, patch.Description.Ptr())
}

func TestProductPatch_OmitsUnsetFields(t *testing.T) {
	title := "Boots"
	patch := ProductPatch{Title: &title, SKU: Null[string]()}

	b, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Boots","sku":null}`, string(b))
}

func TestPriceMarshalsAsNumber(t *testing.T) {
	price := decimal.RequireFromString("1999.90")
	b, err := json.Marshal(ProductSummary{ID: "p1", Slug: "s", PriceAmount: &price})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"price_amount":1999.9`)
}

func TestPatchFromInput_SetsEveryField(t *testing.T) {
	patch := PatchFromInput(ProductInput{Slug: "boots", Title: "Boots", SortOrder: 3})

	require.NotNil(t, patch.Slug)
	assert.Equal(t, "boots", *patch.Slug)
	assert.True(t, patch.SKU.Set)
	assert.False(t, patch.SKU.Valid)
	require.NotNil(t, patch.SortOrder)
	assert.Equal(t, 3, *patch.SortOrder)
}

func TestValidate(t *testing.T) {
	err := Validate(&ProductListResponse{Page: 0, PerPage: 10})
	require.ErrorIs(t, err, ErrInvalidContract)

	err = Validate(&ProductListResponse{
		Page:    1,
		PerPage: 10,
		Items:   []ProductSummary{{ID: "", Slug: "x"}},
	})
	require.ErrorIs(t, err, ErrInvalidContract)

	require.NoError(t, Validate(&ProductListResponse{Page: 1, PerPage: 10, Total: 0}))

	zero := 0
	require.NoError(t, Validate(&ImageSortUpdate{SortOrder: &zero}))
	require.Error(t, Validate(&ImageSortUpdate{}))
}
