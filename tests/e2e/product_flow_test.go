package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categorydomain "github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/create_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/delete_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/get_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/list_published"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/add_variant"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/record_view"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/update_product"
)

// uniqueSlug keeps slugs apart between tests sharing one database.
func uniqueSlug(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

func strp(s string) *string { return &s }

func createProduct(ctx context.Context, t *testing.T, d domain.Details) *create_product.Response {
	t.Helper()
	res, err := createUC.Execute(ctx, create_product.Request{Details: d})
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)
	return res
}

func TestProductCreationFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	price, err := domain.NewMoneyFromDecimal("4990.50")
	require.NoError(t, err)
	created := createProduct(ctx, t, domain.Details{
		Slug:        uniqueSlug("drel-udarnaya"),
		Title:       "Дрель ударная",
		SKU:         strp("DR-100"),
		Description: strp(`<p>Power <script>alert(1)</script>tool</p>`),
		Hashtags:    strp("#tools drills"),
		Price:       price,
	})

	prod, err := get_product.NewHandler(readModel).Execute(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.Slug, prod.Product.Slug)
	assert.Equal(t, "Дрель ударная", prod.Product.Title)
	assert.False(t, prod.Product.IsPublished)
	assert.Zero(t, prod.Product.ViewCount)
	require.NotNil(t, prod.Product.PriceAmount)
	assert.Equal(t, "4990.50", *prod.Product.PriceAmount)
	require.NotNil(t, prod.Product.PriceCurrency)
	assert.Equal(t, domain.DefaultCurrency, *prod.Product.PriceCurrency)
	require.NotNil(t, prod.Product.Description)
	assert.NotContains(t, *prod.Product.Description, "<script>")
	require.NotNil(t, prod.Product.Hashtags)
	assert.Equal(t, "#tools #drills", *prod.Product.Hashtags)

	events := mustFetchOutboxEvents(ctx, t, spClient, created.ID)
	require.Len(t, events, 1)
	assert.Equal(t, "product.created", events[0].EventType)
	assert.Equal(t, "pending", events[0].Status)
}

func TestDuplicateSlugIsRejected(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slug := uniqueSlug("duplicate")
	createProduct(ctx, t, domain.Details{Slug: slug, Title: "First"})

	_, err := createUC.Execute(ctx, create_product.Request{Details: domain.Details{Slug: slug, Title: "Second"}})
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestPublishFlow_StorefrontAndViews(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created := createProduct(ctx, t, domain.Details{Slug: uniqueSlug("storefront"), Title: "Storefront product"})
	published := list_published.NewHandler(readModel)

	// Drafts are invisible to the storefront and cannot be viewed.
	_, err := published.Detail(ctx, created.Slug)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = recordViewUC.Execute(ctx, record_view.Request{Slug: created.Slug})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	price, err := domain.NewMoneyFromDecimal("100")
	require.NoError(t, err)
	require.NoError(t, updateUC.Execute(ctx, update_product.Request{
		ProductID: created.ID,
		Patch: domain.Patch{
			IsPublished: domain.SetTo(true),
			Price:       domain.SetTo(price),
		},
	}))

	detail, err := published.Detail(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, detail.Product.ProductID)

	page, err := published.List(ctx, dto.PublicListFilter{Page: 1, PerPage: 100})
	require.NoError(t, err)
	found := false
	for _, row := range page.Items {
		if row.ProductID == created.ID {
			found = true
			require.NotNil(t, row.PriceAmount)
			assert.Equal(t, "100.00", *row.PriceAmount)
		}
	}
	assert.True(t, found, "published product must be listed")

	before, err := get_product.NewHandler(readModel).Execute(ctx, created.ID)
	require.NoError(t, err)
	for want := int64(1); want <= 2; want++ {
		n, err := recordViewUC.Execute(ctx, record_view.Request{Slug: created.Slug})
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	after, err := get_product.NewHandler(readModel).Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), after.Product.ViewCount)
	assert.Equal(t, before.Product.UpdatedAt, after.Product.UpdatedAt, "views must not touch updated_at")

	// The fake clock stamps every event alike, so only the set of types is stable.
	types := eventTypes(mustFetchOutboxEvents(ctx, t, spClient, created.ID))
	assert.ElementsMatch(t, []string{"product.created", "price.changed", "product.published"}, types)
}

func TestUpdateWithoutChangesWritesNoEvent(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created := createProduct(ctx, t, domain.Details{Slug: uniqueSlug("unchanged"), Title: "Same"})
	require.NoError(t, updateUC.Execute(ctx, update_product.Request{
		ProductID: created.ID,
		Patch:     domain.Patch{Title: domain.SetTo("  Same  ")},
	}))

	events := mustFetchOutboxEvents(ctx, t, spClient, created.ID)
	assert.Equal(t, []string{"product.created"}, eventTypes(events))
	assert.Contains(t, events[0].Payload, created.Slug)
}

func TestVariantsCascadeWithProduct(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created := createProduct(ctx, t, domain.Details{Slug: uniqueSlug("variants"), Title: "With variants"})
	variantID, err := addVariantUC.Execute(ctx, add_variant.Request{
		ProductID: created.ID,
		Fields:    domain.VariantFields{OptionName: "Color", OptionValue: "Red", StockQty: 5, InOrderQty: 1},
	})
	require.NoError(t, err)

	prod, err := get_product.NewHandler(readModel).Execute(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, prod.Variants, 1)
	assert.Equal(t, variantID, prod.Variants[0].VariantID)
	assert.Equal(t, int64(5), prod.Variants[0].StockQty)

	require.NoError(t, deleteUC.Execute(ctx, delete_product.Request{ProductID: created.ID}))
	_, err = get_product.NewHandler(readModel).Execute(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	types := eventTypes(mustFetchOutboxEvents(ctx, t, spClient, created.ID))
	assert.ElementsMatch(t, []string{"product.created", "product.variant_added", "product.deleted"}, types)
}

func TestDeletingCategoryDetachesProducts(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat, err := createCategoryUC.Execute(ctx, create_category.Request{
		Fields: categorydomain.Fields{Name: "Power tools", Slug: uniqueSlug("power-tools")},
	})
	require.NoError(t, err)

	created := createProduct(ctx, t, domain.Details{
		Slug:       uniqueSlug("categorized"),
		Title:      "In a category",
		CategoryID: strp(cat.ID),
	})

	require.NoError(t, deleteCategoryUC.Execute(ctx, delete_category.Request{CategoryID: cat.ID}))

	prod, err := get_product.NewHandler(readModel).Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, prod.Product.CategoryID)

	_, err = createUC.Execute(ctx, create_product.Request{Details: domain.Details{
		Slug:       uniqueSlug("orphan"),
		Title:      "Unknown category",
		CategoryID: strp(cat.ID),
	}})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}
