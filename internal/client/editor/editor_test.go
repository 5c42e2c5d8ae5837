package editor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
	"github.com/murkotick/showcase-catalog-service/internal/client/reorder"
)

// fakeClient keeps one product aggregate in memory and records every call by name.
type fakeClient struct {
	product *apicontract.ProductAggregate
	calls   []string
	errs    map[string]error
	nextID  int

	created      *apicontract.ProductInput
	patched      *apicontract.ProductPatch
	sortSets     []string
	deletedFiles []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{errs: map[string]error{}}
}

func (f *fakeClient) record(name string) error {
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeClient) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeClient) GetProduct(_ context.Context, id string) (*apicontract.ProductAggregate, error) {
	if err := f.record("GetProduct"); err != nil {
		return nil, err
	}
	if f.product == nil || f.product.ID != id {
		return nil, &admin.HTTPError{Status: http.StatusNotFound, Detail: "Product not found"}
	}
	cp := *f.product
	return &cp, nil
}

func (f *fakeClient) CreateProduct(_ context.Context, in apicontract.ProductInput) (*apicontract.CreatedProduct, error) {
	if err := f.record("CreateProduct"); err != nil {
		return nil, err
	}
	f.created = &in
	f.product = &apicontract.ProductAggregate{
		ID: "p-new", Slug: in.Slug, Title: in.Title, PriceAmount: in.PriceAmount, PriceCurrency: in.PriceCurrency,
		Images: []apicontract.Image{}, Attachments: []apicontract.Attachment{},
		Specs: []apicontract.Spec{}, Variants: []apicontract.Variant{},
	}
	return &apicontract.CreatedProduct{ID: "p-new", Slug: in.Slug}, nil
}

func (f *fakeClient) UpdateProduct(_ context.Context, id string, patch apicontract.ProductPatch) (*apicontract.IDResponse, error) {
	if err := f.record("UpdateProduct"); err != nil {
		return nil, err
	}
	f.patched = &patch
	return &apicontract.IDResponse{ID: id}, nil
}

func (f *fakeClient) AddSpec(context.Context, string, apicontract.SpecInput) (string, error) {
	if err := f.record("AddSpec"); err != nil {
		return "", err
	}
	return f.id("spec"), nil
}

func (f *fakeClient) UpdateSpec(_ context.Context, _, specID string, patch apicontract.SpecPatch) error {
	if patch.SortOrder != nil {
		f.sortSets = append(f.sortSets, fmt.Sprintf("%s=%d", specID, *patch.SortOrder))
	}
	return f.record("UpdateSpec")
}

func (f *fakeClient) DeleteSpec(context.Context, string, string) error { return f.record("DeleteSpec") }

func (f *fakeClient) AddVariant(context.Context, string, apicontract.VariantInput) (string, error) {
	if err := f.record("AddVariant"); err != nil {
		return "", err
	}
	return f.id("variant"), nil
}

func (f *fakeClient) UpdateVariant(context.Context, string, string, apicontract.VariantPatch) error {
	return f.record("UpdateVariant")
}

func (f *fakeClient) DeleteVariant(context.Context, string, string) error {
	return f.record("DeleteVariant")
}

func (f *fakeClient) UploadImage(_ context.Context, _ string, file admin.File, _ string, sortOrder int) (*apicontract.UploadedFile, error) {
	if err := f.record("UploadImage"); err != nil {
		return nil, err
	}
	if strings.HasSuffix(file.Name, ".exe") {
		return nil, &admin.HTTPError{Status: http.StatusBadRequest, Detail: "Unsupported image type"}
	}
	id := f.id("img")
	return &apicontract.UploadedFile{ID: id, URL: apicontract.FileURL(id)}, nil
}

func (f *fakeClient) UpdateImageSort(_ context.Context, _, imageID string, sortOrder int) error {
	f.sortSets = append(f.sortSets, fmt.Sprintf("%s=%d", imageID, sortOrder))
	return f.record("UpdateImageSort")
}

func (f *fakeClient) ReorderImages(_ context.Context, _ string, ids []string) error {
	f.sortSets = append(f.sortSets, strings.Join(ids, ","))
	return f.record("ReorderImages")
}

func (f *fakeClient) UploadAttachment(context.Context, string, admin.File, string, int) (*apicontract.UploadedFile, error) {
	if err := f.record("UploadAttachment"); err != nil {
		return nil, err
	}
	id := f.id("att")
	return &apicontract.UploadedFile{ID: id, URL: apicontract.FileURL(id)}, nil
}

func (f *fakeClient) DeleteFile(_ context.Context, fileID string) error {
	f.deletedFiles = append(f.deletedFiles, fileID)
	return f.record("DeleteFile")
}

func existing() *apicontract.ProductAggregate {
	sku := "DR-1"
	price := decimal.RequireFromString("1299.90")
	return &apicontract.ProductAggregate{
		ID: "p1", Slug: "drill", Title: "Drill", SKU: &sku, PriceAmount: &price, ViewCount: 9,
		Images: []apicontract.Image{
			{ID: "i1", URL: "/api/files/i1", SortOrder: 0},
			{ID: "i2", URL: "/api/files/i2", SortOrder: 1},
		},
		Specs: []apicontract.Spec{{ID: "s1", Name: "Power", Value: "800", SortOrder: 0}},
	}
}

func openExisting(t *testing.T) (*Editor, *fakeClient) {
	t.Helper()
	client := newFakeClient()
	client.product = existing()
	e, err := Open(context.Background(), client, "p1")
	require.NoError(t, err)
	client.calls = nil
	return e, client
}

func TestNew_GuardsCollections(t *testing.T) {
	client := newFakeClient()
	e := New(client)
	ctx := context.Background()

	assert.Equal(t, PhaseReady, e.Phase())
	assert.True(t, e.IsNew())

	_, err := e.AddSpec(ctx, apicontract.SpecInput{Name: "a", Value: "b"})
	assert.ErrorIs(t, err, ErrNotPersisted)
	_, err = e.UploadImages(ctx, []admin.File{{Name: "a.png"}}, "")
	assert.ErrorIs(t, err, ErrNotPersisted)
	assert.ErrorIs(t, e.MoveImage(ctx, 0, reorder.Down), ErrNotPersisted)
	assert.Empty(t, client.calls)
}

func TestSubmit_CreateSwitchesToEditMode(t *testing.T) {
	client := newFakeClient()
	e := New(client)
	ctx := context.Background()

	e.SetTitle("Дрель ударная")
	assert.Equal(t, "drel-udarnaya", e.Fields().Slug)
	e.Edit(func(f *Fields) {
		f.Price = "1499,50"
		f.Currency = "rub"
	})

	require.NoError(t, e.Submit(ctx))
	assert.Equal(t, []string{"CreateProduct", "GetProduct"}, client.calls)
	assert.Equal(t, "p-new", e.ID())
	assert.False(t, e.IsNew())
	assert.Equal(t, PhaseReady, e.Phase())
	require.NotNil(t, client.created.PriceAmount)
	assert.Equal(t, "1499.5", client.created.PriceAmount.String())
	assert.Equal(t, "RUB", *client.created.PriceCurrency)
	assert.Nil(t, client.created.SKU)

	id, err := e.AddSpec(ctx, apicontract.SpecInput{Name: "Power", Value: "800"})
	require.NoError(t, err)
	assert.Equal(t, []apicontract.Spec{{ID: id, Name: "Power", Value: "800"}}, e.Specs())
}

func TestSlugSync(t *testing.T) {
	e := New(newFakeClient())
	e.SetTitle("Hello World")
	assert.Equal(t, "hello-world", e.Fields().Slug)

	e.SetSlug("custom")
	e.SetTitle("Something else")
	assert.Equal(t, "custom", e.Fields().Slug, "a typed slug stops the sync")

	e.SetSlug("")
	e.SetTitle("Back Again")
	assert.Equal(t, "back-again", e.Fields().Slug, "an empty slug is derived again")

	edit, _ := openExisting(t)
	edit.SetTitle("Renamed drill")
	assert.Equal(t, "drill", edit.Fields().Slug, "existing products keep their slug")
}

func TestHashtagsNormaliseOnBlur(t *testing.T) {
	e := New(newFakeClient())
	e.SetHashtags("  tag1 #tag2  weird#chars! ")
	assert.Equal(t, "  tag1 #tag2  weird#chars! ", e.Fields().Hashtags)
	e.BlurHashtags()
	assert.Equal(t, "#tag1 #tag2 #weirdchars", e.Fields().Hashtags)
}

func TestOpen_LoadsAggregate(t *testing.T) {
	e, _ := openExisting(t)
	assert.Equal(t, PhaseReady, e.Phase())
	assert.Equal(t, "DR-1", e.Fields().SKU)
	assert.Equal(t, "1299.9", e.Fields().Price)
	assert.Equal(t, int64(9), e.ViewCount())
	assert.Len(t, e.Images(), 2)
}

func TestOpen_NotFound(t *testing.T) {
	client := newFakeClient()
	e, err := Open(context.Background(), client, "missing")
	assert.True(t, admin.IsNotFound(err))
	assert.Equal(t, PhaseError, e.Phase())
	assert.Equal(t, "Product not found", e.Message())
}

func TestSubmit_UpdateKeepsDraft(t *testing.T) {
	e, client := openExisting(t)
	e.Edit(func(f *Fields) { f.SKU = "" })

	require.NoError(t, e.Submit(context.Background()))
	assert.Equal(t, []string{"UpdateProduct"}, client.calls, "no re-fetch after update")
	assert.True(t, client.patched.SKU.Set)
	assert.False(t, client.patched.SKU.Valid, "an emptied field is sent as null")
	assert.Equal(t, "", e.Fields().SKU)
}

func TestSubmit_InvalidPrice(t *testing.T) {
	e, client := openExisting(t)
	e.Edit(func(f *Fields) { f.Price = "a lot" })

	assert.ErrorIs(t, e.Submit(context.Background()), ErrInvalidPrice)
	assert.Equal(t, PhaseError, e.Phase())
	assert.Empty(t, client.calls)
}

func TestErrorClearsOnNextAction(t *testing.T) {
	e, client := openExisting(t)
	client.errs["UpdateProduct"] = &admin.HTTPError{Status: http.StatusConflict, Detail: "Slug already exists"}

	require.Error(t, e.Submit(context.Background()))
	assert.Equal(t, PhaseError, e.Phase())
	assert.Equal(t, "Slug already exists", e.Message())

	e.SetSlug("drill-2")
	assert.Equal(t, PhaseReady, e.Phase())
	assert.Empty(t, e.Message())
}

func TestUnauthorizedIsNotShownInline(t *testing.T) {
	e, client := openExisting(t)
	client.errs["DeleteFile"] = admin.ErrUnauthorized

	assert.ErrorIs(t, e.DeleteImage(context.Background(), "i1"), admin.ErrUnauthorized)
	assert.Equal(t, PhaseReady, e.Phase())
	assert.Empty(t, e.Message())
	assert.Len(t, e.Images(), 2)
}

func TestDeleteMediaGoesThroughFiles(t *testing.T) {
	client := newFakeClient()
	client.product = existing()
	client.product.Attachments = []apicontract.Attachment{{ID: "a1", Title: "Manual", URL: "/api/files/a1"}}
	e, err := Open(context.Background(), client, "p1")
	require.NoError(t, err)

	require.NoError(t, e.DeleteImage(context.Background(), "i2"))
	require.NoError(t, e.DeleteAttachment(context.Background(), "a1"))

	assert.Equal(t, []string{"i2", "a1"}, client.deletedFiles)
	require.Len(t, e.Images(), 1)
	assert.Equal(t, "i1", e.Images()[0].ID)
	assert.Empty(t, e.Attachments())
}

func TestCollectionFailureLeavesStateAlone(t *testing.T) {
	e, client := openExisting(t)
	client.errs["DeleteSpec"] = errors.New("db down")

	require.Error(t, e.DeleteSpec(context.Background(), "s1"))
	assert.Len(t, e.Specs(), 1)
	assert.Equal(t, "db down", e.Message())
}

func TestSpecAndVariantLifecycle(t *testing.T) {
	e, _ := openExisting(t)
	ctx := context.Background()

	id, err := e.AddSpec(ctx, apicontract.SpecInput{Name: "Weight", Value: "2", SortOrder: 40})
	require.NoError(t, err)
	require.Len(t, e.Specs(), 2)
	assert.Equal(t, 1, e.Specs()[1].SortOrder, "new members go last")

	unit := "kg"
	require.NoError(t, e.UpdateSpec(ctx, id, apicontract.SpecPatch{Unit: apicontract.Some(unit)}))
	assert.Equal(t, "kg", *e.Specs()[1].Unit)
	require.NoError(t, e.DeleteSpec(ctx, "s1"))
	assert.Equal(t, id, e.Specs()[0].ID)

	vid, err := e.AddVariant(ctx, apicontract.VariantInput{OptionName: "Color", OptionValue: "Red", StockQty: 2})
	require.NoError(t, err)
	stock := 7
	require.NoError(t, e.UpdateVariant(ctx, vid, apicontract.VariantPatch{StockQty: &stock}))
	assert.Equal(t, 7, e.Variants()[0].StockQty)
	require.NoError(t, e.DeleteVariant(ctx, vid))
	assert.Empty(t, e.Variants())
}

func TestUploadImages_PerFileResults(t *testing.T) {
	e, client := openExisting(t)
	files := []admin.File{
		{Name: "a.png", ContentType: "image/png"},
		{Name: "virus.exe", ContentType: "application/octet-stream"},
		{Name: "b.png", ContentType: "image/png"},
	}

	results, err := e.UploadImages(context.Background(), files, "front")
	require.Error(t, err)
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, []string{"UploadImage", "UploadImage", "UploadImage"}, client.calls)

	imgs := e.Images()
	require.Len(t, imgs, 4)
	assert.Equal(t, 2, imgs[2].SortOrder)
	assert.Equal(t, 3, imgs[3].SortOrder)
	assert.Equal(t, "front", *imgs[2].Alt)
	assert.Equal(t, PhaseError, e.Phase())
	assert.Equal(t, "virus.exe: Unsupported image type", e.Message())
}

func TestUploadImages_UnauthorizedStops(t *testing.T) {
	e, client := openExisting(t)
	client.errs["UploadImage"] = admin.ErrUnauthorized

	results, err := e.UploadImages(context.Background(), []admin.File{{Name: "a.png"}, {Name: "b.png"}}, "")
	assert.ErrorIs(t, err, admin.ErrUnauthorized)
	assert.Len(t, client.calls, 1)
	require.Len(t, results, 2)
	assert.ErrorIs(t, results[1].Err, admin.ErrUnauthorized)
}

func TestUploadAttachments_TitleFallback(t *testing.T) {
	e, _ := openExisting(t)
	_, err := e.UploadAttachments(context.Background(), []admin.File{
		{Name: "manual.pdf", ContentType: "application/pdf"},
		{ContentType: "application/zip"},
	}, "  ")
	require.NoError(t, err)

	atts := e.Attachments()
	require.Len(t, atts, 2)
	assert.Equal(t, "manual.pdf", atts[0].Title)
	assert.Equal(t, "Attachment", atts[1].Title)
	assert.Equal(t, "application/pdf", *atts[0].Mime)
	assert.Equal(t, 1, atts[1].SortOrder)
}

func TestMoveImage(t *testing.T) {
	e, client := openExisting(t)

	require.NoError(t, e.MoveImage(context.Background(), 0, reorder.Down))
	assert.Equal(t, []string{"i2=0", "i1=1"}, client.sortSets)
	assert.Equal(t, "i2", e.Images()[0].ID)
	assert.Equal(t, 1, e.Images()[1].SortOrder)

	client.calls = nil
	require.NoError(t, e.MoveImage(context.Background(), 1, reorder.Down))
	assert.Empty(t, client.calls, "moving past the end makes no calls")
}

func TestMoveImage_FailureKeepsOrder(t *testing.T) {
	e, client := openExisting(t)
	client.errs["UpdateImageSort"] = errors.New("offline")

	require.Error(t, e.MoveImage(context.Background(), 0, reorder.Down))
	assert.Equal(t, "i1", e.Images()[0].ID)
}

func TestMoveImageBatched(t *testing.T) {
	e, client := openExisting(t)

	require.NoError(t, e.MoveImageBatched(context.Background(), 1, reorder.Up))
	assert.Equal(t, []string{"ReorderImages"}, client.calls)
	assert.Equal(t, []string{"i2,i1"}, client.sortSets)
	assert.Equal(t, "i2", e.Images()[0].ID)
}

func TestMoveSpec(t *testing.T) {
	e, client := openExisting(t)
	ctx := context.Background()
	_, err := e.AddSpec(ctx, apicontract.SpecInput{Name: "Weight", Value: "2"})
	require.NoError(t, err)

	require.NoError(t, e.MoveSpec(ctx, 1, reorder.Up))
	assert.Equal(t, []string{"s1=1", "spec-1=0"}, client.sortSets)
	assert.Equal(t, "Weight", e.Specs()[0].Name)
}
