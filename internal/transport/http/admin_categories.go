package httptransport

import (
	"errors"
	"net/http"

	"cloud.google.com/go/spanner"
	"github.com/go-chi/chi/v5"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/create_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/delete_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/update_category"
	"github.com/murkotick/showcase-catalog-service/internal/platform/httpx"
)

func (a *API) listCategories(w http.ResponseWriter, r *http.Request) {
	rows, err := a.deps.CategoryReads.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]apicontract.Category, 0, len(rows))
	for _, c := range rows {
		out = append(out, mapCategory(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (a *API) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := a.deps.CategoryReads.GetCategory(r.Context(), chi.URLParam(r, "categoryID"))
	if errors.Is(err, spanner.ErrRowNotFound) {
		err = domain.ErrCategoryNotFound
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapCategory(*c))
}

func (a *API) createCategory(w http.ResponseWriter, r *http.Request) {
	var in apicontract.CategoryInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := a.deps.Categories.Create.Execute(r.Context(), create_category.Request{Fields: categoryFieldsFromInput(in)})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.CreatedCategory{ID: res.ID, Slug: res.Slug})
}

func (a *API) updateCategory(w http.ResponseWriter, r *http.Request) {
	var in apicontract.CategoryPatch
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "categoryID")
	err := a.deps.Categories.Update.Execute(r.Context(), update_category.Request{
		CategoryID: id,
		Patch:      categoryPatchFromContract(in),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.IDResponse{ID: id})
}

func (a *API) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "categoryID")
	if err := a.deps.Categories.Delete.Execute(r.Context(), delete_category.Request{CategoryID: id}); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.DeletedResponse{Deleted: id})
}
