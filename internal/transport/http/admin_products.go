package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/update_product"
	"github.com/murkotick/showcase-catalog-service/internal/platform/httpx"
)

func (a *API) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := adminFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := a.deps.Queries.AdminList.Execute(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAdminPage(page))
}

func adminFilterFromQuery(r *http.Request) (dto.AdminListFilter, error) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		return dto.AdminListFilter{}, err
	}
	perPage, err := queryInt(r, "per_page", 0)
	if err != nil {
		return dto.AdminListFilter{}, err
	}
	published, err := queryBool(r, "is_published")
	if err != nil {
		return dto.AdminListFilter{}, err
	}
	q := r.URL.Query()
	return dto.AdminListFilter{
		Search:       queryString(r, "search"),
		CategoryID:   queryString(r, "category_id"),
		Manufacturer: queryString(r, "manufacturer"),
		IsPublished:  published,
		Page:         page,
		PerPage:      perPage,
		SortBy:       q.Get("sort_by"),
		SortOrder:    q.Get("sort_order"),
	}, nil
}

func (a *API) createProduct(w http.ResponseWriter, r *http.Request) {
	var in apicontract.ProductInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := a.deps.Products.Create.Execute(r.Context(), create_product.Request{Details: detailsFromInput(in)})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.CreatedProduct{ID: res.ID, Slug: res.Slug})
}

func (a *API) getProduct(w http.ResponseWriter, r *http.Request) {
	agg, err := a.deps.Queries.Get.Execute(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapAggregate(agg))
}

func (a *API) updateProduct(w http.ResponseWriter, r *http.Request) {
	var in apicontract.ProductPatch
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "productID")
	err := a.deps.Products.Update.Execute(r.Context(), update_product.Request{
		ProductID: id,
		Patch:     productPatchFromContract(in),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.IDResponse{ID: id})
}

func (a *API) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	if err := a.deps.Products.Delete.Execute(r.Context(), delete_product.Request{ProductID: id}); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.DeletedResponse{Deleted: id})
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	s, err := a.deps.Queries.Stats.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.Stats{
		TotalProducts:  s.TotalProducts,
		PublishedCount: s.PublishedCount,
		TotalViews:     s.TotalViews,
	})
}

func (a *API) manufacturers(w http.ResponseWriter, r *http.Request) {
	names, err := a.deps.Queries.Stats.Manufacturers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, names)
}
