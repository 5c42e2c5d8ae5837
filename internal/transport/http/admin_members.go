package httptransport

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/add_spec"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/add_variant"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_attachment"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_file"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_image"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_spec"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_variant"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/reorder_images"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/update_image_sort"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/update_spec"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/update_variant"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/upload_attachment"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/upload_image"
	"github.com/murkotick/showcase-catalog-service/internal/platform/httpx"
)

func (a *API) addSpec(w http.ResponseWriter, r *http.Request) {
	var in apicontract.SpecInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := a.deps.Products.AddSpec.Execute(r.Context(), add_spec.Request{
		ProductID: chi.URLParam(r, "productID"),
		Fields:    specFieldsFromInput(in),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.IDResponse{ID: id})
}

func (a *API) updateSpec(w http.ResponseWriter, r *http.Request) {
	var in apicontract.SpecPatch
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "specID")
	err := a.deps.Products.UpdateSpec.Execute(r.Context(), update_spec.Request{
		ProductID: chi.URLParam(r, "productID"),
		SpecID:    id,
		Patch:     specPatchFromContract(in),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.IDResponse{ID: id})
}

func (a *API) deleteSpec(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "specID")
	err := a.deps.Products.DeleteSpec.Execute(r.Context(), delete_spec.Request{
		ProductID: chi.URLParam(r, "productID"),
		SpecID:    id,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.DeletedResponse{Deleted: id})
}

func (a *API) addVariant(w http.ResponseWriter, r *http.Request) {
	var in apicontract.VariantInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := a.deps.Products.AddVariant.Execute(r.Context(), add_variant.Request{
		ProductID: chi.URLParam(r, "productID"),
		Fields:    variantFieldsFromInput(in),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.IDResponse{ID: id})
}

func (a *API) updateVariant(w http.ResponseWriter, r *http.Request) {
	var in apicontract.VariantPatch
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "variantID")
	err := a.deps.Products.UpdateVariant.Execute(r.Context(), update_variant.Request{
		ProductID: chi.URLParam(r, "productID"),
		VariantID: id,
		Patch:     variantPatchFromContract(in),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.IDResponse{ID: id})
}

func (a *API) deleteVariant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "variantID")
	err := a.deps.Products.DeleteVariant.Execute(r.Context(), delete_variant.Request{
		ProductID: chi.URLParam(r, "productID"),
		VariantID: id,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.DeletedResponse{Deleted: id})
}

func (a *API) uploadImage(w http.ResponseWriter, r *http.Request) {
	up, cleanup, err := readUpload(r)
	defer cleanup()
	if err != nil {
		writeError(w, r, err)
		return
	}
	sortOrder, err := formInt(r, "sort_order")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var alt *string
	if v := strings.TrimSpace(r.FormValue("alt")); v != "" {
		alt = &v
	}

	id, err := a.deps.Products.UploadImage.Execute(r.Context(), upload_image.Request{
		ProductID: chi.URLParam(r, "productID"),
		File:      up,
		Alt:       alt,
		SortOrder: sortOrder,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.UploadedFile{ID: id, URL: apicontract.FileURL(id)})
}

func (a *API) updateImageSort(w http.ResponseWriter, r *http.Request) {
	var in apicontract.ImageSortUpdate
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "imageID")
	err := a.deps.Products.UpdateImageSort.Execute(r.Context(), update_image_sort.Request{
		ProductID: chi.URLParam(r, "productID"),
		ImageID:   id,
		SortOrder: *in.SortOrder,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.IDResponse{ID: id})
}

func (a *API) reorderImages(w http.ResponseWriter, r *http.Request) {
	var in apicontract.ImageOrder
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	productID := chi.URLParam(r, "productID")
	err := a.deps.Products.ReorderImages.Execute(r.Context(), reorder_images.Request{
		ProductID: productID,
		ImageIDs:  in.ImageIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.IDResponse{ID: productID})
}

func (a *API) deleteImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "imageID")
	err := a.deps.Products.DeleteImage.Execute(r.Context(), delete_image.Request{
		ProductID: chi.URLParam(r, "productID"),
		ImageID:   id,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.DeletedResponse{Deleted: id})
}

func (a *API) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	up, cleanup, err := readUpload(r)
	defer cleanup()
	if err != nil {
		writeError(w, r, err)
		return
	}
	sortOrder, err := formInt(r, "sort_order")
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := a.deps.Products.UploadAttachment.Execute(r.Context(), upload_attachment.Request{
		ProductID: chi.URLParam(r, "productID"),
		File:      up,
		Title:     strings.TrimSpace(r.FormValue("title")),
		SortOrder: sortOrder,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.UploadedFile{ID: id, URL: apicontract.FileURL(id)})
}

func (a *API) deleteAttachment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "attachmentID")
	err := a.deps.Products.DeleteAttachment.Execute(r.Context(), delete_attachment.Request{
		ProductID:    chi.URLParam(r, "productID"),
		AttachmentID: id,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.DeletedResponse{Deleted: id})
}

func (a *API) deleteFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "fileID")
	if err := a.deps.Products.DeleteFile.Execute(r.Context(), delete_file.Request{FileID: id}); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.DeletedResponse{Deleted: id})
}
