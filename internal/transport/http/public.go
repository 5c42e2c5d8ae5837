package httptransport

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/record_view"
	"github.com/murkotick/showcase-catalog-service/internal/platform/httpx"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
	"github.com/murkotick/showcase-catalog-service/internal/platform/storage"
)

func (a *API) listPublished(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(w, r, err)
		return
	}
	perPage, err := queryInt(r, "per_page", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := a.deps.Queries.Published.List(r.Context(), dto.PublicListFilter{
		Page:    page,
		PerPage: perPage,
		Sort:    r.URL.Query().Get("sort"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapPublicPage(res))
}

func (a *API) publishedDetail(w http.ResponseWriter, r *http.Request) {
	agg, err := a.deps.Queries.Published.Detail(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapPublicDetail(agg))
}

func (a *API) recordView(w http.ResponseWriter, r *http.Request) {
	n, err := a.deps.Products.RecordView.Execute(r.Context(), record_view.Request{Slug: chi.URLParam(r, "slug")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.ViewCount{ViewCount: n})
}

func (a *API) miniappSettings(w http.ResponseWriter, r *http.Request) {
	m, telegram, err := a.deps.Settings.Get.Miniapp(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapMiniapp(m, telegram))
}

// serveFile streams a stored image, attachment or site asset with its recorded type and name.
func (a *API) serveFile(w http.ResponseWriter, r *http.Request) {
	f, err := a.deps.Queries.Files.Execute(r.Context(), chi.URLParam(r, "fileID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	body, err := a.deps.Files.Open(r.Context(), f.FilePath)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, r, domain.ErrFileNotFound)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer body.Close()

	h := w.Header()
	h.Set("Content-Type", *f.Mime)
	h.Set("Content-Disposition", contentDisposition(f))
	h.Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		observability.FromContext(r.Context()).Warn("file stream interrupted", zap.String("file_id", f.FileID), zap.Error(err))
	}
}

// contentDisposition shows images inline and offers everything else as a download.
func contentDisposition(f *dto.FileDTO) string {
	disposition := "attachment"
	if strings.HasPrefix(*f.Mime, "image/") {
		disposition = "inline"
	}
	if v := mime.FormatMediaType(disposition, map[string]string{"filename": f.Filename}); v != "" {
		return v
	}
	return disposition
}
