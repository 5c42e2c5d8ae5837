package httptransport

import (
	"net/http"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/set_background_image"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/update_settings"
	"github.com/murkotick/showcase-catalog-service/internal/platform/httpx"
)

func (a *API) getSettings(w http.ResponseWriter, r *http.Request) {
	s, err := a.deps.Settings.Get.Execute(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSettings(s))
}

func (a *API) updateSettings(w http.ResponseWriter, r *http.Request) {
	var in apicontract.SettingsPatch
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	s, err := a.deps.Settings.Update.Execute(r.Context(), update_settings.Request{Patch: settingsPatchFromContract(in)})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSettings(s))
}

func (a *API) uploadBackground(w http.ResponseWriter, r *http.Request) {
	up, cleanup, err := readUpload(r)
	defer cleanup()
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := a.deps.Settings.SetBackground.Execute(r.Context(), set_background_image.Request{File: up})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.UploadedFile{ID: res.ID, URL: res.URL})
}

func (a *API) deleteBackground(w http.ResponseWriter, r *http.Request) {
	if err := a.deps.Settings.DeleteBackground.Execute(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.DeletedFlag{Deleted: true})
}
