package httptransport

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/platform/auth"
	"github.com/murkotick/showcase-catalog-service/internal/platform/httpx"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
)

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var in apicontract.LoginRequest
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	token, err := a.deps.Auth.Login(in.Login, in.Password)
	if err != nil {
		observability.FromContext(r.Context()).Warn("admin login rejected", zap.String("login", in.Login))
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, apicontract.LoginResponse{AccessToken: token, TokenType: auth.TokenType})
}
