package httptransport

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	categorydomain "github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	productdomain "github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	settingsdomain "github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	"github.com/murkotick/showcase-catalog-service/internal/platform/auth"
	"github.com/murkotick/showcase-catalog-service/internal/platform/httpx"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
)

// errorRule maps one sentinel to a response. An empty message reuses err.Error(), which keeps
// the wrapped detail (for example the list of allowed file types).
type errorRule struct {
	target  error
	status  int
	code    string
	message string
}

var errorRules = []errorRule{
	{productdomain.ErrProductNotFound, http.StatusNotFound, "not_found", "Product not found"},
	{productdomain.ErrImageNotFound, http.StatusNotFound, "not_found", "Image not found"},
	{productdomain.ErrAttachmentNotFound, http.StatusNotFound, "not_found", "Attachment not found"},
	{productdomain.ErrSpecNotFound, http.StatusNotFound, "not_found", "Spec not found"},
	{productdomain.ErrVariantNotFound, http.StatusNotFound, "not_found", "Variant not found"},
	{productdomain.ErrFileNotFound, http.StatusNotFound, "not_found", "File not found"},
	{categorydomain.ErrCategoryNotFound, http.StatusNotFound, "not_found", "Category not found"},
	{settingsdomain.ErrBackgroundNotFound, http.StatusNotFound, "not_found", "Background image not found"},

	{productdomain.ErrSlugTaken, http.StatusConflict, "slug_taken", ""},
	{categorydomain.ErrSlugTaken, http.StatusConflict, "slug_taken", ""},

	{auth.ErrInvalidCredentials, http.StatusUnauthorized, "unauthorized", "Invalid login or password"},
}

// invalidInput lists every domain validation error; all of them are 400 with their own text.
var invalidInput = []error{
	productdomain.ErrEmptySlug,
	productdomain.ErrInvalidSlug,
	productdomain.ErrEmptyTitle,
	productdomain.ErrTitleTooLong,
	productdomain.ErrSKUTooLong,
	productdomain.ErrManufacturerLong,
	productdomain.ErrHashtagsTooLong,
	productdomain.ErrInvalidCurrency,
	productdomain.ErrInvalidCategoryID,
	productdomain.ErrUnknownCategory,
	productdomain.ErrNegativePrice,
	productdomain.ErrInvalidPrice,
	productdomain.ErrEmptySpecName,
	productdomain.ErrEmptySpecValue,
	productdomain.ErrSpecFieldTooLong,
	productdomain.ErrEmptyOption,
	productdomain.ErrOptionTooLong,
	productdomain.ErrNegativeQuantity,
	productdomain.ErrAltTooLong,
	productdomain.ErrInvalidOrder,
	productdomain.ErrUnsupportedMediaType,
	productdomain.ErrFileTooLarge,
	productdomain.ErrEmptyFile,

	categorydomain.ErrEmptyName,
	categorydomain.ErrNameTooLong,
	categorydomain.ErrInvalidSlug,
	categorydomain.ErrInvalidParent,
	categorydomain.ErrUnknownParent,

	settingsdomain.ErrInvalidFileSize,
	settingsdomain.ErrInvalidTypeList,
	settingsdomain.ErrInvalidLogLevel,
	settingsdomain.ErrInvalidLogSize,
	settingsdomain.ErrInvalidColor,
	settingsdomain.ErrValueTooLong,
}

// mapError translates application errors into the JSON error envelope.
// Anything unknown is logged and becomes a 500 without internal detail.
func mapError(ctx context.Context, err error) httpx.Error {
	var apiErr httpx.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			msg := rule.message
			if msg == "" {
				msg = err.Error()
			}
			return httpx.NewError(rule.code, msg, rule.status)
		}
	}
	for _, target := range invalidInput {
		if errors.Is(err, target) {
			return httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest)
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return httpx.NewError("request_timeout", "request was cancelled", http.StatusServiceUnavailable)
	}

	observability.FromContext(ctx).Error("request failed", zap.Error(err))
	return httpx.NewError("internal_server_error", "internal server error", http.StatusInternalServerError)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	httpx.WriteError(r.Context(), w, mapError(r.Context(), err))
}

func badRequest(message string) httpx.Error {
	return httpx.NewError("invalid_request", message, http.StatusBadRequest)
}
