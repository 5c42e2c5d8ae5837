// Package httptransport is the REST adapter of the catalog. It decodes and validates JSON
// contracts, delegates to the CQRS handlers and maps domain errors to HTTP statuses.
package httptransport

import (
	"context"
	"io"

	categorycontracts "github.com/murkotick/showcase-catalog-service/internal/app/category/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/create_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/delete_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/update_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/catalog_stats"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/get_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/list_admin_products"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/list_published"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/resolve_file"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/add_spec"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/add_variant"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_attachment"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_file"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_image"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_spec"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/delete_variant"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/record_view"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/reorder_images"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/update_image_sort"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/update_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/update_spec"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/update_variant"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/upload_attachment"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/upload_image"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/delete_background_image"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/get_settings"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/set_background_image"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/update_settings"
	"github.com/murkotick/showcase-catalog-service/internal/platform/auth"
)

// ProductCommands groups the product write interactors.
type ProductCommands struct {
	Create           *create_product.Interactor
	Update           *update_product.Interactor
	Delete           *delete_product.Interactor
	AddSpec          *add_spec.Interactor
	UpdateSpec       *update_spec.Interactor
	DeleteSpec       *delete_spec.Interactor
	AddVariant       *add_variant.Interactor
	UpdateVariant    *update_variant.Interactor
	DeleteVariant    *delete_variant.Interactor
	UploadImage      *upload_image.Interactor
	UpdateImageSort  *update_image_sort.Interactor
	ReorderImages    *reorder_images.Interactor
	DeleteImage      *delete_image.Interactor
	UploadAttachment *upload_attachment.Interactor
	DeleteAttachment *delete_attachment.Interactor
	DeleteFile       *delete_file.Interactor
	RecordView       *record_view.Interactor
}

// ProductQueries groups the product read handlers.
type ProductQueries struct {
	Get       *get_product.Handler
	AdminList *list_admin_products.Handler
	Published *list_published.Handler
	Stats     *catalog_stats.Handler
	Files     *resolve_file.Handler
}

type CategoryCommands struct {
	Create *create_category.Interactor
	Update *update_category.Interactor
	Delete *delete_category.Interactor
}

type SettingsCommands struct {
	Get              *get_settings.Interactor
	Update           *update_settings.Interactor
	SetBackground    *set_background_image.Interactor
	DeleteBackground *delete_background_image.Interactor
}

// FileOpener streams stored objects; storage.Store satisfies it.
type FileOpener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Deps is everything the API needs.
type Deps struct {
	Products   ProductCommands
	Queries    ProductQueries
	Categories CategoryCommands
	// CategoryReads serves the category list and lookups.
	CategoryReads categorycontracts.ReadModel
	Settings      SettingsCommands
	Auth          *auth.Authenticator
	LoginLimiter  *auth.LoginLimiter
	Files         FileOpener
}

// API holds the HTTP handlers.
type API struct {
	deps Deps
}

func NewAPI(deps Deps) *API {
	return &API{deps: deps}
}
