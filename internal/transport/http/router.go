package httptransport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/murkotick/showcase-catalog-service/internal/platform/auth"
	"github.com/murkotick/showcase-catalog-service/internal/platform/httpx"
)

type routerConfig struct {
	basePath    string
	middlewares []func(http.Handler) http.Handler
	health      *HealthHandlers
	metrics     http.Handler
}

// Option customises the router configuration before construction.
type Option func(*routerConfig)

const (
	defaultAPIPrefix  = "/api"
	defaultTimeout    = 60 * time.Second
	errorNotFoundCode = "route_not_found"
)

// NewRouter mounts the admin and storefront routes of api behind the shared middleware.
func NewRouter(api *API, opts ...Option) chi.Router {
	cfg := routerConfig{
		basePath: defaultAPIPrefix,
		middlewares: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.middlewares = append(cfg.middlewares, middleware.Timeout(defaultTimeout))
	if cfg.health == nil {
		cfg.health = NewHealthHandlers(nil)
	}

	r := chi.NewRouter()
	for _, mw := range cfg.middlewares {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError(errorNotFoundCode, fmt.Sprintf("no route for %s", req.URL.Path), http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError("method_not_allowed", fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path), http.StatusMethodNotAllowed))
	})

	r.Get("/health", cfg.health.Health)
	r.Get("/healthz", cfg.health.Healthz)
	r.Get("/readyz", cfg.health.Readyz)
	if cfg.metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metrics)
	}

	r.Route(cfg.basePath, func(root chi.Router) {
		root.Route("/admin", func(admin chi.Router) {
			admin.Group(func(login chi.Router) {
				if api.deps.LoginLimiter != nil {
					login.Use(api.deps.LoginLimiter.Middleware)
				}
				login.Post("/login", api.login)
			})
			admin.Group(func(secured chi.Router) {
				secured.Use(auth.RequireAdmin(api.deps.Auth))
				api.registerAdmin(secured)
			})
		})
		api.registerPublic(root)
	})

	return r
}

func (a *API) registerAdmin(r chi.Router) {
	r.Route("/products", func(products chi.Router) {
		products.Get("/", a.listProducts)
		products.Post("/", a.createProduct)
		products.Route("/{productID}", func(p chi.Router) {
			p.Get("/", a.getProduct)
			p.Put("/", a.updateProduct)
			p.Delete("/", a.deleteProduct)

			p.Post("/specs", a.addSpec)
			p.Put("/specs/{specID}", a.updateSpec)
			p.Delete("/specs/{specID}", a.deleteSpec)

			p.Post("/variants", a.addVariant)
			p.Put("/variants/{variantID}", a.updateVariant)
			p.Delete("/variants/{variantID}", a.deleteVariant)

			p.Post("/images", a.uploadImage)
			p.Put("/images/order", a.reorderImages)
			p.Put("/images/{imageID}", a.updateImageSort)
			p.Delete("/images/{imageID}", a.deleteImage)

			p.Post("/attachments", a.uploadAttachment)
			p.Delete("/attachments/{attachmentID}", a.deleteAttachment)
		})
	})

	r.Delete("/files/{fileID}", a.deleteFile)
	r.Get("/stats", a.stats)
	r.Get("/manufacturers", a.manufacturers)

	r.Route("/categories", func(c chi.Router) {
		c.Get("/", a.listCategories)
		c.Post("/", a.createCategory)
		c.Get("/{categoryID}", a.getCategory)
		c.Put("/{categoryID}", a.updateCategory)
		c.Delete("/{categoryID}", a.deleteCategory)
	})

	r.Get("/settings", a.getSettings)
	r.Put("/settings", a.updateSettings)
	r.Post("/settings/background-image", a.uploadBackground)
	r.Delete("/settings/background-image", a.deleteBackground)
}

func (a *API) registerPublic(r chi.Router) {
	r.Get("/products", a.listPublished)
	r.Get("/products/", a.listPublished)
	r.Get("/products/{slug}", a.publishedDetail)
	r.Post("/products/{slug}/view", a.recordView)
	r.Get("/miniapp/settings", a.miniappSettings)
	r.Get("/files/{fileID}", a.serveFile)
}

// WithMiddlewares appends global middleware. It runs after request id and real ip.
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(cfg *routerConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithHealthHandlers overrides the handlers behind /health, /healthz and /readyz.
func WithHealthHandlers(h *HealthHandlers) Option {
	return func(cfg *routerConfig) {
		cfg.health = h
	}
}

// WithMetrics exposes h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(cfg *routerConfig) {
		cfg.metrics = h
	}
}

// WithBasePath changes the /api prefix.
func WithBasePath(path string) Option {
	return func(cfg *routerConfig) {
		cfg.basePath = path
	}
}
