package main

import (
	"context"
	"strconv"
	"strings"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	categoryqueries "github.com/murkotick/showcase-catalog-service/internal/app/category/queries"
	categoryrepo "github.com/murkotick/showcase-catalog-service/internal/app/category/repo"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/create_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/delete_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/category/usecases/update_category"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/catalog_stats"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/get_product"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/list_admin_products"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/list_published"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/resolve_file"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/repo"
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
	settingsdomain "github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
	settingsqueries "github.com/murkotick/showcase-catalog-service/internal/app/settings/queries"
	settingsrepo "github.com/murkotick/showcase-catalog-service/internal/app/settings/repo"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/delete_background_image"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/get_settings"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/set_background_image"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/update_settings"
	"github.com/murkotick/showcase-catalog-service/internal/app/settings/usecases/upload_policies"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
	committer "github.com/murkotick/showcase-catalog-service/internal/pkg/committer"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/outbox"
	"github.com/murkotick/showcase-catalog-service/internal/platform/auth"
	"github.com/murkotick/showcase-catalog-service/internal/platform/config"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
	"github.com/murkotick/showcase-catalog-service/internal/platform/storage"
	httptransport "github.com/murkotick/showcase-catalog-service/internal/transport/http"
)

// newAPI wires every interactor and read handler over Spanner and the file store.
func newAPI(cfg config.Config, client *spanner.Client, files storage.Store, level zap.AtomicLevel, metrics *observability.Metrics) *httptransport.API {
	clk := clock.RealClock{}
	cm := committer.NewAdapter(client)
	outboxRepo := outbox.NewRepo()

	products, members := repo.NewProductRepo(), repo.NewMemberRepo()
	readModel := queries.NewSpannerReadModel(client)

	categories := categoryrepo.NewCategoryRepo()
	categoryReads := categoryqueries.NewSpannerReadModel(client)

	settings := settingsrepo.NewSettingsRepo()
	settingsReads := settingsqueries.NewSpannerReadModel(client)
	defaults := settingsDefaults(cfg)

	getSettings := get_settings.NewInteractor(settingsReads, defaults)
	policies := upload_policies.New(getSettings)

	deleteImage := delete_image.NewInteractor(products, members, outboxRepo, cm, readModel, files, clk)
	deleteAttachment := delete_attachment.NewInteractor(products, members, outboxRepo, cm, readModel, files, clk)

	return httptransport.NewAPI(httptransport.Deps{
		Products: httptransport.ProductCommands{
			Create:           create_product.NewInteractor(products, outboxRepo, cm, readModel, clk),
			Update:           update_product.NewInteractor(products, outboxRepo, cm, readModel, clk),
			Delete:           delete_product.NewInteractor(products, outboxRepo, cm, readModel, files, clk),
			AddSpec:          add_spec.NewInteractor(products, members, outboxRepo, cm, readModel, clk),
			UpdateSpec:       update_spec.NewInteractor(products, members, outboxRepo, cm, readModel, clk),
			DeleteSpec:       delete_spec.NewInteractor(products, members, outboxRepo, cm, readModel, clk),
			AddVariant:       add_variant.NewInteractor(products, members, outboxRepo, cm, readModel, clk),
			UpdateVariant:    update_variant.NewInteractor(products, members, outboxRepo, cm, readModel, clk),
			DeleteVariant:    delete_variant.NewInteractor(products, members, outboxRepo, cm, readModel, clk),
			UploadImage:      upload_image.NewInteractor(products, members, outboxRepo, cm, readModel, files, policies, clk),
			UpdateImageSort:  update_image_sort.NewInteractor(products, members, outboxRepo, cm, readModel, clk),
			ReorderImages:    reorder_images.NewInteractor(products, members, outboxRepo, cm, readModel, clk),
			DeleteImage:      deleteImage,
			UploadAttachment: upload_attachment.NewInteractor(products, members, outboxRepo, cm, readModel, files, policies, clk),
			DeleteAttachment: deleteAttachment,
			DeleteFile:       delete_file.NewInteractor(readModel, deleteImage, deleteAttachment),
			RecordView:       record_view.NewInteractor(repo.NewSpannerViewCounter(client), metrics),
		},
		Queries: httptransport.ProductQueries{
			Get:       get_product.NewHandler(readModel),
			AdminList: list_admin_products.NewHandler(readModel),
			Published: list_published.NewHandler(readModel),
			Stats:     catalog_stats.NewHandler(readModel),
			Files:     resolve_file.NewHandler(readModel),
		},
		Categories: httptransport.CategoryCommands{
			Create: create_category.NewInteractor(categories, outboxRepo, cm, categoryReads, clk),
			Update: update_category.NewInteractor(categories, outboxRepo, cm, categoryReads, clk),
			Delete: delete_category.NewInteractor(categories, outboxRepo, cm, categoryReads, clk),
		},
		CategoryReads: categoryReads,
		Settings: httptransport.SettingsCommands{
			Get:              getSettings,
			Update:           update_settings.NewInteractor(settings, outboxRepo, cm, settingsReads, defaults, level, clk),
			SetBackground:    set_background_image.NewInteractor(settings, outboxRepo, cm, settingsReads, files, defaults, clk),
			DeleteBackground: delete_background_image.NewInteractor(settings, outboxRepo, cm, settingsReads, files, defaults, clk),
		},
		Auth: auth.NewAuthenticator(auth.Options{
			AdminLogin:        cfg.Auth.AdminLogin,
			AdminPassword:     cfg.Auth.AdminPassword,
			AdminPasswordHash: cfg.Auth.AdminPasswordHash,
			Secret:            cfg.Auth.JWTSecret,
			TokenTTL:          cfg.Auth.TokenTTL,
		}, clk),
		LoginLimiter: auth.NewLoginLimiter(cfg.Auth.LoginPerMinute, clk),
		Files:        files,
	})
}

// settingsDefaults is what the settings fall back to before anything has been stored.
func settingsDefaults(cfg config.Config) settingsdomain.Settings {
	port, _ := strconv.Atoi(cfg.Server.Port)
	return settingsdomain.Settings{
		ContactTelegramLink:    cfg.ContactTelegramLink,
		MaxFileSizeMB:          cfg.Storage.MaxFileSizeMB,
		AllowedImageTypes:      cfg.Storage.AllowedImageTypes,
		AllowedAttachmentTypes: cfg.Storage.AllowedAttachmentTypes,
		LogLevel:               strings.ToUpper(cfg.Log.Level),
		LogMaxBytesMB:          cfg.Log.MaxBytesMB,
		Miniapp:                settingsdomain.DefaultMiniapp(),
		APIPort:                port,
		CORSOrigins:            strings.Join(cfg.CORS.Origins, ","),
		StoragePath:            cfg.Storage.Path,
	}
}

func spannerCheck(client *spanner.Client) httptransport.ReadinessCheck {
	return func(ctx context.Context) error {
		iter := client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
		defer iter.Stop()
		_, err := iter.Next()
		return err
	}
}
