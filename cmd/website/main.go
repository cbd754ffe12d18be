package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/configuration"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/home"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/imagecheck"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/lightbox"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/database"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/models"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/services"
)

var (
	Version string = "development"
	appName string = "purvazinjardephotography"

	//go:embed app
	appFS embed.FS

	//go:embed data
	dataFS embed.FS

	//go:embed sql-migrations
	sqlMigrationsFs embed.FS

	config configuration.Config

	/* Services */
	imageChecker   imagecheck.ImageChecker
	photoService   services.PhotoServicer
	renderer       rendering.TemplateRenderer
	selectionStore lightbox.SelectionStore
	sessionService sessions.Session[*models.Selection]

	/* Controllers */
	homeController     home.HomeHandlers
	lightboxController lightbox.LightboxHandlers
)

func main() {
	var (
		err    error
		photos []models.Photo
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("baseURL", config.BaseURL),
		slog.String("metadataSource", config.MetadataSource),
	)

	if err = config.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Load photo metadata. This happens exactly once; the list is
	 * read-only for the life of the process.
	 */
	loader := newMetadataLoader()

	if photos, err = loader.Load(shutdownCtx); err != nil {
		panic(err)
	}

	photoService = services.NewPhotoService(services.PhotoServiceConfig{
		BaseURL: config.BaseURL,
		Photos:  photos,
	})

	allPhotos := photoService.All()

	if duplicates := services.DuplicateFilenames(allPhotos); len(duplicates) > 0 {
		slog.Warn("photo metadata contains duplicate filenames", "filenames", duplicates)
	}

	slog.Info("photo metadata loaded", "numPhotos", len(allPhotos), "numGallery", len(photoService.Gallery()))

	sessionService = lightbox.NewSelectionSession(config.CookieSecret)

	selectionStore = lightbox.NewSelectionStore(lightbox.SelectionStoreConfig{
		PhotoService:   photoService,
		SessionService: sessionService,
	})

	if renderer, err = newRenderer(appFS); err != nil {
		panic(err)
	}

	imageChecker = imagecheck.NewImageCheckerService(imagecheck.ImageCheckerConfig{
		MaxWorkers:   config.MaxCheckWorkers,
		PhotoService: photoService,
		ShutdownCtx:  shutdownCtx,
	})

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		Config:         &config,
		PhotoService:   photoService,
		Renderer:       renderer,
		SelectionStore: selectionStore,
	})

	lightboxController = lightbox.NewLightboxController(lightbox.LightboxControllerConfig{
		Renderer:       renderer,
		SelectionStore: selectionStore,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	routes := newRoutes(homeController, lightboxController)

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Check gallery images in the background
	 */
	if config.CheckImages {
		go imageChecker.Check()
	}

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func newRenderer(fsys fs.FS) (*rendering.GoTemplateRenderer, error) {
	return rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        fsys,
		PagesDir:          "pages",
	})
}

func newRoutes(homeController home.HomeHandlers, lightboxController lightbox.LightboxHandlers) []mux.Route {
	requestLogger := newRequestLoggerMiddleware([]string{"/heartbeat"})
	middlewares := []mux.MiddlewareFunc{requestLogger}

	return []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /{$}", HandlerFunc: homeController.HomePage, Middlewares: middlewares},
		{Path: "GET /photos/{filename}", HandlerFunc: lightboxController.SelectAction, Middlewares: middlewares},
		{Path: "POST /gallery/close", HandlerFunc: lightboxController.CloseAction, Middlewares: middlewares},
		{Path: "POST /gallery/keys", HandlerFunc: lightboxController.KeyAction, Middlewares: middlewares},
	}
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func newMetadataLoader() services.MetadataLoader {
	switch config.MetadataSource {
	case configuration.MetadataSourceS3:
		return services.NewS3MetadataLoader(services.S3MetadataLoaderConfig{
			Bucket:   config.AwsBucket,
			Key:      config.MetadataKey,
			S3Client: newS3Client(),
		})

	case configuration.MetadataSourceDB:
		db, err := database.Connect(config.DSN)

		if err != nil {
			panic(err)
		}

		if err = database.Migrate(db, sqlMigrationsFs, "sql-migrations"); err != nil {
			panic(err)
		}

		return services.NewDatabaseMetadataLoader(services.DatabaseMetadataLoaderConfig{
			DB: db,
		})

	default:
		return newFileMetadataLoader()
	}
}

func newFileMetadataLoader() services.MetadataLoader {
	var (
		err    error
		fsys   fs.FS
		absDir string
	)

	if config.MetadataPath == "" {
		return services.NewFileMetadataLoader(services.FileMetadataLoaderConfig{
			FS:   dataFS,
			Path: "data/photoMetaData.json",
		})
	}

	if absDir, err = filepath.Abs(filepath.Dir(config.MetadataPath)); err != nil {
		panic(err)
	}

	fsys = os.DirFS(absDir)

	return services.NewFileMetadataLoader(services.FileMetadataLoaderConfig{
		FS:   fsys,
		Path: filepath.Base(config.MetadataPath),
	})
}

func newS3Client() s3.S3Client {
	var (
		err      error
		s3Client s3.S3Client
	)

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	if s3Client, err = s3.NewClient(awsConfig); err != nil {
		panic(err)
	}

	return s3Client
}
