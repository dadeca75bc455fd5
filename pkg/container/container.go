package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"clinic-cms/internal/config"
	"clinic-cms/internal/domains/auth"
	authHandler "clinic-cms/internal/domains/auth/handler"
	"clinic-cms/internal/domains/booking"
	contentHandler "clinic-cms/internal/domains/content/handler"
	"clinic-cms/internal/domains/content/model"
	"clinic-cms/internal/domains/content/repository"
	contentService "clinic-cms/internal/domains/content/service"
	infraCache "clinic-cms/internal/infrastructure/cache"
	"clinic-cms/internal/infrastructure/database"
	"clinic-cms/internal/web"
	"clinic-cms/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the application's dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB // nil unless the remote store is active
	Cache  cache.Cache          // nil when CACHE_DRIVER=none

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	Store       repository.Strategy
	RemoteStore *repository.PostgresStrategy // set when the remote store connected

	// ========================================
	// SERVICE LAYER
	// ========================================
	ContentService contentService.ServiceInterface
	Authenticator  auth.Authenticator

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthHandler    *authHandler.AuthHandler
	ContentHandler *contentHandler.ContentHandler
	UploadHandler  *contentHandler.UploadHandler
	PreviewHandler *contentHandler.PreviewHandler
	PageHandler    *web.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads configuration and builds the graph.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return Build(cfg)
}

// Build wires every layer from cfg. Order matters:
// 1. Storage strategy (file or remote, chosen once)
// 2. Optional read cache around it
// 3. Services
// 4. Handlers
func Build(cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI container")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: STORAGE STRATEGY
	// ========================================
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.initStorage(ctx)

	// ========================================
	// STEP 2: CACHE
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 3: SERVICES
	// ========================================
	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	// ========================================
	// STEP 4: HANDLERS
	// ========================================
	c.initHandlers()

	log.Info().
		Str("storage", c.Store.Name()).
		Str("auth_mode", cfg.Auth.Mode).
		Msg("DI container initialized")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

// initStorage selects the single active strategy. A remote store that is
// configured but cannot be reached is not replaced by the file strategy;
// every request fails with NOT_CONFIGURED instead.
func (c *Container) initStorage(ctx context.Context) {
	cfg := c.Config

	if !cfg.RemoteStore.Configured() {
		c.Store = repository.NewFileStrategy(cfg.Storage.DataFile)
		log.Info().Str("path", cfg.Storage.DataFile).Msg("Using file storage")
		return
	}

	dbConfig, err := cfg.RemoteStore.LoadDatabaseConfig()
	if err != nil {
		log.Error().Err(err).Msg("Remote store configuration invalid")
		c.Store = repository.NewUnavailable("remote", model.NewNotConfiguredError(
			"Remote store configuration is invalid: "+err.Error(),
			"Check the REMOTE_STORE_* environment variables.",
		))
		return
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		log.Error().Err(err).Msg("Remote store unreachable")
		c.Store = repository.NewUnavailable("remote", model.NewNotConfiguredError(
			"Remote store is configured but could not be reached",
			"Verify REMOTE_STORE_URL and REMOTE_STORE_KEY, then restart the server.",
		))
		return
	}

	c.DB = db
	c.RemoteStore = repository.NewPostgresStrategy(db.Pool, cfg.RemoteStore.Table, cfg.RemoteStore.QueryTimeout)
	c.Store = c.RemoteStore
	log.Info().Str("table", cfg.RemoteStore.Table).Msg("Using remote storage")
}

// initCache wraps the strategy in a read cache when one is configured.
// An unreachable Redis is logged and skipped.
func (c *Container) initCache(ctx context.Context) {
	cfg := c.Config.Cache

	switch cfg.Driver {
	case "memory":
		c.Cache = infraCache.NewMemoryCache(cfg.TTL)
	case "redis":
		rc := infraCache.NewRedisCache(cfg.RedisHost, cfg.RedisPassword, cfg.RedisDB)
		if err := rc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis connection failed (non-critical), continuing without cache")
			_ = rc.Close()
			return
		}
		c.Cache = rc
	default:
		return
	}

	c.Store = repository.NewCachedStrategy(c.Store, c.Cache, cfg.TTL)
	log.Info().Str("driver", cfg.Driver).Dur("ttl", cfg.TTL).Msg("Content cache enabled")
}

func (c *Container) initServices() error {
	c.ContentService = contentService.NewContentService(c.Store)

	authn, err := auth.New(c.Config.Auth.Mode, c.Config.Auth.Password, c.Config.Auth.Token, c.Config.Auth.CookieMaxAge)
	if err != nil {
		return err
	}
	c.Authenticator = authn
	return nil
}

func (c *Container) initHandlers() {
	cfg := c.Config

	c.AuthHandler = authHandler.NewAuthHandler(c.Authenticator, authHandler.CookieOptions{
		Name:   cfg.Auth.CookieName,
		MaxAge: cfg.Auth.CookieMaxAge,
		Secure: cfg.Auth.SecureCookie,
	})
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService, cfg.Features.LinkEditing)
	c.UploadHandler = contentHandler.NewUploadHandler(contentHandler.MaxUploadSize, contentHandler.DataURI)
	c.PreviewHandler = contentHandler.NewPreviewHandler(c.ContentService, booking.Addresses{
		BookingEmail: cfg.Contact.BookingEmail,
		FromEmail:    cfg.Contact.FromEmail,
	})
	c.PageHandler = web.NewHandler(c.ContentService)
}

// Cleanup releases pools on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
	}
}
