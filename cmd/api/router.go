package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-cms/internal/shared/middleware"
	"clinic-cms/internal/shared/response"
	"clinic-cms/internal/web"
	"clinic-cms/pkg/container"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
	)
	router.MaxMultipartMemory = 8 << 20

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupCMSRoutes(api, c)
	}

	setupPageRoutes(router, c)

	return router, nil
}

// ========================================
// CMS ROUTES
// ========================================
func setupCMSRoutes(api *gin.RouterGroup, c *container.Container) {
	requireSession := middleware.RequireSession(c.Authenticator, c.Config.Auth.CookieName)

	cms := api.Group("/cms")
	{
		// Public
		cms.GET("", c.ContentHandler.Get)
		cms.GET("/settings", c.ContentHandler.Settings)

		// Session
		cms.POST("/auth", c.AuthHandler.Login)
		cms.GET("/auth", c.AuthHandler.Check)
		cms.DELETE("/auth", c.AuthHandler.Logout)

		// Admin
		cms.POST("", requireSession, c.ContentHandler.Update)
		cms.PUT("", requireSession, c.ContentHandler.Replace)
		cms.POST("/upload", requireSession, c.UploadHandler.Upload)
		cms.POST("/contact/preview", requireSession, c.PreviewHandler.Preview)
	}
}

// ========================================
// PUBLIC PAGES
// ========================================
func setupPageRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/", c.PageHandler.Home)
	router.GET("/services/:id", c.PageHandler.Service)
	router.NoRoute(noRouteHandler(c.PageHandler.NotFound))
}

// noRouteHandler keeps API clients on the JSON envelope and sends
// everything else to the HTML 404 page.
func noRouteHandler(page gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/api" || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.NotFound(c, "Route not found")
			return
		}
		page(c)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"storage":   appCtx.ContentService.StorageName(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		storageStatus := "ok"
		if err := appCtx.ContentService.Ping(ctx); err != nil {
			storageStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		cacheStatus := "disabled"
		if appCtx.Cache != nil {
			cacheStatus = "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				cacheStatus = fmt.Sprintf("error: %v", err)
			}
		}

		services := gin.H{
			"storage": storageStatus,
			"cache":   cacheStatus,
		}
		if appCtx.DB != nil {
			if stats, err := appCtx.DB.Stats(); err == nil {
				services["pool"] = stats
			}
		}
		health["services"] = services

		statusCode := http.StatusOK
		if storageStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
