package router

import (
	"net/http"

	"campushub/config"
	"campushub/internal/handler"
	"campushub/internal/middleware"
	"campushub/internal/repository"
	"campushub/internal/service"
	"campushub/internal/ws"
	"campushub/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup builds the engine with every route. cloud may be nil when Cloudinary is not configured.
func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, hub *ws.Hub, log *zap.Logger, reg *prometheus.Registry) (*gin.Engine, error) {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	httpMetrics, err := middleware.NewHTTPMetrics(reg)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(httpMetrics.Middleware())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewMarketplaceRepository(db)
	reportRepo := repository.NewReportRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Services
	var images service.ImageRemover
	if cloud != nil {
		images = cloud
	}
	authSvc := service.NewAuthService(&cfg.JWT, userRepo, log)
	moderationSvc := service.NewModerationService(itemRepo, reportRepo, images, hub, log)
	marketplaceSvc := service.NewMarketplaceService(itemRepo, reportRepo, moderationSvc, log)
	statsSvc := service.NewStatsService(statsRepo, log)
	adminUserSvc := service.NewAdminUserService(userRepo, statsRepo, hub, log)
	eventSvc := service.NewEventService(eventRepo, images, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, auditRepo, log)
	marketplaceHandler := handler.NewMarketplaceHandler(marketplaceSvc, authSvc, auditRepo, log)
	adminHandler := handler.NewAdminHandler(moderationSvc, statsSvc, adminUserSvc, auditRepo, log)
	eventHandler := handler.NewEventHandler(eventSvc, auditRepo, log)
	uploadHandler := handler.NewUploadHandler(cloud, cfg.Cloudinary.Folder, log)
	eventUploadHandler := handler.NewUploadHandler(cloud, cfg.Cloudinary.EventsFolder, log)

	authMw := []gin.HandlerFunc{
		middleware.AuthRequired(&cfg.JWT),
		middleware.ActiveAccount(userRepo, log.Named("auth")),
	}

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	r.GET("/ws/moderation", ws.UpgradeModerationWS(&cfg.JWT, hub))

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		me := api.Group("/me")
		me.Use(authMw...)
		{
			me.GET("", authHandler.Me)
			me.PUT("", authHandler.UpdateProfile)
			me.GET("/stats", marketplaceHandler.MyStats)
			me.GET("/wishlist", marketplaceHandler.Wishlist)
			me.GET("/listings", marketplaceHandler.MyListings)
			me.GET("/bookmarks", eventHandler.Bookmarks)
		}

		market := api.Group("/marketplace")
		market.Use(authMw...)
		{
			market.GET("/items", marketplaceHandler.List)
			market.GET("/items/:id", marketplaceHandler.Get)
			market.POST("/items", marketplaceHandler.Create)
			market.PUT("/items/:id", marketplaceHandler.Update)
			market.DELETE("/items/:id", marketplaceHandler.Delete)
			market.POST("/items/:id/sold", marketplaceHandler.MarkSold)
			market.POST("/items/:id/available", marketplaceHandler.MarkAvailable)
			market.POST("/items/:id/like", marketplaceHandler.ToggleLike)
			market.POST("/items/:id/reports", marketplaceHandler.Report)
		}

		events := api.Group("/events")
		events.Use(authMw...)
		{
			events.GET("", eventHandler.List)
			events.GET("/:id", eventHandler.Get)
			events.POST("/:id/bookmark", eventHandler.ToggleBookmark)
			events.POST("/:id/register", eventHandler.Register)
		}

		uploads := api.Group("/uploads")
		uploads.Use(authMw...)
		uploads.POST("/images", uploadHandler.UploadImage)

		admin := api.Group("/admin")
		admin.Use(authMw...)
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("/dashboard/stats", adminHandler.Dashboard)

			admin.GET("/marketplace/items", adminHandler.ListItems)
			admin.GET("/marketplace/stats", adminHandler.MarketplaceStats)
			admin.PUT("/marketplace/items/:id/status", adminHandler.UpdateItemStatus)
			admin.DELETE("/marketplace/items/:id", adminHandler.DeleteItem)

			admin.GET("/reports", adminHandler.ListReports)
			admin.GET("/reports/stats", adminHandler.ReportStats)
			admin.GET("/reports/items/:id", adminHandler.ReportsForItem)
			admin.PUT("/reports/:id/status", adminHandler.ResolveReport)
			admin.PUT("/reports/items/:id/flag", adminHandler.FlagItem)

			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/stats", adminHandler.UserStats)
			admin.PUT("/users/:id/ban", adminHandler.BanUser)
			admin.PUT("/users/:id/unban", adminHandler.UnbanUser)

			admin.GET("/events", eventHandler.AdminList)
			admin.POST("/events", eventHandler.Create)
			admin.PUT("/events/:id", eventHandler.Update)
			admin.DELETE("/events/:id", eventHandler.Delete)
			admin.POST("/events/images", eventUploadHandler.UploadImage)
			admin.GET("/colleges", eventHandler.Colleges)
			admin.GET("/colleges/:id/programs", eventHandler.Programs)
			admin.GET("/programs", eventHandler.Programs)
		}
	}
	return r, nil
}

// WithCORS wraps the engine with the configured cross-origin policy.
func WithCORS(cfg config.CORSConfig, h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(h)
}
