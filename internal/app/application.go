package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"attraction-cms-backend/internal/config"
	"attraction-cms-backend/internal/handlers"
	"attraction-cms-backend/internal/middleware"
	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/render"
	"attraction-cms-backend/internal/repository"
	"attraction-cms-backend/internal/seed"
	"attraction-cms-backend/internal/service"
	"attraction-cms-backend/pkg/cache"
	"attraction-cms-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db          *gorm.DB
	cache       *cache.Cache
	rateLimiter *middleware.RateLimitManager

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	User        repository.UserRepository
	Section     repository.SectionRepository
	Page        repository.PageRepository
	PageSection repository.PageSectionRepository
}

type serviceContainer struct {
	Auth        *service.AuthService
	Section     *service.SectionService
	Page        *service.PageService
	PageSection *service.PageSectionService
	Assembler   *service.AssemblerService
	Upload      *service.UploadService
}

type handlerContainer struct {
	Auth        *handlers.AuthHandler
	Section     *handlers.SectionHandler
	Page        *handlers.PageHandler
	PageSection *handlers.PageSectionHandler
	Upload      *handlers.UploadHandler
	Stats       *handlers.StatsHandler
}

func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.runMigrations(); err != nil {
		return nil, err
	}
	if err := app.createIndexes(); err != nil {
		return nil, err
	}
	if err := app.initCache(); err != nil {
		return nil, err
	}

	app.initRepositories()
	app.initServices()

	if err := seed.Sections(app.repositories.Section); err != nil {
		return nil, err
	}

	app.initHandlers()
	app.rateLimiter = middleware.NewRateLimitManager(ctx)
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimiter != nil {
		if err := a.rateLimiter.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limiter", nil)
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.User{},
		&models.Section{},
		&models.Page{},
		&models.PageSection{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

func (a *Application) createIndexes() error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_sections_active ON sections(is_active) WHERE is_active = true",
		"CREATE INDEX IF NOT EXISTS idx_sections_order ON sections(\"order\" ASC)",
		"CREATE INDEX IF NOT EXISTS idx_pages_published ON pages(is_published) WHERE is_published = true",
		"CREATE INDEX IF NOT EXISTS idx_page_sections_page_order ON page_sections(page_id, \"order\" ASC)",
		"CREATE INDEX IF NOT EXISTS idx_sections_content ON sections USING GIN (content)",
		"CREATE INDEX IF NOT EXISTS idx_page_sections_content ON page_sections USING GIN (content)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() error {
	if !a.cfg.EnableCache {
		a.cache = nil
		return nil
	}

	c, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableRedis)
	if err != nil {
		return fmt.Errorf("failed to connect to cache: %w", err)
	}
	a.cache = c
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		User:        repository.NewUserRepository(a.db),
		Section:     repository.NewSectionRepository(a.db),
		Page:        repository.NewPageRepository(a.db),
		PageSection: repository.NewPageSectionRepository(a.db),
	}
}

func (a *Application) initServices() {
	pageService := service.NewPageService(a.repositories.Page, a.repositories.PageSection, a.cache, a.cfg.PagesDir)
	pageSectionService := service.NewPageSectionService(a.repositories.PageSection, a.repositories.Page, a.cache)

	a.services = serviceContainer{
		Auth:        service.NewAuthService(a.repositories.User, a.cfg.JWTSecret, a.cfg.AdminSignupCode),
		Section:     service.NewSectionService(a.repositories.Section, a.cache),
		Page:        pageService,
		PageSection: pageSectionService,
		Assembler:   service.NewAssemblerService(pageService, pageSectionService, render.NewDefaultRegistry()),
		Upload:      service.NewUploadService(a.cfg.UploadDir, a.cfg.MaxUploadSize),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Auth:        handlers.NewAuthHandler(a.services.Auth),
		Section:     handlers.NewSectionHandler(a.services.Section, a.services.Upload),
		Page:        handlers.NewPageHandler(a.services.Page, a.services.Assembler),
		PageSection: handlers.NewPageSectionHandler(a.services.PageSection, a.services.Assembler),
		Upload:      handlers.NewUploadHandler(a.services.Upload),
		Stats: handlers.NewStatsHandler(
			a.repositories.User,
			a.repositories.Section,
			a.repositories.Page,
			a.repositories.PageSection,
			a.cache,
		),
	}
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.rateLimiter, a.cfg))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.Static("/static", "./static")
	router.Static("/uploads", a.cfg.UploadDir)

	// Published pages for anonymous visitors.
	router.GET("/pages/:slug", a.handlers.Page.Serve)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", a.handlers.Auth.Register)
			auth.POST("/login", a.handlers.Auth.Login)
			auth.POST("/logout", a.handlers.Auth.Logout)
		}

		public := api.Group("/public")
		{
			public.GET("/sections", a.handlers.Section.ListActive)
			public.GET("/sections/:name", a.handlers.Section.GetByName)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		{
			protected.GET("/auth/profile", a.handlers.Auth.Profile)
			protected.PUT("/auth/profile", a.handlers.Auth.UpdateProfile)
			protected.PUT("/auth/password", a.handlers.Auth.ChangePassword)

			protected.GET("/sections", a.handlers.Section.List)
			protected.POST("/sections", a.handlers.Section.Create)
			protected.PUT("/sections/reorder", a.handlers.Section.Reorder)
			protected.GET("/sections/:id", a.handlers.Section.Get)
			protected.PUT("/sections/:id", a.handlers.Section.Update)
			protected.DELETE("/sections/:id", a.handlers.Section.Delete)
			protected.POST("/sections/:id/upload", a.handlers.Section.UploadImage)

			protected.GET("/pages", a.handlers.Page.List)
			protected.POST("/pages", a.handlers.Page.Create)
			protected.GET("/pages/templates", a.handlers.Page.Templates)
			protected.GET("/pages/:slug", a.handlers.Page.Get)
			protected.PUT("/pages/:slug", a.handlers.Page.Save)
			protected.DELETE("/pages/:slug", a.handlers.Page.Delete)
			protected.PUT("/pages/:slug/publish", a.handlers.Page.Publish)
			protected.PUT("/pages/:slug/unpublish", a.handlers.Page.Unpublish)
			protected.GET("/pages/:slug/render", a.handlers.Page.Render)

			protected.GET("/page-sections/page/:pageId", a.handlers.PageSection.List)
			protected.POST("/page-sections/page/:pageId", a.handlers.PageSection.Create)
			protected.PUT("/page-sections/page/:pageId/reorder", a.handlers.PageSection.Reorder)
			protected.POST("/page-sections/preview", a.handlers.PageSection.Preview)
			protected.GET("/page-sections/:id", a.handlers.PageSection.Get)
			protected.PUT("/page-sections/:id", a.handlers.PageSection.Update)
			protected.DELETE("/page-sections/:id", a.handlers.PageSection.Delete)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/users", a.handlers.Auth.ListUsers)
			admin.PUT("/users/:id", a.handlers.Auth.UpdateUser)
			admin.DELETE("/users/:id", a.handlers.Auth.DeleteUser)

			admin.POST("/upload-image", a.handlers.Upload.Upload)

			admin.GET("/stats", a.handlers.Stats.Stats)
			admin.DELETE("/cache", a.handlers.Stats.FlushCache)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
		})
	})

	a.router = router
}
