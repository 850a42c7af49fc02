package router

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/handler"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/middleware"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
)

// Catalog reads are cached by browsers and proxies for five minutes.
const catalogMaxAge = 300

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Subject     *handler.SubjectHandler
	Regulation  *handler.RegulationHandler
	Calculation *handler.CalculationHandler
	Submission  *handler.SubmissionHandler
	Feed        *handler.FeedHandler
	Wizard      *handler.WizardHandler
	Dashboard   *handler.DashboardHandler
	System      *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// ctx bounds the background sweepers of the rate limiters.
func SetupRouter(
	ctx context.Context,
	auth middleware.TokenValidator,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	router.GET("/health", handlers.System.Health)

	// ─── 1. Catalog Group (Public, Cacheable) ──────────────────────────
	catalog := router.Group("/api/v1")
	catalog.Use(middleware.CacheControl(catalogMaxAge))
	{
		catalog.GET("/subjects", handlers.Subject.List)
		catalog.GET("/batches", handlers.Subject.Batches)
		catalog.GET("/departments", handlers.Subject.Departments)

		catalog.GET("/regulations", handlers.Regulation.List)
		catalog.GET("/regulations/active", handlers.Regulation.ListActive)
		catalog.GET("/regulations/for-batch/:batch", handlers.Regulation.ForBatch)
	}

	// ─── 2. Calculation & Wizard Group (Public, Rate Limited) ──────────
	calcLimiter := middleware.NewRateLimiter(ctx, 120, time.Minute)

	calculate := router.Group("/api/v1/calculate")
	calculate.Use(calcLimiter.Middleware())
	{
		calculate.POST("/sgpa", handlers.Calculation.SGPA)
		calculate.POST("/sgpa/report", handlers.Calculation.SGPAReport)
		calculate.POST("/cgpa", handlers.Calculation.CGPA)
	}

	wizard := router.Group("/api/v1/wizard")
	wizard.Use(calcLimiter.Middleware())
	{
		wizard.POST("", handlers.Wizard.Start)
		wizard.GET("/:id", handlers.Wizard.Get)
		wizard.POST("/:id/advance", handlers.Wizard.Advance)
		wizard.POST("/:id/back", handlers.Wizard.Back)
		wizard.GET("/:id/subjects", handlers.Wizard.Subjects)
	}

	// ─── 3. Auth Group (Public, Rate Limited) ──────────────────────────
	// 10 login attempts per minute per IP.
	authLimiter := middleware.NewRateLimiter(ctx, 10, time.Minute)

	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/admin/login", authLimiter.Middleware(), handlers.Auth.AdminLogin)
		authGroup.GET("/admin/me", middleware.RequireAdminJWT(auth), handlers.Auth.GetAdminProfile)
	}

	// ─── 4. Admin Group (JWT) ──────────────────────────────────────────
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.RequireAdminJWT(auth))
	{
		admin.GET("/dashboard", handlers.Dashboard.GetDashboardData)
		admin.GET("/system/metrics", handlers.System.SystemMetricsSSE)

		admin.GET("/subjects", handlers.Subject.List)
		admin.GET("/subjects/:id", handlers.Subject.Get)
		admin.POST("/subjects", handlers.Subject.Create)
		admin.PUT("/subjects/:id", handlers.Subject.Update)
		admin.DELETE("/subjects/:id", handlers.Subject.Delete)

		admin.GET("/regulations", handlers.Regulation.List)
		admin.POST("/regulations", handlers.Regulation.Create)
		admin.PUT("/regulations/:id", handlers.Regulation.Update)
		admin.DELETE("/regulations/:id", handlers.Regulation.Delete)

		admin.GET("/submissions", handlers.Submission.List)
		admin.GET("/submissions/export", handlers.Submission.Export)
	}

	// ─── 5. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminWSAuth(auth))
	{
		ws.GET("/admin/submissions/stream", handlers.Feed.Stream)
	}

	return router
}
