package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/jkim-dev/budget_tracker_app/cmd/docs"
	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/middleware"
	"github.com/jkim-dev/budget_tracker_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", GetHealth)

	registerAuthRoutes(r, cfg, services.User)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes sets up the public authentication routes. Both routes
// are rate limited per client IP since they sit in front of bcrypt.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
	}
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to the per-entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerCategoryRoutes(v1, services.Category)
	registerTransactionRoutes(v1, services.Transaction)
	registerReportingRoutes(v1, services.Reporting)
}

func registerUserRoutes(v1 *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := NewUserHandler(userService)

	users := v1.Group("/users")
	{
		users.GET("/me", h.GetMe)
		users.DELETE("/me", h.DeleteMe)
	}
}

func registerCategoryRoutes(v1 *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := NewCategoryHandler(categoryService)

	categories := v1.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

func registerTransactionRoutes(v1 *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := NewTransactionHandler(transactionService)

	transactions := v1.Group("/transactions")
	{
		transactions.POST("", h.CreateTransaction)
		transactions.GET("", h.ListTransactions)
		transactions.GET("/:id", h.GetTransaction)
		transactions.PATCH("/:id", h.UpdateTransaction)
		transactions.DELETE("/:id", h.DeleteTransaction)
	}
}

func registerReportingRoutes(v1 *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := NewReportingHandler(reportingService)

	statistics := v1.Group("/transactions/statistics")
	{
		statistics.GET("/category-spending", h.GetCategorySpending)
		statistics.GET("/monthly-trends", h.GetMonthlyTrends)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
