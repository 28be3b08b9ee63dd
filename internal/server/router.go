// Package server assembles the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"subtrack/internal/handlers"
	"subtrack/internal/metrics"
	"subtrack/internal/middleware"
	"subtrack/internal/services"
)

// Services holds everything the handlers depend on.
type Services struct {
	Subscriptions services.SubscriptionServicer
	Categories    services.CategoryServicer
	Preferences   services.PreferenceServicer
	Budget        services.BudgetServicer
	Transactions  services.TransactionServicer
	Dashboard     services.DashboardServicer
	Audit         services.AuditServicer
	Jobs          handlers.Dispatcher
}

// Options configures the router.
type Options struct {
	CORSOrigins    []string
	EnablePprof    bool
	PipelineAPIKey string
	// Metrics is optional; /metrics is only served when set.
	Metrics *metrics.Metrics
}

// NewRouter builds the gin engine with every API route attached.
func NewRouter(svc Services, opts Options) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.ErrorHandler())
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", middleware.APIKeyHeader},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
		}))
	}

	if opts.EnablePprof {
		pprof.Register(r)
	}
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/api/health", health)

	AttachRoutes(r.Group("/api/v1"), svc, opts.PipelineAPIKey)
	return r
}

// AttachRoutes registers the v1 API on group.
func AttachRoutes(group *gin.RouterGroup, svc Services, pipelineAPIKey string) {
	budgetHandler := handlers.NewBudgetHandler(svc.Budget, svc.Audit)
	subscriptionHandler := handlers.NewSubscriptionHandler(svc.Subscriptions, svc.Categories, svc.Audit)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories, svc.Audit)
	preferenceHandler := handlers.NewPreferenceHandler(svc.Preferences, svc.Audit)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions)
	jobHandler := handlers.NewJobHandler(svc.Jobs, svc.Audit)

	budget := group.Group("/budget")
	budget.GET("", budgetHandler.GetOverview)
	budget.POST("", budgetHandler.UpsertBudget)
	budget.PUT("/total", budgetHandler.SetTotalBudget)
	budget.GET("/categories", budgetHandler.ListCategories)
	budget.GET("/transactions", budgetHandler.ListTransactions)
	budget.GET("/analytics", budgetHandler.GetAnalytics)
	budget.GET("/limits", budgetHandler.ListLimits)
	budget.DELETE("/limits/:id", budgetHandler.DeleteLimit)

	subscriptions := group.Group("/subscriptions")
	subscriptions.GET("", subscriptionHandler.ListSubscriptions)
	subscriptions.POST("", subscriptionHandler.CreateSubscription)
	subscriptions.GET("/stats", subscriptionHandler.GetStats)
	subscriptions.GET("/categories", subscriptionHandler.ListCategories)
	subscriptions.GET("/:id", subscriptionHandler.GetSubscription)
	subscriptions.PUT("/:id", subscriptionHandler.UpdateSubscription)
	subscriptions.DELETE("/:id", subscriptionHandler.DeleteSubscription)
	subscriptions.POST("/:id/restore", subscriptionHandler.RestoreSubscription)
	subscriptions.PUT("/:id/next-payment", subscriptionHandler.SetNextPayment)
	subscriptions.POST("/:id/toggle-status", subscriptionHandler.ToggleStatus)

	dashboard := group.Group("/dashboard")
	dashboard.GET("", dashboardHandler.GetOverview)
	dashboard.GET("/notifications", dashboardHandler.GetNotifications)
	dashboard.GET("/summary", dashboardHandler.GetSummary)

	categories := group.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	preferences := group.Group("/preferences")
	preferences.GET("", preferenceHandler.GetPreferences)
	preferences.PUT("", preferenceHandler.UpdatePreferences)

	transactions := group.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)

	jobs := group.Group("/jobs", middleware.APIKeyAuth(pipelineAPIKey))
	jobs.POST("/generate-transactions", jobHandler.GenerateTransactions)
}

// health reports liveness.
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
