// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/family-finance/backend/internal/integration/entrypoint/controller"
	"github.com/family-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	familyController   *controller.FamilyController
	categoryController *controller.CategoryController
	incomeController   *controller.IncomeController
	expenseController  *controller.ExpenseController
	budgetController   *controller.BudgetController
	reportController   *controller.ReportController
	loginRateLimiter   *middleware.RateLimiter
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	familyController *controller.FamilyController,
	categoryController *controller.CategoryController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	identityMiddleware *middleware.IdentityMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		familyController:   familyController,
		categoryController: categoryController,
		incomeController:   incomeController,
		expenseController:  expenseController,
		budgetController:   budgetController,
		reportController:   reportController,
		loginRateLimiter:   loginRateLimiter,
		identityMiddleware: identityMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.loginRateLimiter.Middleware(), r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Family routes (require caller identity)
		if r.familyController != nil && r.identityMiddleware != nil {
			families := v1.Group("/families")
			families.Use(r.identityMiddleware.Identify())
			{
				families.POST("", r.familyController.Create)
				families.GET("/:id", r.familyController.Get)
				families.GET("/:id/members", r.familyController.ListMembers)
				families.POST("/:id/members", r.familyController.AddMember)

				if r.incomeController != nil {
					families.GET("/:id/incomes", r.incomeController.List)
				}
				if r.expenseController != nil {
					families.GET("/:id/expenses", r.expenseController.List)
				}
				if r.budgetController != nil {
					families.GET("/:id/budgets", r.budgetController.List)
					families.GET("/:id/budgets/alerts", r.budgetController.CheckAlerts)
					families.GET("/:id/budgets/alerts/details", r.budgetController.GetAlertDetails)
				}
				if r.reportController != nil {
					families.GET("/:id/reports/summary", r.reportController.GetSummary)
					families.GET("/:id/reports/transactions", r.reportController.GetReport)
					families.GET("/:id/reports/category-expenses", r.reportController.GetCategoryExpenses)
				}
			}

			// Member routes live outside the /families tree so the
			// member ID path does not collide with the family ID wildcard.
			members := v1.Group("/members")
			members.Use(r.identityMiddleware.Identify())
			{
				members.PUT("/:memberId/role", r.familyController.ChangeMemberRole)
				members.DELETE("/:memberId", r.familyController.RemoveMember)
			}

			me := v1.Group("/me")
			me.Use(r.identityMiddleware.Identify())
			{
				me.GET("/family", r.familyController.GetMine)
			}
		}

		// Category routes (require caller identity)
		if r.categoryController != nil && r.identityMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.identityMiddleware.Identify())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
			}
		}

		// Income routes (require caller identity)
		if r.incomeController != nil && r.identityMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.identityMiddleware.Identify())
			{
				incomes.POST("", r.incomeController.Create)
				incomes.GET("/:id", r.incomeController.Get)
				incomes.PUT("/:id", r.incomeController.Update)
				incomes.DELETE("/:id", r.incomeController.Delete)
			}
		}

		// Expense routes (require caller identity)
		if r.expenseController != nil && r.identityMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.identityMiddleware.Identify())
			{
				expenses.POST("", r.expenseController.Create)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Budget routes (require caller identity)
		if r.budgetController != nil && r.identityMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.identityMiddleware.Identify())
			{
				budgets.POST("", r.budgetController.Create)
				budgets.PUT("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
