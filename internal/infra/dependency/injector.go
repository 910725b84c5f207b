// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/family-finance/backend/config"
	"github.com/family-finance/backend/internal/application/usecase/auth"
	"github.com/family-finance/backend/internal/application/usecase/budget"
	"github.com/family-finance/backend/internal/application/usecase/category"
	"github.com/family-finance/backend/internal/application/usecase/expense"
	"github.com/family-finance/backend/internal/application/usecase/family"
	"github.com/family-finance/backend/internal/application/usecase/income"
	"github.com/family-finance/backend/internal/application/usecase/report"
	"github.com/family-finance/backend/internal/infra/server/router"
	"github.com/family-finance/backend/internal/integration/adapters"
	"github.com/family-finance/backend/internal/integration/entrypoint/controller"
	"github.com/family-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/family-finance/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Router         *router.Router
	CategorySeeder *category.SeedDefaultCategoriesUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	familyRepo := persistence.NewFamilyRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	clock := adapters.NewSystemClock()
	txManager := persistence.NewTransactionManager(db)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, familyRepo, passwordService, clock, txManager)
	authenticateUseCase := auth.NewAuthenticateUserUseCase(userRepo, passwordService)

	// Create family use cases
	createFamilyUseCase := family.NewCreateFamilyUseCase(familyRepo, userRepo, clock, txManager)
	getFamilyUseCase := family.NewGetFamilyUseCase(familyRepo)
	getFamilyByUserUseCase := family.NewGetFamilyByUserUseCase(familyRepo)
	listMembersUseCase := family.NewListMembersUseCase(familyRepo)
	addMemberUseCase := family.NewAddMemberUseCase(familyRepo, userRepo, clock, txManager)
	changeMemberRoleUseCase := family.NewChangeMemberRoleUseCase(familyRepo)
	removeMemberUseCase := family.NewRemoveMemberUseCase(familyRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, clock)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, familyRepo, clock)
	seedCategoriesUseCase := category.NewSeedDefaultCategoriesUseCase(categoryRepo, clock)

	// Create income use cases
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, familyRepo, categoryRepo, clock)
	getIncomeUseCase := income.NewGetIncomeUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, familyRepo, categoryRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo, familyRepo)
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo, familyRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, familyRepo, categoryRepo, clock)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, familyRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, familyRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, familyRepo)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, familyRepo, categoryRepo, clock)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, familyRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, familyRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, familyRepo, categoryRepo, expenseRepo)
	checkBudgetAlertsUseCase := budget.NewCheckBudgetAlertsUseCase(budgetRepo, familyRepo, categoryRepo, expenseRepo, clock)
	getBudgetAlertsUseCase := budget.NewGetBudgetAlertsUseCase(budgetRepo, familyRepo, categoryRepo, expenseRepo)

	// Create report use cases
	summaryUseCase := report.NewGetFinancialSummaryUseCase(incomeRepo, expenseRepo, budgetRepo, familyRepo)
	reportUseCase := report.NewGetFinancialReportUseCase(incomeRepo, expenseRepo, familyRepo, categoryRepo)
	categoryExpensesUseCase := report.NewGetCategoryExpensesUseCase(expenseRepo, familyRepo, categoryRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(registerUseCase, authenticateUseCase)
	familyController := controller.NewFamilyController(
		createFamilyUseCase,
		getFamilyUseCase,
		getFamilyByUserUseCase,
		listMembersUseCase,
		addMemberUseCase,
		changeMemberRoleUseCase,
		removeMemberUseCase,
	)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase)
	incomeController := controller.NewIncomeController(
		createIncomeUseCase,
		getIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
		listIncomesUseCase,
	)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		listExpensesUseCase,
	)
	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		listBudgetsUseCase,
		checkBudgetAlertsUseCase,
		getBudgetAlertsUseCase,
	)
	reportController := controller.NewReportController(summaryUseCase, reportUseCase, categoryExpensesUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	identityMiddleware := middleware.NewIdentityMiddleware()

	r := router.NewRouter(
		healthController,
		authController,
		familyController,
		categoryController,
		incomeController,
		expenseController,
		budgetController,
		reportController,
		loginRateLimiter,
		identityMiddleware,
	)

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         r,
		CategorySeeder: seedCategoriesUseCase,
	}
}
