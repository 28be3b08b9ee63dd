package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"subtrack/internal/billing"
	"subtrack/internal/models"
	"subtrack/internal/pagination"
	"subtrack/internal/types"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name, color string, budgetLimit *decimal.Decimal) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
	UpdateCategory(id, name, color string, budgetLimit *decimal.Decimal) (*models.Category, error)
	DeleteCategory(id string) error
}

// PreferenceServicer manages the single global preference row.
type PreferenceServicer interface {
	GetPreferences() (*models.UserPreference, error)
	UpdatePreferences(input PreferenceInput) (*models.UserPreference, error)
	SetMonthlyBudget(amount decimal.Decimal) (*models.UserPreference, error)
}

// PreferenceInput holds optional preference changes. Nil fields are left as is.
type PreferenceInput struct {
	MonthlyBudget    *decimal.Decimal
	Currency         *string
	NotifyUpcoming   *bool
	NotifyOverbudget *bool
	WeeklyReport     *bool
}

// TransactionFilter holds optional filter parameters for transaction queries.
// From is inclusive and Until is exclusive.
type TransactionFilter struct {
	From           *types.Date
	Until          *types.Date
	Status         *models.TransactionStatus
	CategoryID     *string
	SubscriptionID *string
}

// CategoryTotal is the spend of one category. CategoryID is nil for
// subscriptions without a category.
type CategoryTotal struct {
	CategoryID *string
	Total      decimal.Decimal
	Count      int64
}

// DailyTotal is the spend of one calendar day.
type DailyTotal struct {
	Date  types.Date      `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"transactions"`
}

// TransactionServicer defines the contract for the transaction store.
type TransactionServicer interface {
	ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	RecentTransactions(subscriptionID string, limit int) ([]models.Transaction, error)
	GetTransactionByID(id string) (*models.Transaction, error)
	SumAmount(filter TransactionFilter) (decimal.Decimal, error)
	CountTransactions(filter TransactionFilter) (int64, error)
	MostExpensive(filter TransactionFilter) (*models.Transaction, error)
	TotalsByCategory(filter TransactionFilter) ([]CategoryTotal, error)
	DailyTotals(filter TransactionFilter) ([]DailyTotal, error)
	ExistsForDate(tx *gorm.DB, subscriptionID string, date types.Date) (bool, error)
	CreateInTx(tx *gorm.DB, transaction *models.Transaction) error
}

// SubscriptionFilter holds list parameters for subscriptions.
type SubscriptionFilter struct {
	Status     *models.SubscriptionStatus
	CategoryID *string
	IsActive   *bool
	Search     string
	SortBy     string
	SortOrder  string
	// Page is only applied when Page.PerPage > 0.
	Page pagination.PageRequest
}

// SubscriptionListStats summarises the filtered list.
type SubscriptionListStats struct {
	Total             int64           `json:"total"`
	Active            int64           `json:"active"`
	MonthlyCost       decimal.Decimal `json:"monthly_cost"`
	UpcomingThisMonth int64           `json:"upcoming_this_month"`
}

// SubscriptionList is the result of ListSubscriptions.
type SubscriptionList struct {
	Subscriptions []models.Subscription `json:"subscriptions"`
	Stats         SubscriptionListStats `json:"stats"`
	Pagination    *pagination.Meta      `json:"pagination"`
}

// UpcomingPayment is one projected charge.
type UpcomingPayment struct {
	Date   types.Date      `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	IsNext bool            `json:"is_next"`
}

// PaymentStats aggregates the transaction history of a subscription.
type PaymentStats struct {
	TotalPaid         decimal.Decimal `json:"total_paid"`
	TransactionsCount int64           `json:"transactions_count"`
	AverageAmount     decimal.Decimal `json:"average_amount"`
}

// SubscriptionDetail is a subscription with its recent history and forecast.
type SubscriptionDetail struct {
	Subscription     *models.Subscription `json:"subscription"`
	BillingDisplay   string               `json:"billing"`
	Transactions     []models.Transaction `json:"transactions"`
	UpcomingPayments []UpcomingPayment    `json:"upcoming_payments"`
	Stats            PaymentStats         `json:"stats"`
}

// CategoryCount is the number and price sum of active subscriptions in a category.
type CategoryCount struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Count      int64           `json:"count"`
	Total      decimal.Decimal `json:"total"`
}

// SubscriptionStats is the global subscription summary.
type SubscriptionStats struct {
	TotalActive       int64           `json:"total_active"`
	TotalInactive     int64           `json:"total_inactive"`
	MonthlyCost       decimal.Decimal `json:"monthly_cost"`
	YearlyCost        decimal.Decimal `json:"yearly_cost"`
	UpcomingThisMonth int64           `json:"upcoming_this_month"`
	ByCategory        []CategoryCount `json:"by_category"`
}

// CreateSubscriptionInput holds the fields of a new subscription.
type CreateSubscriptionInput struct {
	Name            string
	CategoryID      *string
	Description     string
	LogoURL         string
	PlanName        string
	Price           decimal.Decimal
	BillingCycle    billing.Cycle
	StartDate       *types.Date
	NextPaymentDate types.Date
	IsAutoRenew     *bool
	Status          *models.SubscriptionStatus
	Notes           string
}

// UpdateSubscriptionInput holds a partial update. Nil fields are left as is;
// an empty CategoryID clears the category. IsActive is only consulted when
// Status is nil.
type UpdateSubscriptionInput struct {
	Name            *string
	CategoryID      *string
	Description     *string
	LogoURL         *string
	PlanName        *string
	Price           *decimal.Decimal
	BillingCycle    *billing.Cycle
	StartDate       *types.Date
	NextPaymentDate *types.Date
	IsAutoRenew     *bool
	Status          *models.SubscriptionStatus
	IsActive        *bool
	Notes           *string
}

// SubscriptionServicer defines the contract for the subscription store.
type SubscriptionServicer interface {
	ListSubscriptions(filter SubscriptionFilter) (*SubscriptionList, error)
	GetSubscription(id string) (*SubscriptionDetail, error)
	GetSubscriptionByID(id string) (*models.Subscription, error)
	CreateSubscription(input CreateSubscriptionInput) (*models.Subscription, error)
	UpdateSubscription(id string, input UpdateSubscriptionInput) (*models.Subscription, error)
	DeleteSubscription(id string) error
	RestoreSubscription(id string) (*models.Subscription, error)
	SetNextPayment(id string, date types.Date) (*models.Subscription, error)
	ToggleStatus(id string) (*models.Subscription, error)
	GetStats() (*SubscriptionStats, error)
}

// GenerateRequest selects what a generator run processes. A nil AsOf means
// today and an empty SubscriptionID means every due subscription.
type GenerateRequest struct {
	AsOf           *types.Date `json:"as_of,omitempty"`
	SubscriptionID string      `json:"subscription_id,omitempty"`
}

// GenerateError records a subscription the generator could not process.
type GenerateError struct {
	SubscriptionID string `json:"subscription_id"`
	Message        string `json:"message"`
}

// GenerateResult summarises one generator run.
type GenerateResult struct {
	AsOf     types.Date      `json:"as_of"`
	Created  int             `json:"created"`
	Skipped  int             `json:"skipped"`
	Errors   []GenerateError `json:"errors"`
	Duration time.Duration   `json:"duration"`
}

// GeneratorServicer materialises transactions for due subscriptions.
type GeneratorServicer interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// GenerationObserver is told about every completed generator run.
type GenerationObserver interface {
	ObserveGeneration(ctx context.Context, result *GenerateResult)
}

// GenerationScheduler arms generator runs for individual subscriptions.
type GenerationScheduler interface {
	Dispatch(req GenerateRequest) error
	ScheduleAt(req GenerateRequest, at time.Time)
	Cancel(subscriptionID string)
}

// CategoryBudget is the month's spend of a category against its limit.
type CategoryBudget struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Spent      decimal.Decimal `json:"spent"`
	Limit      decimal.Decimal `json:"limit"`
	Percentage float64         `json:"percentage"`
}

// ChartSlice is one segment of a spending chart.
type ChartSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// BudgetAlert flags a category at or above 90% of its limit.
type BudgetAlert struct {
	Category   string          `json:"category"`
	Percentage float64         `json:"percentage"`
	Spent      decimal.Decimal `json:"spent"`
	Limit      decimal.Decimal `json:"limit"`
}

// BudgetOverview is the monthly budget page.
type BudgetOverview struct {
	TotalBudget  decimal.Decimal  `json:"total_budget"`
	CurrentSpent decimal.Decimal  `json:"current_spent"`
	Percentage   float64          `json:"percentage"`
	Remaining    decimal.Decimal  `json:"remaining"`
	Categories   []CategoryBudget `json:"categories"`
	ChartData    []ChartSlice     `json:"chart_data"`
	Alerts       []BudgetAlert    `json:"alerts"`
	CurrentMonth string           `json:"current_month"`
	Currency     string           `json:"currency"`
}

// UpsertBudgetInput sets a budget limit. Year defaults to the current year
// and Month to the current month for monthly budgets.
type UpsertBudgetInput struct {
	CategoryID  *string
	Name        string
	LimitAmount decimal.Decimal
	Period      models.BudgetPeriod
	Year        *int
	Month       *int
}

// CategoryOption is a category as offered to select inputs.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
	ID    string `json:"id"`
}

// BudgetTransactionQuery filters the budget transaction list.
type BudgetTransactionQuery struct {
	Year       int
	Month      time.Month
	CategoryID *string
	Page       pagination.PageRequest
}

// TransactionPageSummary totals the transactions on the returned page.
type TransactionPageSummary struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// BudgetTransactions is a page of transactions with its summary.
type BudgetTransactions struct {
	Page    *pagination.PageResponse[models.Transaction]
	Summary TransactionPageSummary
}

// BudgetAnalytics breaks spend down by day and category.
type BudgetAnalytics struct {
	Daily        []DailyTotal    `json:"daily"`
	ByCategory   []ChartSlice    `json:"by_category"`
	PeriodTotal  decimal.Decimal `json:"period_total"`
	AverageDaily decimal.Decimal `json:"average_daily"`
}

// BudgetServicer defines the contract for the budget aggregator.
type BudgetServicer interface {
	GetOverview(year int, month time.Month) (*BudgetOverview, error)
	UpsertBudget(input UpsertBudgetInput) (*models.Budget, error)
	ListBudgets(year int, month *int) ([]models.Budget, error)
	DeleteBudget(id string) error
	SetMonthlyBudget(amount decimal.Decimal) (*models.UserPreference, error)
	ListCategories() ([]CategoryOption, error)
	ListTransactions(query BudgetTransactionQuery) (*BudgetTransactions, error)
	GetAnalytics(start, end types.Date) (*BudgetAnalytics, error)
}

// MonthlySpent compares this month's spend with the previous month.
type MonthlySpent struct {
	Current         decimal.Decimal `json:"current"`
	Previous        decimal.Decimal `json:"previous"`
	ChangePercent   float64         `json:"change_percent"`
	ChangeDirection string          `json:"change_direction"`
}

// ActiveSubscriptions counts active subscriptions.
type ActiveSubscriptions struct {
	Count            int64 `json:"count"`
	UpcomingThisWeek int64 `json:"upcoming_this_week"`
}

// AverageCheck is the mean price of active subscriptions.
type AverageCheck struct {
	Amount decimal.Decimal `json:"amount"`
}

// DashboardStats groups the headline figures.
type DashboardStats struct {
	MonthlySpent        MonthlySpent        `json:"monthly_spent"`
	ActiveSubscriptions ActiveSubscriptions `json:"active_subscriptions"`
	AverageCheck        AverageCheck        `json:"average_check"`
}

// DashboardPayment is an upcoming charge on the dashboard.
type DashboardPayment struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	LogoURL      string          `json:"logo_url"`
	CategoryName *string         `json:"category_name"`
	Icon         string          `json:"icon"`
}

// MonthTotal is one bar of the monthly expense chart.
type MonthTotal struct {
	Name  string          `json:"name"`
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CategoryStat is one category of the month's top spend list.
type CategoryStat struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
	Color string          `json:"color"`
}

// ExpensiveSubscription names the priciest active subscription.
type ExpensiveSubscription struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// QuickStats holds secondary dashboard figures.
type QuickStats struct {
	TotalYearly               decimal.Decimal        `json:"total_yearly"`
	SavingsThisMonth          decimal.Decimal        `json:"savings_this_month"`
	MostExpensiveSubscription *ExpensiveSubscription `json:"most_expensive_subscription"`
	SubscriptionsByStatus     map[string]int64       `json:"subscriptions_by_status"`
}

// DashboardOverview is the dashboard page.
type DashboardOverview struct {
	Stats            DashboardStats     `json:"stats"`
	UpcomingPayments []DashboardPayment `json:"upcoming_payments"`
	MonthlyExpenses  []MonthTotal       `json:"monthly_expenses"`
	CategoryStats    []CategoryStat     `json:"category_stats"`
	QuickStats       QuickStats         `json:"quick_stats"`
	Currency         string             `json:"currency"`
	CurrentMonthName string             `json:"current_month_name"`
}

// Notification is a dashboard notice.
type Notification struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
	Action  string `json:"action"`
}

// PeriodSummary totals completed transactions over a period.
type PeriodSummary struct {
	Period        string              `json:"period"`
	Total         decimal.Decimal     `json:"total"`
	Count         int64               `json:"count"`
	Average       decimal.Decimal     `json:"average"`
	MostExpensive *models.Transaction `json:"most_expensive"`
	DailyData     []DailyTotal        `json:"daily_data"`
	Currency      string              `json:"currency"`
}

// DashboardServicer defines the contract for the dashboard aggregator.
type DashboardServicer interface {
	GetOverview() (*DashboardOverview, error)
	GetNotifications() ([]Notification, error)
	GetSummary(period string) (*PeriodSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
