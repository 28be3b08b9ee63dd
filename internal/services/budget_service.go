package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/models"
	"subtrack/internal/types"
)

// chartPalette colours chart segments in order.
var chartPalette = []string{
	"hsl(var(--chart-1))",
	"hsl(var(--chart-2))",
	"hsl(var(--chart-3))",
	"hsl(var(--chart-4))",
	"hsl(var(--chart-5))",
}

const (
	uncategorizedName  = "Uncategorized"
	uncategorizedColor = "#9CA3AF"
)

func paletteColor(i int) string {
	return chartPalette[i%len(chartPalette)]
}

// budgetService aggregates spend against budgets. Spend is always computed
// from completed transactions at read time.
type budgetService struct {
	db           *gorm.DB
	transactions TransactionServicer
	preferences  PreferenceServicer
	categories   CategoryServicer
	now          func() time.Time
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, transactions TransactionServicer, preferences PreferenceServicer, categories CategoryServicer) BudgetServicer {
	return &budgetService{
		db:           db,
		transactions: transactions,
		preferences:  preferences,
		categories:   categories,
		now:          time.Now,
	}
}

func completedFilter() TransactionFilter {
	status := models.TransactionStatusCompleted
	return TransactionFilter{Status: &status}
}

// GetOverview returns the budget page for a month.
func (s *budgetService) GetOverview(year int, month time.Month) (*BudgetOverview, error) {
	pref, err := s.preferences.GetPreferences()
	if err != nil {
		return nil, err
	}

	from, until := monthRange(year, month)
	filter := completedFilter()
	filter.From, filter.Until = &from, &until

	spent, err := s.transactions.SumAmount(filter)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListCategories()
	if err != nil {
		return nil, err
	}
	limits, err := s.monthlyLimits(year, month)
	if err != nil {
		return nil, err
	}
	totals, err := s.transactions.TotalsByCategory(filter)
	if err != nil {
		return nil, err
	}
	spentByCategory := make(map[string]decimal.Decimal, len(totals))
	for _, total := range totals {
		if total.CategoryID != nil {
			spentByCategory[*total.CategoryID] = total.Total
		}
	}

	overview := &BudgetOverview{
		TotalBudget:  money(pref.MonthlyBudget),
		CurrentSpent: spent,
		Percentage:   round1(percentOf(spent, pref.MonthlyBudget)),
		Remaining:    money(pref.MonthlyBudget.Sub(spent)),
		Categories:   make([]CategoryBudget, 0, len(categories)),
		ChartData:    []ChartSlice{},
		Alerts:       []BudgetAlert{},
		CurrentMonth: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006"),
		Currency:     pref.Currency,
	}

	names := make(map[string]models.Category, len(categories))
	for _, category := range categories {
		names[category.ID] = category

		categorySpent := spentByCategory[category.ID]
		limit := limits[category.ID]
		pct := percentOf(categorySpent, limit)

		overview.Categories = append(overview.Categories, CategoryBudget{
			ID:         category.ID,
			Name:       category.Name,
			Color:      category.Color,
			Spent:      categorySpent,
			Limit:      money(limit),
			Percentage: round1(pct),
		})

		if limit.IsPositive() && pct.GreaterThanOrEqual(alertThreshold) {
			overview.Alerts = append(overview.Alerts, BudgetAlert{
				Category:   category.Name,
				Percentage: round1(pct),
				Spent:      categorySpent,
				Limit:      money(limit),
			})
		}
	}

	for _, total := range totals {
		if total.CategoryID == nil || !total.Total.IsPositive() {
			continue
		}
		category, ok := names[*total.CategoryID]
		if !ok {
			continue
		}
		overview.ChartData = append(overview.ChartData, ChartSlice{
			Name:  category.Name,
			Value: total.Total,
			Color: paletteColor(len(overview.ChartData)),
		})
	}

	return overview, nil
}

// monthlyLimits returns the monthly category limits of a month keyed by
// category id.
func (s *budgetService) monthlyLimits(year int, month time.Month) (map[string]decimal.Decimal, error) {
	var budgets []models.Budget
	if err := s.db.Where("period = ? AND year = ? AND month = ? AND category_id IS NOT NULL",
		models.BudgetPeriodMonthly, year, int(month)).
		Find(&budgets).Error; err != nil {
		return nil, internal(err)
	}

	limits := make(map[string]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		limits[*budget.CategoryID] = budget.LimitAmount
	}
	return limits, nil
}

// UpsertBudget creates or updates the budget identified by category,
// period, year and month.
func (s *budgetService) UpsertBudget(input UpsertBudgetInput) (*models.Budget, error) {
	if input.LimitAmount.IsNegative() {
		return nil, apperrors.Field("limit_amount", "The limit amount must be at least 0.")
	}
	switch input.Period {
	case models.BudgetPeriodMonthly, models.BudgetPeriodYearly, models.BudgetPeriodWeekly:
	default:
		return nil, apperrors.Field("period", "The selected period is invalid.")
	}
	if input.Month != nil && (*input.Month < 1 || *input.Month > 12) {
		return nil, apperrors.Field("month", "The month must be between 1 and 12.")
	}

	var categoryID *string
	if input.CategoryID != nil && *input.CategoryID != "" {
		if _, err := s.categories.GetCategoryByID(*input.CategoryID); err != nil {
			return nil, err
		}
		id := *input.CategoryID
		categoryID = &id
	}

	now := s.now().UTC()
	year := now.Year()
	if input.Year != nil {
		year = *input.Year
	}
	month := input.Month
	if month == nil && input.Period == models.BudgetPeriodMonthly {
		m := int(now.Month())
		month = &m
	}

	var budget models.Budget
	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("period = ? AND year = ?", input.Period, year)
		if categoryID == nil {
			query = query.Where("category_id IS NULL")
		} else {
			query = query.Where("category_id = ?", *categoryID)
		}
		if month == nil {
			query = query.Where("month IS NULL")
		} else {
			query = query.Where("month = ?", *month)
		}

		err := query.First(&budget).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			budget = models.Budget{
				Name:         input.Name,
				CategoryID:   categoryID,
				LimitAmount:  input.LimitAmount,
				Period:       input.Period,
				Year:         year,
				Month:        month,
				CurrentSpent: decimal.Zero,
				IsActive:     true,
			}
			return tx.Create(&budget).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&budget).Updates(map[string]interface{}{
			"name":          input.Name,
			"limit_amount":  input.LimitAmount,
			"current_spent": decimal.Zero,
			"is_active":     true,
		}).Error
	})
	if err != nil {
		return nil, internal(err)
	}

	return &budget, nil
}

// ListBudgets returns the budgets of a year, optionally narrowed to a month.
func (s *budgetService) ListBudgets(year int, month *int) ([]models.Budget, error) {
	query := s.db.Preload("Category").Where("year = ?", year)
	if month != nil {
		query = query.Where("month = ?", *month)
	}

	budgets := []models.Budget{}
	if err := query.Order("period ASC").Order("month ASC").Order("created_at ASC").Find(&budgets).Error; err != nil {
		return nil, internal(err)
	}
	return budgets, nil
}

// DeleteBudget removes a budget.
func (s *budgetService) DeleteBudget(id string) error {
	var budget models.Budget
	if err := s.db.Where("id = ?", id).First(&budget).Error; err != nil {
		return lookupError(err, apperrors.ErrBudgetNotFound)
	}
	if err := s.db.Delete(&budget).Error; err != nil {
		return internal(err)
	}
	return nil
}

// SetMonthlyBudget sets the whole-account monthly budget.
func (s *budgetService) SetMonthlyBudget(amount decimal.Decimal) (*models.UserPreference, error) {
	return s.preferences.SetMonthlyBudget(amount)
}

// ListCategories returns the categories as select options.
func (s *budgetService) ListCategories() ([]CategoryOption, error) {
	categories, err := s.categories.ListCategories()
	if err != nil {
		return nil, err
	}

	options := make([]CategoryOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, CategoryOption{
			Value: category.ID,
			Label: category.Name,
			Color: category.Color,
			ID:    category.ID,
		})
	}
	return options, nil
}

// ListTransactions returns a page of the month's completed transactions.
// The summary covers the returned page.
func (s *budgetService) ListTransactions(query BudgetTransactionQuery) (*BudgetTransactions, error) {
	now := s.now().UTC()
	if query.Year == 0 {
		query.Year = now.Year()
	}
	if query.Month == 0 {
		query.Month = now.Month()
	}

	from, until := monthRange(query.Year, query.Month)
	filter := completedFilter()
	filter.From, filter.Until = &from, &until

	if query.CategoryID != nil && *query.CategoryID != "" {
		if _, err := s.categories.GetCategoryByID(*query.CategoryID); err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.Code == apperrors.ErrCategoryNotFound.Code {
				return nil, apperrors.Field("category_id", "The selected category id is invalid.")
			}
			return nil, err
		}
		filter.CategoryID = query.CategoryID
	}

	page, err := s.transactions.ListTransactions(filter, query.Page)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, transaction := range page.Data {
		total = total.Add(transaction.Amount)
	}

	return &BudgetTransactions{
		Page: page,
		Summary: TransactionPageSummary{
			Total: money(total),
			Count: len(page.Data),
		},
	}, nil
}

// GetAnalytics breaks completed spend between start and end, both
// inclusive, down by day and by category.
func (s *budgetService) GetAnalytics(start, end types.Date) (*BudgetAnalytics, error) {
	if end.Before(start.Time) {
		return nil, apperrors.WithFields(apperrors.ErrInvalidRange, map[string]string{
			"end_date": "The end date must be a date after or equal to start date.",
		})
	}

	until := end.AddDays(1)
	filter := completedFilter()
	filter.From, filter.Until = &start, &until

	daily, err := s.transactions.DailyTotals(filter)
	if err != nil {
		return nil, err
	}
	totals, err := s.transactions.TotalsByCategory(filter)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.ListCategories()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	analytics := &BudgetAnalytics{
		Daily:        daily,
		ByCategory:   make([]ChartSlice, 0, len(totals)),
		PeriodTotal:  decimal.Zero,
		AverageDaily: decimal.Zero,
	}
	if analytics.Daily == nil {
		analytics.Daily = []DailyTotal{}
	}

	for _, total := range totals {
		analytics.PeriodTotal = analytics.PeriodTotal.Add(total.Total)

		slice := ChartSlice{Name: uncategorizedName, Value: total.Total, Color: uncategorizedColor}
		if total.CategoryID != nil {
			if category, ok := byID[*total.CategoryID]; ok {
				slice.Name, slice.Color = category.Name, category.Color
			}
		}
		analytics.ByCategory = append(analytics.ByCategory, slice)
	}

	analytics.PeriodTotal = money(analytics.PeriodTotal)
	if len(daily) > 0 {
		analytics.AverageDaily = money(analytics.PeriodTotal.Div(decimal.NewFromInt(int64(len(daily)))))
	}
	return analytics, nil
}
