package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/models"
	"subtrack/internal/types"
)

const (
	upcomingPaymentsLimit = 5
	upcomingWindowDays    = 7
	expenseHistoryMonths  = 6
	categoryStatsLimit    = 5
)

// Summary periods accepted by GetSummary.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// dashboardService composes subscription and transaction data for the
// dashboard. It never writes.
type dashboardService struct {
	db           *gorm.DB
	transactions TransactionServicer
	preferences  PreferenceServicer
	categories   CategoryServicer
	now          func() time.Time
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, transactions TransactionServicer, preferences PreferenceServicer, categories CategoryServicer) DashboardServicer {
	return &dashboardService{
		db:           db,
		transactions: transactions,
		preferences:  preferences,
		categories:   categories,
		now:          time.Now,
	}
}

func (s *dashboardService) activeSubscriptions() *gorm.DB {
	return s.db.Model(&models.Subscription{}).Where("status = ?", models.SubscriptionStatusActive)
}

func (s *dashboardService) spentBetween(from, until types.Date) (decimal.Decimal, error) {
	filter := completedFilter()
	filter.From, filter.Until = &from, &until
	return s.transactions.SumAmount(filter)
}

// GetOverview returns the dashboard page.
func (s *dashboardService) GetOverview() (*DashboardOverview, error) {
	now := s.now().UTC()
	today := types.DateOf(now)

	pref, err := s.preferences.GetPreferences()
	if err != nil {
		return nil, err
	}

	monthStart, monthEnd := monthRange(today.Year(), today.Month())
	prev := monthStart.AddDate(0, -1, 0)
	prevStart, prevEnd := monthRange(prev.Year(), prev.Month())

	current, err := s.spentBetween(monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	previous, err := s.spentBetween(prevStart, prevEnd)
	if err != nil {
		return nil, err
	}

	overview := &DashboardOverview{
		Currency:         pref.Currency,
		CurrentMonthName: now.Format("January 2006"),
	}

	change := decimal.Zero
	if previous.IsPositive() {
		change = current.Sub(previous).Div(previous).Mul(hundred)
	}
	direction := "up"
	if change.IsNegative() {
		direction = "down"
	}
	overview.Stats.MonthlySpent = MonthlySpent{
		Current:         current,
		Previous:        previous,
		ChangePercent:   round1(change),
		ChangeDirection: direction,
	}

	if err := s.activeSubscriptions().Count(&overview.Stats.ActiveSubscriptions.Count).Error; err != nil {
		return nil, internal(err)
	}
	weekStart, weekEnd := weekRange(today)
	if err := s.activeSubscriptions().
		Where("next_payment_date >= ? AND next_payment_date < ?", weekStart, weekEnd).
		Count(&overview.Stats.ActiveSubscriptions.UpcomingThisWeek).Error; err != nil {
		return nil, internal(err)
	}

	var priceSum struct {
		Total decimal.Decimal
	}
	if err := s.activeSubscriptions().Select("COALESCE(SUM(price), 0) AS total").Scan(&priceSum).Error; err != nil {
		return nil, internal(err)
	}
	overview.Stats.AverageCheck.Amount = decimal.Zero
	if count := overview.Stats.ActiveSubscriptions.Count; count > 0 {
		overview.Stats.AverageCheck.Amount = money(priceSum.Total.Div(decimal.NewFromInt(count)))
	}

	if overview.UpcomingPayments, err = s.upcomingPayments(today); err != nil {
		return nil, err
	}
	if overview.MonthlyExpenses, err = s.monthlyExpenses(monthStart, monthEnd); err != nil {
		return nil, err
	}
	if overview.CategoryStats, err = s.categoryStats(monthStart, monthEnd); err != nil {
		return nil, err
	}
	if overview.QuickStats, err = s.quickStats(today, current, previous); err != nil {
		return nil, err
	}

	return overview, nil
}

func (s *dashboardService) upcomingPayments(today types.Date) ([]DashboardPayment, error) {
	var subs []models.Subscription
	if err := s.activeSubscriptions().
		Preload("Category").
		Where("next_payment_date >= ? AND next_payment_date <= ?", today, today.AddDays(upcomingWindowDays)).
		Order("next_payment_date ASC").
		Limit(upcomingPaymentsLimit).
		Find(&subs).Error; err != nil {
		return nil, internal(err)
	}

	payments := make([]DashboardPayment, 0, len(subs))
	for _, sub := range subs {
		payment := DashboardPayment{
			ID:      sub.ID,
			Name:    sub.Name,
			Date:    sub.NextPaymentDate.Format("02 Jan"),
			Amount:  sub.Price,
			LogoURL: sub.LogoURL,
			Icon:    initial(sub.Name),
		}
		if sub.Category != nil {
			name := sub.Category.Name
			payment.CategoryName = &name
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// monthlyExpenses returns completed spend for the last months up to and
// including the current one, with empty months as zero.
func (s *dashboardService) monthlyExpenses(monthStart, monthEnd types.Date) ([]MonthTotal, error) {
	from := types.DateOf(monthStart.AddDate(0, -(expenseHistoryMonths - 1), 0))
	filter := completedFilter()
	filter.From, filter.Until = &from, &monthEnd

	daily, err := s.transactions.DailyTotals(filter)
	if err != nil {
		return nil, err
	}

	months := make([]MonthTotal, expenseHistoryMonths)
	index := make(map[string]int, expenseHistoryMonths)
	for i := range months {
		m := from.AddDate(0, i, 0)
		months[i] = MonthTotal{
			Name:  m.Month().String()[:3],
			Year:  m.Year(),
			Month: int(m.Month()),
			Total: decimal.Zero,
		}
		index[m.Format("2006-01")] = i
	}
	for _, day := range daily {
		if i, ok := index[day.Date.Format("2006-01")]; ok {
			months[i].Total = months[i].Total.Add(day.Total)
		}
	}
	for i := range months {
		months[i].Total = money(months[i].Total)
	}
	return months, nil
}

func (s *dashboardService) categoryStats(from, until types.Date) ([]CategoryStat, error) {
	filter := completedFilter()
	filter.From, filter.Until = &from, &until

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

	stats := []CategoryStat{}
	for _, total := range totals {
		if len(stats) == categoryStatsLimit {
			break
		}
		if total.CategoryID == nil {
			continue
		}
		category, ok := byID[*total.CategoryID]
		if !ok {
			continue
		}
		stats = append(stats, CategoryStat{Name: category.Name, Total: total.Total, Color: category.Color})
	}
	return stats, nil
}

func (s *dashboardService) quickStats(today types.Date, current, previous decimal.Decimal) (QuickStats, error) {
	stats := QuickStats{
		SavingsThisMonth:      decimal.Zero,
		SubscriptionsByStatus: map[string]int64{},
	}

	yearStart, yearEnd := yearRange(today.Year())
	total, err := s.spentBetween(yearStart, yearEnd)
	if err != nil {
		return stats, err
	}
	stats.TotalYearly = total

	if previous.IsPositive() {
		stats.SavingsThisMonth = money(previous.Sub(current))
	}

	var top models.Subscription
	err = s.activeSubscriptions().Order("price DESC").First(&top).Error
	switch {
	case err == nil:
		stats.MostExpensiveSubscription = &ExpensiveSubscription{Name: top.Name, Price: top.Price}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return stats, internal(err)
	}

	var rows []struct {
		Status models.SubscriptionStatus
		Count  int64
	}
	if err := s.db.Model(&models.Subscription{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return stats, internal(err)
	}
	for _, status := range []models.SubscriptionStatus{
		models.SubscriptionStatusActive,
		models.SubscriptionStatusPaused,
		models.SubscriptionStatusCancelled,
	} {
		stats.SubscriptionsByStatus[string(status)] = 0
	}
	var inactive int64
	for _, row := range rows {
		stats.SubscriptionsByStatus[string(row.Status)] = row.Count
		if row.Status != models.SubscriptionStatusActive {
			inactive += row.Count
		}
	}
	stats.SubscriptionsByStatus["inactive"] = inactive

	return stats, nil
}

// GetNotifications returns the dashboard notices for today.
func (s *dashboardService) GetNotifications() ([]Notification, error) {
	pref, err := s.preferences.GetPreferences()
	if err != nil {
		return nil, err
	}

	today := types.DateOf(s.now().UTC())
	notifications := []Notification{}

	if pref.NotifyOverbudget {
		warnings, err := s.budgetWarnings(today)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, warnings...)
	}

	if pref.NotifyUpcoming {
		var tomorrow int64
		if err := s.activeSubscriptions().
			Where("next_payment_date = ?", today.AddDays(1)).
			Count(&tomorrow).Error; err != nil {
			return nil, internal(err)
		}
		if tomorrow > 0 {
			notifications = append(notifications, Notification{
				Type:    "info",
				Title:   "Payments due tomorrow",
				Message: fmt.Sprintf("%d subscription(s) will be charged tomorrow", tomorrow),
				Icon:    "credit-card",
				Action:  "/subscriptions",
			})
		}
	}

	filter := completedFilter()
	until := today.AddDays(1)
	filter.From, filter.Until = &today, &until
	count, err := s.transactions.CountTransactions(filter)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		notifications = append(notifications, Notification{
			Type:    "success",
			Title:   "Today's transactions",
			Message: fmt.Sprintf("%d new transaction(s) today", count),
			Icon:    "check-circle",
			Action:  "/transactions",
		})
	}

	return notifications, nil
}

// budgetWarnings checks this month's active budgets against live spend.
func (s *dashboardService) budgetWarnings(today types.Date) ([]Notification, error) {
	var budgets []models.Budget
	if err := s.db.Preload("Category").
		Where("is_active = ? AND period = ? AND year = ? AND month = ?",
			true, models.BudgetPeriodMonthly, today.Year(), int(today.Month())).
		Find(&budgets).Error; err != nil {
		return nil, internal(err)
	}

	from, until := monthRange(today.Year(), today.Month())
	warnings := []Notification{}
	for _, budget := range budgets {
		if !budget.LimitAmount.IsPositive() {
			continue
		}

		filter := completedFilter()
		filter.From, filter.Until = &from, &until
		name := "Total"
		if budget.CategoryID != nil {
			filter.CategoryID = budget.CategoryID
			if budget.Category != nil {
				name = budget.Category.Name
			}
		}

		spent, err := s.transactions.SumAmount(filter)
		if err != nil {
			return nil, err
		}
		pct := percentOf(spent, budget.LimitAmount)
		if pct.LessThan(alertThreshold) {
			continue
		}
		warnings = append(warnings, Notification{
			Type:    "warning",
			Title:   "Budget limit reached",
			Message: fmt.Sprintf("Category '%s' reached %.1f%% of its limit", name, round1(pct)),
			Icon:    "alert-triangle",
			Action:  "/budget",
		})
	}
	return warnings, nil
}

// GetSummary totals completed transactions over period.
func (s *dashboardService) GetSummary(period string) (*PeriodSummary, error) {
	today := types.DateOf(s.now().UTC())

	var from, until types.Date
	switch period {
	case PeriodToday:
		from, until = today, today.AddDays(1)
	case PeriodWeek:
		from, until = weekRange(today)
	case PeriodMonth:
		from, until = monthRange(today.Year(), today.Month())
	case PeriodYear:
		from, until = yearRange(today.Year())
	default:
		return nil, apperrors.WithFields(apperrors.ErrInvalidPeriod, map[string]string{
			"period": "The selected period is invalid.",
		})
	}

	pref, err := s.preferences.GetPreferences()
	if err != nil {
		return nil, err
	}

	filter := completedFilter()
	filter.From, filter.Until = &from, &until

	total, err := s.transactions.SumAmount(filter)
	if err != nil {
		return nil, err
	}
	count, err := s.transactions.CountTransactions(filter)
	if err != nil {
		return nil, err
	}
	mostExpensive, err := s.transactions.MostExpensive(filter)
	if err != nil {
		return nil, err
	}
	daily, err := s.transactions.DailyTotals(filter)
	if err != nil {
		return nil, err
	}
	if daily == nil {
		daily = []DailyTotal{}
	}

	summary := &PeriodSummary{
		Period:        period,
		Total:         total,
		Count:         count,
		Average:       decimal.Zero,
		MostExpensive: mostExpensive,
		DailyData:     daily,
		Currency:      pref.Currency,
	}
	if count > 0 {
		summary.Average = money(total.Div(decimal.NewFromInt(count)))
	}
	return summary, nil
}
