package services

import (
	"testing"

	"gorm.io/gorm"

	"subtrack/internal/billing"
	"subtrack/internal/models"
	"subtrack/internal/testutil"
)

func newTestDashboardService(db *gorm.DB) *dashboardService {
	svc := NewDashboardService(db, NewTransactionService(db), NewPreferenceService(db), NewCategoryService(db)).(*dashboardService)
	svc.now = fixedNow
	return svc
}

func TestDashboardOverview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestDashboardService(db)
	testutil.CreateTestPreference(t, db, "500", "USD")

	cat := testutil.CreateTestCategory(t, db)
	netflix := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 17), testutil.WithName("netflix"), testutil.WithPrice("20.00"), testutil.WithCategory(cat.ID))
	testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 25), testutil.WithName("Spotify"), testutil.WithPrice("10.00"), testutil.WithCycle(billing.Yearly))
	testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 16), testutil.WithName("Paused"), testutil.WithPrice("99.00"), testutil.WithStatus(models.SubscriptionStatusPaused))

	testutil.CreateTestTransaction(t, db, netflix.ID, testutil.Date(2024, 1, 2), "30.00")
	testutil.CreateTestTransaction(t, db, netflix.ID, testutil.Date(2023, 12, 2), "40.00")
	testutil.CreateTestTransaction(t, db, netflix.ID, testutil.Date(2023, 8, 2), "5.00")

	overview, err := svc.GetOverview()
	testutil.AssertNoError(t, err)

	t.Run("monthly_spent", func(t *testing.T) {
		spent := overview.Stats.MonthlySpent
		if !spent.Current.Equal(testutil.Money("30")) || !spent.Previous.Equal(testutil.Money("40")) {
			t.Errorf("unexpected spend %s vs %s", spent.Current, spent.Previous)
		}
		if spent.ChangePercent != -25 || spent.ChangeDirection != "down" {
			t.Errorf("expected -25%% down, got %v %s", spent.ChangePercent, spent.ChangeDirection)
		}
	})

	t.Run("active_subscriptions", func(t *testing.T) {
		active := overview.Stats.ActiveSubscriptions
		if active.Count != 2 {
			t.Errorf("expected 2 active, got %d", active.Count)
		}
		if active.UpcomingThisWeek != 1 {
			t.Errorf("expected 1 upcoming this week, got %d", active.UpcomingThisWeek)
		}
		if !overview.Stats.AverageCheck.Amount.Equal(testutil.Money("15")) {
			t.Errorf("expected average check 15, got %s", overview.Stats.AverageCheck.Amount)
		}
	})

	t.Run("upcoming_payments", func(t *testing.T) {
		if len(overview.UpcomingPayments) != 1 {
			t.Fatalf("expected 1 payment in the next 7 days, got %d", len(overview.UpcomingPayments))
		}
		payment := overview.UpcomingPayments[0]
		if payment.Date != "17 Jan" || payment.Icon != "N" {
			t.Errorf("unexpected payment %+v", payment)
		}
		if payment.CategoryName == nil || *payment.CategoryName != cat.Name {
			t.Errorf("expected category name %s", cat.Name)
		}
	})

	t.Run("monthly_expenses", func(t *testing.T) {
		months := overview.MonthlyExpenses
		if len(months) != 6 {
			t.Fatalf("expected 6 months, got %d", len(months))
		}
		if months[0].Name != "Aug" || months[0].Year != 2023 || !months[0].Total.Equal(testutil.Money("5")) {
			t.Errorf("unexpected first month %+v", months[0])
		}
		if months[1].Name != "Sep" || !months[1].Total.IsZero() {
			t.Errorf("expected zero-filled September, got %+v", months[1])
		}
		if months[5].Name != "Jan" || !months[5].Total.Equal(testutil.Money("30")) {
			t.Errorf("unexpected current month %+v", months[5])
		}
	})

	t.Run("category_stats", func(t *testing.T) {
		if len(overview.CategoryStats) != 1 || overview.CategoryStats[0].Name != cat.Name {
			t.Errorf("unexpected category stats %+v", overview.CategoryStats)
		}
	})

	t.Run("quick_stats", func(t *testing.T) {
		quick := overview.QuickStats
		if !quick.TotalYearly.Equal(testutil.Money("30")) {
			t.Errorf("expected total yearly 30, got %s", quick.TotalYearly)
		}
		if !quick.SavingsThisMonth.Equal(testutil.Money("10")) {
			t.Errorf("expected savings 10, got %s", quick.SavingsThisMonth)
		}
		if quick.MostExpensiveSubscription == nil || quick.MostExpensiveSubscription.Name != "netflix" {
			t.Errorf("expected netflix as most expensive active subscription, got %+v", quick.MostExpensiveSubscription)
		}
		byStatus := quick.SubscriptionsByStatus
		if byStatus["active"] != 2 || byStatus["paused"] != 1 || byStatus["cancelled"] != 0 || byStatus["inactive"] != 1 {
			t.Errorf("unexpected status counts %v", byStatus)
		}
	})

	if overview.CurrentMonthName != "January 2024" {
		t.Errorf("expected January 2024, got %s", overview.CurrentMonthName)
	}
}

func TestDashboardOverviewEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestDashboardService(db)

	overview, err := svc.GetOverview()
	testutil.AssertNoError(t, err)

	if overview.Stats.MonthlySpent.ChangePercent != 0 || overview.Stats.MonthlySpent.ChangeDirection != "up" {
		t.Errorf("expected 0%% up without history, got %+v", overview.Stats.MonthlySpent)
	}
	if overview.QuickStats.MostExpensiveSubscription != nil {
		t.Error("expected no most expensive subscription")
	}
	if overview.UpcomingPayments == nil || overview.CategoryStats == nil {
		t.Error("expected empty lists rather than nil")
	}
}

func TestDashboardNotifications(t *testing.T) {
	t.Run("all_kinds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestDashboardService(db)

		cat := testutil.CreateTestCategory(t, db)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 16), testutil.WithCategory(cat.ID))
		testutil.CreateTestTransaction(t, db, sub.ID, testutil.Date(2024, 1, 15), "95.00")
		testutil.CreateTestBudget(t, db, cat.ID, 2024, 1, "100")

		notifications, err := svc.GetNotifications()
		testutil.AssertNoError(t, err)

		if len(notifications) != 3 {
			t.Fatalf("expected 3 notifications, got %d: %+v", len(notifications), notifications)
		}
		kinds := []string{notifications[0].Type, notifications[1].Type, notifications[2].Type}
		if kinds[0] != "warning" || kinds[1] != "info" || kinds[2] != "success" {
			t.Errorf("unexpected notification order %v", kinds)
		}
	})

	t.Run("respects_preferences", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestDashboardService(db)
		pref := testutil.CreateTestPreference(t, db, "500", "USD")
		if err := db.Model(pref).Updates(map[string]interface{}{"notify_upcoming": false, "notify_overbudget": false}).Error; err != nil {
			t.Fatalf("failed to update preferences: %v", err)
		}

		cat := testutil.CreateTestCategory(t, db)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 16), testutil.WithCategory(cat.ID))
		testutil.CreateTestTransaction(t, db, sub.ID, testutil.Date(2024, 1, 10), "95.00")
		testutil.CreateTestBudget(t, db, cat.ID, 2024, 1, "100")

		notifications, err := svc.GetNotifications()
		testutil.AssertNoError(t, err)
		if len(notifications) != 0 {
			t.Errorf("expected no notifications, got %+v", notifications)
		}
	})
}

func TestDashboardSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestDashboardService(db)
	sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 1))
	testutil.CreateTestTransaction(t, db, sub.ID, testutil.Date(2024, 1, 15), "10.00")
	testutil.CreateTestTransaction(t, db, sub.ID, testutil.Date(2024, 1, 14), "20.00")
	testutil.CreateTestTransaction(t, db, sub.ID, testutil.Date(2024, 1, 2), "30.00")
	testutil.CreateTestTransaction(t, db, sub.ID, testutil.Date(2023, 6, 2), "40.00")

	tests := []struct {
		period    string
		wantTotal string
		wantCount int64
	}{
		{PeriodToday, "10", 1},
		{PeriodWeek, "10", 1},
		{PeriodMonth, "60", 3},
		{PeriodYear, "60", 3},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			summary, err := svc.GetSummary(tt.period)
			testutil.AssertNoError(t, err)
			if !summary.Total.Equal(testutil.Money(tt.wantTotal)) || summary.Count != tt.wantCount {
				t.Errorf("expected %s over %d, got %s over %d", tt.wantTotal, tt.wantCount, summary.Total, summary.Count)
			}
			if int64(len(summary.DailyData)) != tt.wantCount {
				t.Errorf("expected %d days, got %d", tt.wantCount, len(summary.DailyData))
			}
		})
	}

	t.Run("average_and_most_expensive", func(t *testing.T) {
		summary, err := svc.GetSummary(PeriodMonth)
		testutil.AssertNoError(t, err)
		if !summary.Average.Equal(testutil.Money("20")) {
			t.Errorf("expected average 20, got %s", summary.Average)
		}
		if summary.MostExpensive == nil || !summary.MostExpensive.Amount.Equal(testutil.Money("30")) {
			t.Errorf("expected 30 as most expensive, got %+v", summary.MostExpensive)
		}
	})

	t.Run("invalid_period", func(t *testing.T) {
		_, err := svc.GetSummary("decade")
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
	})
}
