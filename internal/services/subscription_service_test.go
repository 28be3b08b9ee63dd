package services

import (
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"subtrack/internal/billing"
	"subtrack/internal/models"
	"subtrack/internal/pagination"
	"subtrack/internal/testutil"
)

// fakeScheduler records scheduling calls.
type fakeScheduler struct {
	mu         sync.Mutex
	dispatched []GenerateRequest
	scheduled  map[string]time.Time
	cancelled  []string
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{scheduled: map[string]time.Time{}}
}

func (f *fakeScheduler) Dispatch(req GenerateRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dispatched = append(f.dispatched, req)
	return nil
}

func (f *fakeScheduler) ScheduleAt(req GenerateRequest, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled[req.SubscriptionID] = at
}

func (f *fakeScheduler) Cancel(subscriptionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.scheduled, subscriptionID)
	f.cancelled = append(f.cancelled, subscriptionID)
}

// fixedNow is 2024-01-15 10:00 UTC.
func fixedNow() time.Time {
	return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
}

func newTestSubscriptionService(db *gorm.DB, scheduler GenerationScheduler) *subscriptionService {
	svc := NewSubscriptionService(db, NewTransactionService(db), scheduler).(*subscriptionService)
	svc.now = fixedNow
	return svc
}

func validInput(next string) CreateSubscriptionInput {
	date := testutil.Date(2024, 1, 15)
	switch next {
	case "future":
		date = testutil.Date(2024, 2, 1)
	case "past":
		date = testutil.Date(2024, 1, 10)
	}
	return CreateSubscriptionInput{
		Name:            "Spotify",
		Price:           testutil.Money("9.99"),
		BillingCycle:    billing.Monthly,
		NextPaymentDate: date,
	}
}

func TestCreateSubscription(t *testing.T) {
	t.Run("due_dispatches_immediately", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scheduler := newFakeScheduler()
		svc := newTestSubscriptionService(db, scheduler)

		sub, err := svc.CreateSubscription(validInput("past"))
		testutil.AssertNoError(t, err)

		if !sub.IsActive || sub.Status != models.SubscriptionStatusActive {
			t.Errorf("expected new subscription to be active, got %s", sub.Status)
		}
		if !sub.IsAutoRenew {
			t.Error("expected auto renew by default")
		}
		if len(scheduler.dispatched) != 1 {
			t.Fatalf("expected one dispatch, got %d", len(scheduler.dispatched))
		}
		req := scheduler.dispatched[0]
		if req.SubscriptionID != sub.ID || req.AsOf == nil || req.AsOf.String() != "2024-01-10" {
			t.Errorf("expected dispatch for the first payment date, got %+v", req)
		}
	})

	t.Run("due_today_dispatches", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scheduler := newFakeScheduler()
		svc := newTestSubscriptionService(db, scheduler)

		_, err := svc.CreateSubscription(validInput("today"))
		testutil.AssertNoError(t, err)
		if len(scheduler.dispatched) != 1 || len(scheduler.scheduled) != 0 {
			t.Errorf("expected immediate dispatch, got %d dispatched and %d scheduled", len(scheduler.dispatched), len(scheduler.scheduled))
		}
	})

	t.Run("today_is_the_utc_day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scheduler := newFakeScheduler()
		svc := newTestSubscriptionService(db, scheduler)
		// 2024-01-15 08:00 in Tokyo is still 2024-01-14 in UTC.
		svc.now = func() time.Time {
			return time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC).In(time.FixedZone("JST", 9*60*60))
		}

		sub, err := svc.CreateSubscription(validInput("today"))
		testutil.AssertNoError(t, err)
		if len(scheduler.dispatched) != 0 {
			t.Errorf("expected no dispatch before the UTC due day, got %d", len(scheduler.dispatched))
		}
		if _, ok := scheduler.scheduled[sub.ID]; !ok {
			t.Error("expected the first charge to be scheduled")
		}
	})

	t.Run("future_is_scheduled", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scheduler := newFakeScheduler()
		svc := newTestSubscriptionService(db, scheduler)

		sub, err := svc.CreateSubscription(validInput("future"))
		testutil.AssertNoError(t, err)

		if len(scheduler.dispatched) != 0 {
			t.Errorf("expected no dispatch, got %d", len(scheduler.dispatched))
		}
		at, ok := scheduler.scheduled[sub.ID]
		if !ok {
			t.Fatal("expected a scheduled run")
		}
		if !at.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected run at 2024-02-01 00:00 UTC, got %s", at)
		}
	})

	t.Run("paused_is_not_triggered", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scheduler := newFakeScheduler()
		svc := newTestSubscriptionService(db, scheduler)

		input := validInput("past")
		paused := models.SubscriptionStatusPaused
		input.Status = &paused
		sub, err := svc.CreateSubscription(input)
		testutil.AssertNoError(t, err)

		if sub.IsActive {
			t.Error("expected paused subscription to be inactive")
		}
		if len(scheduler.dispatched) != 0 || len(scheduler.scheduled) != 0 {
			t.Error("expected no generation for a paused subscription")
		}
	})

	t.Run("validation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSubscriptionService(db, nil)

		input := validInput("future")
		input.Name = " "
		_, err := svc.CreateSubscription(input)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")

		input = validInput("future")
		input.Price = testutil.Money("-1")
		_, err = svc.CreateSubscription(input)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")

		input = validInput("future")
		input.BillingCycle = "daily"
		_, err = svc.CreateSubscription(input)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")

		input = validInput("future")
		missing := "missing"
		input.CategoryID = &missing
		_, err = svc.CreateSubscription(input)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
	})
}

func TestListSubscriptions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestSubscriptionService(db, nil)

	cat := testutil.CreateTestCategory(t, db)
	testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 20), testutil.WithName("Netflix"), testutil.WithPrice("15.00"), testutil.WithCategory(cat.ID))
	testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 25), testutil.WithName("Spotify"), testutil.WithPrice("120.00"), testutil.WithCycle(billing.Yearly))
	testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 5), testutil.WithName("Notion"), testutil.WithPrice("8.00"), testutil.WithStatus(models.SubscriptionStatusPaused))
	deleted := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 18), testutil.WithName("Deleted"))
	if err := db.Delete(deleted).Error; err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	t.Run("default_order_and_stats", func(t *testing.T) {
		list, err := svc.ListSubscriptions(SubscriptionFilter{})
		testutil.AssertNoError(t, err)

		if len(list.Subscriptions) != 3 {
			t.Fatalf("expected 3 live subscriptions, got %d", len(list.Subscriptions))
		}
		if list.Subscriptions[0].Name != "Netflix" {
			t.Errorf("expected ordering by next payment date, got %s first", list.Subscriptions[0].Name)
		}
		if list.Pagination != nil {
			t.Error("expected no pagination without per_page")
		}
		if list.Stats.Total != 3 || list.Stats.Active != 2 {
			t.Errorf("expected 3 total and 2 active, got %+v", list.Stats)
		}
		if !list.Stats.MonthlyCost.Equal(testutil.Money("25.00")) {
			t.Errorf("expected monthly cost 25.00, got %s", list.Stats.MonthlyCost)
		}
		if list.Stats.UpcomingThisMonth != 2 {
			t.Errorf("expected 2 upcoming this month, got %d", list.Stats.UpcomingThisMonth)
		}
	})

	t.Run("search_is_case_insensitive", func(t *testing.T) {
		list, err := svc.ListSubscriptions(SubscriptionFilter{Search: "NET"})
		testutil.AssertNoError(t, err)
		if len(list.Subscriptions) != 1 || list.Subscriptions[0].Name != "Netflix" {
			t.Errorf("expected only Netflix, got %d results", len(list.Subscriptions))
		}
	})

	t.Run("is_active_maps_to_status", func(t *testing.T) {
		inactive := false
		list, err := svc.ListSubscriptions(SubscriptionFilter{IsActive: &inactive})
		testutil.AssertNoError(t, err)
		if len(list.Subscriptions) != 1 || list.Subscriptions[0].Name != "Notion" {
			t.Errorf("expected only Notion, got %d results", len(list.Subscriptions))
		}
	})

	t.Run("category_filter", func(t *testing.T) {
		list, err := svc.ListSubscriptions(SubscriptionFilter{CategoryID: &cat.ID})
		testutil.AssertNoError(t, err)
		if len(list.Subscriptions) != 1 || list.Subscriptions[0].Category == nil {
			t.Fatalf("expected one subscription with its category, got %d", len(list.Subscriptions))
		}
	})

	t.Run("sort_by_price_desc", func(t *testing.T) {
		list, err := svc.ListSubscriptions(SubscriptionFilter{SortBy: "price", SortOrder: "desc"})
		testutil.AssertNoError(t, err)
		if list.Subscriptions[0].Name != "Spotify" {
			t.Errorf("expected Spotify first, got %s", list.Subscriptions[0].Name)
		}
	})

	t.Run("unknown_sort_key", func(t *testing.T) {
		_, err := svc.ListSubscriptions(SubscriptionFilter{SortBy: "price; DROP TABLE subscriptions"})
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
	})

	t.Run("paginated", func(t *testing.T) {
		list, err := svc.ListSubscriptions(SubscriptionFilter{Page: pagination.PageRequest{PerPage: 2}})
		testutil.AssertNoError(t, err)
		if len(list.Subscriptions) != 2 {
			t.Errorf("expected 2 on the first page, got %d", len(list.Subscriptions))
		}
		if list.Pagination == nil || list.Pagination.TotalItems != 3 || list.Pagination.TotalPages != 2 {
			t.Errorf("unexpected pagination %+v", list.Pagination)
		}
		if list.Stats.Total != 3 {
			t.Errorf("expected stats over the whole result, got %d", list.Stats.Total)
		}
	})
}

func TestGetSubscription(t *testing.T) {
	t.Run("detail", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSubscriptionService(db, nil)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 31))
		for month := 1; month <= 12; month++ {
			testutil.CreateTestTransaction(t, db, sub.ID, testutil.Date(2023, month, 1), "10.00")
		}

		detail, err := svc.GetSubscription(sub.ID)
		testutil.AssertNoError(t, err)

		if detail.BillingDisplay != "Monthly" {
			t.Errorf("expected Monthly, got %s", detail.BillingDisplay)
		}
		if len(detail.Transactions) != 10 {
			t.Errorf("expected the last 10 transactions, got %d", len(detail.Transactions))
		}
		if detail.Transactions[0].Date.String() != "2023-12-01" {
			t.Errorf("expected newest transaction first, got %s", detail.Transactions[0].Date)
		}
		if detail.Stats.TransactionsCount != 12 {
			t.Errorf("expected 12 transactions counted, got %d", detail.Stats.TransactionsCount)
		}
		if !detail.Stats.TotalPaid.Equal(testutil.Money("120")) {
			t.Errorf("expected total paid 120, got %s", detail.Stats.TotalPaid)
		}
		if !detail.Stats.AverageAmount.Equal(testutil.Money("10")) {
			t.Errorf("expected average 10, got %s", detail.Stats.AverageAmount)
		}

		want := []string{"2024-01-31", "2024-02-29", "2024-03-29", "2024-04-29", "2024-05-29", "2024-06-29"}
		if len(detail.UpcomingPayments) != len(want) {
			t.Fatalf("expected %d upcoming payments, got %d", len(want), len(detail.UpcomingPayments))
		}
		for i, payment := range detail.UpcomingPayments {
			if payment.Date.String() != want[i] {
				t.Errorf("upcoming[%d] = %s, want %s", i, payment.Date, want[i])
			}
			if payment.IsNext != (i == 0) {
				t.Errorf("upcoming[%d].IsNext = %v", i, payment.IsNext)
			}
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSubscriptionService(db, nil)

		_, err := svc.GetSubscription("missing")
		testutil.AssertAppError(t, err, "SUBSCRIPTION_NOT_FOUND")
	})
}

func TestUpdateSubscription(t *testing.T) {
	t.Run("partial_update_and_rearm", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scheduler := newFakeScheduler()
		svc := newTestSubscriptionService(db, scheduler)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1))

		name := "Renamed"
		next := testutil.Date(2024, 3, 1)
		updated, err := svc.UpdateSubscription(sub.ID, UpdateSubscriptionInput{Name: &name, NextPaymentDate: &next})
		testutil.AssertNoError(t, err)

		if updated.Name != "Renamed" || updated.NextPaymentDate.String() != "2024-03-01" {
			t.Errorf("unexpected update result %s %s", updated.Name, updated.NextPaymentDate)
		}
		if !updated.Price.Equal(sub.Price) {
			t.Errorf("expected price untouched, got %s", updated.Price)
		}
		if at := scheduler.scheduled[sub.ID]; !at.Equal(next.Time) {
			t.Errorf("expected run re-armed at %s, got %s", next, at)
		}
	})

	t.Run("is_active_false_pauses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scheduler := newFakeScheduler()
		svc := newTestSubscriptionService(db, scheduler)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1))

		inactive := false
		updated, err := svc.UpdateSubscription(sub.ID, UpdateSubscriptionInput{IsActive: &inactive})
		testutil.AssertNoError(t, err)
		if updated.Status != models.SubscriptionStatusPaused || updated.IsActive {
			t.Errorf("expected paused, got %s", updated.Status)
		}
		if _, ok := scheduler.scheduled[sub.ID]; ok {
			t.Error("expected pending run to be cancelled")
		}
	})

	t.Run("status_wins_over_is_active", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSubscriptionService(db, nil)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1))

		cancelled := models.SubscriptionStatusCancelled
		active := true
		updated, err := svc.UpdateSubscription(sub.ID, UpdateSubscriptionInput{Status: &cancelled, IsActive: &active})
		testutil.AssertNoError(t, err)
		if updated.Status != models.SubscriptionStatusCancelled {
			t.Errorf("expected cancelled, got %s", updated.Status)
		}
	})

	t.Run("move_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSubscriptionService(db, nil)
		from := testutil.CreateTestCategory(t, db)
		to := testutil.CreateTestCategory(t, db)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1), testutil.WithCategory(from.ID))

		updated, err := svc.UpdateSubscription(sub.ID, UpdateSubscriptionInput{CategoryID: &to.ID})
		testutil.AssertNoError(t, err)
		if updated.CategoryID == nil || *updated.CategoryID != to.ID {
			t.Fatalf("expected category %s, got %v", to.ID, updated.CategoryID)
		}
		if updated.Category == nil || updated.Category.ID != to.ID {
			t.Errorf("expected preloaded category %s, got %+v", to.ID, updated.Category)
		}

		var stored models.Subscription
		testutil.AssertNoError(t, db.First(&stored, "id = ?", sub.ID).Error)
		if stored.CategoryID == nil || *stored.CategoryID != to.ID {
			t.Errorf("expected stored category %s, got %v", to.ID, stored.CategoryID)
		}
	})

	t.Run("status_change_keeps_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSubscriptionService(db, nil)
		cat := testutil.CreateTestCategory(t, db)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1), testutil.WithCategory(cat.ID))

		paused := models.SubscriptionStatusPaused
		updated, err := svc.UpdateSubscription(sub.ID, UpdateSubscriptionInput{Status: &paused})
		testutil.AssertNoError(t, err)
		if updated.CategoryID == nil || *updated.CategoryID != cat.ID {
			t.Errorf("expected category %s kept, got %v", cat.ID, updated.CategoryID)
		}
	})

	t.Run("clear_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSubscriptionService(db, nil)
		cat := testutil.CreateTestCategory(t, db)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1), testutil.WithCategory(cat.ID))

		empty := ""
		updated, err := svc.UpdateSubscription(sub.ID, UpdateSubscriptionInput{CategoryID: &empty})
		testutil.AssertNoError(t, err)
		if updated.CategoryID != nil {
			t.Errorf("expected category cleared, got %v", *updated.CategoryID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSubscriptionService(db, nil)

		_, err := svc.UpdateSubscription("missing", UpdateSubscriptionInput{})
		testutil.AssertAppError(t, err, "SUBSCRIPTION_NOT_FOUND")
	})
}

func TestDeleteAndRestoreSubscription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	scheduler := newFakeScheduler()
	svc := newTestSubscriptionService(db, scheduler)
	sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1))
	testutil.CreateTestTransaction(t, db, sub.ID, testutil.Date(2024, 1, 1), "9.99")

	testutil.AssertNoError(t, svc.DeleteSubscription(sub.ID))

	_, err := svc.GetSubscriptionByID(sub.ID)
	testutil.AssertAppError(t, err, "SUBSCRIPTION_NOT_FOUND")
	if n := countTransactions(t, db, sub.ID); n != 1 {
		t.Errorf("soft delete must keep transaction history, got %d", n)
	}
	if len(scheduler.cancelled) == 0 || scheduler.cancelled[len(scheduler.cancelled)-1] != sub.ID {
		t.Error("expected pending run to be cancelled on delete")
	}

	restored, err := svc.RestoreSubscription(sub.ID)
	testutil.AssertNoError(t, err)
	if restored.DeletedAt.Valid {
		t.Error("expected deleted_at to be cleared")
	}
	if _, ok := scheduler.scheduled[sub.ID]; !ok {
		t.Error("expected restore to re-arm the pending run")
	}

	_, err = svc.RestoreSubscription(sub.ID)
	testutil.AssertNoError(t, err)

	_, err = svc.RestoreSubscription("missing")
	testutil.AssertAppError(t, err, "SUBSCRIPTION_NOT_FOUND")

	err = svc.DeleteSubscription("missing")
	testutil.AssertAppError(t, err, "SUBSCRIPTION_NOT_FOUND")
}

func TestToggleStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestSubscriptionService(db, nil)
	sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1))

	toggled, err := svc.ToggleStatus(sub.ID)
	testutil.AssertNoError(t, err)
	if toggled.Status != models.SubscriptionStatusPaused || toggled.IsActive {
		t.Errorf("expected paused, got %s", toggled.Status)
	}

	toggled, err = svc.ToggleStatus(sub.ID)
	testutil.AssertNoError(t, err)
	if toggled.Status != models.SubscriptionStatusActive || !toggled.IsActive {
		t.Errorf("expected active, got %s", toggled.Status)
	}

	cancelled := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1), testutil.WithStatus(models.SubscriptionStatusCancelled))
	toggled, err = svc.ToggleStatus(cancelled.ID)
	testutil.AssertNoError(t, err)
	if toggled.Status != models.SubscriptionStatusActive {
		t.Errorf("expected cancelled to toggle to active, got %s", toggled.Status)
	}
}

func TestSetNextPayment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestSubscriptionService(db, nil)
	sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 2, 1))

	updated, err := svc.SetNextPayment(sub.ID, testutil.Date(2024, 2, 20))
	testutil.AssertNoError(t, err)
	if updated.NextPaymentDate.String() != "2024-02-20" {
		t.Errorf("expected 2024-02-20, got %s", updated.NextPaymentDate)
	}

	_, err = svc.SetNextPayment(sub.ID, testutil.Date(1, 1, 1))
	testutil.AssertAppError(t, err, "VALIDATION_FAILED")
}

func TestGetSubscriptionStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestSubscriptionService(db, nil)

	cat := testutil.CreateTestCategory(t, db)
	testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 20), testutil.WithPrice("10.00"), testutil.WithCategory(cat.ID))
	testutil.CreateTestSubscription(t, db, testutil.Date(2024, 3, 1), testutil.WithPrice("30.00"), testutil.WithCycle(billing.Quarterly), testutil.WithCategory(cat.ID))
	testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 16), testutil.WithPrice("5.00"), testutil.WithCycle(billing.Weekly))
	testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 20), testutil.WithStatus(models.SubscriptionStatusPaused))

	stats, err := svc.GetStats()
	testutil.AssertNoError(t, err)

	if stats.TotalActive != 3 || stats.TotalInactive != 1 {
		t.Errorf("expected 3 active and 1 inactive, got %d/%d", stats.TotalActive, stats.TotalInactive)
	}
	// 10 + 30/3 + 5*52/12
	if !stats.MonthlyCost.Equal(testutil.Money("41.67")) {
		t.Errorf("expected monthly cost 41.67, got %s", stats.MonthlyCost)
	}
	// 120 + 120 + 260
	if !stats.YearlyCost.Equal(testutil.Money("500")) {
		t.Errorf("expected yearly cost 500, got %s", stats.YearlyCost)
	}
	if stats.UpcomingThisMonth != 2 {
		t.Errorf("expected 2 upcoming this month, got %d", stats.UpcomingThisMonth)
	}
	if len(stats.ByCategory) != 1 || stats.ByCategory[0].Count != 2 || !stats.ByCategory[0].Total.Equal(testutil.Money("40")) {
		t.Errorf("unexpected by-category stats %+v", stats.ByCategory)
	}
}
