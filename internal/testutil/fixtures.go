package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"subtrack/internal/billing"
	"subtrack/internal/models"
	"subtrack/internal/types"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date is shorthand for types.NewDate.
func Date(year, month, day int) types.Date {
	return types.NewDate(year, time.Month(month), day)
}

// Money parses a decimal literal and panics on malformed input.
func Money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  fmt.Sprintf("Test Category %d", nextID()),
		Color: models.DefaultCategoryColor,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// SubscriptionOption customises a fixture subscription before it is saved.
type SubscriptionOption func(*models.Subscription)

// WithCategory assigns the subscription to a category.
func WithCategory(id string) SubscriptionOption {
	return func(s *models.Subscription) { s.CategoryID = &id }
}

// WithCycle sets the billing cycle.
func WithCycle(c billing.Cycle) SubscriptionOption {
	return func(s *models.Subscription) { s.BillingCycle = c }
}

// WithStatus sets the lifecycle status.
func WithStatus(status models.SubscriptionStatus) SubscriptionOption {
	return func(s *models.Subscription) { s.Status = status }
}

// WithPrice sets the price.
func WithPrice(price string) SubscriptionOption {
	return func(s *models.Subscription) { s.Price = Money(price) }
}

// WithName sets the name.
func WithName(name string) SubscriptionOption {
	return func(s *models.Subscription) { s.Name = name }
}

// CreateTestSubscription creates an active monthly subscription priced 9.99
// and due on next.
func CreateTestSubscription(t *testing.T, db *gorm.DB, next types.Date, opts ...SubscriptionOption) *models.Subscription {
	t.Helper()

	sub := &models.Subscription{
		Name:            fmt.Sprintf("Test Subscription %d", nextID()),
		Price:           Money("9.99"),
		BillingCycle:    billing.Monthly,
		NextPaymentDate: next,
		IsAutoRenew:     true,
		Status:          models.SubscriptionStatusActive,
	}
	for _, opt := range opts {
		opt(sub)
	}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create test subscription: %v", err)
	}
	return sub
}

// CreateTestTransaction creates a completed transaction for the subscription.
func CreateTestTransaction(t *testing.T, db *gorm.DB, subscriptionID string, date types.Date, amount string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		SubscriptionID: subscriptionID,
		Amount:         Money(amount),
		Currency:       models.DefaultCurrency,
		Date:           date,
		Status:         models.TransactionStatusCompleted,
		TransactionID:  fmt.Sprintf("TXN-TEST-%d", nextID()),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates an active monthly budget for the category.
func CreateTestBudget(t *testing.T, db *gorm.DB, categoryID string, year, month int, limit string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Name:         fmt.Sprintf("Test Budget %d", nextID()),
		CategoryID:   &categoryID,
		LimitAmount:  Money(limit),
		Period:       models.BudgetPeriodMonthly,
		Year:         year,
		Month:        &month,
		CurrentSpent: decimal.Zero,
		IsActive:     true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestPreference stores the global preference row.
func CreateTestPreference(t *testing.T, db *gorm.DB, monthlyBudget, currency string) *models.UserPreference {
	t.Helper()

	pref := &models.UserPreference{
		MonthlyBudget:    Money(monthlyBudget),
		Currency:         currency,
		NotifyUpcoming:   true,
		NotifyOverbudget: true,
	}
	if err := db.Create(pref).Error; err != nil {
		t.Fatalf("failed to create test preference: %v", err)
	}
	return pref
}
