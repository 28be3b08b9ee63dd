package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"subtrack/internal/billing"
	apperrors "subtrack/internal/errors"
	"subtrack/internal/logger"
	"subtrack/internal/models"
	"subtrack/internal/pagination"
	"subtrack/internal/types"
)

const (
	recentTransactionsLimit = 10
	upcomingPaymentsCount   = 6
)

// sortColumns maps client sort keys onto the columns they order by.
var sortColumns = map[string]string{
	"name":              "subscriptions.name",
	"price":             "subscriptions.price",
	"next_payment_date": "subscriptions.next_payment_date",
	"created_at":        "subscriptions.created_at",
	"status":            "subscriptions.status",
	"billing_cycle":     "subscriptions.billing_cycle",
	"start_date":        "subscriptions.start_date",
}

// subscriptionService handles subscription-related business logic.
type subscriptionService struct {
	db           *gorm.DB
	transactions TransactionServicer
	scheduler    GenerationScheduler
	now          func() time.Time
}

// NewSubscriptionService creates a new SubscriptionServicer. A nil scheduler
// disables per-subscription generation triggers.
func NewSubscriptionService(db *gorm.DB, transactions TransactionServicer, scheduler GenerationScheduler) SubscriptionServicer {
	if scheduler == nil {
		scheduler = noopScheduler{}
	}
	return &subscriptionService{
		db:           db,
		transactions: transactions,
		scheduler:    scheduler,
		now:          time.Now,
	}
}

func (s *subscriptionService) today() types.Date {
	return types.DateOf(s.now().UTC())
}

// filtered builds the list query for filter without ordering or paging.
func (s *subscriptionService) filtered(filter SubscriptionFilter) *gorm.DB {
	query := s.db.Model(&models.Subscription{})
	if filter.Status != nil {
		query = query.Where("subscriptions.status = ?", *filter.Status)
	}
	if filter.CategoryID != nil {
		query = query.Where("subscriptions.category_id = ?", *filter.CategoryID)
	}
	if filter.IsActive != nil {
		if *filter.IsActive {
			query = query.Where("subscriptions.status = ?", models.SubscriptionStatusActive)
		} else {
			query = query.Where("subscriptions.status <> ?", models.SubscriptionStatusActive)
		}
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("LOWER(subscriptions.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	return query
}

// ListSubscriptions returns the filtered subscriptions with list statistics.
func (s *subscriptionService) ListSubscriptions(filter SubscriptionFilter) (*SubscriptionList, error) {
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "next_payment_date"
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, apperrors.WithFields(apperrors.ErrInvalidSortKey, map[string]string{
			"sort_by": "The selected sort by is invalid.",
		})
	}
	order := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		order = "DESC"
	}

	query := s.filtered(filter).Preload("Category").Order(column + " " + order)

	var meta *pagination.Meta
	if filter.Page.Requested() {
		page := filter.Page
		page.Defaults()

		var totalItems int64
		if err := s.filtered(filter).Count(&totalItems).Error; err != nil {
			return nil, internal(err)
		}
		m := pagination.NewMeta(page.Page, page.PerPage, totalItems)
		meta = &m
		query = query.Scopes(pagination.Paginate(page))
	}

	subscriptions := []models.Subscription{}
	if err := query.Find(&subscriptions).Error; err != nil {
		return nil, internal(err)
	}

	stats, err := s.listStats(filter)
	if err != nil {
		return nil, err
	}

	return &SubscriptionList{
		Subscriptions: subscriptions,
		Stats:         *stats,
		Pagination:    meta,
	}, nil
}

// listStats summarises every subscription matching filter, not only the
// returned page.
func (s *subscriptionService) listStats(filter SubscriptionFilter) (*SubscriptionListStats, error) {
	var stats SubscriptionListStats
	if err := s.filtered(filter).Count(&stats.Total).Error; err != nil {
		return nil, internal(err)
	}

	active := func() *gorm.DB {
		return s.filtered(filter).Where("subscriptions.status = ?", models.SubscriptionStatusActive)
	}
	if err := active().Count(&stats.Active).Error; err != nil {
		return nil, internal(err)
	}

	monthly, _, err := costByCycle(active())
	if err != nil {
		return nil, err
	}
	stats.MonthlyCost = monthly

	today := s.today()
	if err := active().
		Where("subscriptions.next_payment_date >= ? AND subscriptions.next_payment_date <= ?", today, endOfMonth(today)).
		Count(&stats.UpcomingThisMonth).Error; err != nil {
		return nil, internal(err)
	}
	return &stats, nil
}

// costByCycle sums prices per billing cycle and normalises them to monthly
// and yearly amounts.
func costByCycle(query *gorm.DB) (decimal.Decimal, decimal.Decimal, error) {
	var rows []struct {
		BillingCycle billing.Cycle
		Total        decimal.Decimal
	}
	if err := query.
		Select("subscriptions.billing_cycle AS billing_cycle, COALESCE(SUM(subscriptions.price), 0) AS total").
		Group("subscriptions.billing_cycle").
		Scan(&rows).Error; err != nil {
		return decimal.Zero, decimal.Zero, internal(err)
	}

	monthly, yearly := decimal.Zero, decimal.Zero
	for _, row := range rows {
		sum := models.Subscription{Price: row.Total, BillingCycle: row.BillingCycle}
		monthly = monthly.Add(sum.MonthlyCost())
		yearly = yearly.Add(sum.YearlyCost())
	}
	return money(monthly), money(yearly), nil
}

func endOfMonth(d types.Date) types.Date {
	_, end := monthRange(d.Year(), d.Month())
	return end.AddDays(-1)
}

// GetSubscription returns a subscription with its recent transactions,
// upcoming charges and payment statistics.
func (s *subscriptionService) GetSubscription(id string) (*SubscriptionDetail, error) {
	var sub models.Subscription
	if err := s.db.Preload("Category").Where("id = ?", id).First(&sub).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrSubscriptionNotFound)
	}

	recent, err := s.transactions.RecentTransactions(sub.ID, recentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	upcoming := make([]UpcomingPayment, 0, upcomingPaymentsCount)
	for i, date := range billing.Upcoming(sub.NextPaymentDate.Time, sub.BillingCycle, upcomingPaymentsCount) {
		upcoming = append(upcoming, UpcomingPayment{
			Date:   types.DateOf(date),
			Amount: sub.Price,
			IsNext: i == 0,
		})
	}

	stats, err := s.paymentStats(sub.ID)
	if err != nil {
		return nil, err
	}

	return &SubscriptionDetail{
		Subscription:     &sub,
		BillingDisplay:   sub.BillingCycle.Display(),
		Transactions:     recent,
		UpcomingPayments: upcoming,
		Stats:            *stats,
	}, nil
}

func (s *subscriptionService) paymentStats(subscriptionID string) (*PaymentStats, error) {
	all := TransactionFilter{SubscriptionID: &subscriptionID}
	completed := models.TransactionStatusCompleted
	paid := TransactionFilter{SubscriptionID: &subscriptionID, Status: &completed}

	totalPaid, err := s.transactions.SumAmount(paid)
	if err != nil {
		return nil, err
	}
	count, err := s.transactions.CountTransactions(all)
	if err != nil {
		return nil, err
	}

	stats := &PaymentStats{
		TotalPaid:         totalPaid,
		TransactionsCount: count,
		AverageAmount:     decimal.Zero,
	}
	if count > 0 {
		total, err := s.transactions.SumAmount(all)
		if err != nil {
			return nil, err
		}
		stats.AverageAmount = money(total.Div(decimal.NewFromInt(count)))
	}
	return stats, nil
}

// GetSubscriptionByID retrieves a live subscription by ID.
func (s *subscriptionService) GetSubscriptionByID(id string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.Preload("Category").Where("id = ?", id).First(&sub).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrSubscriptionNotFound)
	}
	return &sub, nil
}

// CreateSubscription stores a new subscription and triggers generation for
// it: immediately when already due, otherwise at its first payment date.
func (s *subscriptionService) CreateSubscription(input CreateSubscriptionInput) (*models.Subscription, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Field("name", "The name field is required.")
	}
	if input.Price.IsNegative() {
		return nil, apperrors.Field("price", "The price must be at least 0.")
	}
	if input.BillingCycle == "" {
		input.BillingCycle = billing.Monthly
	}
	if !input.BillingCycle.Valid() {
		return nil, apperrors.Field("billing_cycle", "The selected billing cycle is invalid.")
	}
	if input.NextPaymentDate.IsZero() {
		return nil, apperrors.Field("next_payment_date", "The next payment date field is required.")
	}

	categoryID, err := s.resolveCategory(input.CategoryID)
	if err != nil {
		return nil, err
	}

	sub := &models.Subscription{
		Name:            strings.TrimSpace(input.Name),
		CategoryID:      categoryID,
		Description:     input.Description,
		LogoURL:         input.LogoURL,
		PlanName:        input.PlanName,
		Price:           input.Price,
		BillingCycle:    input.BillingCycle,
		StartDate:       input.StartDate,
		NextPaymentDate: input.NextPaymentDate,
		IsAutoRenew:     true,
		Status:          models.SubscriptionStatusActive,
		Notes:           input.Notes,
	}
	if input.IsAutoRenew != nil {
		sub.IsAutoRenew = *input.IsAutoRenew
	}
	if input.Status != nil {
		sub.Status = *input.Status
	}

	if err := s.db.Create(sub).Error; err != nil {
		return nil, internal(err)
	}

	if sub.Active() {
		if sub.NextPaymentDate.After(s.today().Time) {
			s.scheduler.ScheduleAt(s.request(sub), sub.NextPaymentDate.Time)
		} else if err := s.scheduler.Dispatch(s.request(sub)); err != nil {
			logger.Get().Warnw("failed to dispatch transaction generation",
				"subscription_id", sub.ID,
				"error", err,
			)
		}
	}

	return s.GetSubscriptionByID(sub.ID)
}

// UpdateSubscription applies a partial update.
func (s *subscriptionService) UpdateSubscription(id string, input UpdateSubscriptionInput) (*models.Subscription, error) {
	sub, err := s.GetSubscriptionByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.Field("name", "The name field is required.")
		}
		updates["name"] = name
	}
	if input.CategoryID != nil {
		categoryID, err := s.resolveCategory(input.CategoryID)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = categoryID
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.LogoURL != nil {
		updates["logo_url"] = *input.LogoURL
	}
	if input.PlanName != nil {
		updates["plan_name"] = *input.PlanName
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperrors.Field("price", "The price must be at least 0.")
		}
		updates["price"] = *input.Price
	}
	if input.BillingCycle != nil {
		if !input.BillingCycle.Valid() {
			return nil, apperrors.Field("billing_cycle", "The selected billing cycle is invalid.")
		}
		updates["billing_cycle"] = *input.BillingCycle
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.NextPaymentDate != nil {
		updates["next_payment_date"] = *input.NextPaymentDate
	}
	if input.IsAutoRenew != nil {
		updates["is_auto_renew"] = *input.IsAutoRenew
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	switch {
	case input.Status != nil:
		updates["status"] = *input.Status
	case input.IsActive != nil && *input.IsActive:
		updates["status"] = models.SubscriptionStatusActive
	case input.IsActive != nil && sub.Active():
		updates["status"] = models.SubscriptionStatusPaused
	}

	if len(updates) > 0 {
		if err := s.updateColumns(sub.ID, updates); err != nil {
			return nil, internal(err)
		}
	}

	updated, err := s.GetSubscriptionByID(id)
	if err != nil {
		return nil, err
	}
	s.rearm(updated)
	return updated, nil
}

// DeleteSubscription soft-deletes a subscription. Its transactions are kept.
func (s *subscriptionService) DeleteSubscription(id string) error {
	sub, err := s.GetSubscriptionByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(sub).Error; err != nil {
		return internal(err)
	}
	s.scheduler.Cancel(id)
	return nil
}

// RestoreSubscription undoes a soft delete. Restoring a live subscription is
// a no-op.
func (s *subscriptionService) RestoreSubscription(id string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.Unscoped().Where("id = ?", id).First(&sub).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrSubscriptionNotFound)
	}
	if sub.DeletedAt.Valid {
		if err := s.db.Unscoped().Model(&sub).Update("deleted_at", nil).Error; err != nil {
			return nil, internal(err)
		}
	}

	restored, err := s.GetSubscriptionByID(id)
	if err != nil {
		return nil, err
	}
	s.rearm(restored)
	return restored, nil
}

// SetNextPayment overrides the next payment date.
func (s *subscriptionService) SetNextPayment(id string, date types.Date) (*models.Subscription, error) {
	if date.IsZero() {
		return nil, apperrors.Field("next_payment_date", "The next payment date field is required.")
	}
	sub, err := s.GetSubscriptionByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.updateColumns(sub.ID, map[string]interface{}{"next_payment_date": date}); err != nil {
		return nil, internal(err)
	}

	updated, err := s.GetSubscriptionByID(id)
	if err != nil {
		return nil, err
	}
	s.rearm(updated)
	return updated, nil
}

// ToggleStatus pauses an active subscription and activates any other.
func (s *subscriptionService) ToggleStatus(id string) (*models.Subscription, error) {
	sub, err := s.GetSubscriptionByID(id)
	if err != nil {
		return nil, err
	}

	status := models.SubscriptionStatusActive
	if sub.Active() {
		status = models.SubscriptionStatusPaused
	}
	if err := s.updateColumns(sub.ID, map[string]interface{}{"status": status}); err != nil {
		return nil, internal(err)
	}

	updated, err := s.GetSubscriptionByID(id)
	if err != nil {
		return nil, err
	}
	s.rearm(updated)
	return updated, nil
}

// GetStats returns the global subscription summary.
func (s *subscriptionService) GetStats() (*SubscriptionStats, error) {
	active := func() *gorm.DB {
		return s.db.Model(&models.Subscription{}).Where("subscriptions.status = ?", models.SubscriptionStatusActive)
	}

	stats := &SubscriptionStats{ByCategory: []CategoryCount{}}
	if err := active().Count(&stats.TotalActive).Error; err != nil {
		return nil, internal(err)
	}
	if err := s.db.Model(&models.Subscription{}).
		Where("subscriptions.status <> ?", models.SubscriptionStatusActive).
		Count(&stats.TotalInactive).Error; err != nil {
		return nil, internal(err)
	}

	monthly, yearly, err := costByCycle(active())
	if err != nil {
		return nil, err
	}
	stats.MonthlyCost = monthly
	stats.YearlyCost = yearly

	today := s.today()
	if err := active().
		Where("subscriptions.next_payment_date >= ? AND subscriptions.next_payment_date <= ?", today, endOfMonth(today)).
		Count(&stats.UpcomingThisMonth).Error; err != nil {
		return nil, internal(err)
	}

	if err := active().
		Joins("JOIN categories ON categories.id = subscriptions.category_id").
		Select("categories.id AS category_id, categories.name AS name, COUNT(*) AS count, COALESCE(SUM(subscriptions.price), 0) AS total").
		Group("categories.id, categories.name").
		Order("categories.name ASC").
		Scan(&stats.ByCategory).Error; err != nil {
		return nil, internal(err)
	}
	for i := range stats.ByCategory {
		stats.ByCategory[i].Total = money(stats.ByCategory[i].Total)
	}
	return stats, nil
}

// resolveCategory validates a category reference. Nil and empty ids mean no
// category.
func (s *subscriptionService) resolveCategory(id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", *id).Count(&count).Error; err != nil {
		return nil, internal(err)
	}
	if count == 0 {
		return nil, apperrors.Field("category_id", "The selected category id is invalid.")
	}
	categoryID := *id
	return &categoryID, nil
}

func (s *subscriptionService) request(sub *models.Subscription) GenerateRequest {
	asOf := sub.NextPaymentDate
	return GenerateRequest{AsOf: &asOf, SubscriptionID: sub.ID}
}

// updateColumns writes columns by id. Updating through a loaded model would
// let gorm save its preloaded Category back over category_id.
func (s *subscriptionService) updateColumns(id string, columns map[string]interface{}) error {
	return s.db.Model(&models.Subscription{}).Where("id = ?", id).Updates(columns).Error
}

// rearm replaces any pending generation for sub with one at its next
// payment date, when it is active and that date is still ahead.
func (s *subscriptionService) rearm(sub *models.Subscription) {
	s.scheduler.Cancel(sub.ID)
	if sub.Active() && sub.NextPaymentDate.After(s.today().Time) {
		s.scheduler.ScheduleAt(s.request(sub), sub.NextPaymentDate.Time)
	}
}

type noopScheduler struct{}

func (noopScheduler) Dispatch(GenerateRequest) error { return nil }

func (noopScheduler) ScheduleAt(GenerateRequest, time.Time) {}

func (noopScheduler) Cancel(string) {}
