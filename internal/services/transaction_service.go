package services

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/models"
	"subtrack/internal/pagination"
	"subtrack/internal/types"
)

// transactionService is the query surface over generated transactions.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// filtered applies filter to a transactions query. Category filters go
// through the owning subscription, including soft-deleted ones.
func (s *transactionService) filtered(filter TransactionFilter) *gorm.DB {
	query := s.db.Model(&models.Transaction{})
	if filter.From != nil {
		query = query.Where("transactions.date >= ?", *filter.From)
	}
	if filter.Until != nil {
		query = query.Where("transactions.date < ?", *filter.Until)
	}
	if filter.Status != nil {
		query = query.Where("transactions.status = ?", *filter.Status)
	}
	if filter.SubscriptionID != nil {
		query = query.Where("transactions.subscription_id = ?", *filter.SubscriptionID)
	}
	if filter.CategoryID != nil {
		sub := s.db.Table("subscriptions").Select("id").Where("category_id = ?", *filter.CategoryID)
		query = query.Where("transactions.subscription_id IN (?)", sub)
	}
	return query
}

// ListTransactions returns a page of transactions, newest first, with their
// subscription and its category.
func (s *transactionService) ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	var totalItems int64
	if err := s.filtered(filter).Count(&totalItems).Error; err != nil {
		return nil, internal(err)
	}

	var transactions []models.Transaction
	if err := s.filtered(filter).
		Preload("Subscription", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Subscription.Category").
		Order("transactions.date DESC").
		Order("transactions.created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, internal(err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PerPage, totalItems)
	return &result, nil
}

// RecentTransactions returns the latest transactions of a subscription.
func (s *transactionService) RecentTransactions(subscriptionID string, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("subscription_id = ?", subscriptionID).
		Order("date DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, internal(err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrTransactionNotFound)
	}
	return &transaction, nil
}

// SumAmount totals the amounts matching filter.
func (s *transactionService) SumAmount(filter TransactionFilter) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := s.filtered(filter).
		Select("COALESCE(SUM(transactions.amount), 0) AS total").
		Scan(&row).Error; err != nil {
		return decimal.Zero, internal(err)
	}
	return money(row.Total), nil
}

// CountTransactions counts the transactions matching filter.
func (s *transactionService) CountTransactions(filter TransactionFilter) (int64, error) {
	var count int64
	if err := s.filtered(filter).Count(&count).Error; err != nil {
		return 0, internal(err)
	}
	return count, nil
}

// MostExpensive returns the largest transaction matching filter, or nil.
func (s *transactionService) MostExpensive(filter TransactionFilter) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.filtered(filter).Order("transactions.amount DESC").First(&transaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, internal(err)
	}
	return &transaction, nil
}

// TotalsByCategory groups the matching spend by subscription category,
// largest first.
func (s *transactionService) TotalsByCategory(filter TransactionFilter) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	if err := s.filtered(filter).
		Joins("JOIN subscriptions ON subscriptions.id = transactions.subscription_id").
		Select("subscriptions.category_id AS category_id, COALESCE(SUM(transactions.amount), 0) AS total, COUNT(*) AS count").
		Group("subscriptions.category_id").
		Scan(&rows).Error; err != nil {
		return nil, internal(err)
	}
	for i := range rows {
		rows[i].Total = money(rows[i].Total)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows, nil
}

// DailyTotals groups the matching spend by calendar day, oldest first.
func (s *transactionService) DailyTotals(filter TransactionFilter) ([]DailyTotal, error) {
	var rows []DailyTotal
	if err := s.filtered(filter).
		Select("transactions.date AS date, COALESCE(SUM(transactions.amount), 0) AS total, COUNT(*) AS count").
		Group("transactions.date").
		Order("transactions.date ASC").
		Scan(&rows).Error; err != nil {
		return nil, internal(err)
	}
	for i := range rows {
		rows[i].Total = money(rows[i].Total)
	}
	return rows, nil
}

// ExistsForDate reports whether the subscription was already charged on date.
func (s *transactionService) ExistsForDate(tx *gorm.DB, subscriptionID string, date types.Date) (bool, error) {
	if tx == nil {
		tx = s.db
	}
	var count int64
	if err := tx.Model(&models.Transaction{}).
		Where("subscription_id = ? AND date = ?", subscriptionID, date).
		Count(&count).Error; err != nil {
		return false, internal(err)
	}
	return count > 0, nil
}

// CreateInTx inserts a transaction using the caller's DB transaction.
// A duplicate (subscription, date) pair surfaces as gorm.ErrDuplicatedKey.
func (s *transactionService) CreateInTx(tx *gorm.DB, transaction *models.Transaction) error {
	if tx == nil {
		tx = s.db
	}
	if err := tx.Create(transaction).Error; err != nil {
		return internal(err)
	}
	return nil
}
