package models

import "github.com/shopspring/decimal"

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
)

// Budget is a spending limit for a category, or for the whole account when
// CategoryID is nil. Month is nil for non-monthly periods.
type Budget struct {
	Base
	Name         string          `gorm:"size:255" json:"name"`
	CategoryID   *string         `gorm:"type:varchar(36);uniqueIndex:idx_budgets_scope" json:"category_id"`
	LimitAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"limit_amount"`
	Period       BudgetPeriod    `gorm:"size:16;not null;uniqueIndex:idx_budgets_scope" json:"period"`
	Year         int             `gorm:"not null;uniqueIndex:idx_budgets_scope" json:"year"`
	Month        *int            `gorm:"uniqueIndex:idx_budgets_scope" json:"month"`
	CurrentSpent decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"current_spent"`
	IsActive     bool            `gorm:"not null" json:"is_active"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
}
