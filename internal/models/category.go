package models

import "github.com/shopspring/decimal"

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#3B82F6"

// Category groups subscriptions for budgeting and charts.
type Category struct {
	Base
	Name        string           `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Color       string           `gorm:"size:7;not null" json:"color"`
	BudgetLimit *decimal.Decimal `gorm:"type:decimal(10,2)" json:"budget_limit"`
}
