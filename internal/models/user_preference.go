package models

import "github.com/shopspring/decimal"

// DefaultMonthlyBudget is the whole-account budget of a fresh install.
var DefaultMonthlyBudget = decimal.NewFromInt(500)

// UserPreference is the single global settings row.
type UserPreference struct {
	Base
	MonthlyBudget    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthly_budget"`
	Currency         string          `gorm:"size:3;not null" json:"currency"`
	NotifyUpcoming   bool            `gorm:"not null" json:"notify_upcoming"`
	NotifyOverbudget bool            `gorm:"not null" json:"notify_overbudget"`
	WeeklyReport     bool            `gorm:"not null" json:"weekly_report"`
}
