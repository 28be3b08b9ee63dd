package models

import (
	"subtrack/internal/billing"
	"subtrack/internal/types"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a recurring payment. NextPaymentDate only moves forward
// through the transaction generator.
type Subscription struct {
	Base
	Name            string             `gorm:"size:255;not null" json:"name"`
	CategoryID      *string            `gorm:"type:varchar(36);index" json:"category_id"`
	Description     string             `gorm:"size:255" json:"description"`
	LogoURL         string             `gorm:"size:2048" json:"logo_url"`
	PlanName        string             `gorm:"size:255" json:"plan_name"`
	Price           decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"price"`
	BillingCycle    billing.Cycle      `gorm:"size:16;not null" json:"billing_cycle"`
	StartDate       *types.Date        `json:"start_date"`
	NextPaymentDate types.Date         `gorm:"not null;index" json:"next_payment_date"`
	IsAutoRenew     bool               `gorm:"not null" json:"is_auto_renew"`
	Status          SubscriptionStatus `gorm:"size:16;not null;index" json:"status"`
	Notes           string             `gorm:"type:text" json:"notes"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"deleted_at,omitempty"`

	// IsActive is derived from Status and never stored.
	IsActive bool `gorm:"-" json:"is_active"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

// Active reports whether the subscription is billed.
func (s *Subscription) Active() bool {
	return s.Status == SubscriptionStatusActive
}

// AfterFind fills the derived fields.
func (s *Subscription) AfterFind(tx *gorm.DB) error {
	s.IsActive = s.Active()
	return nil
}

// BeforeSave keeps the derived fields in step with Status.
func (s *Subscription) BeforeSave(tx *gorm.DB) error {
	s.IsActive = s.Active()
	return nil
}

// MonthlyCost normalises the price to a per-month amount.
func (s *Subscription) MonthlyCost() decimal.Decimal {
	switch s.BillingCycle {
	case billing.Weekly:
		return s.Price.Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12))
	case billing.Quarterly:
		return s.Price.Div(decimal.NewFromInt(3))
	case billing.Yearly:
		return s.Price.Div(decimal.NewFromInt(12))
	default:
		return s.Price
	}
}

// YearlyCost normalises the price to a per-year amount.
func (s *Subscription) YearlyCost() decimal.Decimal {
	switch s.BillingCycle {
	case billing.Weekly:
		return s.Price.Mul(decimal.NewFromInt(52))
	case billing.Quarterly:
		return s.Price.Mul(decimal.NewFromInt(4))
	case billing.Yearly:
		return s.Price
	default:
		return s.Price.Mul(decimal.NewFromInt(12))
	}
}
