package models

import (
	"subtrack/internal/types"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the settlement state of a transaction
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// DefaultCurrency is used when neither the request nor the preferences name one.
const DefaultCurrency = "USD"

// Transaction is a single charge of a subscription. At most one exists per
// subscription and calendar date.
type Transaction struct {
	Base
	SubscriptionID string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_transactions_subscription_date" json:"subscription_id"`
	Amount         decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency       string            `gorm:"size:3;not null" json:"currency"`
	Date           types.Date        `gorm:"not null;uniqueIndex:idx_transactions_subscription_date;index:idx_transactions_date" json:"date"`
	Status         TransactionStatus `gorm:"size:16;not null;index" json:"status"`
	TransactionID  string            `gorm:"size:64" json:"transaction_id"`
	Notes          string            `gorm:"type:text" json:"notes"`

	// Relationships
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE" json:"subscription,omitempty"`
}
