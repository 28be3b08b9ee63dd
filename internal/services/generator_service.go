package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"subtrack/internal/billing"
	"subtrack/internal/logger"
	"subtrack/internal/models"
	"subtrack/internal/types"
)

// generatorService materialises transactions for due subscriptions.
type generatorService struct {
	db           *gorm.DB
	transactions TransactionServicer
	preferences  PreferenceServicer
	observers    []GenerationObserver
	now          func() time.Time
}

// NewGeneratorService creates a new GeneratorServicer. Observers are told
// about every completed run.
func NewGeneratorService(db *gorm.DB, transactions TransactionServicer, preferences PreferenceServicer, observers ...GenerationObserver) GeneratorServicer {
	return &generatorService{
		db:           db,
		transactions: transactions,
		preferences:  preferences,
		observers:    observers,
		now:          time.Now,
	}
}

// Generate charges every active subscription due on or before the as-of
// date once and advances its next payment date by one billing cycle.
// Failures of single subscriptions are collected in the result; only a
// failure to load the due subscriptions is returned as an error.
func (s *generatorService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	start := time.Now()
	log := logger.Named("generator")

	asOf := types.DateOf(s.now().UTC())
	if req.AsOf != nil && !req.AsOf.IsZero() {
		asOf = *req.AsOf
	}

	db := s.db.WithContext(ctx)
	query := db.Where("status = ? AND next_payment_date <= ?", models.SubscriptionStatusActive, asOf).
		Order("next_payment_date ASC")
	if req.SubscriptionID != "" {
		query = query.Where("id = ?", req.SubscriptionID)
	}

	var due []models.Subscription
	if err := query.Find(&due).Error; err != nil {
		log.Errorw("failed to load due subscriptions", "as_of", asOf.String(), "error", err)
		return nil, internal(err)
	}

	currency := s.currency()
	result := &GenerateResult{AsOf: asOf, Errors: []GenerateError{}}

	for i := range due {
		if err := ctx.Err(); err != nil {
			log.Warnw("transaction generation interrupted",
				"as_of", asOf.String(),
				"remaining", len(due)-i,
				"error", err,
			)
			break
		}

		sub := &due[i]
		created, err := s.charge(db, sub, asOf, currency)
		switch {
		case err != nil:
			log.Errorw("failed to generate transaction",
				"subscription_id", sub.ID,
				"error", err,
			)
			result.Errors = append(result.Errors, GenerateError{
				SubscriptionID: sub.ID,
				Message:        errorMessage(err),
			})
		case created:
			result.Created++
		default:
			result.Skipped++
		}
	}

	result.Duration = time.Since(start)
	log.Infow("transaction generation finished",
		"as_of", asOf.String(),
		"subscription_id", req.SubscriptionID,
		"due", len(due),
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", result.Duration,
	)

	for _, observer := range s.observers {
		observer.ObserveGeneration(ctx, result)
	}
	return result, nil
}

// charge creates the transaction of sub for asOf and advances its next
// payment date in one DB transaction. It reports false without error when
// the subscription was already charged on asOf.
func (s *generatorService) charge(db *gorm.DB, sub *models.Subscription, asOf types.Date, currency string) (bool, error) {
	exists, err := s.transactions.ExistsForDate(db, sub.ID, asOf)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		transaction := &models.Transaction{
			SubscriptionID: sub.ID,
			Amount:         sub.Price,
			Currency:       currency,
			Date:           asOf,
			Status:         models.TransactionStatusCompleted,
			TransactionID:  newTransactionID(s.now()),
			Notes:          fmt.Sprintf("Automatic charge for subscription '%s'", sub.Name),
		}
		if err := s.transactions.CreateInTx(tx, transaction); err != nil {
			return err
		}

		next := types.DateOf(billing.Advance(sub.NextPaymentDate.Time, sub.BillingCycle))
		return tx.Model(&models.Subscription{}).
			Where("id = ?", sub.ID).
			Update("next_payment_date", next).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *generatorService) currency() string {
	if s.preferences == nil {
		return models.DefaultCurrency
	}
	pref, err := s.preferences.GetPreferences()
	if err != nil || pref.Currency == "" {
		if err != nil {
			logger.Get().Warnw("failed to load preferences, using default currency", "error", err)
		}
		return models.DefaultCurrency
	}
	return pref.Currency
}

// newTransactionID returns an external id of the form TXN-<unix>-<8 hex>.
func newTransactionID(now time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("TXN-%d-%08X", now.Unix(), now.UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("TXN-%d-%s", now.Unix(), strings.ToUpper(hex.EncodeToString(b)))
}

// errorMessage prefers the underlying cause over a generic AppError message.
func errorMessage(err error) string {
	if cause := errors.Unwrap(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}
