package services

import (
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/models"
)

// preferenceService manages the global preference row.
type preferenceService struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewPreferenceService creates a new PreferenceServicer.
func NewPreferenceService(db *gorm.DB) PreferenceServicer {
	return &preferenceService{db: db}
}

// GetPreferences returns the preference row, creating it with defaults on
// first use.
func (s *preferenceService) GetPreferences() (*models.UserPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *preferenceService) load() (*models.UserPreference, error) {
	var pref models.UserPreference
	err := s.db.Order("created_at ASC").First(&pref).Error
	if err == nil {
		return &pref, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal(err)
	}

	pref = models.UserPreference{
		MonthlyBudget:    models.DefaultMonthlyBudget,
		Currency:         models.DefaultCurrency,
		NotifyUpcoming:   true,
		NotifyOverbudget: true,
		WeeklyReport:     false,
	}
	if err := s.db.Create(&pref).Error; err != nil {
		return nil, internal(err)
	}
	return &pref, nil
}

// UpdatePreferences applies the non-nil fields of input.
func (s *preferenceService) UpdatePreferences(input PreferenceInput) (*models.UserPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pref, err := s.load()
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.MonthlyBudget != nil {
		if input.MonthlyBudget.IsNegative() {
			return nil, apperrors.Field("monthly_budget", "The monthly budget must be at least 0.")
		}
		updates["monthly_budget"] = *input.MonthlyBudget
	}
	if input.Currency != nil {
		updates["currency"] = strings.ToUpper(*input.Currency)
	}
	if input.NotifyUpcoming != nil {
		updates["notify_upcoming"] = *input.NotifyUpcoming
	}
	if input.NotifyOverbudget != nil {
		updates["notify_overbudget"] = *input.NotifyOverbudget
	}
	if input.WeeklyReport != nil {
		updates["weekly_report"] = *input.WeeklyReport
	}

	if len(updates) > 0 {
		if err := s.db.Model(pref).Updates(updates).Error; err != nil {
			return nil, internal(err)
		}
		return s.load()
	}
	return pref, nil
}

// SetMonthlyBudget sets the whole-account monthly budget.
func (s *preferenceService) SetMonthlyBudget(amount decimal.Decimal) (*models.UserPreference, error) {
	return s.UpdatePreferences(PreferenceInput{MonthlyBudget: &amount})
}
