package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/types"
)

var hundred = decimal.NewFromInt(100)

// alertThreshold is the share of a limit, in percent, that raises an alert.
var alertThreshold = decimal.NewFromInt(90)

// lookupError maps a missing row to notFound and anything else to an
// internal error.
func lookupError(err error, notFound *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func internal(err error) error {
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// monthRange returns the first day of the month and the first day of the
// following month.
func monthRange(year int, month time.Month) (types.Date, types.Date) {
	start := types.NewDate(year, month, 1)
	return start, types.DateOf(start.AddDate(0, 1, 0))
}

// yearRange returns Jan 1 of year and Jan 1 of the following year.
func yearRange(year int) (types.Date, types.Date) {
	return types.NewDate(year, time.January, 1), types.NewDate(year+1, time.January, 1)
}

// weekRange returns the Monday starting the week of d and the Monday after.
func weekRange(d types.Date) (types.Date, types.Date) {
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDays(-offset)
	return start, start.AddDays(7)
}

// percentOf returns part/whole*100, or zero when whole is not positive.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// round1 rounds a percentage to one decimal place for display.
func round1(d decimal.Decimal) float64 {
	f, _ := d.Round(1).Float64()
	return f
}

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
