package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

// Convert applies the static rate table to an amount: the most recent rate for
// the pair on or before the given date wins. No rate on file for the pair is
// ErrNotFound; the table is never inverted or chained through a third
// currency.
func Convert(db *gorm.DB, amount decimal.Decimal, from, to model.Currency, date time.Time) (decimal.Decimal, error) {
	if !model.ValidCurrency(from) || !model.ValidCurrency(to) {
		return decimal.Zero, fmt.Errorf("%w: unknown currency pair %s/%s", ErrValidation, from, to)
	}
	if from == to {
		return amount.Round(2), nil
	}

	var rate model.ExchangeRateModel
	err := db.Where("from_currency = ? AND to_currency = ? AND rate_date <= ?", from, to, date).
		Order("rate_date DESC").
		First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no %s/%s rate on or before %s",
				ErrNotFound, from, to, date.Format("2006-01-02"))
		}
		return decimal.Zero, err
	}
	return amount.Mul(rate.Rate).Round(2), nil
}
