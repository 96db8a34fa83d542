package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

func seedRate(t *testing.T, db *gorm.DB, from, to model.Currency, rate string, date time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.ExchangeRateModel{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         decimal.RequireFromString(rate),
		RateDate:     date,
	}).Error)
}

func TestConvertUsesMostRecentRateOnOrBeforeDate(t *testing.T) {
	db := newTestDB(t)

	jan := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	seedRate(t, db, model.CurrencyUSD, model.CurrencyZWL, "24.5000", jan)
	seedRate(t, db, model.CurrencyUSD, model.CurrencyZWL, "25.7513", feb)

	// On the February date itself the February rate applies.
	got, err := Convert(db, decimal.RequireFromString("100.00"), model.CurrencyUSD, model.CurrencyZWL, feb)
	require.NoError(t, err)
	requireDecimalEqual(t, "2575.13", got)

	// Between the two postings the January rate still governs.
	got, err = Convert(db, decimal.RequireFromString("100.00"), model.CurrencyUSD, model.CurrencyZWL,
		time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	requireDecimalEqual(t, "2450.00", got)
}

func TestConvertSameCurrencyIsIdentity(t *testing.T) {
	db := newTestDB(t)

	got, err := Convert(db, decimal.RequireFromString("412.50"), model.CurrencyUSD, model.CurrencyUSD, time.Now())
	require.NoError(t, err)
	requireDecimalEqual(t, "412.50", got)
}

func TestConvertMissingRateIsNotFound(t *testing.T) {
	db := newTestDB(t)

	feb := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	seedRate(t, db, model.CurrencyUSD, model.CurrencyZWL, "25.7513", feb)

	// No rate exists before the first posting.
	_, err := Convert(db, decimal.RequireFromString("100.00"), model.CurrencyUSD, model.CurrencyZWL,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrNotFound)

	// The table is directional: the reverse pair is never inferred.
	_, err = Convert(db, decimal.RequireFromString("100.00"), model.CurrencyZWL, model.CurrencyUSD, feb)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestConvertRejectsUnknownCurrency(t *testing.T) {
	db := newTestDB(t)

	_, err := Convert(db, decimal.RequireFromString("100.00"), "GBP", model.CurrencyUSD, time.Now())
	require.ErrorIs(t, err, ErrValidation)
}
