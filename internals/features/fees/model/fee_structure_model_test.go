package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newModelDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&FeeStructureModel{}))
	return db
}

func TestFeeStructureTotalIsAlwaysComponentSum(t *testing.T) {
	db := newModelDB(t)

	fs := FeeStructureModel{
		FeeStructureAcademicYearID: uuid.New(),
		FeeStructureTermID:         uuid.New(),
		FeeStructureGradeID:        uuid.New(),
		FeeStructureIsDayScholar:   true,
		FeeStructureCurrency:       CurrencyUSD,
		TuitionFee:                 decimal.RequireFromString("500.00"),
		ExamFee:                    decimal.RequireFromString("45.50"),
		SportsLevy:                 decimal.RequireFromString("30.00"),
		// An attempt to write the total directly must be overwritten.
		TotalFee: decimal.RequireFromString("9999.99"),
	}
	require.NoError(t, db.Create(&fs).Error)
	require.True(t, decimal.RequireFromString("575.50").Equal(fs.TotalFee),
		"total must be the component sum, got %s", fs.TotalFee)

	fs.BoardingFee = decimal.RequireFromString("400.00")
	require.NoError(t, db.Save(&fs).Error)

	var after FeeStructureModel
	require.NoError(t, db.First(&after, "fee_structure_id = ?", fs.FeeStructureID).Error)
	require.True(t, decimal.RequireFromString("975.50").Equal(after.TotalFee),
		"total must track component updates, got %s", after.TotalFee)
}

func TestFeeStructureSlotIsUnique(t *testing.T) {
	db := newModelDB(t)

	slotYear, slotTerm, slotGrade := uuid.New(), uuid.New(), uuid.New()
	first := FeeStructureModel{
		FeeStructureAcademicYearID: slotYear,
		FeeStructureTermID:         slotTerm,
		FeeStructureGradeID:        slotGrade,
		FeeStructureIsDayScholar:   true,
		TuitionFee:                 decimal.RequireFromString("500.00"),
	}
	require.NoError(t, db.Create(&first).Error)

	dup := first
	dup.FeeStructureID = uuid.Nil
	require.Error(t, db.Create(&dup).Error, "same slot must be rejected")

	// The boarder slot for the same (year, term, grade) is a different row.
	boarder := first
	boarder.FeeStructureID = uuid.Nil
	boarder.FeeStructureIsDayScholar = false
	boarder.BoardingFee = decimal.RequireFromString("900.00")
	require.NoError(t, db.Create(&boarder).Error)
}
