package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
)

func newAcademicsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.AcademicYearModel{}, &model.TermModel{}))
	return db
}

func seedYearWithTerms(t *testing.T, db *gorm.DB, name string, current bool) (model.AcademicYearModel, []model.TermModel) {
	t.Helper()
	year := model.AcademicYearModel{
		AcademicYearName:      name,
		AcademicYearStartDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		AcademicYearEndDate:   time.Date(2026, 12, 3, 0, 0, 0, 0, time.UTC),
		AcademicYearIsCurrent: current,
	}
	require.NoError(t, db.Create(&year).Error)

	terms := []model.TermModel{
		{TermName: model.TermOne, TermAcademicYearID: year.AcademicYearID,
			TermStartDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			TermEndDate:   time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)},
		{TermName: model.TermTwo, TermAcademicYearID: year.AcademicYearID,
			TermStartDate: time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC),
			TermEndDate:   time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, db.Create(&terms).Error)
	return year, terms
}

func TestResolveCurrentTermContext(t *testing.T) {
	db := newAcademicsDB(t)

	_, err := ResolveCurrentTermContext(db)
	require.ErrorIs(t, err, ErrNoCurrentTerm)

	year, terms := seedYearWithTerms(t, db, "2026", true)

	// Current year but no current term is still unresolvable.
	_, err = ResolveCurrentTermContext(db)
	require.ErrorIs(t, err, ErrNoCurrentTerm)

	require.NoError(t, SetCurrentTerm(db, terms[0].TermID))

	tc, err := ResolveCurrentTermContext(db)
	require.NoError(t, err)
	require.Equal(t, year.AcademicYearID, tc.AcademicYearID)
	require.Equal(t, terms[0].TermID, tc.TermID)
}

func TestSetCurrentTermClearsPrevious(t *testing.T) {
	db := newAcademicsDB(t)
	_, terms := seedYearWithTerms(t, db, "2026", true)

	require.NoError(t, SetCurrentTerm(db, terms[0].TermID))
	require.NoError(t, SetCurrentTerm(db, terms[1].TermID))

	var currentCount int64
	require.NoError(t, db.Model(&model.TermModel{}).
		Where("term_is_current = ?", true).Count(&currentCount).Error)
	require.EqualValues(t, 1, currentCount)

	tc, err := ResolveCurrentTermContext(db)
	require.NoError(t, err)
	require.Equal(t, terms[1].TermID, tc.TermID)
}

func TestResolveTermContextValidatesPair(t *testing.T) {
	db := newAcademicsDB(t)
	year, terms := seedYearWithTerms(t, db, "2026", false)
	otherYear, _ := seedYearWithTerms(t, db, "2027", false)

	tc, err := ResolveTermContext(db, year.AcademicYearID, terms[0].TermID)
	require.NoError(t, err)
	require.Equal(t, terms[0].TermID, tc.TermID)

	// A term that belongs to a different year must be rejected.
	_, err = ResolveTermContext(db, otherYear.AcademicYearID, terms[0].TermID)
	require.Error(t, err)
}
