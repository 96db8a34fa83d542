package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Tapiwa2010/zrp-primary-school/internals/constants"
	database "github.com/Tapiwa2010/zrp-primary-school/internals/databases"
	academicmodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
	academicservice "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/service"
	accountmodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/model"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

// newTestDB opens a fresh in-memory sqlite database. A single connection is
// enforced: each sqlite :memory: connection is its own database, and one
// connection also serialises the concurrent receipt test realistically.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// fixtures is the minimal world most fee tests need: one admin, one day
// scholar with a priced fee structure, the cash method, and a current term.
type fixtures struct {
	Admin   accountmodel.UserModel
	Student academicmodel.StudentModel
	Grade   academicmodel.GradeModel
	Year    academicmodel.AcademicYearModel
	TermRow academicmodel.TermModel
	Cash    model.PaymentMethodModel
	EcoCash model.PaymentMethodModel
	Fees    model.FeeStructureModel
	Term    academicservice.TermContext
}

func seedBase(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	var f fixtures

	f.Admin = accountmodel.UserModel{
		UserFirstName: "Rudo",
		UserLastName:  "Moyo",
		UserEmail:     "bursar@school.test",
		UserPassword:  "x",
		UserRole:      constants.RoleAdmin,
		UserIsActive:  true,
	}
	require.NoError(t, db.Create(&f.Admin).Error)

	studentUser := accountmodel.UserModel{
		UserFirstName: "Tatenda",
		UserLastName:  "Chirwa",
		UserEmail:     "tatenda@school.test",
		UserPassword:  "x",
		UserRole:      constants.RoleStudent,
		UserIsActive:  true,
	}
	require.NoError(t, db.Create(&studentUser).Error)

	f.Grade = academicmodel.GradeModel{GradeName: "Grade 4"}
	require.NoError(t, db.Create(&f.Grade).Error)

	f.Student = academicmodel.StudentModel{
		StudentUserID:    studentUser.UserID,
		StudentGradeID:   f.Grade.GradeID,
		StudentIsBoarder: false,
	}
	require.NoError(t, db.Create(&f.Student).Error)

	f.Year = academicmodel.AcademicYearModel{
		AcademicYearName:      "2026",
		AcademicYearStartDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		AcademicYearEndDate:   time.Date(2026, 12, 3, 0, 0, 0, 0, time.UTC),
		AcademicYearIsCurrent: true,
	}
	require.NoError(t, db.Create(&f.Year).Error)

	f.TermRow = academicmodel.TermModel{
		TermName:           academicmodel.TermOne,
		TermAcademicYearID: f.Year.AcademicYearID,
		TermStartDate:      time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		TermEndDate:        time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
		TermIsCurrent:      true,
	}
	require.NoError(t, db.Create(&f.TermRow).Error)

	f.Cash = model.PaymentMethodModel{
		PaymentMethodName:     "cash",
		PaymentMethodIsActive: true,
	}
	require.NoError(t, db.Create(&f.Cash).Error)

	f.EcoCash = model.PaymentMethodModel{
		PaymentMethodName:              "ecocash",
		PaymentMethodIsActive:          true,
		PaymentMethodRequiresReference: true,
	}
	require.NoError(t, db.Create(&f.EcoCash).Error)

	f.Fees = model.FeeStructureModel{
		FeeStructureAcademicYearID: f.Year.AcademicYearID,
		FeeStructureTermID:         f.TermRow.TermID,
		FeeStructureGradeID:        f.Grade.GradeID,
		FeeStructureIsDayScholar:   true,
		FeeStructureCurrency:       model.CurrencyUSD,
		TuitionFee:                 decimal.RequireFromString("800.00"),
		ExamFee:                    decimal.RequireFromString("50.00"),
		DevelopmentLevy:            decimal.RequireFromString("100.00"),
		SportsLevy:                 decimal.RequireFromString("50.00"),
	}
	require.NoError(t, db.Create(&f.Fees).Error)

	f.Term = academicservice.TermContext{
		AcademicYearID: f.Year.AcademicYearID,
		TermID:         f.TermRow.TermID,
	}
	return f
}

func seedSecondAdmin(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	head := accountmodel.UserModel{
		UserFirstName: "Nyasha",
		UserLastName:  "Gumbo",
		UserEmail:     "head@school.test",
		UserPassword:  "x",
		UserRole:      constants.RoleAdmin,
		UserIsActive:  true,
	}
	require.NoError(t, db.Create(&head).Error)
	return head.UserID
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got),
		"expected %s, got %s", want, got.String())
}
