package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	academicmodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
	academicservice "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/service"
	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
	helper "github.com/Tapiwa2010/zrp-primary-school/internals/helpers"
)

// GetLedger returns the ledger row for (student, year, term) or ErrNotFound.
func GetLedger(db *gorm.DB, studentID uuid.UUID, tc academicservice.TermContext) (*model.StudentLedgerModel, error) {
	var ledger model.StudentLedgerModel
	err := db.Where(
		"ledger_student_id = ? AND ledger_academic_year_id = ? AND ledger_term_id = ?",
		studentID, tc.AcademicYearID, tc.TermID,
	).First(&ledger).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ledger, nil
}

// GetOrCreateLedger returns the existing ledger for (student, year, term) or
// opens one. A new ledger takes term_fees from the fee structure matching the
// student's grade and scholar type, and opening_balance from the student's
// most recent prior ledger — arrears carry forward, credit does not.
func GetOrCreateLedger(db *gorm.DB, studentID uuid.UUID, tc academicservice.TermContext) (*model.StudentLedgerModel, error) {
	ledger, err := GetLedger(db, studentID, tc)
	if err == nil {
		return ledger, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var student academicmodel.StudentModel
	if err := db.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student %s", ErrNotFound, studentID)
		}
		return nil, err
	}

	termFees := decimal.Zero
	var fs model.FeeStructureModel
	err = db.Where(
		"fee_structure_academic_year_id = ? AND fee_structure_term_id = ? AND fee_structure_grade_id = ? AND fee_structure_is_day_scholar = ?",
		tc.AcademicYearID, tc.TermID, student.StudentGradeID, !student.StudentIsBoarder,
	).First(&fs).Error
	if err == nil {
		termFees = fs.TotalFee
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	opening := decimal.Zero
	var prev model.StudentLedgerModel
	err = db.Where(
		"ledger_student_id = ? AND NOT (ledger_academic_year_id = ? AND ledger_term_id = ?)",
		studentID, tc.AcademicYearID, tc.TermID,
	).Order("ledger_created_at DESC").First(&prev).Error
	if err == nil {
		if prev.OutstandingBalance.IsPositive() {
			opening = prev.OutstandingBalance
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := model.StudentLedgerModel{
		LedgerStudentID:      studentID,
		LedgerAcademicYearID: tc.AcademicYearID,
		LedgerTermID:         tc.TermID,
		OpeningBalance:       opening,
		TermFees:             termFees,
		TotalRequired:        opening.Add(termFees),
		PaymentsMade:         decimal.Zero,
		OutstandingBalance:   opening.Add(termFees),
	}
	if err := db.Create(&fresh).Error; err != nil {
		// Lost a race against a concurrent opener: re-read theirs.
		if helper.IsUniqueViolation(err) {
			return GetLedger(db, studentID, tc)
		}
		return nil, err
	}
	return &fresh, nil
}

// SetLedgerFees overwrites opening_balance and term_fees and recomputes the
// derived columns, all in one UPDATE so a concurrent payment cannot interleave
// between the write and the recompute.
func SetLedgerFees(db *gorm.DB, ledgerID uuid.UUID, opening, termFees decimal.Decimal) error {
	res := db.Model(&model.StudentLedgerModel{}).
		Where("ledger_id = ?", ledgerID).
		Updates(map[string]interface{}{
			"opening_balance":     opening,
			"term_fees":           termFees,
			"total_required":      gorm.Expr("? + ?", opening, termFees),
			"outstanding_balance": gorm.Expr("? + ? - payments_made", opening, termFees),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyVerifiedPayment folds a verified payment into the ledger. The increment
// and the derived-column recompute happen in a single UPDATE; there is no
// read-modify-write window, so two concurrent payments both land.
func ApplyVerifiedPayment(db *gorm.DB, ledgerID uuid.UUID, amount decimal.Decimal, paidAt time.Time) error {
	res := db.Model(&model.StudentLedgerModel{}).
		Where("ledger_id = ?", ledgerID).
		Updates(map[string]interface{}{
			"payments_made":       gorm.Expr("payments_made + ?", amount),
			"total_required":      gorm.Expr("opening_balance + term_fees"),
			"outstanding_balance": gorm.Expr("opening_balance + term_fees - (payments_made + ?)", amount),
			"last_payment_date":   paidAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyRefund backs a processed refund out of the ledger, same single-UPDATE
// discipline as ApplyVerifiedPayment.
func ApplyRefund(db *gorm.DB, ledgerID uuid.UUID, amount decimal.Decimal) error {
	res := db.Model(&model.StudentLedgerModel{}).
		Where("ledger_id = ?", ledgerID).
		Updates(map[string]interface{}{
			"payments_made":       gorm.Expr("payments_made - ?", amount),
			"total_required":      gorm.Expr("opening_balance + term_fees"),
			"outstanding_balance": gorm.Expr("opening_balance + term_fees - (payments_made - ?)", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetLedgerFlag marks or clears a ledger for arrears follow-up.
func SetLedgerFlag(db *gorm.DB, ledgerID uuid.UUID, flagged bool, notes string) error {
	updates := map[string]interface{}{"flagged_for_followup": flagged}
	if notes != "" {
		updates["ledger_notes"] = notes
	}
	res := db.Model(&model.StudentLedgerModel{}).
		Where("ledger_id = ?", ledgerID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
