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
)

// RecordPaymentInput carries one payment into RecordPayment or SubmitPayment.
type RecordPaymentInput struct {
	StudentID  uuid.UUID
	Amount     decimal.Decimal
	MethodID   uuid.UUID
	Reference  string
	Date       time.Time
	Notes      string
	ProofPath  *string
	RecordedBy uuid.UUID
	Term       academicservice.TermContext
}

// RecordPaymentResult is what a completed recording hands back: the payment,
// the issued receipt, and the ledger as it stood after the payment landed.
type RecordPaymentResult struct {
	Payment *model.PaymentModel
	Receipt *model.ReceiptModel
	Ledger  *model.StudentLedgerModel
}

func validatePaymentInput(db *gorm.DB, in RecordPaymentInput) (*model.PaymentMethodModel, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be greater than zero", ErrValidation)
	}
	var student academicmodel.StudentModel
	if err := db.Where("student_id = ?", in.StudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student %s", ErrNotFound, in.StudentID)
		}
		return nil, err
	}
	var method model.PaymentMethodModel
	if err := db.Where("payment_method_id = ?", in.MethodID).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: payment method %s", ErrNotFound, in.MethodID)
		}
		return nil, err
	}
	if !method.PaymentMethodIsActive {
		return nil, fmt.Errorf("%w: payment method %s is inactive", ErrValidation, method.PaymentMethodName)
	}
	if method.PaymentMethodRequiresReference && in.Reference == "" {
		return nil, fmt.Errorf("%w: method %s requires a reference number", ErrValidation, method.PaymentMethodName)
	}
	return &method, nil
}

// RecordPayment is the bursar flow: the payment is created already verified,
// folded into the ledger, and receipted, all inside one transaction. If any
// step fails nothing is persisted — no payment, no ledger change, no receipt,
// no audit entries.
func RecordPayment(db *gorm.DB, in RecordPaymentInput) (*RecordPaymentResult, error) {
	if _, err := validatePaymentInput(db, in); err != nil {
		return nil, err
	}

	var result RecordPaymentResult
	err := db.Transaction(func(tx *gorm.DB) error {
		ledger, err := GetOrCreateLedger(tx, in.StudentID, in.Term)
		if err != nil {
			return err
		}

		now := time.Now()
		payment := model.PaymentModel{
			PaymentStudentID:       in.StudentID,
			PaymentLedgerID:        &ledger.LedgerID,
			PaymentAmount:          in.Amount,
			PaymentMethodID:        in.MethodID,
			PaymentReferenceNumber: in.Reference,
			PaymentDate:            in.Date,
			PaymentRecordedByID:    in.RecordedBy,
			PaymentStatus:          model.PaymentStatusVerified,
			PaymentNotes:           in.Notes,
			PaymentProofPath:       in.ProofPath,
			PaymentVerifiedAt:      &now,
			PaymentVerifiedByID:    &in.RecordedBy,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if err := ApplyVerifiedPayment(tx, ledger.LedgerID, in.Amount, in.Date); err != nil {
			return err
		}

		var after model.StudentLedgerModel
		if err := tx.Where("ledger_id = ?", ledger.LedgerID).First(&after).Error; err != nil {
			return err
		}

		receipt, err := IssueReceipt(tx, &payment, after.OutstandingBalance, in.RecordedBy)
		if err != nil {
			return err
		}

		if err := WriteAudit(tx, AuditEntry{
			UserID:      in.RecordedBy,
			Action:      model.AuditPaymentRecorded,
			Description: fmt.Sprintf("recorded %s payment for student %s", in.Amount.StringFixed(2), in.StudentID),
			StudentID:   &in.StudentID,
			Amount:      &in.Amount,
			Metadata: map[string]interface{}{
				"payment_id": payment.PaymentID.String(),
				"method_id":  in.MethodID.String(),
				"reference":  in.Reference,
			},
		}); err != nil {
			return err
		}
		if err := WriteAudit(tx, AuditEntry{
			UserID:      in.RecordedBy,
			Action:      model.AuditReceiptGenerated,
			Description: fmt.Sprintf("issued receipt %s", receipt.ReceiptNumber),
			StudentID:   &in.StudentID,
			Amount:      &in.Amount,
			Metadata:    map[string]interface{}{"receipt_number": receipt.ReceiptNumber},
		}); err != nil {
			return err
		}

		result = RecordPaymentResult{Payment: &payment, Receipt: receipt, Ledger: &after}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitPayment is the student/parent flow: the payment goes in pending and
// leaves the ledger alone until a staff member reviews it. The submission
// itself still lands on the audit trail.
func SubmitPayment(db *gorm.DB, in RecordPaymentInput) (*model.PaymentModel, error) {
	if _, err := validatePaymentInput(db, in); err != nil {
		return nil, err
	}
	payment := model.PaymentModel{
		PaymentStudentID:       in.StudentID,
		PaymentAmount:          in.Amount,
		PaymentMethodID:        in.MethodID,
		PaymentReferenceNumber: in.Reference,
		PaymentDate:            in.Date,
		PaymentRecordedByID:    in.RecordedBy,
		PaymentStatus:          model.PaymentStatusPending,
		PaymentNotes:           in.Notes,
		PaymentProofPath:       in.ProofPath,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return WriteAudit(tx, AuditEntry{
			UserID:      in.RecordedBy,
			Action:      model.AuditPaymentSubmitted,
			Description: fmt.Sprintf("submitted %s payment for student %s, awaiting review", in.Amount.StringFixed(2), in.StudentID),
			StudentID:   &in.StudentID,
			Amount:      &in.Amount,
			Metadata: map[string]interface{}{
				"payment_id": payment.PaymentID.String(),
				"method_id":  in.MethodID.String(),
				"reference":  in.Reference,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ReviewPayment moves a pending payment to verified, failed or cancelled.
// Verification folds the amount into the ledger and issues the receipt inside
// the same transaction; the other outcomes only stamp the status.
func ReviewPayment(db *gorm.DB, paymentID uuid.UUID, next model.PaymentStatus, reviewerID uuid.UUID, term academicservice.TermContext) (*RecordPaymentResult, error) {
	var result RecordPaymentResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var payment model.PaymentModel
		if err := tx.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: payment %s", ErrNotFound, paymentID)
			}
			return err
		}
		if !payment.PaymentStatus.CanTransitionTo(next) {
			return fmt.Errorf("%w: payment is %s, cannot move to %s", ErrValidation, payment.PaymentStatus, next)
		}

		now := time.Now()
		updates := map[string]interface{}{"payment_status": next}
		if next == model.PaymentStatusVerified {
			updates["payment_verified_at"] = now
			updates["payment_verified_by_id"] = reviewerID
		}

		if next != model.PaymentStatusVerified {
			if err := tx.Model(&model.PaymentModel{}).
				Where("payment_id = ?", paymentID).Updates(updates).Error; err != nil {
				return err
			}
			payment.PaymentStatus = next
			result = RecordPaymentResult{Payment: &payment}
			return nil
		}

		ledger, err := GetOrCreateLedger(tx, payment.PaymentStudentID, term)
		if err != nil {
			return err
		}
		updates["payment_ledger_id"] = ledger.LedgerID
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_id = ?", paymentID).Updates(updates).Error; err != nil {
			return err
		}
		payment.PaymentStatus = model.PaymentStatusVerified
		payment.PaymentLedgerID = &ledger.LedgerID
		payment.PaymentVerifiedAt = &now
		payment.PaymentVerifiedByID = &reviewerID

		if err := ApplyVerifiedPayment(tx, ledger.LedgerID, payment.PaymentAmount, payment.PaymentDate); err != nil {
			return err
		}
		var after model.StudentLedgerModel
		if err := tx.Where("ledger_id = ?", ledger.LedgerID).First(&after).Error; err != nil {
			return err
		}
		receipt, err := IssueReceipt(tx, &payment, after.OutstandingBalance, reviewerID)
		if err != nil {
			return err
		}

		if err := WriteAudit(tx, AuditEntry{
			UserID:      reviewerID,
			Action:      model.AuditPaymentVerified,
			Description: fmt.Sprintf("verified payment %s for student %s", paymentID, payment.PaymentStudentID),
			StudentID:   &payment.PaymentStudentID,
			Amount:      &payment.PaymentAmount,
		}); err != nil {
			return err
		}
		if err := WriteAudit(tx, AuditEntry{
			UserID:      reviewerID,
			Action:      model.AuditReceiptGenerated,
			Description: fmt.Sprintf("issued receipt %s", receipt.ReceiptNumber),
			StudentID:   &payment.PaymentStudentID,
			Amount:      &payment.PaymentAmount,
			Metadata:    map[string]interface{}{"receipt_number": receipt.ReceiptNumber},
		}); err != nil {
			return err
		}

		result = RecordPaymentResult{Payment: &payment, Receipt: receipt, Ledger: &after}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
