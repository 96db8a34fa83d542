package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type AuditAction string

const (
	AuditPaymentRecorded     AuditAction = "payment_recorded"
	AuditPaymentSubmitted    AuditAction = "payment_submitted"
	AuditPaymentVerified     AuditAction = "payment_verified"
	AuditReceiptGenerated    AuditAction = "receipt_generated"
	AuditDiscountApplied     AuditAction = "discount_applied"
	AuditRefundProcessed     AuditAction = "refund_processed"
	AuditLedgerEdited        AuditAction = "ledger_edited"
	AuditFeeStructureChanged AuditAction = "fee_structure_changed"
)

// AuditLogModel is the append-only trail of fee-affecting actions. There is
// deliberately no update or delete path anywhere in the codebase for this
// table.
type AuditLogModel struct {
	AuditID          uuid.UUID        `gorm:"column:audit_id;type:uuid;primaryKey" json:"audit_id"`
	AuditUserID      uuid.UUID        `gorm:"column:audit_user_id;type:uuid;not null;index" json:"audit_user_id"`
	AuditActionType  AuditAction      `gorm:"column:audit_action_type;type:varchar(25);not null;index" json:"audit_action_type"`
	AuditDescription string           `gorm:"column:audit_description;type:text;not null" json:"audit_description"`
	AuditStudentID   *uuid.UUID       `gorm:"column:audit_student_id;type:uuid;index" json:"audit_student_id,omitempty"`
	AuditAmount      *decimal.Decimal `gorm:"column:audit_amount;type:decimal(10,2)" json:"audit_amount,omitempty"`
	AuditMetadata    datatypes.JSON   `gorm:"column:audit_metadata" json:"audit_metadata,omitempty"` // ip, user agent, request id
	AuditTimestamp   time.Time        `gorm:"column:audit_timestamp;autoCreateTime;index" json:"audit_timestamp"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }
