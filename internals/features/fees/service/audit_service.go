package service

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

// AuditEntry is everything a caller supplies when appending to the trail.
type AuditEntry struct {
	UserID      uuid.UUID
	Action      model.AuditAction
	Description string
	StudentID   *uuid.UUID
	Amount      *decimal.Decimal
	Metadata    map[string]interface{}
}

// WriteAudit appends one entry to the audit trail. Append-only: nothing in
// this package updates or deletes audit rows.
func WriteAudit(tx *gorm.DB, entry AuditEntry) error {
	row := model.AuditLogModel{
		AuditUserID:      entry.UserID,
		AuditActionType:  entry.Action,
		AuditDescription: entry.Description,
		AuditStudentID:   entry.StudentID,
		AuditAmount:      entry.Amount,
	}
	if len(entry.Metadata) > 0 {
		raw, err := json.Marshal(entry.Metadata)
		if err != nil {
			return err
		}
		row.AuditMetadata = datatypes.JSON(raw)
	}
	return tx.Create(&row).Error
}
