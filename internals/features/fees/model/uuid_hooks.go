package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDs are generated app-side so the models behave identically on postgres and
// the sqlite test database.

func (m *FeeStructureModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeStructureID == uuid.Nil {
		m.FeeStructureID = uuid.New()
	}
	return nil
}

func (m *FeeComponentModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeComponentID == uuid.Nil {
		m.FeeComponentID = uuid.New()
	}
	return nil
}

func (m *StudentLedgerModel) BeforeCreate(tx *gorm.DB) error {
	if m.LedgerID == uuid.Nil {
		m.LedgerID = uuid.New()
	}
	return nil
}

func (m *PaymentMethodModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentMethodID == uuid.Nil {
		m.PaymentMethodID = uuid.New()
	}
	return nil
}

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	return nil
}

func (m *ReceiptModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReceiptID == uuid.Nil {
		m.ReceiptID = uuid.New()
	}
	return nil
}

func (m *DiscountModel) BeforeCreate(tx *gorm.DB) error {
	if m.DiscountID == uuid.Nil {
		m.DiscountID = uuid.New()
	}
	return nil
}

func (m *PaymentPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.PlanID == uuid.Nil {
		m.PlanID = uuid.New()
	}
	return nil
}

func (m *RefundModel) BeforeCreate(tx *gorm.DB) error {
	if m.RefundID == uuid.Nil {
		m.RefundID = uuid.New()
	}
	return nil
}

func (m *AuditLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.AuditID == uuid.Nil {
		m.AuditID = uuid.New()
	}
	return nil
}

func (m *ExchangeRateModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExchangeRateID == uuid.Nil {
		m.ExchangeRateID = uuid.New()
	}
	return nil
}

func (m *AgentPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AgentPaymentID == uuid.Nil {
		m.AgentPaymentID = uuid.New()
	}
	return nil
}

func (m *BankReconciliationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReconciliationID == uuid.Nil {
		m.ReconciliationID = uuid.New()
	}
	return nil
}

func (m *FeeReminderModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReminderID == uuid.Nil {
		m.ReminderID = uuid.New()
	}
	return nil
}
