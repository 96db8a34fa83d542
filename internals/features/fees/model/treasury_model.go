package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   EXCHANGE RATES
============================== */

// ExchangeRateModel is a static rate table; there is no conversion engine.
type ExchangeRateModel struct {
	ExchangeRateID   uuid.UUID       `gorm:"column:exchange_rate_id;type:uuid;primaryKey" json:"exchange_rate_id"`
	FromCurrency     Currency        `gorm:"column:from_currency;type:varchar(3);not null;uniqueIndex:uniq_rate_per_day,priority:1" json:"from_currency"`
	ToCurrency       Currency        `gorm:"column:to_currency;type:varchar(3);not null;uniqueIndex:uniq_rate_per_day,priority:2" json:"to_currency"`
	Rate             decimal.Decimal `gorm:"column:rate;type:decimal(10,4);not null" json:"rate"`
	RateDate         time.Time       `gorm:"column:rate_date;not null;uniqueIndex:uniq_rate_per_day,priority:3" json:"rate_date"`
	RateCreatedAt    time.Time       `gorm:"column:rate_created_at;autoCreateTime" json:"rate_created_at"`
}

func (ExchangeRateModel) TableName() string { return "exchange_rates" }

/* ==============================
   AGENT PAYMENTS
============================== */

type AgentPaymentStatus string

const (
	AgentPaymentPending  AgentPaymentStatus = "pending"
	AgentPaymentVerified AgentPaymentStatus = "verified"
	AgentPaymentPaid     AgentPaymentStatus = "paid"
)

// AgentPaymentModel records mobile-money agent collections. The commission
// is derived from amount and rate on every save.
type AgentPaymentModel struct {
	AgentPaymentID   uuid.UUID          `gorm:"column:agent_payment_id;type:uuid;primaryKey" json:"agent_payment_id"`
	AgentName        string             `gorm:"column:agent_name;size:100;not null" json:"agent_name"`
	AgentPhone       string             `gorm:"column:agent_phone;size:20;not null" json:"agent_phone"`
	AgentStudentID   uuid.UUID          `gorm:"column:agent_student_id;type:uuid;not null;index" json:"agent_student_id"`
	AgentAmount      decimal.Decimal    `gorm:"column:agent_amount;type:decimal(10,2);not null" json:"agent_amount"`
	AgentReference   string             `gorm:"column:agent_reference;size:100;not null" json:"agent_reference"`
	AgentCollectedAt time.Time          `gorm:"column:agent_collected_at;not null" json:"agent_collected_at"`
	AgentRecordedBy  uuid.UUID          `gorm:"column:agent_recorded_by;type:uuid;not null" json:"agent_recorded_by"`
	AgentStatus      AgentPaymentStatus `gorm:"column:agent_status;type:varchar(10);not null;default:'pending'" json:"agent_status"`
	CommissionRate   decimal.Decimal    `gorm:"column:commission_rate;type:decimal(5,2);not null;default:5" json:"commission_rate"` // percentage
	CommissionAmount decimal.Decimal    `gorm:"column:commission_amount;type:decimal(10,2);not null;default:0" json:"commission_amount"`
}

func (AgentPaymentModel) TableName() string { return "agent_payments" }

// BeforeSave derives commission_amount = amount × rate / 100.
func (m *AgentPaymentModel) BeforeSave(tx *gorm.DB) error {
	m.CommissionAmount = m.AgentAmount.Mul(m.CommissionRate).Div(decimal.NewFromInt(100)).Round(2)
	return nil
}

/* ==============================
   BANK RECONCILIATION
============================== */

type BankReconciliationModel struct {
	ReconciliationID        uuid.UUID       `gorm:"column:reconciliation_id;type:uuid;primaryKey" json:"reconciliation_id"`
	ReconciliationDate      time.Time       `gorm:"column:reconciliation_date;not null" json:"reconciliation_date"`
	BankBalance             decimal.Decimal `gorm:"column:bank_balance;type:decimal(10,2);not null" json:"bank_balance"`
	BookBalance             decimal.Decimal `gorm:"column:book_balance;type:decimal(10,2);not null" json:"book_balance"`
	BalanceDifference       decimal.Decimal `gorm:"column:balance_difference;type:decimal(10,2);not null;default:0" json:"balance_difference"`
	ReconciledByID          uuid.UUID       `gorm:"column:reconciled_by_id;type:uuid;not null" json:"reconciled_by_id"`
	ReconciliationNotes     string          `gorm:"column:reconciliation_notes;type:text" json:"reconciliation_notes"`
	ReconciliationCreatedAt time.Time       `gorm:"column:reconciliation_created_at;autoCreateTime" json:"reconciliation_created_at"`
}

func (BankReconciliationModel) TableName() string { return "bank_reconciliations" }

// BeforeSave derives difference = bank − book.
func (m *BankReconciliationModel) BeforeSave(tx *gorm.DB) error {
	m.BalanceDifference = m.BankBalance.Sub(m.BookBalance)
	return nil
}

/* ==============================
   FEE REMINDERS
============================== */

type ReminderType string

const (
	ReminderPaymentDue          ReminderType = "payment_due"
	ReminderOverdue             ReminderType = "overdue"
	ReminderFinalNotice         ReminderType = "final_notice"
	ReminderReceiptConfirmation ReminderType = "receipt_confirmation"
)

type FeeReminderModel struct {
	ReminderID        uuid.UUID    `gorm:"column:reminder_id;type:uuid;primaryKey" json:"reminder_id"`
	ReminderStudentID uuid.UUID    `gorm:"column:reminder_student_id;type:uuid;not null;index" json:"reminder_student_id"`
	ReminderType      ReminderType `gorm:"column:reminder_type;type:varchar(20);not null" json:"reminder_type"`
	ReminderMessage   string       `gorm:"column:reminder_message;type:text;not null" json:"reminder_message"`
	SentViaSMS        bool         `gorm:"column:sent_via_sms;not null;default:false" json:"sent_via_sms"`
	SentViaEmail      bool         `gorm:"column:sent_via_email;not null;default:false" json:"sent_via_email"`
	ReminderSentByID  uuid.UUID    `gorm:"column:reminder_sent_by_id;type:uuid;not null" json:"reminder_sent_by_id"`
	ReminderSentAt    time.Time    `gorm:"column:reminder_sent_at;autoCreateTime" json:"reminder_sent_at"`
}

func (FeeReminderModel) TableName() string { return "fee_reminders" }
