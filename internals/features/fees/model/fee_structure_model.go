package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyZWL Currency = "ZWL"
	CurrencyZAR Currency = "ZAR"
)

func ValidCurrency(c Currency) bool {
	switch c {
	case CurrencyUSD, CurrencyZWL, CurrencyZAR:
		return true
	}
	return false
}

// FeeStructureModel declares the total obligation for one
// (academic year, term, grade, scholar type) combination as the sum of its
// fixed components. The total is derived and recomputed on every save, never
// written directly.
type FeeStructureModel struct {
	FeeStructureID             uuid.UUID `gorm:"column:fee_structure_id;type:uuid;primaryKey" json:"fee_structure_id"`
	FeeStructureAcademicYearID uuid.UUID `gorm:"column:fee_structure_academic_year_id;type:uuid;not null;index;uniqueIndex:uniq_fee_structure,priority:1" json:"fee_structure_academic_year_id"`
	FeeStructureTermID         uuid.UUID `gorm:"column:fee_structure_term_id;type:uuid;not null;index;uniqueIndex:uniq_fee_structure,priority:2" json:"fee_structure_term_id"`
	FeeStructureGradeID        uuid.UUID `gorm:"column:fee_structure_grade_id;type:uuid;not null;index;uniqueIndex:uniq_fee_structure,priority:3" json:"fee_structure_grade_id"`
	FeeStructureIsDayScholar   bool      `gorm:"column:fee_structure_is_day_scholar;not null;default:true;uniqueIndex:uniq_fee_structure,priority:4" json:"fee_structure_is_day_scholar"`
	FeeStructureCurrency       Currency  `gorm:"column:fee_structure_currency;type:varchar(3);not null;default:'USD'" json:"fee_structure_currency"`

	// Fee components
	TuitionFee       decimal.Decimal `gorm:"column:tuition_fee;type:decimal(10,2);not null;default:0" json:"tuition_fee"`
	ExamFee          decimal.Decimal `gorm:"column:exam_fee;type:decimal(10,2);not null;default:0" json:"exam_fee"`
	DevelopmentLevy  decimal.Decimal `gorm:"column:development_levy;type:decimal(10,2);not null;default:0" json:"development_levy"`
	BuildingFund     decimal.Decimal `gorm:"column:building_fund;type:decimal(10,2);not null;default:0" json:"building_fund"`
	SportsLevy       decimal.Decimal `gorm:"column:sports_levy;type:decimal(10,2);not null;default:0" json:"sports_levy"`
	LibraryFee       decimal.Decimal `gorm:"column:library_fee;type:decimal(10,2);not null;default:0" json:"library_fee"`
	LaboratoryFee    decimal.Decimal `gorm:"column:laboratory_fee;type:decimal(10,2);not null;default:0" json:"laboratory_fee"`
	ComputerLabFee   decimal.Decimal `gorm:"column:computer_lab_fee;type:decimal(10,2);not null;default:0" json:"computer_lab_fee"`
	TransportFee     decimal.Decimal `gorm:"column:transport_fee;type:decimal(10,2);not null;default:0" json:"transport_fee"`
	BoardingFee      decimal.Decimal `gorm:"column:boarding_fee;type:decimal(10,2);not null;default:0" json:"boarding_fee"`
	ExtraClassesFee  decimal.Decimal `gorm:"column:extra_classes_fee;type:decimal(10,2);not null;default:0" json:"extra_classes_fee"`
	ActivityFee      decimal.Decimal `gorm:"column:activity_fee;type:decimal(10,2);not null;default:0" json:"activity_fee"`

	// Derived: always sum(components), maintained by the BeforeSave hook.
	TotalFee decimal.Decimal `gorm:"column:total_fee;type:decimal(10,2);not null;default:0" json:"total_fee"`

	PaymentDeadline      *time.Time      `gorm:"column:payment_deadline" json:"payment_deadline,omitempty"`
	EarlyPaymentDiscount decimal.Decimal `gorm:"column:early_payment_discount;type:decimal(5,2);not null;default:0" json:"early_payment_discount"` // percentage
	LatePaymentPenalty   decimal.Decimal `gorm:"column:late_payment_penalty;type:decimal(5,2);not null;default:0" json:"late_payment_penalty"`     // percentage

	FeeStructureCreatedAt time.Time `gorm:"column:fee_structure_created_at;autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time `gorm:"column:fee_structure_updated_at;autoUpdateTime" json:"fee_structure_updated_at"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

// ComponentTotal sums all component fields.
func (m *FeeStructureModel) ComponentTotal() decimal.Decimal {
	return m.TuitionFee.
		Add(m.ExamFee).
		Add(m.DevelopmentLevy).
		Add(m.BuildingFund).
		Add(m.SportsLevy).
		Add(m.LibraryFee).
		Add(m.LaboratoryFee).
		Add(m.ComputerLabFee).
		Add(m.TransportFee).
		Add(m.BoardingFee).
		Add(m.ExtraClassesFee).
		Add(m.ActivityFee)
}

// BeforeSave keeps total_fee == sum(components) on every create and update.
func (m *FeeStructureModel) BeforeSave(tx *gorm.DB) error {
	m.TotalFee = m.ComponentTotal()
	return nil
}

// FeeComponentModel is the declarative catalog of component types.
type FeeComponentModel struct {
	FeeComponentID          uuid.UUID `gorm:"column:fee_component_id;type:uuid;primaryKey" json:"fee_component_id"`
	FeeComponentName        string    `gorm:"column:fee_component_name;size:50;uniqueIndex;not null" json:"fee_component_name"`
	FeeComponentDescription string    `gorm:"column:fee_component_description;type:text" json:"fee_component_description"`
	FeeComponentIsMandatory bool      `gorm:"column:fee_component_is_mandatory;not null;default:true" json:"fee_component_is_mandatory"`
	FeeComponentIsActive    bool      `gorm:"column:fee_component_is_active;not null;default:true" json:"fee_component_is_active"`
}

func (FeeComponentModel) TableName() string { return "fee_components" }
