package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

/* =============== REQUESTS =============== */

// UpsertFeeStructureRequest creates or replaces the fee structure for one
// (year, term, grade, scholar type) slot. Amounts arrive as JSON numbers or
// strings; the service rejects negatives.
type UpsertFeeStructureRequest struct {
	AcademicYearID uuid.UUID `json:"academic_year_id" validate:"required"`
	TermID         uuid.UUID `json:"term_id" validate:"required"`
	GradeID        uuid.UUID `json:"grade_id" validate:"required"`
	IsDayScholar   *bool     `json:"is_day_scholar" validate:"required"`
	Currency       string    `json:"currency" validate:"required,oneof=USD ZWL ZAR"`

	TuitionFee      decimal.Decimal `json:"tuition_fee"`
	ExamFee         decimal.Decimal `json:"exam_fee"`
	DevelopmentLevy decimal.Decimal `json:"development_levy"`
	BuildingFund    decimal.Decimal `json:"building_fund"`
	SportsLevy      decimal.Decimal `json:"sports_levy"`
	LibraryFee      decimal.Decimal `json:"library_fee"`
	LaboratoryFee   decimal.Decimal `json:"laboratory_fee"`
	ComputerLabFee  decimal.Decimal `json:"computer_lab_fee"`
	TransportFee    decimal.Decimal `json:"transport_fee"`
	BoardingFee     decimal.Decimal `json:"boarding_fee"`
	ExtraClassesFee decimal.Decimal `json:"extra_classes_fee"`
	ActivityFee     decimal.Decimal `json:"activity_fee"`

	PaymentDeadline      *time.Time      `json:"payment_deadline,omitempty"`
	EarlyPaymentDiscount decimal.Decimal `json:"early_payment_discount"`
	LatePaymentPenalty   decimal.Decimal `json:"late_payment_penalty"`
}

func (r UpsertFeeStructureRequest) Components() []decimal.Decimal {
	return []decimal.Decimal{
		r.TuitionFee, r.ExamFee, r.DevelopmentLevy, r.BuildingFund,
		r.SportsLevy, r.LibraryFee, r.LaboratoryFee, r.ComputerLabFee,
		r.TransportFee, r.BoardingFee, r.ExtraClassesFee, r.ActivityFee,
	}
}

func (r UpsertFeeStructureRequest) ToModel() *m.FeeStructureModel {
	return &m.FeeStructureModel{
		FeeStructureAcademicYearID: r.AcademicYearID,
		FeeStructureTermID:         r.TermID,
		FeeStructureGradeID:        r.GradeID,
		FeeStructureIsDayScholar:   *r.IsDayScholar,
		FeeStructureCurrency:       m.Currency(r.Currency),
		TuitionFee:                 r.TuitionFee,
		ExamFee:                    r.ExamFee,
		DevelopmentLevy:            r.DevelopmentLevy,
		BuildingFund:               r.BuildingFund,
		SportsLevy:                 r.SportsLevy,
		LibraryFee:                 r.LibraryFee,
		LaboratoryFee:              r.LaboratoryFee,
		ComputerLabFee:             r.ComputerLabFee,
		TransportFee:               r.TransportFee,
		BoardingFee:                r.BoardingFee,
		ExtraClassesFee:            r.ExtraClassesFee,
		ActivityFee:                r.ActivityFee,
		PaymentDeadline:            r.PaymentDeadline,
		EarlyPaymentDiscount:       r.EarlyPaymentDiscount,
		LatePaymentPenalty:         r.LatePaymentPenalty,
	}
}

type CreateFeeComponentRequest struct {
	FeeComponentName        string `json:"fee_component_name" validate:"required,min=2,max=50"`
	FeeComponentDescription string `json:"fee_component_description"`
	FeeComponentIsMandatory *bool  `json:"fee_component_is_mandatory" validate:"required"`
}

func (r CreateFeeComponentRequest) ToModel() *m.FeeComponentModel {
	return &m.FeeComponentModel{
		FeeComponentName:        r.FeeComponentName,
		FeeComponentDescription: r.FeeComponentDescription,
		FeeComponentIsMandatory: *r.FeeComponentIsMandatory,
		FeeComponentIsActive:    true,
	}
}

/* =============== RESPONSES =============== */

type FeeStructureResponse struct {
	FeeStructureID uuid.UUID `json:"fee_structure_id"`
	AcademicYearID uuid.UUID `json:"academic_year_id"`
	TermID         uuid.UUID `json:"term_id"`
	GradeID        uuid.UUID `json:"grade_id"`
	IsDayScholar   bool      `json:"is_day_scholar"`
	Currency       string    `json:"currency"`

	TuitionFee      decimal.Decimal `json:"tuition_fee"`
	ExamFee         decimal.Decimal `json:"exam_fee"`
	DevelopmentLevy decimal.Decimal `json:"development_levy"`
	BuildingFund    decimal.Decimal `json:"building_fund"`
	SportsLevy      decimal.Decimal `json:"sports_levy"`
	LibraryFee      decimal.Decimal `json:"library_fee"`
	LaboratoryFee   decimal.Decimal `json:"laboratory_fee"`
	ComputerLabFee  decimal.Decimal `json:"computer_lab_fee"`
	TransportFee    decimal.Decimal `json:"transport_fee"`
	BoardingFee     decimal.Decimal `json:"boarding_fee"`
	ExtraClassesFee decimal.Decimal `json:"extra_classes_fee"`
	ActivityFee     decimal.Decimal `json:"activity_fee"`
	TotalFee        decimal.Decimal `json:"total_fee"`

	PaymentDeadline      *time.Time      `json:"payment_deadline,omitempty"`
	EarlyPaymentDiscount decimal.Decimal `json:"early_payment_discount"`
	LatePaymentPenalty   decimal.Decimal `json:"late_payment_penalty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func FromFeeStructureModel(x m.FeeStructureModel) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:       x.FeeStructureID,
		AcademicYearID:       x.FeeStructureAcademicYearID,
		TermID:               x.FeeStructureTermID,
		GradeID:              x.FeeStructureGradeID,
		IsDayScholar:         x.FeeStructureIsDayScholar,
		Currency:             string(x.FeeStructureCurrency),
		TuitionFee:           x.TuitionFee,
		ExamFee:              x.ExamFee,
		DevelopmentLevy:      x.DevelopmentLevy,
		BuildingFund:         x.BuildingFund,
		SportsLevy:           x.SportsLevy,
		LibraryFee:           x.LibraryFee,
		LaboratoryFee:        x.LaboratoryFee,
		ComputerLabFee:       x.ComputerLabFee,
		TransportFee:         x.TransportFee,
		BoardingFee:          x.BoardingFee,
		ExtraClassesFee:      x.ExtraClassesFee,
		ActivityFee:          x.ActivityFee,
		TotalFee:             x.TotalFee,
		PaymentDeadline:      x.PaymentDeadline,
		EarlyPaymentDiscount: x.EarlyPaymentDiscount,
		LatePaymentPenalty:   x.LatePaymentPenalty,
		CreatedAt:            x.FeeStructureCreatedAt,
		UpdatedAt:            x.FeeStructureUpdatedAt,
	}
}

func FromFeeStructureModels(list []m.FeeStructureModel) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromFeeStructureModel(it))
	}
	return out
}
