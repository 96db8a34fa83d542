package database

import (
	"gorm.io/gorm"

	academicmodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
	accountmodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/model"
	feemodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

// Migrate brings the schema up to date. Ordered so FK targets exist before
// their referrers.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountmodel.UserModel{},

		&academicmodel.AcademicYearModel{},
		&academicmodel.TermModel{},
		&academicmodel.GradeModel{},
		&academicmodel.ClassRoomModel{},
		&academicmodel.TeacherAssignmentModel{},
		&academicmodel.StudentModel{},

		&feemodel.FeeComponentModel{},
		&feemodel.FeeStructureModel{},
		&feemodel.StudentLedgerModel{},
		&feemodel.PaymentMethodModel{},
		&feemodel.PaymentModel{},
		&feemodel.ReceiptModel{},
		&feemodel.ReceiptCounterModel{},
		&feemodel.DiscountModel{},
		&feemodel.PaymentPlanModel{},
		&feemodel.RefundModel{},
		&feemodel.AuditLogModel{},
		&feemodel.ExchangeRateModel{},
		&feemodel.AgentPaymentModel{},
		&feemodel.BankReconciliationModel{},
		&feemodel.FeeReminderModel{},
	)
}
