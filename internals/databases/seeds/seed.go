package seeds

import (
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Tapiwa2010/zrp-primary-school/internals/constants"
	academicmodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/academics/model"
	accountmodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/accounts/model"
	feemodel "github.com/Tapiwa2010/zrp-primary-school/internals/features/fees/model"
)

// Run installs the baseline records an empty database needs: payment methods,
// the component catalog, a bootstrap admin, and a first academic year with
// its three terms. Every seed is idempotent.
func Run(db *gorm.DB) error {
	if err := seedPaymentMethods(db); err != nil {
		return err
	}
	if err := seedFeeComponents(db); err != nil {
		return err
	}
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedAcademicCalendar(db)
}

func seedPaymentMethods(db *gorm.DB) error {
	needsReference := map[string]bool{
		"ecocash": true, "bank_transfer": true, "zipit": true,
		"cheque": true, "paynow": true, "innbucks": true,
	}
	for _, name := range feemodel.KnownPaymentMethods {
		m := feemodel.PaymentMethodModel{
			PaymentMethodName:              name,
			PaymentMethodIsActive:          true,
			PaymentMethodRequiresReference: needsReference[name],
		}
		if err := db.Where("payment_method_name = ?", name).
			FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedFeeComponents(db *gorm.DB) error {
	components := []feemodel.FeeComponentModel{
		{FeeComponentName: "tuition", FeeComponentDescription: "Core tuition", FeeComponentIsMandatory: true, FeeComponentIsActive: true},
		{FeeComponentName: "exam", FeeComponentDescription: "Examination fees", FeeComponentIsMandatory: true, FeeComponentIsActive: true},
		{FeeComponentName: "development_levy", FeeComponentDescription: "School development levy", FeeComponentIsMandatory: true, FeeComponentIsActive: true},
		{FeeComponentName: "building_fund", FeeComponentDescription: "Building fund contribution", FeeComponentIsMandatory: false, FeeComponentIsActive: true},
		{FeeComponentName: "sports_levy", FeeComponentDescription: "Sports levy", FeeComponentIsMandatory: false, FeeComponentIsActive: true},
		{FeeComponentName: "library", FeeComponentDescription: "Library fee", FeeComponentIsMandatory: false, FeeComponentIsActive: true},
		{FeeComponentName: "laboratory", FeeComponentDescription: "Laboratory fee", FeeComponentIsMandatory: false, FeeComponentIsActive: true},
		{FeeComponentName: "computer_lab", FeeComponentDescription: "Computer lab fee", FeeComponentIsMandatory: false, FeeComponentIsActive: true},
		{FeeComponentName: "transport", FeeComponentDescription: "School transport", FeeComponentIsMandatory: false, FeeComponentIsActive: true},
		{FeeComponentName: "boarding", FeeComponentDescription: "Boarding fees", FeeComponentIsMandatory: false, FeeComponentIsActive: true},
		{FeeComponentName: "extra_classes", FeeComponentDescription: "Extra classes", FeeComponentIsMandatory: false, FeeComponentIsActive: true},
		{FeeComponentName: "activity", FeeComponentDescription: "Activity fee", FeeComponentIsMandatory: false, FeeComponentIsActive: true},
	}
	for i := range components {
		if err := db.Where("fee_component_name = ?", components[i].FeeComponentName).
			FirstOrCreate(&components[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[WARN] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&accountmodel.UserModel{}).
		Where("user_email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := accountmodel.UserModel{
		UserFirstName: "School",
		UserLastName:  "Administrator",
		UserEmail:     email,
		UserPassword:  string(hash),
		UserRole:      constants.RoleAdmin,
		UserIsActive:  true,
	}
	return db.Create(&admin).Error
}

func seedAcademicCalendar(db *gorm.DB) error {
	var count int64
	if err := db.Model(&academicmodel.AcademicYearModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	year := time.Now().Year()
	ay := academicmodel.AcademicYearModel{
		AcademicYearName:      strconv.Itoa(year),
		AcademicYearStartDate: time.Date(year, time.January, 12, 0, 0, 0, 0, time.UTC),
		AcademicYearEndDate:   time.Date(year, time.December, 3, 0, 0, 0, 0, time.UTC),
		AcademicYearIsCurrent: true,
	}
	if err := db.Create(&ay).Error; err != nil {
		return err
	}

	terms := []academicmodel.TermModel{
		{
			TermName:           academicmodel.TermOne,
			TermAcademicYearID: ay.AcademicYearID,
			TermStartDate:      time.Date(year, time.January, 12, 0, 0, 0, 0, time.UTC),
			TermEndDate:        time.Date(year, time.April, 9, 0, 0, 0, 0, time.UTC),
			TermIsCurrent:      true,
		},
		{
			TermName:           academicmodel.TermTwo,
			TermAcademicYearID: ay.AcademicYearID,
			TermStartDate:      time.Date(year, time.May, 5, 0, 0, 0, 0, time.UTC),
			TermEndDate:        time.Date(year, time.August, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			TermName:           academicmodel.TermThree,
			TermAcademicYearID: ay.AcademicYearID,
			TermStartDate:      time.Date(year, time.September, 8, 0, 0, 0, 0, time.UTC),
			TermEndDate:        time.Date(year, time.December, 3, 0, 0, 0, 0, time.UTC),
		},
	}
	return db.Create(&terms).Error
}
