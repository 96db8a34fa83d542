package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
	ErrOnlyStaffCanAccess    = "Only admins or teachers may access %s."
	ErrOnlyStudentsCanAccess = "Only students may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleTeacher,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
