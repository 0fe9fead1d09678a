package app

import (
	"go-hrm/internal/attendance"
	"go-hrm/internal/auth"
	"go-hrm/internal/leave"
	"go-hrm/internal/payslip"
	"go-hrm/internal/profile"
	"go-hrm/internal/todo"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&leave.Leave{},
		&attendance.Attendance{},
		&todo.DailyPlan{},
		&payslip.Payslip{},
		&payslip.PayslipYear{},
		&payslip.PayslipMonth{},
		&profile.Profile{},
		&auth.EmployeeCredential{},
	)
}
