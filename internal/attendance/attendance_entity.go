package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is one check-in/out entry. Several rows may exist for the same
// employee and date; readers take the first match.
type Attendance struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	EmployeeID   string    `gorm:"column:employee_id;type:varchar(64);not null;index:idx_attendances_employee_date" json:"employeeId"`
	Date         string    `gorm:"column:date;type:varchar(30);not null;index:idx_attendances_employee_date" json:"date"`
	LoginTime    string    `gorm:"column:login_time;type:varchar(30)" json:"loginTime"`
	LogoutTime   string    `gorm:"column:logout_time;type:varchar(30)" json:"logoutTime"`
	BreakTime    string    `gorm:"column:break_time;type:varchar(30)" json:"breakTime"`
	LoginReason  string    `gorm:"column:login_reason;type:text" json:"loginReason"`
	LogoutReason string    `gorm:"column:logout_reason;type:text" json:"logoutReason"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Attendance) TableName() string {
	return "attendances"
}
