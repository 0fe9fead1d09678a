package leave

import (
	"time"

	"github.com/google/uuid"
)

type Leave struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   string    `gorm:"type:varchar(64);not null;index:idx_leave_requests_employee_status"`
	EmployeeName string    `gorm:"type:varchar(150);not null"`
	LeaveType    string    `gorm:"type:varchar(50);not null"`
	Approver     string    `gorm:"type:varchar(150);not null"`
	FromDate     string    `gorm:"type:varchar(30);not null"`
	ToDate       string    `gorm:"type:varchar(30);not null"`
	Reason       string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Pending';index:idx_leave_requests_employee_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Leave) TableName() string {
	return "leave_requests"
}
