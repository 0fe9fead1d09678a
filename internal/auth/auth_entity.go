package auth

// EmployeeCredential is the legacy login record: an employee proves who they
// are by repeating their id, name and position exactly.
type EmployeeCredential struct {
	ID           uint   `gorm:"primaryKey"`
	EmployeeID   string `gorm:"column:employee_id;type:varchar(64);not null;index"`
	EmployeeName string `gorm:"column:employee_name;type:varchar(150);not null"`
	Position     string `gorm:"column:position;type:varchar(100);not null"`
}

func (EmployeeCredential) TableName() string {
	return "employee_credentials"
}
