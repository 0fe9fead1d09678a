package profile

type Profile struct {
	ID               string `gorm:"column:id;type:varchar(64);primaryKey"`
	FullName         string `gorm:"column:full_name;type:varchar(150);not null"`
	DOB              string `gorm:"column:dob;type:varchar(30)"`
	FatherName       string `gorm:"column:father_name;type:varchar(150)"`
	FatherOccupation string `gorm:"column:father_occupation;type:varchar(100)"`
	Aadhar           string `gorm:"column:aadhar;type:varchar(20)"`
	Address          string `gorm:"column:address;type:text"`
}

func (Profile) TableName() string {
	return "employee_profiles"
}
