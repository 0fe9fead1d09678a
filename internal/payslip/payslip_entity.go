package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip holds the employee header and every year of payslip data for one
// employee. Rows are loaded out-of-band; the API only reads them.
type Payslip struct {
	ID          uint          `gorm:"primaryKey"`
	EmployeeID  string        `gorm:"column:employee_id;type:varchar(64);not null;uniqueIndex"`
	Name        string        `gorm:"column:name;type:varchar(150)"`
	Designation string        `gorm:"column:designation;type:varchar(100)"`
	BankName    string        `gorm:"column:bank_name;type:varchar(100)"`
	Department  string        `gorm:"column:department;type:varchar(100)"`
	AccountNo   string        `gorm:"column:account_no;type:varchar(50)"`
	Location    string        `gorm:"column:location;type:varchar(100)"`
	LOP         string        `gorm:"column:lop;type:varchar(20);not null;default:'0.0'"`
	Years       []PayslipYear `gorm:"foreignKey:PayslipID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Payslip) TableName() string {
	return "payslips"
}

type PayslipYear struct {
	ID        uint           `gorm:"primaryKey"`
	PayslipID uint           `gorm:"not null;uniqueIndex:idx_payslip_years_payslip_year"`
	Year      string         `gorm:"type:varchar(4);not null;uniqueIndex:idx_payslip_years_payslip_year"`
	Months    []PayslipMonth `gorm:"foreignKey:YearID;constraint:OnDelete:CASCADE"`
}

func (PayslipYear) TableName() string {
	return "payslip_years"
}

type PayslipMonth struct {
	ID         uint       `gorm:"primaryKey"`
	YearID     uint       `gorm:"not null;uniqueIndex:idx_payslip_months_year_month"`
	Month      MonthKey   `gorm:"type:varchar(3);not null;uniqueIndex:idx_payslip_months_year_month"`
	Earnings   Earnings   `gorm:"embedded"`
	Deductions Deductions `gorm:"embedded"`
}

func (PayslipMonth) TableName() string {
	return "payslip_months"
}

type Earnings struct {
	BasicSalary         decimal.Decimal `gorm:"column:basic_salary;type:numeric(14,2);not null;default:0" json:"basic_salary"`
	HouseRentAllowance  decimal.Decimal `gorm:"column:house_rent_allowance;type:numeric(14,2);not null;default:0" json:"house_rent_allowance"`
	ConveyanceAllowance decimal.Decimal `gorm:"column:conveyance_allowance;type:numeric(14,2);not null;default:0" json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `gorm:"column:medical_allowance;type:numeric(14,2);not null;default:0" json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `gorm:"column:special_allowance;type:numeric(14,2);not null;default:0" json:"special_allowance"`
	GrossSalary         decimal.Decimal `gorm:"column:gross_salary;type:numeric(14,2);not null;default:0" json:"gross_salary"`
}

type Deductions struct {
	EPF             decimal.Decimal `gorm:"column:epf;type:numeric(14,2);not null;default:0" json:"epf"`
	HealthInsurance decimal.Decimal `gorm:"column:health_insurance;type:numeric(14,2);not null;default:0" json:"health_insurance"`
	ProfessionalTax decimal.Decimal `gorm:"column:professional_tax;type:numeric(14,2);not null;default:0" json:"professional_tax"`
	TotalDeductions decimal.Decimal `gorm:"column:total_deductions;type:numeric(14,2);not null;default:0" json:"total_deductions"`
	NetPay          decimal.Decimal `gorm:"column:net_pay;type:numeric(14,2);not null;default:0" json:"net_pay"`
}

func (p *Payslip) findYear(year string) *PayslipYear {
	for i := range p.Years {
		if p.Years[i].Year == year {
			return &p.Years[i]
		}
	}
	return nil
}

func (y *PayslipYear) findMonth(m MonthKey) *PayslipMonth {
	for i := range y.Months {
		if y.Months[i].Month == m {
			return &y.Months[i]
		}
	}
	return nil
}
