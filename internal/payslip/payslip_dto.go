package payslip

type EmployeeInfo struct {
	Name        string `json:"name"`
	EmployeeID  string `json:"employee_id"`
	Designation string `json:"designation"`
	BankName    string `json:"bank_name"`
	Department  string `json:"department"`
	AccountNo   string `json:"account_no"`
	Location    string `json:"location"`
	LOP         string `json:"lop"`
}

type MonthData struct {
	Earnings   Earnings   `json:"earnings"`
	Deductions Deductions `json:"deductions"`
}

// PayslipResponse is the header merged with one month's figures.
type PayslipResponse struct {
	EmployeeInfo
	Earnings   Earnings   `json:"earnings"`
	Deductions Deductions `json:"deductions"`
}

type MultiplePayslipsRequest struct {
	EmployeeID string   `json:"employee_id"`
	Year       string   `json:"year"`
	Months     []string `json:"months"`
}

type MultiplePayslipsResponse struct {
	EmployeeInfo EmployeeInfo           `json:"employeeInfo"`
	Months       map[MonthKey]MonthData `json:"months"`
}
