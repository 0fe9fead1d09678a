package auth

type LegacyLoginRequest struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Position     string `json:"position"`
}

type EmployeeNameResponse struct {
	EmployeeName string `json:"employeeName"`
	Position     string `json:"position"`
}
