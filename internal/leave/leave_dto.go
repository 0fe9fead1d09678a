package leave

type ApplyLeaveRequest struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	LeaveType    string `json:"leaveType"`
	Approver     string `json:"approver"`
	FromDate     string `json:"fromDate"`
	ToDate       string `json:"toDate"`
	Reason       string `json:"reason"`
}

type UpdateLeaveRequest struct {
	LeaveType string `json:"leaveType"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	Reason    string `json:"reason"`
}

type LeaveResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	LeaveType    string `json:"leaveType"`
	Approver     string `json:"approver"`
	FromDate     string `json:"fromDate"`
	ToDate       string `json:"toDate"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type LeaveStatsResponse struct {
	TotalLeavesUsed   int64 `json:"totalLeavesUsed"`
	LeavePercentage   int   `json:"leavePercentage"`
	PresentPercentage int   `json:"presentPercentage"`
}
