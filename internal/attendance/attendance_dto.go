package attendance

type MarkAttendanceRequest struct {
	Date         string `json:"date"`
	LoginTime    string `json:"loginTime"`
	LogoutTime   string `json:"logoutTime"`
	BreakTime    string `json:"breakTime"`
	LoginReason  string `json:"loginReason"`
	LogoutReason string `json:"logoutReason"`
}

// UpdateAttendanceRequest leaves a field untouched when it is absent from
// the body.
type UpdateAttendanceRequest struct {
	Date         string  `json:"date"`
	LoginTime    *string `json:"loginTime"`
	LogoutTime   *string `json:"logoutTime"`
	BreakTime    *string `json:"breakTime"`
	LoginReason  *string `json:"loginReason"`
	LogoutReason *string `json:"logoutReason"`
}

type UpdateAttendanceResponse struct {
	Message           string     `json:"message"`
	UpdatedAttendance Attendance `json:"updatedAttendance"`
}

type CheckAttendanceResponse struct {
	Exists bool `json:"exists"`
}
