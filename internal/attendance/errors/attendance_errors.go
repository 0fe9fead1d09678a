package attendanceerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrDateRequired = apperror.New(
		apperror.CodeValidation,
		"Date is required to update attendance",
		http.StatusBadRequest,
	)
	ErrInvalidPayload = apperror.New(
		apperror.CodeValidation,
		"Invalid request body",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found for this employee/date",
		http.StatusNotFound,
	)
)
