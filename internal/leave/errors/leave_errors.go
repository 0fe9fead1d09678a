package leaveerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeValidation,
		"All fields are required.",
		http.StatusBadRequest,
	)
	ErrMissingUpdateFields = apperror.New(
		apperror.CodeValidation,
		"leaveType, fromDate, toDate and reason are required",
		http.StatusBadRequest,
	)
	ErrInvalidPayload = apperror.New(
		apperror.CodeValidation,
		"Invalid request body",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave not found for this employee",
		http.StatusNotFound,
	)
)
