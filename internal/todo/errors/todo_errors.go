package todoerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeValidation,
		"date and workStatus are required",
		http.StatusBadRequest,
	)
	ErrInvalidPayload = apperror.New(
		apperror.CodeValidation,
		"Invalid request body",
		http.StatusBadRequest,
	)
	ErrPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"No tasks found for this date",
		http.StatusNotFound,
	)
)
