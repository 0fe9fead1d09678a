package paysliperrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidRequest = apperror.ErrInvalidInput

	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrYearNotFound = apperror.New(
		apperror.CodeNotFound,
		"Year not found",
		http.StatusNotFound,
	)
	ErrMonthNotFound = apperror.New(
		apperror.CodeNotFound,
		"Month data not found",
		http.StatusNotFound,
	)
)
