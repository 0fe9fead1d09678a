package profileerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee profile with this id already exists",
		http.StatusConflict,
	)
)
