package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-hrm/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeNotFound, "Leave not found", http.StatusNotFound)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
		assert.Equal(t, "Leave not found", got.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		sentinel := apperror.New(apperror.CodeConflict, "dup", http.StatusConflict)
		err := fmt.Errorf("persist: %w", sentinel)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
	})

	t.Run("unknown error becomes generic internal error", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestAppError_WithCause(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.ErrInternal.WithCause(cause)

	assert.True(t, errors.Is(err, apperror.ErrInternal))
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, apperror.ErrInternal.Err)
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	type payload struct {
		EmployeeID string `json:"employeeId" binding:"required"`
	}

	err := binding.Validator.ValidateStruct(&payload{})
	assert.Error(t, err)

	mapped := apperror.MapValidationError(err)

	var appErr *apperror.AppError
	assert.True(t, errors.As(mapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "Employee Id is required", appErr.Message)
}
