package attendance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewHandler(NewService(&memoryRepo{})), nil)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_MarkCheckUpdateHistory(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/attendance/attendance/check/EMP001/2024-04-01", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"exists":false}`, w.Body.String())

	w = do(r, http.MethodPost, "/attendance/attendance/mark/EMP001",
		`{"date":"2024-04-01","loginTime":"09:10","loginReason":"bus late"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Attendance saved successfully"}`, w.Body.String())

	w = do(r, http.MethodGet, "/attendance/attendance/check/EMP001/2024-04-01", "")
	assert.JSONEq(t, `{"exists":true}`, w.Body.String())

	w = do(r, http.MethodPut, "/attendance/attendance/update/EMP001",
		`{"date":"2024-04-01","logoutTime":"18:00"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var upd UpdateAttendanceResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &upd))
	assert.Equal(t, "Attendance updated successfully", upd.Message)
	assert.Equal(t, "18:00", upd.UpdatedAttendance.LogoutTime)
	assert.Equal(t, "09:10", upd.UpdatedAttendance.LoginTime)

	w = do(r, http.MethodGet, "/attendance/attendance/history/EMP001", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var rows []Attendance
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
}

func TestHandler_UpdateErrors(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPut, "/attendance/attendance/update/EMP001", `{"logoutTime":"18:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Date is required to update attendance")

	w = do(r, http.MethodPut, "/attendance/attendance/update/EMP001", `{"date":"2030-01-01"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Attendance record not found for this employee/date")
}
