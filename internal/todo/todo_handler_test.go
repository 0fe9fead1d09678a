package todo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/todo"
	todoerrors "go-hrm/internal/todo/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeTodoService struct {
	saveFn     func(ctx context.Context, req todo.SaveDailyPlanRequest) (string, error)
	getFn      func(ctx context.Context, date string) (*todo.DailyPlan, error)
	progressFn func(ctx context.Context) (int, error)
}

func (f *fakeTodoService) SaveDailyPlan(ctx context.Context, req todo.SaveDailyPlanRequest) (string, error) {
	return f.saveFn(ctx, req)
}
func (f *fakeTodoService) GetDailyPlan(ctx context.Context, date string) (*todo.DailyPlan, error) {
	return f.getFn(ctx, date)
}
func (f *fakeTodoService) OverallProgress(ctx context.Context) (int, error) {
	return f.progressFn(ctx)
}

func newTodoRouter(svc todo.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	todo.RegisterRoutes(r, todo.NewHandler(svc))
	return r
}

func TestTodoHandler_ProgressRoutedBeforeDate(t *testing.T) {
	dateCalled := false
	r := newTodoRouter(&fakeTodoService{
		progressFn: func(context.Context) (int, error) { return 48, nil },
		getFn: func(context.Context, string) (*todo.DailyPlan, error) {
			dateCalled = true
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/todo_planner/todo/progress", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"progress":48}`, w.Body.String())
	assert.False(t, dateCalled)
}

func TestTodoHandler_GetByDate(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r := newTodoRouter(&fakeTodoService{
			getFn: func(_ context.Context, date string) (*todo.DailyPlan, error) {
				return &todo.DailyPlan{ID: 1, Date: date, WorkStatus: "Office", Tasks: []todo.TaskEntry{{Item: "a", ETA: "1", Status: "completed"}}}, nil
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/todo_planner/todo/2024-04-01", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"id":1,"date":"2024-04-01","workStatus":"Office","tasks":[{"item":"a","eta":"1","status":"completed"}]}`,
			w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		r := newTodoRouter(&fakeTodoService{
			getFn: func(context.Context, string) (*todo.DailyPlan, error) { return nil, todoerrors.ErrPlanNotFound },
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/todo_planner/todo/2024-04-02", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No tasks found for this date")
	})
}

func TestTodoHandler_Save(t *testing.T) {
	var got todo.SaveDailyPlanRequest
	r := newTodoRouter(&fakeTodoService{
		saveFn: func(_ context.Context, req todo.SaveDailyPlanRequest) (string, error) {
			got = req
			return todo.MessagePlanUpdated, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/todo_planner/todo/save",
		strings.NewReader(`{"date":"2024-04-01","workStatus":"WFH","tasks":[{"item":"x","eta":"20","status":"in progress"}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Task Updated"}`, w.Body.String())
	assert.Equal(t, "WFH", got.WorkStatus)
	assert.Len(t, got.Tasks, 1)
}

func TestTodoHandler_Save_NumericETA(t *testing.T) {
	var got todo.SaveDailyPlanRequest
	r := newTodoRouter(&fakeTodoService{
		saveFn: func(_ context.Context, req todo.SaveDailyPlanRequest) (string, error) {
			got = req
			return todo.MessagePlanSaved, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/todo_planner/todo/save",
		strings.NewReader(`{"date":"2024-04-01","workStatus":"Office","tasks":[`+
			`{"item":"a","eta":40,"status":"in progress"},`+
			`{"item":"b","eta":"40%","status":"in progress"},`+
			`{"item":"c","eta":null,"status":"yet to start"},`+
			`{"item":"d","status":"completed"}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []todo.TaskEntry{
		{Item: "a", ETA: "40", Status: "in progress"},
		{Item: "b", ETA: "40%", Status: "in progress"},
		{Item: "c", ETA: "", Status: "yet to start"},
		{Item: "d", ETA: "", Status: "completed"},
	}, got.Tasks)
}

func TestTodoHandler_Save_RejectsNonScalarETA(t *testing.T) {
	r := newTodoRouter(&fakeTodoService{})

	req := httptest.NewRequest(http.MethodPost, "/todo_planner/todo/save",
		strings.NewReader(`{"date":"2024-04-01","workStatus":"Office","tasks":[{"item":"a","eta":true}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
