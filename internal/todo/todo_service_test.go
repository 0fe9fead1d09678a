package todo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hrm/internal/todo"
	todoerrors "go-hrm/internal/todo/errors"
	todoMock "go-hrm/internal/todo/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (todo.Service, *todoMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := todoMock.NewMockRepository(ctrl)
	return todo.NewService(repo), repo
}

func TestComputeProgress(t *testing.T) {
	t.Run("mixed statuses", func(t *testing.T) {
		plans := []todo.DailyPlan{{Tasks: []todo.TaskEntry{
			{Status: "completed"},
			{Status: "yet to start"},
			{Status: "in progress", ETA: "40"},
			{Status: "in progress", ETA: "abc"},
		}}}

		assert.Equal(t, 48, todo.ComputeProgress(plans))
	})

	t.Run("no tasks anywhere", func(t *testing.T) {
		assert.Equal(t, 0, todo.ComputeProgress(nil))
		assert.Equal(t, 0, todo.ComputeProgress([]todo.DailyPlan{{Tasks: []todo.TaskEntry{}}}))
	})

	t.Run("unknown status still counts", func(t *testing.T) {
		plans := []todo.DailyPlan{
			{Tasks: []todo.TaskEntry{{Status: "Completed "}}},
			{Tasks: []todo.TaskEntry{{Status: "blocked"}}},
		}

		assert.Equal(t, 50, todo.ComputeProgress(plans))
	})
}

func TestTaskContribution(t *testing.T) {
	tests := []struct {
		name string
		task todo.TaskEntry
		want int
	}{
		{name: "completed any case", task: todo.TaskEntry{Status: "  COMPLETED"}, want: 100},
		{name: "yet to start", task: todo.TaskEntry{Status: "Yet To Start", ETA: "80"}, want: 0},
		{name: "numeric eta", task: todo.TaskEntry{Status: "in progress", ETA: "40"}, want: 40},
		{name: "eta with leading space", task: todo.TaskEntry{Status: "in progress", ETA: " 40"}, want: 40},
		{name: "eta with suffix", task: todo.TaskEntry{Status: "in progress", ETA: "40%"}, want: 40},
		{name: "fractional eta truncates", task: todo.TaskEntry{Status: "in progress", ETA: "4.9"}, want: 4},
		{name: "unparsable eta", task: todo.TaskEntry{Status: "in progress", ETA: "soon"}, want: 50},
		{name: "empty eta", task: todo.TaskEntry{Status: "in progress"}, want: 50},
		{name: "other status", task: todo.TaskEntry{Status: "on hold", ETA: "90"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, todo.TaskContribution(tt.task))
		})
	}
}

func TestTodoService_OverallProgress(t *testing.T) {
	t.Run("reads all plans", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindAll(gomock.Any()).Return([]todo.DailyPlan{
			{Tasks: []todo.TaskEntry{{Status: "completed"}, {Status: "in progress", ETA: "20"}}},
		}, nil)

		progress, err := svc.OverallProgress(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 60, progress)
	})

	t.Run("store error", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.OverallProgress(context.Background())

		assert.EqualError(t, err, "db down")
	})

	t.Run("concurrent callers all get a result", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindAll(gomock.Any()).Return([]todo.DailyPlan{
			{Tasks: []todo.TaskEntry{{Status: "completed"}}},
		}, nil).MinTimes(1).MaxTimes(8)

		var wg sync.WaitGroup
		results := make([]int, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = svc.OverallProgress(context.Background())
			}(i)
		}
		wg.Wait()

		for _, r := range results {
			assert.Equal(t, 100, r)
		}
	})
}

// blockingRepo holds FindAll until release is closed or its ctx ends.
type blockingRepo struct {
	todo.Repository
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingRepo) FindAll(ctx context.Context) ([]todo.DailyPlan, error) {
	r.once.Do(func() { close(r.started) })
	select {
	case <-r.release:
		return []todo.DailyPlan{{Tasks: []todo.TaskEntry{{Status: "completed"}}}}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestTodoService_OverallProgress_CancelledCallerDoesNotFailOthers(t *testing.T) {
	repo := &blockingRepo{started: make(chan struct{}), release: make(chan struct{})}
	svc := todo.NewService(repo)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.OverallProgress(firstCtx)
		firstErr <- err
	}()
	<-repo.started

	type result struct {
		progress int
		err      error
	}
	second := make(chan result, 1)
	go func() {
		p, err := svc.OverallProgress(context.Background())
		second <- result{p, err}
	}()

	time.Sleep(20 * time.Millisecond)
	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(repo.release)
	select {
	case res := <-second:
		assert.NoError(t, res.err)
		assert.Equal(t, 100, res.progress)
	case <-time.After(2 * time.Second):
		t.Fatal("live caller did not get a result")
	}
}

func TestTodoService_SaveDailyPlan(t *testing.T) {
	ctx := context.Background()
	tasks := []todo.TaskEntry{{Item: "write report", ETA: "30", Status: "in progress"}}

	t.Run("creates new plan", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindByDate(gomock.Any(), "2024-04-01").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *todo.DailyPlan) error {
			assert.Equal(t, "Office", p.WorkStatus)
			assert.Equal(t, tasks, p.Tasks)
			return nil
		})

		msg, err := svc.SaveDailyPlan(ctx, todo.SaveDailyPlanRequest{Date: "2024-04-01", WorkStatus: "Office", Tasks: tasks})

		assert.NoError(t, err)
		assert.Equal(t, todo.MessagePlanSaved, msg)
	})

	t.Run("replaces existing plan", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		existing := &todo.DailyPlan{ID: 3, Date: "2024-04-01", WorkStatus: "Office", Tasks: []todo.TaskEntry{{Item: "old"}, {Item: "older"}}}
		repo.EXPECT().FindByDate(gomock.Any(), "2024-04-01").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

		msg, err := svc.SaveDailyPlan(ctx, todo.SaveDailyPlanRequest{Date: "2024-04-01", WorkStatus: "WFH", Tasks: tasks})

		assert.NoError(t, err)
		assert.Equal(t, todo.MessagePlanUpdated, msg)
		assert.Equal(t, "WFH", existing.WorkStatus)
		assert.Equal(t, tasks, existing.Tasks)
	})

	t.Run("missing work status", func(t *testing.T) {
		svc, _ := setupServiceTest(t)

		_, err := svc.SaveDailyPlan(ctx, todo.SaveDailyPlanRequest{Date: "2024-04-01"})

		assert.ErrorIs(t, err, todoerrors.ErrMissingFields)
	})
}

func TestTodoService_GetDailyPlan(t *testing.T) {
	svc, repo := setupServiceTest(t)
	repo.EXPECT().FindByDate(gomock.Any(), "2024-04-09").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetDailyPlan(context.Background(), "2024-04-09")

	assert.ErrorIs(t, err, todoerrors.ErrPlanNotFound)
}
