package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	attendanceerrors "go-hrm/internal/attendance/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// memoryRepo keeps rows in insertion order so the service can be exercised
// end to end without a database.
type memoryRepo struct {
	rows      []*Attendance
	createErr error
}

func (m *memoryRepo) Create(_ context.Context, a *Attendance) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.CreatedAt = time.Unix(int64(len(m.rows)), 0)
	m.rows = append(m.rows, a)
	return nil
}

func (m *memoryRepo) FindByEmployeeAndDate(_ context.Context, employeeID, date string) (*Attendance, error) {
	for _, r := range m.rows {
		if r.EmployeeID == employeeID && r.Date == date {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) FindRecentByEmployee(_ context.Context, employeeID string, limit int) ([]Attendance, error) {
	var out []Attendance
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if m.rows[i].EmployeeID == employeeID {
			out = append(out, *m.rows[i])
		}
	}
	return out, nil
}

func (m *memoryRepo) ExistsByEmployeeAndDate(ctx context.Context, employeeID, date string) (bool, error) {
	_, err := m.FindByEmployeeAndDate(ctx, employeeID, date)
	return err == nil, nil
}

func (m *memoryRepo) Update(_ context.Context, a *Attendance) error {
	for i, r := range m.rows {
		if r.ID == a.ID {
			cp := *a
			m.rows[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func strPtr(s string) *string { return &s }

func TestService_MarkThenCheckExists(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryRepo{})

	exists, err := svc.CheckExists(ctx, "EMP001", "2024-04-01")
	assert.NoError(t, err)
	assert.False(t, exists)

	err = svc.Mark(ctx, "EMP001", MarkAttendanceRequest{Date: "2024-04-01", LoginTime: "09:05"})
	assert.NoError(t, err)

	exists, err = svc.CheckExists(ctx, "EMP001", "2024-04-01")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.CheckExists(ctx, "EMP002", "2024-04-01")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestService_Mark_AlwaysInserts(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)

	assert.NoError(t, svc.Mark(context.Background(), "EMP001", MarkAttendanceRequest{Date: "2024-04-01"}))
	assert.NoError(t, svc.Mark(context.Background(), "EMP001", MarkAttendanceRequest{Date: "2024-04-01"}))

	assert.Len(t, repo.rows, 2)
}

func TestService_Mark_RepoError(t *testing.T) {
	svc := NewService(&memoryRepo{createErr: errors.New("insert failed")})

	err := svc.Mark(context.Background(), "EMP001", MarkAttendanceRequest{Date: "2024-04-01"})

	assert.EqualError(t, err, "insert failed")
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites provided fields only", func(t *testing.T) {
		svc := NewService(&memoryRepo{})
		_ = svc.Mark(ctx, "EMP001", MarkAttendanceRequest{Date: "2024-04-01", LoginTime: "09:00", LoginReason: "traffic"})

		row, err := svc.Update(ctx, "EMP001", UpdateAttendanceRequest{
			Date:       "2024-04-01",
			LogoutTime: strPtr("18:30"),
			BreakTime:  strPtr("45m"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "09:00", row.LoginTime)
		assert.Equal(t, "traffic", row.LoginReason)
		assert.Equal(t, "18:30", row.LogoutTime)
		assert.Equal(t, "45m", row.BreakTime)
	})

	t.Run("date is required", func(t *testing.T) {
		svc := NewService(&memoryRepo{})

		_, err := svc.Update(ctx, "EMP001", UpdateAttendanceRequest{LogoutTime: strPtr("18:00")})

		assert.ErrorIs(t, err, attendanceerrors.ErrDateRequired)
	})

	t.Run("unknown record", func(t *testing.T) {
		svc := NewService(&memoryRepo{})

		_, err := svc.Update(ctx, "EMP001", UpdateAttendanceRequest{Date: "2024-04-01"})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}

func TestService_RecentHistory(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryRepo{})

	dates := []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"}
	for _, d := range dates {
		assert.NoError(t, svc.Mark(ctx, "EMP001", MarkAttendanceRequest{Date: d}))
	}
	assert.NoError(t, svc.Mark(ctx, "EMP002", MarkAttendanceRequest{Date: "other"}))

	rows, err := svc.RecentHistory(ctx, "EMP001")

	assert.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, "d7", rows[0].Date)
	assert.Equal(t, "d3", rows[4].Date)

	empty, err := svc.RecentHistory(ctx, "nobody")
	assert.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
