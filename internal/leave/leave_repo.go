package leave

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *Leave) error
	FindAllByEmployee(ctx context.Context, employeeID, status string) ([]Leave, error)
	FindByIDAndEmployee(ctx context.Context, employeeID, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	CountAll(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// FindAllByEmployee returns rows in store order; status filters only when
// non-empty.
func (r *repository) FindAllByEmployee(ctx context.Context, employeeID, status string) ([]Leave, error) {
	q := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var leaves []Leave
	err := q.Find(&leaves).Error
	return leaves, err
}

// FindByIDAndEmployee treats a malformed id like an unknown one.
func (r *repository) FindByIDAndEmployee(ctx context.Context, employeeID, id string) (*Leave, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	var l Leave
	err = r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&l, "id = ?", leaveID).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Leave{}).Count(&count).Error
	return count, err
}
