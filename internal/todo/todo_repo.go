package todo

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=todo_repo.go -destination=mock/todo_repo_mock.go -package=mock
type Repository interface {
	FindByDate(ctx context.Context, date string) (*DailyPlan, error)
	Create(ctx context.Context, p *DailyPlan) error
	Update(ctx context.Context, p *DailyPlan) error
	FindAll(ctx context.Context) ([]DailyPlan, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByDate(ctx context.Context, date string) (*DailyPlan, error) {
	var p DailyPlan
	if err := r.db.WithContext(ctx).Where("date = ?", date).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *DailyPlan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *DailyPlan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// FindAll loads every plan with only the columns the progress scan needs.
func (r *repository) FindAll(ctx context.Context) ([]DailyPlan, error) {
	var plans []DailyPlan
	err := r.db.WithContext(ctx).Select("id", "tasks").Find(&plans).Error
	return plans, err
}
