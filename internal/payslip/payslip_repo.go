package payslip

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*Payslip, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByEmployeeID loads the header together with all years and months.
func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Years.Months").
		Where("employee_id = ?", employeeID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
