package auth

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindExact(ctx context.Context, employeeID, employeeName, position string) (*EmployeeCredential, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeCredential, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindExact(ctx context.Context, employeeID, employeeName, position string) (*EmployeeCredential, error) {
	var cred EmployeeCredential
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND employee_name = ? AND position = ?", employeeID, employeeName, position).
		First(&cred).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeCredential, error) {
	var cred EmployeeCredential
	if err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}
