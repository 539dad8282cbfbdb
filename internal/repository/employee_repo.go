package repository

import (
	"context"

	"employee-management/internal/apperr"
	"employee-management/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Count(&n).Error
	if err != nil {
		return 0, apperr.Persistence("count employees", err)
	}
	return n, nil
}

func (r *EmployeeRepository) Insert(ctx context.Context, e *models.Employee) (int, error) {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return 0, apperr.Persistence("insert employee", err)
	}
	return e.ID, nil
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.WithContext(ctx).Order("id asc").Find(&employees).Error; err != nil {
		return nil, apperr.Persistence("list employees", err)
	}
	return employees, nil
}
