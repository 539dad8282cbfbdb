package repository

import (
	"context"
	"errors"

	"employee-management/internal/apperr"
	"employee-management/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername returns nil without error when the account does not exist.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Persistence("find user", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Persistence("find user", err)
	}
	return &u, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&n).Error
	if err != nil {
		return 0, apperr.Persistence("count users", err)
	}
	return n, nil
}

func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	return apperr.Persistence("insert user", r.db.WithContext(ctx).Create(u).Error)
}
