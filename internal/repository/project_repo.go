// Package repository is the data access layer. Each method performs a single
// operation against the store and reports failures as apperr.PersistenceError.
package repository

import (
	"context"
	"errors"

	"employee-management/internal/apperr"
	"employee-management/internal/models"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&n).Error
	if err != nil {
		return 0, apperr.Persistence("count projects", err)
	}
	return n, nil
}

func (r *ProjectRepository) Exists(ctx context.Context, id int) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, apperr.Persistence("check project", err)
	}
	return n > 0, nil
}

// Insert stores p and returns the id assigned by the store. Employees are
// linked by id only; their rows must already exist.
func (r *ProjectRepository) Insert(ctx context.Context, p *models.Project) (int, error) {
	if err := r.db.WithContext(ctx).Omit("Employees.*").Create(p).Error; err != nil {
		return 0, apperr.Persistence("insert project", err)
	}
	return p.ID, nil
}

// Get returns nil without error when no project has the id.
func (r *ProjectRepository) Get(ctx context.Context, id int) (*models.Project, error) {
	var p models.Project
	err := r.db.WithContext(ctx).
		Preload("Employees", orderByID).
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Persistence("get project", err)
	}
	return &p, nil
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *ProjectRepository) GetAllByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error) {
	return r.list(r.db.WithContext(ctx).Where("status = ?", status))
}

func (r *ProjectRepository) list(dbq *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	err := dbq.
		Preload("Employees", orderByID).
		Order("id asc").
		Find(&projects).Error
	if err != nil {
		return nil, apperr.Persistence("list projects", err)
	}
	return projects, nil
}

// Update overwrites the mutable fields and the employee set of the project
// with p.ID. It reports false when no such project exists.
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"manager":     p.Manager,
			"status":      p.Status,
		})
	if res.Error != nil {
		return false, apperr.Persistence("update project", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	assoc := r.db.WithContext(ctx).Model(&models.Project{ID: p.ID}).Association("Employees")
	var err error
	if len(p.Employees) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(p.Employees)
	}
	if err != nil {
		return false, apperr.Persistence("update project employees", err)
	}
	return true, nil
}

// Delete removes the project; its employee links go with it through the
// join table's ON DELETE CASCADE.
func (r *ProjectRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return false, apperr.Persistence("delete project", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ProjectRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Project{}).Error
	return apperr.Persistence("delete all projects", err)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}
