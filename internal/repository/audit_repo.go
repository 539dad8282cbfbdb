package repository

import (
	"context"

	"employee-management/internal/apperr"
	"employee-management/internal/models"

	"gorm.io/gorm"
)

// AuditRepository stores the journal of project changes made over HTTP.
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	return apperr.Persistence("insert audit log", r.db.WithContext(ctx).Create(entry).Error)
}

// List returns the newest entries first.
func (r *AuditRepository) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, apperr.Persistence("list audit logs", err)
	}
	return logs, nil
}

// ListForEntity returns the history of one record, oldest first.
func (r *AuditRepository) ListForEntity(ctx context.Context, entity string, id int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.WithContext(ctx).
		Where("entity = ? AND entity_id = ?", entity, id).
		Order("created_at asc").
		Order("id asc").
		Find(&logs).Error
	if err != nil {
		return nil, apperr.Persistence("list audit logs", err)
	}
	return logs, nil
}
