package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// LogRepository defines data access for audit records
type LogRepository interface {
	Create(ctx context.Context, log *model.AuditLog) error
	// List returns one page of records ordered newest-first.
	List(ctx context.Context, offset, limit int) ([]model.AuditLog, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository returns a new instance of LogRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, log *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *logRepository) List(ctx context.Context, offset, limit int) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	if err := r.db.WithContext(ctx).Order("created_at desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *logRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.AuditLog{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *logRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AuditLog{}).Error
}
