package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// TeamRepository defines data access for staff bios
type TeamRepository interface {
	Create(ctx context.Context, member *model.TeamMember) error
	GetByID(ctx context.Context, id string) (*model.TeamMember, error)
	ListActive(ctx context.Context) ([]model.TeamMember, error)
	Save(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository returns a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) ListActive(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) Save(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TeamMember{}).Error
}

func (r *teamRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.TeamMember{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
