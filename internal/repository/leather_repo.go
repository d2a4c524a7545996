package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// LeatherRepository defines data access for catalog items. Leathers carry
// no lifecycle flag: List and Count see every record.
type LeatherRepository interface {
	Create(ctx context.Context, leather *model.Leather) error
	GetByID(ctx context.Context, id string) (*model.Leather, error)
	List(ctx context.Context) ([]model.Leather, error)
	ListByCategory(ctx context.Context, category string) ([]model.Leather, error)
	Save(ctx context.Context, leather *model.Leather) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type leatherRepository struct {
	db *gorm.DB
}

// NewLeatherRepository returns a new instance of LeatherRepository
func NewLeatherRepository(db *gorm.DB) LeatherRepository {
	return &leatherRepository{db: db}
}

func (r *leatherRepository) Create(ctx context.Context, leather *model.Leather) error {
	return r.db.WithContext(ctx).Create(leather).Error
}

func (r *leatherRepository) GetByID(ctx context.Context, id string) (*model.Leather, error) {
	var leather model.Leather
	if err := r.db.WithContext(ctx).First(&leather, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &leather, nil
}

func (r *leatherRepository) List(ctx context.Context) ([]model.Leather, error) {
	var leathers []model.Leather
	if err := r.db.WithContext(ctx).Find(&leathers).Error; err != nil {
		return nil, err
	}
	return leathers, nil
}

func (r *leatherRepository) ListByCategory(ctx context.Context, category string) ([]model.Leather, error) {
	var leathers []model.Leather
	if err := r.db.WithContext(ctx).Where("category = ?", category).Find(&leathers).Error; err != nil {
		return nil, err
	}
	return leathers, nil
}

func (r *leatherRepository) Save(ctx context.Context, leather *model.Leather) error {
	return r.db.WithContext(ctx).Save(leather).Error
}

func (r *leatherRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Leather{}).Error
}

func (r *leatherRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Leather{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
