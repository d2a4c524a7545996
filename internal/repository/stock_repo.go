package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// StockFilter narrows stock listings. Zero values mean "no filter".
type StockFilter struct {
	Type         string
	DepartmentID string
}

// StockRepository defines data access for raw-material stock lines
type StockRepository interface {
	Create(ctx context.Context, stock *model.Stock) error
	GetByID(ctx context.Context, id string) (*model.Stock, error)
	List(ctx context.Context, filter StockFilter) ([]model.Stock, error)
	Save(ctx context.Context, stock *model.Stock) error
	Delete(ctx context.Context, id string) error
}

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository returns a new instance of StockRepository
func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) Create(ctx context.Context, stock *model.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

func (r *stockRepository) GetByID(ctx context.Context, id string) (*model.Stock, error) {
	var stock model.Stock
	if err := r.db.WithContext(ctx).First(&stock, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *stockRepository) List(ctx context.Context, filter StockFilter) ([]model.Stock, error) {
	query := r.db.WithContext(ctx)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.DepartmentID != "" {
		query = query.Where("department_id = ?", filter.DepartmentID)
	}

	var stocks []model.Stock
	if err := query.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

func (r *stockRepository) Save(ctx context.Context, stock *model.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

func (r *stockRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Stock{}).Error
}
