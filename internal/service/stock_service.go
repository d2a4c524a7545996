package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
)

type CreateStockRequest struct {
	Type         string `json:"type" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Quantity     int    `json:"quantity"`
	DepartmentID string `json:"departmentId"`
	Unit         string `json:"unit"`
}

type UpdateStockRequest struct {
	Name         string `json:"name"`
	Quantity     *int   `json:"quantity"`
	DepartmentID string `json:"departmentId"`
	Unit         string `json:"unit"`
}

// StockService manages raw-material stock lines per department
type StockService interface {
	Create(ctx context.Context, userID string, req CreateStockRequest) (*model.Stock, error)
	FindAll(ctx context.Context, filter repository.StockFilter) ([]model.Stock, error)
	FindOne(ctx context.Context, id string) (*model.Stock, error)
	Update(ctx context.Context, userID, id string, req UpdateStockRequest) (*model.Stock, error)
	UpdateQuantity(ctx context.Context, userID, id string, quantity int) (*model.Stock, error)
	Remove(ctx context.Context, userID, id string) (*model.Stock, error)
}

type stockService struct {
	repo repository.StockRepository
	logs LogService
}

// NewStockService returns a new instance of StockService
func NewStockService(repo repository.StockRepository, logs LogService) StockService {
	return &stockService{repo: repo, logs: logs}
}

func (s *stockService) Create(ctx context.Context, userID string, req CreateStockRequest) (*model.Stock, error) {
	if req.Type != model.StockTypeChemical && req.Type != model.StockTypeLeather {
		return nil, fmt.Errorf("unknown stock type %q", req.Type)
	}

	stock := &model.Stock{
		Type:         req.Type,
		Name:         req.Name,
		Quantity:     req.Quantity,
		DepartmentID: req.DepartmentID,
		AddedBy:      userID,
		Unit:         req.Unit,
	}

	if err := s.repo.Create(ctx, stock); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityStock, stock.ID.String(), userID, nil, stock)
	return stock, nil
}

func (s *stockService) FindAll(ctx context.Context, filter repository.StockFilter) ([]model.Stock, error) {
	return s.repo.List(ctx, filter)
}

func (s *stockService) FindOne(ctx context.Context, id string) (*model.Stock, error) {
	stock, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("stock %s: %w", id, ErrNotFound)
	}
	return stock, nil
}

func (s *stockService) Update(ctx context.Context, userID, id string, req UpdateStockRequest) (*model.Stock, error) {
	stock, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStock := *stock

	if req.Name != "" {
		stock.Name = req.Name
	}
	if req.Quantity != nil {
		stock.Quantity = *req.Quantity
	}
	if req.DepartmentID != "" {
		stock.DepartmentID = req.DepartmentID
	}
	if req.Unit != "" {
		stock.Unit = req.Unit
	}

	if err := s.repo.Save(ctx, stock); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityStock, id, userID, oldStock, stock)
	return stock, nil
}

// UpdateQuantity replaces the quantity only, leaving other fields alone.
// Negative quantities are rejected, zero is a valid restock target.
func (s *stockService) UpdateQuantity(ctx context.Context, userID, id string, quantity int) (*model.Stock, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}

	stock, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStock := *stock

	stock.Quantity = quantity
	if err := s.repo.Save(ctx, stock); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityStock, id, userID, oldStock, stock)
	return stock, nil
}

func (s *stockService) Remove(ctx context.Context, userID, id string) (*model.Stock, error) {
	stock, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityStock, id, userID, stock, nil)
	return stock, nil
}
