package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
)

type CreateOrderRequest struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	Status            string `json:"status"`
	Reason            string `json:"reason"`
	CurrentDepartment string `json:"currentDepartment"`
	AssignedTo        string `json:"assignedTo"`
	NextDepartment    string `json:"nextDepartment"`
	Machine           string `json:"machine"`
}

type UpdateOrderRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Reason         string `json:"reason"`
	AssignedTo     string `json:"assignedTo"`
	NextDepartment string `json:"nextDepartment"`
	Machine        string `json:"machine"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type AssignOrderRequest struct {
	DepartmentID string `json:"departmentId" binding:"required"`
	AssignedTo   string `json:"assignedTo"`
}

// OrderService manages the internal production workflow. Status updates
// overwrite freely: any status can follow any other, which lets operators
// push an order back to an earlier department when work is rejected.
type OrderService interface {
	Create(ctx context.Context, userID string, req CreateOrderRequest) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByDepartment(ctx context.Context, departmentID string) ([]model.Order, error)
	FindOne(ctx context.Context, id string) (*model.Order, error)
	Update(ctx context.Context, userID, id string, req UpdateOrderRequest) (*model.Order, error)
	UpdateStatus(ctx context.Context, userID, id string, req UpdateOrderStatusRequest) (*model.Order, error)
	AssignToDepartment(ctx context.Context, userID, id string, req AssignOrderRequest) (*model.Order, error)
	Remove(ctx context.Context, userID, id string) (*model.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
	hub  *websocket.Hub
	logs LogService
}

// NewOrderService returns a new instance of OrderService
func NewOrderService(repo repository.OrderRepository, hub *websocket.Hub, logs LogService) OrderService {
	return &orderService{repo: repo, hub: hub, logs: logs}
}

func (s *orderService) Create(ctx context.Context, userID string, req CreateOrderRequest) (*model.Order, error) {
	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := &model.Order{
		Title:             req.Title,
		Description:       req.Description,
		Status:            status,
		Reason:            req.Reason,
		CurrentDepartment: req.CurrentDepartment,
		AssignedTo:        req.AssignedTo,
		CreatedBy:         userID,
		NextDepartment:    req.NextDepartment,
		Machine:           req.Machine,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.notify(websocket.EventOrderCreated, order)
	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityOrder, order.ID.String(), userID, nil, order)
	return order, nil
}

func (s *orderService) FindAll(ctx context.Context) ([]model.Order, error) {
	return s.repo.List(ctx)
}

func (s *orderService) FindByDepartment(ctx context.Context, departmentID string) ([]model.Order, error) {
	return s.repo.ListByDepartment(ctx, departmentID)
}

func (s *orderService) FindOne(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return order, nil
}

func (s *orderService) Update(ctx context.Context, userID, id string, req UpdateOrderRequest) (*model.Order, error) {
	order, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldOrder := *order

	if req.Title != "" {
		order.Title = req.Title
	}
	if req.Description != "" {
		order.Description = req.Description
	}
	if req.Reason != "" {
		order.Reason = req.Reason
	}
	if req.AssignedTo != "" {
		order.AssignedTo = req.AssignedTo
	}
	if req.NextDepartment != "" {
		order.NextDepartment = req.NextDepartment
	}
	if req.Machine != "" {
		order.Machine = req.Machine
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityOrder, id, userID, oldOrder, order)
	return order, nil
}

// UpdateStatus overwrites the workflow status with whatever the caller
// sent. There is deliberately no transition check here.
func (s *orderService) UpdateStatus(ctx context.Context, userID, id string, req UpdateOrderStatusRequest) (*model.Order, error) {
	order, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldOrder := *order

	order.Status = req.Status
	if req.Reason != "" {
		order.Reason = req.Reason
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.notify(websocket.EventOrderStatus, order)
	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityOrder, id, userID, oldOrder, order)
	return order, nil
}

func (s *orderService) AssignToDepartment(ctx context.Context, userID, id string, req AssignOrderRequest) (*model.Order, error) {
	order, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldOrder := *order

	order.CurrentDepartment = req.DepartmentID
	order.NextDepartment = ""
	if req.AssignedTo != "" {
		order.AssignedTo = req.AssignedTo
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.notify(websocket.EventOrderAssigned, order)
	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityOrder, id, userID, oldOrder, order)
	return order, nil
}

func (s *orderService) Remove(ctx context.Context, userID, id string) (*model.Order, error) {
	order, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityOrder, id, userID, order, nil)
	return order, nil
}

func (s *orderService) notify(event string, order *model.Order) {
	if s.hub == nil {
		return
	}
	go s.hub.NotifyOrder(event, order)
}
