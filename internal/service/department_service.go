package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
)

type CreateDepartmentRequest struct {
	Name       string `json:"name" binding:"required"`
	AssignedTo string `json:"assignedTo"`
}

type UpdateDepartmentRequest struct {
	Name       string `json:"name"`
	AssignedTo string `json:"assignedTo"`
}

// DepartmentService manages the production units orders are routed through
type DepartmentService interface {
	Create(ctx context.Context, userID string, req CreateDepartmentRequest) (*model.Department, error)
	FindAll(ctx context.Context) ([]model.Department, error)
	FindOne(ctx context.Context, id string) (*model.Department, error)
	Update(ctx context.Context, userID, id string, req UpdateDepartmentRequest) (*model.Department, error)
	Remove(ctx context.Context, userID, id string) (*model.Department, error)
}

type departmentService struct {
	repo repository.DepartmentRepository
	logs LogService
}

// NewDepartmentService returns a new instance of DepartmentService
func NewDepartmentService(repo repository.DepartmentRepository, logs LogService) DepartmentService {
	return &departmentService{repo: repo, logs: logs}
}

func (s *departmentService) Create(ctx context.Context, userID string, req CreateDepartmentRequest) (*model.Department, error) {
	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("department %q already exists", req.Name)
	}

	department := &model.Department{
		Name:       req.Name,
		CreatedBy:  userID,
		AssignedTo: req.AssignedTo,
	}

	if err := s.repo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityDepartment, department.ID.String(), userID, nil, department)
	return department, nil
}

func (s *departmentService) FindAll(ctx context.Context) ([]model.Department, error) {
	return s.repo.List(ctx)
}

func (s *departmentService) FindOne(ctx context.Context, id string) (*model.Department, error) {
	department, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("department %s: %w", id, ErrNotFound)
	}
	return department, nil
}

func (s *departmentService) Update(ctx context.Context, userID, id string, req UpdateDepartmentRequest) (*model.Department, error) {
	department, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldDepartment := *department

	if req.Name != "" {
		department.Name = req.Name
	}
	if req.AssignedTo != "" {
		department.AssignedTo = req.AssignedTo
	}

	if err := s.repo.Save(ctx, department); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityDepartment, id, userID, oldDepartment, department)
	return department, nil
}

func (s *departmentService) Remove(ctx context.Context, userID, id string) (*model.Department, error) {
	department, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityDepartment, id, userID, department, nil)
	return department, nil
}
