package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
)

type CreateContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Lastname string `json:"lastname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Message  string `json:"message" binding:"required"`
}

// ContactService handles inbound contact-form submissions. Create is the
// one public write in the whole API; everything else is admin-gated.
type ContactService interface {
	Create(ctx context.Context, req CreateContactRequest) (*model.ContactMessage, error)
	FindAll(ctx context.Context) ([]model.ContactMessage, error)
	FindOne(ctx context.Context, id string) (*model.ContactMessage, error)
	Remove(ctx context.Context, userID, id string) (*model.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}

type contactService struct {
	repo repository.ContactRepository
	logs LogService
}

// NewContactService returns a new instance of ContactService
func NewContactService(repo repository.ContactRepository, logs LogService) ContactService {
	return &contactService{repo: repo, logs: logs}
}

func (s *contactService) Create(ctx context.Context, req CreateContactRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:     req.Name,
		Lastname: req.Lastname,
		Email:    req.Email,
		Message:  req.Message,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Anonymous submission: no acting user to attribute.
	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityContact, msg.ID.String(), "", nil, msg)
	return msg, nil
}

func (s *contactService) FindAll(ctx context.Context) ([]model.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *contactService) FindOne(ctx context.Context, id string) (*model.ContactMessage, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("contact message %s: %w", id, ErrNotFound)
	}
	return msg, nil
}

func (s *contactService) Remove(ctx context.Context, userID, id string) (*model.ContactMessage, error) {
	msg, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityContact, id, userID, msg, nil)
	return msg, nil
}

func (s *contactService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
