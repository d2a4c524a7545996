package service

import (
	"context"
	"fmt"

	"backend/internal/media"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/rs/zerolog/log"
)

type CreateTestimonialRequest struct {
	ClientName string `form:"clientName" binding:"required"`
	Message    string `form:"message" binding:"required"`
	Country    string `form:"country" binding:"required"`
}

type UpdateTestimonialRequest struct {
	ClientName string `form:"clientName"`
	Message    string `form:"message"`
	Country    string `form:"country"`
}

// TestimonialService manages client testimonials with one required image
type TestimonialService interface {
	Create(ctx context.Context, userID string, req CreateTestimonialRequest, image *media.File) (*model.Testimonial, error)
	FindAll(ctx context.Context) ([]model.Testimonial, error)
	FindOne(ctx context.Context, id string) (*model.Testimonial, error)
	Update(ctx context.Context, userID, id string, req UpdateTestimonialRequest, image *media.File) (*model.Testimonial, error)
	Remove(ctx context.Context, userID, id string) (*model.Testimonial, error)
	HardDelete(ctx context.Context, userID, id string) (*model.Testimonial, error)
	Count(ctx context.Context) (int64, error)
}

type testimonialService struct {
	repo  repository.TestimonialRepository
	media media.Store
	logs  LogService
}

// NewTestimonialService returns a new instance of TestimonialService
func NewTestimonialService(repo repository.TestimonialRepository, mediaStore media.Store, logs LogService) TestimonialService {
	return &testimonialService{repo: repo, media: mediaStore, logs: logs}
}

func (s *testimonialService) Create(ctx context.Context, userID string, req CreateTestimonialRequest, image *media.File) (*model.Testimonial, error) {
	if image == nil {
		return nil, ErrImageRequired
	}

	uploaded, err := s.media.UploadImage(ctx, *image)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	testimonial := &model.Testimonial{
		ClientName:    req.ClientName,
		Message:       req.Message,
		Country:       req.Country,
		ImageURL:      uploaded.URL,
		ImagePublicID: uploaded.PublicID,
		IsActive:      true,
	}

	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityTestimonial, testimonial.ID.String(), userID, nil, testimonial)
	return testimonial, nil
}

func (s *testimonialService) FindAll(ctx context.Context) ([]model.Testimonial, error) {
	return s.repo.ListActive(ctx)
}

func (s *testimonialService) FindOne(ctx context.Context, id string) (*model.Testimonial, error) {
	testimonial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("testimonial %s: %w", id, ErrNotFound)
	}
	return testimonial, nil
}

func (s *testimonialService) Update(ctx context.Context, userID, id string, req UpdateTestimonialRequest, image *media.File) (*model.Testimonial, error) {
	testimonial, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldTestimonial := *testimonial

	if image != nil {
		if testimonial.ImagePublicID != "" {
			s.deleteAsset(ctx, testimonial.ImagePublicID)
		}
		uploaded, err := s.media.UploadImage(ctx, *image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		testimonial.ImageURL = uploaded.URL
		testimonial.ImagePublicID = uploaded.PublicID
	}

	if req.ClientName != "" {
		testimonial.ClientName = req.ClientName
	}
	if req.Message != "" {
		testimonial.Message = req.Message
	}
	if req.Country != "" {
		testimonial.Country = req.Country
	}

	if err := s.repo.Save(ctx, testimonial); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityTestimonial, id, userID, oldTestimonial, testimonial)
	return testimonial, nil
}

func (s *testimonialService) Remove(ctx context.Context, userID, id string) (*model.Testimonial, error) {
	testimonial, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldTestimonial := *testimonial

	if testimonial.ImagePublicID != "" {
		s.deleteAsset(ctx, testimonial.ImagePublicID)
	}

	testimonial.IsActive = false
	if err := s.repo.Save(ctx, testimonial); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityTestimonial, id, userID, oldTestimonial, testimonial)
	return testimonial, nil
}

func (s *testimonialService) HardDelete(ctx context.Context, userID, id string) (*model.Testimonial, error) {
	testimonial, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldTestimonial := *testimonial

	if testimonial.ImagePublicID != "" {
		s.deleteAsset(ctx, testimonial.ImagePublicID)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityTestimonial, id, userID, oldTestimonial, nil)
	return testimonial, nil
}

func (s *testimonialService) Count(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

func (s *testimonialService) deleteAsset(ctx context.Context, publicID string) {
	if err := s.media.Delete(ctx, publicID, media.ResourceImage); err != nil {
		log.Warn().Err(err).Str("public_id", publicID).Msg("failed to delete media asset, continuing")
	}
}
