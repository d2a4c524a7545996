package service

import (
	"context"
	"fmt"

	"backend/internal/media"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/rs/zerolog/log"
)

// DTOs for Request validation
type CreateCategoryRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

// CategoryService orchestrates category mutations: media upload, document
// write, then a best-effort audit entry
type CategoryService interface {
	Create(ctx context.Context, userID string, req CreateCategoryRequest, image, video *media.File) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	FindOne(ctx context.Context, id string) (*model.Category, error)
	Update(ctx context.Context, userID, id string, req UpdateCategoryRequest, image, video *media.File) (*model.Category, error)
	Remove(ctx context.Context, userID, id string) (*model.Category, error)
	HardDelete(ctx context.Context, userID, id string) (*model.Category, error)
	Count(ctx context.Context) (int64, error)
}

type categoryService struct {
	repo  repository.CategoryRepository
	media media.Store
	logs  LogService
}

// NewCategoryService returns a new instance of CategoryService
func NewCategoryService(repo repository.CategoryRepository, mediaStore media.Store, logs LogService) CategoryService {
	return &categoryService{repo: repo, media: mediaStore, logs: logs}
}

func (s *categoryService) Create(ctx context.Context, userID string, req CreateCategoryRequest, image, video *media.File) (*model.Category, error) {
	if image == nil {
		return nil, ErrImageRequired
	}

	uploadedImage, err := s.media.UploadImage(ctx, *image)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	category := &model.Category{
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      uploadedImage.URL,
		ImagePublicID: uploadedImage.PublicID,
		IsActive:      true,
	}

	if video != nil {
		uploadedVideo, err := s.media.UploadVideo(ctx, *video)
		if err != nil {
			return nil, fmt.Errorf("upload video: %w", err)
		}
		category.VideoURL = uploadedVideo.URL
		category.VideoPublicID = uploadedVideo.PublicID
	}

	if err := s.repo.Create(ctx, category); err != nil {
		// Uploaded assets are not rolled back here; an orphaned remote
		// asset is accepted over a failed-then-retried upload chain.
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityCategory, category.ID.String(), userID, nil, category)
	return category, nil
}

func (s *categoryService) FindAll(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListActive(ctx)
}

func (s *categoryService) FindOne(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, userID, id string, req UpdateCategoryRequest, image, video *media.File) (*model.Category, error) {
	category, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldCategory := *category

	if image != nil {
		if category.ImagePublicID != "" {
			s.deleteAsset(ctx, category.ImagePublicID, media.ResourceImage)
		}
		uploaded, err := s.media.UploadImage(ctx, *image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		category.ImageURL = uploaded.URL
		category.ImagePublicID = uploaded.PublicID
	}

	if video != nil {
		if category.VideoPublicID != "" {
			s.deleteAsset(ctx, category.VideoPublicID, media.ResourceVideo)
		}
		uploaded, err := s.media.UploadVideo(ctx, *video)
		if err != nil {
			return nil, fmt.Errorf("upload video: %w", err)
		}
		category.VideoURL = uploaded.URL
		category.VideoPublicID = uploaded.PublicID
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityCategory, id, userID, oldCategory, category)
	return category, nil
}

// Remove soft-deletes: owned media is released, the lifecycle flag drops,
// the row stays queryable by id
func (s *categoryService) Remove(ctx context.Context, userID, id string) (*model.Category, error) {
	category, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldCategory := *category

	s.releaseMedia(ctx, category)

	category.IsActive = false
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityCategory, id, userID, oldCategory, category)
	return category, nil
}

func (s *categoryService) HardDelete(ctx context.Context, userID, id string) (*model.Category, error) {
	category, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldCategory := *category

	s.releaseMedia(ctx, category)

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityCategory, id, userID, oldCategory, nil)
	return category, nil
}

func (s *categoryService) Count(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

func (s *categoryService) releaseMedia(ctx context.Context, category *model.Category) {
	if category.ImagePublicID != "" {
		s.deleteAsset(ctx, category.ImagePublicID, media.ResourceImage)
	}
	if category.VideoPublicID != "" {
		s.deleteAsset(ctx, category.VideoPublicID, media.ResourceVideo)
	}
}

// deleteAsset is fire-and-forget: an orphaned remote asset is accepted,
// never escalated
func (s *categoryService) deleteAsset(ctx context.Context, publicID, resourceType string) {
	if err := s.media.Delete(ctx, publicID, resourceType); err != nil {
		log.Warn().Err(err).Str("public_id", publicID).Msg("failed to delete media asset, continuing")
	}
}
