package service

import (
	"context"
	"fmt"

	"backend/internal/media"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/rs/zerolog/log"
)

type CreateLeatherRequest struct {
	Name        string   `form:"name" binding:"required"`
	Description string   `form:"description"`
	InStock     int      `form:"inStock"`
	Ratings     string   `form:"ratings"`
	ReviewCount string   `form:"reviewCount"`
	Category    string   `form:"category" binding:"required"`
	Tags        []string `form:"tags"`
	WeightRange string   `form:"weightRange"`
	Temper      string   `form:"temper"`
	OilContent  string   `form:"oilContent"`
	LeatherType string   `form:"leatherType"`
	Texture     string   `form:"texture"`
	Grading     string   `form:"grading"`
	Finish      string   `form:"finish"`
	Collections string   `form:"collections"`
}

type UpdateLeatherRequest struct {
	Name        string   `form:"name"`
	Description string   `form:"description"`
	InStock     *int     `form:"inStock"`
	Ratings     string   `form:"ratings"`
	ReviewCount string   `form:"reviewCount"`
	Category    string   `form:"category"`
	Tags        []string `form:"tags"`
	WeightRange string   `form:"weightRange"`
	Temper      string   `form:"temper"`
	OilContent  string   `form:"oilContent"`
	LeatherType string   `form:"leatherType"`
	Texture     string   `form:"texture"`
	Grading     string   `form:"grading"`
	Finish      string   `form:"finish"`
	Collections string   `form:"collections"`
}

// LeatherService manages catalog items. Media generalizes the simpler
// entities: the first uploaded image/video becomes the main asset, the
// remainder become variants in upload order.
type LeatherService interface {
	Create(ctx context.Context, userID string, req CreateLeatherRequest, images, videos []media.File) (*model.Leather, error)
	FindAll(ctx context.Context) ([]model.Leather, error)
	FindByCategory(ctx context.Context, category string) ([]model.Leather, error)
	FindOne(ctx context.Context, id string) (*model.Leather, error)
	Update(ctx context.Context, userID, id string, req UpdateLeatherRequest, images, videos []media.File) (*model.Leather, error)
	Remove(ctx context.Context, userID, id string) (*model.Leather, error)
	Count(ctx context.Context) (int64, error)
}

type leatherService struct {
	repo  repository.LeatherRepository
	media media.Store
	logs  LogService
}

// NewLeatherService returns a new instance of LeatherService
func NewLeatherService(repo repository.LeatherRepository, mediaStore media.Store, logs LogService) LeatherService {
	return &leatherService{repo: repo, media: mediaStore, logs: logs}
}

func (s *leatherService) Create(ctx context.Context, userID string, req CreateLeatherRequest, images, videos []media.File) (*model.Leather, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("at least one image is required: %w", ErrImageRequired)
	}

	imageSection, err := s.uploadSection(ctx, images, s.media.UploadImage, s.media.UploadImages)
	if err != nil {
		return nil, err
	}

	videoSection := model.MediaSection{}
	if len(videos) > 0 {
		videoSection, err = s.uploadSection(ctx, videos, s.media.UploadVideo, s.media.UploadVideos)
		if err != nil {
			return nil, err
		}
	}

	ratings := req.Ratings
	if ratings == "" {
		ratings = "0"
	}
	reviewCount := req.ReviewCount
	if reviewCount == "" {
		reviewCount = "0"
	}

	leather := &model.Leather{
		Name:        req.Name,
		Description: req.Description,
		InStock:     req.InStock,
		Ratings:     ratings,
		ReviewCount: reviewCount,
		Category:    req.Category,
		Tags:        req.Tags,
		Media: model.LeatherMedia{
			Images: imageSection,
			Videos: videoSection,
		},
		WeightRange: req.WeightRange,
		Temper:      req.Temper,
		OilContent:  req.OilContent,
		LeatherType: req.LeatherType,
		Texture:     req.Texture,
		Grading:     req.Grading,
		Finish:      req.Finish,
		Collections: req.Collections,
	}

	if err := s.repo.Create(ctx, leather); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityLeather, leather.ID.String(), userID, nil, leather)
	return leather, nil
}

func (s *leatherService) FindAll(ctx context.Context) ([]model.Leather, error) {
	return s.repo.List(ctx)
}

func (s *leatherService) FindByCategory(ctx context.Context, category string) ([]model.Leather, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *leatherService) FindOne(ctx context.Context, id string) (*model.Leather, error) {
	leather, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("leather %s: %w", id, ErrNotFound)
	}
	return leather, nil
}

func (s *leatherService) Update(ctx context.Context, userID, id string, req UpdateLeatherRequest, images, videos []media.File) (*model.Leather, error) {
	leather, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldLeather := *leather

	if len(images) > 0 {
		s.releaseSection(ctx, leather.Media.Images, media.ResourceImage)
		section, err := s.uploadSection(ctx, images, s.media.UploadImage, s.media.UploadImages)
		if err != nil {
			return nil, err
		}
		leather.Media.Images = section
	}

	if len(videos) > 0 {
		s.releaseSection(ctx, leather.Media.Videos, media.ResourceVideo)
		section, err := s.uploadSection(ctx, videos, s.media.UploadVideo, s.media.UploadVideos)
		if err != nil {
			return nil, err
		}
		leather.Media.Videos = section
	}

	applyLeatherUpdate(leather, req)

	if err := s.repo.Save(ctx, leather); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityLeather, id, userID, oldLeather, leather)
	return leather, nil
}

// Remove hard-deletes: leathers carry no lifecycle flag. All referenced
// media is released.
func (s *leatherService) Remove(ctx context.Context, userID, id string) (*model.Leather, error) {
	leather, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldLeather := *leather

	s.releaseSection(ctx, leather.Media.Images, media.ResourceImage)
	s.releaseSection(ctx, leather.Media.Videos, media.ResourceVideo)

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityLeather, id, userID, oldLeather, nil)
	return leather, nil
}

func (s *leatherService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// uploadSection uploads files[0] as the main asset and the rest as the
// ordered variant list
func (s *leatherService) uploadSection(
	ctx context.Context,
	files []media.File,
	uploadOne func(context.Context, media.File) (media.Asset, error),
	uploadMany func(context.Context, []media.File) ([]media.Asset, error),
) (model.MediaSection, error) {
	main, err := uploadOne(ctx, files[0])
	if err != nil {
		return model.MediaSection{}, fmt.Errorf("upload main asset: %w", err)
	}

	section := model.MediaSection{
		Main:     &model.MediaAsset{URL: main.URL, PublicID: main.PublicID},
		Variants: []model.MediaAsset{},
	}

	if len(files) > 1 {
		variants, err := uploadMany(ctx, files[1:])
		if err != nil {
			return model.MediaSection{}, fmt.Errorf("upload variants: %w", err)
		}
		for _, v := range variants {
			section.Variants = append(section.Variants, model.MediaAsset{URL: v.URL, PublicID: v.PublicID})
		}
	}

	return section, nil
}

func (s *leatherService) releaseSection(ctx context.Context, section model.MediaSection, resourceType string) {
	release := func(asset model.MediaAsset) {
		if asset.PublicID == "" {
			return
		}
		if err := s.media.Delete(ctx, asset.PublicID, resourceType); err != nil {
			log.Warn().Err(err).Str("public_id", asset.PublicID).Msg("failed to delete media asset, continuing")
		}
	}

	if section.Main != nil {
		release(*section.Main)
	}
	for _, v := range section.Variants {
		release(v)
	}
}

func applyLeatherUpdate(leather *model.Leather, req UpdateLeatherRequest) {
	if req.Name != "" {
		leather.Name = req.Name
	}
	if req.Description != "" {
		leather.Description = req.Description
	}
	if req.InStock != nil {
		leather.InStock = *req.InStock
	}
	if req.Ratings != "" {
		leather.Ratings = req.Ratings
	}
	if req.ReviewCount != "" {
		leather.ReviewCount = req.ReviewCount
	}
	if req.Category != "" {
		leather.Category = req.Category
	}
	if len(req.Tags) > 0 {
		leather.Tags = req.Tags
	}
	if req.WeightRange != "" {
		leather.WeightRange = req.WeightRange
	}
	if req.Temper != "" {
		leather.Temper = req.Temper
	}
	if req.OilContent != "" {
		leather.OilContent = req.OilContent
	}
	if req.LeatherType != "" {
		leather.LeatherType = req.LeatherType
	}
	if req.Texture != "" {
		leather.Texture = req.Texture
	}
	if req.Grading != "" {
		leather.Grading = req.Grading
	}
	if req.Finish != "" {
		leather.Finish = req.Finish
	}
	if req.Collections != "" {
		leather.Collections = req.Collections
	}
}
