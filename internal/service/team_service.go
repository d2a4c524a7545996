package service

import (
	"context"
	"fmt"

	"backend/internal/media"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/rs/zerolog/log"
)

type CreateTeamMemberRequest struct {
	Name  string `form:"name" binding:"required"`
	Title string `form:"title"`
	Bio   string `form:"bio"`
}

type UpdateTeamMemberRequest struct {
	Name  string `form:"name"`
	Title string `form:"title"`
	Bio   string `form:"bio"`
}

// TeamService manages staff bios with one required portrait image
type TeamService interface {
	Create(ctx context.Context, userID string, req CreateTeamMemberRequest, image *media.File) (*model.TeamMember, error)
	FindAll(ctx context.Context) ([]model.TeamMember, error)
	FindOne(ctx context.Context, id string) (*model.TeamMember, error)
	Update(ctx context.Context, userID, id string, req UpdateTeamMemberRequest, image *media.File) (*model.TeamMember, error)
	Remove(ctx context.Context, userID, id string) (*model.TeamMember, error)
	HardDelete(ctx context.Context, userID, id string) (*model.TeamMember, error)
	Count(ctx context.Context) (int64, error)
}

type teamService struct {
	repo  repository.TeamRepository
	media media.Store
	logs  LogService
}

// NewTeamService returns a new instance of TeamService
func NewTeamService(repo repository.TeamRepository, mediaStore media.Store, logs LogService) TeamService {
	return &teamService{repo: repo, media: mediaStore, logs: logs}
}

func (s *teamService) Create(ctx context.Context, userID string, req CreateTeamMemberRequest, image *media.File) (*model.TeamMember, error) {
	if image == nil {
		return nil, ErrImageRequired
	}

	uploaded, err := s.media.UploadImage(ctx, *image)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	member := &model.TeamMember{
		Name:          req.Name,
		Title:         req.Title,
		Bio:           req.Bio,
		ImageURL:      uploaded.URL,
		ImagePublicID: uploaded.PublicID,
		IsActive:      true,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityTeam, member.ID.String(), userID, nil, member)
	return member, nil
}

func (s *teamService) FindAll(ctx context.Context) ([]model.TeamMember, error) {
	return s.repo.ListActive(ctx)
}

func (s *teamService) FindOne(ctx context.Context, id string) (*model.TeamMember, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("team member %s: %w", id, ErrNotFound)
	}
	return member, nil
}

func (s *teamService) Update(ctx context.Context, userID, id string, req UpdateTeamMemberRequest, image *media.File) (*model.TeamMember, error) {
	member, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldMember := *member

	if image != nil {
		if member.ImagePublicID != "" {
			s.deleteAsset(ctx, member.ImagePublicID)
		}
		uploaded, err := s.media.UploadImage(ctx, *image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		member.ImageURL = uploaded.URL
		member.ImagePublicID = uploaded.PublicID
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.Title != "" {
		member.Title = req.Title
	}
	if req.Bio != "" {
		member.Bio = req.Bio
	}

	if err := s.repo.Save(ctx, member); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityTeam, id, userID, oldMember, member)
	return member, nil
}

func (s *teamService) Remove(ctx context.Context, userID, id string) (*model.TeamMember, error) {
	member, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldMember := *member

	if member.ImagePublicID != "" {
		s.deleteAsset(ctx, member.ImagePublicID)
	}

	member.IsActive = false
	if err := s.repo.Save(ctx, member); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityTeam, id, userID, oldMember, member)
	return member, nil
}

func (s *teamService) HardDelete(ctx context.Context, userID, id string) (*model.TeamMember, error) {
	member, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldMember := *member

	if member.ImagePublicID != "" {
		s.deleteAsset(ctx, member.ImagePublicID)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityTeam, id, userID, oldMember, nil)
	return member, nil
}

func (s *teamService) Count(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

func (s *teamService) deleteAsset(ctx context.Context, publicID string) {
	if err := s.media.Delete(ctx, publicID, media.ResourceImage); err != nil {
		log.Warn().Err(err).Str("public_id", publicID).Msg("failed to delete media asset, continuing")
	}
}
