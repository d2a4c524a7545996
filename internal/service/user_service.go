package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Username     string `json:"username" binding:"required"`
	Role         string `json:"role"`
	DepartmentID string `json:"departmentId"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	DepartmentID string `json:"departmentId"`
	Status       string `json:"status"`
}

// LoginResult carries the signed token plus the authenticated account
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// UserService manages accounts and issues access tokens
type UserService interface {
	Register(ctx context.Context, actorID string, req RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindOne(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (*model.User, error)
	Remove(ctx context.Context, actorID, id string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
}

type userService struct {
	repo      repository.UserRepository
	logs      LogService
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository, logs LogService, jwtSecret []byte) UserService {
	return &userService{
		repo:      repo,
		logs:      logs,
		jwtSecret: jwtSecret,
		tokenTTL:  24 * time.Hour,
	}
}

func validRole(role string) bool {
	switch role {
	case model.RoleUser, model.RoleAdmin, model.RoleSuperAdmin, model.RoleDeptAdmin,
		model.RoleSuperAdminLegacy, model.RoleDeptAdminLegacy:
		return true
	}
	return false
}

func validStatus(status string) bool {
	switch status {
	case model.UserStatusActive, model.UserStatusInactive, model.UserStatusPending:
		return true
	}
	return false
}

func (s *userService) Register(ctx context.Context, actorID string, req RegisterRequest) (*model.User, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email %q is already registered", req.Email)
	}
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username %q is already taken", req.Username)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	if !validRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		Password:     string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Role:         role,
		DepartmentID: req.DepartmentID,
		Status:       model.UserStatusActive,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityUser, user.ID.String(), actorID, nil, user)
	return user, nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status != model.UserStatusActive {
		return nil, fmt.Errorf("account is %s", user.Status)
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (s *userService) signToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":          user.ID.String(),
		"role":         user.Role,
		"departmentId": user.DepartmentID,
		"iat":          now.Unix(),
		"exp":          now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *userService) FindAll(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) FindOne(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (*model.User, error) {
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	oldUser := *user

	if req.Role != "" {
		if !validRole(req.Role) {
			return nil, fmt.Errorf("unknown role %q", req.Role)
		}
		user.Role = req.Role
	}
	if req.Status != "" {
		if !validStatus(req.Status) {
			return nil, fmt.Errorf("unknown status %q", req.Status)
		}
		user.Status = req.Status
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.DepartmentID != "" {
		user.DepartmentID = req.DepartmentID
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionUpdate, model.EntityUser, id, actorID, oldUser, user)
	return user, nil
}

func (s *userService) Remove(ctx context.Context, actorID, id string) (*model.User, error) {
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityUser, id, actorID, user, nil)
	return user, nil
}

func (s *userService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
