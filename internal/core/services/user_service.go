package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jkim-dev/budget_tracker_app/internal/apperrors"
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/jkim-dev/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
	"github.com/jkim-dev/budget_tracker_app/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s already exists: %w", req.Email, apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
		IsActive:     true,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: &now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to register user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("new_user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}
	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user for deletion: %w", err)
	}
	if user.IsSuperuser {
		return fmt.Errorf("superusers are not allowed to delete themselves: %w", apperrors.ErrForbidden)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete user")
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.LogInfo(ctx, "User deleted")
	return nil
}
