package services

import (
	"context"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser verifies email and password and returns the user.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// DeleteUser permanently removes the requesting user's own account.
	DeleteUser(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	UserLifecycleSvc
}
