package services

import (
	"context"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	"github.com/railfleet/fleet_mgmt_app/internal/dto"
)

// UserSvcFacade exposes user lookup and registration for the auth handlers.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
