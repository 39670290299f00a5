package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftment/payment-service/internal/domain"
	userdto "github.com/swiftment/payment-service/internal/usecase/dto/user"
)

type UserUsecase interface {
	RegisterUser(ctx context.Context, input *userdto.RegisterUserInput) (*domain.User, error)
	GetUserByOwner(ctx context.Context, owner string) (*domain.User, error)
}

type DefaultUserUsecase struct {
	UserRepo domain.UserRepository
}

func NewDefaultUserUsecase(userRepo domain.UserRepository) *DefaultUserUsecase {
	return &DefaultUserUsecase{UserRepo: userRepo}
}

func (uc *DefaultUserUsecase) RegisterUser(ctx context.Context, input *userdto.RegisterUserInput) (*domain.User, error) {
	if input.Owner == "" {
		return nil, fmt.Errorf("owner is required")
	}

	existing, err := uc.UserRepo.GetUserByOwner(ctx, input.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrAlreadyExists, input.Owner)
	}

	user := &domain.User{
		ID:                uuid.New().String(),
		Owner:             input.Owner,
		DefaultDailyLimit: 0, // unlimited by default
		CreatedAt:         time.Now(),
	}

	if err := uc.UserRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (uc *DefaultUserUsecase) GetUserByOwner(ctx context.Context, owner string) (*domain.User, error) {
	user, err := uc.UserRepo.GetUserByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, owner)
	}
	return user, nil
}
