package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres/models"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (r *DefaultUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	model := &models.UserModel{
		ID:                user.ID,
		Owner:             user.Owner,
		DefaultDailyLimit: user.DefaultDailyLimit,
		CreatedAt:         user.CreatedAt,
	}

	return dbFromContext(ctx, r.db).Create(model).Error
}

func (r *DefaultUserRepository) GetUserByOwner(ctx context.Context, owner string) (*domain.User, error) {
	var model models.UserModel
	if err := dbFromContext(ctx, r.db).First(&model, "owner = ?", owner).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &domain.User{
		ID:                model.ID,
		Owner:             model.Owner,
		DefaultDailyLimit: model.DefaultDailyLimit,
		CreatedAt:         model.CreatedAt,
	}, nil
}
