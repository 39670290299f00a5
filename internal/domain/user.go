package domain

import (
	"context"
	"time"
)

type User struct {
	ID                string
	Owner             string
	DefaultDailyLimit uint64
	CreatedAt         time.Time
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByOwner(ctx context.Context, owner string) (*User, error)
}
