package ports

import (
	"context"
	"time"

	"user-records-api/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, u user.User) (*user.User, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	FindUsersByBirthDateRange(ctx context.Context, from, to time.Time) (user.Users, error)
	UpdateUser(ctx context.Context, id user.ID, u user.User) (*user.User, error)
	PatchUser(ctx context.Context, id user.ID, p user.Patch) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) error
}
