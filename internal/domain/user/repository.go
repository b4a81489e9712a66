package user

import (
	"context"
	"time"
)

type Repository interface {
	CreateUser(ctx context.Context, req User) (*User, error)
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUsers(ctx context.Context) (Users, error)
	FetchUsersByBirthDateRange(ctx context.Context, from, to time.Time) (Users, error)
	ReplaceUser(ctx context.Context, id ID, req User) (*User, error)
	PatchUser(ctx context.Context, id ID, p Patch) (*User, error)
	DeleteUser(ctx context.Context, id ID) (*User, error)
}
