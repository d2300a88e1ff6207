package users

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user has the requested id.
var ErrNotFound = errors.New("user not found")

// Repository is the storage capability the API needs.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, in CreateUser) (User, error)
	Update(ctx context.Context, id string, in UpdateUser) (User, error)
	Delete(ctx context.Context, id string) error
}
