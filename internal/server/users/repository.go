package users

import "context"

type Repository interface {
	// Create inserts the user and returns it with the assigned id. A taken
	// username yields common.ErrLoginAlreadyExists.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByUsername returns the user or common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)
}
