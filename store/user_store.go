package store

import (
	"context"
	"errors"

	"github.com/Aniket-49001/Railway-Concession/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email is already in use")
)

// UserStore abstracts user persistence. The app runs with the database
// implementation when MySQL is reachable and falls back to the flat-file
// one otherwise, picked once at startup.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}
