package ports

import (
	"context"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

// UserRepository defines the interface for consultant account persistence.
type UserRepository interface {
	// Create inserts a new user. A taken username yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
