package ports

import (
	"context"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

// RegisterInput carries the data needed to open a consultant account.
type RegisterInput struct {
	Username string
	Password string
	Name     string
}

// AuthService defines registration and login use-cases. Both return a signed
// bearer token alongside the account.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
