package ports

import (
	"context"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

// CreateClientInput carries a validated client insert payload.
type CreateClientInput struct {
	FullName          string
	Email             string
	Phone             string
	CNIC              string
	NTN               string
	Notes             string
	PortalCredentials domain.PortalCredentials
}

// UpdateClientInput is a partial update: nil pointers mean "leave unchanged".
// A nil PortalCredentials map leaves the stored (encrypted) credentials as
// they are; a non-nil map replaces them wholesale.
type UpdateClientInput struct {
	FullName          *string
	Email             *string
	Phone             *string
	CNIC              *string
	NTN               *string
	Notes             *string
	PortalCredentials domain.PortalCredentials
}

// ClientService defines client use-cases. Every returned client carries
// decrypted portal credentials.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
