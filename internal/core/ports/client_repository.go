package ports

import (
	"context"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

// ClientRepository defines persistence operations for clients. Stored
// portal credentials are ciphertext; encryption and decryption belong to the
// service layer, the repository never sees plaintext passwords.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// List returns all clients, newest first.
	List(ctx context.Context) ([]*domain.Client, error)
	// Update replaces the stored record. Missing id yields domain.ErrClientNotFound.
	Update(ctx context.Context, client *domain.Client) error
	// Delete removes the client and cascades to every task referencing it.
	Delete(ctx context.Context, id string) error
}
