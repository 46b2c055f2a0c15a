package ports

import (
	"context"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

// TaskRepository defines persistence operations for compliance tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Task, error)
	// Update replaces the stored record. Missing id yields domain.ErrTaskNotFound.
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
