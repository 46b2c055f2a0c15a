package ports

import (
	"context"
	"time"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

// CreateTaskInput carries a validated task insert payload. ClientID must
// reference an existing client.
type CreateTaskInput struct {
	ClientID    string
	Title       string
	Description string
	ServiceType domain.ServiceType
	Status      domain.TaskStatus // empty means pending
	Deadline    *time.Time
	FileURLs    []string
	Notes       string
}

// UpdateTaskInput is a partial update: nil means "leave unchanged".
type UpdateTaskInput struct {
	Title       *string
	Description *string
	ServiceType *domain.ServiceType
	Status      *domain.TaskStatus
	Deadline    *time.Time
	FileURLs    []string
	Notes       *string
}

// TaskService defines task use-cases.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
