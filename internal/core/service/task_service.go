package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taxdesk/practice-api/internal/core/domain"
	"github.com/taxdesk/practice-api/internal/core/ports"
)

// TaskService implements compliance-task use-cases.
type TaskService struct {
	tasks   ports.TaskRepository
	clients ports.ClientRepository
	log     zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, clients ports.ClientRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, clients: clients, log: log}
}

// Create inserts a task. The client must exist: orphan tasks are rejected
// with domain.ErrClientNotFound instead of silently accepted.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}
	fileURLs := input.FileURLs
	if fileURLs == nil {
		fileURLs = []string{}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		ServiceType: input.ServiceType,
		Status:      status,
		Deadline:    input.Deadline,
		FileURLs:    fileURLs,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("task_id", task.ID).
		Str("client_id", task.ClientID).
		Str("service_type", string(task.ServiceType)).
		Msg("task created")
	return task, nil
}

func (s *TaskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) ListByClient(ctx context.Context, clientID string) ([]*domain.Task, error) {
	return s.tasks.ListByClient(ctx, clientID)
}

func (s *TaskService) Update(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	existing, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.ServiceType != nil {
		updated.ServiceType = *input.ServiceType
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if input.Deadline != nil {
		updated.Deadline = input.Deadline
	}
	if input.FileURLs != nil {
		updated.FileURLs = input.FileURLs
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", id).Msg("task updated")
	return &updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
