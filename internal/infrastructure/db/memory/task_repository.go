package memory

import (
	"context"
	"sort"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

// TaskRepository persists compliance tasks in the shared store.
type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *TaskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	task, ok := r.store.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (r *TaskRepository) List(_ context.Context) ([]*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(r.store.tasks))
	for _, task := range r.store.tasks {
		tasks = append(tasks, cloneTask(task))
	}
	sortTasks(tasks)
	return tasks, nil
}

func (r *TaskRepository) ListByClient(_ context.Context, clientID string) ([]*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tasks := make([]*domain.Task, 0)
	for _, task := range r.store.tasks {
		if task.ClientID == clientID {
			tasks = append(tasks, cloneTask(task))
		}
	}
	sortTasks(tasks)
	return tasks, nil
}

func (r *TaskRepository) Update(_ context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.store.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.store.tasks, id)
	return nil
}

func sortTasks(tasks []*domain.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
}
