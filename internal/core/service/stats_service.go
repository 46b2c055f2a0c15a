package service

import (
	"context"
	"time"

	"github.com/taxdesk/practice-api/internal/core/domain"
	"github.com/taxdesk/practice-api/internal/core/ports"
)

// StatsService derives the dashboard counters from live store contents.
// Each call is O(number of tasks); nothing is cached.
type StatsService struct {
	clients ports.ClientRepository
	tasks   ports.TaskRepository
}

func NewStatsService(clients ports.ClientRepository, tasks ports.TaskRepository) *StatsService {
	return &StatsService{clients: clients, tasks: tasks}
}

func (s *StatsService) GetStats(ctx context.Context) (*ports.Stats, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := computeStats(tasks, time.Now().UTC())
	stats.TotalClients = len(clients)
	return stats, nil
}

// computeStats evaluates the task counters against a reference instant.
//
//	tasksDueThisWeek:   deadline within [now, now+7d] and not completed
//	overdueTasks:       deadline before now and not completed
//	completedThisMonth: completed and updated within now's calendar month
func computeStats(tasks []*domain.Task, now time.Time) *ports.Stats {
	weekAhead := now.Add(7 * 24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &ports.Stats{}
	for _, task := range tasks {
		completed := task.Status == domain.StatusCompleted

		if task.Deadline != nil && !completed {
			if !task.Deadline.Before(now) && !task.Deadline.After(weekAhead) {
				stats.TasksDueThisWeek++
			}
			if task.Deadline.Before(now) {
				stats.OverdueTasks++
			}
		}
		if completed && !task.UpdatedAt.Before(monthStart) {
			stats.CompletedThisMonth++
		}
	}
	return stats
}
