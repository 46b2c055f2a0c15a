package ports

import "context"

// Stats are the dashboard counters, derived from live state on every call.
type Stats struct {
	TotalClients       int `json:"totalClients"`
	TasksDueThisWeek   int `json:"tasksDueThisWeek"`
	OverdueTasks       int `json:"overdueTasks"`
	CompletedThisMonth int `json:"completedThisMonth"`
}

// StatsService computes aggregate practice statistics.
type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}
