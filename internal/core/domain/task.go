package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskStatus is the lifecycle state of a compliance task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// ServiceType names the government body or process a task pertains to.
type ServiceType string

const (
	ServiceFBR  ServiceType = "FBR"
	ServiceSECP ServiceType = "SECP"
	ServicePSW  ServiceType = "PSW"
	ServicePRA  ServiceType = "PRA"
	ServiceIPO  ServiceType = "IPO"
)

// Task is a unit of compliance work for a client. Deleting the client
// hard-deletes all of its tasks; no orphaned tasks exist.
type Task struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"clientId"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	ServiceType ServiceType `json:"serviceType"`
	Status      TaskStatus  `json:"status"`
	Deadline    *time.Time  `json:"deadline,omitempty"`
	FileURLs    []string    `json:"fileUrls"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
