package handler

import "time"

type createTaskRequest struct {
	ClientID    string     `json:"clientId"    validate:"required"`
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	ServiceType string     `json:"serviceType" validate:"required,oneof=FBR SECP PSW PRA IPO"`
	Status      string     `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Deadline    *time.Time `json:"deadline"`
	FileURLs    []string   `json:"fileUrls"`
	Notes       string     `json:"notes"`
}

// updateTaskRequest is a partial update; absent fields stay unchanged.
type updateTaskRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	ServiceType *string    `json:"serviceType" validate:"omitempty,oneof=FBR SECP PSW PRA IPO"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Deadline    *time.Time `json:"deadline"`
	FileURLs    []string   `json:"fileUrls"`
	Notes       *string    `json:"notes"`
}
