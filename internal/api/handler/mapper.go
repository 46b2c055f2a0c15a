package handler

import (
	"github.com/taxdesk/practice-api/internal/core/domain"
	"github.com/taxdesk/practice-api/internal/core/ports"
)

// --- Request → Service input ---

func toPortalCredentials(creds map[string]portalLoginRequest) domain.PortalCredentials {
	if creds == nil {
		return nil
	}
	out := make(domain.PortalCredentials, len(creds))
	for portal, login := range creds {
		out[portal] = domain.PortalLogin{Username: login.Username, Password: login.Password}
	}
	return out
}

func toCreateClientInput(req createClientRequest) ports.CreateClientInput {
	return ports.CreateClientInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		CNIC:              req.CNIC,
		NTN:               req.NTN,
		Notes:             req.Notes,
		PortalCredentials: toPortalCredentials(req.PortalCredentials),
	}
}

func toUpdateClientInput(req updateClientRequest) ports.UpdateClientInput {
	return ports.UpdateClientInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		CNIC:              req.CNIC,
		NTN:               req.NTN,
		Notes:             req.Notes,
		PortalCredentials: toPortalCredentials(req.PortalCredentials),
	}
}

func toCreateTaskInput(req createTaskRequest) ports.CreateTaskInput {
	return ports.CreateTaskInput{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		ServiceType: domain.ServiceType(req.ServiceType),
		Status:      domain.TaskStatus(req.Status),
		Deadline:    req.Deadline,
		FileURLs:    req.FileURLs,
		Notes:       req.Notes,
	}
}

func toUpdateTaskInput(req updateTaskRequest) ports.UpdateTaskInput {
	in := ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		FileURLs:    req.FileURLs,
		Notes:       req.Notes,
	}
	if req.ServiceType != nil {
		st := domain.ServiceType(*req.ServiceType)
		in.ServiceType = &st
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		in.Status = &status
	}
	return in
}
