// Package handlers is the JSON API over the project service.
package handlers

import (
	"employee-management/internal/repository"
	"employee-management/internal/service"
)

type Handler struct {
	projects service.ProjectService
	users    *repository.UserRepository
	audit    *repository.AuditRepository
}

func New(projects service.ProjectService, users *repository.UserRepository, audit *repository.AuditRepository) *Handler {
	return &Handler{projects: projects, users: users, audit: audit}
}
