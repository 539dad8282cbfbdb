// Package dto contains the shapes exchanged between the presentation layers
// and the service. They carry no storage concerns.
package dto

import (
	"time"

	"employee-management/internal/models"
)

type EmployeeDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Email       string `json:"email"`
}

type ProjectDTO struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Manager     string               `json:"manager"`
	Status      models.ProjectStatus `json:"status"`
	Employees   []EmployeeDTO        `json:"employees"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ProjectInput is a project as typed by a user, before validation.
type ProjectInput struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Manager     string `json:"manager" form:"manager"`
	Status      string `json:"status" form:"status"`
	EmployeeIDs []int  `json:"employee_ids" form:"employee_ids"`
}
