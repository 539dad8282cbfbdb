// Package mapper converts between transfer objects and gorm models.
package mapper

import (
	"employee-management/internal/dto"
	"employee-management/internal/models"
)

func ToEmployee(e dto.EmployeeDTO) models.Employee {
	return models.Employee{
		ID:          e.ID,
		Name:        e.Name,
		Designation: e.Designation,
		Email:       e.Email,
	}
}

func ToEmployeeDTO(e models.Employee) dto.EmployeeDTO {
	return dto.EmployeeDTO{
		ID:          e.ID,
		Name:        e.Name,
		Designation: e.Designation,
		Email:       e.Email,
	}
}

func ToEmployees(in []dto.EmployeeDTO) []models.Employee {
	if in == nil {
		return nil
	}
	out := make([]models.Employee, len(in))
	for i, e := range in {
		out[i] = ToEmployee(e)
	}
	return out
}

func ToEmployeeDTOs(in []models.Employee) []dto.EmployeeDTO {
	if in == nil {
		return nil
	}
	out := make([]dto.EmployeeDTO, len(in))
	for i, e := range in {
		out[i] = ToEmployeeDTO(e)
	}
	return out
}

func ToProject(p dto.ProjectDTO) models.Project {
	return models.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Manager:     p.Manager,
		Status:      p.Status,
		Employees:   ToEmployees(p.Employees),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProjectDTO(p models.Project) dto.ProjectDTO {
	return dto.ProjectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Manager:     p.Manager,
		Status:      p.Status,
		Employees:   ToEmployeeDTOs(p.Employees),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProjectDTOs(in []models.Project) []dto.ProjectDTO {
	out := make([]dto.ProjectDTO, len(in))
	for i, p := range in {
		out[i] = ToProjectDTO(p)
	}
	return out
}
