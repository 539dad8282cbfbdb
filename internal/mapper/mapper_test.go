package mapper

import (
	"testing"
	"time"

	"employee-management/internal/dto"
	"employee-management/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleProject() models.Project {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return models.Project{
		ID:          7,
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Hour),
		Name:        "Payroll Revamp",
		Description: "Integration of attendance data",
		Manager:     "ravi kumar",
		Status:      models.StatusInProgress,
		Employees: []models.Employee{
			{ID: 1, Name: "Anita", Designation: "Engineer", Email: "anita@example.com"},
			{ID: 4, Name: "Babu", Designation: "Analyst", Email: "babu@example.com"},
		},
	}
}

func TestProjectRoundTrip(t *testing.T) {
	p := sampleProject()
	assert.Equal(t, p, ToProject(ToProjectDTO(p)))

	bare := models.Project{ID: 3, Name: "Apollo", Status: models.StatusNotStarted}
	assert.Equal(t, bare, ToProject(ToProjectDTO(bare)))
}

func TestToProjectDTOCopiesEmployees(t *testing.T) {
	p := sampleProject()
	d := ToProjectDTO(p)

	assert.Equal(t, []dto.EmployeeDTO{
		{ID: 1, Name: "Anita", Designation: "Engineer", Email: "anita@example.com"},
		{ID: 4, Name: "Babu", Designation: "Analyst", Email: "babu@example.com"},
	}, d.Employees)

	d.Employees[0].Name = "changed"
	assert.Equal(t, "Anita", p.Employees[0].Name)
}

func TestToProjectDTOs(t *testing.T) {
	assert.Empty(t, ToProjectDTOs(nil))

	got := ToProjectDTOs([]models.Project{sampleProject()})
	assert.Len(t, got, 1)
	assert.Equal(t, "Payroll Revamp", got[0].Name)
	assert.Equal(t, models.StatusInProgress, got[0].Status)
}
