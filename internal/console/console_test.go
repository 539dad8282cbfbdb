package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"employee-management/internal/database"
	"employee-management/internal/database/dbtest"
	"employee-management/internal/dto"
	"employee-management/internal/models"
	"employee-management/internal/repository"
	"employee-management/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*service.ProjectSvc, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	return service.NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewEmployeeRepository(db),
	), db
}

func run(t *testing.T, svc service.ProjectService, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, New(svc, in, &out).Run(context.Background()))
	return out.String()
}

func seedProject(t *testing.T, svc *service.ProjectSvc) int {
	t.Helper()
	id, err := svc.CreateProject(context.Background(), dto.ProjectDTO{
		Name:        "Payroll Revamp",
		Description: "Integration of attendance data",
		Manager:     "ravi kumar",
		Status:      models.StatusNotStarted,
	})
	require.NoError(t, err)
	return id
}

func TestCreateProjectRepromptsUntilValid(t *testing.T) {
	svc, db := setup(t)
	for _, name := range []string{"anita", "babu"} {
		_, err := repository.NewEmployeeRepository(db).Insert(context.Background(),
			&models.Employee{Name: name, Designation: "Engineer", Email: name + "@example.com"})
		require.NoError(t, err)
	}

	out := run(t, svc,
		"9",
		"1",
		"X1", "Payroll Revamp",
		"short", "Integration of attendance data",
		"R2", " Ravi Kumar ",
		"bogus", "in progress",
		"5", "1, 2",
		"5",
	)

	assert.Contains(t, out, "Please enter a valid option!")
	assert.Contains(t, out, "Please enter a valid name!")
	assert.Contains(t, out, "Description must have at least 10 letters")
	assert.Contains(t, out, "Please enter a valid status!")
	assert.Contains(t, out, "Invalid selection!")
	assert.Contains(t, out, "1 => anita (Engineer)")
	assert.Contains(t, out, "Project created successfully, id is 1")

	p, err := svc.GetProject(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Payroll Revamp", p.Name)
	assert.Equal(t, "ravi kumar", p.Manager)
	assert.Equal(t, models.StatusInProgress, p.Status)
	assert.Len(t, p.Employees, 2)
}

func TestViewMenu(t *testing.T) {
	svc, _ := setup(t)

	out := run(t, svc, "2", "1", "2", "3", "5")
	assert.Equal(t, 2, strings.Count(out, "No projects found!"))

	id := seedProject(t, svc)
	out = run(t, svc, "2", "1", "0", "77", "1", "1", "2", "3", "5")

	assert.Contains(t, out, "0 is not allowed")
	assert.Contains(t, out, "Project not found!")
	assert.Equal(t, 2, strings.Count(out, "Name        : Payroll Revamp"))
	assert.Contains(t, out, "Status      : Not Started")
	assert.Contains(t, out, "Employees   : -")
	assert.Equal(t, 1, id)
}

func TestUpdateProjectKeepsBlankFields(t *testing.T) {
	svc, _ := setup(t)
	id := seedProject(t, svc)

	out := run(t, svc,
		"3",
		"abc", "1",
		"",
		"",
		"Meena",
		"completed",
		"5",
	)
	assert.Contains(t, out, "Project Name [Payroll Revamp]")
	assert.Contains(t, out, "Project updated successfully")

	p, err := svc.GetProject(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Payroll Revamp", p.Name)
	assert.Equal(t, "Integration of attendance data", p.Description)
	assert.Equal(t, "meena", p.Manager)
	assert.Equal(t, models.StatusCompleted, p.Status)
}

func TestUpdateMissingProject(t *testing.T) {
	svc, _ := setup(t)
	seedProject(t, svc)

	out := run(t, svc, "3", "42", "5")
	assert.Contains(t, out, "Project not found!")
}

func TestDeleteMenu(t *testing.T) {
	svc, _ := setup(t)
	id := seedProject(t, svc)
	seedProject(t, svc)

	out := run(t, svc,
		"4",
		"1", "99",
		"1", "1",
		"2", "maybe", "n",
		"2", "y",
		"1",
		"3",
		"5",
	)

	assert.Contains(t, out, "Project not found!")
	assert.Contains(t, out, "Project deleted successfully")
	assert.Contains(t, out, "Please enter y or n!")
	assert.Contains(t, out, "All projects deleted successfully")
	assert.Contains(t, out, "No projects found!")

	exists, err := svc.IsProjectExist(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, exists)

	empty, err := svc.IsProjectDatabaseEmpty(context.Background())
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestOverlongLineIsRejectedNotFatal(t *testing.T) {
	svc, _ := setup(t)

	out := run(t, svc,
		"1",
		strings.Repeat("a", 70000), "Payroll Revamp",
		"Integration of attendance data",
		"Ravi",
		"completed",
		"5",
	)

	assert.Contains(t, out, "Please enter a valid name!")
	assert.Contains(t, out, "Project created successfully, id is 1")

	p, err := svc.GetProject(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Payroll Revamp", p.Name)
}

func TestCRLFLineEndings(t *testing.T) {
	svc, _ := setup(t)
	id := seedProject(t, svc)

	var out bytes.Buffer
	in := strings.NewReader("2\r\n1\r\n1\r\n3\r\n5")
	require.NoError(t, New(svc, in, &out).Run(context.Background()))
	assert.Contains(t, out.String(), "Name        : Payroll Revamp")
	assert.Equal(t, 1, id)
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	svc, _ := setup(t)

	var out bytes.Buffer
	err := New(svc, strings.NewReader("1\nPayroll Revamp\n"), &out).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Enter Project Description")
}

func TestStoreFailuresReturnToMenu(t *testing.T) {
	svc, db := setup(t)
	require.NoError(t, database.Close(db))

	out := run(t, svc,
		"1", "Payroll Revamp", "Integration of attendance data", "Ravi", "completed",
		"2", "2", "3",
		"4", "1", "3",
		"5",
	)

	assert.Contains(t, out, "Unable to load employees")
	assert.Contains(t, out, "Unable to read projects")
	assert.Equal(t, 2, strings.Count(out, "Unable to read projects"))
}
