package repository_test

import (
	"context"
	"testing"

	"employee-management/internal/database/dbtest"
	"employee-management/internal/models"
	"employee-management/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedEmployees(t *testing.T, db *gorm.DB, names ...string) []models.Employee {
	t.Helper()
	repo := repository.NewEmployeeRepository(db)
	out := make([]models.Employee, 0, len(names))
	for _, name := range names {
		e := models.Employee{Name: name, Designation: "Engineer", Email: name + "@example.com"}
		_, err := repo.Insert(context.Background(), &e)
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

func newProject(employees ...models.Employee) *models.Project {
	return &models.Project{
		Name:        "Payroll Revamp",
		Description: "Integration of attendance data",
		Manager:     "ravi kumar",
		Status:      models.StatusNotStarted,
		Employees:   employees,
	}
}

func TestProjectRepository_InsertAndGet(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()
	emps := seedEmployees(t, db, "anita", "babu")

	id, err := repo.Insert(ctx, newProject(emps[1], emps[0]))
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Payroll Revamp", got.Name)
	assert.Equal(t, models.StatusNotStarted, got.Status)
	require.Len(t, got.Employees, 2)
	assert.Equal(t, emps[0].ID, got.Employees[0].ID)
	assert.Equal(t, "babu", got.Employees[1].Name)

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProjectRepository_GetMissing(t *testing.T) {
	repo := repository.NewProjectRepository(dbtest.New(t))

	got, err := repo.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)

	exists, err := repo.Exists(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProjectRepository_CountAndGetAll(t *testing.T) {
	repo := repository.NewProjectRepository(dbtest.New(t))
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	first, err := repo.Insert(ctx, newProject())
	require.NoError(t, err)
	second := newProject()
	second.Name = "Hiring Portal"
	_, err = repo.Insert(ctx, second)
	require.NoError(t, err)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first, all[0].ID)
	assert.Equal(t, "Hiring Portal", all[1].Name)
}

func TestProjectRepository_Update(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()
	emps := seedEmployees(t, db, "anita", "babu", "chitra")

	id, err := repo.Insert(ctx, newProject(emps[0], emps[1]))
	require.NoError(t, err)

	changed := newProject(emps[2])
	changed.ID = id
	changed.Name = "Payroll Phase Two"
	changed.Status = models.StatusCompleted

	ok, err := repo.Update(ctx, changed)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Payroll Phase Two", got.Name)
	assert.Equal(t, models.StatusCompleted, got.Status)
	require.Len(t, got.Employees, 1)
	assert.Equal(t, emps[2].ID, got.Employees[0].ID)

	cleared := newProject()
	cleared.ID = id
	ok, err = repo.Update(ctx, cleared)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.Employees)

	missing := newProject()
	missing.ID = id + 100
	ok, err = repo.Update(ctx, missing)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProjectRepository_Delete(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()
	emps := seedEmployees(t, db, "anita")

	id, err := repo.Insert(ctx, newProject(emps...))
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	var links int64
	require.NoError(t, db.Table("project_employees").Where("project_id = ?", id).Count(&links).Error)
	assert.Zero(t, links)

	employees, err := repository.NewEmployeeRepository(db).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1, "employees outlive their projects")
}

func TestProjectRepository_DeleteAll(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.DeleteAll(ctx), "empty table")

	emps := seedEmployees(t, db, "anita")
	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, newProject(emps...))
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteAll(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProjectRepository_GetAllByStatus(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()
	emps := seedEmployees(t, db, "anita")

	for _, st := range []models.ProjectStatus{models.StatusCompleted, models.StatusNotStarted, models.StatusCompleted} {
		p := newProject(emps...)
		p.Status = st
		_, err := repo.Insert(ctx, p)
		require.NoError(t, err)
	}

	done, err := repo.GetAllByStatus(ctx, models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, done, 2)
	assert.Less(t, done[0].ID, done[1].ID)
	for _, p := range done {
		assert.Equal(t, models.StatusCompleted, p.Status)
		assert.Len(t, p.Employees, 1)
	}

	running, err := repo.GetAllByStatus(ctx, models.StatusInProgress)
	require.NoError(t, err)
	assert.Empty(t, running)
}
