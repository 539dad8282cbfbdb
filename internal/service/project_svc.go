package service

import (
	"context"

	"employee-management/internal/apperr"
	"employee-management/internal/dto"
	"employee-management/internal/mapper"
	"employee-management/internal/models"
	"employee-management/internal/repository"
	"employee-management/internal/validation"
)

// ProjectService is everything the presentation layers need to validate
// project input and manage stored projects.
//
// The data methods return apperr.PersistenceError when the store is
// unreachable or rejects the operation.
type ProjectService interface {
	// ValidateID parses a positive project id.
	ValidateID(raw string) (int, bool)
	IsValidName(raw string) bool
	// ValidateName returns the trimmed name if it is valid.
	ValidateName(raw string) (string, bool)
	// IsValidDescription reports whether raw has at most 300 characters
	// including a run of 10 letters.
	IsValidDescription(raw string) bool
	ValidateDescription(raw string) (string, bool)
	// ValidateManager returns the trimmed, lower-cased manager name.
	ValidateManager(raw string) (string, bool)
	ValidateStatus(raw string) (models.ProjectStatus, bool)

	// BuildProject validates every field of in and reports all rejected
	// fields at once in an apperr.ValidationError.
	BuildProject(in dto.ProjectInput, employees []dto.EmployeeDTO) (dto.ProjectDTO, error)

	IsProjectDatabaseEmpty(ctx context.Context) (bool, error)
	IsProjectExist(ctx context.Context, id int) (bool, error)
	GetAllEmployees(ctx context.Context) ([]dto.EmployeeDTO, error)

	// CreateProject stores an already validated project and returns the id
	// the store assigned to it.
	CreateProject(ctx context.Context, project dto.ProjectDTO) (int, error)
	// GetProject returns nil when no project has the id.
	GetProject(ctx context.Context, id int) (*dto.ProjectDTO, error)
	GetAllProjects(ctx context.Context) ([]dto.ProjectDTO, error)
	GetProjectsByStatus(ctx context.Context, status models.ProjectStatus) ([]dto.ProjectDTO, error)
	// UpdateProject replaces the stored project with the same id and reports
	// whether it existed.
	UpdateProject(ctx context.Context, project dto.ProjectDTO) (bool, error)
	DeleteProject(ctx context.Context, id int) (bool, error)
	// DeleteAllProjects reports true once the table is empty, including when
	// it already was.
	DeleteAllProjects(ctx context.Context) (bool, error)
}

type ProjectSvc struct {
	projects  *repository.ProjectRepository
	employees *repository.EmployeeRepository
}

var _ ProjectService = (*ProjectSvc)(nil)

func NewProjectService(projects *repository.ProjectRepository, employees *repository.EmployeeRepository) *ProjectSvc {
	return &ProjectSvc{projects: projects, employees: employees}
}

func (s *ProjectSvc) ValidateID(raw string) (int, bool) {
	return validation.ValidateID(raw)
}

func (s *ProjectSvc) IsValidName(raw string) bool {
	return validation.IsValidName(raw)
}

func (s *ProjectSvc) ValidateName(raw string) (string, bool) {
	return validation.ValidateName(raw)
}

func (s *ProjectSvc) IsValidDescription(raw string) bool {
	return validation.IsValidDescription(raw)
}

func (s *ProjectSvc) ValidateDescription(raw string) (string, bool) {
	return validation.ValidateDescription(raw)
}

func (s *ProjectSvc) ValidateManager(raw string) (string, bool) {
	return validation.ValidateManager(raw)
}

func (s *ProjectSvc) ValidateStatus(raw string) (models.ProjectStatus, bool) {
	return validation.ValidateStatus(raw)
}

// BuildProject resolves in.EmployeeIDs against employees; unknown ids are a
// validation failure.
func (s *ProjectSvc) BuildProject(in dto.ProjectInput, employees []dto.EmployeeDTO) (dto.ProjectDTO, error) {
	verr := &apperr.ValidationError{}
	var out dto.ProjectDTO
	var ok bool

	if out.Name, ok = s.ValidateName(in.Name); !ok {
		verr.Add("name", "must be 1 to 5 words of letters, the first at least 3 letters long")
	}
	if out.Description, ok = s.ValidateDescription(in.Description); !ok {
		verr.Add("description", "must be at most 300 characters and contain at least 10 letters in a row")
	}
	if out.Manager, ok = s.ValidateManager(in.Manager); !ok {
		verr.Add("manager", "must be a person's name")
	}
	if out.Status, ok = s.ValidateStatus(in.Status); !ok {
		verr.Add("status", "must be one of NOT_STARTED, IN_PROGRESS, COMPLETED")
	}

	byID := make(map[int]dto.EmployeeDTO, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	seen := make(map[int]bool, len(in.EmployeeIDs))
	out.Employees = make([]dto.EmployeeDTO, 0, len(in.EmployeeIDs))
	for _, id := range in.EmployeeIDs {
		e, found := byID[id]
		if !found {
			verr.Add("employee_ids", "unknown employee id")
			break
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out.Employees = append(out.Employees, e)
	}

	if err := verr.OrNil(); err != nil {
		return dto.ProjectDTO{}, err
	}
	return out, nil
}

func (s *ProjectSvc) IsProjectDatabaseEmpty(ctx context.Context) (bool, error) {
	n, err := s.projects.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *ProjectSvc) IsProjectExist(ctx context.Context, id int) (bool, error) {
	return s.projects.Exists(ctx, id)
}

func (s *ProjectSvc) GetAllEmployees(ctx context.Context) ([]dto.EmployeeDTO, error) {
	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := mapper.ToEmployeeDTOs(employees)
	if out == nil {
		out = []dto.EmployeeDTO{}
	}
	return out, nil
}

func (s *ProjectSvc) CreateProject(ctx context.Context, project dto.ProjectDTO) (int, error) {
	p := mapper.ToProject(project)
	p.ID = 0
	return s.projects.Insert(ctx, &p)
}

func (s *ProjectSvc) GetProject(ctx context.Context, id int) (*dto.ProjectDTO, error) {
	p, err := s.projects.Get(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	out := mapper.ToProjectDTO(*p)
	return &out, nil
}

func (s *ProjectSvc) GetAllProjects(ctx context.Context) ([]dto.ProjectDTO, error) {
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToProjectDTOs(projects), nil
}

func (s *ProjectSvc) GetProjectsByStatus(ctx context.Context, status models.ProjectStatus) ([]dto.ProjectDTO, error) {
	projects, err := s.projects.GetAllByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return mapper.ToProjectDTOs(projects), nil
}

func (s *ProjectSvc) UpdateProject(ctx context.Context, project dto.ProjectDTO) (bool, error) {
	p := mapper.ToProject(project)
	return s.projects.Update(ctx, &p)
}

func (s *ProjectSvc) DeleteProject(ctx context.Context, id int) (bool, error) {
	return s.projects.Delete(ctx, id)
}

func (s *ProjectSvc) DeleteAllProjects(ctx context.Context) (bool, error) {
	if err := s.projects.DeleteAll(ctx); err != nil {
		return false, err
	}
	return true, nil
}
