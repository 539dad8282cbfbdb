package handlers

import (
	"fmt"
	"net/http"

	"employee-management/internal/apperr"
	"employee-management/internal/dto"

	"github.com/gin-gonic/gin"
)

const auditEntityProject = "project"

// projectID parses the :id path parameter, answering 400 itself when it is
// not a positive integer.
func (h *Handler) projectID(c *gin.Context) (int, bool) {
	id, ok := h.projects.ValidateID(c.Param("id"))
	if !ok {
		badRequest(c, "project id must be a positive integer")
	}
	return id, ok
}

// ListProjects returns every project, optionally only those with ?status=.
func (h *Handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	var projects []dto.ProjectDTO
	var err error
	if raw := c.Query("status"); raw != "" {
		st, ok := h.projects.ValidateStatus(raw)
		if !ok {
			badRequest(c, "unknown status filter")
			return
		}
		projects, err = h.projects.GetProjectsByStatus(ctx, st)
	} else {
		projects, err = h.projects.GetAllProjects(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	p, err := h.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if p == nil {
		respondError(c, fmt.Errorf("project %d: %w", id, apperr.ErrNotFound))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var in dto.ProjectInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, "malformed project")
		return
	}

	ctx := c.Request.Context()
	project, err := h.buildProject(c, in)
	if err != nil {
		respondError(c, err)
		return
	}
	id, err := h.projects.CreateProject(ctx, project)
	if err != nil {
		respondError(c, err)
		return
	}
	h.recordAudit(c, id, "create", "created project "+project.Name)

	project.ID = id
	if stored, err := h.projects.GetProject(ctx, id); err == nil && stored != nil {
		project = *stored
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject replaces every field of the project, the employee list
// included.
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	var in dto.ProjectInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, "malformed project")
		return
	}

	ctx := c.Request.Context()
	project, err := h.buildProject(c, in)
	if err != nil {
		respondError(c, err)
		return
	}
	project.ID = id
	updated, err := h.projects.UpdateProject(ctx, project)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		respondError(c, fmt.Errorf("project %d: %w", id, apperr.ErrNotFound))
		return
	}
	h.recordAudit(c, id, "update", "updated project "+project.Name)

	if stored, err := h.projects.GetProject(ctx, id); err == nil && stored != nil {
		project = *stored
	}
	c.JSON(http.StatusOK, project)
}

type statusForm struct {
	Status string `form:"status" json:"status"`
}

func (h *Handler) ChangeProjectStatus(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	var form statusForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "malformed status change")
		return
	}
	next, ok := h.projects.ValidateStatus(form.Status)
	if !ok {
		verr := &apperr.ValidationError{}
		verr.Add("status", "must be one of NOT_STARTED, IN_PROGRESS, COMPLETED")
		respondError(c, verr)
		return
	}

	ctx := c.Request.Context()
	project, err := h.projects.GetProject(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if project == nil {
		respondError(c, fmt.Errorf("project %d: %w", id, apperr.ErrNotFound))
		return
	}
	if project.Status == next {
		c.JSON(http.StatusOK, project)
		return
	}

	project.Status = next
	updated, err := h.projects.UpdateProject(ctx, *project)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		respondError(c, fmt.Errorf("project %d: %w", id, apperr.ErrNotFound))
		return
	}
	h.recordAudit(c, id, "status_change", "status changed to "+string(next))
	c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	deleted, err := h.projects.DeleteProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		respondError(c, fmt.Errorf("project %d: %w", id, apperr.ErrNotFound))
		return
	}
	h.recordAudit(c, id, "delete", fmt.Sprintf("deleted project %d", id))
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteAllProjects(c *gin.Context) {
	if _, err := h.projects.DeleteAllProjects(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	h.recordAudit(c, 0, "delete_all", "deleted every project")
	c.Status(http.StatusNoContent)
}

// ProjectHistory returns the audit trail of one project. It stays readable
// after the project is deleted.
func (h *Handler) ProjectHistory(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	logs, err := h.audit.ListForEntity(ctx, auditEntityProject, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(logs) == 0 {
		exists, err := h.projects.IsProjectExist(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		if !exists {
			respondError(c, fmt.Errorf("project %d: %w", id, apperr.ErrNotFound))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.projects.GetAllEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// buildProject validates in against the stored employees.
func (h *Handler) buildProject(c *gin.Context, in dto.ProjectInput) (dto.ProjectDTO, error) {
	var employees []dto.EmployeeDTO
	if len(in.EmployeeIDs) > 0 {
		var err error
		if employees, err = h.projects.GetAllEmployees(c.Request.Context()); err != nil {
			return dto.ProjectDTO{}, err
		}
	}
	return h.projects.BuildProject(in, employees)
}
