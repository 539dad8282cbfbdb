package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"employee-management/internal/apperr"
	"employee-management/internal/dto"
)

func (c *Console) createProject(ctx context.Context) error {
	var p dto.ProjectDTO
	var err error

	if p.Name, err = c.promptName(""); err != nil {
		return err
	}
	if p.Description, err = c.promptDescription(""); err != nil {
		return err
	}
	if p.Manager, err = c.promptManager(""); err != nil {
		return err
	}
	if p.Status, err = c.promptStatus(""); err != nil {
		return err
	}
	if p.Employees, err = c.promptEmployees(ctx); err != nil {
		if errors.Is(err, apperr.ErrPersistence) {
			return c.fail("load employees", err)
		}
		return err
	}

	id, err := c.svc.CreateProject(ctx, p)
	if err != nil {
		return c.fail("create project", err)
	}
	fmt.Fprintf(c.out, "\n\t\t<<<<<< Project created successfully, id is %d >>>>>>\n", id)
	return nil
}

func (c *Console) viewMenu(ctx context.Context) error {
	return c.menu(ctx, "View Menu", []menuItem{
		{"View Project", c.viewProject},
		{"View All Projects", c.viewAllProjects},
	}, "Back")
}

func (c *Console) deleteMenu(ctx context.Context) error {
	return c.menu(ctx, "Delete Menu", []menuItem{
		{"Delete Project", c.deleteProject},
		{"Delete All Projects", c.deleteAllProjects},
	}, "Back")
}

// ensureProjects prints a notice and reports false when there is nothing to
// show or change.
func (c *Console) ensureProjects(ctx context.Context) (bool, error) {
	empty, err := c.svc.IsProjectDatabaseEmpty(ctx)
	if err != nil {
		return false, c.fail("read projects", err)
	}
	if empty {
		fmt.Fprintln(c.out, noProjects)
		return false, nil
	}
	return true, nil
}

func (c *Console) viewProject(ctx context.Context) error {
	if ok, err := c.ensureProjects(ctx); !ok || err != nil {
		return err
	}

	id, err := c.promptID()
	if err != nil {
		return err
	}
	p, err := c.svc.GetProject(ctx, id)
	if err != nil {
		return c.fail("read project", err)
	}
	if p == nil {
		fmt.Fprintln(c.out, notFound)
		return nil
	}
	c.printProject(*p)
	return nil
}

func (c *Console) viewAllProjects(ctx context.Context) error {
	projects, err := c.svc.GetAllProjects(ctx)
	if err != nil {
		return c.fail("read projects", err)
	}
	if len(projects) == 0 {
		fmt.Fprintln(c.out, noProjects)
		return nil
	}
	for _, p := range projects {
		c.printProject(p)
	}
	return nil
}

// updateProject replaces every field of a project. Blank input keeps the
// current value; the employee list is always chosen again.
func (c *Console) updateProject(ctx context.Context) error {
	if ok, err := c.ensureProjects(ctx); !ok || err != nil {
		return err
	}

	id, err := c.promptID()
	if err != nil {
		return err
	}
	current, err := c.svc.GetProject(ctx, id)
	if err != nil {
		return c.fail("read project", err)
	}
	if current == nil {
		fmt.Fprintln(c.out, notFound)
		return nil
	}

	p := dto.ProjectDTO{ID: id}
	if p.Name, err = c.promptName(current.Name); err != nil {
		return err
	}
	if p.Description, err = c.promptDescription(current.Description); err != nil {
		return err
	}
	if p.Manager, err = c.promptManager(current.Manager); err != nil {
		return err
	}
	if p.Status, err = c.promptStatus(current.Status); err != nil {
		return err
	}
	if p.Employees, err = c.promptEmployees(ctx); err != nil {
		if errors.Is(err, apperr.ErrPersistence) {
			return c.fail("load employees", err)
		}
		return err
	}

	updated, err := c.svc.UpdateProject(ctx, p)
	if err != nil {
		return c.fail("update project", err)
	}
	if !updated {
		fmt.Fprintln(c.out, notFound)
		return nil
	}
	fmt.Fprintln(c.out, "\n\t\t<<<<<< Project updated successfully >>>>>>")
	return nil
}

func (c *Console) deleteProject(ctx context.Context) error {
	if ok, err := c.ensureProjects(ctx); !ok || err != nil {
		return err
	}

	id, err := c.promptID()
	if err != nil {
		return err
	}
	deleted, err := c.svc.DeleteProject(ctx, id)
	if err != nil {
		return c.fail("delete project", err)
	}
	if !deleted {
		fmt.Fprintln(c.out, notFound)
		return nil
	}
	fmt.Fprintln(c.out, "\n\t\t<<<<<< Project deleted successfully >>>>>>")
	return nil
}

func (c *Console) deleteAllProjects(ctx context.Context) error {
	confirmed, err := promptFor(c, "y to delete every project, n to cancel", "Please enter y or n!",
		func(s string) (bool, bool) {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "y", "yes":
				return true, true
			case "n", "no":
				return false, true
			}
			return false, false
		})
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if _, err := c.svc.DeleteAllProjects(ctx); err != nil {
		return c.fail("delete projects", err)
	}
	fmt.Fprintln(c.out, "\n\t\t<<<<<< All projects deleted successfully >>>>>>")
	return nil
}
