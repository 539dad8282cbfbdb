// Package console is the line oriented menu for managing projects. Every
// prompt repeats until the input is valid; store failures are reported and
// the user is returned to the menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"employee-management/internal/dto"
	"employee-management/internal/models"
	"employee-management/internal/service"
	"employee-management/internal/validation"

	"github.com/rs/zerolog/log"
)

const (
	invalidOption = "\n\t\t<<<<<< Please enter a valid option! >>>>>>"
	noProjects    = "\n\t\t<<<<<< No projects found! >>>>>>"
	notFound      = "\n\t\t<<<<<< Project not found! >>>>>>"
)

type Console struct {
	svc service.ProjectService
	in  *bufio.Reader
	out io.Writer
}

func New(svc service.ProjectService, in io.Reader, out io.Writer) *Console {
	return &Console{svc: svc, in: bufio.NewReader(in), out: out}
}

// Run shows the projects menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	err := c.menu(ctx, "Projects Menu", []menuItem{
		{"Create Project", c.createProject},
		{"Go To View Menu", c.viewMenu},
		{"Update Project", c.updateProject},
		{"Go To Delete Menu", c.deleteMenu},
	}, "Exit")
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type menuItem struct {
	label  string
	action func(context.Context) error
}

// menu numbers items from 1 and adds a final entry that leaves the menu.
func (c *Console) menu(ctx context.Context, title string, items []menuItem, leave string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\t\t\t\\ %s /\n\t\t\t %s\n", title, strings.Repeat("~", len(title)))
	for i, item := range items {
		fmt.Fprintf(&b, "\n\t\t%d => %s", i+1, item.label)
	}
	fmt.Fprintf(&b, "\n\t\t%d => %s\n\n\t\tEnter The Choice : ", len(items)+1, leave)

	for {
		fmt.Fprint(c.out, b.String())
		line, err := c.readLine()
		if err != nil {
			return err
		}

		choice, ok := validation.ValidateID(line)
		switch {
		case !ok || choice > len(items)+1:
			fmt.Fprintln(c.out, invalidOption)
		case choice == len(items)+1:
			return nil
		default:
			if err := items[choice-1].action(ctx); err != nil {
				return err
			}
		}
	}
}

// readLine returns the next line without its line ending. Lines of any
// length are accepted; the validators reject the overlong ones. A last line
// without a newline is still returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptFor asks for label until parse accepts the line.
func promptFor[T any](c *Console, label, errMsg string, parse func(string) (T, bool)) (T, error) {
	for {
		fmt.Fprintf(c.out, "\n\t\t Enter %s : ", label)
		line, err := c.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		if v, ok := parse(line); ok {
			return v, nil
		}
		fmt.Fprintf(c.out, "\n\t\t<<<<<< %s >>>>>>\n", errMsg)
	}
}

// keep lets a blank line stand for the current value.
func keep[T any](current T, parse func(string) (T, bool)) func(string) (T, bool) {
	return func(s string) (T, bool) {
		if strings.TrimSpace(s) == "" {
			return current, true
		}
		return parse(s)
	}
}

func (c *Console) promptID() (int, error) {
	return promptFor(c, "Project Id",
		"Please enter a valid non negative integer, 0 is not allowed!",
		c.svc.ValidateID)
}

func (c *Console) promptName(current string) (string, error) {
	parse := c.svc.ValidateName
	label := "Project Name"
	if current != "" {
		parse = keep(current, parse)
		label = fmt.Sprintf("Project Name [%s]", current)
	}
	return promptFor(c, label, "Please enter a valid name!", parse)
}

func (c *Console) promptDescription(current string) (string, error) {
	parse := c.svc.ValidateDescription
	label := "Project Description"
	if current != "" {
		parse = keep(current, parse)
		label = "Project Description [enter to keep]"
	}
	return promptFor(c, label,
		"Description must have at least 10 letters and at most 300 characters!", parse)
}

func (c *Console) promptManager(current string) (string, error) {
	parse := c.svc.ValidateManager
	label := "Project Manager Name"
	if current != "" {
		parse = keep(current, parse)
		label = fmt.Sprintf("Project Manager Name [%s]", current)
	}
	return promptFor(c, label, "Please enter a valid name!", parse)
}

func (c *Console) promptStatus(current models.ProjectStatus) (models.ProjectStatus, error) {
	names := make([]string, len(models.ProjectStatuses))
	for i, st := range models.ProjectStatuses {
		names[i] = string(st)
	}
	parse := c.svc.ValidateStatus
	label := fmt.Sprintf("Project Status (%s)", strings.Join(names, ", "))
	if current != "" {
		parse = keep(current, parse)
		label = fmt.Sprintf("Project Status (%s) [%s]", strings.Join(names, ", "), current)
	}
	return promptFor(c, label, "Please enter a valid status!", parse)
}

// promptEmployees lists every employee and lets the user pick any number of
// them by position. Selection starts from an empty set.
func (c *Console) promptEmployees(ctx context.Context) ([]dto.EmployeeDTO, error) {
	employees, err := c.svc.GetAllEmployees(ctx)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return []dto.EmployeeDTO{}, nil
	}

	for i, e := range employees {
		fmt.Fprintf(c.out, "\n\t\t%d => %s", i+1, describeEmployee(e))
	}
	fmt.Fprintln(c.out)

	indexes, err := promptFor(c,
		"Employee Numbers To Assign, separated by comma (e.g. 1, 2, 3) or blank for none",
		"Invalid selection!",
		func(s string) ([]int, bool) { return validation.ParseSelection(s, len(employees)) })
	if err != nil {
		return nil, err
	}

	selected := make([]dto.EmployeeDTO, len(indexes))
	for i, idx := range indexes {
		selected[i] = employees[idx]
	}
	return selected, nil
}

// fail reports a store failure to the user. It returns nil so the caller can
// go back to the menu.
func (c *Console) fail(action string, err error) error {
	log.Error().Err(err).Str("action", action).Msg("project operation failed")
	fmt.Fprintf(c.out, "\n\t\t<<<<<< Unable to %s, please try again later! >>>>>>\n", action)
	return nil
}

func describeEmployee(e dto.EmployeeDTO) string {
	if e.Designation == "" {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Designation)
}

func (c *Console) printProject(p dto.ProjectDTO) {
	names := make([]string, len(p.Employees))
	for i, e := range p.Employees {
		names[i] = e.Name
	}
	employees := strings.Join(names, ", ")
	if employees == "" {
		employees = "-"
	}

	fmt.Fprintf(c.out, "\n\t\tId          : %d", p.ID)
	fmt.Fprintf(c.out, "\n\t\tName        : %s", p.Name)
	fmt.Fprintf(c.out, "\n\t\tDescription : %s", p.Description)
	fmt.Fprintf(c.out, "\n\t\tManager     : %s", p.Manager)
	fmt.Fprintf(c.out, "\n\t\tStatus      : %s", p.Status.Label())
	fmt.Fprintf(c.out, "\n\t\tEmployees   : %s\n", employees)
}
