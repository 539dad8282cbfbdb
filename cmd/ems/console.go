package main

import (
	"os"

	"employee-management/internal/console"
	"employee-management/internal/repository"
	"employee-management/internal/service"

	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive projects menu",
	Long: `Start the interactive projects menu on standard input and output.

Examples:
  # Against the configured postgres database
  ems console

  # Against a local sqlite file
  DB_DRIVER=sqlite SQLITE_PATH=./ems.db ems console`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	_, db, err := bootstrap(ctx, true)
	if err != nil {
		return err
	}
	defer closeDB(db)

	svc := service.NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewEmployeeRepository(db),
	)
	return console.New(svc, os.Stdin, os.Stdout).Run(ctx)
}
