package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and seed data",
	Long: `Create or update the database schema, then create the admin account and
the demo employees if they are missing. Safe to run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, err := bootstrap(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer closeDB(db)

		log.Info().Msg("database schema is up to date")
		return nil
	},
}
