package main

import (
	"github.com/deppfellow/timesheet/internal/database"
	"github.com/deppfellow/timesheet/internal/lib/utils"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		return database.Migrate(cmd.Context(), &rt.logger, rt.cfg.Database.DSN())
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every table and recreate the empty schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		return database.Reset(cmd.Context(), &rt.logger, rt.cfg.Database.DSN())
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the schema and load the sample developers, projects and time entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		defer rt.loggerService.Shutdown()

		ctx := cmd.Context()
		if err := database.Reset(ctx, &rt.logger, rt.cfg.Database.DSN()); err != nil {
			return err
		}

		db, err := database.New(rt.cfg, &rt.logger, rt.loggerService)
		if err != nil {
			return err
		}
		defer db.Close()

		summary, err := db.Seed(ctx)
		if err != nil {
			return err
		}

		rt.logger.Info().Msg("database seeded")
		utils.PrintJSON(summary)
		return nil
	},
}
