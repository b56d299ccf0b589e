package commands

import (
	"github.com/spf13/cobra"

	"bookstore-api/initializers"
	logger "bookstore-api/loggers"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update all database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initializers.SyncDatabase(); err != nil {
			return err
		}
		logger.Logger.Info("database schema is up to date")
		return nil
	},
}
