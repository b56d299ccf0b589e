package commands

import (
	"github.com/spf13/cobra"

	"bookstore-api/initializers"
	"bookstore-api/internals/models"
	logger "bookstore-api/loggers"
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop all database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := initializers.DB.Migrator().DropTable(
			&models.OrderItem{},
			&models.Order{},
			&models.BookAuthor{},
			&models.Book{},
			&models.Customer{},
			&models.Author{},
			&models.Address{},
			&models.Name{},
		)
		if err != nil {
			return err
		}
		logger.Logger.Info("dropped all tables")
		return nil
	},
}
