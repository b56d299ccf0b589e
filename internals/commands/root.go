package commands

import (
	"os"

	"github.com/spf13/cobra"

	"bookstore-api/initializers"
	"bookstore-api/internals/cache"
	"bookstore-api/internals/controllers"
	logger "bookstore-api/loggers"
)

var rootCmd = &cobra.Command{
	Use:   "bookstore-api",
	Short: "Bookstore CRUD API over PostgreSQL",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initializers.LoadEnvVariables()
		initializers.ConnectDatabase()
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, dropCmd)
}

// Execute runs the CLI; the bare command serves the API.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Logger.Fatal(err)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	initializers.ConnectRedis()

	router := controllers.SetupRouter(initializers.DB, cache.New(initializers.Client))
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Logger.Info("serving bookstore api on :", port)
	return router.Run(":" + port)
}
