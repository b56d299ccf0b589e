package initializers

import (
	logger "bookstore-api/loggers"

	"github.com/joho/godotenv"
)

// LoadEnvVariables loads a .env file if present. Missing files are
// fine in deployed environments where variables come from the host.
func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		logger.Logger.Debug("no .env file loaded: ", err)
	}
}
