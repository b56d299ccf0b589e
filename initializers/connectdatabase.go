package initializers

import (
	"os"

	logger "bookstore-api/loggers"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the postgres connection from DATABASE_URL.
// TranslateError maps driver constraint violations onto gorm's
// ErrDuplicatedKey / ErrForeignKeyViolated sentinels so the error
// taxonomy works the same across drivers.
func ConnectDatabase() {
	var err error
	dsn := os.Getenv("DATABASE_URL")
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Logger.Error("failed to connect to database: ", err)
		panic("failed to connect to database")
	}
}
