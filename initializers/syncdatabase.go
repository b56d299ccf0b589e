package initializers

import "bookstore-api/internals/models"

// SyncDatabase synchronizes database tables with the entity models.
// Order matters: referenced tables must exist before the junction
// tables that declare foreign keys against them.
func SyncDatabase() error {
	return DB.AutoMigrate(
		&models.Name{},
		&models.Address{},
		&models.Author{},
		&models.Customer{},
		&models.Book{},
		&models.BookAuthor{},
		&models.Order{},
		&models.OrderItem{},
	)
}
