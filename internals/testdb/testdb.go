// Package testdb opens throwaway in-memory SQLite databases for tests,
// migrated to the same schema the real store uses and with foreign key
// enforcement switched on.
package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bookstore-api/internals/models"
)

// Open returns a migrated in-memory database scoped to one test. The
// single-connection pool keeps the in-memory database alive for the
// whole test.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.Name{},
		&models.Address{},
		&models.Author{},
		&models.Customer{},
		&models.Book{},
		&models.BookAuthor{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func strp(s string) *string { return &s }

// NewAuthor inserts a name and author pair.
func NewAuthor(t *testing.T, db *gorm.DB, first, last string) *models.Author {
	t.Helper()
	name := models.Name{FirstName: first, LastName: strp(last)}
	if err := db.Create(&name).Error; err != nil {
		t.Fatalf("seed name: %v", err)
	}
	author := models.Author{NameID: name.ID}
	if err := db.Omit("Name").Create(&author).Error; err != nil {
		t.Fatalf("seed author: %v", err)
	}
	author.Name = name
	return &author
}

// NewBook inserts a book with sane defaults and links it to authors.
func NewBook(t *testing.T, db *gorm.DB, title string, authors ...*models.Author) *models.Book {
	t.Helper()
	book := models.Book{
		ISBN:            "9780000000000",
		Title:           title,
		PublicationYear: 2001,
		Price:           10.00,
		Quantity:        5,
	}
	if err := db.Omit("BookAuthors", "OrderItems").Create(&book).Error; err != nil {
		t.Fatalf("seed book: %v", err)
	}
	for _, author := range authors {
		link := models.BookAuthor{BookID: book.ID, AuthorID: author.ID}
		if err := db.Omit("Book", "Author").Create(&link).Error; err != nil {
			t.Fatalf("seed book author link: %v", err)
		}
	}
	return &book
}

// NewAddress inserts an address.
func NewAddress(t *testing.T, db *gorm.DB, city string) *models.Address {
	t.Helper()
	address := models.Address{
		CountryCode: "US",
		StateCode:   "CA",
		City:        strp(city),
		Street:      "1 Main St",
		Postcode:    "90210",
	}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}
	return &address
}

// NewCustomer inserts a name and customer pair, optionally at an
// address.
func NewCustomer(t *testing.T, db *gorm.DB, email string, addressID *uint) *models.Customer {
	t.Helper()
	name := models.Name{FirstName: "Test", LastName: strp("Customer")}
	if err := db.Create(&name).Error; err != nil {
		t.Fatalf("seed name: %v", err)
	}
	customer := models.Customer{Email: email, NameID: name.ID, AddressID: addressID}
	if err := db.Omit("Name", "Address").Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	customer.Name = name
	return &customer
}

// NewOrder inserts an order with one item per book at quantity 1,
// price total included.
func NewOrder(t *testing.T, db *gorm.DB, customerID uint, books ...*models.Book) *models.Order {
	t.Helper()
	var total float64
	for _, book := range books {
		total += book.Price
	}
	order := models.Order{CustomerID: customerID, PriceTotal: total}
	if err := db.Omit("Customer", "OrderItems").Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	for _, book := range books {
		item := models.OrderItem{OrderID: order.ID, BookID: book.ID, Quantity: 1}
		if err := db.Omit("Book", "Order").Create(&item).Error; err != nil {
			t.Fatalf("seed order item: %v", err)
		}
	}
	return &order
}

// Count returns the number of rows matching the condition.
func Count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
