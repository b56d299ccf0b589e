package repository

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/models"
)

func CreateBook(tx *gorm.DB, book *models.Book) error {
	return apperrors.FromDB(tx.Omit("BookAuthors", "OrderItems").Create(book).Error)
}

// FindBookByID loads a book with its author links, authors and names.
// Junction rows come back in author id order so positional author
// updates are deterministic.
func FindBookByID(tx *gorm.DB, id uint) (*models.Book, error) {
	var book models.Book
	err := tx.
		Preload("BookAuthors", func(db *gorm.DB) *gorm.DB { return db.Order("author_id") }).
		Preload("BookAuthors.Author.Name").
		First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "Book", ID: id}
		}
		return nil, apperrors.FromDB(err)
	}
	return &book, nil
}

func FindAllBooks(tx *gorm.DB) ([]models.Book, error) {
	var books []models.Book
	err := tx.
		Preload("BookAuthors", func(db *gorm.DB) *gorm.DB { return db.Order("author_id") }).
		Preload("BookAuthors.Author.Name").
		Order("id").Find(&books).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return books, nil
}

func SaveBook(tx *gorm.DB, book *models.Book) error {
	return apperrors.FromDB(tx.Omit("BookAuthors", "OrderItems").Save(book).Error)
}

// DeleteBook removes the book row only. Callers delete the junction
// rows first so the integrity hooks fire per junction; a book already
// reclaimed by the engine deletes zero rows here, which is fine.
func DeleteBook(tx *gorm.DB, book *models.Book) error {
	return apperrors.FromDB(tx.Delete(&models.Book{}, book.ID).Error)
}
