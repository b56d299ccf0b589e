package repository

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/integrity"
	"bookstore-api/internals/models"
)

func CreateBookAuthor(tx *gorm.DB, bookAuthor *models.BookAuthor) error {
	return apperrors.FromDB(tx.Omit("Book", "Author").Create(bookAuthor).Error)
}

// FindBookAuthor looks up a junction row by its composite key,
// returning nil without error when the link does not exist.
func FindBookAuthor(tx *gorm.DB, bookID, authorID uint) (*models.BookAuthor, error) {
	var bookAuthor models.BookAuthor
	err := tx.Where("book_id = ? AND author_id = ?", bookID, authorID).First(&bookAuthor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.FromDB(err)
	}
	return &bookAuthor, nil
}

// DeleteBookAuthor removes the junction row and immediately runs the
// engine's orphan checks for both the author and the book side, in
// the same transaction, so the existence queries see the post-delete
// state before anything commits.
func DeleteBookAuthor(tx *gorm.DB, bookAuthor *models.BookAuthor) error {
	err := tx.Where("book_id = ? AND author_id = ?", bookAuthor.BookID, bookAuthor.AuthorID).
		Delete(&models.BookAuthor{}).Error
	if err != nil {
		return apperrors.FromDB(err)
	}
	return apperrors.FromDB(integrity.AfterBookAuthorDelete(tx, bookAuthor))
}
