package repository

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/models"
)

func CreateAuthor(tx *gorm.DB, author *models.Author) error {
	return apperrors.FromDB(tx.Omit("Name").Create(author).Error)
}

// FindAuthorByName matches an author on exact first and last name so
// composite book operations reuse authors instead of duplicating
// them. Returns nil without error when there is no match.
func FindAuthorByName(tx *gorm.DB, firstName string, lastName *string) (*models.Author, error) {
	query := tx.Model(&models.Author{}).
		Joins("JOIN names ON names.id = authors.name_id").
		Where("names.first_name = ?", firstName)
	if lastName == nil {
		query = query.Where("names.last_name IS NULL")
	} else {
		query = query.Where("names.last_name = ?", *lastName)
	}

	var author models.Author
	if err := query.First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.FromDB(err)
	}
	return &author, nil
}
