package repository

import (
	"gorm.io/gorm"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/models"
)

func CreateName(tx *gorm.DB, name *models.Name) error {
	return apperrors.FromDB(tx.Create(name).Error)
}

func SaveName(tx *gorm.DB, name *models.Name) error {
	return apperrors.FromDB(tx.Save(name).Error)
}

// DeleteName attempts a direct delete. While an author or customer
// still owns the name, the RESTRICT foreign keys reject it; owned
// names only go away through their owner's delete cascade.
func DeleteName(tx *gorm.DB, name *models.Name) error {
	return apperrors.FromDB(tx.Delete(name).Error)
}
