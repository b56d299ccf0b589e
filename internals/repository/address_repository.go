package repository

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/models"
)

func CreateAddress(tx *gorm.DB, address *models.Address) error {
	return apperrors.FromDB(tx.Create(address).Error)
}

func FindAddressByID(tx *gorm.DB, id uint) (*models.Address, error) {
	var address models.Address
	if err := tx.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "Address", ID: id}
		}
		return nil, apperrors.FromDB(err)
	}
	return &address, nil
}

func FindAllAddresses(tx *gorm.DB) ([]models.Address, error) {
	var addresses []models.Address
	if err := tx.Order("id").Find(&addresses).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return addresses, nil
}

func SaveAddress(tx *gorm.DB, address *models.Address) error {
	return apperrors.FromDB(tx.Save(address).Error)
}

// DeleteAddress removes the row directly. Customers pointing at it
// get address_id nulled by the store-level SET NULL action.
func DeleteAddress(tx *gorm.DB, address *models.Address) error {
	return apperrors.FromDB(tx.Delete(address).Error)
}
