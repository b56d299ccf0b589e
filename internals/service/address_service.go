package service

import (
	"gorm.io/gorm"

	"bookstore-api/internals/models"
	"bookstore-api/internals/repository"
)

// AddressInput is the full payload for creating or replacing an
// address, already normalized by the validation layer.
type AddressInput struct {
	CountryCode string
	StateCode   string
	City        *string
	Street      string
	Postcode    string
}

// AddressPatch is a partial update; nil fields stay unchanged. City
// is nullable, so CitySet marks "city was provided" (possibly as
// null) against "city was absent".
type AddressPatch struct {
	CountryCode *string
	StateCode   *string
	City        *string
	CitySet     bool
	Street      *string
	Postcode    *string
}

func CreateAddress(db *gorm.DB, input *AddressInput) (*models.Address, error) {
	address := &models.Address{
		CountryCode: input.CountryCode,
		StateCode:   input.StateCode,
		City:        input.City,
		Street:      input.Street,
		Postcode:    input.Postcode,
	}
	if err := repository.CreateAddress(db, address); err != nil {
		return nil, err
	}
	return address, nil
}

func GetAddress(db *gorm.DB, id uint) (*models.Address, error) {
	return repository.FindAddressByID(db, id)
}

func ListAddresses(db *gorm.DB) ([]models.Address, error) {
	return repository.FindAllAddresses(db)
}

func UpdateAddress(db *gorm.DB, id uint, patch *AddressPatch) (*models.Address, error) {
	var updated *models.Address
	err := db.Transaction(func(tx *gorm.DB) error {
		address, err := repository.FindAddressByID(tx, id)
		if err != nil {
			return err
		}
		if patch.CountryCode != nil {
			address.CountryCode = *patch.CountryCode
		}
		if patch.StateCode != nil {
			address.StateCode = *patch.StateCode
		}
		if patch.CitySet {
			address.City = patch.City
		}
		if patch.Street != nil {
			address.Street = *patch.Street
		}
		if patch.Postcode != nil {
			address.Postcode = *patch.Postcode
		}
		if err := repository.SaveAddress(tx, address); err != nil {
			return err
		}
		updated = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAddress removes the row; the store-level SET NULL action
// clears address_id on any customer still pointing at it.
func DeleteAddress(db *gorm.DB, id uint) (*models.Address, error) {
	var deleted *models.Address
	err := db.Transaction(func(tx *gorm.DB) error {
		address, err := repository.FindAddressByID(tx, id)
		if err != nil {
			return err
		}
		deleted = address
		return repository.DeleteAddress(tx, address)
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
