package service

import (
	"gorm.io/gorm"

	"bookstore-api/internals/integrity"
	"bookstore-api/internals/models"
	"bookstore-api/internals/repository"
)

// CustomerInput is the full payload for creating a customer with its
// nested name.
type CustomerInput struct {
	Email     string
	Phone     *string
	AddressID *uint
	Name      NameInput
}

// CustomerPatch is a partial update. AddressIDSet distinguishes an
// absent address_id from an explicit null (repointing away from the
// current address).
type CustomerPatch struct {
	Email        *string
	Phone        *string
	AddressID    *uint
	AddressIDSet bool
	Name         *NameInput
}

// CreateCustomer creates the owned name first, then the customer row
// referencing it, in one transaction. A dangling address_id surfaces
// as a foreign key constraint error.
func CreateCustomer(db *gorm.DB, input *CustomerInput) (*models.Customer, error) {
	var created *models.Customer
	err := db.Transaction(func(tx *gorm.DB) error {
		name := &models.Name{FirstName: input.Name.FirstName, LastName: input.Name.LastName}
		if err := repository.CreateName(tx, name); err != nil {
			return err
		}

		customer := &models.Customer{
			Email:     input.Email,
			Phone:     input.Phone,
			NameID:    name.ID,
			AddressID: input.AddressID,
		}
		if err := repository.CreateCustomer(tx, customer); err != nil {
			return err
		}

		var err error
		created, err = repository.FindCustomerByID(tx, customer.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func GetCustomer(db *gorm.DB, id uint) (*models.Customer, error) {
	return repository.FindCustomerByID(db, id)
}

func ListCustomers(db *gorm.DB) ([]models.Customer, error) {
	return repository.FindAllCustomers(db)
}

// UpdateCustomer merges nested name fields and scalar fields. When
// the customer is repointed away from an address, the engine checks
// whether that address just lost its last reference.
func UpdateCustomer(db *gorm.DB, id uint, patch *CustomerPatch) (*models.Customer, error) {
	var updated *models.Customer
	err := db.Transaction(func(tx *gorm.DB) error {
		customer, err := repository.FindCustomerByID(tx, id)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			customer.Name.FirstName = patch.Name.FirstName
			customer.Name.LastName = patch.Name.LastName
			if err := repository.SaveName(tx, &customer.Name); err != nil {
				return err
			}
		}
		if patch.Email != nil {
			customer.Email = *patch.Email
		}
		if patch.Phone != nil {
			customer.Phone = patch.Phone
		}

		var repointedFrom *uint
		if patch.AddressIDSet && !sameAddress(customer.AddressID, patch.AddressID) {
			repointedFrom = customer.AddressID
			customer.AddressID = patch.AddressID
		}

		if err := repository.SaveCustomer(tx, customer); err != nil {
			return err
		}
		if repointedFrom != nil {
			if err := integrity.AfterAddressRepoint(tx, *repointedFrom); err != nil {
				return err
			}
		}

		updated, err = repository.FindCustomerByID(tx, customer.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func sameAddress(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DeleteCustomer removes the customer; the post-delete hook cascades
// the owned name away and reclaims the address if this was its last
// referencing customer. RESTRICT on orders.customer_id rejects the
// delete while orders exist.
func DeleteCustomer(db *gorm.DB, id uint) (*models.Customer, error) {
	var deleted *models.Customer
	err := db.Transaction(func(tx *gorm.DB) error {
		customer, err := repository.FindCustomerByID(tx, id)
		if err != nil {
			return err
		}
		deleted = customer
		return repository.DeleteCustomer(tx, customer)
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
