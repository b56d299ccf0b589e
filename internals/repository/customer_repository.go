package repository

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/integrity"
	"bookstore-api/internals/models"
)

func CreateCustomer(tx *gorm.DB, customer *models.Customer) error {
	return apperrors.FromDB(tx.Omit("Name", "Address").Create(customer).Error)
}

func FindCustomerByID(tx *gorm.DB, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := tx.Preload("Name").First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "Customer", ID: id}
		}
		return nil, apperrors.FromDB(err)
	}
	return &customer, nil
}

func FindAllCustomers(tx *gorm.DB) ([]models.Customer, error) {
	var customers []models.Customer
	if err := tx.Preload("Name").Order("id").Find(&customers).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return customers, nil
}

func SaveCustomer(tx *gorm.DB, customer *models.Customer) error {
	return apperrors.FromDB(tx.Omit("Name", "Address").Save(customer).Error)
}

// DeleteCustomer removes the row and runs the post-delete integrity
// hook in the same transaction: the owned name is cascaded away and
// the address reclaimed if no other customer references it. RESTRICT
// on orders.customer_id rejects the delete while orders exist.
func DeleteCustomer(tx *gorm.DB, customer *models.Customer) error {
	if err := tx.Delete(customer).Error; err != nil {
		return apperrors.FromDB(err)
	}
	return apperrors.FromDB(integrity.AfterCustomerDelete(tx, customer))
}
