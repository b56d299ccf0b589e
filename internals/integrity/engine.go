// Package integrity reclaims orphaned rows after delete events. The
// declarative FK actions on the schema cannot express "delete only if
// now unreferenced", so each hook here runs the conditional check
// procedurally: inside the same transaction as the triggering delete,
// after that delete is flushed and before the transaction commits.
//
// The repository layer invokes these hooks synchronously after every
// delete of a BookAuthor, Customer or OrderItem row. A failed check
// or cleanup is always propagated so the enclosing transaction rolls
// back with the triggering delete; no partial cleanup ever persists.
package integrity

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-api/internals/models"
	logger "bookstore-api/loggers"
)

// referenced reports whether any row of model matches the condition,
// using the transactional handle so it sees the post-delete state.
func referenced(tx *gorm.DB, model any, query string, args ...any) (bool, error) {
	var found bool
	err := tx.Model(model).Select("count(1) > 0").Where(query, args...).Find(&found).Error
	return found, err
}

// AfterBookAuthorDelete runs both orphan checks for a removed junction
// row. The checks are independent: one junction deletion can orphan
// the author, the book, both or neither, so both sides always run.
func AfterBookAuthorDelete(tx *gorm.DB, deleted *models.BookAuthor) error {
	linked, err := referenced(tx, &models.BookAuthor{}, "author_id = ?", deleted.AuthorID)
	if err != nil {
		return err
	}
	if !linked {
		if err := reapAuthor(tx, deleted.AuthorID); err != nil {
			return err
		}
	}

	linked, err = referenced(tx, &models.BookAuthor{}, "book_id = ?", deleted.BookID)
	if err != nil {
		return err
	}
	if !linked {
		// The book may already be mid-deletion by the caller; deleting
		// a row that is gone affects zero rows, which is fine.
		if err := tx.Delete(&models.Book{}, deleted.BookID).Error; err != nil {
			return err
		}
		logger.Logger.Debugf("integrity: reclaimed orphaned book %d", deleted.BookID)
	}
	return nil
}

// AfterCustomerDelete cascades the customer's owned name away and
// reclaims the customer's address if no other customer references it.
func AfterCustomerDelete(tx *gorm.DB, deleted *models.Customer) error {
	if err := tx.Delete(&models.Name{}, deleted.NameID).Error; err != nil {
		return err
	}

	if deleted.AddressID == nil {
		return nil
	}
	inUse, err := referenced(tx, &models.Customer{}, "address_id = ?", *deleted.AddressID)
	if err != nil {
		return err
	}
	if !inUse {
		if err := tx.Delete(&models.Address{}, *deleted.AddressID).Error; err != nil {
			return err
		}
		logger.Logger.Debugf("integrity: reclaimed orphaned address %d", *deleted.AddressID)
	}
	return nil
}

// AfterAddressRepoint reclaims an address after a customer stopped
// pointing at it, the update-side twin of the delete-side check: an
// address lives only while at least one customer references it.
func AfterAddressRepoint(tx *gorm.DB, oldAddressID uint) error {
	inUse, err := referenced(tx, &models.Customer{}, "address_id = ?", oldAddressID)
	if err != nil {
		return err
	}
	if !inUse {
		if err := tx.Delete(&models.Address{}, oldAddressID).Error; err != nil {
			return err
		}
		logger.Logger.Debugf("integrity: reclaimed orphaned address %d", oldAddressID)
	}
	return nil
}

// AfterOrderItemDelete deletes the order once its last item is gone.
func AfterOrderItemDelete(tx *gorm.DB, deleted *models.OrderItem) error {
	linked, err := referenced(tx, &models.OrderItem{}, "order_id = ?", deleted.OrderID)
	if err != nil {
		return err
	}
	if !linked {
		if err := tx.Delete(&models.Order{}, deleted.OrderID).Error; err != nil {
			return err
		}
		logger.Logger.Debugf("integrity: reclaimed orphaned order %d", deleted.OrderID)
	}
	return nil
}

// reapAuthor removes an orphaned author together with its owned name.
// The author row goes first so the RESTRICT on name_id is satisfied.
// An author that is already gone counts as reclaimed.
func reapAuthor(tx *gorm.DB, authorID uint) error {
	var author models.Author
	if err := tx.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Delete(&models.Author{}, author.ID).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Name{}, author.NameID).Error; err != nil {
		return err
	}
	logger.Logger.Debugf("integrity: reclaimed orphaned author %d", author.ID)
	return nil
}
