package repository

import (
	"errors"

	"gorm.io/gorm"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/integrity"
	"bookstore-api/internals/models"
)

func CreateOrder(tx *gorm.DB, order *models.Order) error {
	return apperrors.FromDB(tx.Omit("OrderItems", "Customer").Create(order).Error)
}

func FindOrderByID(tx *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := tx.
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("book_id") }).
		Preload("OrderItems.Book").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "Order", ID: id}
		}
		return nil, apperrors.FromDB(err)
	}
	return &order, nil
}

func FindAllOrders(tx *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := tx.
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("book_id") }).
		Preload("OrderItems.Book").
		Order("id").Find(&orders).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return orders, nil
}

// OrderExists reports whether the order row is still present; used by
// delete flows because the integrity engine may have reclaimed the
// order already.
func OrderExists(tx *gorm.DB, id uint) (bool, error) {
	var found bool
	err := tx.Model(&models.Order{}).Select("count(1) > 0").Where("id = ?", id).Find(&found).Error
	return found, apperrors.FromDB(err)
}

func SaveOrder(tx *gorm.DB, order *models.Order) error {
	return apperrors.FromDB(tx.Omit("OrderItems", "Customer").Save(order).Error)
}

func DeleteOrder(tx *gorm.DB, order *models.Order) error {
	return apperrors.FromDB(tx.Delete(&models.Order{}, order.ID).Error)
}

func CreateOrderItem(tx *gorm.DB, item *models.OrderItem) error {
	return apperrors.FromDB(tx.Omit("Book", "Order").Create(item).Error)
}

func SaveOrderItem(tx *gorm.DB, item *models.OrderItem) error {
	return apperrors.FromDB(tx.Omit("Book", "Order").Save(item).Error)
}

// DeleteOrderItem removes the junction row and runs the order orphan
// check synchronously in the same transaction.
func DeleteOrderItem(tx *gorm.DB, item *models.OrderItem) error {
	err := tx.Where("book_id = ? AND order_id = ?", item.BookID, item.OrderID).
		Delete(&models.OrderItem{}).Error
	if err != nil {
		return apperrors.FromDB(err)
	}
	return apperrors.FromDB(integrity.AfterOrderItemDelete(tx, item))
}
