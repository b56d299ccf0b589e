package service

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/models"
	"bookstore-api/internals/repository"
)

// OrderItemInput references a book with an optional quantity that
// defaults to 1.
type OrderItemInput struct {
	BookID   uint
	Quantity *int
}

// OrderInput is the payload for creating an order. Handlers reject
// empty item lists before this layer runs.
type OrderInput struct {
	CustomerID uint
	Items      []OrderItemInput
}

// OrderUpdate replaces an order's item set. CustomerID is only
// accepted when it matches the existing value; orders never move
// between customers.
type OrderUpdate struct {
	CustomerID *uint
	Items      []OrderItemInput
}

func itemQuantity(item OrderItemInput) int {
	if item.Quantity == nil {
		return 1
	}
	return *item.Quantity
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CreateOrder creates the order and one item row per entry, computing
// price_total from the referenced books' current prices. The order
// date is set server-side by the column default.
func CreateOrder(db *gorm.DB, input *OrderInput) (*models.Order, error) {
	var created *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, input.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.NotFoundError{Resource: "Customer", ID: input.CustomerID}
			}
			return apperrors.FromDB(err)
		}

		order := &models.Order{CustomerID: input.CustomerID}
		if err := repository.CreateOrder(tx, order); err != nil {
			return err
		}

		total := 0.0
		for _, item := range input.Items {
			var book models.Book
			if err := tx.First(&book, item.BookID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &apperrors.NotFoundError{Resource: "Book", ID: item.BookID}
				}
				return apperrors.FromDB(err)
			}
			quantity := itemQuantity(item)
			total += book.Price * float64(quantity)

			row := &models.OrderItem{BookID: book.ID, OrderID: order.ID, Quantity: quantity}
			if err := repository.CreateOrderItem(tx, row); err != nil {
				return err
			}
		}

		order.PriceTotal = round2(total)
		if err := repository.SaveOrder(tx, order); err != nil {
			return err
		}

		var err error
		created, err = repository.FindOrderByID(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func GetOrder(db *gorm.DB, id uint) (*models.Order, error) {
	return repository.FindOrderByID(db, id)
}

func ListOrders(db *gorm.DB) ([]models.Order, error) {
	return repository.FindAllOrders(db)
}

// UpdateOrder merges the new item set into the existing one: matching
// book ids update quantity, new ones are created, absent ones are
// deleted through the store so the order-orphan hook runs, and
// price_total is recomputed from what remains. Duplicated book ids
// are rejected so the cached total always equals the item sum.
func UpdateOrder(db *gorm.DB, id uint, update *OrderUpdate) (*models.Order, error) {
	var updated *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		order, err := repository.FindOrderByID(tx, id)
		if err != nil {
			return err
		}

		if update.CustomerID != nil && *update.CustomerID != order.CustomerID {
			return apperrors.NewValidation("customer_id", "cannot change customer_id on current order")
		}

		total := 0.0
		checked := make(map[uint]bool, len(update.Items))

		for _, item := range update.Items {
			if checked[item.BookID] {
				return apperrors.NewValidation(
					"order_items", fmt.Sprintf("book with ID %d is duplicated", item.BookID))
			}
			checked[item.BookID] = true
			quantity := itemQuantity(item)

			var existing *models.OrderItem
			for i := range order.OrderItems {
				if order.OrderItems[i].BookID == item.BookID {
					existing = &order.OrderItems[i]
					break
				}
			}

			if existing == nil {
				var book models.Book
				if err := tx.First(&book, item.BookID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return &apperrors.NotFoundError{Resource: "Book", ID: item.BookID}
					}
					return apperrors.FromDB(err)
				}
				row := &models.OrderItem{BookID: book.ID, OrderID: order.ID, Quantity: quantity}
				if err := repository.CreateOrderItem(tx, row); err != nil {
					return err
				}
				total += book.Price * float64(quantity)
				continue
			}

			existing.Quantity = quantity
			if err := repository.SaveOrderItem(tx, existing); err != nil {
				return err
			}
			total += existing.Book.Price * float64(quantity)
		}

		// Items omitted from the request are removed. The handler
		// guarantees the request carried at least one item, so the
		// orphan check never reclaims the order here.
		for i := range order.OrderItems {
			if !checked[order.OrderItems[i].BookID] {
				if err := repository.DeleteOrderItem(tx, &order.OrderItems[i]); err != nil {
					return err
				}
			}
		}

		order.PriceTotal = round2(total)
		if err := repository.SaveOrder(tx, order); err != nil {
			return err
		}

		updated, err = repository.FindOrderByID(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOrder deletes every item through the store; the order-orphan
// hook removes the order itself with the last item. The explicit
// delete afterwards only fires if the engine somehow left the row.
func DeleteOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var deleted *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		order, err := repository.FindOrderByID(tx, id)
		if err != nil {
			return err
		}
		deleted = order

		for i := range order.OrderItems {
			if err := repository.DeleteOrderItem(tx, &order.OrderItems[i]); err != nil {
				return err
			}
		}

		exists, err := repository.OrderExists(tx, order.ID)
		if err != nil {
			return err
		}
		if exists {
			return repository.DeleteOrder(tx, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
