package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/models"
	"bookstore-api/internals/service"
	"bookstore-api/internals/testdb"
)

func intp(i int) *int { return &i }

func setPrice(t *testing.T, db *gorm.DB, book *models.Book, price float64) {
	t.Helper()
	require.NoError(t, db.Model(book).Update("price", price).Error)
	book.Price = price
}

func TestCreateOrderComputesPriceTotal(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Brandon", "Sanderson")
	kings := testdb.NewBook(t, db, "The Way of Kings", author)
	radiance := testdb.NewBook(t, db, "Words of Radiance", author)
	setPrice(t, db, kings, 10.00)
	setPrice(t, db, radiance, 5.00)
	customer := testdb.NewCustomer(t, db, "alice@example.com", nil)

	order, err := service.CreateOrder(db, &service.OrderInput{
		CustomerID: customer.ID,
		Items: []service.OrderItemInput{
			{BookID: kings.ID, Quantity: intp(2)},
			{BookID: radiance.ID},
		},
	})
	require.NoError(t, err)

	// 2 x 10.00 + 1 x 5.00, the omitted quantity defaults to one.
	assert.InDelta(t, 25.00, order.PriceTotal, 0.001)
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, 2, order.OrderItems[0].Quantity)
	assert.Equal(t, 1, order.OrderItems[1].Quantity)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Mark", "Lawrence")
	book := testdb.NewBook(t, db, "Prince of Thorns", author)

	_, err := service.CreateOrder(db, &service.OrderInput{
		CustomerID: 42,
		Items:      []service.OrderItemInput{{BookID: book.ID}},
	})

	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Customer", nf.Resource)
}

func TestCreateOrderUnknownBookRollsBack(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Mark", "Lawrence")
	book := testdb.NewBook(t, db, "King of Thorns", author)
	customer := testdb.NewCustomer(t, db, "bob@example.com", nil)

	_, err := service.CreateOrder(db, &service.OrderInput{
		CustomerID: customer.ID,
		Items: []service.OrderItemInput{
			{BookID: book.ID},
			{BookID: 999},
		},
	})

	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Book", nf.Resource)
	assert.EqualValues(t, 0, testdb.Count(t, db, &models.Order{}, ""))
	assert.EqualValues(t, 0, testdb.Count(t, db, &models.OrderItem{}, ""))
}

func TestUpdateOrderRecomputesPriceTotal(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Patrick", "Rothfuss")
	wind := testdb.NewBook(t, db, "The Name of the Wind", author)
	fear := testdb.NewBook(t, db, "The Wise Man's Fear", author)
	setPrice(t, db, wind, 10.00)
	setPrice(t, db, fear, 5.00)
	customer := testdb.NewCustomer(t, db, "carol@example.com", nil)

	order, err := service.CreateOrder(db, &service.OrderInput{
		CustomerID: customer.ID,
		Items: []service.OrderItemInput{
			{BookID: wind.ID, Quantity: intp(2)},
			{BookID: fear.ID},
		},
	})
	require.NoError(t, err)
	require.InDelta(t, 25.00, order.PriceTotal, 0.001)

	updated, err := service.UpdateOrder(db, order.ID, &service.OrderUpdate{
		Items: []service.OrderItemInput{{BookID: fear.ID, Quantity: intp(3)}},
	})
	require.NoError(t, err)

	// The first book's item is gone and the total tracks what remains.
	assert.InDelta(t, 15.00, updated.PriceTotal, 0.001)
	require.Len(t, updated.OrderItems, 1)
	assert.Equal(t, fear.ID, updated.OrderItems[0].BookID)
	assert.Equal(t, 3, updated.OrderItems[0].Quantity)
}

func TestUpdateOrderRejectsDuplicateBooks(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Robert", "Jordan")
	book := testdb.NewBook(t, db, "The Eye of the World", author)
	customer := testdb.NewCustomer(t, db, "dave@example.com", nil)

	order, err := service.CreateOrder(db, &service.OrderInput{
		CustomerID: customer.ID,
		Items:      []service.OrderItemInput{{BookID: book.ID}},
	})
	require.NoError(t, err)

	_, err = service.UpdateOrder(db, order.ID, &service.OrderUpdate{
		Items: []service.OrderItemInput{
			{BookID: book.ID, Quantity: intp(1)},
			{BookID: book.ID, Quantity: intp(2)},
		},
	})

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields["order_items"], "duplicated")
}

func TestUpdateOrderRejectsCustomerChange(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Robert", "Jordan")
	book := testdb.NewBook(t, db, "The Great Hunt", author)
	owner := testdb.NewCustomer(t, db, "owner@example.com", nil)
	other := testdb.NewCustomer(t, db, "other@example.com", nil)

	order, err := service.CreateOrder(db, &service.OrderInput{
		CustomerID: owner.ID,
		Items:      []service.OrderItemInput{{BookID: book.ID}},
	})
	require.NoError(t, err)

	_, err = service.UpdateOrder(db, order.ID, &service.OrderUpdate{
		CustomerID: &other.ID,
		Items:      []service.OrderItemInput{{BookID: book.ID}},
	})

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "customer_id")
}

func TestUpdateOrderUnknownOrder(t *testing.T) {
	db := testdb.Open(t)

	_, err := service.UpdateOrder(db, 7, &service.OrderUpdate{
		Items: []service.OrderItemInput{{BookID: 1}},
	})

	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Order", nf.Resource)
}

func TestDeleteOrderRemovesOrderAndItems(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Terry", "Pratchett")
	book := testdb.NewBook(t, db, "Mort", author)
	customer := testdb.NewCustomer(t, db, "erin@example.com", nil)

	order, err := service.CreateOrder(db, &service.OrderInput{
		CustomerID: customer.ID,
		Items:      []service.OrderItemInput{{BookID: book.ID, Quantity: intp(2)}},
	})
	require.NoError(t, err)

	deleted, err := service.DeleteOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, deleted.ID)

	assert.EqualValues(t, 0, testdb.Count(t, db, &models.Order{}, ""))
	assert.EqualValues(t, 0, testdb.Count(t, db, &models.OrderItem{}, ""))
	// Books and customers are untouched by an order delete.
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Book{}, ""))
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Customer{}, ""))
}
