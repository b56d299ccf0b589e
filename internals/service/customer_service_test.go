package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internals/models"
	"bookstore-api/internals/service"
	"bookstore-api/internals/testdb"
)

func TestCreateCustomerCreatesOwnedName(t *testing.T) {
	db := testdb.Open(t)
	address := testdb.NewAddress(t, db, "Toronto")

	customer, err := service.CreateCustomer(db, &service.CustomerInput{
		Email:     "alice.smith@example.com",
		Phone:     strp("+61412345678"),
		AddressID: &address.ID,
		Name:      service.NameInput{FirstName: "Alice", LastName: strp("Smith")},
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", customer.Name.FirstName)
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Name{}, ""))
	require.NotNil(t, customer.AddressID)
	assert.Equal(t, address.ID, *customer.AddressID)
}

func TestCreateCustomerRejectsDanglingAddress(t *testing.T) {
	db := testdb.Open(t)

	missing := uint(99)
	_, err := service.CreateCustomer(db, &service.CustomerInput{
		Email:     "ghost@example.com",
		AddressID: &missing,
		Name:      service.NameInput{FirstName: "Ghost"},
	})
	require.Error(t, err)

	// The owned name created first rolls back with the customer.
	assert.EqualValues(t, 0, testdb.Count(t, db, &models.Customer{}, ""))
	assert.EqualValues(t, 0, testdb.Count(t, db, &models.Name{}, ""))
}

func TestUpdateCustomerMergesNestedName(t *testing.T) {
	db := testdb.Open(t)
	customer := testdb.NewCustomer(t, db, "bob@example.com", nil)

	updated, err := service.UpdateCustomer(db, customer.ID, &service.CustomerPatch{
		Name: &service.NameInput{FirstName: "Robert", LastName: strp("Johnson")},
	})
	require.NoError(t, err)

	assert.Equal(t, "Robert", updated.Name.FirstName)
	assert.Equal(t, customer.NameID, updated.NameID)
	assert.Equal(t, customer.Email, updated.Email)
}

func TestUpdateCustomerRepointReclaimsOldAddress(t *testing.T) {
	db := testdb.Open(t)
	old := testdb.NewAddress(t, db, "Sydney")
	next := testdb.NewAddress(t, db, "Berlin")
	customer := testdb.NewCustomer(t, db, "mover@example.com", &old.ID)

	updated, err := service.UpdateCustomer(db, customer.ID, &service.CustomerPatch{
		AddressID:    &next.ID,
		AddressIDSet: true,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.AddressID)
	assert.Equal(t, next.ID, *updated.AddressID)
	assert.EqualValues(t, 0, testdb.Count(t, db, &models.Address{}, "id = ?", old.ID))
}

func TestUpdateCustomerNullAddressReclaimsIt(t *testing.T) {
	db := testdb.Open(t)
	address := testdb.NewAddress(t, db, "London")
	customer := testdb.NewCustomer(t, db, "leaver@example.com", &address.ID)

	updated, err := service.UpdateCustomer(db, customer.ID, &service.CustomerPatch{
		AddressID:    nil,
		AddressIDSet: true,
	})
	require.NoError(t, err)

	assert.Nil(t, updated.AddressID)
	assert.EqualValues(t, 0, testdb.Count(t, db, &models.Address{}, ""))
}

func TestUpdateCustomerAbsentAddressLeavesItAlone(t *testing.T) {
	db := testdb.Open(t)
	address := testdb.NewAddress(t, db, "New York")
	customer := testdb.NewCustomer(t, db, "stayer@example.com", &address.ID)

	updated, err := service.UpdateCustomer(db, customer.ID, &service.CustomerPatch{
		Email: strp("renamed@example.com"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.AddressID)
	assert.Equal(t, address.ID, *updated.AddressID)
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Address{}, ""))
}

func TestDeleteCustomerBlockedWhileOrdersExist(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Robert", "Jordan")
	book := testdb.NewBook(t, db, "Lord of Chaos", author)
	customer := testdb.NewCustomer(t, db, "buyer@example.com", nil)
	testdb.NewOrder(t, db, customer.ID, book)

	_, err := service.DeleteCustomer(db, customer.ID)
	require.Error(t, err)

	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Customer{}, ""))
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Name{}, ""))
}
