package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internals/apperrors"
	"bookstore-api/internals/models"
	"bookstore-api/internals/service"
	"bookstore-api/internals/testdb"
)

func strp(s string) *string { return &s }

func bookInput(title string, authors ...service.AuthorInput) *service.BookInput {
	return &service.BookInput{
		ISBN:            "9780765326355",
		Title:           title,
		PublicationYear: 2010,
		Price:           29.99,
		Quantity:        10,
		Authors:         authors,
	}
}

func authorInput(first, last string) service.AuthorInput {
	return service.AuthorInput{Name: service.NameInput{FirstName: first, LastName: strp(last)}}
}

func TestCreateBookCreatesAuthorsAndLinks(t *testing.T) {
	db := testdb.Open(t)

	book, err := service.CreateBook(db, bookInput("Good Omens",
		authorInput("Terry", "Pratchett"),
		authorInput("Neil", "Gaiman"),
	))
	require.NoError(t, err)

	require.Len(t, book.BookAuthors, 2)
	assert.EqualValues(t, 2, testdb.Count(t, db, &models.Author{}, ""))
	assert.EqualValues(t, 2, testdb.Count(t, db, &models.Name{}, ""))
	assert.EqualValues(t, 2, testdb.Count(t, db, &models.BookAuthor{}, ""))
}

func TestCreateBookReusesAuthorWithMatchingName(t *testing.T) {
	db := testdb.Open(t)
	existing := testdb.NewAuthor(t, db, "Brandon", "Sanderson")
	testdb.NewBook(t, db, "The Way of Kings", existing)

	book, err := service.CreateBook(db, bookInput("Words of Radiance",
		authorInput("Brandon", "Sanderson"),
	))
	require.NoError(t, err)

	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Author{}, ""))
	require.Len(t, book.BookAuthors, 1)
	assert.Equal(t, existing.ID, book.BookAuthors[0].AuthorID)
}

func TestCreateBookRejectsFreePriceWhileAvailable(t *testing.T) {
	db := testdb.Open(t)

	input := bookInput("Promo Copy", authorInput("Mark", "Lawrence"))
	input.Price = 0
	input.Discontinued = false

	_, err := service.CreateBook(db, input)

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "price")
	assert.EqualValues(t, 0, testdb.Count(t, db, &models.Book{}, ""))
}

func TestUpdateBookRenamesAuthorsInPlace(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Robin", "Hobb")
	book := testdb.NewBook(t, db, "Assassin's Apprentice", author)

	updated, err := service.UpdateBook(db, book.ID, &service.BookPatch{
		Authors: []service.AuthorInput{authorInput("Megan", "Lindholm")},
	})
	require.NoError(t, err)

	// The same author row keeps its identity under the new name.
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Author{}, ""))
	require.Len(t, updated.BookAuthors, 1)
	assert.Equal(t, author.ID, updated.BookAuthors[0].AuthorID)
	assert.Equal(t, "Megan", updated.BookAuthors[0].Author.Name.FirstName)
}

func TestUpdateBookLinksAdditionalAuthors(t *testing.T) {
	db := testdb.Open(t)
	pratchett := testdb.NewAuthor(t, db, "Terry", "Pratchett")
	book := testdb.NewBook(t, db, "Good Omens", pratchett)

	updated, err := service.UpdateBook(db, book.ID, &service.BookPatch{
		Authors: []service.AuthorInput{
			authorInput("Terry", "Pratchett"),
			authorInput("Neil", "Gaiman"),
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.BookAuthors, 2)
	assert.EqualValues(t, 2, testdb.Count(t, db, &models.Author{}, ""))
}

func TestUpdateBookMergesScalarFields(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Patrick", "Rothfuss")
	book := testdb.NewBook(t, db, "The Name Of The Wind", author)

	updated, err := service.UpdateBook(db, book.ID, &service.BookPatch{
		Price:    floatp(14.99),
		Quantity: intp(3),
	})
	require.NoError(t, err)

	assert.InDelta(t, 14.99, updated.Price, 0.001)
	assert.Equal(t, 3, updated.Quantity)
	// Untouched fields keep their stored values.
	assert.Equal(t, book.Title, updated.Title)
	assert.Equal(t, book.ISBN, updated.ISBN)
}

func TestDeleteBookReclaimsOrphanedAuthors(t *testing.T) {
	db := testdb.Open(t)
	shared := testdb.NewAuthor(t, db, "Terry", "Pratchett")
	solo := testdb.NewAuthor(t, db, "Neil", "Gaiman")
	goodOmens := testdb.NewBook(t, db, "Good Omens", shared, solo)
	testdb.NewBook(t, db, "Mort", shared)

	deleted, err := service.DeleteBook(db, goodOmens.ID)
	require.NoError(t, err)
	assert.Equal(t, goodOmens.ID, deleted.ID)

	assert.EqualValues(t, 0, testdb.Count(t, db, &models.Book{}, "id = ?", goodOmens.ID))
	assert.EqualValues(t, 0, testdb.Count(t, db, &models.Author{}, "id = ?", solo.ID))
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Author{}, "id = ?", shared.ID))
}

func TestDeleteBookBlockedWhileOrdered(t *testing.T) {
	db := testdb.Open(t)
	author := testdb.NewAuthor(t, db, "Mark", "Lawrence")
	book := testdb.NewBook(t, db, "Emperor of Thorns", author)
	customer := testdb.NewCustomer(t, db, "keeper@example.com", nil)
	testdb.NewOrder(t, db, customer.ID, book)

	_, err := service.DeleteBook(db, book.ID)
	require.Error(t, err)

	// Nothing is half-deleted: the junction and author both remain.
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Book{}, ""))
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.BookAuthor{}, ""))
	assert.EqualValues(t, 1, testdb.Count(t, db, &models.Author{}, ""))
}

func floatp(f float64) *float64 { return &f }
