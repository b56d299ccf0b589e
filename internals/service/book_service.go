package service

import (
	"gorm.io/gorm"

	"bookstore-api/internals/models"
	"bookstore-api/internals/repository"
	"bookstore-api/internals/validation"
)

// NameInput is a validated, normalized person name.
type NameInput struct {
	FirstName string
	LastName  *string
}

// AuthorInput carries the nested name an author is matched or
// created by.
type AuthorInput struct {
	Name NameInput
}

// BookInput is the full payload for creating a book (or replacing one
// via PUT after conversion to a BookPatch).
type BookInput struct {
	ISBN            string
	Title           string
	Series          *string
	PublicationYear int
	Discontinued    bool
	Price           float64
	Quantity        int
	Authors         []AuthorInput
}

// BookPatch is a partial update; nil fields stay unchanged. A nil
// Authors slice leaves the author list alone.
type BookPatch struct {
	ISBN            *string
	Title           *string
	Series          *string
	PublicationYear *int
	Discontinued    *bool
	Price           *float64
	Quantity        *int
	Authors         []AuthorInput
}

// fetchOrCreateAuthor reuses an existing author whose name matches
// exactly, otherwise creates the name and author rows.
func fetchOrCreateAuthor(tx *gorm.DB, input AuthorInput) (*models.Author, error) {
	author, err := repository.FindAuthorByName(tx, input.Name.FirstName, input.Name.LastName)
	if err != nil || author != nil {
		return author, err
	}

	name := &models.Name{FirstName: input.Name.FirstName, LastName: input.Name.LastName}
	if err := repository.CreateName(tx, name); err != nil {
		return nil, err
	}
	author = &models.Author{NameID: name.ID}
	if err := repository.CreateAuthor(tx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// CreateBook creates the book row plus one junction row per author,
// matching existing authors by name, all in one transaction.
func CreateBook(db *gorm.DB, input *BookInput) (*models.Book, error) {
	if err := validation.CheckBookPrice(input.Price, input.Discontinued); err != nil {
		return nil, err
	}

	var created *models.Book
	err := db.Transaction(func(tx *gorm.DB) error {
		book := &models.Book{
			ISBN:            input.ISBN,
			Title:           input.Title,
			Series:          input.Series,
			PublicationYear: input.PublicationYear,
			Discontinued:    input.Discontinued,
			Price:           input.Price,
			Quantity:        input.Quantity,
		}
		if err := repository.CreateBook(tx, book); err != nil {
			return err
		}

		for _, authorInput := range input.Authors {
			author, err := fetchOrCreateAuthor(tx, authorInput)
			if err != nil {
				return err
			}
			link := &models.BookAuthor{BookID: book.ID, AuthorID: author.ID}
			if err := repository.CreateBookAuthor(tx, link); err != nil {
				return err
			}
		}

		var err error
		created, err = repository.FindBookByID(tx, book.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func GetBook(db *gorm.DB, id uint) (*models.Book, error) {
	return repository.FindBookByID(db, id)
}

func ListBooks(db *gorm.DB) ([]models.Book, error) {
	return repository.FindAllBooks(db)
}

// UpdateBook applies scalar changes and merges the author list:
// entries are matched positionally against the current authors
// (renaming them in place), extra entries are fetched-or-created and
// linked, and authors omitted from the list stay linked.
func UpdateBook(db *gorm.DB, id uint, patch *BookPatch) (*models.Book, error) {
	var updated *models.Book
	err := db.Transaction(func(tx *gorm.DB) error {
		book, err := repository.FindBookByID(tx, id)
		if err != nil {
			return err
		}

		if patch.Authors != nil {
			current := book.BookAuthors
			for i, authorInput := range patch.Authors {
				if i < len(current) {
					name := current[i].Author.Name
					name.FirstName = authorInput.Name.FirstName
					name.LastName = authorInput.Name.LastName
					if err := repository.SaveName(tx, &name); err != nil {
						return err
					}
					continue
				}
				author, err := fetchOrCreateAuthor(tx, authorInput)
				if err != nil {
					return err
				}
				link, err := repository.FindBookAuthor(tx, book.ID, author.ID)
				if err != nil {
					return err
				}
				if link == nil {
					link = &models.BookAuthor{BookID: book.ID, AuthorID: author.ID}
					if err := repository.CreateBookAuthor(tx, link); err != nil {
						return err
					}
				}
			}
		}

		if patch.ISBN != nil {
			book.ISBN = *patch.ISBN
		}
		if patch.Title != nil {
			book.Title = *patch.Title
		}
		if patch.Series != nil {
			book.Series = patch.Series
		}
		if patch.PublicationYear != nil {
			book.PublicationYear = *patch.PublicationYear
		}
		if patch.Discontinued != nil {
			book.Discontinued = *patch.Discontinued
		}
		if patch.Price != nil {
			book.Price = *patch.Price
		}
		if patch.Quantity != nil {
			book.Quantity = *patch.Quantity
		}

		// Cross-field rule runs against the effective values.
		if err := validation.CheckBookPrice(book.Price, book.Discontinued); err != nil {
			return err
		}
		if err := repository.SaveBook(tx, book); err != nil {
			return err
		}

		updated, err = repository.FindBookByID(tx, book.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBook deletes the book's junction rows through the store so
// the integrity hooks fire per junction: each orphaned author (and
// its name) is reclaimed, and the book itself is reclaimed by the
// engine when the last junction goes. A book that somehow had no
// junctions is removed explicitly. RESTRICT on order_items.book_id
// rejects the whole transaction while any order references the book.
func DeleteBook(db *gorm.DB, id uint) (*models.Book, error) {
	var deleted *models.Book
	err := db.Transaction(func(tx *gorm.DB) error {
		book, err := repository.FindBookByID(tx, id)
		if err != nil {
			return err
		}
		deleted = book

		for i := range book.BookAuthors {
			if err := repository.DeleteBookAuthor(tx, &book.BookAuthors[i]); err != nil {
				return err
			}
		}
		// Usually a no-op: the engine reclaimed the book with its
		// last junction row.
		return repository.DeleteBook(tx, book)
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
