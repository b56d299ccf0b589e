package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookstore-api/internals/cache"
	"bookstore-api/internals/service"
	"bookstore-api/internals/validation"
)

type NameRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=3,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,max=50"`
}

// Normalize title-cases names; title, not upper, since some names
// are hyphenated.
func (r *NameRequest) Normalize() {
	r.FirstName = validation.TitleCase(validation.Trim(r.FirstName))
	r.LastName = validation.TitleCasePtr(validation.TrimPtr(r.LastName))
}

func (r *NameRequest) toInput() service.NameInput {
	return service.NameInput{FirstName: r.FirstName, LastName: r.LastName}
}

type AuthorRequest struct {
	Name *NameRequest `json:"name" validate:"required"`
}

type BookRequest struct {
	ISBN            string          `json:"isbn" validate:"required,min=10,max=13,isbn_digits"`
	Title           string          `json:"title" validate:"required,max=255"`
	Series          *string         `json:"series" validate:"omitempty,max=255"`
	PublicationYear *int            `json:"publication_year" validate:"required,pub_year"`
	Discontinued    *bool           `json:"discontinued" validate:"required"`
	Price           *float64        `json:"price" validate:"required,gte=0,lte=999.99"`
	Quantity        *int            `json:"quantity" validate:"required,gte=0"`
	Authors         []AuthorRequest `json:"authors" validate:"required,min=1,dive"`
}

func (r *BookRequest) Normalize() {
	r.ISBN = validation.CleanISBN(r.ISBN)
	r.Title = validation.TitleCase(validation.Trim(r.Title))
	r.Series = validation.TitleCasePtr(validation.TrimPtr(r.Series))
	for i := range r.Authors {
		if r.Authors[i].Name != nil {
			r.Authors[i].Name.Normalize()
		}
	}
}

type BookPatchRequest struct {
	ISBN            *string         `json:"isbn" validate:"omitempty,min=10,max=13,isbn_digits"`
	Title           *string         `json:"title" validate:"omitempty,max=255"`
	Series          *string         `json:"series" validate:"omitempty,max=255"`
	PublicationYear *int            `json:"publication_year" validate:"omitempty,pub_year"`
	Discontinued    *bool           `json:"discontinued"`
	Price           *float64        `json:"price" validate:"omitempty,gte=0,lte=999.99"`
	Quantity        *int            `json:"quantity" validate:"omitempty,gte=0"`
	Authors         []AuthorRequest `json:"authors" validate:"omitempty,min=1,dive"`
}

func (r *BookPatchRequest) Normalize() {
	if r.ISBN != nil {
		isbn := validation.CleanISBN(*r.ISBN)
		r.ISBN = &isbn
	}
	if r.Title != nil {
		title := validation.TitleCase(validation.Trim(*r.Title))
		r.Title = &title
	}
	r.Series = validation.TitleCasePtr(validation.TrimPtr(r.Series))
	for i := range r.Authors {
		if r.Authors[i].Name != nil {
			r.Authors[i].Name.Normalize()
		}
	}
}

func toAuthorInputs(authors []AuthorRequest) []service.AuthorInput {
	if authors == nil {
		return nil
	}
	inputs := make([]service.AuthorInput, 0, len(authors))
	for _, author := range authors {
		inputs = append(inputs, service.AuthorInput{Name: author.Name.toInput()})
	}
	return inputs
}

const booksAllKey = "books:all"

func bookKey(id uint) string { return fmt.Sprintf("books:%d", id) }

type BooksController struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

func NewBooksController(db *gorm.DB, bookCache *cache.Cache) *BooksController {
	return &BooksController{DB: db, Cache: bookCache}
}

func (bc *BooksController) Create(c *gin.Context) {
	var req BookRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	req.Normalize()
	if err := validation.Struct(&req); err != nil {
		respondError(c, err)
		return
	}

	book, err := service.CreateBook(bc.DB, &service.BookInput{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Series:          req.Series,
		PublicationYear: *req.PublicationYear,
		Discontinued:    *req.Discontinued,
		Price:           *req.Price,
		Quantity:        *req.Quantity,
		Authors:         toAuthorInputs(req.Authors),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	bc.Cache.Invalidate(c.Request.Context(), booksAllKey)
	c.JSON(http.StatusCreated, toBookResponse(book))
}

func (bc *BooksController) GetAll(c *gin.Context) {
	var cached []BookResponse
	if bc.Cache.GetJSON(c.Request.Context(), booksAllKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	books, err := service.ListBooks(bc.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]BookResponse, 0, len(books))
	for i := range books {
		response = append(response, toBookResponse(&books[i]))
	}
	bc.Cache.SetJSON(c.Request.Context(), booksAllKey, response)
	c.JSON(http.StatusOK, response)
}

func (bc *BooksController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "Book")
	if !ok {
		return
	}

	var cached BookResponse
	if bc.Cache.GetJSON(c.Request.Context(), bookKey(id), &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	book, err := service.GetBook(bc.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response := toBookResponse(book)
	bc.Cache.SetJSON(c.Request.Context(), bookKey(id), response)
	c.JSON(http.StatusOK, response)
}

func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseID(c, "Book")
	if !ok {
		return
	}

	var patch service.BookPatch
	if c.Request.Method == http.MethodPut {
		var req BookRequest
		if _, ok := bindJSON(c, &req); !ok {
			return
		}
		req.Normalize()
		if err := validation.Struct(&req); err != nil {
			respondError(c, err)
			return
		}
		patch = service.BookPatch{
			ISBN:            &req.ISBN,
			Title:           &req.Title,
			Series:          req.Series,
			PublicationYear: req.PublicationYear,
			Discontinued:    req.Discontinued,
			Price:           req.Price,
			Quantity:        req.Quantity,
			Authors:         toAuthorInputs(req.Authors),
		}
	} else {
		var req BookPatchRequest
		if _, ok := bindJSON(c, &req); !ok {
			return
		}
		req.Normalize()
		if err := validation.Struct(&req); err != nil {
			respondError(c, err)
			return
		}
		patch = service.BookPatch{
			ISBN:            req.ISBN,
			Title:           req.Title,
			Series:          req.Series,
			PublicationYear: req.PublicationYear,
			Discontinued:    req.Discontinued,
			Price:           req.Price,
			Quantity:        req.Quantity,
			Authors:         toAuthorInputs(req.Authors),
		}
	}

	book, err := service.UpdateBook(bc.DB, id, &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	bc.Cache.Invalidate(c.Request.Context(), booksAllKey, bookKey(id))
	c.JSON(http.StatusOK, toBookResponse(book))
}

func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseID(c, "Book")
	if !ok {
		return
	}
	book, err := service.DeleteBook(bc.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}

	bc.Cache.Invalidate(c.Request.Context(), booksAllKey, bookKey(id))
	c.JSON(http.StatusOK, toBookResponse(book))
}
