package controllers

import (
	"time"

	"bookstore-api/internals/models"
)

type NameResponse struct {
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type AuthorResponse struct {
	ID   uint         `json:"id"`
	Name NameResponse `json:"name"`
}

type AddressResponse struct {
	ID          uint    `json:"id"`
	CountryCode string  `json:"country_code"`
	StateCode   string  `json:"state_code"`
	City        *string `json:"city"`
	Street      string  `json:"street"`
	Postcode    string  `json:"postcode"`
}

type BookResponse struct {
	ID              uint             `json:"id"`
	ISBN            string           `json:"isbn"`
	Title           string           `json:"title"`
	Series          *string          `json:"series"`
	PublicationYear int              `json:"publication_year"`
	Discontinued    bool             `json:"discontinued"`
	Price           float64          `json:"price"`
	Quantity        int              `json:"quantity"`
	Authors         []AuthorResponse `json:"authors"`
}

type CustomerResponse struct {
	ID        uint         `json:"id"`
	Email     string       `json:"email"`
	Phone     *string      `json:"phone"`
	AddressID *uint        `json:"address_id"`
	Name      NameResponse `json:"name"`
}

type BookSummary struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type OrderItemResponse struct {
	BookID   uint        `json:"book_id"`
	Quantity int         `json:"quantity"`
	Book     BookSummary `json:"book"`
}

type OrderResponse struct {
	ID         uint                `json:"id"`
	CustomerID uint                `json:"customer_id"`
	OrderDate  time.Time           `json:"order_date"`
	PriceTotal float64             `json:"price_total"`
	OrderItems []OrderItemResponse `json:"order_items"`
}

func toNameResponse(name models.Name) NameResponse {
	return NameResponse{FirstName: name.FirstName, LastName: name.LastName}
}

func toAddressResponse(address *models.Address) AddressResponse {
	return AddressResponse{
		ID:          address.ID,
		CountryCode: address.CountryCode,
		StateCode:   address.StateCode,
		City:        address.City,
		Street:      address.Street,
		Postcode:    address.Postcode,
	}
}

func toBookResponse(book *models.Book) BookResponse {
	authors := make([]AuthorResponse, 0, len(book.BookAuthors))
	for _, link := range book.BookAuthors {
		authors = append(authors, AuthorResponse{
			ID:   link.Author.ID,
			Name: toNameResponse(link.Author.Name),
		})
	}
	return BookResponse{
		ID:              book.ID,
		ISBN:            book.ISBN,
		Title:           book.Title,
		Series:          book.Series,
		PublicationYear: book.PublicationYear,
		Discontinued:    book.Discontinued,
		Price:           book.Price,
		Quantity:        book.Quantity,
		Authors:         authors,
	}
}

func toCustomerResponse(customer *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Email:     customer.Email,
		Phone:     customer.Phone,
		AddressID: customer.AddressID,
		Name:      toNameResponse(customer.Name),
	}
}

func toOrderResponse(order *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, OrderItemResponse{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Book: BookSummary{
				ID:    item.Book.ID,
				Title: item.Book.Title,
				Price: item.Book.Price,
			},
		})
	}
	return OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		OrderDate:  order.OrderDate,
		PriceTotal: order.PriceTotal,
		OrderItems: items,
	}
}
