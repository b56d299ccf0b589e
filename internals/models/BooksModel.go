package models

// Book keeps its author links on explicit BookAuthor junction rows.
// A book may exist transiently with zero junctions during create, but
// the integrity engine deletes it the moment a junction deletion
// leaves it with none.
type Book struct {
	ID              uint    `gorm:"primaryKey;column:id"`
	ISBN            string  `gorm:"column:isbn;size:13;not null"`
	Title           string  `gorm:"column:title;size:255;not null"`
	Series          *string `gorm:"column:series;size:255"`
	PublicationYear int     `gorm:"column:publication_year;not null;check:publication_year >= 1000"`
	Discontinued    bool    `gorm:"column:discontinued;not null;default:false"`
	Price           float64 `gorm:"column:price;type:decimal(5,2);not null;check:price >= 0"`
	Quantity        int     `gorm:"column:quantity;not null;check:quantity >= 0"`

	BookAuthors []BookAuthor `gorm:"foreignKey:BookID"`
	OrderItems  []OrderItem  `gorm:"foreignKey:BookID"`
}
