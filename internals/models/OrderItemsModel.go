package models

// OrderItem is the junction row between books and orders, carrying
// the ordered quantity. RESTRICT on book_id means a book referenced
// by any order cannot be deleted; CASCADE on order_id removes items
// with their order at the store level.
type OrderItem struct {
	BookID   uint `gorm:"primaryKey;autoIncrement:false;column:book_id"`
	OrderID  uint `gorm:"primaryKey;autoIncrement:false;column:order_id"`
	Quantity int  `gorm:"column:quantity;not null;default:1;check:quantity >= 1"`

	Book  Book  `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
	Order Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
