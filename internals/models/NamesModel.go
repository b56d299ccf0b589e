package models

// Name holds a person name owned by exactly one Author or one
// Customer. The owning row cascades its Name away on delete, while a
// Name can never be deleted directly while an owner still references
// it (RESTRICT on the owner side foreign keys).
type Name struct {
	ID        uint    `gorm:"primaryKey;column:id"`
	FirstName string  `gorm:"column:first_name;size:50;not null"`
	LastName  *string `gorm:"column:last_name;size:50"`
}
