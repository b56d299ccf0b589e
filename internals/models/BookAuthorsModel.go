package models

// BookAuthor is the junction row between books and authors with a
// composite primary key. CASCADE on both foreign keys means deleting
// either side removes the junction at the store level; the integrity
// engine's orphan checks key off deletions of these rows.
type BookAuthor struct {
	BookID   uint `gorm:"primaryKey;autoIncrement:false;column:book_id"`
	AuthorID uint `gorm:"primaryKey;autoIncrement:false;column:author_id"`

	Book   Book   `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Author Author `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
