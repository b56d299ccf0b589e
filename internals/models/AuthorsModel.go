package models

// Author owns exactly one Name. RESTRICT on name_id stops the Name
// from being deleted out from under a live Author; deleting the
// Author itself cascades to the Name through the integrity engine.
type Author struct {
	ID     uint `gorm:"primaryKey;column:id"`
	NameID uint `gorm:"column:name_id;uniqueIndex;not null"`
	Name   Name `gorm:"foreignKey:NameID;constraint:OnDelete:RESTRICT"`
}
