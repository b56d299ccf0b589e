package models

// Customer owns exactly one Name (RESTRICT on the FK, cascaded by the
// integrity engine on customer delete) and optionally shares an
// Address. SET NULL on address_id keeps customers alive when their
// address is deleted directly.
type Customer struct {
	ID        uint     `gorm:"primaryKey;column:id"`
	Email     string   `gorm:"column:email;size:254;uniqueIndex;not null"`
	Phone     *string  `gorm:"column:phone;size:20"`
	NameID    uint     `gorm:"column:name_id;uniqueIndex;not null"`
	AddressID *uint    `gorm:"column:address_id"`
	Name      Name     `gorm:"foreignKey:NameID;constraint:OnDelete:RESTRICT"`
	Address   *Address `gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL"`
}
