package models

// Address is shared by zero or more customers and reclaimed by the
// integrity engine once the last referencing customer is gone.
type Address struct {
	ID          uint    `gorm:"primaryKey;column:id"`
	CountryCode string  `gorm:"column:country_code;size:2;not null"`
	StateCode   string  `gorm:"column:state_code;size:3;not null"`
	City        *string `gorm:"column:city;size:50"`
	Street      string  `gorm:"column:street;size:100;not null"`
	Postcode    string  `gorm:"column:postcode;size:10;not null"`
}
