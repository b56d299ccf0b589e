package models

import "time"

// Order aggregates order items for one customer. RESTRICT on
// customer_id stops a customer deletion while orders exist.
// PriceTotal is a cached aggregate of quantity x book price and is
// recomputed by the service layer on every items mutation.
type Order struct {
	ID         uint      `gorm:"primaryKey;column:id"`
	CustomerID uint      `gorm:"column:customer_id;not null"`
	OrderDate  time.Time `gorm:"column:order_date;not null;default:CURRENT_TIMESTAMP"`
	PriceTotal float64   `gorm:"column:price_total;type:decimal(6,2);not null;check:price_total >= 0"`

	Customer   Customer    `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID"`
}
