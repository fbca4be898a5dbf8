package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice is the append-only settlement record, written exactly once per
// completed order. It is immutable except for the cascade from order
// deletion.
type Invoice struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"uniqueIndex;not null" json:"order_id"`
	CustomerName  string  `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string  `gorm:"size:15;not null" json:"customer_phone"`
	Tax           float64 `gorm:"not null;default:0" json:"tax"`
	StaffID       uint    `gorm:"index;not null" json:"staff_id"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
