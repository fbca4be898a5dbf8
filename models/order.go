package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderServing = "Serving"
	OrderPaid    = "Paid"
)

const (
	MinLineQuantity = 1
	MaxLineQuantity = 99
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	TableID    uint        `gorm:"index;not null" json:"table_id"`
	Status     string      `gorm:"size:20;default:'Serving'" json:"status"`
	Lines      []OrderLine `json:"lines"`
	TotalPrice float64     `gorm:"not null;default:0" json:"total_price"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// OrderLine snapshots the menu item at add time; name and unit price are
// never re-read from the catalog, so historical totals stay stable.
type OrderLine struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index;not null" json:"-"`
	ItemID    uint    `gorm:"not null" json:"item_id"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

// ComputeTotal returns the sum of the line subtotals. Order.TotalPrice must
// equal this after every mutation.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}
