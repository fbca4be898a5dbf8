package models

import "time"

const (
	TableAvailable = "Available"
	TableOccupied  = "Occupied"
	TableReserved  = "Reserved"
)

const (
	AreaFloor1  = "Floor1"
	AreaFloor2  = "Floor2"
	AreaTerrace = "Terrace"
)

type Table struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number int    `gorm:"uniqueIndex;not null" json:"number"`
	Area   string `gorm:"size:20" json:"area"`
	Status string `gorm:"size:20;default:'Available'" json:"status"`

	// ActiveOrderID is set iff Status != Available. The coordinator is the
	// only writer.
	ActiveOrderID *uint  `json:"active_order_id,omitempty"`
	ActiveOrder   *Order `gorm:"foreignKey:ActiveOrderID" json:"active_order,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// AreaForNumber maps the table-number convention to a seating area:
// 1xx Floor1, 2xx Floor2, 3xx Terrace.
func AreaForNumber(number int) string {
	switch {
	case number >= 300:
		return AreaTerrace
	case number >= 200:
		return AreaFloor2
	default:
		return AreaFloor1
	}
}
