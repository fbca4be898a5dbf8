package models

import "time"

// MenuItem is the read-only catalog entry. Runtime code never mutates these;
// the seeder provisions them and order lines copy name/price at add time.
type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Category    string  `gorm:"size:50;index" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
