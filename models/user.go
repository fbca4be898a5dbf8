package models

import "time"

const (
	RoleManager  = "manager"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	FullName string `gorm:"size:100" json:"fullname"`
	Role     string `gorm:"size:20;default:'customer'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
