package user

import (
	"time"
)

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

type Account struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	Email         string    `gorm:"size:191;uniqueIndex:ux_user_accounts_email" json:"email"`
	Name          string    `gorm:"size:191" json:"name"`
	PhotoURL      string    `gorm:"type:text" json:"photo_url"`
	Role          Role      `gorm:"type:enum('borrower','manager','admin');default:'borrower'" json:"role"`
	Suspended     bool      `gorm:"default:false" json:"suspended"`
	SuspendReason string    `gorm:"type:text" json:"suspend_reason,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Account) TableName() string { return "user_accounts" }
