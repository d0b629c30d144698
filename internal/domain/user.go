package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	Name         string    `gorm:"size:64" json:"name"`
	Phone        string    `gorm:"size:32" json:"phone,omitempty"`
	Role         string    `gorm:"size:16;default:customer" json:"role"` // "admin"/"customer"
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// Actor 是每次调用的显式身份（来自 JWT claims），替代全局 session
type Actor struct {
	ID   string
	Role string
}

func (a Actor) Anonymous() bool { return a.ID == "" }
func (a Actor) IsAdmin() bool   { return a.Role == RoleAdmin }
