package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is an account's access role.
type Role string

const (
	RoleClient   Role = "Client"
	RoleEmployee Role = "Employee"
	RoleAdmin    Role = "Admin"
)

// IsValid checks if a role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// Privileged reports whether the role may manage inventory.
func (r Role) Privileged() bool {
	return r == RoleEmployee || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// Account is a registered user. The password hash never leaves the
// server: it is excluded from JSON and from session tokens.
type Account struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string    `json:"firstName" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"type:varchar(16);not null;default:'Client'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
