package domain

import (
	"context"
	"time"
)

const (
	RoleReader  = "reader"
	RoleCreator = "creator"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:32" json:"userId"`
	FirstName    string    `gorm:"size:64;not null" json:"firstName"`
	LastName     string    `gorm:"size:64;not null" json:"lastName"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         string    `gorm:"size:16;not null" json:"role"` // "reader"/"creator"
	Category     string    `gorm:"size:64" json:"category,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
