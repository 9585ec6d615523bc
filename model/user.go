package model

import "strings"

type User struct {
	DTO
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `gorm:"not null;index" json:"role"`
	Status    string `gorm:"not null;default:registered" json:"status"`
	Active    bool   `gorm:"not null;default:true" json:"active"`
}

func (u User) Fullname() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type RegisterInput struct {
	Email     string `json:"email" validate:"required,email,max=180"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Role      string `json:"role" validate:"required,oneof=seller buyer"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
