package models

type User struct {
	Model
	Email          string `json:"email" gorm:"unique;not null"`
	FullName       string `json:"full_name" gorm:"default:''"`
	HashedPassword string `json:"-" gorm:"not null"`
	IsActive       bool   `json:"is_active"`
	IsAdmin        bool   `json:"is_admin"`
}
